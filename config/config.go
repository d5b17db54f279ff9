package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel    string `yaml:"log_level" env:"TASKDECK_LOG_LEVEL" env-default:"INFO"`
	ExportDir   string `yaml:"export_dir" env:"TASKDECK_EXPORT_DIR" env-default:"."`
	HistoryFile string `yaml:"history_file" env:"TASKDECK_HISTORY_FILE"`
	SampleTasks bool   `yaml:"sample_tasks" env:"TASKDECK_SAMPLE_TASKS" env-default:"false"`

	LLMProvider      string `yaml:"llm_provider" env:"TASKDECK_LLM_PROVIDER"`
	OpenRouterModel  string `yaml:"openrouter_model" env:"OPENROUTER_MODEL"`
	GeminiAPIKey     string `yaml:"-" env:"GEMINI_API_KEY"`
	OpenRouterAPIKey string `yaml:"-" env:"OPENROUTER_API_KEY"`
}

// LoadDotEnv copies variables from a .env file into the process
// environment. A missing file is not an error; variables already set win.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("cannot read %s: %w", path, err)
	}
	return nil
}

// Load reads configPath as YAML and then applies environment overrides.
// An empty path, or a path that does not exist, reads the environment only.
func Load(configPath string) (Config, error) {
	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return Config{}, fmt.Errorf("cannot read env: %w", err)
		}
		return cfg, nil
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		var pe *os.PathError
		if errors.As(err, &pe) {
			cfg = Config{}
			if err := cleanenv.ReadEnv(&cfg); err != nil {
				return Config{}, fmt.Errorf("cannot read env: %w", err)
			}
			return cfg, nil
		}
		return Config{}, fmt.Errorf("cannot read config %q: %w", configPath, err)
	}

	return cfg, nil
}

// ParseLogLevel maps a level name to a slog level. Unknown names fall back
// to INFO.
func ParseLogLevel(levelStr string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(levelStr)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
