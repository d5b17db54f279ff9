package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chzyer/readline"
	"github.com/spf13/pflag"

	"taskdeck/clock"
	"taskdeck/commands"
	"taskdeck/config"
	"taskdeck/llm"
	"taskdeck/storage"
	"taskdeck/tasks"
)

const prompt = "> "

func main() {
	configPath := pflag.StringP("config", "c", "taskdeck.yaml", "path to the YAML config file")
	envFile := pflag.String("env-file", ".env", "path to a .env file")
	samples := pflag.Bool("samples", false, "start with the demonstration tasks")
	logLevel := pflag.String("log-level", "", "log level (DEBUG, INFO, WARN, ERROR); overrides config")
	pflag.Parse()

	if err := config.LoadDotEnv(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	level := new(slog.LevelVar)
	level.Set(config.ParseLogLevel(cfg.LogLevel))
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(cfg, *samples, logger, level); err != nil {
		logger.Error("taskdeck failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, samples bool, logger *slog.Logger, level *slog.LevelVar) error {
	ctx := context.Background()

	exporter, err := storage.NewJSONExporter(cfg.ExportDir)
	if err != nil {
		return err
	}

	client, err := llm.New(ctx, llm.Options{
		Provider:         cfg.LLMProvider,
		GeminiAPIKey:     cfg.GeminiAPIKey,
		OpenRouterAPIKey: cfg.OpenRouterAPIKey,
		OpenRouterModel:  cfg.OpenRouterModel,
	})
	if err != nil {
		logger.Warn("coach disabled", "provider", cfg.LLMProvider, "err", err)
	}
	if client != nil {
		defer client.Close()
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       cfg.HistoryFile,
		AutoComplete:      completer(),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("failed to start line editor: %w", err)
	}
	defer rl.Close()

	store := tasks.NewStore(clock.Real())
	if samples || cfg.SampleTasks {
		store.AddSamples()
	}

	session := commands.NewSession(store, rl.Stdout())
	session.SetLogger(logger, level)
	session.SetRenderer(lipgloss.NewRenderer(os.Stdout))
	session.SetContext(ctx)
	session.Exporter = exporter
	session.LLM = client
	session.Pick = rand.IntN
	session.Confirm = confirmer(rl)

	logger.Debug("session started", "export_dir", exporter.Dir(), "coach", client != nil, "tasks", store.Len())
	fmt.Fprintln(rl.Stdout(), "Welcome to taskdeck! Type /help for available commands.")

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				line = "/quit"
			} else {
				continue
			}
		} else if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		if !strings.HasPrefix(input, "/") {
			input = "/add " + input
		}

		quit, err := commands.Execute(session, input)
		if err != nil {
			fmt.Fprintf(rl.Stdout(), "%v. Type /help for available commands.\n", err)
			continue
		}
		if quit {
			return nil
		}
	}
}

// confirmer asks yes/no questions on the line editor
func confirmer(rl *readline.Instance) func(string) bool {
	return func(question string) bool {
		fmt.Fprintln(rl.Stdout(), question)
		rl.SetPrompt("[y/N] ")
		defer rl.SetPrompt(prompt)

		answer, err := rl.Readline()
		if err != nil {
			return false
		}
		return commands.IsYes(answer)
	}
}

// completer offers command names, plus priorities after /add -p
func completer() *readline.PrefixCompleter {
	var items []readline.PrefixCompleterInterface
	for _, cmd := range commands.List() {
		if cmd.Name == "/add" {
			var levels []readline.PrefixCompleterInterface
			for _, p := range tasks.Priorities {
				levels = append(levels, readline.PcItem(string(p)))
			}
			items = append(items, readline.PcItem(cmd.Name, readline.PcItem("-p", levels...)))
			continue
		}
		items = append(items, readline.PcItem(cmd.Name))
	}
	return readline.NewPrefixCompleter(items...)
}
