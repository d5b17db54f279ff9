package llm

import (
	"fmt"
	"time"
)

type Response struct {
	Text         string
	FinishReason string
	TokensUsed   int64
	InputTokens  int64
	OutputTokens int64
	Cost         float64
}

type Config struct {
	Model       string
	MaxTokens   int32
	Temperature float32
	System      string
}

func DefaultConfig() *Config {
	return &Config{
		Model:       "gemini-2.5-flash",
		MaxTokens:   1024,
		Temperature: 0.7,
		System:      "",
	}
}

// CoachConfig is DefaultConfig with the productivity coach instructions
// as the system prompt
func CoachConfig(now time.Time) *Config {
	config := DefaultConfig()
	config.System = coachSystemPrompt(now)
	return config
}

func coachSystemPrompt(now time.Time) string {
	return fmt.Sprintf(`You are a concise productivity coach for a personal task list.

TODAY'S DATE: %s (%s)

RULES:
1. You receive a productivity report with counts per priority and a success rate.
2. Reply with at most three short, concrete suggestions.
3. Mention high priority pending tasks first.
4. Do not invent tasks that are not in the report.
5. Plain text only, no markdown headings.`, now.Format("2006-01-02"), now.Weekday())
}
