package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingAPIKey   = errors.New("API key not set")
	ErrEmptyPrompt     = errors.New("prompt cannot be empty")
	ErrNoResponse      = errors.New("no response from model")
	ErrUnknownProvider = errors.New("unknown LLM provider")
)

type Client interface {
	Chat(ctx context.Context, prompt string) (*Response, error)
	ChatWithConfig(ctx context.Context, prompt string, config *Config) (*Response, error)
	Close() error
}

// Options selects and configures a provider
type Options struct {
	Provider         string // "gemini", "openrouter", or empty to disable
	GeminiAPIKey     string
	OpenRouterAPIKey string
	OpenRouterModel  string
}

// New builds the client named by opts.Provider. An empty provider returns
// a nil client and no error: coaching is optional.
func New(ctx context.Context, opts Options) (Client, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Provider)) {
	case "":
		return nil, nil
	case "gemini":
		client, err := NewGeminiClient(ctx, opts.GeminiAPIKey)
		if err != nil {
			return nil, err
		}
		return client, nil
	case "openrouter":
		client, err := NewOpenRouterClient(opts.OpenRouterAPIKey, opts.OpenRouterModel)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, opts.Provider)
	}
}
