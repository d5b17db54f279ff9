package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	openRouterURL          = "https://openrouter.ai/api/v1/chat/completions"
	defaultOpenRouterModel = "google/gemini-2.5-flash"
)

type OpenRouterClient struct {
	apiKey     string
	model      string
	url        string
	httpClient *http.Client
}

func NewOpenRouterClient(apiKey, model string) (*OpenRouterClient, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if model == "" {
		model = defaultOpenRouterModel
	}

	return &OpenRouterClient{
		apiKey:     apiKey,
		model:      model,
		url:        openRouterURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}, nil
}

func (c *OpenRouterClient) Chat(ctx context.Context, prompt string) (*Response, error) {
	return c.ChatWithConfig(ctx, prompt, DefaultConfig())
}

func (c *OpenRouterClient) ChatWithConfig(ctx context.Context, prompt string, config *Config) (*Response, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, ErrEmptyPrompt
	}

	if config == nil {
		config = DefaultConfig()
	}

	messages := []openRouterMessage{
		{Role: "user", Content: prompt},
	}

	if config.System != "" {
		messages = append([]openRouterMessage{{Role: "system", Content: config.System}}, messages...)
	}

	return c.sendRequest(ctx, config, messages)
}

func (c *OpenRouterClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// Internal types for OpenRouter API

type openRouterMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openRouterRequest struct {
	Model       string              `json:"model"`
	Messages    []openRouterMessage `json:"messages"`
	MaxTokens   int32               `json:"max_tokens,omitempty"`
	Temperature float32             `json:"temperature,omitempty"`
}

type openRouterResponse struct {
	Choices []struct {
		Message      openRouterMessage `json:"message"`
		FinishReason string            `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int64   `json:"prompt_tokens"`
		CompletionTokens int64   `json:"completion_tokens"`
		TotalTokens      int64   `json:"total_tokens"`
		Cost             float64 `json:"cost"`
	} `json:"usage"`
}

func (c *OpenRouterClient) sendRequest(ctx context.Context, config *Config, messages []openRouterMessage) (*Response, error) {
	// The shared default names a Gemini model directly; OpenRouter needs
	// its own vendor-qualified id.
	model := c.model
	if config.Model != "" && config.Model != DefaultConfig().Model {
		model = config.Model
	}

	reqBody := openRouterRequest{
		Model:       model,
		Messages:    messages,
		MaxTokens:   config.MaxTokens,
		Temperature: config.Temperature,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("X-Title", "taskdeck")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result openRouterResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(result.Choices) == 0 {
		return nil, ErrNoResponse
	}

	return &Response{
		Text:         result.Choices[0].Message.Content,
		FinishReason: result.Choices[0].FinishReason,
		TokensUsed:   result.Usage.TotalTokens,
		InputTokens:  result.Usage.PromptTokens,
		OutputTokens: result.Usage.CompletionTokens,
		Cost:         result.Usage.Cost,
	}, nil
}
