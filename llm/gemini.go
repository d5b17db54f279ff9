package llm

import (
	"context"
	"strings"

	"google.golang.org/genai"
)

type GeminiClient struct {
	client *genai.Client
}

func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	return &GeminiClient{client: client}, nil
}

func (g *GeminiClient) Chat(ctx context.Context, prompt string) (*Response, error) {
	return g.ChatWithConfig(ctx, prompt, DefaultConfig())
}

func (g *GeminiClient) ChatWithConfig(ctx context.Context, prompt string, config *Config) (*Response, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, ErrEmptyPrompt
	}

	if config == nil {
		config = DefaultConfig()
	}

	genConfig := &genai.GenerateContentConfig{
		MaxOutputTokens: config.MaxTokens,
		Temperature:     genai.Ptr(config.Temperature),
	}

	if config.System != "" {
		genConfig.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: config.System}},
		}
	}

	result, err := g.client.Models.GenerateContent(ctx, config.Model, genai.Text(prompt), genConfig)
	if err != nil {
		return nil, err
	}

	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return nil, ErrNoResponse
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}

	response := &Response{
		Text:         text.String(),
		FinishReason: string(result.Candidates[0].FinishReason),
	}
	if result.UsageMetadata != nil {
		response.TokensUsed = int64(result.UsageMetadata.TotalTokenCount)
		response.InputTokens = int64(result.UsageMetadata.PromptTokenCount)
		response.OutputTokens = int64(result.UsageMetadata.CandidatesTokenCount)
	}

	return response, nil
}

func (g *GeminiClient) Close() error {
	// The genai client holds no resources that need releasing
	return nil
}
