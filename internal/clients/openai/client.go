package openai

import (
	"campaign-server/internal/observability"
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type Client struct {
	apiKey string
	logger *observability.Logger
}

func NewClient(apiKey string, logger *observability.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	return &Client{apiKey: apiKey, logger: logger}, nil
}

// ChatParams describes one chat completion request
type ChatParams struct {
	Model        string
	SystemPrompt string
	UserPrompt   string
	Temperature  float64
	MaxTokens    int64
}

// ChatResult is the completion text plus token accounting
type ChatResult struct {
	Content          string
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

// Complete sends a system+user prompt pair and returns the completion
func (c *Client) Complete(ctx context.Context, params ChatParams) (ChatResult, error) {
	client := openai.NewClient(option.WithAPIKey(c.apiKey))

	completion, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: params.Model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(params.SystemPrompt),
			openai.UserMessage(params.UserPrompt),
		},
		Temperature: openai.Float(params.Temperature),
		MaxTokens:   openai.Int(params.MaxTokens),
	})
	if err != nil {
		c.logger.Error(ctx, "failed to create chat completion", err)
		return ChatResult{}, fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return ChatResult{}, fmt.Errorf("chat completion returned no choices")
	}

	result := ChatResult{
		Content:          completion.Choices[0].Message.Content,
		PromptTokens:     completion.Usage.PromptTokens,
		CompletionTokens: completion.Usage.CompletionTokens,
		TotalTokens:      completion.Usage.TotalTokens,
	}

	c.logger.Info(ctx, "chat completion finished",
		observability.Field{Key: "model", Value: params.Model},
		observability.Field{Key: "total_tokens", Value: result.TotalTokens},
	)
	return result, nil
}
