package clients

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bizpulse-api/src/internal/config"
	"bizpulse-api/src/internal/models"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// LLMClient sends single-turn chat completions to an OpenAI-compatible gateway.
type LLMClient struct {
	client  openai.Client
	model   string
	timeout time.Duration
}

func NewLLMClient(cfg *config.LLMSettings) (*LLMClient, error) {
	if cfg.ApiKey == "" {
		return nil, errors.New("llm api key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.ApiKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &LLMClient{
		client:  openai.NewClient(opts...),
		model:   cfg.Model,
		timeout: time.Duration(cfg.Timeout) * time.Second,
	}, nil
}

func (c *LLMClient) Complete(ctx context.Context, prompt, systemMessage string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemMessage),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrLLMRequest, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", models.ErrLLMRequest)
	}

	return resp.Choices[0].Message.Content, nil
}
