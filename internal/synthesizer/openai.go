package synthesizer

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// openaiGenerator talks to OpenAI or any API-compatible endpoint.
type openaiGenerator struct {
	client *openai.Client
	model  string
}

func newOpenAIGenerator(apiKey, baseURL, model string) *openaiGenerator {
	var client *openai.Client
	if baseURL != "" {
		cfg := openai.DefaultConfig(apiKey)
		cfg.BaseURL = baseURL
		client = openai.NewClientWithConfig(cfg)
	} else {
		client = openai.NewClient(apiKey)
	}

	return &openaiGenerator{
		client: client,
		model:  model,
	}
}

func (g *openaiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: 0.7,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are an expert educational content creator. Follow the output format in the user's request exactly.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	return resp.Choices[0].Message.Content, nil
}
