package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/ollama/ollama/api"
)

type OllamaClient struct {
	client *api.Client
	model  string
}

// NewOllamaClient creates a client for a local Ollama server, resolved from
// OLLAMA_HOST the same way the ollama CLI does.
func NewOllamaClient(model string) (*OllamaClient, error) {
	client, err := api.ClientFromEnvironment()
	if err != nil {
		return nil, fmt.Errorf("error creating ollama client: %w", err)
	}

	return &OllamaClient{
		client: client,
		model:  model,
	}, nil
}

func (c *OllamaClient) GetModel() string {
	return c.model
}

func (c *OllamaClient) GenerateInference(ctx context.Context, messages []Message, callback func(chunk string) error, opts ...LLMOption) error {
	settings := LLMSettings{
		model:       c.model,
		temperature: 0.7,
		maxTokens:   4096,
	}

	// Apply options
	for _, opt := range opts {
		opt(&settings)
	}

	apiMessages := make([]api.Message, 0, len(messages)+1)
	if settings.system != "" {
		apiMessages = append(apiMessages, api.Message{Role: "system", Content: settings.system})
	}
	for _, msg := range messages {
		apiMessages = append(apiMessages, api.Message{Role: msg.Role, Content: msg.Content})
	}

	stream := false
	request := &api.ChatRequest{
		Model:    settings.model,
		Messages: apiMessages,
		Stream:   &stream,
		Options: map[string]any{
			"temperature": settings.temperature,
			"num_predict": settings.maxTokens,
		},
	}

	var response strings.Builder
	err := c.client.Chat(ctx, request, func(resp api.ChatResponse) error {
		response.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		return fmt.Errorf("error making request: %w", err)
	}

	if strings.TrimSpace(response.String()) == "" {
		return fmt.Errorf("no content in response")
	}

	return callback(response.String())
}
