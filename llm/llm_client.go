package llm

import (
	"context"
	"strings"
)

// LLMClient is the completion capability used by crew agents. One prompt in,
// one text response out, delivered through the callback.
type LLMClient interface {
	GenerateInference(
		ctx context.Context,
		messages []Message,
		callback func(chunk string) error,
		opts ...LLMOption,
	) error

	GetModel() string
}

type LLMSettings struct {
	model       string  // model name
	temperature float64 // randomness (0.0 to 1.0)
	maxTokens   int     // maximum tokens to generate
	system      string  // system prompt
}

type LLMOption func(*LLMSettings)

// Common options for all LLM providers
func WithLLMModel(model string) LLMOption {
	return func(s *LLMSettings) { s.model = model }
}

func WithTemperature(temp float64) LLMOption {
	return func(s *LLMSettings) { s.temperature = temp }
}

func WithMaxTokens(tokens int) LLMOption {
	return func(s *LLMSettings) { s.maxTokens = tokens }
}

func WithSystemPrompt(prompt string) LLMOption {
	return func(s *LLMSettings) { s.system = prompt }
}

type Message struct {
	Role    string `json:"role"`    // "user", "assistant", "system"
	Content string `json:"content"` // the message content
}

// minCredentialLen is the shortest credential any supported provider issues.
const minCredentialLen = 20

// Configured reports whether a capability credential is usable. Empty,
// placeholder and obviously truncated values all count as "not configured";
// callers route those executions to the fallback engine instead of making a
// doomed network call.
func Configured(credential string) bool {
	credential = strings.TrimSpace(credential)
	if credential == "" || len(credential) < minCredentialLen {
		return false
	}

	lower := strings.ToLower(credential)
	if strings.Contains(lower, "your-") || strings.Contains(lower, "placeholder") || strings.Contains(lower, "changeme") {
		return false
	}

	return true
}
