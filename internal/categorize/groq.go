package categorize

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// GroqClassifier categorizes expenses through Groq's OpenAI-compatible chat
// completions API. This is an outbound call to a paid, rate-limited service;
// callers should pass a context with a deadline.
type GroqClassifier struct {
	model  string
	client *openai.Client
}

// NewGroqClassifier creates a classifier backed by the given Groq (or any
// OpenAI-compatible) endpoint.
func NewGroqClassifier(apiKey, baseURL, model string) (*GroqClassifier, error) {
	if apiKey == "" {
		return nil, errors.New("groq api key is not configured")
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL

	return &GroqClassifier{
		model:  model,
		client: openai.NewClientWithConfig(cfg),
	}, nil
}

// Classify sends the categorization prompt and parses the constrained JSON
// reply. Low temperature keeps the JSON output stable.
func (g *GroqClassifier) Classify(ctx context.Context, text string, amount int64) (Result, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(text, amount)},
		},
		Temperature: 0.1,
	})
	if err != nil {
		return Result{}, fmt.Errorf("groq completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return Result{}, errors.New("groq returned no choices")
	}

	return parseRemoteReply(resp.Choices[0].Message.Content, text)
}
