package categorize

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClassifier categorizes expenses through Google's Gemini API. It is
// the alternative remote provider; selection happens in configuration.
type GeminiClassifier struct {
	model  string
	client *genai.Client
}

// NewGeminiClassifier creates a classifier backed by the Gemini API.
func NewGeminiClassifier(ctx context.Context, apiKey, model string) (*GeminiClassifier, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	return &GeminiClassifier{model: model, client: client}, nil
}

// Classify sends the categorization prompt and parses the constrained JSON
// reply.
func (g *GeminiClassifier) Classify(ctx context.Context, text string, amount int64) (Result, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(0.1)

	resp, err := model.GenerateContent(ctx, genai.Text(buildPrompt(text, amount)))
	if err != nil {
		return Result{}, fmt.Errorf("gemini completion: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return Result{}, errors.New("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}

	return parseRemoteReply(sb.String(), text)
}

// Close releases the underlying API client.
func (g *GeminiClassifier) Close() error {
	return g.client.Close()
}
