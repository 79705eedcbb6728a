package categorize

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"spendlyo/internal/models"
)

// Result is a single classification outcome. Category is always a member of
// the closed category set and Note is never empty once validated.
type Result struct {
	Category models.Category `json:"category"`
	Note     string          `json:"note"`
}

// RemoteClassifier sends text to an external language-model completion
// service and returns its categorization. Implementations may fail with an
// error; the orchestrator collapses every failure into the "Other" default.
type RemoteClassifier interface {
	Classify(ctx context.Context, text string, amount int64) (Result, error)
}

// rawResult is the untrusted JSON shape expected from the model.
type rawResult struct {
	Category string `json:"category"`
	Note     string `json:"note"`
}

// stripCodeFence removes markdown code-fence wrapping that models sometimes
// add around JSON replies despite being told not to.
func stripCodeFence(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// parseRemoteReply parses and validates a model reply. This is the
// parse-then-validate boundary for the remote payload: the category is
// coerced onto the closed set and the note falls back to the original text,
// so a hallucinated category or missing field never leaks out.
func parseRemoteReply(content, originalText string) (Result, error) {
	content = stripCodeFence(content)

	var raw rawResult
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return Result{}, fmt.Errorf("malformed categorization reply: %w", err)
	}

	note := strings.TrimSpace(raw.Note)
	if note == "" {
		note = originalText
	}

	return Result{
		Category: models.ParseCategory(raw.Category),
		Note:     note,
	}, nil
}
