// Package categorize implements the hybrid expense-categorization pipeline:
// amount extraction from free text, local keyword classification, and a
// remote language-model fallback with a safe "Other" default.
package categorize

import (
	"context"
	"time"

	"spendlyo/internal/logger"
	"spendlyo/internal/models"
)

// Classifier runs the two-tier classification waterfall: the keyword tier
// first, then the remote tier only when no keyword matched. It is stateless;
// every call starts fresh with no caching, retries, or cross-call state.
type Classifier struct {
	remote  RemoteClassifier
	timeout time.Duration
}

// NewClassifier creates a Classifier. remote may be nil when no provider is
// configured; classification then degrades to keyword-or-Other. timeout
// bounds each remote call so a hung service cannot block a request forever.
func NewClassifier(remote RemoteClassifier, timeout time.Duration) *Classifier {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Classifier{remote: remote, timeout: timeout}
}

// Classify assigns a category to the given text. It never fails: any remote
// error, timeout, or malformed reply collapses into {Other, text} so the
// user is never blocked from recording an expense.
//
// A keyword hit short-circuits the remote call entirely. That is a
// cost/latency decision: a single substring match is treated as fully
// confident and the remote result is never reconciled against it.
func (c *Classifier) Classify(ctx context.Context, text string, amount int64) Result {
	if category, ok := ClassifyByKeyword(text); ok {
		return Result{Category: category, Note: text}
	}

	if c.remote == nil {
		return Result{Category: models.CategoryOther, Note: text}
	}

	remoteCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.remote.Classify(remoteCtx, text, amount)
	if err != nil {
		// Deliberately collapsed failure taxonomy: network errors, bad
		// JSON, and hallucinated categories all land on the same default.
		logger.Get().Warnw("remote categorization failed, falling back to Other",
			"error", err.Error(),
		)
		return Result{Category: models.CategoryOther, Note: text}
	}

	return result
}
