package categorize

import (
	"context"
	"errors"
	"testing"
	"time"

	"spendlyo/internal/models"
)

// fakeRemote is a scriptable RemoteClassifier that records whether it was
// called.
type fakeRemote struct {
	calls  int
	result Result
	err    error
}

func (f *fakeRemote) Classify(_ context.Context, _ string, _ int64) (Result, error) {
	f.calls++
	return f.result, f.err
}

func TestClassifyKeywordShortCircuit(t *testing.T) {
	remote := &fakeRemote{result: Result{Category: models.CategoryTravel, Note: "never used"}}
	classifier := NewClassifier(remote, time.Second)

	got := classifier.Classify(context.Background(), "dosa 80", 80)

	if got.Category != models.CategoryFood {
		t.Errorf("Category = %s, want %s", got.Category, models.CategoryFood)
	}
	if got.Note != "dosa 80" {
		t.Errorf("Note = %q, want original text", got.Note)
	}
	if remote.calls != 0 {
		t.Errorf("remote called %d times, want 0 on a keyword hit", remote.calls)
	}
}

func TestClassifyRemoteFallback(t *testing.T) {
	remote := &fakeRemote{result: Result{Category: models.CategoryTravel, Note: "goa trip"}}
	classifier := NewClassifier(remote, time.Second)

	got := classifier.Classify(context.Background(), "goa me masti", 5000)

	if remote.calls != 1 {
		t.Fatalf("remote called %d times, want 1", remote.calls)
	}
	if got.Category != models.CategoryTravel || got.Note != "goa trip" {
		t.Errorf("got %+v, want remote result passed through", got)
	}
}

func TestClassifyRemoteFailure(t *testing.T) {
	remote := &fakeRemote{err: errors.New("upstream unavailable")}
	classifier := NewClassifier(remote, time.Second)

	got := classifier.Classify(context.Background(), "xyz totally unknown term", 100)

	if got.Category != models.CategoryOther {
		t.Errorf("Category = %s, want %s on remote failure", got.Category, models.CategoryOther)
	}
	if got.Note != "xyz totally unknown term" {
		t.Errorf("Note = %q, want original text on remote failure", got.Note)
	}
}

func TestClassifyNoRemoteConfigured(t *testing.T) {
	classifier := NewClassifier(nil, time.Second)

	got := classifier.Classify(context.Background(), "xyz totally unknown term", 100)

	if got.Category != models.CategoryOther || got.Note != "xyz totally unknown term" {
		t.Errorf("got %+v, want Other with original text", got)
	}
}

type blockingRemote struct{}

func (blockingRemote) Classify(ctx context.Context, _ string, _ int64) (Result, error) {
	<-ctx.Done()
	return Result{}, ctx.Err()
}

func TestClassifyRemoteTimeout(t *testing.T) {
	classifier := NewClassifier(blockingRemote{}, 10*time.Millisecond)

	start := time.Now()
	got := classifier.Classify(context.Background(), "xyz totally unknown term", 100)

	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("classification took %s, timeout not enforced", elapsed)
	}
	if got.Category != models.CategoryOther {
		t.Errorf("Category = %s, want %s on timeout", got.Category, models.CategoryOther)
	}
}

func TestClassifyAlwaysReturnsValidCategory(t *testing.T) {
	inputs := []string{
		"chai 20",
		"xyz totally unknown term",
		"",
		"₹₹₹",
		"spent 120 on 2 chai",
	}
	classifier := NewClassifier(&fakeRemote{err: errors.New("down")}, time.Second)
	for _, input := range inputs {
		got := classifier.Classify(context.Background(), input, 0)
		if !got.Category.Valid() {
			t.Errorf("Classify(%q) produced unknown category %q", input, got.Category)
		}
	}
}
