package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"

	"spendlyo/internal/models"
	"spendlyo/internal/testutil"
)

func newChatTestClient(upstream *httptest.Server) *openai.Client {
	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = upstream.URL
	return openai.NewClientWithConfig(cfg)
}

func TestAskRequiresMessage(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	service := NewChatService(db, nil, "test-model")

	_, err := service.Ask(context.Background(), "user-1", "   ")
	testutil.AssertAppError(t, err, "INVALID_INPUT")
}

func TestAskWithoutConfiguredClient(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	service := NewChatService(db, nil, "test-model")

	_, err := service.Ask(context.Background(), "user-1", "how much did I spend?")
	testutil.AssertAppError(t, err, "CHAT_UNAVAILABLE")
}

func TestAsk(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"choices": [
				{"message": {"role": "assistant", "content": "You spent most on Food this month."}}
			]
		}`))
	}))
	defer server.Close()

	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	user := testutil.CreateTestUser(t, db)
	testutil.CreateTestTransaction(t, db, user.ID)

	service := NewChatService(db, newChatTestClient(server), "test-model")

	reply, err := service.Ask(context.Background(), user.ID, "where does my money go?")
	testutil.AssertNoError(t, err)
	if reply.Message != "You spent most on Food this month." {
		t.Errorf("Message = %q", reply.Message)
	}
	if !reply.HasTransactionData {
		t.Error("HasTransactionData = false, want true")
	}
}

func TestAskNoTransactionHistory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"choices": [
				{"message": {"role": "assistant", "content": "Add some transactions first!"}}
			]
		}`))
	}))
	defer server.Close()

	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	user := testutil.CreateTestUser(t, db)

	service := NewChatService(db, newChatTestClient(server), "test-model")

	reply, err := service.Ask(context.Background(), user.ID, "any tips?")
	testutil.AssertNoError(t, err)
	if reply.HasTransactionData {
		t.Error("HasTransactionData = true for empty history")
	}
}

func TestAskUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"overloaded"}}`, http.StatusServiceUnavailable)
	}))
	defer server.Close()

	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	user := testutil.CreateTestUser(t, db)

	service := NewChatService(db, newChatTestClient(server), "test-model")

	_, err := service.Ask(context.Background(), user.ID, "hello")
	testutil.AssertAppError(t, err, "CHAT_UNAVAILABLE")
}

func TestBuildAdvisorPrompt(t *testing.T) {
	prompt := buildAdvisorPrompt(nil)
	if !strings.Contains(prompt, "no transaction history") {
		t.Error("empty-history prompt missing the no-data note")
	}

	transactions := []models.Transaction{
		{Type: models.TransactionTypeIncome, Category: models.CategorySalary, Amount: 50000, Date: time.Now()},
		{Type: models.TransactionTypeExpense, Category: models.CategoryBill, Amount: 8000, Date: time.Now()},
		{Type: models.TransactionTypeExpense, Category: models.CategoryFood, Amount: 1200, Date: time.Now()},
	}
	prompt = buildAdvisorPrompt(transactions)

	for _, want := range []string{"₹50000", "₹9200", "₹40800", "Bill: ₹8000", "Food: ₹1200"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
