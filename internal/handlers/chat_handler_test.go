package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "spendlyo/internal/errors"
	"spendlyo/internal/services"
)

type mockChatService struct {
	askFn func(ctx context.Context, userID, message string) (*services.ChatReply, error)
}

func (m *mockChatService) Ask(ctx context.Context, userID, message string) (*services.ChatReply, error) {
	if m.askFn != nil {
		return m.askFn(ctx, userID, message)
	}
	return &services.ChatReply{}, nil
}

var _ services.ChatServicer = (*mockChatService)(nil)

func setupChatRouter(handler *ChatHandler) *gin.Engine {
	r := gin.New()
	r.POST("/chat", injectUserID("user-1"), handler.Chat)
	return r
}

func TestChatHandler_Chat(t *testing.T) {
	t.Run("returns the assistant reply", func(t *testing.T) {
		chatSvc := &mockChatService{
			askFn: func(_ context.Context, _, message string) (*services.ChatReply, error) {
				return &services.ChatReply{Message: "You spent most on Food.", HasTransactionData: true}, nil
			},
		}
		r := setupChatRouter(NewChatHandler(chatSvc))

		rec := doRequest(r, "POST", "/chat", `{"message":"where does my money go?"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["message"] != "You spent most on Food." {
			t.Errorf("message = %v", result["message"])
		}
		if result["has_transaction_data"] != true {
			t.Error("has_transaction_data = false, want true")
		}
	})

	t.Run("returns 400 on missing message", func(t *testing.T) {
		r := setupChatRouter(NewChatHandler(&mockChatService{}))

		rec := doRequest(r, "POST", "/chat", `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 500 when the assistant is unavailable", func(t *testing.T) {
		chatSvc := &mockChatService{
			askFn: func(context.Context, string, string) (*services.ChatReply, error) {
				return nil, apperrors.ErrChatUnavailable
			},
		}
		r := setupChatRouter(NewChatHandler(chatSvc))

		rec := doRequest(r, "POST", "/chat", `{"message":"hello"}`)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CHAT_UNAVAILABLE")
	})
}
