package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
	"gorm.io/gorm"

	apperrors "spendlyo/internal/errors"
	"spendlyo/internal/models"
)

// chatLookback is how many recent transactions feed the assistant's context.
const chatLookback = 50

// chatService forwards user questions to a chat completion service together
// with a summary of their recent finances. It is glue around the external
// model: no original logic beyond context assembly and response validation.
type chatService struct {
	db     *gorm.DB
	model  string
	client *openai.Client
}

// NewChatService creates a new ChatServicer. client may be nil when the
// assistant is not configured; Ask then fails with ErrChatUnavailable.
func NewChatService(db *gorm.DB, client *openai.Client, model string) ChatServicer {
	return &chatService{db: db, client: client, model: model}
}

// Ask answers a user's question about their finances.
func (s *chatService) Ask(ctx context.Context, userID, message string) (*ChatReply, error) {
	if strings.TrimSpace(message) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "message is required")
	}
	if s.client == nil {
		return nil, apperrors.ErrChatUnavailable
	}

	var transactions []models.Transaction
	if err := s.db.Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Limit(chatLookback).
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: buildAdvisorPrompt(transactions)},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
		Temperature: 0.7,
		MaxTokens:   1024,
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrChatUnavailable, err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return nil, apperrors.ErrChatUnavailable
	}

	return &ChatReply{
		Message:            resp.Choices[0].Message.Content,
		HasTransactionData: len(transactions) > 0,
	}, nil
}

// buildAdvisorPrompt assembles the system prompt with the user's financial
// summary so the model can reference real numbers instead of inventing them.
func buildAdvisorPrompt(transactions []models.Transaction) string {
	var context string
	if len(transactions) == 0 {
		context = "User has no transaction history yet."
	} else {
		var income, expense int64
		spending := make(map[models.Category]int64)
		for _, t := range transactions {
			switch t.Type {
			case models.TransactionTypeIncome:
				income += t.Amount
			case models.TransactionTypeExpense:
				expense += t.Amount
				spending[t.Category] += t.Amount
			}
		}

		type catAmount struct {
			category models.Category
			amount   int64
		}
		top := make([]catAmount, 0, len(spending))
		for c, a := range spending {
			top = append(top, catAmount{c, a})
		}
		sort.Slice(top, func(i, j int) bool { return top[i].amount > top[j].amount })
		if len(top) > 5 {
			top = top[:5]
		}
		parts := make([]string, len(top))
		for i, ca := range top {
			parts[i] = fmt.Sprintf("%s: ₹%d", ca.category, ca.amount)
		}

		context = fmt.Sprintf(`User's Financial Summary:
- Total Income: ₹%d
- Total Expenses: ₹%d
- Current Balance: ₹%d
- Top Spending Categories: %s
- Number of Transactions: %d`,
			income, expense, income-expense, strings.Join(parts, ", "), len(transactions))
	}

	return fmt.Sprintf(`You are a helpful and professional financial advisor AI assistant for Spendlyo.

Your role:
- Provide personalized financial advice based on transaction history
- Help users understand spending patterns
- Suggest budgeting strategies and savings tips
- Be encouraging and supportive
- Use Indian Rupee (₹) for currency

Guidelines:
- Be concise and actionable (max 200 words)
- Reference the data provided
- Don't make up data
- If user has no data, encourage them to add transactions

%s`, context)
}
