package services

import (
	"context"
	"io"
	"time"

	"spendlyo/internal/models"
	"spendlyo/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
	Type     *models.TransactionType
	Category *models.Category
}

// Summary contains the derived aggregate totals shown on the dashboard.
// Balance is income minus expense; all values are whole rupees.
type Summary struct {
	Balance          int64 `json:"balance"`
	TotalIncome      int64 `json:"total_income"`
	TotalExpense     int64 `json:"total_expense"`
	TransactionCount int64 `json:"transaction_count"`
}

// CategoryTotal is one slice of the per-category expense breakdown.
type CategoryTotal struct {
	Category models.Category `json:"category"`
	Total    int64           `json:"total"`
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID string, transactionType models.TransactionType, category models.Category, amount int64, description string, date time.Time) (*models.Transaction, error)
	QuickAdd(ctx context.Context, userID, text string, transactionType models.TransactionType, date time.Time) (*models.Transaction, error)
	GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID string) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID string, description *string, amount *int64, category *models.Category, transactionType *models.TransactionType, date *time.Time) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
	GetSummary(userID string) (*Summary, error)
	GetCategoryBreakdown(userID string) ([]CategoryTotal, error)
	ExportCSV(userID string, w io.Writer) error
}

// ChatReply is the assistant's answer to a user message.
type ChatReply struct {
	Message            string `json:"message"`
	HasTransactionData bool   `json:"has_transaction_data"`
}

// ChatServicer defines the contract for the AI financial assistant.
type ChatServicer interface {
	Ask(ctx context.Context, userID, message string) (*ChatReply, error)
}
