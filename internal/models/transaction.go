package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a recorded income or expense. Amount is always a
// non-negative magnitude in whole rupees; the sign is carried by Type.
type Transaction struct {
	Base
	UserID      string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Category    Category        `gorm:"not null;default:Other" json:"category"`
	Amount      int64           `gorm:"type:bigint;not null" json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
}
