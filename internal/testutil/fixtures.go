package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"spendlyo/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestTransaction creates an expense transaction with defaults.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID string) *models.Transaction {
	t.Helper()
	return CreateTestTransactionWith(t, db, userID, models.TransactionTypeExpense, models.CategoryFood, 100)
}

// CreateTestTransactionWith creates a transaction with the given type, category, and amount.
func CreateTestTransactionWith(t *testing.T, db *gorm.DB, userID string, transactionType models.TransactionType, category models.Category, amount int64) *models.Transaction {
	t.Helper()

	transaction := &models.Transaction{
		UserID:      userID,
		Type:        transactionType,
		Category:    category,
		Amount:      amount,
		Description: fmt.Sprintf("Test transaction %d", nextID()),
		Date:        time.Now(),
	}
	if err := db.Create(transaction).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return transaction
}
