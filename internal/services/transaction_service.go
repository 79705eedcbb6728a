package services

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"time"

	"gorm.io/gorm"

	"spendlyo/internal/categorize"
	apperrors "spendlyo/internal/errors"
	"spendlyo/internal/models"
	"spendlyo/internal/pagination"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db         *gorm.DB
	classifier *categorize.Classifier
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, classifier *categorize.Classifier) TransactionServicer {
	return &transactionService{db: db, classifier: classifier}
}

// CreateTransaction records a manually entered transaction. Amount must be a
// positive magnitude; the sign is carried by the transaction type.
func (s *transactionService) CreateTransaction(
	userID string,
	transactionType models.TransactionType,
	category models.Category,
	amount int64,
	description string,
	date time.Time,
) (*models.Transaction, error) {
	if transactionType != models.TransactionTypeIncome && transactionType != models.TransactionTypeExpense {
		return nil, apperrors.ErrInvalidTransactionType
	}
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
	}
	if !category.Valid() {
		category = models.CategoryOther
	}
	if date.IsZero() {
		date = time.Now()
	}

	transaction := &models.Transaction{
		UserID:      userID,
		Type:        transactionType,
		Category:    category,
		Amount:      amount,
		Description: description,
		Date:        date,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return transaction, nil
}

// QuickAdd turns free text ("spent 120 on chai") into a recorded transaction:
// amount extraction first, then the classification waterfall. A missing
// amount is the only failure surfaced to the caller; categorization itself
// always succeeds, degrading to Other at worst.
func (s *transactionService) QuickAdd(
	ctx context.Context,
	userID, text string,
	transactionType models.TransactionType,
	date time.Time,
) (*models.Transaction, error) {
	parsed := categorize.ExtractAmount(text)
	if parsed.Amount == nil {
		return nil, apperrors.ErrAmountNotFound
	}
	if *parsed.Amount <= 0 {
		return nil, apperrors.ErrAmountNotFound
	}

	result := s.classifier.Classify(ctx, parsed.RawText, *parsed.Amount)

	return s.CreateTransaction(userID, transactionType, result.Category, *parsed.Amount, result.Note, date)
}

// GetUserTransactions retrieves a paginated, filtered list of the user's
// transactions, newest first.
func (s *transactionService) GetUserTransactions(
	userID string,
	page pagination.PageRequest,
	filter TransactionFilter,
) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	if filter.Type != nil {
		base = base.Where("type = ?", *filter.Type)
	}
	if filter.Category != nil {
		base = base.Where("category = ?", *filter.Category)
	}
	if filter.FromDate != nil {
		base = base.Where("date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		base = base.Where("date <= ?", *filter.ToDate)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Order("date DESC, created_at DESC").
		Scopes(pagination.Paginate(page)).
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetTransactionByID retrieves a transaction by ID for a specific user
func (s *transactionService) GetTransactionByID(userID, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// UpdateTransaction applies an explicit edit to an existing transaction.
func (s *transactionService) UpdateTransaction(
	userID, transactionID string,
	description *string,
	amount *int64,
	category *models.Category,
	transactionType *models.TransactionType,
	date *time.Time,
) (*models.Transaction, error) {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if description != nil {
		updates["description"] = *description
	}
	if amount != nil {
		if *amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
		}
		updates["amount"] = *amount
	}
	if category != nil {
		if !category.Valid() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown category")
		}
		updates["category"] = *category
	}
	if transactionType != nil {
		if *transactionType != models.TransactionTypeIncome && *transactionType != models.TransactionTypeExpense {
			return nil, apperrors.ErrInvalidTransactionType
		}
		updates["type"] = *transactionType
	}
	if date != nil {
		updates["date"] = *date
	}

	if len(updates) > 0 {
		if err := s.db.Model(transaction).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return transaction, nil
}

// DeleteTransaction deletes a transaction
func (s *transactionService) DeleteTransaction(userID, transactionID string) error {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetSummary computes the dashboard totals for a user.
func (s *transactionService) GetSummary(userID string) (*Summary, error) {
	var summary Summary

	row := s.db.Model(&models.Transaction{}).
		Select(
			"COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) AS total_income, "+
				"COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) AS total_expense, "+
				"COUNT(*) AS transaction_count",
			models.TransactionTypeIncome, models.TransactionTypeExpense,
		).
		Where("user_id = ?", userID)

	if err := row.Scan(&summary).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary.Balance = summary.TotalIncome - summary.TotalExpense
	return &summary, nil
}

// GetCategoryBreakdown returns total expense per category, largest first.
func (s *transactionService) GetCategoryBreakdown(userID string) ([]CategoryTotal, error) {
	var breakdown []CategoryTotal
	err := s.db.Model(&models.Transaction{}).
		Select("category, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND type = ?", userID, models.TransactionTypeExpense).
		Group("category").
		Order("total DESC").
		Scan(&breakdown).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return breakdown, nil
}

// ExportCSV writes all of the user's transactions to w as CSV, newest first.
func (s *transactionService) ExportCSV(userID string, w io.Writer) error {
	var transactions []models.Transaction
	if err := s.db.Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&transactions).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"Date", "Description", "Category", "Type", "Amount"}); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for _, t := range transactions {
		record := []string{
			t.Date.Format("2006-01-02"),
			t.Description,
			string(t.Category),
			string(t.Type),
			strconv.FormatInt(t.Amount, 10),
		}
		if err := writer.Write(record); err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
