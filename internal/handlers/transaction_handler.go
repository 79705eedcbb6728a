package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "spendlyo/internal/errors"
	"spendlyo/internal/models"
	"spendlyo/internal/pagination"
	"spendlyo/internal/services"
)

const dateLayout = "2006-01-02"

// TransactionHandler handles transaction-related requests
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the request payload for creating a transaction
type CreateTransactionRequest struct {
	Type        string `json:"type" binding:"required,transaction_type"`
	Category    string `json:"category" binding:"omitempty,category"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	Description string `json:"description" binding:"max=500"`
	Date        string `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateTransactionRequest represents the request payload for updating a transaction
type UpdateTransactionRequest struct {
	Type        *string `json:"type" binding:"omitempty,transaction_type"`
	Category    *string `json:"category" binding:"omitempty,category"`
	Amount      *int64  `json:"amount" binding:"omitempty,gt=0"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Date        *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// QuickAddRequest represents the free-text quick-add payload
type QuickAddRequest struct {
	Text string `json:"text" binding:"required,max=500"`
	Type string `json:"type" binding:"omitempty,transaction_type"`
	Date string `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// listTransactionsQuery holds pagination plus optional filters
type listTransactionsQuery struct {
	pagination.PageRequest
	Type     string `form:"type" binding:"omitempty,transaction_type"`
	Category string `form:"category" binding:"omitempty,category"`
	From     string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To       string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Record a new income or expense transaction
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date := time.Now()
	if req.Date != "" {
		date, _ = time.Parse(dateLayout, req.Date)
	}

	transaction, err := h.transactionService.CreateTransaction(
		userID,
		models.TransactionType(req.Type),
		models.ParseCategory(req.Category),
		req.Amount,
		req.Description,
		date,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// QuickAdd handles free-text transaction entry
// @Summary     Quick add a transaction
// @Description Create a transaction from free text like "spent 120 on chai"; the amount is extracted and the text is categorized automatically
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body QuickAddRequest true "Free text and optional type/date"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input or no amount found"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/quick-add [post]
func (h *TransactionHandler) QuickAdd(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req QuickAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transactionType := models.TransactionTypeExpense
	if req.Type != "" {
		transactionType = models.TransactionType(req.Type)
	}

	date := time.Now()
	if req.Date != "" {
		date, _ = time.Parse(dateLayout, req.Date)
	}

	transaction, err := h.transactionService.QuickAdd(c.Request.Context(), userID, req.Text, transactionType, date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// GetUserTransactions handles listing the user's transactions
// @Summary     List transactions
// @Description Get a paginated list of the authenticated user's transactions, newest first
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size (max 100)"
// @Param       type query string false "Filter by type (income/expense)"
// @Param       category query string false "Filter by category"
// @Param       from query string false "Filter from date (YYYY-MM-DD)"
// @Param       to query string false "Filter to date (YYYY-MM-DD)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid query parameters"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) GetUserTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query listTransactionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var filter services.TransactionFilter
	if query.Type != "" {
		t := models.TransactionType(query.Type)
		filter.Type = &t
	}
	if query.Category != "" {
		cat := models.Category(query.Category)
		filter.Category = &cat
	}
	if query.From != "" {
		from, _ := time.Parse(dateLayout, query.From)
		filter.FromDate = &from
	}
	if query.To != "" {
		// Include the whole end day
		to, _ := time.Parse(dateLayout, query.To)
		to = to.Add(24*time.Hour - time.Nanosecond)
		filter.ToDate = &to
	}

	result, err := h.transactionService.GetUserTransactions(userID, query.PageRequest, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTransactionByID handles retrieval of a single transaction
// @Summary     Get transaction by ID
// @Description Get a specific transaction by ID
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction "Transaction details"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetTransactionByID(userID, transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// UpdateTransaction handles editing an existing transaction
// @Summary     Update transaction
// @Description Update fields of an existing transaction
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Param       request body UpdateTransactionRequest true "Fields to update"
// @Success     200 {object} models.Transaction "Updated transaction"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var category *models.Category
	if req.Category != nil {
		cat := models.Category(*req.Category)
		category = &cat
	}
	var transactionType *models.TransactionType
	if req.Type != nil {
		t := models.TransactionType(*req.Type)
		transactionType = &t
	}
	var date *time.Time
	if req.Date != nil {
		d, _ := time.Parse(dateLayout, *req.Date)
		date = &d
	}

	transaction, err := h.transactionService.UpdateTransaction(
		userID, transactionID, req.Description, req.Amount, category, transactionType, date,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// DeleteTransaction handles deleting a transaction
// @Summary     Delete transaction
// @Description Delete a transaction by ID
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} MessageResponse "Transaction deleted"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(userID, transactionID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}

// GetSummary handles the dashboard totals
// @Summary     Get dashboard summary
// @Description Get total balance, income, and expense for the authenticated user
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.Summary "Dashboard totals"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/summary [get]
func (h *TransactionHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.transactionService.GetSummary(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetCategoryBreakdown handles the per-category expense breakdown
// @Summary     Get category breakdown
// @Description Get total expense per category, largest first
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} services.CategoryTotal "Per-category expense totals"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/categories [get]
func (h *TransactionHandler) GetCategoryBreakdown(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	breakdown, err := h.transactionService.GetCategoryBreakdown(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": breakdown})
}

// ExportTransactions streams the user's transactions as CSV
// @Summary     Export transactions as CSV
// @Description Download all of the user's transactions as a CSV file
// @Tags        transactions
// @Produce     text/csv
// @Security    BearerAuth
// @Success     200 {string} string "CSV data"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/export [get]
func (h *TransactionHandler) ExportTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filename := fmt.Sprintf("transactions_%s.csv", time.Now().Format(dateLayout))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.transactionService.ExportCSV(userID, c.Writer); err != nil {
		respondWithError(c, err)
		return
	}
}
