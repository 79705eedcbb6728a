package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spendlyo/internal/categorize"
	apperrors "spendlyo/internal/errors"
)

// CategorizeHandler exposes the classification pipeline over HTTP.
type CategorizeHandler struct {
	classifier *categorize.Classifier
}

// NewCategorizeHandler creates a new CategorizeHandler
func NewCategorizeHandler(classifier *categorize.Classifier) *CategorizeHandler {
	return &CategorizeHandler{classifier: classifier}
}

// CategorizeRequest represents text to categorize with its extracted amount
type CategorizeRequest struct {
	Text   string `json:"text" binding:"required,max=500"`
	Amount int64  `json:"amount" binding:"min=0"`
}

// Categorize classifies expense text
// @Summary     Categorize expense text
// @Description Assign a category to free expense text. Categorization never fails: when neither the keyword tier nor the remote tier can classify the text, the result is category "Other" with HTTP 200. Only malformed request bodies produce an error status.
// @Tags        categorize
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CategorizeRequest true "Text and amount"
// @Success     200 {object} categorize.Result "Category and cleaned note"
// @Failure     400 {object} ErrorResponse "Malformed request body"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /categorize [post]
func (h *CategorizeHandler) Categorize(c *gin.Context) {
	var req CategorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result := h.classifier.Classify(c.Request.Context(), req.Text, req.Amount)
	c.JSON(http.StatusOK, result)
}

// ExtractAmount parses an amount out of free text
// @Summary     Extract amount from text
// @Description Pull the first numeric amount candidate out of free quick-add text. Returns a null amount when no number is present; the client should then ask for an explicit amount.
// @Tags        categorize
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ExtractAmountRequest true "Text to parse"
// @Success     200 {object} categorize.ParsedExpense "Extracted amount and raw text"
// @Failure     400 {object} ErrorResponse "Malformed request body"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /categorize/amount [post]
func (h *CategorizeHandler) ExtractAmount(c *gin.Context) {
	var req ExtractAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	c.JSON(http.StatusOK, categorize.ExtractAmount(req.Text))
}

// ExtractAmountRequest represents text to run amount extraction on
type ExtractAmountRequest struct {
	Text string `json:"text" binding:"required,max=500"`
}
