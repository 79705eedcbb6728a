package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "spendlyo/internal/errors"
	"spendlyo/internal/services"
)

// ChatHandler handles AI assistant requests
type ChatHandler struct {
	chatService services.ChatServicer
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(chatService services.ChatServicer) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// ChatRequest represents a user message to the assistant
type ChatRequest struct {
	Message string `json:"message" binding:"required,max=2000"`
}

// Chat forwards a message to the AI financial assistant
// @Summary     Ask the financial assistant
// @Description Send a message to the AI assistant; the reply is grounded in the user's recent transactions
// @Tags        chat
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ChatRequest true "User message"
// @Success     200 {object} services.ChatReply "Assistant reply"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Assistant unavailable"
// @Router      /chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	reply, err := h.chatService.Ask(c.Request.Context(), userID, req.Message)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, reply)
}
