package handler

import (
	"context"
	"errors"
	"net/http"

	"najdimajstra/internal/model"
	"najdimajstra/internal/service"

	"github.com/gin-gonic/gin"
)

// Assistant answers free-form chats
type Assistant interface {
	IsEnabled() bool
	Model() string
	Reply(ctx context.Context, messages []model.AssistantMessage) (string, error)
}

// AssistantHandler proxies chats to the completion API
type AssistantHandler struct {
	assistant Assistant
}

// NewAssistantHandler creates a new assistant handler
func NewAssistantHandler(assistant Assistant) *AssistantHandler {
	return &AssistantHandler{assistant: assistant}
}

// Chat handles POST /api/v1/assistant/chat
func (h *AssistantHandler) Chat(c *gin.Context) {
	if !h.assistant.IsEnabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Assistant is not configured"})
		return
	}

	var req model.AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if len(req.Messages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No messages provided"})
		return
	}

	reply, err := h.assistant.Reply(c.Request.Context(), req.Messages)
	if errors.Is(err, service.ErrInvalidMessages) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Assistant failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.AssistantResponse{
		Reply: reply,
		Model: h.assistant.Model(),
	})
}
