package handler

import (
	"net/http"

	"najdimajstra/internal/model"

	"github.com/gin-gonic/gin"
)

// validActions are the user actions recorded on a suggested master
var validActions = map[string]bool{
	"click":        true,
	"contact":      true,
	"view_profile": true,
}

// FeedbackHandler handles feedback-related HTTP requests
type FeedbackHandler struct {
	masterService MasterService
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(masterService MasterService) *FeedbackHandler {
	return &FeedbackHandler{
		masterService: masterService,
	}
}

// Submit handles POST /api/v1/feedback
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req model.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if !validActions[req.Action] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action. Must be one of: click, contact, view_profile"})
		return
	}

	err := h.masterService.LogFeedback(c.Request.Context(), req.SessionID, req.MasterID, req.Action)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log feedback: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.FeedbackResponse{
		Success: true,
		Message: "Feedback logged successfully",
	})
}
