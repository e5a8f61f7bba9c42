package handler

import (
	"context"
	"net/http"
	"strings"

	"najdimajstra/internal/model"

	"github.com/gin-gonic/gin"
)

// MasterService is what the master, embedding and feedback handlers need
type MasterService interface {
	GetMaster(ctx context.Context, id string) (*model.Master, error)
	UpdateEmbeddings(ctx context.Context, items []model.EmbeddingItem) (int, []string)
	LogFeedback(ctx context.Context, sessionID, masterID, action string) error
}

// MasterHandler handles master profile requests
type MasterHandler struct {
	masterService MasterService
}

// NewMasterHandler creates a new master handler
func NewMasterHandler(masterService MasterService) *MasterHandler {
	return &MasterHandler{
		masterService: masterService,
	}
}

// GetMaster handles GET /api/v1/masters/:id
func (h *MasterHandler) GetMaster(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid master ID"})
		return
	}

	master, err := h.masterService.GetMaster(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get master: " + err.Error()})
		return
	}

	if master == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Master not found"})
		return
	}

	c.JSON(http.StatusOK, master)
}
