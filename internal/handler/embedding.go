package handler

import (
	"fmt"
	"net/http"

	"najdimajstra/internal/model"

	"github.com/gin-gonic/gin"
)

// EmbeddingHandler handles profile embedding HTTP requests
type EmbeddingHandler struct {
	masterService MasterService
	dimensions    int
	maxBatch      int
}

// NewEmbeddingHandler creates a new embedding handler
func NewEmbeddingHandler(masterService MasterService, dimensions, maxBatch int) *EmbeddingHandler {
	return &EmbeddingHandler{
		masterService: masterService,
		dimensions:    dimensions,
		maxBatch:      maxBatch,
	}
}

// BatchUpdate handles POST /api/v1/masters/embeddings/batch
func (h *EmbeddingHandler) BatchUpdate(c *gin.Context) {
	var req model.EmbeddingBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if len(req.Embeddings) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No embeddings provided"})
		return
	}
	if h.maxBatch > 0 && len(req.Embeddings) > h.maxBatch {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Too many embeddings, at most %d per batch", h.maxBatch)})
		return
	}

	// Validate embedding dimensions
	for i, item := range req.Embeddings {
		if len(item.Embedding) != h.dimensions {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("Invalid embedding dimension at index %d, expected %d", i, h.dimensions),
			})
			return
		}
	}

	success, errs := h.masterService.UpdateEmbeddings(c.Request.Context(), req.Embeddings)

	response := model.EmbeddingBatchResponse{
		Success: success,
		Failed:  len(req.Embeddings) - success,
		Errors:  errs,
	}

	if len(errs) > 0 {
		c.JSON(http.StatusPartialContent, response)
	} else {
		c.JSON(http.StatusOK, response)
	}
}
