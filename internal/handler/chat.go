package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"najdimajstra/internal/model"
	"najdimajstra/internal/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles conversation-related HTTP requests
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// Greeting handles GET /api/v1/chat/greeting?category=&language=
func (h *ChatHandler) Greeting(c *gin.Context) {
	category, _ := model.ParseCategory(c.Query("category"))
	language := model.ParseLanguage(c.Query("language"))

	c.JSON(http.StatusOK, model.GreetingResponse{
		Category: category,
		Language: language,
		Text:     h.chatService.Greeting(category, language),
	})
}

// OpenSession handles POST /api/v1/chat/sessions
func (h *ChatHandler) OpenSession(c *gin.Context) {
	var req model.OpenSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	category, _ := model.ParseCategory(req.Category)
	session, err := h.chatService.OpenSession(category, model.ParseLanguage(req.Language))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

// GetSession handles GET /api/v1/chat/sessions/:id
func (h *ChatHandler) GetSession(c *gin.Context) {
	session, err := h.chatService.GetSession(c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// CloseSession handles DELETE /api/v1/chat/sessions/:id
func (h *ChatHandler) CloseSession(c *gin.Context) {
	if err := h.chatService.CloseSession(c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ChangeCategory handles PUT /api/v1/chat/sessions/:id/category
func (h *ChatHandler) ChangeCategory(c *gin.Context) {
	var req model.ChangeCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	category, _ := model.ParseCategory(req.Category)
	session, err := h.chatService.ChangeCategory(c.Param("id"), category)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ResetSession handles POST /api/v1/chat/sessions/:id/reset
func (h *ChatHandler) ResetSession(c *gin.Context) {
	session, err := h.chatService.ResetSession(c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SubmitTurn handles POST /api/v1/chat/sessions/:id/turns
func (h *ChatHandler) SubmitTurn(c *gin.Context) {
	var req model.TurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.chatService.SubmitTurn(c.Request.Context(), c.Param("id"), req.Text, req.Language)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result.ToResponse())
}

// SubmitTurnStream handles POST /api/v1/chat/sessions/:id/turns/stream - SSE streaming turn
func (h *ChatHandler) SubmitTurnStream(c *gin.Context) {
	var req model.TurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	// Unknown sessions get a plain JSON error before the stream starts
	if _, err := h.chatService.GetSession(c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}

	// Set SSE headers
	c.Header("Content-Type", "text/event-stream; charset=utf-8")
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Streaming not supported"})
		return
	}

	sendSSE(c, "start", map[string]any{"session_id": c.Param("id")})
	flusher.Flush()

	_, err := h.chatService.SubmitTurnStream(c.Request.Context(), c.Param("id"), req.Text, req.Language, func(event string, data any) error {
		sendSSE(c, event, data)
		flusher.Flush()
		return nil
	})
	if err != nil {
		sendSSE(c, "error", map[string]any{"error": err.Error()})
		flusher.Flush()
		return
	}

	sendSSE(c, "done", nil)
	flusher.Flush()
}

// sendSSE sends a Server-Sent Event
func sendSSE(c *gin.Context, event string, data any) {
	if data != nil {
		jsonData, err := json.Marshal(data)
		if err != nil {
			fmt.Fprintf(c.Writer, "event: error\ndata: {\"error\": \"JSON marshal failed\"}\n\n")
			return
		}
		fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", event, string(jsonData))
	} else {
		fmt.Fprintf(c.Writer, "event: %s\ndata: {}\n\n", event)
	}
}

// writeServiceError maps service errors to HTTP status codes
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	case errors.Is(err, service.ErrInvalidCategory):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category. Must be one of: urgent, regular, realization"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}
