package model

// GreetingResponse represents the opening message of a category dialog
type GreetingResponse struct {
	Category Category `json:"category"`
	Language Language `json:"language"`
	Text     string   `json:"text"`
}

// OpenSessionRequest opens a category-specific dialog
type OpenSessionRequest struct {
	Category string `json:"category" binding:"required"`
	Language string `json:"language,omitempty"`
}

// TurnRequest submits one user utterance
type TurnRequest struct {
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
}

// ChangeCategoryRequest switches a session to another category
type ChangeCategoryRequest struct {
	Category string `json:"category" binding:"required"`
}

// TurnResponse is returned after a user turn has been processed
type TurnResponse struct {
	SessionID     string      `json:"session_id"`
	UserTurn      Turn        `json:"user_turn"`
	AssistantTurn Turn        `json:"assistant_turn"`
	CandidateIDs  []string    `json:"candidate_ids,omitempty"`
	Candidates    []Candidate `json:"candidates,omitempty"`
	Signals       SignalSet   `json:"signals"`
	Took          int64       `json:"took_ms"` // Processing time in milliseconds
}

// EmbeddingBatchRequest represents a batch embedding update request
type EmbeddingBatchRequest struct {
	Embeddings []EmbeddingItem `json:"embeddings" binding:"required"`
}

// EmbeddingItem represents a single profile embedding
type EmbeddingItem struct {
	MasterID  string    `json:"master_id" binding:"required"`
	Embedding []float32 `json:"embedding" binding:"required"`
	Text      string    `json:"text,omitempty"` // The text used to generate embedding
}

// EmbeddingBatchResponse represents the response for batch embedding update
type EmbeddingBatchResponse struct {
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors,omitempty"`
}

// FeedbackRequest represents a user action on a suggested master
type FeedbackRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	MasterID  string `json:"master_id" binding:"required"`
	Action    string `json:"action" binding:"required"` // click, contact, view_profile
}

// FeedbackResponse represents feedback response
type FeedbackResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// AssistantMessage is one message of a free-form assistant chat
type AssistantMessage struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content"`
}

// AssistantRequest forwards a chat history to the completion proxy
type AssistantRequest struct {
	Messages []AssistantMessage `json:"messages" binding:"required"`
}

// AssistantResponse is the proxy's reply
type AssistantResponse struct {
	Reply string `json:"reply"`
	Model string `json:"model,omitempty"`
}
