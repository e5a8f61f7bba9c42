package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"najdimajstra/internal/events"
	"najdimajstra/internal/model"
)

var (
	// ErrSessionNotFound is returned for unknown or expired session IDs
	ErrSessionNotFound = errors.New("session not found")
	// ErrInvalidCategory is returned when a session is opened or switched to
	// a category the service does not handle
	ErrInvalidCategory = errors.New("invalid category")
)

// backgroundTimeout bounds transcript logging after a turn
const backgroundTimeout = 5 * time.Second

// SessionStore persists conversation sessions between turns
type SessionStore interface {
	Save(session *model.Session)
	Get(id string) (*model.Session, bool)
	Delete(id string)
}

// EvictionNotifier is implemented by stores that drop sessions on their own,
// for example when a TTL runs out
type EvictionNotifier interface {
	OnEvicted(f func(id string))
}

// TurnLogger writes processed turns to the transcript log
type TurnLogger interface {
	LogTurn(ctx context.Context, entry model.TurnLog) error
}

// StreamCallback receives progress events of a streamed turn
type StreamCallback func(event string, data any) error

// TurnResult is the outcome of one submitted user turn
type TurnResult struct {
	Session       *model.Session
	UserTurn      model.Turn
	AssistantTurn model.Turn
	Response      model.AIResponse
	Took          time.Duration
}

// ChatService owns conversation sessions for the HTTP layer. Turns of one
// session are processed one at a time.
type ChatService struct {
	dispatcher *Dispatcher
	store      SessionStore
	turnLog    TurnLogger
	publisher  events.Publisher
	logger     *zap.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewChatService creates a chat service. turnLog and publisher may be nil.
func NewChatService(dispatcher *Dispatcher, store SessionStore, turnLog TurnLogger, publisher events.Publisher, logger *zap.Logger) *ChatService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &ChatService{
		dispatcher: dispatcher,
		store:      store,
		turnLog:    turnLog,
		publisher:  publisher,
		logger:     logger,
		locks:      make(map[string]*sync.Mutex),
	}
	if notifier, ok := store.(EvictionNotifier); ok {
		notifier.OnEvicted(s.releaseLock)
	}
	return s
}

// Greeting returns the opening message of a category dialog
func (s *ChatService) Greeting(category model.Category, language model.Language) string {
	return s.dispatcher.Greeting(category, language)
}

// OpenSession starts a dialog and records the greeting as its first turn
func (s *ChatService) OpenSession(category model.Category, language model.Language) (*model.Session, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}

	session := model.NewSession(category, language)
	session.AppendAssistant(s.dispatcher.Greeting(category, language), nil)
	s.store.Save(session)

	s.logger.Info("session opened",
		zap.String("session_id", session.ID),
		zap.String("category", string(category)),
		zap.String("language", string(language)),
	)
	return session, nil
}

// GetSession returns a copy of a session
func (s *ChatService) GetSession(id string) (*model.Session, error) {
	session, ok := s.store.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// CloseSession removes a session
func (s *ChatService) CloseSession(id string) error {
	lock := s.sessionLock(id)
	lock.Lock()
	defer lock.Unlock()

	if _, ok := s.store.Get(id); !ok {
		s.dropLock(id)
		return ErrSessionNotFound
	}
	s.store.Delete(id)
	s.dropLock(id)
	return nil
}

// ChangeCategory switches the dialog category. A real change resets the
// conversation and greets in the new category.
func (s *ChatService) ChangeCategory(id string, category model.Category) (*model.Session, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}

	return s.update(id, func(session *model.Session) {
		if session.SetCategory(category) {
			session.AppendAssistant(s.dispatcher.Greeting(category, session.Language), nil)
		}
	})
}

// ResetSession clears the conversation and greets again
func (s *ChatService) ResetSession(id string) (*model.Session, error) {
	return s.update(id, func(session *model.Session) {
		session.Reset()
		session.AppendAssistant(s.dispatcher.Greeting(session.Category, session.Language), nil)
	})
}

func (s *ChatService) update(id string, fn func(*model.Session)) (*model.Session, error) {
	lock := s.sessionLock(id)
	lock.Lock()
	defer lock.Unlock()

	session, ok := s.store.Get(id)
	if !ok {
		s.dropLock(id)
		return nil, ErrSessionNotFound
	}
	fn(session)
	s.store.Save(session)
	return session.Clone(), nil
}

// SubmitTurn processes one user utterance. An empty language keeps the
// session language.
func (s *ChatService) SubmitTurn(ctx context.Context, id, text, language string) (*TurnResult, error) {
	return s.submit(ctx, id, text, language, nil)
}

// SubmitTurnStream is SubmitTurn reporting thinking, signals and response
// events through callback
func (s *ChatService) SubmitTurnStream(ctx context.Context, id, text, language string, callback StreamCallback) (*TurnResult, error) {
	return s.submit(ctx, id, text, language, callback)
}

func (s *ChatService) submit(ctx context.Context, id, text, language string, callback StreamCallback) (*TurnResult, error) {
	emit := func(event string, data any) {
		if callback == nil {
			return
		}
		if err := callback(event, data); err != nil {
			s.logger.Debug("stream callback failed", zap.String("event", event), zap.Error(err))
		}
	}

	lock := s.sessionLock(id)
	lock.Lock()
	defer lock.Unlock()

	session, ok := s.store.Get(id)
	if !ok {
		s.dropLock(id)
		return nil, ErrSessionNotFound
	}

	startTime := time.Now()

	if strings.TrimSpace(language) != "" {
		session.Language = model.ParseLanguage(language)
	}

	history := session.History()
	userTurn := session.AppendUser(text)

	emit("thinking", map[string]any{
		"session_id": session.ID,
		"category":   session.Category,
	})

	response := s.dispatcher.ProcessTurn(ctx, text, session.Category, history, session.Language)

	emit("signals", response.Signals)

	assistantTurn := session.AppendAssistant(response.Text, response.CandidateIDs)
	s.store.Save(session)

	took := time.Since(startTime)
	result := &TurnResult{
		Session:       session.Clone(),
		UserTurn:      userTurn,
		AssistantTurn: assistantTurn,
		Response:      response,
		Took:          took,
	}

	emit("response", result.ToResponse())

	s.logger.Info("turn processed",
		zap.String("session_id", session.ID),
		zap.String("category", string(session.Category)),
		zap.Bool("hazard", response.Signals.HazardDetected),
		zap.Int("candidates", len(response.CandidateIDs)),
		zap.Duration("took", took),
	)

	s.record(session, text, response, took)

	return result, nil
}

// record logs the turn and publishes its event (non-blocking)
func (s *ChatService) record(session *model.Session, text string, response model.AIResponse, took time.Duration) {
	entry := model.TurnLog{
		SessionID:      session.ID,
		Category:       session.Category,
		Language:       session.Language,
		UserText:       text,
		ResponseText:   response.Text,
		Signals:        response.Signals,
		CandidateIDs:   response.CandidateIDs,
		ResponseTimeMs: int(took.Milliseconds()),
	}
	event := events.TurnProcessed{
		SessionID:    session.ID,
		Category:     session.Category,
		Language:     session.Language,
		Signals:      response.Signals,
		CandidateIDs: response.CandidateIDs,
		Timestamp:    time.Now().UTC(),
	}

	go func() {
		if s.turnLog != nil {
			ctx, cancel := context.WithTimeout(context.Background(), backgroundTimeout)
			defer cancel()
			if err := s.turnLog.LogTurn(ctx, entry); err != nil {
				s.logger.Warn("failed to log turn", zap.String("session_id", entry.SessionID), zap.Error(err))
			}
		}
		if err := s.publisher.PublishTurn(event); err != nil {
			s.logger.Warn("failed to publish turn event", zap.String("session_id", event.SessionID), zap.Error(err))
		}
	}()
}

func (s *ChatService) sessionLock(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[id] = lock
	}
	return lock
}

func (s *ChatService) dropLock(id string) {
	s.mu.Lock()
	delete(s.locks, id)
	s.mu.Unlock()
}

// releaseLock forgets the lock of an evicted session unless a turn still
// holds it. That turn saves the session back, so its lock stays in use.
func (s *ChatService) releaseLock(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[id]
	if !ok || !lock.TryLock() {
		return
	}
	delete(s.locks, id)
	lock.Unlock()
}

// ToResponse converts the result to its wire form
func (r *TurnResult) ToResponse() model.TurnResponse {
	return model.TurnResponse{
		SessionID:     r.Session.ID,
		UserTurn:      r.UserTurn,
		AssistantTurn: r.AssistantTurn,
		CandidateIDs:  r.Response.CandidateIDs,
		Candidates:    r.Response.Candidates,
		Signals:       r.Response.Signals,
		Took:          r.Took.Milliseconds(),
	}
}
