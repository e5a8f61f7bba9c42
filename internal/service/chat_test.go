package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"najdimajstra/internal/bank"
	"najdimajstra/internal/events"
	"najdimajstra/internal/model"
)

// mapStore is an in-memory SessionStore that copies on the way in and out
type mapStore struct {
	mu       sync.Mutex
	sessions map[string]*model.Session
}

func newMapStore() *mapStore {
	return &mapStore{sessions: make(map[string]*model.Session)}
}

func (s *mapStore) Save(session *model.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session.Clone()
}

func (s *mapStore) Get(id string) (*model.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	return session.Clone(), true
}

func (s *mapStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// evictingStore drops sessions on demand and reports them like a TTL store
type evictingStore struct {
	*mapStore
	onEvicted func(id string)
}

func (s *evictingStore) OnEvicted(f func(id string)) { s.onEvicted = f }

func (s *evictingStore) expire(id string) {
	s.mapStore.Delete(id)
	s.onEvicted(id)
}

type chanTurnLogger struct {
	entries chan model.TurnLog
}

func (l *chanTurnLogger) LogTurn(_ context.Context, entry model.TurnLog) error {
	l.entries <- entry
	return nil
}

type chanPublisher struct {
	events chan events.TurnProcessed
}

func (p *chanPublisher) PublishTurn(event events.TurnProcessed) error {
	p.events <- event
	return nil
}

func (p *chanPublisher) Close() {}

func newTestChatService(lookup CandidateLookup) (*ChatService, *chanTurnLogger, *chanPublisher) {
	turnLog := &chanTurnLogger{entries: make(chan model.TurnLog, 64)}
	publisher := &chanPublisher{events: make(chan events.TurnProcessed, 64)}
	d := newTestDispatcher(lookup, 0)
	return NewChatService(d, newMapStore(), turnLog, publisher, zap.NewNop()), turnLog, publisher
}

func TestChatService_OpenSessionGreets(t *testing.T) {
	s, _, _ := newTestChatService(nil)

	session, err := s.OpenSession(model.CategoryUrgent, model.LanguageSK)
	require.NoError(t, err)

	require.Len(t, session.Turns, 1)
	assert.Equal(t, model.RoleAssistant, session.Turns[0].Role)
	assert.Equal(t, s.Greeting(model.CategoryUrgent, model.LanguageSK), session.Turns[0].Text)

	stored, err := s.GetSession(session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, stored.ID)
}

func TestChatService_OpenSessionRejectsUnknownCategory(t *testing.T) {
	s, _, _ := newTestChatService(nil)

	_, err := s.OpenSession(model.Category("plumbing"), model.LanguageSK)
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestChatService_SubmitTurn(t *testing.T) {
	lookup := &recordingLookup{candidates: makeCandidates(2)}
	s, turnLog, publisher := newTestChatService(lookup)

	session, err := s.OpenSession(model.CategoryRealization, model.LanguageSK)
	require.NoError(t, err)

	result, err := s.SubmitTurn(context.Background(), session.ID, "Plánujem stavbu domu v Bratislave, potrebujem elektrikára", "")
	require.NoError(t, err)

	assert.Equal(t, model.RoleUser, result.UserTurn.Role)
	assert.Equal(t, model.RoleAssistant, result.AssistantTurn.Role)
	assert.Equal(t, []string{"m1", "m2"}, result.AssistantTurn.AttachedCandidateIDs)
	assert.Equal(t, []string{"m1", "m2"}, result.Session.PendingCandidateIDs)
	assert.Len(t, result.Session.Turns, 3)

	stored, err := s.GetSession(session.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Turns, 3)

	resp := result.ToResponse()
	assert.Equal(t, session.ID, resp.SessionID)
	assert.Equal(t, "Bratislava", resp.Signals.City)

	select {
	case entry := <-turnLog.entries:
		assert.Equal(t, session.ID, entry.SessionID)
		assert.Equal(t, model.CategoryRealization, entry.Category)
		assert.Equal(t, []string{"m1", "m2"}, entry.CandidateIDs)
	case <-time.After(time.Second):
		t.Fatal("turn was not logged")
	}
	select {
	case event := <-publisher.events:
		assert.Equal(t, session.ID, event.SessionID)
		assert.Equal(t, model.ProfessionElectrician, event.Signals.Profession)
	case <-time.After(time.Second):
		t.Fatal("turn event was not published")
	}
}

func TestChatService_HistoryCarriesCity(t *testing.T) {
	lookup := &recordingLookup{}
	s, _, _ := newTestChatService(lookup)

	session, err := s.OpenSession(model.CategoryRegular, model.LanguageSK)
	require.NoError(t, err)

	_, err = s.SubmitTurn(context.Background(), session.ID, "Som z Prešova", "")
	require.NoError(t, err)
	_, err = s.SubmitTurn(context.Background(), session.ID, "Potrebujem opraviť zásuvku", "")
	require.NoError(t, err)

	require.Equal(t, 2, lookup.calls())
	assert.Equal(t, "Prešov", lookup.queries[1].City)
	assert.Equal(t, model.DomainElectrical, lookup.queries[1].Domain)
}

func TestChatService_PendingCandidatesReplaced(t *testing.T) {
	calls := 0
	lookup := LookupFunc(func(context.Context, model.LookupQuery, int) ([]model.Candidate, error) {
		calls++
		if calls == 1 {
			return makeCandidates(2), nil
		}
		return nil, nil
	})
	s, _, _ := newTestChatService(lookup)

	session, err := s.OpenSession(model.CategoryRegular, model.LanguageEN)
	require.NoError(t, err)

	first, err := s.SubmitTurn(context.Background(), session.ID, "electrician in Nitra", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"m1", "m2"}, first.Session.PendingCandidateIDs)

	result, err := s.SubmitTurn(context.Background(), session.ID, "thanks", "")
	require.NoError(t, err)
	assert.Empty(t, result.Session.PendingCandidateIDs)
	assert.Equal(t, 2, calls)
}

func TestChatService_LanguageSwitch(t *testing.T) {
	b := bank.New()
	s, _, _ := newTestChatService(nil)

	session, err := s.OpenSession(model.CategoryRegular, model.LanguageSK)
	require.NoError(t, err)

	result, err := s.SubmitTurn(context.Background(), session.ID, "", "en-GB")
	require.NoError(t, err)

	assert.Equal(t, model.LanguageEN, result.Session.Language)
	assert.Contains(t, result.AssistantTurn.Text, b.Text(model.LanguageEN, model.CategoryRegular, bank.KindGeneral))
}

func TestChatService_StreamEvents(t *testing.T) {
	s, _, _ := newTestChatService(nil)

	session, err := s.OpenSession(model.CategoryUrgent, model.LanguageSK)
	require.NoError(t, err)

	var got []string
	_, err = s.SubmitTurnStream(context.Background(), session.ID, "Cítim plyn", "", func(event string, data any) error {
		got = append(got, event)
		if event == "signals" {
			signals, ok := data.(model.SignalSet)
			require.True(t, ok)
			assert.True(t, signals.HazardDetected)
		}
		return errors.New("client went away")
	})
	require.NoError(t, err, "callback errors do not fail the turn")
	assert.Equal(t, []string{"thinking", "signals", "response"}, got)
}

func TestChatService_ChangeCategoryResets(t *testing.T) {
	s, _, _ := newTestChatService(nil)

	session, err := s.OpenSession(model.CategoryRegular, model.LanguageSK)
	require.NoError(t, err)
	_, err = s.SubmitTurn(context.Background(), session.ID, "Chcem servis kotla", "")
	require.NoError(t, err)

	same, err := s.ChangeCategory(session.ID, model.CategoryRegular)
	require.NoError(t, err)
	assert.Len(t, same.Turns, 3, "same category keeps the conversation")

	changed, err := s.ChangeCategory(session.ID, model.CategoryUrgent)
	require.NoError(t, err)
	assert.Equal(t, model.CategoryUrgent, changed.Category)
	require.Len(t, changed.Turns, 1)
	assert.Equal(t, s.Greeting(model.CategoryUrgent, model.LanguageSK), changed.Turns[0].Text)

	_, err = s.ChangeCategory(session.ID, model.Category("x"))
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestChatService_ResetAndClose(t *testing.T) {
	s, _, _ := newTestChatService(nil)

	session, err := s.OpenSession(model.CategoryRealization, model.LanguageEN)
	require.NoError(t, err)
	_, err = s.SubmitTurn(context.Background(), session.ID, "new house", "")
	require.NoError(t, err)

	reset, err := s.ResetSession(session.ID)
	require.NoError(t, err)
	assert.Len(t, reset.Turns, 1)
	assert.Empty(t, reset.PendingCandidateIDs)

	require.NoError(t, s.CloseSession(session.ID))
	assert.ErrorIs(t, s.CloseSession(session.ID), ErrSessionNotFound)

	_, err = s.SubmitTurn(context.Background(), session.ID, "hello", "")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = s.ResetSession(session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = s.GetSession(session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestChatService_ConcurrentTurnsAreSerialized(t *testing.T) {
	s, _, _ := newTestChatService(nil)

	session, err := s.OpenSession(model.CategoryRegular, model.LanguageSK)
	require.NoError(t, err)

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.SubmitTurn(context.Background(), session.ID, "Chcem servis kotla", "")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored, err := s.GetSession(session.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Turns, 1+2*n)
	for i := 1; i < len(stored.Turns); i += 2 {
		assert.Equal(t, model.RoleUser, stored.Turns[i].Role)
		assert.Equal(t, model.RoleAssistant, stored.Turns[i+1].Role)
	}
}

func TestChatService_ExpiredSessionsReleaseLocks(t *testing.T) {
	store := &evictingStore{mapStore: newMapStore()}
	s := NewChatService(newTestDispatcher(nil, 0), store, nil, nil, zap.NewNop())
	require.NotNil(t, store.onEvicted)

	for i := 0; i < 10; i++ {
		session, err := s.OpenSession(model.CategoryRegular, model.LanguageSK)
		require.NoError(t, err)
		_, err = s.SubmitTurn(context.Background(), session.ID, "Chcem servis kotla", "")
		require.NoError(t, err)
		store.expire(session.ID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	assert.Empty(t, s.locks)
}

func TestChatService_EvictionKeepsHeldLock(t *testing.T) {
	store := &evictingStore{mapStore: newMapStore()}
	s := NewChatService(newTestDispatcher(nil, 0), store, nil, nil, zap.NewNop())

	lock := s.sessionLock("busy")
	lock.Lock()
	s.releaseLock("busy")
	lock.Unlock()

	assert.Same(t, lock, s.sessionLock("busy"))
}
