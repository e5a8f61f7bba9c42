package repository

import (
	"time"

	"github.com/patrickmn/go-cache"

	"najdimajstra/internal/model"
)

// MemorySessionStore keeps conversation sessions in process memory. Sessions
// expire after the TTL unless touched again.
type MemorySessionStore struct {
	cache *cache.Cache
}

// NewMemorySessionStore creates a store whose entries live for ttl and are
// purged every cleanupInterval
func NewMemorySessionStore(ttl, cleanupInterval time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		cache: cache.New(ttl, cleanupInterval),
	}
}

// Save stores a copy of the session and restarts its TTL
func (s *MemorySessionStore) Save(session *model.Session) {
	s.cache.Set(session.ID, session.Clone(), cache.DefaultExpiration)
}

// Get returns a copy of the session so callers never share state
func (s *MemorySessionStore) Get(id string) (*model.Session, bool) {
	if x, found := s.cache.Get(id); found {
		return x.(*model.Session).Clone(), true
	}
	return nil, false
}

// Delete removes a session
func (s *MemorySessionStore) Delete(id string) {
	s.cache.Delete(id)
}

// OnEvicted registers f to run with the session ID whenever a session leaves
// the store, by expiry or by Delete
func (s *MemorySessionStore) OnEvicted(f func(id string)) {
	s.cache.OnEvicted(func(id string, _ interface{}) {
		f(id)
	})
}

// Count returns the number of live sessions
func (s *MemorySessionStore) Count() int {
	return s.cache.ItemCount()
}
