package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"najdimajstra/internal/model"
)

func TestBuildMasterFilter(t *testing.T) {
	tests := []struct {
		name      string
		filters   model.MasterFilters
		wantWhere string
		wantArgs  []interface{}
		wantNext  int
	}{
		{
			name:      "no filters",
			filters:   model.MasterFilters{},
			wantWhere: "is_active = true",
			wantArgs:  []interface{}{},
			wantNext:  1,
		},
		{
			name:      "category and city",
			filters:   model.MasterFilters{Category: "urgent", City: "Nitra"},
			wantWhere: "is_active = true AND service_categories @> jsonb_build_array($1::text) AND (location ILIKE $2)",
			wantArgs:  []interface{}{"urgent", "%Nitra%"},
			wantNext:  3,
		},
		{
			name:      "domain without profession",
			filters:   model.MasterFilters{Domain: "water"},
			wantWhere: "is_active = true AND specialisations @> jsonb_build_array($1::text)",
			wantArgs:  []interface{}{"water"},
			wantNext:  2,
		},
		{
			name:      "profession wins over domain",
			filters:   model.MasterFilters{Profession: "plumber", Domain: "water"},
			wantWhere: "is_active = true AND (profession ILIKE $1 OR profession ILIKE $2 OR profession ILIKE $3 OR profession ILIKE $4)",
			wantArgs:  []interface{}{"%inštalatér%", "%instalater%", "%vodár%", "%plumber%"},
			wantNext:  5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args, next := buildMasterFilter(tt.filters)
			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
			assert.Equal(t, tt.wantNext, next)
		})
	}
}

func TestMemorySessionStore(t *testing.T) {
	store := NewMemorySessionStore(time.Minute, time.Minute)

	session := model.NewSession(model.CategoryRegular, model.LanguageSK)
	session.AppendUser("Potrebujem inštalatéra")
	store.Save(session)

	got, ok := store.Get(session.ID)
	require.True(t, ok)
	assert.Equal(t, session.ID, got.ID)
	require.Len(t, got.Turns, 1)

	// mutating the returned copy leaves the stored session untouched
	got.AppendUser("ďalší text")
	again, ok := store.Get(session.ID)
	require.True(t, ok)
	assert.Len(t, again.Turns, 1)

	assert.Equal(t, 1, store.Count())
	store.Delete(session.ID)
	_, ok = store.Get(session.ID)
	assert.False(t, ok)
}

func TestMemorySessionStore_Expiry(t *testing.T) {
	store := NewMemorySessionStore(20*time.Millisecond, time.Hour)
	session := model.NewSession(model.CategoryUrgent, model.LanguageEN)
	store.Save(session)

	time.Sleep(40 * time.Millisecond)

	_, ok := store.Get(session.ID)
	assert.False(t, ok)
}

func TestMemorySessionStore_OnEvicted(t *testing.T) {
	store := NewMemorySessionStore(20*time.Millisecond, 10*time.Millisecond)
	evicted := make(chan string, 2)
	store.OnEvicted(func(id string) { evicted <- id })

	expiring := model.NewSession(model.CategoryUrgent, model.LanguageSK)
	store.Save(expiring)

	select {
	case id := <-evicted:
		assert.Equal(t, expiring.ID, id)
	case <-time.After(time.Second):
		t.Fatal("expired session was not reported")
	}

	deleted := model.NewSession(model.CategoryRegular, model.LanguageSK)
	store.Save(deleted)
	store.Delete(deleted.ID)
	assert.Equal(t, deleted.ID, <-evicted)
}
