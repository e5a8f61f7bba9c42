package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category is the top-level service type a conversation is scoped to
type Category string

const (
	CategoryUrgent      Category = "urgent"
	CategoryRegular     Category = "regular"
	CategoryRealization Category = "realization"
)

// Categories lists the recognized categories in display order
var Categories = []Category{CategoryUrgent, CategoryRegular, CategoryRealization}

// ParseCategory normalizes a category tag. The returned category keeps the
// raw value when it is not recognized so callers can still route it to a
// fallback.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	return c, c.Valid()
}

// Valid reports whether c is one of the recognized categories
func (c Category) Valid() bool {
	switch c {
	case CategoryUrgent, CategoryRegular, CategoryRealization:
		return true
	}
	return false
}

// Language selects which template variant is used
type Language string

const (
	LanguageSK Language = "sk"
	LanguageEN Language = "en"

	DefaultLanguage = LanguageSK
)

// Languages lists every supported language
var Languages = []Language{LanguageSK, LanguageEN}

// ParseLanguage maps a language tag to a supported language, falling back to
// the default language for anything unknown.
func ParseLanguage(s string) Language {
	s = strings.ToLower(strings.TrimSpace(s))
	// accept regional tags like "en-US"
	if i := strings.IndexAny(s, "-_"); i > 0 {
		s = s[:i]
	}
	switch Language(s) {
	case LanguageSK, LanguageEN:
		return Language(s)
	}
	return DefaultLanguage
}

// Role identifies who produced a turn
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message within a conversation session
type Turn struct {
	ID                   string    `json:"id"`
	Role                 Role      `json:"role"`
	Text                 string    `json:"text"`
	Timestamp            time.Time `json:"timestamp"`
	AttachedCandidateIDs []string  `json:"attached_candidate_ids,omitempty"`
}

// Session is a caller-owned conversation log. It is not safe for concurrent
// writers; whoever drives the session serializes access to it.
type Session struct {
	ID                  string    `json:"id"`
	Category            Category  `json:"category"`
	Language            Language  `json:"language"`
	Turns               []Turn    `json:"turns"`
	PendingCandidateIDs []string  `json:"pending_candidate_ids"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// NewSession creates an empty session for the given category
func NewSession(category Category, language Language) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:                  uuid.NewString(),
		Category:            category,
		Language:            language,
		Turns:               []Turn{},
		PendingCandidateIDs: []string{},
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// AppendUser records a user utterance
func (s *Session) AppendUser(text string) Turn {
	return s.appendTurn(RoleUser, text, nil)
}

// AppendAssistant records an assistant reply. The pending candidate set is
// replaced by the reply's candidates, or cleared when it has none.
func (s *Session) AppendAssistant(text string, candidateIDs []string) Turn {
	var attached []string
	if len(candidateIDs) > 0 {
		attached = append([]string(nil), candidateIDs...)
	}
	turn := s.appendTurn(RoleAssistant, text, attached)
	if attached == nil {
		s.PendingCandidateIDs = []string{}
	} else {
		s.PendingCandidateIDs = append([]string(nil), attached...)
	}
	return turn
}

func (s *Session) appendTurn(role Role, text string, attached []string) Turn {
	now := time.Now().UTC()
	turn := Turn{
		ID:                   uuid.NewString(),
		Role:                 role,
		Text:                 text,
		Timestamp:            now,
		AttachedCandidateIDs: attached,
	}
	s.Turns = append(s.Turns, turn)
	s.UpdatedAt = now
	return turn
}

// SetCategory switches the session to another category. Switching discards
// the turn log; setting the current category again changes nothing.
func (s *Session) SetCategory(category Category) bool {
	if s.Category == category {
		return false
	}
	s.Category = category
	s.Reset()
	return true
}

// Reset clears the turn log and any pending candidates
func (s *Session) Reset() {
	s.Turns = []Turn{}
	s.PendingCandidateIDs = []string{}
	s.UpdatedAt = time.Now().UTC()
}

// History returns a copy of the turn log
func (s *Session) History() []Turn {
	out := make([]Turn, len(s.Turns))
	copy(out, s.Turns)
	return out
}

// Clone returns a deep copy that shares no mutable state with s
func (s *Session) Clone() *Session {
	c := *s
	c.Turns = make([]Turn, len(s.Turns))
	for i, t := range s.Turns {
		t.AttachedCandidateIDs = append([]string(nil), t.AttachedCandidateIDs...)
		c.Turns[i] = t
	}
	c.PendingCandidateIDs = append([]string{}, s.PendingCandidateIDs...)
	return &c
}

// UserText joins every user utterance in insertion order
func UserText(history []Turn) string {
	var b strings.Builder
	for _, t := range history {
		if t.Role != RoleUser {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(t.Text)
	}
	return b.String()
}
