package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("NATS_URL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, cfg.Triage.LookupTimeout)
	assert.Equal(t, time.Duration(0), cfg.Triage.ThinkingDelay)
	assert.Equal(t, 5, cfg.Triage.CandidateLimit)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
	assert.Equal(t, 10*time.Minute, cfg.Session.CleanupInterval)
	assert.InDelta(t, 1.0, cfg.Ranking.WeightRating+cfg.Ranking.WeightReviews+cfg.Ranking.WeightAvailability, 1e-9)
	assert.False(t, cfg.OpenAI.Enabled)
	assert.False(t, cfg.NATS.Enabled)
	assert.Equal(t, 1024, cfg.Embedding.Dimensions)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TRIAGE_LOOKUP_TIMEOUT_MS", "250")
	t.Setenv("TRIAGE_THINKING_DELAY_MS", "800")
	t.Setenv("TRIAGE_LOG_TURNS", "false")
	t.Setenv("SESSION_TTL_MINUTES", "5")
	t.Setenv("NATS_URL", "nats://localhost:4222")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("PG_ENABLED", "not-a-bool")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.Triage.LookupTimeout)
	assert.Equal(t, 800*time.Millisecond, cfg.Triage.ThinkingDelay)
	assert.False(t, cfg.Triage.LogTurns)
	assert.Equal(t, 5*time.Minute, cfg.Session.TTL)
	assert.True(t, cfg.NATS.Enabled)
	assert.True(t, cfg.OpenAI.Enabled)
	assert.True(t, cfg.PostgreSQL.Enabled, "invalid bool falls back to default")
}

func TestLoad_RejectsInvalidLimit(t *testing.T) {
	t.Setenv("TRIAGE_CANDIDATE_LIMIT", "0")

	_, err := Load()
	assert.Error(t, err)
}

func TestGetPostgreSQLDSN(t *testing.T) {
	cfg := &Config{PostgreSQL: PostgreSQLConfig{
		Host: "db", Port: 5433, User: "u", Password: "p", Database: "d", SSLMode: "disable",
	}}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=d sslmode=disable", cfg.GetPostgreSQLDSN())

	cfg.PostgreSQL.DSN = "postgres://x"
	assert.Equal(t, "postgres://x", cfg.GetPostgreSQLDSN())
}
