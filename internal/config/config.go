package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	PostgreSQL PostgreSQLConfig
	Server     ServerConfig
	Triage     TriageConfig
	Ranking    RankingConfig
	Session    SessionConfig
	Logging    LoggingConfig
	NATS       NATSConfig
	OpenAI     OpenAIConfig
	Embedding  EmbeddingConfig
}

// PostgreSQLConfig holds PostgreSQL database configuration
type PostgreSQLConfig struct {
	DSN                string // Full connection string, preferred when set
	Host               string
	Port               int
	User               string
	Password           string
	Database           string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
	Enabled            bool // false runs the triage without candidate lookup
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
	AllowedMethods string
	AllowedHeaders string
}

// TriageConfig holds conversation engine settings
type TriageConfig struct {
	LookupTimeout  time.Duration
	ThinkingDelay  time.Duration
	CandidateLimit int
	LogTurns       bool
}

// RankingConfig holds ranking weights configuration
type RankingConfig struct {
	WeightRating       float64
	WeightReviews      float64
	WeightAvailability float64
}

// SessionConfig holds in-memory session store settings
type SessionConfig struct {
	TTL             time.Duration
	CleanupInterval time.Duration
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
	File   string
}

// NATSConfig holds event publishing configuration
type NATSConfig struct {
	URL     string
	Token   string
	Enabled bool
}

// OpenAIConfig holds assistant proxy configuration
type OpenAIConfig struct {
	APIKey          string
	APIBase         string
	ChatModel       string
	ChatTemperature float64
	ChatMaxTokens   int
	Timeout         int // Seconds
	Enabled         bool
}

// EmbeddingConfig holds profile embedding settings
type EmbeddingConfig struct {
	Dimensions int
	MaxBatch   int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		PostgreSQL: PostgreSQLConfig{
			DSN:                getEnv("DATABASE_URL", getEnv("POSTGRESQL_URI", getEnv("PG_DSN", ""))),
			Host:               getEnv("PG_HOST", "localhost"),
			Port:               getEnvAsInt("PG_PORT", 5432),
			User:               getEnv("PG_USER", "postgres"),
			Password:           getEnv("PG_PASSWORD", ""),
			Database:           getEnv("PG_DATABASE", "najdimajstra"),
			SSLMode:            getEnv("PG_SSLMODE", "disable"),
			MaxConnections:     getEnvAsInt("PG_MAX_CONNECTIONS", 25),
			MaxIdleConnections: getEnvAsInt("PG_MAX_IDLE_CONNECTIONS", 5),
			Enabled:            getEnvAsBool("PG_ENABLED", true),
		},
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			AllowedMethods: getEnv("CORS_ALLOWED_METHODS", "GET,POST,PUT,DELETE,OPTIONS"),
			AllowedHeaders: getEnv("CORS_ALLOWED_HEADERS", "Content-Type,Authorization"),
		},
		Triage: TriageConfig{
			LookupTimeout:  time.Duration(getEnvAsInt("TRIAGE_LOOKUP_TIMEOUT_MS", 3000)) * time.Millisecond,
			ThinkingDelay:  time.Duration(getEnvAsInt("TRIAGE_THINKING_DELAY_MS", 0)) * time.Millisecond,
			CandidateLimit: getEnvAsInt("TRIAGE_CANDIDATE_LIMIT", 5),
			LogTurns:       getEnvAsBool("TRIAGE_LOG_TURNS", true),
		},
		Ranking: RankingConfig{
			WeightRating:       getEnvAsFloat("RANK_WEIGHT_RATING", 0.5),
			WeightReviews:      getEnvAsFloat("RANK_WEIGHT_REVIEWS", 0.3),
			WeightAvailability: getEnvAsFloat("RANK_WEIGHT_AVAILABILITY", 0.2),
		},
		Session: SessionConfig{
			TTL:             time.Duration(getEnvAsInt("SESSION_TTL_MINUTES", 60)) * time.Minute,
			CleanupInterval: time.Duration(getEnvAsInt("SESSION_CLEANUP_MINUTES", 10)) * time.Minute,
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
			File:   getEnv("LOG_FILE", ""),
		},
		NATS: NATSConfig{
			URL:     getEnv("NATS_URL", ""),
			Token:   getEnv("NATS_TOKEN", ""),
			Enabled: getEnv("NATS_URL", "") != "",
		},
		OpenAI: OpenAIConfig{
			APIKey:          getEnv("OPENAI_API_KEY", ""),
			APIBase:         getEnv("OPENAI_API_BASE", "https://api.openai.com/v1"),
			ChatModel:       getEnv("OPENAI_CHAT_MODEL", "gpt-4o-mini"),
			ChatTemperature: getEnvAsFloat("OPENAI_CHAT_TEMPERATURE", 0.2),
			ChatMaxTokens:   getEnvAsInt("OPENAI_CHAT_MAX_TOKENS", 1024),
			Timeout:         getEnvAsInt("OPENAI_TIMEOUT", 30),
			Enabled:         getEnv("OPENAI_API_KEY", "") != "",
		},
		Embedding: EmbeddingConfig{
			Dimensions: getEnvAsInt("EMBEDDING_DIMENSIONS", 1024),
			MaxBatch:   getEnvAsInt("EMBEDDING_MAX_BATCH", 100),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Triage.CandidateLimit <= 0 {
		return fmt.Errorf("TRIAGE_CANDIDATE_LIMIT must be positive, got %d", c.Triage.CandidateLimit)
	}
	if c.Triage.LookupTimeout <= 0 {
		return fmt.Errorf("TRIAGE_LOOKUP_TIMEOUT_MS must be positive, got %s", c.Triage.LookupTimeout)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL_MINUTES must be positive, got %s", c.Session.TTL)
	}
	return nil
}

// GetPostgreSQLDSN returns PostgreSQL connection string
func (c *Config) GetPostgreSQLDSN() string {
	if c.PostgreSQL.DSN != "" {
		return c.PostgreSQL.DSN
	}

	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgreSQL.Host,
		c.PostgreSQL.Port,
		c.PostgreSQL.User,
		c.PostgreSQL.Password,
		c.PostgreSQL.Database,
		c.PostgreSQL.SSLMode,
	)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default %f", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default %t", key, defaultValue)
		return defaultValue
	}
	return value
}
