package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"najdimajstra/internal/model"
	"najdimajstra/internal/utils"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// masterColumns excludes embedding: profiles without one scan as NULL
const masterColumns = `
	id, name, profession, location, description, rating, review_count,
	available, service_categories, specialisations, hourly_rate, is_active,
	created_at, updated_at`

// PostgresRepository handles database operations
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	// Disable prepared statement caching to avoid "unnamed prepared statement does not exist" errors
	if !strings.Contains(dsn, "?") {
		dsn += "?prefer_simple_protocol=true"
	} else {
		dsn += "&prefer_simple_protocol=true"
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// NewPostgresRepositoryFromDB wraps an existing handle
func NewPostgresRepositoryFromDB(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// buildMasterFilter turns filters into a WHERE clause with positional args
func buildMasterFilter(filters model.MasterFilters) (string, []interface{}, int) {
	whereClauses := []string{"is_active = true"}
	args := []interface{}{}
	argIndex := 1

	if filters.Category != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("service_categories @> jsonb_build_array($%d::text)", argIndex))
		args = append(args, filters.Category)
		argIndex++
	}
	if filters.City != "" {
		cond, params, next := utils.BuildFuzzyCityQuery(filters.City, argIndex)
		whereClauses = append(whereClauses, cond)
		args = append(args, params...)
		argIndex = next
	}
	if filters.Profession != "" {
		cond, params, next := utils.BuildFuzzyProfessionQuery(filters.Profession, argIndex)
		if cond != "" {
			whereClauses = append(whereClauses, cond)
			args = append(args, params...)
			argIndex = next
		}
	} else if filters.Domain != "" {
		// Without a named profession the domain picks specialists
		whereClauses = append(whereClauses, fmt.Sprintf("specialisations @> jsonb_build_array($%d::text)", argIndex))
		args = append(args, filters.Domain)
		argIndex++
	}

	return strings.Join(whereClauses, " AND "), args, argIndex
}

// SearchMasters returns active masters matching the filters, best rated first
func (r *PostgresRepository) SearchMasters(ctx context.Context, filters model.MasterFilters, limit int) ([]model.Master, error) {
	whereClause, args, argIndex := buildMasterFilter(filters)

	query := fmt.Sprintf(`
		SELECT %s
		FROM masters
		WHERE %s
		ORDER BY available DESC, rating DESC, review_count DESC, id
		LIMIT $%d
	`, masterColumns, whereClause, argIndex)
	args = append(args, limit)

	var masters []model.Master
	if err := r.db.SelectContext(ctx, &masters, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch masters: %w", err)
	}
	return masters, nil
}

// GetMasterByID retrieves a single active master; nil when absent
func (r *PostgresRepository) GetMasterByID(ctx context.Context, id string) (*model.Master, error) {
	var master model.Master
	query := fmt.Sprintf(`SELECT %s FROM masters WHERE id = $1 AND is_active = true`, masterColumns)
	err := r.db.GetContext(ctx, &master, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get master: %w", err)
	}
	return &master, nil
}

// BatchUpdateEmbeddings updates profile embeddings for multiple masters
func (r *PostgresRepository) BatchUpdateEmbeddings(ctx context.Context, items []model.EmbeddingItem) (int, []string) {
	success := 0
	var errs []string

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		errs = append(errs, fmt.Sprintf("failed to start transaction: %v", err))
		return success, errs
	}
	defer tx.Rollback()

	stmt, err := tx.PreparexContext(ctx, `UPDATE masters SET embedding = $1, updated_at = NOW() WHERE id = $2`)
	if err != nil {
		errs = append(errs, fmt.Sprintf("failed to prepare statement: %v", err))
		return success, errs
	}
	defer stmt.Close()

	for _, item := range items {
		vec := pgvector.NewVector(item.Embedding)
		res, err := stmt.ExecContext(ctx, vec, item.MasterID)
		if err != nil {
			errs = append(errs, fmt.Sprintf("master_id %s: %v", item.MasterID, err))
			continue
		}
		if n, _ := res.RowsAffected(); n == 0 {
			errs = append(errs, fmt.Sprintf("master_id %s: not found", item.MasterID))
			continue
		}
		success++
	}

	if err := tx.Commit(); err != nil {
		errs = append(errs, fmt.Sprintf("failed to commit transaction: %v", err))
		return 0, errs
	}

	return success, errs
}

// LogTurn appends a processed turn to the transcript log
func (r *PostgresRepository) LogTurn(ctx context.Context, entry model.TurnLog) error {
	query := `
		INSERT INTO chat_turn_logs (session_id, category, language, user_text, response_text, signals, candidate_ids, response_time_ms)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		entry.SessionID,
		string(entry.Category),
		string(entry.Language),
		entry.UserText,
		entry.ResponseText,
		entry.Signals,
		pq.StringArray(entry.CandidateIDs),
		entry.ResponseTimeMs,
	)
	if err != nil {
		return fmt.Errorf("failed to log turn: %w", err)
	}
	return nil
}

// LogFeedback records a user action on a suggested master
func (r *PostgresRepository) LogFeedback(ctx context.Context, sessionID, masterID, action string) error {
	query := `
		INSERT INTO candidate_feedback (session_id, master_id, action)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.ExecContext(ctx, query, sessionID, masterID, action)
	if err != nil {
		return fmt.Errorf("failed to log feedback: %w", err)
	}
	return nil
}
