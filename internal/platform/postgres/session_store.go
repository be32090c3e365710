package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/farabi1038/lang-portal/internal/domain"
	"github.com/farabi1038/lang-portal/internal/platform/logger"
	"github.com/farabi1038/lang-portal/internal/store"
)

// PostgresSessionStore implements the store.SessionStore interface
// using a PostgreSQL database as the storage backend.
type PostgresSessionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSessionStore creates a new PostgreSQL implementation of the
// SessionStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresSessionStore(db store.DBTX, logger *slog.Logger) *PostgresSessionStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresSessionStore{
		db:     db,
		logger: logger.With(slog.String("component", "session_store")),
	}
}

// Ensure PostgresSessionStore implements store.SessionStore interface
var _ store.SessionStore = (*PostgresSessionStore)(nil)

const sessionColumns = `id, group_id, study_activity_id, score, total, completed_at, created_at`

// Create implements store.SessionStore.Create
// Returns store.ErrInvalidEntity if the group or activity does not exist.
func (s *PostgresSessionStore) Create(ctx context.Context, session *domain.StudySession) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := session.Validate(); err != nil {
		log.Warn("session validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO study_sessions (group_id, study_activity_id, score, total, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		session.GroupID,
		session.StudyActivityID,
		session.Score,
		session.Total,
		session.CreatedAt,
	).Scan(&session.ID)

	if err != nil {
		log.Error("failed to create study session",
			slog.String("error", err.Error()),
			slog.Int64("group_id", session.GroupID),
			slog.Int64("activity_id", session.StudyActivityID))
		return MapError(err)
	}

	log.Info("study session created",
		slog.Int64("session_id", session.ID),
		slog.Int64("group_id", session.GroupID),
		slog.Int64("activity_id", session.StudyActivityID))
	return nil
}

// GetByID implements store.SessionStore.GetByID
// Returns store.ErrSessionNotFound if the session does not exist.
func (s *PostgresSessionStore) GetByID(ctx context.Context, id int64) (*domain.StudySession, error) {
	query := `SELECT ` + sessionColumns + ` FROM study_sessions WHERE id = $1`
	return s.scanOne(s.db.QueryRowContext(ctx, query, id))
}

// GetForUpdate implements store.SessionStore.GetForUpdate
// It locks the session row for the remainder of the enclosing transaction.
func (s *PostgresSessionStore) GetForUpdate(ctx context.Context, id int64) (*domain.StudySession, error) {
	query := `SELECT ` + sessionColumns + ` FROM study_sessions WHERE id = $1 FOR UPDATE`
	return s.scanOne(s.db.QueryRowContext(ctx, query, id))
}

// Complete implements store.SessionStore.Complete
// Returns store.ErrSessionNotFound if the session does not exist.
func (s *PostgresSessionStore) Complete(ctx context.Context, session *domain.StudySession) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE study_sessions
		SET score = $1, total = $2, completed_at = $3
		WHERE id = $4
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		session.Score,
		session.Total,
		session.CompletedAt,
		session.ID,
	)
	if err != nil {
		log.Error("failed to complete study session",
			slog.String("error", err.Error()),
			slog.Int64("session_id", session.ID))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrSessionNotFound); err != nil {
		return err
	}

	log.Info("study session completed",
		slog.Int64("session_id", session.ID),
		slog.Int("score", session.Score),
		slog.Int("total", session.Total))
	return nil
}

// List implements store.SessionStore.List
func (s *PostgresSessionStore) List(ctx context.Context, offset, limit int) ([]*domain.StudySession, error) {
	query := `SELECT ` + sessionColumns + ` FROM study_sessions ORDER BY created_at DESC, id DESC OFFSET $1 LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	return scanSessions(rows)
}

// GetLatest implements store.SessionStore.GetLatest
// Returns store.ErrSessionNotFound when no sessions exist.
func (s *PostgresSessionStore) GetLatest(ctx context.Context) (*domain.StudySession, error) {
	query := `SELECT ` + sessionColumns + ` FROM study_sessions ORDER BY created_at DESC, id DESC LIMIT 1`
	return s.scanOne(s.db.QueryRowContext(ctx, query))
}

// ListScores implements store.SessionStore.ListScores
func (s *PostgresSessionStore) ListScores(ctx context.Context) ([]*domain.StudySession, error) {
	query := `SELECT ` + sessionColumns + ` FROM study_sessions`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	return scanSessions(rows)
}

// Count implements store.SessionStore.Count
func (s *PostgresSessionStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM study_sessions`).Scan(&count)
	if err != nil {
		return 0, MapError(err)
	}
	return count, nil
}

// DeleteAll implements store.SessionStore.DeleteAll
func (s *PostgresSessionStore) DeleteAll(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM study_sessions`)
	if err != nil {
		return MapError(err)
	}
	return nil
}

// WithTx implements store.SessionStore.WithTx
func (s *PostgresSessionStore) WithTx(tx *sql.Tx) store.SessionStore {
	return &PostgresSessionStore{
		db:     tx,
		logger: s.logger,
	}
}

func (s *PostgresSessionStore) scanOne(row *sql.Row) (*domain.StudySession, error) {
	var session domain.StudySession
	err := row.Scan(
		&session.ID,
		&session.GroupID,
		&session.StudyActivityID,
		&session.Score,
		&session.Total,
		&session.CompletedAt,
		&session.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrSessionNotFound
		}
		return nil, MapError(err)
	}
	return &session, nil
}

func scanSessions(rows *sql.Rows) ([]*domain.StudySession, error) {
	sessions := make([]*domain.StudySession, 0)
	for rows.Next() {
		var session domain.StudySession
		if err := rows.Scan(
			&session.ID,
			&session.GroupID,
			&session.StudyActivityID,
			&session.Score,
			&session.Total,
			&session.CompletedAt,
			&session.CreatedAt,
		); err != nil {
			return nil, MapError(err)
		}
		sessions = append(sessions, &session)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return sessions, nil
}
