package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/farabi1038/lang-portal/internal/domain"
	"github.com/farabi1038/lang-portal/internal/store"
)

// PostgresStudyActivityStore implements the store.StudyActivityStore
// interface using a PostgreSQL database as the storage backend.
type PostgresStudyActivityStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresStudyActivityStore creates a new PostgreSQL implementation of
// the StudyActivityStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresStudyActivityStore(db store.DBTX, logger *slog.Logger) *PostgresStudyActivityStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresStudyActivityStore{
		db:     db,
		logger: logger.With(slog.String("component", "activity_store")),
	}
}

// Ensure PostgresStudyActivityStore implements store.StudyActivityStore interface
var _ store.StudyActivityStore = (*PostgresStudyActivityStore)(nil)

// Create implements store.StudyActivityStore.Create
// The seeder inserts activities with explicit IDs so the well-known
// activity numbering stays stable across resets.
func (s *PostgresStudyActivityStore) Create(ctx context.Context, activity *domain.StudyActivity) error {
	if err := activity.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO study_activities (id, name, kind, url, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		activity.ID,
		activity.Name,
		activity.Kind,
		activity.URL,
		activity.CreatedAt,
	)
	if err != nil {
		return MapError(err)
	}

	return nil
}

// GetByID implements store.StudyActivityStore.GetByID
// Returns store.ErrActivityNotFound if the activity does not exist.
func (s *PostgresStudyActivityStore) GetByID(ctx context.Context, id int64) (*domain.StudyActivity, error) {
	query := `
		SELECT id, name, kind, url, created_at
		FROM study_activities
		WHERE id = $1
	`
	var activity domain.StudyActivity
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&activity.ID,
		&activity.Name,
		&activity.Kind,
		&activity.URL,
		&activity.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrActivityNotFound
		}
		return nil, MapError(err)
	}

	return &activity, nil
}

// List implements store.StudyActivityStore.List
func (s *PostgresStudyActivityStore) List(ctx context.Context) ([]*domain.StudyActivity, error) {
	query := `
		SELECT id, name, kind, url, created_at
		FROM study_activities
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	activities := make([]*domain.StudyActivity, 0)
	for rows.Next() {
		var activity domain.StudyActivity
		if err := rows.Scan(
			&activity.ID,
			&activity.Name,
			&activity.Kind,
			&activity.URL,
			&activity.CreatedAt,
		); err != nil {
			return nil, MapError(err)
		}
		activities = append(activities, &activity)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return activities, nil
}

// DeleteAll implements store.StudyActivityStore.DeleteAll
func (s *PostgresStudyActivityStore) DeleteAll(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM study_activities"); err != nil {
		return MapError(err)
	}
	return nil
}

// WithTx implements store.StudyActivityStore.WithTx
func (s *PostgresStudyActivityStore) WithTx(tx *sql.Tx) store.StudyActivityStore {
	return &PostgresStudyActivityStore{
		db:     tx,
		logger: s.logger,
	}
}
