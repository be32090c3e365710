package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/farabi1038/lang-portal/internal/domain"
	"github.com/farabi1038/lang-portal/internal/platform/logger"
	"github.com/farabi1038/lang-portal/internal/store"
)

// PostgresStudyRecordStore implements the store.StudyRecordStore interface
// using a PostgreSQL database as the storage backend.
type PostgresStudyRecordStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresStudyRecordStore creates a new PostgreSQL implementation of the
// StudyRecordStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresStudyRecordStore(db store.DBTX, logger *slog.Logger) *PostgresStudyRecordStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresStudyRecordStore{
		db:     db,
		logger: logger.With(slog.String("component", "study_record_store")),
	}
}

// Ensure PostgresStudyRecordStore implements store.StudyRecordStore interface
var _ store.StudyRecordStore = (*PostgresStudyRecordStore)(nil)

// Create implements store.StudyRecordStore.Create
// Returns store.ErrInvalidEntity if the word or session does not exist.
func (s *PostgresStudyRecordStore) Create(ctx context.Context, record *domain.StudyRecord) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := record.Validate(); err != nil {
		log.Warn("study record validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO study_records (word_id, study_session_id, correct, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		record.WordID,
		record.StudySessionID,
		record.Correct,
		record.CreatedAt,
	).Scan(&record.ID)

	if err != nil {
		log.Error("failed to create study record",
			slog.String("error", err.Error()),
			slog.Int64("word_id", record.WordID),
			slog.Int64("session_id", record.StudySessionID))
		return MapError(err)
	}

	log.Debug("study record created",
		slog.Int64("record_id", record.ID),
		slog.Int64("word_id", record.WordID),
		slog.Int64("session_id", record.StudySessionID),
		slog.Bool("correct", record.Correct))
	return nil
}

// ListBySession implements store.StudyRecordStore.ListBySession
func (s *PostgresStudyRecordStore) ListBySession(ctx context.Context, sessionID int64) ([]*domain.StudyRecord, error) {
	query := `
		SELECT id, word_id, study_session_id, correct, created_at
		FROM study_records
		WHERE study_session_id = $1
		ORDER BY created_at, id
	`
	rows, err := s.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	records := make([]*domain.StudyRecord, 0)
	for rows.Next() {
		var record domain.StudyRecord
		if err := rows.Scan(
			&record.ID,
			&record.WordID,
			&record.StudySessionID,
			&record.Correct,
			&record.CreatedAt,
		); err != nil {
			return nil, MapError(err)
		}
		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return records, nil
}

// CountBySession implements store.StudyRecordStore.CountBySession
func (s *PostgresStudyRecordStore) CountBySession(ctx context.Context, sessionID int64) (int, error) {
	var count int
	err := s.db.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM study_records WHERE study_session_id = $1`,
		sessionID,
	).Scan(&count)
	if err != nil {
		return 0, MapError(err)
	}
	return count, nil
}

// DeleteAll implements store.StudyRecordStore.DeleteAll
func (s *PostgresStudyRecordStore) DeleteAll(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM study_records`)
	if err != nil {
		return MapError(err)
	}
	return nil
}

// WithTx implements store.StudyRecordStore.WithTx
func (s *PostgresStudyRecordStore) WithTx(tx *sql.Tx) store.StudyRecordStore {
	return &PostgresStudyRecordStore{
		db:     tx,
		logger: s.logger,
	}
}
