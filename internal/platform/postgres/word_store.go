package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/farabi1038/lang-portal/internal/domain"
	"github.com/farabi1038/lang-portal/internal/platform/logger"
	"github.com/farabi1038/lang-portal/internal/store"
)

// PostgresWordStore implements the store.WordStore interface
// using a PostgreSQL database as the storage backend.
type PostgresWordStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresWordStore creates a new PostgreSQL implementation of the
// WordStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresWordStore(db store.DBTX, logger *slog.Logger) *PostgresWordStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresWordStore{
		db:     db,
		logger: logger.With(slog.String("component", "word_store")),
	}
}

// Ensure PostgresWordStore implements store.WordStore interface
var _ store.WordStore = (*PostgresWordStore)(nil)

// Create implements store.WordStore.Create
// A word carrying a nonzero ID is inserted at that ID; the seeder uses
// this so the starter vocabulary keeps its numbering across full resets.
func (s *PostgresWordStore) Create(ctx context.Context, word *domain.Word) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := word.Validate(); err != nil {
		log.Warn("word validation failed during create",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	var err error
	if word.ID != 0 {
		query := `
			INSERT INTO words (id, japanese, romaji, english, correct_count, wrong_count, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`
		_, err = s.db.ExecContext(
			ctx,
			query,
			word.ID,
			word.Japanese,
			word.Romaji,
			word.English,
			word.CorrectCount,
			word.WrongCount,
			word.CreatedAt,
		)
		if err == nil {
			err = syncSerialSequence(ctx, s.db, "words")
		}
	} else {
		query := `
			INSERT INTO words (japanese, romaji, english, correct_count, wrong_count, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`
		err = s.db.QueryRowContext(
			ctx,
			query,
			word.Japanese,
			word.Romaji,
			word.English,
			word.CorrectCount,
			word.WrongCount,
			word.CreatedAt,
		).Scan(&word.ID)
	}

	if err != nil {
		log.Error("failed to create word",
			slog.String("error", err.Error()),
			slog.String("japanese", word.Japanese))
		return MapError(err)
	}

	log.Debug("word created",
		slog.Int64("word_id", word.ID),
		slog.String("japanese", word.Japanese))
	return nil
}

// GetByID implements store.WordStore.GetByID
// Returns store.ErrWordNotFound if the word does not exist.
func (s *PostgresWordStore) GetByID(ctx context.Context, id int64) (*domain.Word, error) {
	query := `
		SELECT id, japanese, romaji, english, correct_count, wrong_count, created_at
		FROM words
		WHERE id = $1
	`
	var word domain.Word
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&word.ID,
		&word.Japanese,
		&word.Romaji,
		&word.English,
		&word.CorrectCount,
		&word.WrongCount,
		&word.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrWordNotFound
		}
		return nil, MapError(err)
	}

	return &word, nil
}

// List implements store.WordStore.List
func (s *PostgresWordStore) List(ctx context.Context, offset, limit int) ([]*domain.Word, error) {
	query := `
		SELECT id, japanese, romaji, english, correct_count, wrong_count, created_at
		FROM words
		ORDER BY id
		OFFSET $1 LIMIT $2
	`
	rows, err := s.db.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	return scanWords(rows)
}

// ListByGroup implements store.WordStore.ListByGroup
func (s *PostgresWordStore) ListByGroup(ctx context.Context, groupID int64) ([]*domain.Word, error) {
	query := `
		SELECT w.id, w.japanese, w.romaji, w.english, w.correct_count, w.wrong_count, w.created_at
		FROM words w
		JOIN words_groups wg ON wg.word_id = w.id
		WHERE wg.group_id = $1
		ORDER BY w.id
	`
	rows, err := s.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	return scanWords(rows)
}

// Count implements store.WordStore.Count
func (s *PostgresWordStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM words`).Scan(&count)
	if err != nil {
		return 0, MapError(err)
	}
	return count, nil
}

// IncrementReviewCount implements store.WordStore.IncrementReviewCount
// It bumps exactly one of the two counters in a single UPDATE so the
// increment is atomic at the database level.
// Returns store.ErrWordNotFound if the word does not exist.
func (s *PostgresWordStore) IncrementReviewCount(ctx context.Context, id int64, correct bool) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE words
		SET correct_count = correct_count + CASE WHEN $2 THEN 1 ELSE 0 END,
		    wrong_count   = wrong_count   + CASE WHEN $2 THEN 0 ELSE 1 END
		WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query, id, correct)
	if err != nil {
		log.Error("failed to increment review count",
			slog.String("error", err.Error()),
			slog.Int64("word_id", id),
			slog.Bool("correct", correct))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrWordNotFound); err != nil {
		return err
	}

	log.Debug("review count incremented",
		slog.Int64("word_id", id),
		slog.Bool("correct", correct))
	return nil
}

// ResetReviewCounts implements store.WordStore.ResetReviewCounts
func (s *PostgresWordStore) ResetReviewCounts(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `UPDATE words SET correct_count = 0, wrong_count = 0`)
	if err != nil {
		return MapError(err)
	}
	return nil
}

// DeleteAll implements store.WordStore.DeleteAll
func (s *PostgresWordStore) DeleteAll(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM words`)
	if err != nil {
		return MapError(err)
	}
	return nil
}

// WithTx implements store.WordStore.WithTx
func (s *PostgresWordStore) WithTx(tx *sql.Tx) store.WordStore {
	return &PostgresWordStore{
		db:     tx,
		logger: s.logger,
	}
}

// scanWords collects word rows into a slice, propagating row errors.
func scanWords(rows *sql.Rows) ([]*domain.Word, error) {
	words := make([]*domain.Word, 0)
	for rows.Next() {
		var word domain.Word
		if err := rows.Scan(
			&word.ID,
			&word.Japanese,
			&word.Romaji,
			&word.English,
			&word.CorrectCount,
			&word.WrongCount,
			&word.CreatedAt,
		); err != nil {
			return nil, MapError(err)
		}
		words = append(words, &word)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return words, nil
}
