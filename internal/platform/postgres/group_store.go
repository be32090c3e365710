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

// PostgresGroupStore implements the store.GroupStore interface
// using a PostgreSQL database as the storage backend.
type PostgresGroupStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresGroupStore creates a new PostgreSQL implementation of the
// GroupStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresGroupStore(db store.DBTX, logger *slog.Logger) *PostgresGroupStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresGroupStore{
		db:     db,
		logger: logger.With(slog.String("component", "group_store")),
	}
}

// Ensure PostgresGroupStore implements store.GroupStore interface
var _ store.GroupStore = (*PostgresGroupStore)(nil)

// groupColumns selects group fields plus the derived word count.
const groupColumns = `
	g.id, g.name, g.created_at,
	(SELECT COUNT(*) FROM words_groups wg WHERE wg.group_id = g.id) AS word_count
`

// Create implements store.GroupStore.Create
// Returns store.ErrGroupNameExists if a group with the same name exists.
// A group carrying a nonzero ID is inserted at that ID; the seeder uses
// this so the starter groups keep their numbering across full resets.
func (s *PostgresGroupStore) Create(ctx context.Context, group *domain.Group) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := group.Validate(); err != nil {
		log.Warn("group validation failed during create",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	var err error
	if group.ID != 0 {
		query := `
			INSERT INTO groups (id, name, created_at)
			VALUES ($1, $2, $3)
		`
		_, err = s.db.ExecContext(ctx, query, group.ID, group.Name, group.CreatedAt)
		if err == nil {
			err = syncSerialSequence(ctx, s.db, "groups")
		}
	} else {
		query := `
			INSERT INTO groups (name, created_at)
			VALUES ($1, $2)
			RETURNING id
		`
		err = s.db.QueryRowContext(ctx, query, group.Name, group.CreatedAt).Scan(&group.ID)
	}
	if err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: %q", store.ErrGroupNameExists, group.Name)
		}
		log.Error("failed to create group",
			slog.String("error", err.Error()),
			slog.String("name", group.Name))
		return MapError(err)
	}

	log.Debug("group created",
		slog.Int64("group_id", group.ID),
		slog.String("name", group.Name))
	return nil
}

// GetByID implements store.GroupStore.GetByID
// Returns store.ErrGroupNotFound if the group does not exist.
func (s *PostgresGroupStore) GetByID(ctx context.Context, id int64) (*domain.Group, error) {
	query := `SELECT ` + groupColumns + ` FROM groups g WHERE g.id = $1`

	var group domain.Group
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&group.ID,
		&group.Name,
		&group.CreatedAt,
		&group.WordCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrGroupNotFound
		}
		return nil, MapError(err)
	}

	return &group, nil
}

// List implements store.GroupStore.List
func (s *PostgresGroupStore) List(ctx context.Context, offset, limit int) ([]*domain.Group, error) {
	query := `SELECT ` + groupColumns + ` FROM groups g ORDER BY g.id OFFSET $1 LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	groups := make([]*domain.Group, 0)
	for rows.Next() {
		var group domain.Group
		if err := rows.Scan(
			&group.ID,
			&group.Name,
			&group.CreatedAt,
			&group.WordCount,
		); err != nil {
			return nil, MapError(err)
		}
		groups = append(groups, &group)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return groups, nil
}

// Count implements store.GroupStore.Count
func (s *PostgresGroupStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM groups`).Scan(&count)
	if err != nil {
		return 0, MapError(err)
	}
	return count, nil
}

// AddWord implements store.GroupStore.AddWord
// Re-adding an existing pair is a no-op.
func (s *PostgresGroupStore) AddWord(ctx context.Context, groupID, wordID int64) error {
	query := `
		INSERT INTO words_groups (word_id, group_id)
		VALUES ($1, $2)
		ON CONFLICT (word_id, group_id) DO NOTHING
	`
	_, err := s.db.ExecContext(ctx, query, wordID, groupID)
	if err != nil {
		return MapError(err)
	}
	return nil
}

// DeleteAll implements store.GroupStore.DeleteAll
// The words_groups rows go with the groups via ON DELETE CASCADE.
func (s *PostgresGroupStore) DeleteAll(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM groups`)
	if err != nil {
		return MapError(err)
	}
	return nil
}

// WithTx implements store.GroupStore.WithTx
func (s *PostgresGroupStore) WithTx(tx *sql.Tx) store.GroupStore {
	return &PostgresGroupStore{
		db:     tx,
		logger: s.logger,
	}
}
