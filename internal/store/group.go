package store

import (
	"context"
	"database/sql"

	"github.com/farabi1038/lang-portal/internal/domain"
)

// GroupStore defines the interface for thematic word-group persistence.
// Implementations populate Group.WordCount from the association table on
// every read.
type GroupStore interface {
	// Create saves a new group. It handles domain validation internally.
	// Returns ErrGroupNameExists if a group with the same name exists.
	Create(ctx context.Context, group *domain.Group) error

	// GetByID retrieves a group by its unique ID.
	// Returns ErrGroupNotFound if the group does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Group, error)

	// List retrieves a page of groups ordered by ID.
	List(ctx context.Context, offset, limit int) ([]*domain.Group, error)

	// Count returns the total number of groups.
	Count(ctx context.Context) (int, error)

	// AddWord associates a word with a group. Adding the same pair twice
	// is a no-op.
	AddWord(ctx context.Context, groupID, wordID int64) error

	// DeleteAll removes every group row and its word associations.
	// Used by the full reset; MUST be run within a transaction.
	DeleteAll(ctx context.Context) error

	// WithTx returns a new GroupStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) GroupStore
}
