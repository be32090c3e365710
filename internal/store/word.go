package store

import (
	"context"
	"database/sql"

	"github.com/farabi1038/lang-portal/internal/domain"
)

// WordStore defines the interface for word data persistence, including the
// per-word correct/wrong review counters.
type WordStore interface {
	// Create saves a new word. It handles domain validation internally.
	Create(ctx context.Context, word *domain.Word) error

	// GetByID retrieves a word by its unique ID.
	// Returns ErrWordNotFound if the word does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Word, error)

	// List retrieves a page of words ordered by ID.
	// offset/limit are assumed pre-validated by the caller.
	List(ctx context.Context, offset, limit int) ([]*domain.Word, error)

	// ListByGroup retrieves every word associated with the given group.
	// Returns an empty slice (not an error) when the group has no words.
	ListByGroup(ctx context.Context, groupID int64) ([]*domain.Word, error)

	// Count returns the total number of words.
	Count(ctx context.Context) (int, error)

	// IncrementReviewCount atomically bumps the word's correct or wrong
	// counter by one, depending on the correct flag.
	// Returns ErrWordNotFound if the word does not exist.
	IncrementReviewCount(ctx context.Context, id int64, correct bool) error

	// ResetReviewCounts zeros the correct/wrong counters of every word.
	// Used by the reset operations; MUST be run within a transaction
	// alongside the session/record deletions.
	ResetReviewCounts(ctx context.Context) error

	// DeleteAll removes every word row. Used by the full reset; MUST be
	// run within a transaction.
	DeleteAll(ctx context.Context) error

	// WithTx returns a new WordStore instance that uses the provided transaction.
	// The transaction should be created and managed by the caller.
	WithTx(tx *sql.Tx) WordStore
}
