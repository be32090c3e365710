package store

import (
	"context"
	"database/sql"

	"github.com/farabi1038/lang-portal/internal/domain"
)

// StudyActivityStore defines the interface for study-activity reference data.
// The activity set is fixed by the seeder; there is no update surface.
type StudyActivityStore interface {
	// Create saves a new study activity with an explicit ID. Used only by
	// the seeder, which owns the fixed activity set.
	Create(ctx context.Context, activity *domain.StudyActivity) error

	// GetByID retrieves an activity by its unique ID.
	// Returns ErrActivityNotFound if the activity does not exist.
	GetByID(ctx context.Context, id int64) (*domain.StudyActivity, error)

	// List retrieves every activity ordered by ID.
	List(ctx context.Context) ([]*domain.StudyActivity, error)

	// DeleteAll removes every activity row. Used by the full reset; MUST be
	// run within a transaction after the sessions are deleted.
	DeleteAll(ctx context.Context) error

	// WithTx returns a new StudyActivityStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) StudyActivityStore
}
