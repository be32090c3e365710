package store

import (
	"context"
	"database/sql"

	"github.com/farabi1038/lang-portal/internal/domain"
)

// SessionStore defines the interface for study-session persistence.
type SessionStore interface {
	// Create saves a new open session (score=0, total=0) and fills in its ID.
	// Returns ErrInvalidEntity if the referenced group or activity does not
	// exist (foreign key violation).
	Create(ctx context.Context, session *domain.StudySession) error

	// GetByID retrieves a session by its unique ID.
	// Returns ErrSessionNotFound if the session does not exist.
	GetByID(ctx context.Context, id int64) (*domain.StudySession, error)

	// GetForUpdate retrieves a session with a row-level lock using
	// SELECT FOR UPDATE. Use within a transaction when completing a
	// session so two concurrent completions cannot both pass the
	// already-completed check.
	GetForUpdate(ctx context.Context, id int64) (*domain.StudySession, error)

	// Complete writes the final score/total and the completion timestamp.
	// Returns ErrSessionNotFound if the session does not exist.
	Complete(ctx context.Context, session *domain.StudySession) error

	// List retrieves a page of sessions ordered by creation time, newest first.
	List(ctx context.Context, offset, limit int) ([]*domain.StudySession, error)

	// GetLatest retrieves the most recently created session.
	// Returns ErrSessionNotFound when no sessions exist.
	GetLatest(ctx context.Context) (*domain.StudySession, error)

	// ListScores retrieves the (score, total) pairs of every session.
	// Used by the dashboard quick stats.
	ListScores(ctx context.Context) ([]*domain.StudySession, error)

	// Count returns the total number of sessions.
	Count(ctx context.Context) (int, error)

	// DeleteAll removes every session row. Used by the reset operations;
	// MUST be run within a transaction after the study records are deleted.
	DeleteAll(ctx context.Context) error

	// WithTx returns a new SessionStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) SessionStore
}

// StudyRecordStore defines the interface for per-word review records.
// Records are append-only outside the reset operations.
type StudyRecordStore interface {
	// Create appends a review record and fills in its ID.
	// Returns ErrInvalidEntity if the referenced word or session does not
	// exist (foreign key violation).
	Create(ctx context.Context, record *domain.StudyRecord) error

	// ListBySession retrieves every record of the given session, oldest first.
	ListBySession(ctx context.Context, sessionID int64) ([]*domain.StudyRecord, error)

	// CountBySession returns how many words were reviewed in the session.
	CountBySession(ctx context.Context, sessionID int64) (int, error)

	// DeleteAll removes every record row. Used by the reset operations;
	// MUST be run within a transaction.
	DeleteAll(ctx context.Context) error

	// WithTx returns a new StudyRecordStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) StudyRecordStore
}
