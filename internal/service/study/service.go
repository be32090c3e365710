// Package study implements the study-session lifecycle: opening sessions
// against a word group and activity, recording per-word reviews while the
// session is live, sealing the final score on completion, and the two
// destructive reset operations.
package study

import (
	"context"
	"errors"
	"fmt"

	"github.com/farabi1038/lang-portal/internal/domain"
)

// SessionLaunch pairs a freshly created session with the display context
// the study UI needs to start the activity.
type SessionLaunch struct {
	Session      *domain.StudySession
	GroupName    string
	ActivityName string
	ActivityURL  string
}

// SessionSummary is one row of the session listing: the session plus the
// display names and review count the history page renders.
type SessionSummary struct {
	Session       *domain.StudySession
	GroupName     string
	ActivityName  string
	WordsReviewed int
}

// SessionService provides methods for driving a study session from
// creation through completion, plus the history reset operations.
type SessionService interface {
	// CreateSession opens a new study session for the given group and
	// activity. The session starts with a zero score and no completion
	// timestamp.
	//
	// Returns:
	//   - (*domain.StudySession, nil): The newly created open session
	//   - (nil, ErrGroupNotFound): If the group does not exist
	//   - (nil, ErrActivityNotFound): If the activity does not exist
	//   - (nil, error): Any other error, typically from the database
	CreateSession(ctx context.Context, groupID, activityID int64) (*domain.StudySession, error)

	// LaunchSession creates a session and resolves the group and activity
	// names the study UI renders. Same error contract as CreateSession.
	LaunchSession(ctx context.Context, groupID, activityID int64) (*SessionLaunch, error)

	// GetSession retrieves a single session by ID.
	// Returns ErrSessionNotFound if the session does not exist.
	GetSession(ctx context.Context, id int64) (*domain.StudySession, error)

	// ListSessions retrieves a page of sessions, newest first, and the
	// total session count for pagination.
	ListSessions(ctx context.Context, offset, limit int) ([]*domain.StudySession, int, error)

	// ListSessionSummaries is ListSessions enriched with group and
	// activity names and the number of words reviewed per session.
	// Sessions whose group or activity has since been deleted keep an
	// empty name rather than failing the listing.
	ListSessionSummaries(ctx context.Context, offset, limit int) ([]*SessionSummary, int, error)

	// RecordWordReview appends a review record for the word within the
	// session and bumps the word's lifetime correct or wrong counter.
	// Both writes happen in a single transaction.
	//
	// Returns:
	//   - (*domain.StudyRecord, nil): The stored record
	//   - (nil, ErrSessionNotFound): If the session does not exist
	//   - (nil, ErrSessionCompleted): If the session is already sealed
	//   - (nil, ErrWordNotFound): If the word does not exist
	RecordWordReview(ctx context.Context, sessionID, wordID int64, correct bool) (*domain.StudyRecord, error)

	// RecordWordStat bumps only the word's lifetime counter, without an
	// accompanying session record. Serves clients that report the two
	// halves of a review through separate calls.
	// Returns ErrWordNotFound if the word does not exist.
	RecordWordStat(ctx context.Context, wordID int64, correct bool) error

	// AppendReviewRecord appends only the session-scoped review record,
	// without touching the word counters. The counterpart of
	// RecordWordStat for split-reporting clients.
	//
	// Returns:
	//   - (*domain.StudyRecord, nil): The stored record
	//   - (nil, ErrSessionNotFound): If the session does not exist
	//   - (nil, ErrSessionCompleted): If the session is already sealed
	//   - (nil, ErrWordNotFound): If the word does not exist
	AppendReviewRecord(ctx context.Context, sessionID, wordID int64, correct bool) (*domain.StudyRecord, error)

	// SubmitSessionScore creates a session and seals it with the given
	// score in one transaction. Serves activities that report a single
	// final score instead of per-word events.
	//
	// Returns:
	//   - (*domain.StudySession, nil): The sealed session
	//   - (nil, ErrGroupNotFound): If the group does not exist
	//   - (nil, ErrActivityNotFound): If the activity does not exist
	//   - (nil, ErrInvalidScore): If score or total is invalid
	SubmitSessionScore(ctx context.Context, groupID, activityID int64, score, total int) (*domain.StudySession, error)

	// CompleteSession seals the session with its final score. The session
	// row is locked for the duration of the check-then-write so two
	// concurrent completions cannot both succeed.
	//
	// Returns:
	//   - (*domain.StudySession, nil): The sealed session
	//   - (nil, ErrSessionNotFound): If the session does not exist
	//   - (nil, ErrSessionCompleted): If the session was already sealed
	//   - (nil, ErrInvalidScore): If score or total is negative, or
	//     score exceeds total
	CompleteSession(ctx context.Context, sessionID int64, score, total int) (*domain.StudySession, error)

	// ResetHistory deletes every session and review record and zeros the
	// per-word counters, leaving words, groups and activities intact.
	// All deletions happen in one transaction.
	ResetHistory(ctx context.Context) error

	// FullReset drops all data, including the vocabulary itself, and
	// reloads the seed set. One transaction: an error leaves the
	// database untouched.
	FullReset(ctx context.Context) error
}

// Common error types for SessionService
var (
	// ErrGroupNotFound indicates the referenced word group does not exist.
	ErrGroupNotFound = errors.New("group not found")

	// ErrActivityNotFound indicates the referenced study activity does not exist.
	ErrActivityNotFound = errors.New("study activity not found")

	// ErrSessionNotFound indicates the session does not exist.
	ErrSessionNotFound = errors.New("study session not found")

	// ErrSessionCompleted indicates the session is already sealed; completed
	// sessions accept neither reviews nor a second completion.
	ErrSessionCompleted = errors.New("study session already completed")

	// ErrWordNotFound indicates the reviewed word does not exist.
	ErrWordNotFound = errors.New("word not found")

	// ErrInvalidScore indicates a negative score/total or score > total.
	ErrInvalidScore = errors.New("invalid session score")
)

// ServiceError wraps errors from the study service with the failed
// operation, so consumers can differentiate with errors.As instead of
// string matching.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "create_session")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError returns a ServiceError for the given operation.
func NewServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
