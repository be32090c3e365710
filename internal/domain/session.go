package domain

import (
	"errors"
	"time"
)

// StudySession-specific validation errors
var (
	// ErrSessionGroupIDInvalid is returned when a session references no group.
	ErrSessionGroupIDInvalid = errors.New("session group ID must be positive")

	// ErrSessionActivityIDInvalid is returned when a session references no activity.
	ErrSessionActivityIDInvalid = errors.New("session activity ID must be positive")

	// ErrSessionScoreNegative is returned when a session score or total is negative.
	ErrSessionScoreNegative = errors.New("session score and total cannot be negative")
)

// StudySession is one run of an activity against a group's word pool.
// It is created with score=0, total=0 and receives its final score exactly
// once, at completion. CompletedAt is nil until then.
type StudySession struct {
	ID              int64      `json:"id"`
	GroupID         int64      `json:"group_id"`
	StudyActivityID int64      `json:"study_activity_id"`
	Score           int        `json:"score"`
	Total           int        `json:"total"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// NewStudySession creates an open session for the given group and activity.
// Returns an error if validation fails.
func NewStudySession(groupID, activityID int64) (*StudySession, error) {
	session := &StudySession{
		GroupID:         groupID,
		StudyActivityID: activityID,
		CreatedAt:       time.Now().UTC(),
	}

	if err := session.Validate(); err != nil {
		return nil, err
	}

	return session, nil
}

// Validate checks if the StudySession has valid data.
// The score <= total invariant holds both for open and completed sessions.
func (s *StudySession) Validate() error {
	if s.GroupID <= 0 {
		return ErrSessionGroupIDInvalid
	}

	if s.StudyActivityID <= 0 {
		return ErrSessionActivityIDInvalid
	}

	if s.Score < 0 || s.Total < 0 {
		return ErrSessionScoreNegative
	}

	if s.Score > s.Total {
		return ErrScoreExceedsTotal
	}

	return nil
}

// Completed reports whether the session has received its final score.
func (s *StudySession) Completed() bool {
	return s.CompletedAt != nil
}

// Complete writes the final score and total and stamps the completion time.
// Returns ErrScoreExceedsTotal if score > total.
func (s *StudySession) Complete(score, total int) error {
	if score < 0 || total < 0 {
		return ErrSessionScoreNegative
	}

	if score > total {
		return ErrScoreExceedsTotal
	}

	now := time.Now().UTC()
	s.Score = score
	s.Total = total
	s.CompletedAt = &now
	return nil
}
