package domain

import (
	"errors"
	"time"
)

// StudyRecord-specific validation errors
var (
	// ErrRecordWordIDInvalid is returned when a record references no word.
	ErrRecordWordIDInvalid = errors.New("record word ID must be positive")

	// ErrRecordSessionIDInvalid is returned when a record references no session.
	ErrRecordSessionIDInvalid = errors.New("record session ID must be positive")
)

// StudyRecord is one word-review event inside a study session. Records are
// append-only: they are never updated or deleted except by the reset
// operations, which remove them wholesale.
type StudyRecord struct {
	ID             int64     `json:"id"`
	WordID         int64     `json:"word_id"`
	StudySessionID int64     `json:"study_session_id"`
	Correct        bool      `json:"correct"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewStudyRecord creates a review record for the given word and session.
// Returns an error if validation fails.
func NewStudyRecord(wordID, sessionID int64, correct bool) (*StudyRecord, error) {
	record := &StudyRecord{
		WordID:         wordID,
		StudySessionID: sessionID,
		Correct:        correct,
		CreatedAt:      time.Now().UTC(),
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate checks if the StudyRecord has valid data.
func (r *StudyRecord) Validate() error {
	if r.WordID <= 0 {
		return ErrRecordWordIDInvalid
	}

	if r.StudySessionID <= 0 {
		return ErrRecordSessionIDInvalid
	}

	return nil
}
