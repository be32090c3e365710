package domain

import (
	"errors"
	"time"
)

// StudyActivity-specific validation errors
var (
	// ErrActivityNameEmpty is returned when an activity has no name.
	ErrActivityNameEmpty = errors.New("activity name cannot be empty")

	// ErrActivityURLEmpty is returned when an activity has no launch URL.
	ErrActivityURLEmpty = errors.New("activity URL cannot be empty")
)

// Well-known activity kinds. These match the seeded study_activities rows
// and select which engine a launched session runs.
type ActivityKind string

const (
	ActivityFlashcards     ActivityKind = "flashcards"
	ActivityMultipleChoice ActivityKind = "multiple_choice"
	ActivityTyping         ActivityKind = "typing"
	ActivityMatching       ActivityKind = "matching"
)

// StudyActivity is long-lived reference data describing one interactive
// study mode. The fixed set is inserted by the seeder and restored by a
// full reset.
type StudyActivity struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	Kind      ActivityKind `json:"kind"`
	URL       string       `json:"url"`
	CreatedAt time.Time    `json:"created_at"`
}

// Validate checks if the StudyActivity has valid data.
func (a *StudyActivity) Validate() error {
	if a.Name == "" {
		return ErrActivityNameEmpty
	}

	if a.URL == "" {
		return ErrActivityURLEmpty
	}

	return nil
}
