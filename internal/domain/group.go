package domain

import (
	"errors"
	"time"
)

// Group-specific validation errors
var (
	// ErrGroupNameEmpty is returned when a group has no name.
	ErrGroupNameEmpty = errors.New("group name cannot be empty")
)

// Group is a thematic collection of words ("Basic Greetings", "Numbers").
// WordCount is derived from the word-group associations and is populated
// by the store on read; it is never written directly.
type Group struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	WordCount int       `json:"word_count"`
	CreatedAt time.Time `json:"created_at"`
}

// NewGroup creates a new Group with the given name.
// Returns an error if validation fails.
func NewGroup(name string) (*Group, error) {
	group := &Group{
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	if err := group.Validate(); err != nil {
		return nil, err
	}

	return group, nil
}

// Validate checks if the Group has valid data.
func (g *Group) Validate() error {
	if g.Name == "" {
		return ErrGroupNameEmpty
	}

	return nil
}
