// Package vocab serves the read-only vocabulary surface: paginated word and
// group listings, single-entity lookups, and the fixed activity catalogue.
package vocab

import (
	"context"
	"errors"

	"github.com/farabi1038/lang-portal/internal/domain"
)

// Common error types for the vocab service
var (
	// ErrWordNotFound indicates the word does not exist.
	ErrWordNotFound = errors.New("word not found")

	// ErrGroupNotFound indicates the group does not exist.
	ErrGroupNotFound = errors.New("group not found")

	// ErrActivityNotFound indicates the study activity does not exist.
	ErrActivityNotFound = errors.New("study activity not found")
)

// Service provides vocabulary reads. List methods return the page plus the
// total row count for pagination.
type Service interface {
	ListWords(ctx context.Context, offset, limit int) ([]*domain.Word, int, error)
	GetWord(ctx context.Context, id int64) (*domain.Word, error)

	ListGroups(ctx context.Context, offset, limit int) ([]*domain.Group, int, error)
	GetGroup(ctx context.Context, id int64) (*domain.Group, error)

	// GroupWords retrieves every word in the group.
	// Returns ErrGroupNotFound if the group itself does not exist.
	GroupWords(ctx context.Context, groupID int64) ([]*domain.Word, error)

	ListActivities(ctx context.Context) ([]*domain.StudyActivity, error)
	GetActivity(ctx context.Context, id int64) (*domain.StudyActivity, error)
}
