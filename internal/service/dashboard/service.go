// Package dashboard aggregates study data into the read-only numbers the
// portal's landing page shows: overall study progress, quick stats, and a
// snapshot of the most recent study session.
package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/farabi1038/lang-portal/internal/domain/mastery"
)

// ErrNoSessions indicates no study session has ever been recorded.
var ErrNoSessions = errors.New("no study sessions recorded")

// LastSession is the dashboard's snapshot of the most recent session.
type LastSession struct {
	SessionID     int64      `json:"session_id"`
	GroupID       int64      `json:"group_id"`
	GroupName     string     `json:"group_name"`
	ActivityID    int64      `json:"activity_id"`
	ActivityName  string     `json:"activity_name"`
	Score         int        `json:"score"`
	Total         int        `json:"total"`
	WordsReviewed int        `json:"words_reviewed"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Service provides the dashboard aggregations. All methods are pure reads.
type Service interface {
	// StudyProgress computes how much of the vocabulary has been studied
	// and mastered.
	StudyProgress(ctx context.Context) (mastery.Progress, error)

	// QuickStats computes the headline counters and the average session
	// score percentage.
	QuickStats(ctx context.Context) (mastery.QuickStats, error)

	// LastStudySession retrieves the most recent session enriched with
	// its group and activity names and the number of words reviewed.
	// Returns ErrNoSessions when the history is empty.
	LastStudySession(ctx context.Context) (*LastSession, error)
}
