package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/farabi1038/lang-portal/internal/domain/mastery"
	"github.com/farabi1038/lang-portal/internal/platform/logger"
	"github.com/farabi1038/lang-portal/internal/store"
)

// Verify interface compliance at compile time
var _ Service = (*serviceImpl)(nil)

type serviceImpl struct {
	wordStore     store.WordStore
	groupStore    store.GroupStore
	activityStore store.StudyActivityStore
	sessionStore  store.SessionStore
	recordStore   store.StudyRecordStore
	params        *mastery.Params
	logger        *slog.Logger
}

// NewService creates a dashboard Service over the given stores. A nil
// params falls back to the default mastery thresholds.
func NewService(
	wordStore store.WordStore,
	groupStore store.GroupStore,
	activityStore store.StudyActivityStore,
	sessionStore store.SessionStore,
	recordStore store.StudyRecordStore,
	params *mastery.Params,
	logger *slog.Logger,
) Service {
	if wordStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("wordStore cannot be nil")
	}
	if groupStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("groupStore cannot be nil")
	}
	if activityStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("activityStore cannot be nil")
	}
	if sessionStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("sessionStore cannot be nil")
	}
	if recordStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("recordStore cannot be nil")
	}

	if params == nil {
		params = mastery.NewDefaultParams()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &serviceImpl{
		wordStore:     wordStore,
		groupStore:    groupStore,
		activityStore: activityStore,
		sessionStore:  sessionStore,
		recordStore:   recordStore,
		params:        params,
		logger:        logger.With(slog.String("component", "dashboard_service")),
	}
}

// StudyProgress implements Service.StudyProgress.
func (s *serviceImpl) StudyProgress(ctx context.Context) (mastery.Progress, error) {
	total, err := s.wordStore.Count(ctx)
	if err != nil {
		return mastery.Progress{}, fmt.Errorf("failed to count words: %w", err)
	}
	if total == 0 {
		return mastery.StudyProgress(0, 0, 0), nil
	}

	words, err := s.wordStore.List(ctx, 0, total)
	if err != nil {
		return mastery.Progress{}, fmt.Errorf("failed to list words: %w", err)
	}

	return mastery.ProgressForWords(words, s.params), nil
}

// QuickStats implements Service.QuickStats.
func (s *serviceImpl) QuickStats(ctx context.Context) (mastery.QuickStats, error) {
	groups, err := s.groupStore.Count(ctx)
	if err != nil {
		return mastery.QuickStats{}, fmt.Errorf("failed to count groups: %w", err)
	}
	words, err := s.wordStore.Count(ctx)
	if err != nil {
		return mastery.QuickStats{}, fmt.Errorf("failed to count words: %w", err)
	}
	sessions, err := s.sessionStore.ListScores(ctx)
	if err != nil {
		return mastery.QuickStats{}, fmt.Errorf("failed to list session scores: %w", err)
	}

	scores := make([]mastery.SessionScore, 0, len(sessions))
	for _, session := range sessions {
		scores = append(scores, mastery.SessionScore{Score: session.Score, Total: session.Total})
	}

	return mastery.ComputeQuickStats(groups, words, scores), nil
}

// LastStudySession implements Service.LastStudySession.
// The group or activity may have been deleted since the session ran; the
// snapshot then carries an empty name rather than failing.
func (s *serviceImpl) LastStudySession(ctx context.Context) (*LastSession, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	session, err := s.sessionStore.GetLatest(ctx)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return nil, ErrNoSessions
		}
		return nil, fmt.Errorf("failed to load latest session: %w", err)
	}

	last := &LastSession{
		SessionID:   session.ID,
		GroupID:     session.GroupID,
		ActivityID:  session.StudyActivityID,
		Score:       session.Score,
		Total:       session.Total,
		CompletedAt: session.CompletedAt,
		CreatedAt:   session.CreatedAt,
	}

	if group, err := s.groupStore.GetByID(ctx, session.GroupID); err == nil {
		last.GroupName = group.Name
	} else if !errors.Is(err, store.ErrGroupNotFound) {
		return nil, fmt.Errorf("failed to load group: %w", err)
	}

	if activity, err := s.activityStore.GetByID(ctx, session.StudyActivityID); err == nil {
		last.ActivityName = activity.Name
	} else if !errors.Is(err, store.ErrActivityNotFound) {
		return nil, fmt.Errorf("failed to load activity: %w", err)
	}

	reviewed, err := s.recordStore.CountBySession(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count session records: %w", err)
	}
	last.WordsReviewed = reviewed

	log.Debug("last study session resolved",
		slog.Int64("session_id", session.ID),
		slog.Int("words_reviewed", reviewed))
	return last, nil
}
