package study

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/farabi1038/lang-portal/internal/domain"
	"github.com/farabi1038/lang-portal/internal/platform/logger"
	"github.com/farabi1038/lang-portal/internal/seed"
	"github.com/farabi1038/lang-portal/internal/store"
)

// Verify interface compliance at compile time
var _ SessionService = (*sessionServiceImpl)(nil)

// sessionServiceImpl implements the SessionService interface.
type sessionServiceImpl struct {
	db            *sql.DB
	wordStore     store.WordStore
	groupStore    store.GroupStore
	activityStore store.StudyActivityStore
	sessionStore  store.SessionStore
	recordStore   store.StudyRecordStore
	logger        *slog.Logger

	// runTx is store.RunInTransaction; swapped for a pass-through in tests.
	runTx func(ctx context.Context, db *sql.DB, fn store.TxFn) error
}

// NewSessionService creates a new SessionService implementation.
func NewSessionService(
	db *sql.DB,
	wordStore store.WordStore,
	groupStore store.GroupStore,
	activityStore store.StudyActivityStore,
	sessionStore store.SessionStore,
	recordStore store.StudyRecordStore,
	logger *slog.Logger,
) SessionService {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
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

	if logger == nil {
		logger = slog.Default()
	}

	return &sessionServiceImpl{
		db:            db,
		wordStore:     wordStore,
		groupStore:    groupStore,
		activityStore: activityStore,
		sessionStore:  sessionStore,
		recordStore:   recordStore,
		logger:        logger.With(slog.String("component", "study_service")),
		runTx:         store.RunInTransaction,
	}
}

// CreateSession implements SessionService.CreateSession.
func (s *sessionServiceImpl) CreateSession(
	ctx context.Context,
	groupID, activityID int64,
) (*domain.StudySession, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("creating study session",
		slog.Int64("group_id", groupID),
		slog.Int64("activity_id", activityID))

	if _, err := s.groupStore.GetByID(ctx, groupID); err != nil {
		if errors.Is(err, store.ErrGroupNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, NewServiceError("create_session", "failed to load group", err)
	}
	if _, err := s.activityStore.GetByID(ctx, activityID); err != nil {
		if errors.Is(err, store.ErrActivityNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, NewServiceError("create_session", "failed to load activity", err)
	}

	session, err := domain.NewStudySession(groupID, activityID)
	if err != nil {
		return nil, NewServiceError("create_session", "invalid session", err)
	}

	if err := s.sessionStore.Create(ctx, session); err != nil {
		// A concurrent deletion can still fail the foreign keys after the
		// existence checks above.
		if errors.Is(err, store.ErrInvalidEntity) {
			return nil, ErrGroupNotFound
		}
		log.Error("failed to create study session",
			slog.String("error", err.Error()),
			slog.Int64("group_id", groupID),
			slog.Int64("activity_id", activityID))
		return nil, NewServiceError("create_session", "failed to store session", err)
	}

	log.Debug("study session created", slog.Int64("session_id", session.ID))
	return session, nil
}

// LaunchSession implements SessionService.LaunchSession.
func (s *sessionServiceImpl) LaunchSession(
	ctx context.Context,
	groupID, activityID int64,
) (*SessionLaunch, error) {
	group, err := s.groupStore.GetByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, store.ErrGroupNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, NewServiceError("launch_session", "failed to load group", err)
	}
	activity, err := s.activityStore.GetByID(ctx, activityID)
	if err != nil {
		if errors.Is(err, store.ErrActivityNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, NewServiceError("launch_session", "failed to load activity", err)
	}

	session, err := domain.NewStudySession(groupID, activityID)
	if err != nil {
		return nil, NewServiceError("launch_session", "invalid session", err)
	}
	if err := s.sessionStore.Create(ctx, session); err != nil {
		if errors.Is(err, store.ErrInvalidEntity) {
			return nil, ErrGroupNotFound
		}
		return nil, NewServiceError("launch_session", "failed to store session", err)
	}

	return &SessionLaunch{
		Session:      session,
		GroupName:    group.Name,
		ActivityName: activity.Name,
		ActivityURL:  activity.URL,
	}, nil
}

// GetSession implements SessionService.GetSession.
func (s *sessionServiceImpl) GetSession(ctx context.Context, id int64) (*domain.StudySession, error) {
	session, err := s.sessionStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, NewServiceError("get_session", "failed to load session", err)
	}
	return session, nil
}

// ListSessions implements SessionService.ListSessions.
func (s *sessionServiceImpl) ListSessions(
	ctx context.Context,
	offset, limit int,
) ([]*domain.StudySession, int, error) {
	sessions, err := s.sessionStore.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, NewServiceError("list_sessions", "failed to list sessions", err)
	}
	total, err := s.sessionStore.Count(ctx)
	if err != nil {
		return nil, 0, NewServiceError("list_sessions", "failed to count sessions", err)
	}
	return sessions, total, nil
}

// ListSessionSummaries implements SessionService.ListSessionSummaries.
// Group and activity names are resolved through small per-call caches
// since a page of sessions usually spans few distinct groups.
func (s *sessionServiceImpl) ListSessionSummaries(
	ctx context.Context,
	offset, limit int,
) ([]*SessionSummary, int, error) {
	sessions, total, err := s.ListSessions(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	groupNames := make(map[int64]string)
	activityNames := make(map[int64]string)

	summaries := make([]*SessionSummary, 0, len(sessions))
	for _, session := range sessions {
		summary := &SessionSummary{Session: session}

		name, ok := groupNames[session.GroupID]
		if !ok {
			if group, err := s.groupStore.GetByID(ctx, session.GroupID); err == nil {
				name = group.Name
			} else if !errors.Is(err, store.ErrGroupNotFound) {
				return nil, 0, NewServiceError("list_session_summaries", "failed to load group", err)
			}
			groupNames[session.GroupID] = name
		}
		summary.GroupName = name

		name, ok = activityNames[session.StudyActivityID]
		if !ok {
			if activity, err := s.activityStore.GetByID(ctx, session.StudyActivityID); err == nil {
				name = activity.Name
			} else if !errors.Is(err, store.ErrActivityNotFound) {
				return nil, 0, NewServiceError("list_session_summaries", "failed to load activity", err)
			}
			activityNames[session.StudyActivityID] = name
		}
		summary.ActivityName = name

		reviewed, err := s.recordStore.CountBySession(ctx, session.ID)
		if err != nil {
			return nil, 0, NewServiceError("list_session_summaries", "failed to count reviews", err)
		}
		summary.WordsReviewed = reviewed

		summaries = append(summaries, summary)
	}

	return summaries, total, nil
}

// RecordWordReview implements SessionService.RecordWordReview.
// The record append and the word counter bump share one transaction so a
// failure never leaves the counters out of step with the review log.
func (s *sessionServiceImpl) RecordWordReview(
	ctx context.Context,
	sessionID, wordID int64,
	correct bool,
) (*domain.StudyRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("recording word review",
		slog.Int64("session_id", sessionID),
		slog.Int64("word_id", wordID),
		slog.Bool("correct", correct))

	var stored *domain.StudyRecord
	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		sessionStore := s.sessionStore.WithTx(tx)
		recordStore := s.recordStore.WithTx(tx)
		wordStore := s.wordStore.WithTx(tx)

		session, err := sessionStore.GetByID(ctx, sessionID)
		if err != nil {
			if errors.Is(err, store.ErrSessionNotFound) {
				return ErrSessionNotFound
			}
			return fmt.Errorf("failed to load session: %w", err)
		}
		if session.Completed() {
			return ErrSessionCompleted
		}

		record, err := domain.NewStudyRecord(wordID, sessionID, correct)
		if err != nil {
			return fmt.Errorf("invalid review record: %w", err)
		}

		if err := recordStore.Create(ctx, record); err != nil {
			if errors.Is(err, store.ErrInvalidEntity) {
				return ErrWordNotFound
			}
			return fmt.Errorf("failed to store record: %w", err)
		}

		if err := wordStore.IncrementReviewCount(ctx, wordID, correct); err != nil {
			if errors.Is(err, store.ErrWordNotFound) {
				return ErrWordNotFound
			}
			return fmt.Errorf("failed to bump review counter: %w", err)
		}

		stored = record
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) ||
			errors.Is(err, ErrSessionCompleted) ||
			errors.Is(err, ErrWordNotFound) {
			return nil, err
		}
		log.Error("failed to record word review",
			slog.String("error", err.Error()),
			slog.Int64("session_id", sessionID),
			slog.Int64("word_id", wordID))
		return nil, NewServiceError("record_review", "failed to record review", err)
	}

	return stored, nil
}

// RecordWordStat implements SessionService.RecordWordStat.
func (s *sessionServiceImpl) RecordWordStat(ctx context.Context, wordID int64, correct bool) error {
	if err := s.wordStore.IncrementReviewCount(ctx, wordID, correct); err != nil {
		if errors.Is(err, store.ErrWordNotFound) {
			return ErrWordNotFound
		}
		return NewServiceError("record_word_stat", "failed to bump review counter", err)
	}
	return nil
}

// AppendReviewRecord implements SessionService.AppendReviewRecord.
func (s *sessionServiceImpl) AppendReviewRecord(
	ctx context.Context,
	sessionID, wordID int64,
	correct bool,
) (*domain.StudyRecord, error) {
	session, err := s.sessionStore.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, NewServiceError("append_review_record", "failed to load session", err)
	}
	if session.Completed() {
		return nil, ErrSessionCompleted
	}

	record, err := domain.NewStudyRecord(wordID, sessionID, correct)
	if err != nil {
		return nil, NewServiceError("append_review_record", "invalid review record", err)
	}
	if err := s.recordStore.Create(ctx, record); err != nil {
		if errors.Is(err, store.ErrInvalidEntity) {
			return nil, ErrWordNotFound
		}
		return nil, NewServiceError("append_review_record", "failed to store record", err)
	}

	return record, nil
}

// SubmitSessionScore implements SessionService.SubmitSessionScore.
// Creation and completion share one transaction so a failed completion
// never leaves a stray open session behind.
func (s *sessionServiceImpl) SubmitSessionScore(
	ctx context.Context,
	groupID, activityID int64,
	score, total int,
) (*domain.StudySession, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if score < 0 || total < 0 || score > total {
		return nil, fmt.Errorf("score %d of %d: %w", score, total, ErrInvalidScore)
	}

	if _, err := s.groupStore.GetByID(ctx, groupID); err != nil {
		if errors.Is(err, store.ErrGroupNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, NewServiceError("submit_session_score", "failed to load group", err)
	}
	if _, err := s.activityStore.GetByID(ctx, activityID); err != nil {
		if errors.Is(err, store.ErrActivityNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, NewServiceError("submit_session_score", "failed to load activity", err)
	}

	var sealed *domain.StudySession
	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		sessionStore := s.sessionStore.WithTx(tx)

		session, err := domain.NewStudySession(groupID, activityID)
		if err != nil {
			return fmt.Errorf("invalid session: %w", err)
		}
		if err := sessionStore.Create(ctx, session); err != nil {
			return fmt.Errorf("failed to store session: %w", err)
		}
		if err := session.Complete(score, total); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidScore, err)
		}
		if err := sessionStore.Complete(ctx, session); err != nil {
			return fmt.Errorf("failed to store completion: %w", err)
		}

		sealed = session
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInvalidScore) {
			return nil, err
		}
		log.Error("failed to submit session score",
			slog.String("error", err.Error()),
			slog.Int64("group_id", groupID))
		return nil, NewServiceError("submit_session_score", "failed to record session", err)
	}

	log.Info("scored session recorded",
		slog.Int64("session_id", sealed.ID),
		slog.Int("score", score),
		slog.Int("total", total))
	return sealed, nil
}

// CompleteSession implements SessionService.CompleteSession.
// The session row is locked with SELECT FOR UPDATE so the
// already-completed check and the final write are atomic.
func (s *sessionServiceImpl) CompleteSession(
	ctx context.Context,
	sessionID int64,
	score, total int,
) (*domain.StudySession, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if score < 0 || total < 0 || score > total {
		return nil, fmt.Errorf("score %d of %d: %w", score, total, ErrInvalidScore)
	}

	var sealed *domain.StudySession
	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		sessionStore := s.sessionStore.WithTx(tx)

		session, err := sessionStore.GetForUpdate(ctx, sessionID)
		if err != nil {
			if errors.Is(err, store.ErrSessionNotFound) {
				return ErrSessionNotFound
			}
			return fmt.Errorf("failed to lock session: %w", err)
		}
		if session.Completed() {
			return ErrSessionCompleted
		}

		if err := session.Complete(score, total); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidScore, err)
		}
		if err := sessionStore.Complete(ctx, session); err != nil {
			return fmt.Errorf("failed to store completion: %w", err)
		}

		sealed = session
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) ||
			errors.Is(err, ErrSessionCompleted) ||
			errors.Is(err, ErrInvalidScore) {
			return nil, err
		}
		log.Error("failed to complete study session",
			slog.String("error", err.Error()),
			slog.Int64("session_id", sessionID))
		return nil, NewServiceError("complete_session", "failed to complete session", err)
	}

	log.Info("study session completed",
		slog.Int64("session_id", sessionID),
		slog.Int("score", score),
		slog.Int("total", total))
	return sealed, nil
}

// ResetHistory implements SessionService.ResetHistory.
func (s *sessionServiceImpl) ResetHistory(ctx context.Context) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.recordStore.WithTx(tx).DeleteAll(ctx); err != nil {
			return fmt.Errorf("failed to delete records: %w", err)
		}
		if err := s.sessionStore.WithTx(tx).DeleteAll(ctx); err != nil {
			return fmt.Errorf("failed to delete sessions: %w", err)
		}
		if err := s.wordStore.WithTx(tx).ResetReviewCounts(ctx); err != nil {
			return fmt.Errorf("failed to reset counters: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Error("history reset failed", slog.String("error", err.Error()))
		return NewServiceError("reset_history", "failed to reset history", err)
	}

	log.Info("study history reset")
	return nil
}

// FullReset implements SessionService.FullReset.
// Deletion order respects the foreign keys: records, then sessions, then
// the vocabulary and activities, then the seed set is reloaded.
func (s *sessionServiceImpl) FullReset(ctx context.Context) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		wordStore := s.wordStore.WithTx(tx)
		groupStore := s.groupStore.WithTx(tx)
		activityStore := s.activityStore.WithTx(tx)

		if err := s.recordStore.WithTx(tx).DeleteAll(ctx); err != nil {
			return fmt.Errorf("failed to delete records: %w", err)
		}
		if err := s.sessionStore.WithTx(tx).DeleteAll(ctx); err != nil {
			return fmt.Errorf("failed to delete sessions: %w", err)
		}
		if err := activityStore.DeleteAll(ctx); err != nil {
			return fmt.Errorf("failed to delete activities: %w", err)
		}
		if err := groupStore.DeleteAll(ctx); err != nil {
			return fmt.Errorf("failed to delete groups: %w", err)
		}
		if err := wordStore.DeleteAll(ctx); err != nil {
			return fmt.Errorf("failed to delete words: %w", err)
		}

		if err := seed.Apply(ctx, activityStore, groupStore, wordStore); err != nil {
			return fmt.Errorf("failed to reseed: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Error("full reset failed", slog.String("error", err.Error()))
		return NewServiceError("full_reset", "failed to perform full reset", err)
	}

	log.Info("full reset applied, seed data restored")
	return nil
}
