package mocks

import (
	"context"

	"github.com/farabi1038/lang-portal/internal/domain"
	"github.com/farabi1038/lang-portal/internal/domain/mastery"
	"github.com/farabi1038/lang-portal/internal/service/dashboard"
	"github.com/farabi1038/lang-portal/internal/service/study"
	"github.com/farabi1038/lang-portal/internal/service/vocab"
)

// MockSessionService implements study.SessionService for testing.
type MockSessionService struct {
	CreateSessionFn        func(ctx context.Context, groupID, activityID int64) (*domain.StudySession, error)
	LaunchSessionFn        func(ctx context.Context, groupID, activityID int64) (*study.SessionLaunch, error)
	GetSessionFn           func(ctx context.Context, id int64) (*domain.StudySession, error)
	ListSessionsFn         func(ctx context.Context, offset, limit int) ([]*domain.StudySession, int, error)
	ListSessionSummariesFn func(ctx context.Context, offset, limit int) ([]*study.SessionSummary, int, error)
	RecordWordReviewFn     func(ctx context.Context, sessionID, wordID int64, correct bool) (*domain.StudyRecord, error)
	RecordWordStatFn       func(ctx context.Context, wordID int64, correct bool) error
	AppendReviewRecordFn   func(ctx context.Context, sessionID, wordID int64, correct bool) (*domain.StudyRecord, error)
	SubmitSessionScoreFn   func(ctx context.Context, groupID, activityID int64, score, total int) (*domain.StudySession, error)
	CompleteSessionFn      func(ctx context.Context, sessionID int64, score, total int) (*domain.StudySession, error)
	ResetHistoryFn         func(ctx context.Context) error
	FullResetFn            func(ctx context.Context) error

	Err error
}

var _ study.SessionService = (*MockSessionService)(nil)

func (m *MockSessionService) CreateSession(ctx context.Context, groupID, activityID int64) (*domain.StudySession, error) {
	if m.CreateSessionFn != nil {
		return m.CreateSessionFn(ctx, groupID, activityID)
	}
	return nil, m.Err
}

func (m *MockSessionService) LaunchSession(ctx context.Context, groupID, activityID int64) (*study.SessionLaunch, error) {
	if m.LaunchSessionFn != nil {
		return m.LaunchSessionFn(ctx, groupID, activityID)
	}
	return nil, m.Err
}

func (m *MockSessionService) GetSession(ctx context.Context, id int64) (*domain.StudySession, error) {
	if m.GetSessionFn != nil {
		return m.GetSessionFn(ctx, id)
	}
	return nil, m.Err
}

func (m *MockSessionService) ListSessions(ctx context.Context, offset, limit int) ([]*domain.StudySession, int, error) {
	if m.ListSessionsFn != nil {
		return m.ListSessionsFn(ctx, offset, limit)
	}
	return nil, 0, m.Err
}

func (m *MockSessionService) ListSessionSummaries(ctx context.Context, offset, limit int) ([]*study.SessionSummary, int, error) {
	if m.ListSessionSummariesFn != nil {
		return m.ListSessionSummariesFn(ctx, offset, limit)
	}
	return nil, 0, m.Err
}

func (m *MockSessionService) RecordWordReview(ctx context.Context, sessionID, wordID int64, correct bool) (*domain.StudyRecord, error) {
	if m.RecordWordReviewFn != nil {
		return m.RecordWordReviewFn(ctx, sessionID, wordID, correct)
	}
	return nil, m.Err
}

func (m *MockSessionService) RecordWordStat(ctx context.Context, wordID int64, correct bool) error {
	if m.RecordWordStatFn != nil {
		return m.RecordWordStatFn(ctx, wordID, correct)
	}
	return m.Err
}

func (m *MockSessionService) AppendReviewRecord(ctx context.Context, sessionID, wordID int64, correct bool) (*domain.StudyRecord, error) {
	if m.AppendReviewRecordFn != nil {
		return m.AppendReviewRecordFn(ctx, sessionID, wordID, correct)
	}
	return nil, m.Err
}

func (m *MockSessionService) SubmitSessionScore(ctx context.Context, groupID, activityID int64, score, total int) (*domain.StudySession, error) {
	if m.SubmitSessionScoreFn != nil {
		return m.SubmitSessionScoreFn(ctx, groupID, activityID, score, total)
	}
	return nil, m.Err
}

func (m *MockSessionService) CompleteSession(ctx context.Context, sessionID int64, score, total int) (*domain.StudySession, error) {
	if m.CompleteSessionFn != nil {
		return m.CompleteSessionFn(ctx, sessionID, score, total)
	}
	return nil, m.Err
}

func (m *MockSessionService) ResetHistory(ctx context.Context) error {
	if m.ResetHistoryFn != nil {
		return m.ResetHistoryFn(ctx)
	}
	return m.Err
}

func (m *MockSessionService) FullReset(ctx context.Context) error {
	if m.FullResetFn != nil {
		return m.FullResetFn(ctx)
	}
	return m.Err
}

// MockVocabService implements vocab.Service for testing.
type MockVocabService struct {
	ListWordsFn      func(ctx context.Context, offset, limit int) ([]*domain.Word, int, error)
	GetWordFn        func(ctx context.Context, id int64) (*domain.Word, error)
	ListGroupsFn     func(ctx context.Context, offset, limit int) ([]*domain.Group, int, error)
	GetGroupFn       func(ctx context.Context, id int64) (*domain.Group, error)
	GroupWordsFn     func(ctx context.Context, groupID int64) ([]*domain.Word, error)
	ListActivitiesFn func(ctx context.Context) ([]*domain.StudyActivity, error)
	GetActivityFn    func(ctx context.Context, id int64) (*domain.StudyActivity, error)

	Err error
}

var _ vocab.Service = (*MockVocabService)(nil)

func (m *MockVocabService) ListWords(ctx context.Context, offset, limit int) ([]*domain.Word, int, error) {
	if m.ListWordsFn != nil {
		return m.ListWordsFn(ctx, offset, limit)
	}
	return nil, 0, m.Err
}

func (m *MockVocabService) GetWord(ctx context.Context, id int64) (*domain.Word, error) {
	if m.GetWordFn != nil {
		return m.GetWordFn(ctx, id)
	}
	return nil, m.Err
}

func (m *MockVocabService) ListGroups(ctx context.Context, offset, limit int) ([]*domain.Group, int, error) {
	if m.ListGroupsFn != nil {
		return m.ListGroupsFn(ctx, offset, limit)
	}
	return nil, 0, m.Err
}

func (m *MockVocabService) GetGroup(ctx context.Context, id int64) (*domain.Group, error) {
	if m.GetGroupFn != nil {
		return m.GetGroupFn(ctx, id)
	}
	return nil, m.Err
}

func (m *MockVocabService) GroupWords(ctx context.Context, groupID int64) ([]*domain.Word, error) {
	if m.GroupWordsFn != nil {
		return m.GroupWordsFn(ctx, groupID)
	}
	return nil, m.Err
}

func (m *MockVocabService) ListActivities(ctx context.Context) ([]*domain.StudyActivity, error) {
	if m.ListActivitiesFn != nil {
		return m.ListActivitiesFn(ctx)
	}
	return nil, m.Err
}

func (m *MockVocabService) GetActivity(ctx context.Context, id int64) (*domain.StudyActivity, error) {
	if m.GetActivityFn != nil {
		return m.GetActivityFn(ctx, id)
	}
	return nil, m.Err
}

// MockDashboardService implements dashboard.Service for testing.
type MockDashboardService struct {
	StudyProgressFn    func(ctx context.Context) (mastery.Progress, error)
	QuickStatsFn       func(ctx context.Context) (mastery.QuickStats, error)
	LastStudySessionFn func(ctx context.Context) (*dashboard.LastSession, error)

	Err error
}

var _ dashboard.Service = (*MockDashboardService)(nil)

func (m *MockDashboardService) StudyProgress(ctx context.Context) (mastery.Progress, error) {
	if m.StudyProgressFn != nil {
		return m.StudyProgressFn(ctx)
	}
	return mastery.Progress{}, m.Err
}

func (m *MockDashboardService) QuickStats(ctx context.Context) (mastery.QuickStats, error) {
	if m.QuickStatsFn != nil {
		return m.QuickStatsFn(ctx)
	}
	return mastery.QuickStats{}, m.Err
}

func (m *MockDashboardService) LastStudySession(ctx context.Context) (*dashboard.LastSession, error) {
	if m.LastStudySessionFn != nil {
		return m.LastStudySessionFn(ctx)
	}
	return nil, m.Err
}
