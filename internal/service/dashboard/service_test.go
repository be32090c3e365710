package dashboard_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farabi1038/lang-portal/internal/domain"
	"github.com/farabi1038/lang-portal/internal/mocks"
	"github.com/farabi1038/lang-portal/internal/service/dashboard"
	"github.com/farabi1038/lang-portal/internal/store"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testWord(id int64, correct, wrong int) *domain.Word {
	return &domain.Word{
		ID:           id,
		Japanese:     "語",
		Romaji:       "go",
		English:      "word",
		CorrectCount: correct,
		WrongCount:   wrong,
	}
}

func TestStudyProgress(t *testing.T) {
	t.Parallel()

	t.Run("counts studied and mastered words", func(t *testing.T) {
		t.Parallel()

		words := []*domain.Word{
			testWord(1, 3, 0), // mastered
			testWord(2, 1, 1), // studied, too few exposures to master
			testWord(3, 0, 0), // untouched
			testWord(4, 0, 0),
		}
		wordStore := &mocks.MockWordStore{
			CountFn: func(context.Context) (int, error) { return len(words), nil },
			ListFn: func(_ context.Context, offset, limit int) ([]*domain.Word, error) {
				return words, nil
			},
		}

		svc := dashboard.NewService(wordStore, &mocks.MockGroupStore{}, &mocks.MockStudyActivityStore{},
			&mocks.MockSessionStore{}, &mocks.MockStudyRecordStore{}, nil, testLogger())

		progress, err := svc.StudyProgress(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 4, progress.TotalWords)
		assert.Equal(t, 2, progress.WordsStudied)
		assert.Equal(t, 1, progress.WordsMastered)
		assert.Equal(t, 50, progress.CompletionRate)
	})

	t.Run("empty vocabulary", func(t *testing.T) {
		t.Parallel()

		wordStore := &mocks.MockWordStore{
			CountFn: func(context.Context) (int, error) { return 0, nil },
		}
		svc := dashboard.NewService(wordStore, &mocks.MockGroupStore{}, &mocks.MockStudyActivityStore{},
			&mocks.MockSessionStore{}, &mocks.MockStudyRecordStore{}, nil, testLogger())

		progress, err := svc.StudyProgress(context.Background())
		require.NoError(t, err)
		assert.Zero(t, progress.TotalWords)
		assert.Zero(t, progress.CompletionRate)
	})
}

func TestQuickStats(t *testing.T) {
	t.Parallel()

	sessionStore := &mocks.MockSessionStore{
		ListScoresFn: func(context.Context) ([]*domain.StudySession, error) {
			return []*domain.StudySession{
				{ID: 1, Score: 8, Total: 10},
				{ID: 2, Score: 6, Total: 10},
				{ID: 3, Score: 0, Total: 0}, // abandoned, excluded from the average
			}, nil
		},
		CountFn: func(context.Context) (int, error) { return 3, nil },
	}
	wordStore := &mocks.MockWordStore{
		CountFn: func(context.Context) (int, error) { return 19, nil },
	}
	groupStore := &mocks.MockGroupStore{
		CountFn: func(context.Context) (int, error) { return 3, nil },
	}

	svc := dashboard.NewService(wordStore, groupStore, &mocks.MockStudyActivityStore{},
		sessionStore, &mocks.MockStudyRecordStore{}, nil, testLogger())

	stats, err := svc.QuickStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalGroups)
	assert.Equal(t, 19, stats.TotalWords)
	assert.Equal(t, 3, stats.TotalSessions)
	assert.Equal(t, 70, stats.AverageScore)
}

func TestLastStudySession(t *testing.T) {
	t.Parallel()

	t.Run("enriches the latest session", func(t *testing.T) {
		t.Parallel()

		completedAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		sessionStore := &mocks.MockSessionStore{
			GetLatestFn: func(context.Context) (*domain.StudySession, error) {
				return &domain.StudySession{
					ID:              7,
					GroupID:         2,
					StudyActivityID: 1,
					Score:           5,
					Total:           6,
					CompletedAt:     &completedAt,
				}, nil
			},
		}
		groupStore := &mocks.MockGroupStore{
			GetByIDFn: func(_ context.Context, id int64) (*domain.Group, error) {
				return &domain.Group{ID: id, Name: "Numbers"}, nil
			},
		}
		activityStore := &mocks.MockStudyActivityStore{
			GetByIDFn: func(_ context.Context, id int64) (*domain.StudyActivity, error) {
				return &domain.StudyActivity{ID: id, Name: "Flashcards"}, nil
			},
		}
		recordStore := &mocks.MockStudyRecordStore{
			CountBySessionFn: func(_ context.Context, sessionID int64) (int, error) {
				assert.Equal(t, int64(7), sessionID)
				return 6, nil
			},
		}

		svc := dashboard.NewService(&mocks.MockWordStore{}, groupStore, activityStore,
			sessionStore, recordStore, nil, testLogger())

		last, err := svc.LastStudySession(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(7), last.SessionID)
		assert.Equal(t, "Numbers", last.GroupName)
		assert.Equal(t, "Flashcards", last.ActivityName)
		assert.Equal(t, 6, last.WordsReviewed)
		require.NotNil(t, last.CompletedAt)
		assert.True(t, completedAt.Equal(*last.CompletedAt))
	})

	t.Run("empty history", func(t *testing.T) {
		t.Parallel()

		sessionStore := &mocks.MockSessionStore{
			GetLatestFn: func(context.Context) (*domain.StudySession, error) {
				return nil, store.ErrSessionNotFound
			},
		}
		svc := dashboard.NewService(&mocks.MockWordStore{}, &mocks.MockGroupStore{}, &mocks.MockStudyActivityStore{},
			sessionStore, &mocks.MockStudyRecordStore{}, nil, testLogger())

		_, err := svc.LastStudySession(context.Background())
		assert.ErrorIs(t, err, dashboard.ErrNoSessions)
	})

	t.Run("missing group name degrades gracefully", func(t *testing.T) {
		t.Parallel()

		sessionStore := &mocks.MockSessionStore{
			GetLatestFn: func(context.Context) (*domain.StudySession, error) {
				return &domain.StudySession{ID: 1, GroupID: 9, StudyActivityID: 1}, nil
			},
		}
		groupStore := &mocks.MockGroupStore{
			GetByIDFn: func(context.Context, int64) (*domain.Group, error) {
				return nil, store.ErrGroupNotFound
			},
		}
		activityStore := &mocks.MockStudyActivityStore{
			GetByIDFn: func(_ context.Context, id int64) (*domain.StudyActivity, error) {
				return &domain.StudyActivity{ID: id, Name: "Flashcards"}, nil
			},
		}

		svc := dashboard.NewService(&mocks.MockWordStore{}, groupStore, activityStore,
			sessionStore, &mocks.MockStudyRecordStore{}, nil, testLogger())

		last, err := svc.LastStudySession(context.Background())
		require.NoError(t, err)
		assert.Empty(t, last.GroupName)
		assert.Equal(t, "Flashcards", last.ActivityName)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		t.Parallel()

		sessionStore := &mocks.MockSessionStore{
			GetLatestFn: func(context.Context) (*domain.StudySession, error) {
				return nil, errors.New("connection refused")
			},
		}
		svc := dashboard.NewService(&mocks.MockWordStore{}, &mocks.MockGroupStore{}, &mocks.MockStudyActivityStore{},
			sessionStore, &mocks.MockStudyRecordStore{}, nil, testLogger())

		_, err := svc.LastStudySession(context.Background())
		require.Error(t, err)
		assert.NotErrorIs(t, err, dashboard.ErrNoSessions)
	})
}
