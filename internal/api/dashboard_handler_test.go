package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farabi1038/lang-portal/internal/domain/mastery"
	"github.com/farabi1038/lang-portal/internal/mocks"
	"github.com/farabi1038/lang-portal/internal/service/dashboard"
)

func TestStudyProgress(t *testing.T) {
	t.Parallel()

	t.Run("returns progress numbers", func(t *testing.T) {
		t.Parallel()

		dash := &mocks.MockDashboardService{
			StudyProgressFn: func(ctx context.Context) (mastery.Progress, error) {
				return mastery.Progress{
					TotalWords:     120,
					WordsStudied:   45,
					WordsMastered:  12,
					CompletionRate: 37,
				}, nil
			},
		}
		router := newTestRouter(nil, nil, dash)

		rec := doRequest(t, router, http.MethodGet, "/api/dashboard/study_progress", "")

		require.Equal(t, http.StatusOK, rec.Code)

		var resp mastery.Progress
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 120, resp.TotalWords)
		assert.Equal(t, 45, resp.WordsStudied)
		assert.Equal(t, 12, resp.WordsMastered)
		assert.Equal(t, 37, resp.CompletionRate)
	})

	t.Run("store failure maps to 500", func(t *testing.T) {
		t.Parallel()

		dash := &mocks.MockDashboardService{
			StudyProgressFn: func(ctx context.Context) (mastery.Progress, error) {
				return mastery.Progress{}, errors.New("connection refused")
			},
		}
		router := newTestRouter(nil, nil, dash)

		rec := doRequest(t, router, http.MethodGet, "/api/dashboard/study_progress", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})
}

func TestQuickStats(t *testing.T) {
	t.Parallel()

	dash := &mocks.MockDashboardService{
		QuickStatsFn: func(ctx context.Context) (mastery.QuickStats, error) {
			return mastery.QuickStats{
				TotalGroups:   3,
				TotalWords:    19,
				TotalSessions: 5,
				AverageScore:  80,
			}, nil
		},
	}
	router := newTestRouter(nil, nil, dash)

	rec := doRequest(t, router, http.MethodGet, "/api/dashboard/quick_stats", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp mastery.QuickStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.TotalSessions)
	assert.Equal(t, 80, resp.AverageScore)
}

func TestLastStudySession(t *testing.T) {
	t.Parallel()

	t.Run("returns enriched snapshot", func(t *testing.T) {
		t.Parallel()

		completed := time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)
		dash := &mocks.MockDashboardService{
			LastStudySessionFn: func(ctx context.Context) (*dashboard.LastSession, error) {
				return &dashboard.LastSession{
					SessionID:     9,
					GroupID:       3,
					GroupName:     "Basic Greetings",
					ActivityID:    1,
					ActivityName:  "Flashcards",
					Score:         8,
					Total:         10,
					WordsReviewed: 10,
					CompletedAt:   &completed,
				}, nil
			},
		}
		router := newTestRouter(nil, nil, dash)

		rec := doRequest(t, router, http.MethodGet, "/api/dashboard/last_study_session", "")

		require.Equal(t, http.StatusOK, rec.Code)

		var resp dashboard.LastSession
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(9), resp.SessionID)
		assert.Equal(t, "Basic Greetings", resp.GroupName)
		assert.Equal(t, 10, resp.WordsReviewed)
		require.NotNil(t, resp.CompletedAt)
	})

	t.Run("empty history responds 200 with null", func(t *testing.T) {
		t.Parallel()

		dash := &mocks.MockDashboardService{
			LastStudySessionFn: func(ctx context.Context) (*dashboard.LastSession, error) {
				return nil, dashboard.ErrNoSessions
			},
		}
		router := newTestRouter(nil, nil, dash)

		rec := doRequest(t, router, http.MethodGet, "/api/dashboard/last_study_session", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "null\n", rec.Body.String())
	})
}
