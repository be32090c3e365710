package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/farabi1038/lang-portal/internal/activity"
	"github.com/farabi1038/lang-portal/internal/domain"
	"github.com/farabi1038/lang-portal/internal/service/study"
	"github.com/farabi1038/lang-portal/internal/service/vocab"
	"github.com/farabi1038/lang-portal/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: http.StatusOK},
		{name: "session not found", err: study.ErrSessionNotFound, want: http.StatusNotFound},
		{name: "group not found", err: study.ErrGroupNotFound, want: http.StatusNotFound},
		{name: "word not found via vocab", err: vocab.ErrWordNotFound, want: http.StatusNotFound},
		{name: "store not found", err: store.ErrNotFound, want: http.StatusNotFound},
		{name: "session completed", err: study.ErrSessionCompleted, want: http.StatusConflict},
		{name: "duplicate group name", err: store.ErrGroupNameExists, want: http.StatusConflict},
		{name: "invalid score", err: study.ErrInvalidScore, want: http.StatusBadRequest},
		{name: "invalid ID", err: domain.ErrInvalidID, want: http.StatusBadRequest},
		{name: "insufficient words", err: activity.ErrInsufficientData, want: http.StatusBadRequest},
		{name: "wrapped sentinel keeps mapping", err: fmt.Errorf("complete: %w", study.ErrSessionCompleted), want: http.StatusConflict},
		{name: "unknown error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "session completed", err: study.ErrSessionCompleted, want: "Study session already completed"},
		{name: "word not found", err: study.ErrWordNotFound, want: "Word not found"},
		{name: "invalid score", err: study.ErrInvalidScore, want: "Score must be between 0 and total"},
		{name: "insufficient words", err: activity.ErrInsufficientData, want: "Not enough words for this activity"},
		{name: "internal detail hidden", err: errors.New("pq: connection refused host=10.0.0.5"), want: "An unexpected error occurred"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestGetSafeErrorMessageNeverEchoesRawError(t *testing.T) {
	t.Parallel()

	raw := errors.New("password=hunter2 dsn=postgres://u:p@h/db")

	msg := GetSafeErrorMessage(fmt.Errorf("query failed: %w", raw))

	assert.NotContains(t, msg, "hunter2")
	assert.NotContains(t, msg, "postgres://")
}
