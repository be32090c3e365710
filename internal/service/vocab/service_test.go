package vocab_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farabi1038/lang-portal/internal/domain"
	"github.com/farabi1038/lang-portal/internal/mocks"
	"github.com/farabi1038/lang-portal/internal/service/vocab"
	"github.com/farabi1038/lang-portal/internal/store"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestListWords(t *testing.T) {
	t.Parallel()

	wordStore := &mocks.MockWordStore{
		ListFn: func(_ context.Context, offset, limit int) ([]*domain.Word, error) {
			assert.Equal(t, 20, offset)
			assert.Equal(t, 20, limit)
			return []*domain.Word{{ID: 21, Japanese: "水", Romaji: "mizu", English: "water"}}, nil
		},
		CountFn: func(context.Context) (int, error) { return 45, nil },
	}

	svc := vocab.NewService(wordStore, &mocks.MockGroupStore{}, &mocks.MockStudyActivityStore{}, testLogger())

	words, total, err := svc.ListWords(context.Background(), 20, 20)
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, int64(21), words[0].ID)
	assert.Equal(t, 45, total)
}

func TestGetWordNotFound(t *testing.T) {
	t.Parallel()

	wordStore := &mocks.MockWordStore{
		GetByIDFn: func(context.Context, int64) (*domain.Word, error) {
			return nil, store.ErrWordNotFound
		},
	}
	svc := vocab.NewService(wordStore, &mocks.MockGroupStore{}, &mocks.MockStudyActivityStore{}, testLogger())

	_, err := svc.GetWord(context.Background(), 99)
	assert.ErrorIs(t, err, vocab.ErrWordNotFound)
}

func TestGroupWords(t *testing.T) {
	t.Parallel()

	t.Run("returns the group's words", func(t *testing.T) {
		t.Parallel()

		groupStore := &mocks.MockGroupStore{
			GetByIDFn: func(_ context.Context, id int64) (*domain.Group, error) {
				return &domain.Group{ID: id, Name: "Food"}, nil
			},
		}
		wordStore := &mocks.MockWordStore{
			ListByGroupFn: func(_ context.Context, groupID int64) ([]*domain.Word, error) {
				assert.Equal(t, int64(3), groupID)
				return []*domain.Word{{ID: 5}, {ID: 6}}, nil
			},
		}

		svc := vocab.NewService(wordStore, groupStore, &mocks.MockStudyActivityStore{}, testLogger())

		words, err := svc.GroupWords(context.Background(), 3)
		require.NoError(t, err)
		assert.Len(t, words, 2)
	})

	t.Run("unknown group", func(t *testing.T) {
		t.Parallel()

		groupStore := &mocks.MockGroupStore{
			GetByIDFn: func(context.Context, int64) (*domain.Group, error) {
				return nil, store.ErrGroupNotFound
			},
		}
		svc := vocab.NewService(&mocks.MockWordStore{}, groupStore, &mocks.MockStudyActivityStore{}, testLogger())

		_, err := svc.GroupWords(context.Background(), 99)
		assert.ErrorIs(t, err, vocab.ErrGroupNotFound)
	})
}

func TestGetActivity(t *testing.T) {
	t.Parallel()

	activityStore := &mocks.MockStudyActivityStore{
		GetByIDFn: func(_ context.Context, id int64) (*domain.StudyActivity, error) {
			if id != 1 {
				return nil, store.ErrActivityNotFound
			}
			return &domain.StudyActivity{ID: 1, Name: "Flashcards"}, nil
		},
	}
	svc := vocab.NewService(&mocks.MockWordStore{}, &mocks.MockGroupStore{}, activityStore, testLogger())

	activity, err := svc.GetActivity(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Flashcards", activity.Name)

	_, err = svc.GetActivity(context.Background(), 9)
	assert.ErrorIs(t, err, vocab.ErrActivityNotFound)
}
