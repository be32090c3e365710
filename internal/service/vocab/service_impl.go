package vocab

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/farabi1038/lang-portal/internal/domain"
	"github.com/farabi1038/lang-portal/internal/store"
)

// Verify interface compliance at compile time
var _ Service = (*serviceImpl)(nil)

type serviceImpl struct {
	wordStore     store.WordStore
	groupStore    store.GroupStore
	activityStore store.StudyActivityStore
	logger        *slog.Logger
}

// NewService creates a vocab Service over the given stores.
func NewService(
	wordStore store.WordStore,
	groupStore store.GroupStore,
	activityStore store.StudyActivityStore,
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

	if logger == nil {
		logger = slog.Default()
	}

	return &serviceImpl{
		wordStore:     wordStore,
		groupStore:    groupStore,
		activityStore: activityStore,
		logger:        logger.With(slog.String("component", "vocab_service")),
	}
}

func (s *serviceImpl) ListWords(ctx context.Context, offset, limit int) ([]*domain.Word, int, error) {
	words, err := s.wordStore.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list words: %w", err)
	}
	total, err := s.wordStore.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count words: %w", err)
	}
	return words, total, nil
}

func (s *serviceImpl) GetWord(ctx context.Context, id int64) (*domain.Word, error) {
	word, err := s.wordStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrWordNotFound) {
			return nil, ErrWordNotFound
		}
		return nil, fmt.Errorf("failed to load word: %w", err)
	}
	return word, nil
}

func (s *serviceImpl) ListGroups(ctx context.Context, offset, limit int) ([]*domain.Group, int, error) {
	groups, err := s.groupStore.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list groups: %w", err)
	}
	total, err := s.groupStore.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count groups: %w", err)
	}
	return groups, total, nil
}

func (s *serviceImpl) GetGroup(ctx context.Context, id int64) (*domain.Group, error) {
	group, err := s.groupStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrGroupNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to load group: %w", err)
	}
	return group, nil
}

func (s *serviceImpl) GroupWords(ctx context.Context, groupID int64) ([]*domain.Word, error) {
	if _, err := s.groupStore.GetByID(ctx, groupID); err != nil {
		if errors.Is(err, store.ErrGroupNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to load group: %w", err)
	}

	words, err := s.wordStore.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list group words: %w", err)
	}
	return words, nil
}

func (s *serviceImpl) ListActivities(ctx context.Context) ([]*domain.StudyActivity, error) {
	activities, err := s.activityStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return activities, nil
}

func (s *serviceImpl) GetActivity(ctx context.Context, id int64) (*domain.StudyActivity, error) {
	activity, err := s.activityStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrActivityNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, fmt.Errorf("failed to load activity: %w", err)
	}
	return activity, nil
}
