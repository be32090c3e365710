package mocks

import (
	"context"
	"database/sql"

	"github.com/farabi1038/lang-portal/internal/domain"
	"github.com/farabi1038/lang-portal/internal/store"
)

// MockWordStore implements store.WordStore for testing. Each method calls
// its Fn field when set and otherwise returns the zero value and Err.
type MockWordStore struct {
	CreateFn               func(ctx context.Context, word *domain.Word) error
	GetByIDFn              func(ctx context.Context, id int64) (*domain.Word, error)
	ListFn                 func(ctx context.Context, offset, limit int) ([]*domain.Word, error)
	ListByGroupFn          func(ctx context.Context, groupID int64) ([]*domain.Word, error)
	CountFn                func(ctx context.Context) (int, error)
	IncrementReviewCountFn func(ctx context.Context, id int64, correct bool) error
	ResetReviewCountsFn    func(ctx context.Context) error
	DeleteAllFn            func(ctx context.Context) error

	Err error
}

var _ store.WordStore = (*MockWordStore)(nil)

func (m *MockWordStore) Create(ctx context.Context, word *domain.Word) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, word)
	}
	return m.Err
}

func (m *MockWordStore) GetByID(ctx context.Context, id int64) (*domain.Word, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, m.Err
}

func (m *MockWordStore) List(ctx context.Context, offset, limit int) ([]*domain.Word, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, offset, limit)
	}
	return nil, m.Err
}

func (m *MockWordStore) ListByGroup(ctx context.Context, groupID int64) ([]*domain.Word, error) {
	if m.ListByGroupFn != nil {
		return m.ListByGroupFn(ctx, groupID)
	}
	return nil, m.Err
}

func (m *MockWordStore) Count(ctx context.Context) (int, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, m.Err
}

func (m *MockWordStore) IncrementReviewCount(ctx context.Context, id int64, correct bool) error {
	if m.IncrementReviewCountFn != nil {
		return m.IncrementReviewCountFn(ctx, id, correct)
	}
	return m.Err
}

func (m *MockWordStore) ResetReviewCounts(ctx context.Context) error {
	if m.ResetReviewCountsFn != nil {
		return m.ResetReviewCountsFn(ctx)
	}
	return m.Err
}

func (m *MockWordStore) DeleteAll(ctx context.Context) error {
	if m.DeleteAllFn != nil {
		return m.DeleteAllFn(ctx)
	}
	return m.Err
}

func (m *MockWordStore) WithTx(*sql.Tx) store.WordStore { return m }

// MockGroupStore implements store.GroupStore for testing.
type MockGroupStore struct {
	CreateFn    func(ctx context.Context, group *domain.Group) error
	GetByIDFn   func(ctx context.Context, id int64) (*domain.Group, error)
	ListFn      func(ctx context.Context, offset, limit int) ([]*domain.Group, error)
	CountFn     func(ctx context.Context) (int, error)
	AddWordFn   func(ctx context.Context, groupID, wordID int64) error
	DeleteAllFn func(ctx context.Context) error

	Err error
}

var _ store.GroupStore = (*MockGroupStore)(nil)

func (m *MockGroupStore) Create(ctx context.Context, group *domain.Group) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, group)
	}
	return m.Err
}

func (m *MockGroupStore) GetByID(ctx context.Context, id int64) (*domain.Group, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, m.Err
}

func (m *MockGroupStore) List(ctx context.Context, offset, limit int) ([]*domain.Group, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, offset, limit)
	}
	return nil, m.Err
}

func (m *MockGroupStore) Count(ctx context.Context) (int, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, m.Err
}

func (m *MockGroupStore) AddWord(ctx context.Context, groupID, wordID int64) error {
	if m.AddWordFn != nil {
		return m.AddWordFn(ctx, groupID, wordID)
	}
	return m.Err
}

func (m *MockGroupStore) DeleteAll(ctx context.Context) error {
	if m.DeleteAllFn != nil {
		return m.DeleteAllFn(ctx)
	}
	return m.Err
}

func (m *MockGroupStore) WithTx(*sql.Tx) store.GroupStore { return m }

// MockStudyActivityStore implements store.StudyActivityStore for testing.
type MockStudyActivityStore struct {
	CreateFn    func(ctx context.Context, activity *domain.StudyActivity) error
	GetByIDFn   func(ctx context.Context, id int64) (*domain.StudyActivity, error)
	ListFn      func(ctx context.Context) ([]*domain.StudyActivity, error)
	DeleteAllFn func(ctx context.Context) error

	Err error
}

var _ store.StudyActivityStore = (*MockStudyActivityStore)(nil)

func (m *MockStudyActivityStore) Create(ctx context.Context, activity *domain.StudyActivity) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, activity)
	}
	return m.Err
}

func (m *MockStudyActivityStore) GetByID(ctx context.Context, id int64) (*domain.StudyActivity, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, m.Err
}

func (m *MockStudyActivityStore) List(ctx context.Context) ([]*domain.StudyActivity, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, m.Err
}

func (m *MockStudyActivityStore) DeleteAll(ctx context.Context) error {
	if m.DeleteAllFn != nil {
		return m.DeleteAllFn(ctx)
	}
	return m.Err
}

func (m *MockStudyActivityStore) WithTx(*sql.Tx) store.StudyActivityStore { return m }

// MockSessionStore implements store.SessionStore for testing.
type MockSessionStore struct {
	CreateFn       func(ctx context.Context, session *domain.StudySession) error
	GetByIDFn      func(ctx context.Context, id int64) (*domain.StudySession, error)
	GetForUpdateFn func(ctx context.Context, id int64) (*domain.StudySession, error)
	CompleteFn     func(ctx context.Context, session *domain.StudySession) error
	ListFn         func(ctx context.Context, offset, limit int) ([]*domain.StudySession, error)
	GetLatestFn    func(ctx context.Context) (*domain.StudySession, error)
	ListScoresFn   func(ctx context.Context) ([]*domain.StudySession, error)
	CountFn        func(ctx context.Context) (int, error)
	DeleteAllFn    func(ctx context.Context) error

	Err error
}

var _ store.SessionStore = (*MockSessionStore)(nil)

func (m *MockSessionStore) Create(ctx context.Context, session *domain.StudySession) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, session)
	}
	return m.Err
}

func (m *MockSessionStore) GetByID(ctx context.Context, id int64) (*domain.StudySession, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, m.Err
}

func (m *MockSessionStore) GetForUpdate(ctx context.Context, id int64) (*domain.StudySession, error) {
	if m.GetForUpdateFn != nil {
		return m.GetForUpdateFn(ctx, id)
	}
	return nil, m.Err
}

func (m *MockSessionStore) Complete(ctx context.Context, session *domain.StudySession) error {
	if m.CompleteFn != nil {
		return m.CompleteFn(ctx, session)
	}
	return m.Err
}

func (m *MockSessionStore) List(ctx context.Context, offset, limit int) ([]*domain.StudySession, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, offset, limit)
	}
	return nil, m.Err
}

func (m *MockSessionStore) GetLatest(ctx context.Context) (*domain.StudySession, error) {
	if m.GetLatestFn != nil {
		return m.GetLatestFn(ctx)
	}
	return nil, m.Err
}

func (m *MockSessionStore) ListScores(ctx context.Context) ([]*domain.StudySession, error) {
	if m.ListScoresFn != nil {
		return m.ListScoresFn(ctx)
	}
	return nil, m.Err
}

func (m *MockSessionStore) Count(ctx context.Context) (int, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, m.Err
}

func (m *MockSessionStore) DeleteAll(ctx context.Context) error {
	if m.DeleteAllFn != nil {
		return m.DeleteAllFn(ctx)
	}
	return m.Err
}

func (m *MockSessionStore) WithTx(*sql.Tx) store.SessionStore { return m }

// MockStudyRecordStore implements store.StudyRecordStore for testing.
type MockStudyRecordStore struct {
	CreateFn         func(ctx context.Context, record *domain.StudyRecord) error
	ListBySessionFn  func(ctx context.Context, sessionID int64) ([]*domain.StudyRecord, error)
	CountBySessionFn func(ctx context.Context, sessionID int64) (int, error)
	DeleteAllFn      func(ctx context.Context) error

	Err error
}

var _ store.StudyRecordStore = (*MockStudyRecordStore)(nil)

func (m *MockStudyRecordStore) Create(ctx context.Context, record *domain.StudyRecord) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, record)
	}
	return m.Err
}

func (m *MockStudyRecordStore) ListBySession(ctx context.Context, sessionID int64) ([]*domain.StudyRecord, error) {
	if m.ListBySessionFn != nil {
		return m.ListBySessionFn(ctx, sessionID)
	}
	return nil, m.Err
}

func (m *MockStudyRecordStore) CountBySession(ctx context.Context, sessionID int64) (int, error) {
	if m.CountBySessionFn != nil {
		return m.CountBySessionFn(ctx, sessionID)
	}
	return 0, m.Err
}

func (m *MockStudyRecordStore) DeleteAll(ctx context.Context) error {
	if m.DeleteAllFn != nil {
		return m.DeleteAllFn(ctx)
	}
	return m.Err
}

func (m *MockStudyRecordStore) WithTx(*sql.Tx) store.StudyRecordStore { return m }
