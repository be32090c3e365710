package study

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/farabi1038/lang-portal/internal/domain"
	"github.com/farabi1038/lang-portal/internal/store"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// In-memory store fakes. WithTx returns the fake itself; the test
// transaction runner passes a nil *sql.Tx straight through.

func passthroughTx(ctx context.Context, _ *sql.DB, fn store.TxFn) error {
	return fn(ctx, nil)
}

type fakeWordStore struct {
	words  map[int64]*domain.Word
	nextID int64
}

func newFakeWordStore() *fakeWordStore {
	return &fakeWordStore{words: make(map[int64]*domain.Word)}
}

func (f *fakeWordStore) Create(_ context.Context, word *domain.Word) error {
	if err := word.Validate(); err != nil {
		return store.ErrInvalidEntity
	}
	if word.ID != 0 {
		if word.ID > f.nextID {
			f.nextID = word.ID
		}
	} else {
		f.nextID++
		word.ID = f.nextID
	}
	copied := *word
	f.words[word.ID] = &copied
	return nil
}

func (f *fakeWordStore) GetByID(_ context.Context, id int64) (*domain.Word, error) {
	word, ok := f.words[id]
	if !ok {
		return nil, store.ErrWordNotFound
	}
	copied := *word
	return &copied, nil
}

func (f *fakeWordStore) List(_ context.Context, offset, limit int) ([]*domain.Word, error) {
	ids := f.sortedIDs()
	out := make([]*domain.Word, 0, limit)
	for i := offset; i < len(ids) && len(out) < limit; i++ {
		copied := *f.words[ids[i]]
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeWordStore) ListByGroup(_ context.Context, groupID int64) ([]*domain.Word, error) {
	return nil, nil
}

func (f *fakeWordStore) Count(_ context.Context) (int, error) {
	return len(f.words), nil
}

func (f *fakeWordStore) IncrementReviewCount(_ context.Context, id int64, correct bool) error {
	word, ok := f.words[id]
	if !ok {
		return store.ErrWordNotFound
	}
	if correct {
		word.CorrectCount++
	} else {
		word.WrongCount++
	}
	return nil
}

func (f *fakeWordStore) ResetReviewCounts(_ context.Context) error {
	for _, word := range f.words {
		word.CorrectCount = 0
		word.WrongCount = 0
	}
	return nil
}

func (f *fakeWordStore) DeleteAll(_ context.Context) error {
	f.words = make(map[int64]*domain.Word)
	return nil
}

func (f *fakeWordStore) WithTx(*sql.Tx) store.WordStore { return f }

func (f *fakeWordStore) sortedIDs() []int64 {
	ids := make([]int64, 0, len(f.words))
	for id := range f.words {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

type fakeGroupStore struct {
	groups  map[int64]*domain.Group
	members map[int64]map[int64]bool
	nextID  int64
}

func newFakeGroupStore() *fakeGroupStore {
	return &fakeGroupStore{
		groups:  make(map[int64]*domain.Group),
		members: make(map[int64]map[int64]bool),
	}
}

func (f *fakeGroupStore) Create(_ context.Context, group *domain.Group) error {
	for _, existing := range f.groups {
		if existing.Name == group.Name {
			return store.ErrGroupNameExists
		}
	}
	if group.ID != 0 {
		if group.ID > f.nextID {
			f.nextID = group.ID
		}
	} else {
		f.nextID++
		group.ID = f.nextID
	}
	copied := *group
	f.groups[group.ID] = &copied
	return nil
}

func (f *fakeGroupStore) GetByID(_ context.Context, id int64) (*domain.Group, error) {
	group, ok := f.groups[id]
	if !ok {
		return nil, store.ErrGroupNotFound
	}
	copied := *group
	copied.WordCount = len(f.members[id])
	return &copied, nil
}

func (f *fakeGroupStore) List(_ context.Context, offset, limit int) ([]*domain.Group, error) {
	return nil, nil
}

func (f *fakeGroupStore) Count(_ context.Context) (int, error) {
	return len(f.groups), nil
}

func (f *fakeGroupStore) AddWord(_ context.Context, groupID, wordID int64) error {
	if _, ok := f.groups[groupID]; !ok {
		return store.ErrGroupNotFound
	}
	if f.members[groupID] == nil {
		f.members[groupID] = make(map[int64]bool)
	}
	f.members[groupID][wordID] = true
	return nil
}

func (f *fakeGroupStore) DeleteAll(_ context.Context) error {
	f.groups = make(map[int64]*domain.Group)
	f.members = make(map[int64]map[int64]bool)
	return nil
}

func (f *fakeGroupStore) WithTx(*sql.Tx) store.GroupStore { return f }

type fakeActivityStore struct {
	activities map[int64]*domain.StudyActivity
}

func newFakeActivityStore() *fakeActivityStore {
	return &fakeActivityStore{activities: make(map[int64]*domain.StudyActivity)}
}

func (f *fakeActivityStore) Create(_ context.Context, activity *domain.StudyActivity) error {
	if _, ok := f.activities[activity.ID]; ok {
		return store.ErrDuplicate
	}
	copied := *activity
	f.activities[activity.ID] = &copied
	return nil
}

func (f *fakeActivityStore) GetByID(_ context.Context, id int64) (*domain.StudyActivity, error) {
	activity, ok := f.activities[id]
	if !ok {
		return nil, store.ErrActivityNotFound
	}
	copied := *activity
	return &copied, nil
}

func (f *fakeActivityStore) List(_ context.Context) ([]*domain.StudyActivity, error) {
	ids := make([]int64, 0, len(f.activities))
	for id := range f.activities {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]*domain.StudyActivity, 0, len(ids))
	for _, id := range ids {
		copied := *f.activities[id]
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeActivityStore) DeleteAll(_ context.Context) error {
	f.activities = make(map[int64]*domain.StudyActivity)
	return nil
}

func (f *fakeActivityStore) WithTx(*sql.Tx) store.StudyActivityStore { return f }

type fakeSessionStore struct {
	sessions map[int64]*domain.StudySession
	order    []int64
	nextID   int64
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[int64]*domain.StudySession)}
}

func (f *fakeSessionStore) Create(_ context.Context, session *domain.StudySession) error {
	f.nextID++
	session.ID = f.nextID
	copied := *session
	f.sessions[session.ID] = &copied
	f.order = append(f.order, session.ID)
	return nil
}

func (f *fakeSessionStore) GetByID(_ context.Context, id int64) (*domain.StudySession, error) {
	session, ok := f.sessions[id]
	if !ok {
		return nil, store.ErrSessionNotFound
	}
	copied := *session
	return &copied, nil
}

func (f *fakeSessionStore) GetForUpdate(ctx context.Context, id int64) (*domain.StudySession, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeSessionStore) Complete(_ context.Context, session *domain.StudySession) error {
	stored, ok := f.sessions[session.ID]
	if !ok {
		return store.ErrSessionNotFound
	}
	stored.Score = session.Score
	stored.Total = session.Total
	if session.CompletedAt != nil {
		at := *session.CompletedAt
		stored.CompletedAt = &at
	}
	return nil
}

func (f *fakeSessionStore) List(_ context.Context, offset, limit int) ([]*domain.StudySession, error) {
	out := make([]*domain.StudySession, 0, limit)
	for i := len(f.order) - 1 - offset; i >= 0 && len(out) < limit; i-- {
		copied := *f.sessions[f.order[i]]
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeSessionStore) GetLatest(_ context.Context) (*domain.StudySession, error) {
	if len(f.order) == 0 {
		return nil, store.ErrSessionNotFound
	}
	copied := *f.sessions[f.order[len(f.order)-1]]
	return &copied, nil
}

func (f *fakeSessionStore) ListScores(_ context.Context) ([]*domain.StudySession, error) {
	out := make([]*domain.StudySession, 0, len(f.order))
	for _, id := range f.order {
		copied := *f.sessions[id]
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeSessionStore) Count(_ context.Context) (int, error) {
	return len(f.sessions), nil
}

func (f *fakeSessionStore) DeleteAll(_ context.Context) error {
	f.sessions = make(map[int64]*domain.StudySession)
	f.order = nil
	return nil
}

func (f *fakeSessionStore) WithTx(*sql.Tx) store.SessionStore { return f }

type fakeRecordStore struct {
	records []*domain.StudyRecord
	nextID  int64

	// failNextCreate simulates a mid-transaction write failure.
	failNextCreate error
}

func newFakeRecordStore() *fakeRecordStore {
	return &fakeRecordStore{}
}

func (f *fakeRecordStore) Create(_ context.Context, record *domain.StudyRecord) error {
	if f.failNextCreate != nil {
		err := f.failNextCreate
		f.failNextCreate = nil
		return err
	}
	f.nextID++
	record.ID = f.nextID
	record.CreatedAt = time.Now().UTC()
	copied := *record
	f.records = append(f.records, &copied)
	return nil
}

func (f *fakeRecordStore) ListBySession(_ context.Context, sessionID int64) ([]*domain.StudyRecord, error) {
	out := make([]*domain.StudyRecord, 0)
	for _, record := range f.records {
		if record.StudySessionID == sessionID {
			copied := *record
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeRecordStore) CountBySession(_ context.Context, sessionID int64) (int, error) {
	count := 0
	for _, record := range f.records {
		if record.StudySessionID == sessionID {
			count++
		}
	}
	return count, nil
}

func (f *fakeRecordStore) DeleteAll(_ context.Context) error {
	f.records = nil
	return nil
}

func (f *fakeRecordStore) WithTx(*sql.Tx) store.StudyRecordStore { return f }

// Interface compliance for the fakes.
var (
	_ store.WordStore          = (*fakeWordStore)(nil)
	_ store.GroupStore         = (*fakeGroupStore)(nil)
	_ store.StudyActivityStore = (*fakeActivityStore)(nil)
	_ store.SessionStore       = (*fakeSessionStore)(nil)
	_ store.StudyRecordStore   = (*fakeRecordStore)(nil)
)
