package realtime_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"realtime-checklist/internal/checklist"
	"realtime-checklist/internal/checklist/feed"
	"realtime-checklist/internal/checklist/realtime"
	"realtime-checklist/internal/checklist/repository"
	"realtime-checklist/internal/checklist/repository/sqlite"
	"realtime-checklist/internal/checklist/usecase"
	"realtime-checklist/internal/model"
	"realtime-checklist/pkg/log"
)

type staticActor string

func (a staticActor) CurrentActor(ctx context.Context) (string, error) { return string(a), nil }

var errBackend = errors.New("backend unavailable")

// fakeRepo is an in-memory store whose change feed is driven by the test.
type fakeRepo struct {
	mu        sync.Mutex
	checklist model.Checklist
	items     []model.ChecklistItem
	getErr    error
	getCalls  int
	onGet     func(call int) // runs outside the lock, may block
	failIDs   map[string]bool
	subErr    error

	events chan model.ChangeEvent
	closed chan struct{}
	once   sync.Once
}

func newFakeRepo(items ...model.ChecklistItem) *fakeRepo {
	done := 0
	for _, it := range items {
		if it.IsCompleted {
			done++
		}
	}
	return &fakeRepo{
		checklist: model.Checklist{
			ID:             "c1",
			Title:          "Audit",
			TotalItems:     len(items),
			CompletedItems: done,
		},
		items:   items,
		failIDs: map[string]bool{},
		events:  make(chan model.ChangeEvent, 64),
		closed:  make(chan struct{}),
	}
}

func (r *fakeRepo) GetChecklist(ctx context.Context, id string) (model.Checklist, error) {
	r.mu.Lock()
	r.getCalls++
	call, hook := r.getCalls, r.onGet
	r.mu.Unlock()

	if hook != nil {
		hook(call)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getErr != nil {
		return model.Checklist{}, r.getErr
	}
	if id != r.checklist.ID {
		return model.Checklist{}, nil
	}
	return r.checklist.Clone(), nil
}

func (r *fakeRepo) ListItems(ctx context.Context, checklistID string) ([]model.ChecklistItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.ChecklistItem, len(r.items))
	for i, it := range r.items {
		out[i] = it.Clone()
	}
	return out, nil
}

func (r *fakeRepo) ListChecklists(ctx context.Context, opt repository.ListChecklistsOptions) ([]model.Checklist, error) {
	return nil, nil
}

func (r *fakeRepo) UpdateItem(ctx context.Context, opt repository.UpdateItemOptions) (model.ChecklistItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failIDs[opt.ID] {
		return model.ChecklistItem{}, errBackend
	}
	for i, it := range r.items {
		if it.ID == opt.ID {
			r.items[i] = opt.Patch.Apply(it)
			return r.items[i], nil
		}
	}
	return model.ChecklistItem{}, nil
}

func (r *fakeRepo) CreateChecklistWithItems(ctx context.Context, opt repository.CreateChecklistOptions) (string, error) {
	return "", errBackend
}

func (r *fakeRepo) Subscribe(ctx context.Context, checklistID string) (repository.Subscription, error) {
	if r.subErr != nil {
		return nil, r.subErr
	}
	return r, nil
}

func (r *fakeRepo) Events() <-chan model.ChangeEvent { return r.events }

func (r *fakeRepo) Close() error {
	r.once.Do(func() { close(r.closed) })
	return nil
}

func (r *fakeRepo) setChecklist(fn func(c *model.Checklist)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(&r.checklist)
}

func (r *fakeRepo) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getCalls
}

func mountFake(t *testing.T, repo *fakeRepo, debounce time.Duration) *realtime.Session {
	t.Helper()
	uc := usecase.New(log.NewNop(), repo, staticActor("user-1"))
	s, err := realtime.Mount(context.Background(), log.NewNop(), repo, uc, "c1", realtime.Options{ReloadDebounce: debounce})
	require.NoError(t, err)
	return s
}

// failingUpdates fails item updates for the listed ids and delegates everything else.
type failingUpdates struct {
	repository.Repository
	failIDs map[string]bool
}

func (r failingUpdates) UpdateItem(ctx context.Context, opt repository.UpdateItemOptions) (model.ChecklistItem, error) {
	if r.failIDs[opt.ID] {
		return model.ChecklistItem{}, errBackend
	}
	return r.Repository.UpdateItem(ctx, opt)
}

// sqliteEnv is a session wired to a real store.
type sqliteEnv struct {
	repo repository.Repository
	uc   checklist.UseCase
	id   string
}

func newSQLiteEnv(t *testing.T) sqliteEnv {
	t.Helper()
	return newSQLiteEnvAt(t, sqlite.MemoryPath, nil)
}

// newSQLiteEnvAt opens the store at path. Updates of the ids in failIDs fail.
func newSQLiteEnvAt(t *testing.T, path string, failIDs map[string]bool) sqliteEnv {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	hub := feed.New(log.NewNop(), 64)
	t.Cleanup(hub.Close)

	var repo repository.Repository = sqlite.New(log.NewNop(), db, hub)
	if failIDs != nil {
		repo = failingUpdates{Repository: repo, failIDs: failIDs}
	}
	uc := usecase.New(log.NewNop(), repo, staticActor("user-1"))
	out, err := uc.Create(ctx, checklist.CreateInput{})
	require.NoError(t, err)

	return sqliteEnv{repo: repo, uc: uc, id: out.ID}
}

func (e sqliteEnv) mount(t *testing.T) *realtime.Session {
	t.Helper()
	s, err := realtime.Mount(context.Background(), log.NewNop(), e.repo, e.uc, e.id, realtime.Options{ReloadDebounce: 20 * time.Millisecond})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func waitFor(t *testing.T, s *realtime.Session, cond func(realtime.State) bool, msg string) realtime.State {
	t.Helper()
	var last realtime.State
	require.Eventually(t, func() bool {
		last = s.State()
		return cond(last)
	}, 3*time.Second, 5*time.Millisecond, msg)
	return last
}

func itemByID(st realtime.State, id string) (model.ChecklistItem, bool) {
	if st.Checklist == nil {
		return model.ChecklistItem{}, false
	}
	for _, it := range st.Checklist.Items {
		if it.ID == id {
			return it, true
		}
	}
	return model.ChecklistItem{}, false
}

func ptr[T any](v T) *T { return &v }
