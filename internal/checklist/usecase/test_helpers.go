package usecase

import (
	"context"
	"errors"
	"sync"

	"realtime-checklist/internal/checklist/repository"
	"realtime-checklist/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock actor resolver returning a fixed actor
type staticActor struct {
	id  string
	err error
}

func (s staticActor) CurrentActor(ctx context.Context) (string, error) { return s.id, s.err }

var errStoreDown = errors.New("store unavailable")

// Mock repository: an in-memory item table with optional per-item failures
type mockRepo struct {
	mu        sync.Mutex
	checklist model.Checklist
	items     map[string]model.ChecklistItem
	failIDs   map[string]bool
	updates   []repository.UpdateItemOptions
	createErr error
	created   []repository.CreateChecklistOptions
}

func newMockRepo(items ...model.ChecklistItem) *mockRepo {
	m := &mockRepo{
		checklist: model.Checklist{ID: "c1", UserID: "user-1", TotalItems: len(items)},
		items:     make(map[string]model.ChecklistItem),
		failIDs:   make(map[string]bool),
	}
	for _, it := range items {
		m.items[it.ID] = it
	}
	return m
}

func (m *mockRepo) GetChecklist(ctx context.Context, id string) (model.Checklist, error) {
	if id != m.checklist.ID {
		return model.Checklist{}, nil
	}
	return m.checklist, nil
}

func (m *mockRepo) ListItems(ctx context.Context, checklistID string) ([]model.ChecklistItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.ChecklistItem, 0, len(m.items))
	for _, it := range m.items {
		out = append(out, it)
	}
	return out, nil
}

func (m *mockRepo) ListChecklists(ctx context.Context, opt repository.ListChecklistsOptions) ([]model.Checklist, error) {
	if opt.UserID != m.checklist.UserID {
		return nil, nil
	}
	return []model.Checklist{m.checklist}, nil
}

func (m *mockRepo) UpdateItem(ctx context.Context, opt repository.UpdateItemOptions) (model.ChecklistItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updates = append(m.updates, opt)
	if m.failIDs[opt.ID] {
		return model.ChecklistItem{}, errStoreDown
	}
	it, ok := m.items[opt.ID]
	if !ok {
		return model.ChecklistItem{}, nil
	}
	it = opt.Patch.Apply(it)
	it.UpdatedAt = opt.UpdatedAt
	m.items[opt.ID] = it
	return it, nil
}

func (m *mockRepo) CreateChecklistWithItems(ctx context.Context, opt repository.CreateChecklistOptions) (string, error) {
	m.created = append(m.created, opt)
	if m.createErr != nil {
		return "", m.createErr
	}
	return "new-id", nil
}

func (m *mockRepo) Subscribe(ctx context.Context, checklistID string) (repository.Subscription, error) {
	return nil, errStoreDown
}

func (m *mockRepo) item(id string) model.ChecklistItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items[id]
}
