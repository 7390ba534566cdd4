package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"realtime-checklist/internal/checklist"
	"realtime-checklist/internal/checklist/feed"
	"realtime-checklist/internal/checklist/repository/sqlite"
	"realtime-checklist/internal/model"
	"realtime-checklist/pkg/log"
)

func TestCreateDefaults(t *testing.T) {
	repo := newMockRepo()
	uc := newTestUseCase(repo, "user-1")

	out, err := uc.Create(context.Background(), checklist.CreateInput{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if out.ID != "new-id" {
		t.Errorf("ID = %q", out.ID)
	}
	got := repo.created[0]
	if got.UserID != "user-1" || got.Title != DefaultTitle || got.Description != DefaultDescription {
		t.Errorf("unexpected factory options: %+v", got)
	}
}

func TestCreateErrors(t *testing.T) {
	t.Run("unauthenticated", func(t *testing.T) {
		repo := newMockRepo()
		uc := newTestUseCase(repo, "")
		_, err := uc.Create(context.Background(), checklist.CreateInput{Title: "Mine"})
		if !errors.Is(err, checklist.ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
		if len(repo.created) != 0 {
			t.Errorf("factory must not be called without an actor")
		}
	})

	t.Run("store failure", func(t *testing.T) {
		repo := newMockRepo()
		repo.createErr = errStoreDown
		uc := newTestUseCase(repo, "user-1")
		if _, err := uc.Create(context.Background(), checklist.CreateInput{}); !errors.Is(err, errStoreDown) {
			t.Fatalf("expected store error, got %v", err)
		}
	})

	t.Run("title too long", func(t *testing.T) {
		uc := newTestUseCase(newMockRepo(), "user-1")
		_, err := uc.Create(context.Background(), checklist.CreateInput{Title: strings.Repeat("x", 256)})
		if !errors.Is(err, checklist.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestDetailNotFound(t *testing.T) {
	uc := newTestUseCase(newMockRepo(), "user-1")
	if _, err := uc.Detail(context.Background(), "missing"); !errors.Is(err, checklist.ErrChecklistNotFound) {
		t.Fatalf("expected ErrChecklistNotFound, got %v", err)
	}
	if _, err := uc.Watch(context.Background(), "missing"); !errors.Is(err, checklist.ErrChecklistNotFound) {
		t.Fatalf("expected ErrChecklistNotFound, got %v", err)
	}
}

func TestListRequiresActor(t *testing.T) {
	uc := newTestUseCase(newMockRepo(), "")
	if _, err := uc.List(context.Background(), checklist.ListInput{}); !errors.Is(err, checklist.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

// newSQLiteUseCase wires the use case to a fresh in-memory store.
func newSQLiteUseCase(t *testing.T, actor string) *implUseCase {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.Open(ctx, sqlite.MemoryPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	hub := feed.New(log.NewNop(), 64)
	t.Cleanup(hub.Close)

	return New(log.NewNop(), sqlite.New(log.NewNop(), db, hub), staticActor{id: actor}).(*implUseCase)
}

func TestWebsiteAuditScenario(t *testing.T) {
	uc := newSQLiteUseCase(t, "user-1")
	ctx := context.Background()

	out, err := uc.Create(ctx, checklist.CreateInput{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	before, err := uc.Detail(ctx, out.ID)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if before.Checklist.Title != DefaultTitle || before.Stats.TotalItems != 11 || before.Stats.ProgressPercentage != 0 {
		t.Fatalf("unexpected fresh checklist: %+v", before.Stats)
	}

	var target model.ChecklistItem
	for _, it := range before.Checklist.Items {
		if it.EstimatedMinutes == 15 && it.Priority == model.PriorityHigh {
			target = it
			break
		}
	}
	if target.ID == "" {
		t.Fatal("catalog has no 15 minute high priority item")
	}

	if _, err := uc.UpdateItem(ctx, checklist.UpdateItemInput{ItemID: target.ID, Patch: model.ItemPatch{IsCompleted: ptr(true)}}); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}

	after, err := uc.Detail(ctx, out.ID)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if after.Stats.CompletedItems != 1 || after.Stats.ProgressPercentage != 9 {
		t.Errorf("completed=%d progress=%d, want 1 and 9", after.Stats.CompletedItems, after.Stats.ProgressPercentage)
	}
	if before.Stats.EstimatedTimeRemaining-after.Stats.EstimatedTimeRemaining != 15 {
		t.Errorf("remaining went from %d to %d", before.Stats.EstimatedTimeRemaining, after.Stats.EstimatedTimeRemaining)
	}
	if before.Stats.PriorityBreakdown[model.PriorityHigh] != after.Stats.PriorityBreakdown[model.PriorityHigh] {
		t.Errorf("priority breakdown must count items regardless of completion")
	}
	for _, cp := range after.Stats.CategoryProgress {
		if cp.Category == target.Category && cp.Completed != 1 {
			t.Errorf("category %s completed = %d, want 1", cp.Category, cp.Completed)
		}
	}
}

func TestResetScenario(t *testing.T) {
	uc := newSQLiteUseCase(t, "user-1")
	ctx := context.Background()

	out, err := uc.Create(ctx, checklist.CreateInput{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	detail, err := uc.Detail(ctx, out.ID)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}

	var entries []checklist.BatchEntry
	completedIDs := map[string]bool{}
	for _, it := range detail.Checklist.Items[:5] {
		completedIDs[it.ID] = true
		entries = append(entries, checklist.BatchEntry{ItemID: it.ID, Patch: model.ItemPatch{IsCompleted: ptr(true), Notes: ptr("done")}})
	}
	if err := uc.BatchUpdate(ctx, entries); err != nil {
		t.Fatalf("BatchUpdate: %v", err)
	}

	detail, err = uc.Detail(ctx, out.ID)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if detail.Checklist.CompletedItems != 5 {
		t.Fatalf("completed = %d, want 5", detail.Checklist.CompletedItems)
	}

	if err := uc.ResetItems(ctx, detail.Checklist.Items); err != nil {
		t.Fatalf("ResetItems: %v", err)
	}

	after, err := uc.Detail(ctx, out.ID)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if after.Checklist.CompletedItems != 0 || after.Checklist.ProgressPercentage != 0 {
		t.Errorf("counters not reset: %d / %d%%", after.Checklist.CompletedItems, after.Checklist.ProgressPercentage)
	}
	for i, it := range after.Checklist.Items {
		if it.IsCompleted || it.CompletedAt != nil || it.CompletedBy != nil || it.Notes != nil {
			t.Errorf("item %s not reset: %+v", it.ID, it)
		}
		if !completedIDs[it.ID] && !it.UpdatedAt.Equal(detail.Checklist.Items[i].UpdatedAt) {
			t.Errorf("item %s should not have been touched", it.ID)
		}
	}
}

func TestImportMarkdown(t *testing.T) {
	uc := newSQLiteUseCase(t, "user-1")
	ctx := context.Background()

	out, err := uc.Create(ctx, checklist.CreateInput{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	res, err := uc.ImportMarkdown(ctx, checklist.ImportMarkdownInput{
		ChecklistID: out.ID,
		Content:     "- [x] Minify CSS\n- [ ] Optimize images\n- [x] nothing like this\n",
	})
	if err != nil {
		t.Fatalf("ImportMarkdown: %v", err)
	}
	if res.Matched != 2 || res.Updated != 1 {
		t.Errorf("got %+v, want 2 matched and 1 updated", res)
	}

	detail, err := uc.Detail(ctx, out.ID)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if detail.Checklist.CompletedItems != 1 {
		t.Errorf("completed = %d, want 1", detail.Checklist.CompletedItems)
	}

	if _, err := uc.ImportMarkdown(ctx, checklist.ImportMarkdownInput{ChecklistID: out.ID, Content: "no boxes"}); !errors.Is(err, checklist.ErrEmptyImport) {
		t.Errorf("expected ErrEmptyImport, got %v", err)
	}
}
