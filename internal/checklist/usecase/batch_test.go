package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"realtime-checklist/internal/checklist"
	"realtime-checklist/internal/model"
)

func TestBatchUpdatePartialFailure(t *testing.T) {
	repo := newMockRepo(
		model.ChecklistItem{ID: "a"},
		model.ChecklistItem{ID: "b"},
		model.ChecklistItem{ID: "c"},
	)
	repo.failIDs["b"] = true
	uc := newTestUseCase(repo, "user-1")

	err := uc.BatchUpdate(context.Background(), []checklist.BatchEntry{
		{ItemID: "a", Patch: model.ItemPatch{IsCompleted: ptr(true)}},
		{ItemID: "b", Patch: model.ItemPatch{IsCompleted: ptr(true)}},
		{ItemID: "c", Patch: model.ItemPatch{IsCompleted: ptr(true)}},
	})
	if !errors.Is(err, checklist.ErrBatchFailed) {
		t.Fatalf("expected ErrBatchFailed, got %v", err)
	}

	if !repo.item("a").IsCompleted || !repo.item("c").IsCompleted {
		t.Errorf("successful entries must stay applied")
	}
	if repo.item("b").IsCompleted {
		t.Errorf("failed entry should not be applied")
	}
	if len(repo.updates) != 3 {
		t.Errorf("every entry should be issued, got %d", len(repo.updates))
	}
}

func TestBatchUpdateEmpty(t *testing.T) {
	uc := newTestUseCase(newMockRepo(), "user-1")
	if err := uc.BatchUpdate(context.Background(), nil); err != nil {
		t.Fatalf("empty batch should succeed, got %v", err)
	}
}

func TestResetItems(t *testing.T) {
	stamp := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var items []model.ChecklistItem
	for i, done := range []bool{true, false, true, false} {
		it := model.ChecklistItem{ID: string(rune('a' + i)), IsCompleted: done, Notes: ptr("note")}
		if done {
			it.CompletedAt = &stamp
			it.CompletedBy = ptr("user-1")
		}
		items = append(items, it)
	}
	repo := newMockRepo(items...)
	uc := newTestUseCase(repo, "user-1")

	if err := uc.ResetItems(context.Background(), items); err != nil {
		t.Fatalf("ResetItems: %v", err)
	}

	if len(repo.updates) != 2 {
		t.Fatalf("expected updates for the 2 completed items only, got %d", len(repo.updates))
	}
	for _, id := range []string{"a", "c"} {
		got := repo.item(id)
		if got.IsCompleted || got.CompletedAt != nil || got.CompletedBy != nil || got.Notes != nil {
			t.Errorf("item %s not fully reset: %+v", id, got)
		}
	}
	for _, id := range []string{"b", "d"} {
		got := repo.item(id)
		if got.Notes == nil || *got.Notes != "note" {
			t.Errorf("untouched item %s lost its note", id)
		}
	}
}

func TestCompleteItemsKeepsNotes(t *testing.T) {
	items := []model.ChecklistItem{
		{ID: "a", Notes: ptr("keep me")},
		{ID: "b", IsCompleted: true},
	}
	repo := newMockRepo(items...)
	uc := newTestUseCase(repo, "user-1")

	if err := uc.CompleteItems(context.Background(), items); err != nil {
		t.Fatalf("CompleteItems: %v", err)
	}

	if len(repo.updates) != 1 || repo.updates[0].ID != "a" {
		t.Fatalf("expected a single update for the incomplete item, got %+v", repo.updates)
	}
	got := repo.item("a")
	if !got.IsCompleted || got.CompletedBy == nil || *got.CompletedBy != "user-1" {
		t.Errorf("item not completed through the stamping path: %+v", got)
	}
	if got.Notes == nil || *got.Notes != "keep me" {
		t.Errorf("complete-all must leave notes alone")
	}
}

func TestCompleteItemsUnauthenticated(t *testing.T) {
	items := []model.ChecklistItem{{ID: "a"}}
	uc := newTestUseCase(newMockRepo(items...), "")

	if err := uc.CompleteItems(context.Background(), items); !errors.Is(err, checklist.ErrBatchFailed) {
		t.Fatalf("expected ErrBatchFailed, got %v", err)
	}
}
