package usecase

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"realtime-checklist/internal/checklist"
	"realtime-checklist/internal/model"
)

// BatchUpdate issues every entry concurrently. A failing entry does not cancel
// the others and nothing is rolled back.
func (uc *implUseCase) BatchUpdate(ctx context.Context, entries []checklist.BatchEntry) error {
	var failed atomic.Int32

	var g errgroup.Group
	g.SetLimit(batchConcurrency)

	for _, e := range entries {
		g.Go(func() error {
			if _, err := uc.UpdateItem(ctx, checklist.UpdateItemInput{ItemID: e.ItemID, Patch: e.Patch}); err != nil {
				uc.l.Warnf(ctx, "uc.BatchUpdate item %s: %v", e.ItemID, err)
				failed.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("%w: %d of %d", checklist.ErrBatchFailed, n, len(entries))
	}
	return nil
}

func (uc *implUseCase) ResetItems(ctx context.Context, items []model.ChecklistItem) error {
	entries := make([]checklist.BatchEntry, 0, len(items))
	for _, it := range items {
		if !it.IsCompleted {
			continue
		}
		undone := false
		noNote := ""
		entries = append(entries, checklist.BatchEntry{
			ItemID: it.ID,
			Patch:  model.ItemPatch{IsCompleted: &undone, Notes: &noNote},
		})
	}
	return uc.BatchUpdate(ctx, entries)
}

// CompleteItems flags the incomplete items. Notes are left as they are.
func (uc *implUseCase) CompleteItems(ctx context.Context, items []model.ChecklistItem) error {
	entries := make([]checklist.BatchEntry, 0, len(items))
	for _, it := range items {
		if it.IsCompleted {
			continue
		}
		done := true
		entries = append(entries, checklist.BatchEntry{
			ItemID: it.ID,
			Patch:  model.ItemPatch{IsCompleted: &done},
		})
	}
	return uc.BatchUpdate(ctx, entries)
}
