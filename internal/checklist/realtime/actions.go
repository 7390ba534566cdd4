package realtime

import (
	"context"
	"time"

	"realtime-checklist/internal/checklist"
	"realtime-checklist/internal/model"
)

// Mutations never touch the cache: their effect arrives through the change
// feed. A failure is returned and also recorded as the state's error message.

// UpdateItem applies a partial update to one item.
func (s *Session) UpdateItem(ctx context.Context, itemID string, patch model.ItemPatch) error {
	s.beginUpdate()
	defer s.endUpdate()

	_, err := s.uc.UpdateItem(ctx, checklist.UpdateItemInput{ItemID: itemID, Patch: patch})
	return s.fail(ctx, "UpdateItem", err)
}

// AddNote sets the note of an item.
func (s *Session) AddNote(ctx context.Context, itemID, note string) error {
	s.beginUpdate()
	defer s.endUpdate()

	return s.fail(ctx, "AddNote", s.uc.AddNote(ctx, itemID, note))
}

// AddEvidence sets the evidence URL of an item.
func (s *Session) AddEvidence(ctx context.Context, itemID, url string) error {
	s.beginUpdate()
	defer s.endUpdate()

	return s.fail(ctx, "AddEvidence", s.uc.AddEvidence(ctx, itemID, url))
}

// BatchUpdateItems issues all entries concurrently and succeeds only if every entry did.
func (s *Session) BatchUpdateItems(ctx context.Context, entries []checklist.BatchEntry) error {
	s.beginUpdate()
	defer s.endUpdate()

	return s.fail(ctx, "BatchUpdateItems", s.uc.BatchUpdate(ctx, entries))
}

// ResetChecklist un-completes every cached completed item, clearing its stamps and note.
func (s *Session) ResetChecklist(ctx context.Context) error {
	items, err := s.cachedItems()
	if err != nil {
		return s.fail(ctx, "ResetChecklist", err)
	}

	s.beginUpdate()
	defer s.endUpdate()

	return s.fail(ctx, "ResetChecklist", s.uc.ResetItems(ctx, items))
}

// CompleteAll completes every cached incomplete item. Notes are kept.
func (s *Session) CompleteAll(ctx context.Context) error {
	items, err := s.cachedItems()
	if err != nil {
		return s.fail(ctx, "CompleteAll", err)
	}

	s.beginUpdate()
	defer s.endUpdate()

	return s.fail(ctx, "CompleteAll", s.uc.CompleteItems(ctx, items))
}

// ExportChecklist snapshots the cached checklist and stats. It reports false
// when nothing has been loaded yet.
func (s *Session) ExportChecklist() (checklist.Export, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.checklist == nil || s.stats == nil {
		return checklist.Export{}, false
	}
	return checklist.BuildExport(*s.checklist, *s.stats, time.Now()), true
}

func (s *Session) cachedItems() ([]model.ChecklistItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.checklist == nil {
		return nil, checklist.ErrNoChecklistLoaded
	}
	items := make([]model.ChecklistItem, len(s.checklist.Items))
	for i, it := range s.checklist.Items {
		items[i] = it.Clone()
	}
	return items, nil
}

func (s *Session) beginUpdate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updating++
	s.notifyLocked()
}

func (s *Session) endUpdate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updating--
	s.notifyLocked()
}

func (s *Session) fail(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	s.l.Errorf(ctx, "realtime.%s: %v", op, err)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.errMsg = err.Error()
		s.notifyLocked()
	}
	return err
}
