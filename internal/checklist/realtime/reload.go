package realtime

import (
	"context"
	"time"

	"realtime-checklist/internal/checklist"
)

// scheduleReloadLocked arms the debounced full reload. A newer call
// supersedes a pending one, so a burst of flips costs a single reload.
func (s *Session) scheduleReloadLocked() {
	if s.closed {
		return
	}
	s.reloadGen++
	gen := s.reloadGen
	if s.reload != nil {
		s.reload.Stop()
	}
	s.reload = time.AfterFunc(s.debounce, func() { s.reloadFired(gen) })
}

func (s *Session) reloadFired(gen uint64) {
	s.mu.Lock()
	if s.closed || gen != s.reloadGen {
		s.mu.Unlock()
		return
	}
	s.reload = nil
	s.wg.Add(1)
	s.mu.Unlock()

	defer s.wg.Done()
	_ = s.load(s.ctx)
}

// Refetch reloads the checklist and its items.
func (s *Session) Refetch(ctx context.Context) error {
	return s.load(ctx)
}

// load reads the checklist row, then its items. Each load takes a sequence
// number and its result is applied only if no later load has been applied,
// so a slow reload can never overwrite a newer one. On failure the cache is
// kept and the error is recorded.
func (s *Session) load(ctx context.Context) error {
	s.mu.Lock()
	s.fetchSeq++
	seq := s.fetchSeq
	s.mu.Unlock()

	c, err := s.repo.GetChecklist(ctx, s.checklistID)
	if err == nil && c.ID == "" {
		err = checklist.ErrChecklistNotFound
	}
	if err == nil {
		c.Items, err = s.repo.ListItems(ctx, s.checklistID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || seq <= s.appliedSeq {
		return err
	}
	s.appliedSeq = seq
	s.loading = false

	if err != nil {
		s.l.Errorf(ctx, "realtime.load %s: %v", s.checklistID, err)
		s.errMsg = err.Error()
		s.notifyLocked()
		return err
	}

	stats := checklist.CalculateStats(c, c.Items)
	s.checklist = &c
	s.stats = &stats
	s.errMsg = ""
	s.notifyLocked()
	return nil
}
