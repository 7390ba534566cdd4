package realtime

import (
	"sort"

	"realtime-checklist/internal/checklist"
	"realtime-checklist/internal/model"
)

// apply merges one change event into the cache. Events arriving before the
// first successful load have nothing to merge into and are skipped.
func (s *Session) apply(ev model.ChangeEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.checklist == nil {
		return
	}

	switch ev.Entity {
	case model.EntityChecklist:
		if !s.applyChecklistLocked(ev) {
			return
		}
	case model.EntityItem:
		if !s.applyItemLocked(ev) {
			return
		}
	default:
		s.l.Warnf(s.ctx, "realtime.apply: unknown entity %q", ev.Entity)
		return
	}

	stats := checklist.CalculateStats(*s.checklist, s.checklist.Items)
	s.stats = &stats
	s.notifyLocked()
}

func (s *Session) applyChecklistLocked(ev model.ChangeEvent) bool {
	if ev.Checklist == nil {
		return false
	}
	if ev.Op == model.OpDelete {
		s.l.Warnf(s.ctx, "realtime.apply: checklist %s deleted upstream, keeping cache", ev.ChecklistID)
		return false
	}

	merged := ev.Checklist.Clone()
	merged.Items = s.checklist.Items
	s.checklist = &merged
	return true
}

func (s *Session) applyItemLocked(ev model.ChangeEvent) bool {
	if ev.Item == nil {
		return false
	}

	items := s.checklist.Items
	idx := indexOf(items, ev.Item.ID)

	switch ev.Op {
	case model.OpInsert:
		row := ev.Item.Clone()
		if idx >= 0 {
			items[idx] = row
		} else {
			items = append(items, row)
		}
		sort.SliceStable(items, func(i, j int) bool { return items[i].SortOrder < items[j].SortOrder })

	case model.OpUpdate:
		if idx < 0 {
			return false
		}
		prev := items[idx]
		items[idx] = ev.Item.Clone()
		if prev.IsCompleted != ev.Item.IsCompleted {
			s.scheduleReloadLocked()
		}

	case model.OpDelete:
		if idx < 0 {
			return false
		}
		items = append(items[:idx], items[idx+1:]...)

	default:
		return false
	}

	s.checklist.Items = items
	return true
}

func indexOf(items []model.ChecklistItem, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}
