package realtime_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realtime-checklist/internal/checklist"
	"realtime-checklist/internal/checklist/realtime"
	"realtime-checklist/internal/checklist/repository/sqlite"
	"realtime-checklist/internal/model"
)

func TestRoundTripCompletion(t *testing.T) {
	env := newSQLiteEnv(t)
	s := env.mount(t)

	st := s.State()
	require.NotNil(t, st.Checklist)
	require.Len(t, st.Checklist.Items, 11)
	assert.Equal(t, 0, st.Stats.ProgressPercentage)

	var target model.ChecklistItem
	for _, it := range st.Checklist.Items {
		if it.EstimatedMinutes == 15 && it.Priority == model.PriorityHigh {
			target = it
		}
	}
	require.NotEmpty(t, target.ID)
	remaining := st.Stats.EstimatedTimeRemaining
	high := st.Stats.PriorityBreakdown[model.PriorityHigh]

	require.NoError(t, s.UpdateItem(context.Background(), target.ID, model.ItemPatch{IsCompleted: ptr(true)}))

	st = waitFor(t, s, func(st realtime.State) bool { return st.Checklist.CompletedItems == 1 }, "counters reloaded")
	it, ok := itemByID(st, target.ID)
	require.True(t, ok)
	assert.True(t, it.IsCompleted)
	assert.NotNil(t, it.CompletedAt)
	require.NotNil(t, it.CompletedBy)
	assert.Equal(t, "user-1", *it.CompletedBy)
	assert.Equal(t, 9, st.Stats.ProgressPercentage)
	assert.Equal(t, remaining-15, st.Stats.EstimatedTimeRemaining)
	assert.Equal(t, high, st.Stats.PriorityBreakdown[model.PriorityHigh])
	for _, cp := range st.Stats.CategoryProgress {
		if cp.Category == target.Category {
			assert.Equal(t, 1, cp.Completed)
		}
	}
}

func TestResetChecklistScenario(t *testing.T) {
	env := newSQLiteEnv(t)
	s := env.mount(t)
	ctx := context.Background()

	items := s.State().Checklist.Items
	note := "done"
	for _, it := range items[:5] {
		require.NoError(t, s.UpdateItem(ctx, it.ID, model.ItemPatch{IsCompleted: ptr(true), Notes: &note}))
	}
	waitFor(t, s, func(st realtime.State) bool {
		done := 0
		for _, it := range st.Checklist.Items {
			if it.IsCompleted {
				done++
			}
		}
		return done == 5 && st.Checklist.CompletedItems == 5
	}, "five items completed")

	before := s.State().Checklist.Items
	require.NoError(t, s.ResetChecklist(ctx))

	st := waitFor(t, s, func(st realtime.State) bool { return st.Checklist.CompletedItems == 0 }, "reset applied")
	for i, it := range st.Checklist.Items {
		assert.False(t, it.IsCompleted)
		assert.Nil(t, it.CompletedAt)
		assert.Nil(t, it.CompletedBy)
		assert.Nil(t, it.Notes)
		if i >= 5 {
			assert.True(t, it.UpdatedAt.Equal(before[i].UpdatedAt), "item %s should be untouched", it.ID)
		}
	}
	assert.Equal(t, 0, st.Stats.ProgressPercentage)
}

func TestCompleteAllScenario(t *testing.T) {
	env := newSQLiteEnv(t)
	s := env.mount(t)
	ctx := context.Background()

	first := s.State().Checklist.Items[0]
	require.NoError(t, s.AddNote(ctx, first.ID, "keep"))
	require.NoError(t, s.AddEvidence(ctx, first.ID, "https://example.com/lighthouse.html"))
	require.NoError(t, s.CompleteAll(ctx))

	st := waitFor(t, s, func(st realtime.State) bool {
		return st.Checklist.CompletedItems == 11 && st.Checklist.Status == model.ChecklistStatusCompleted
	}, "all completed")
	assert.Equal(t, 100, st.Stats.ProgressPercentage)
	assert.Equal(t, 0, st.Stats.EstimatedTimeRemaining)

	it, _ := itemByID(st, first.ID)
	require.NotNil(t, it.Notes)
	assert.Equal(t, "keep", *it.Notes)
	require.NotNil(t, it.EvidenceURL)

	exp, ok := s.ExportChecklist()
	require.True(t, ok)
	assert.Equal(t, 4, exp.Summary.CategoriesCompleted)
	assert.Equal(t, *st.Checklist.EstimatedTimeMinutes, exp.Summary.TimeSaved)
	assert.Empty(t, st.Error)
	assert.False(t, st.IsUpdating)
}

func TestMountedChangesFire(t *testing.T) {
	env := newSQLiteEnv(t)
	s := env.mount(t)

	// drain the load notification
	select {
	case <-s.Changes():
	default:
	}

	id := s.State().Checklist.Items[0].ID
	require.NoError(t, s.AddNote(context.Background(), id, "ping"))

	waitFor(t, s, func(st realtime.State) bool {
		it, _ := itemByID(st, id)
		return it.Notes != nil && *it.Notes == "ping"
	}, "note echoed")
	_, open := <-s.Changes()
	assert.True(t, open)

	require.NoError(t, s.Close())
	for range s.Changes() {
	}
	_, open = <-s.Changes()
	assert.False(t, open)
}

func TestBatchPartialFailureEchoesSuccesses(t *testing.T) {
	failIDs := map[string]bool{}
	env := newSQLiteEnvAt(t, sqlite.MemoryPath, failIDs)
	s := env.mount(t)
	ctx := context.Background()

	items := s.State().Checklist.Items
	failIDs[items[2].ID] = true

	entries := make([]checklist.BatchEntry, 0, 4)
	for _, it := range items[:4] {
		entries = append(entries, checklist.BatchEntry{ItemID: it.ID, Patch: model.ItemPatch{IsCompleted: ptr(true)}})
	}
	err := s.BatchUpdateItems(ctx, entries)
	require.ErrorIs(t, err, checklist.ErrBatchFailed)
	assert.Contains(t, err.Error(), "1 of 4")

	st := waitFor(t, s, func(st realtime.State) bool { return st.Checklist.CompletedItems == 3 }, "successful entries echoed")
	for i, it := range st.Checklist.Items[:4] {
		assert.Equal(t, i != 2, it.IsCompleted, "item %d", i)
	}
	assert.Equal(t, 27, st.Stats.ProgressPercentage)
}

func TestCompleteAllOnFileDatabase(t *testing.T) {
	ctx := context.Background()

	for round := 0; round < 10; round++ {
		env := newSQLiteEnvAt(t, filepath.Join(t.TempDir(), "checklist.db"), nil)
		s := env.mount(t)

		require.NoError(t, s.CompleteAll(ctx), "round %d", round)
		st := waitFor(t, s, func(st realtime.State) bool { return st.Checklist.CompletedItems == 11 }, "all items completed")
		assert.Empty(t, st.Error)
		require.NoError(t, s.Close())
	}
}
