package model

import "testing"

func TestItemPatchActualMinutes(t *testing.T) {
	seven := 7
	base := ChecklistItem{ID: "1", ActualMinutes: &seven}

	zero := 0
	got := ItemPatch{ActualMinutes: &zero}.Apply(base)
	if got.ActualMinutes == nil || *got.ActualMinutes != 0 {
		t.Errorf("zero actual minutes should be recorded, got %v", got.ActualMinutes)
	}

	got = ItemPatch{ClearActualMinutes: true}.Apply(base)
	if got.ActualMinutes != nil {
		t.Errorf("ClearActualMinutes should null the column, got %d", *got.ActualMinutes)
	}

	got = ItemPatch{}.Apply(base)
	if got.ActualMinutes == nil || *got.ActualMinutes != 7 {
		t.Errorf("untouched field changed: %v", got.ActualMinutes)
	}
	if *base.ActualMinutes != 7 {
		t.Errorf("Apply mutated its input")
	}
}

func TestItemPatchIsEmpty(t *testing.T) {
	if !(ItemPatch{}).IsEmpty() {
		t.Errorf("zero patch should be empty")
	}
	if (ItemPatch{ClearActualMinutes: true}).IsEmpty() {
		t.Errorf("a clear-only patch is not empty")
	}
}
