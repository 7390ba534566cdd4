package main

import (
	"bytes"
	"strings"
	"testing"

	"realtime-checklist/internal/checklist"
	"realtime-checklist/internal/checklist/realtime"
	"realtime-checklist/internal/model"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		percent, width int
		want           string
	}{
		{0, 4, "[----]"},
		{50, 4, "[##--]"},
		{100, 4, "[####]"},
		{150, 4, "[####]"},
		{-5, 4, "[----]"},
	}
	for _, tt := range tests {
		if got := progressBar(tt.percent, tt.width); got != tt.want {
			t.Errorf("progressBar(%d, %d) = %q, want %q", tt.percent, tt.width, got, tt.want)
		}
	}
}

func TestProgressLine(t *testing.T) {
	if got := progressLine(realtime.State{Loading: true}); got != "loading..." {
		t.Errorf("unexpected loading line: %q", got)
	}
	if got := progressLine(realtime.State{Error: "checklist not found"}); got != "error: checklist not found" {
		t.Errorf("unexpected error line: %q", got)
	}

	c := model.Checklist{TotalItems: 11, CompletedItems: 1, ProgressPercentage: 9}
	st := realtime.State{Checklist: &c, Stats: &checklist.Stats{EstimatedTimeRemaining: 390}}
	got := progressLine(st)
	if !strings.Contains(got, "1/11 (9%)") || !strings.Contains(got, "390 min remaining") {
		t.Errorf("unexpected progress line: %q", got)
	}
}

func TestRenderChecklist(t *testing.T) {
	c := model.Checklist{
		Title:  "Audit",
		Status: model.ChecklistStatusInProgress,
		Items: []model.ChecklistItem{
			{ID: "i1", Category: "SEO", Title: "Optimize meta tags", Priority: model.PriorityHigh, EstimatedMinutes: 30, IsCompleted: true},
			{ID: "i2", Category: "UX", Title: "Audit mobile responsiveness", Priority: model.PriorityMedium, EstimatedMinutes: 45},
		},
		TotalItems:         2,
		CompletedItems:     1,
		ProgressPercentage: 50,
	}

	var buf bytes.Buffer
	renderChecklist(&buf, c, checklist.CalculateStats(c, c.Items))
	out := buf.String()

	for _, want := range []string{"Audit  [in_progress]", "[x] Optimize meta tags", "[ ] Audit mobile responsiveness", "1/2 done, 45 min remaining"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderListEmpty(t *testing.T) {
	var buf bytes.Buffer
	renderList(&buf, nil)
	if !strings.Contains(buf.String(), "No checklists yet") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}
