package checklist

import (
	"strings"
	"testing"

	"realtime-checklist/internal/model"
)

func TestParseCheckboxes(t *testing.T) {
	content := "# Audit\n" +
		"- [x] Optimize images\n" +
		"  - [ ] Enable compression\n" +
		"- [X] Add meta descriptions\n" +
		"```\n- [ ] fake checkbox in code\n```\n" +
		"plain line\n"

	boxes := ParseCheckboxes(content)

	if len(boxes) != 3 {
		t.Fatalf("expected 3 checkboxes, got %d: %+v", len(boxes), boxes)
	}
	if !boxes[0].Checked || boxes[0].Text != "Optimize images" {
		t.Errorf("unexpected first checkbox: %+v", boxes[0])
	}
	if boxes[1].Checked || boxes[1].Indent != "  " {
		t.Errorf("unexpected nested checkbox: %+v", boxes[1])
	}
	if !boxes[2].Checked {
		t.Errorf("uppercase X should count as checked")
	}
}

func TestRenderMarkdownRoundTrip(t *testing.T) {
	note := "done on staging"
	c := model.Checklist{
		Title:          "Audit",
		TotalItems:     2,
		CompletedItems: 1,
		Items: []model.ChecklistItem{
			{ID: "1", Category: "Performance", Title: "Optimize images", IsCompleted: true, Notes: &note},
			{ID: "2", Category: "SEO", Title: "Add sitemap"},
		},
	}
	md := RenderMarkdown(c, CalculateStats(c, c.Items))

	if !strings.Contains(md, "## Performance") || !strings.Contains(md, "## SEO") {
		t.Errorf("missing category headers:\n%s", md)
	}
	if !strings.Contains(md, "- [x] Optimize images") || !strings.Contains(md, "- [ ] Add sitemap") {
		t.Errorf("missing checkboxes:\n%s", md)
	}
	if !strings.Contains(md, "> done on staging") {
		t.Errorf("missing note:\n%s", md)
	}

	boxes := ParseCheckboxes(md)
	matched, entries := PlanImport(c.Items, boxes)
	if matched != 2 || len(entries) != 0 {
		t.Errorf("re-importing rendered markdown should match all and change nothing, got matched=%d entries=%d", matched, len(entries))
	}
}

func TestPlanImport(t *testing.T) {
	items := []model.ChecklistItem{
		{ID: "1", Title: "Optimize images", IsCompleted: false},
		{ID: "2", Title: "Add meta descriptions", IsCompleted: true},
		{ID: "3", Title: "Configure HTTPS", IsCompleted: false},
	}
	boxes := ParseCheckboxes("- [x] optimize\n- [ ] Add meta descriptions\n- [ ] unknown item\n")

	matched, entries := PlanImport(items, boxes)

	if matched != 2 {
		t.Errorf("matched = %d, want 2", matched)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ItemID != "1" || !*entries[0].Patch.IsCompleted {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].ItemID != "2" || *entries[1].Patch.IsCompleted {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}
}
