package checklist

import (
	"fmt"
	"regexp"
	"strings"

	"realtime-checklist/internal/model"
)

const (
	CheckboxUnchecked = `- [ ]`
	CheckboxChecked   = `- [x]`
	// Captures indent, checkbox state and text.
	// Example: "  - [x] Task name" → groups: ["  ", "x", "Task name"]
	CheckboxPattern = `(?m)^(\s*)- \[([ xX])\] (.+)$`
)

var (
	checkboxRe   = regexp.MustCompile(CheckboxPattern)
	fencedCodeRe = regexp.MustCompile("(?s)```.*?```")
	inlineCodeRe = regexp.MustCompile("`[^`]+`")
)

// sanitizeContent removes code blocks so fake checkboxes in examples are not matched.
func sanitizeContent(content string) string {
	sanitized := fencedCodeRe.ReplaceAllString(content, "")
	return inlineCodeRe.ReplaceAllString(sanitized, "")
}

// ParseCheckboxes extracts all checkboxes from markdown.
func ParseCheckboxes(content string) []Checkbox {
	matches := checkboxRe.FindAllStringSubmatch(sanitizeContent(content), -1)
	checkboxes := make([]Checkbox, 0, len(matches))

	for i, match := range matches {
		if len(match) != 4 {
			continue
		}
		checkboxes = append(checkboxes, Checkbox{
			Line:    i,
			Indent:  match[1],
			Checked: strings.ToLower(match[2]) == "x",
			Text:    strings.TrimSpace(match[3]),
			RawLine: match[0],
		})
	}

	return checkboxes
}

// RenderMarkdown renders c and its items as a markdown checklist grouped by category.
func RenderMarkdown(c model.Checklist, stats Stats) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", c.Title)
	if c.Description != nil && *c.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", *c.Description)
	}
	fmt.Fprintf(&b, "Progress: %d/%d (%d%%), %d min remaining\n",
		stats.CompletedItems, stats.TotalItems, stats.ProgressPercentage, stats.EstimatedTimeRemaining)

	for _, category := range stats.Categories {
		fmt.Fprintf(&b, "\n## %s\n\n", category)
		for _, it := range c.Items {
			if it.Category != category {
				continue
			}
			box := CheckboxUnchecked
			if it.IsCompleted {
				box = CheckboxChecked
			}
			fmt.Fprintf(&b, "%s %s\n", box, it.Title)
			if it.Notes != nil && *it.Notes != "" {
				fmt.Fprintf(&b, "  > %s\n", *it.Notes)
			}
		}
	}

	return b.String()
}

// PlanImport matches checkboxes to items by title and returns the updates needed
// to bring each matched item to its checkbox state.
// A checkbox matches an item when its text is a case-insensitive substring of the title.
// Each item is matched at most once; the first matching checkbox wins.
func PlanImport(items []model.ChecklistItem, boxes []Checkbox) (int, []BatchEntry) {
	matched := 0
	taken := make(map[string]bool, len(items))
	var entries []BatchEntry

	for _, box := range boxes {
		search := strings.ToLower(strings.TrimSpace(box.Text))
		if search == "" {
			continue
		}

		for _, it := range items {
			if taken[it.ID] || !strings.Contains(strings.ToLower(it.Title), search) {
				continue
			}
			taken[it.ID] = true
			matched++

			if it.IsCompleted != box.Checked {
				checked := box.Checked
				entries = append(entries, BatchEntry{
					ItemID: it.ID,
					Patch:  model.ItemPatch{IsCompleted: &checked},
				})
			}
			break
		}
	}

	return matched, entries
}
