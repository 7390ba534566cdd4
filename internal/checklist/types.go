package checklist

import (
	"time"

	"realtime-checklist/internal/model"
)

// CategoryProgress is the completion of one item category.
type CategoryProgress struct {
	Category  string `json:"category"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
	Progress  int    `json:"progress"`
}

// Stats are the display statistics derived from a checklist and its items.
// Top-level counters are copied from the checklist row.
type Stats struct {
	TotalItems             int                    `json:"total_items"`
	CompletedItems         int                    `json:"completed_items"`
	ProgressPercentage     int                    `json:"progress_percentage"`
	EstimatedTimeRemaining int                    `json:"estimated_time_remaining"`
	Categories             []string               `json:"categories"`
	PriorityBreakdown      map[model.Priority]int `json:"priority_breakdown"`
	CategoryProgress       []CategoryProgress     `json:"category_progress"`
}

// Clone returns a deep copy of the stats.
func (s Stats) Clone() Stats {
	out := s
	out.Categories = append([]string(nil), s.Categories...)
	out.CategoryProgress = append([]CategoryProgress(nil), s.CategoryProgress...)
	if s.PriorityBreakdown != nil {
		out.PriorityBreakdown = make(map[model.Priority]int, len(s.PriorityBreakdown))
		for k, v := range s.PriorityBreakdown {
			out.PriorityBreakdown[k] = v
		}
	}
	return out
}

// BatchEntry is one item update of a batch.
type BatchEntry struct {
	ItemID string          `json:"id"`
	Patch  model.ItemPatch `json:"updates"`
}

// ExportedChecklist is the checklist snapshot embedded in an export.
type ExportedChecklist struct {
	model.Checklist
	ExportedAt time.Time `json:"exported_at"`
}

// Summary is the derived part of an export.
type Summary struct {
	CompletionPercentage  int `json:"completion_percentage"`
	TimeSaved             int `json:"time_saved"`
	CategoriesCompleted   int `json:"categories_completed"`
	HighPriorityCompleted int `json:"high_priority_completed"`
}

// Export is a read-only snapshot of a checklist with its statistics.
type Export struct {
	Checklist ExportedChecklist `json:"checklist"`
	Stats     Stats             `json:"stats"`
	Summary   Summary           `json:"summary"`
}

// Checkbox is a single markdown checkbox line.
type Checkbox struct {
	Line    int    // Index among parsed checkboxes
	Indent  string // Leading whitespace
	Checked bool   // true if [x], false if [ ]
	Text    string
	RawLine string
}

// CreateInput is the input of the checklist factory.
type CreateInput struct {
	Title       string `json:"title" validate:"max=255"`
	Description string `json:"description" validate:"max=2000"`
}

// CreateOutput is the result of the checklist factory.
type CreateOutput struct {
	ID string
}

// ListInput filters the checklists of the current actor.
type ListInput struct {
	Limit int
}

// ListOutput is the result of List.
type ListOutput struct {
	Checklists []model.Checklist
}

// DetailOutput is a checklist with its ordered items and derived statistics.
type DetailOutput struct {
	Checklist model.Checklist
	Stats     Stats
}

// UpdateItemInput is the input of UpdateItem.
type UpdateItemInput struct {
	ItemID string
	Patch  model.ItemPatch
}

// ImportMarkdownInput carries checkbox markdown to apply to a checklist.
type ImportMarkdownInput struct {
	ChecklistID string
	Content     string
}

// ImportMarkdownOutput reports how many items an import changed.
type ImportMarkdownOutput struct {
	Matched int
	Updated int
}
