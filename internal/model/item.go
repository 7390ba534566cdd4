package model

import "time"

// Priority of a checklist item.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Difficulty of a checklist item.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ChecklistItem is one actionable unit owned by exactly one checklist.
type ChecklistItem struct {
	ID               string     `json:"id"`
	ChecklistID      string     `json:"checklist_id"`
	Category         string     `json:"category"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	ActionRequired   string     `json:"action_required"`
	Priority         Priority   `json:"priority"`
	Difficulty       Difficulty `json:"difficulty"`
	EstimatedMinutes int        `json:"estimated_minutes"`
	ActualMinutes    *int       `json:"actual_minutes"`
	IsCompleted      bool       `json:"is_completed"`
	CompletedAt      *time.Time `json:"completed_at"`
	CompletedBy      *string    `json:"completed_by"`
	Notes            *string    `json:"notes"`
	EvidenceURL      *string    `json:"evidence_url"`
	SortOrder        int        `json:"sort_order"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Clone returns a deep copy of the item.
func (it ChecklistItem) Clone() ChecklistItem {
	out := it
	out.ActualMinutes = cloneInt(it.ActualMinutes)
	out.CompletedAt = cloneTime(it.CompletedAt)
	out.CompletedBy = cloneString(it.CompletedBy)
	out.Notes = cloneString(it.Notes)
	out.EvidenceURL = cloneString(it.EvidenceURL)
	return out
}

// IsHighPriority reports whether the item is high or critical.
func (it ChecklistItem) IsHighPriority() bool {
	return it.Priority == PriorityHigh || it.Priority == PriorityCritical
}

// ItemPatch is a partial update of an item.
// A nil field is left untouched. A pointer to the zero value clears a nullable text
// or time column (Notes, EvidenceURL, CompletedAt, CompletedBy). ActualMinutes records
// zero as zero; ClearActualMinutes sets the column back to null.
type ItemPatch struct {
	Category           *string     `json:"category,omitempty" validate:"omitempty,min=1,max=100"`
	Title              *string     `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Description        *string     `json:"description,omitempty" validate:"omitempty,max=2000"`
	ActionRequired     *string     `json:"action_required,omitempty" validate:"omitempty,max=2000"`
	Priority           *Priority   `json:"priority,omitempty" validate:"omitempty,oneof=low medium high critical"`
	Difficulty         *Difficulty `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard"`
	EstimatedMinutes   *int        `json:"estimated_minutes,omitempty" validate:"omitempty,min=0"`
	ActualMinutes      *int        `json:"actual_minutes,omitempty" validate:"omitempty,min=0"`
	ClearActualMinutes bool        `json:"clear_actual_minutes,omitempty" validate:"excluded_with=ActualMinutes"`
	IsCompleted        *bool       `json:"is_completed,omitempty"`
	CompletedAt        *time.Time  `json:"completed_at,omitempty"`
	CompletedBy        *string     `json:"completed_by,omitempty"`
	Notes              *string     `json:"notes,omitempty" validate:"omitempty,max=5000"`
	EvidenceURL        *string     `json:"evidence_url,omitempty"`
	SortOrder          *int        `json:"sort_order,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p ItemPatch) IsEmpty() bool {
	return p.Category == nil && p.Title == nil && p.Description == nil && p.ActionRequired == nil &&
		p.Priority == nil && p.Difficulty == nil && p.EstimatedMinutes == nil && p.ActualMinutes == nil &&
		!p.ClearActualMinutes && p.IsCompleted == nil && p.CompletedAt == nil && p.CompletedBy == nil && p.Notes == nil &&
		p.EvidenceURL == nil && p.SortOrder == nil
}

// Apply returns it with every non-nil patch field written over it.
func (p ItemPatch) Apply(it ChecklistItem) ChecklistItem {
	out := it.Clone()
	if p.Category != nil {
		out.Category = *p.Category
	}
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.ActionRequired != nil {
		out.ActionRequired = *p.ActionRequired
	}
	if p.Priority != nil {
		out.Priority = *p.Priority
	}
	if p.Difficulty != nil {
		out.Difficulty = *p.Difficulty
	}
	if p.EstimatedMinutes != nil {
		out.EstimatedMinutes = *p.EstimatedMinutes
	}
	if p.ClearActualMinutes {
		out.ActualMinutes = nil
	} else if p.ActualMinutes != nil {
		out.ActualMinutes = cloneInt(p.ActualMinutes)
	}
	if p.IsCompleted != nil {
		out.IsCompleted = *p.IsCompleted
	}
	if p.CompletedAt != nil {
		if p.CompletedAt.IsZero() {
			out.CompletedAt = nil
		} else {
			out.CompletedAt = cloneTime(p.CompletedAt)
		}
	}
	if p.CompletedBy != nil {
		out.CompletedBy = nullableString(*p.CompletedBy)
	}
	if p.Notes != nil {
		out.Notes = nullableString(*p.Notes)
	}
	if p.EvidenceURL != nil {
		out.EvidenceURL = nullableString(*p.EvidenceURL)
	}
	if p.SortOrder != nil {
		out.SortOrder = *p.SortOrder
	}
	return out
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
