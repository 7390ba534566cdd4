package model

import "time"

// Checklist statuses written by the store. Rows may carry other values; they are kept as-is.
const (
	ChecklistStatusNotStarted = "not_started"
	ChecklistStatusInProgress = "in_progress"
	ChecklistStatusCompleted  = "completed"
)

// ChecklistTypeWebsiteAudit is the type tag of checklists created by the factory.
const ChecklistTypeWebsiteAudit = "website_audit"

// Checklist is a named collection of items tracked for one owner.
// TotalItems, CompletedItems and ProgressPercentage are maintained by the store.
type Checklist struct {
	ID                   string          `json:"id"`
	UserID               string          `json:"user_id"`
	ChecklistType        string          `json:"checklist_type"`
	Title                string          `json:"title"`
	Description          *string         `json:"description"`
	TotalItems           int             `json:"total_items"`
	CompletedItems       int             `json:"completed_items"`
	ProgressPercentage   int             `json:"progress_percentage"`
	Status               string          `json:"status"`
	Data                 Metadata        `json:"data"`
	Tags                 []string        `json:"tags"`
	EstimatedTimeMinutes *int            `json:"estimated_time_minutes"`
	ActualTimeMinutes    *int            `json:"actual_time_minutes"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
	CompletedAt          *time.Time      `json:"completed_at"`
	Items                []ChecklistItem `json:"items,omitempty"`
}

// Clone returns a deep copy so callers can hand out snapshots of cached state.
func (c Checklist) Clone() Checklist {
	out := c
	out.Description = cloneString(c.Description)
	out.EstimatedTimeMinutes = cloneInt(c.EstimatedTimeMinutes)
	out.ActualTimeMinutes = cloneInt(c.ActualTimeMinutes)
	out.CompletedAt = cloneTime(c.CompletedAt)
	out.Data = c.Data.Clone()
	if c.Tags != nil {
		out.Tags = append([]string(nil), c.Tags...)
	}
	if c.Items != nil {
		out.Items = make([]ChecklistItem, len(c.Items))
		for i, it := range c.Items {
			out.Items[i] = it.Clone()
		}
	}
	return out
}

// EstimatedMinutes returns the declared estimate, 0 when unset.
func (c Checklist) EstimatedMinutes() int {
	if c.EstimatedTimeMinutes == nil {
		return 0
	}
	return *c.EstimatedTimeMinutes
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneInt(i *int) *int {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
