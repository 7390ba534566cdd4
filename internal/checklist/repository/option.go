package repository

import (
	"time"

	"realtime-checklist/internal/model"
)

// ListChecklistsOptions holds the parameters for listing an owner's checklists.
type ListChecklistsOptions struct {
	UserID string
	Limit  int // Max number of results (default 20)
}

// UpdateItemOptions holds a partial item update.
type UpdateItemOptions struct {
	ID        string
	Patch     model.ItemPatch
	UpdatedAt time.Time // Defaults to now
}

// CreateChecklistOptions holds the parameters of the checklist factory.
type CreateChecklistOptions struct {
	UserID      string
	Title       string
	Description string
}
