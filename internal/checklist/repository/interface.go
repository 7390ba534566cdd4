package repository

import (
	"context"

	"realtime-checklist/internal/model"
)

// Repository is the remote data store holding checklists and their items.
// Reads return a zero value (empty ID) when the row does not exist.
type Repository interface {
	GetChecklist(ctx context.Context, id string) (model.Checklist, error)
	// ListItems returns the items of a checklist ordered by sort order ascending.
	ListItems(ctx context.Context, checklistID string) ([]model.ChecklistItem, error)
	ListChecklists(ctx context.Context, opt ListChecklistsOptions) ([]model.Checklist, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (model.ChecklistItem, error)
	// CreateChecklistWithItems atomically inserts a checklist and seeds its item catalog.
	CreateChecklistWithItems(ctx context.Context, opt CreateChecklistOptions) (string, error)
	// Subscribe opens one channel carrying checklist-row and item events for checklistID.
	Subscribe(ctx context.Context, checklistID string) (Subscription, error)
}

// Subscription is an open change-feed channel. Events is closed once the
// subscription ends, either through Close or because the feed went away.
type Subscription interface {
	Events() <-chan model.ChangeEvent
	Close() error
}

// ActorResolver resolves the currently authenticated actor.
// It returns an empty id, not an error, when nobody is authenticated.
type ActorResolver interface {
	CurrentActor(ctx context.Context) (string, error)
}
