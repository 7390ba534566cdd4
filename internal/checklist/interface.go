package checklist

import (
	"context"

	"realtime-checklist/internal/checklist/repository"
	"realtime-checklist/internal/model"
)

// UseCase defines the business logic interface for the checklist domain.
// It holds no per-checklist state; the realtime session keeps the cache.
type UseCase interface {
	// Create runs the factory: one new website audit checklist seeded with the item catalog.
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)

	// List returns the current actor's checklists, newest first.
	List(ctx context.Context, input ListInput) (ListOutput, error)

	// Detail loads a checklist with its ordered items and computes its stats.
	Detail(ctx context.Context, id string) (DetailOutput, error)

	// UpdateItem applies a partial update, stamping completion fields on a flag change.
	UpdateItem(ctx context.Context, input UpdateItemInput) (model.ChecklistItem, error)

	// AddNote sets only the note of an item.
	AddNote(ctx context.Context, itemID, note string) error

	// AddEvidence sets only the evidence URL of an item.
	AddEvidence(ctx context.Context, itemID, url string) error

	// BatchUpdate issues every entry concurrently. It fails with ErrBatchFailed if any entry failed.
	BatchUpdate(ctx context.Context, entries []BatchEntry) error

	// ResetItems un-completes the completed items among items, clearing stamps and notes.
	ResetItems(ctx context.Context, items []model.ChecklistItem) error

	// CompleteItems completes the incomplete items among items.
	CompleteItems(ctx context.Context, items []model.ChecklistItem) error

	// Watch opens a change-feed subscription for an existing checklist.
	Watch(ctx context.Context, checklistID string) (repository.Subscription, error)

	// ImportMarkdown applies checkbox states from markdown to items matched by title.
	ImportMarkdown(ctx context.Context, input ImportMarkdownInput) (ImportMarkdownOutput, error)
}
