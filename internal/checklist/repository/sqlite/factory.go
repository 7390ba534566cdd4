package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"realtime-checklist/internal/checklist/repository"
	"realtime-checklist/internal/model"
)

// CreateChecklistWithItems inserts a website audit checklist and seeds the
// catalog in one transaction. The triggers fill in the counters.
func (r *implRepository) CreateChecklistWithItems(ctx context.Context, opt repository.CreateChecklistOptions) (string, error) {
	now := formatTime(r.now())
	id := uuid.NewString()

	data, err := json.Marshal(model.Metadata{
		"priority":        model.StringValue("high"),
		"estimated_hours": model.NumberValue(float64(catalogMinutes(websiteAuditCatalog)) / 60),
		"category":        model.StringValue("audit"),
	})
	if err != nil {
		return "", fmt.Errorf("%w checklist: %w", repository.ErrFailedToInsert, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("%w checklist: %w", repository.ErrFailedToInsert, err)
	}
	defer func() { _ = tx.Rollback() }()

	var description any
	if opt.Description != "" {
		description = opt.Description
	}

	_, err = tx.ExecContext(ctx, `INSERT INTO interactive_checklists
		(id, user_id, checklist_type, title, description, status, data, tags, estimated_time_minutes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, opt.UserID, model.ChecklistTypeWebsiteAudit, opt.Title, description, model.ChecklistStatusNotStarted,
		string(data), `["website","audit"]`, catalogMinutes(websiteAuditCatalog), now, now)
	if err != nil {
		r.l.Errorf(ctx, "sqlite.CreateChecklistWithItems: %v", err)
		return "", fmt.Errorf("%w checklist: %w", repository.ErrFailedToInsert, err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO checklist_items
		(id, checklist_id, category, title, description, action_required, priority, difficulty,
		 estimated_minutes, is_completed, sort_order, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("%w items: %w", repository.ErrFailedToInsert, err)
	}
	defer stmt.Close()

	for i, c := range websiteAuditCatalog {
		_, err := stmt.ExecContext(ctx, uuid.NewString(), id, c.Category, c.Title, c.Description, c.ActionRequired,
			string(c.Priority), string(c.Difficulty), c.EstimatedMinutes, i+1, now, now)
		if err != nil {
			r.l.Errorf(ctx, "sqlite.CreateChecklistWithItems: item %d: %v", i, err)
			return "", fmt.Errorf("%w items: %w", repository.ErrFailedToInsert, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("%w checklist: %w", repository.ErrFailedToInsert, err)
	}

	return id, nil
}
