package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"realtime-checklist/internal/checklist/repository"
	"realtime-checklist/internal/model"
)

func (r *implRepository) ListItems(ctx context.Context, checklistID string) ([]model.ChecklistItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM checklist_items WHERE checklist_id = ? ORDER BY sort_order ASC, id`, checklistID)
	if err != nil {
		r.l.Errorf(ctx, "sqlite.ListItems: %v", err)
		return nil, fmt.Errorf("%w items: %w", repository.ErrFailedToList, err)
	}
	defer rows.Close()

	items := make([]model.ChecklistItem, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%w items: %w", repository.ErrFailedToList, err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w items: %w", repository.ErrFailedToList, err)
	}
	return items, nil
}

// UpdateItem applies opt.Patch to the item row. The parent counters are
// recomputed by triggers when the completion flag flips; in that case a
// checklist update event follows the item event.
func (r *implRepository) UpdateItem(ctx context.Context, opt repository.UpdateItemOptions) (model.ChecklistItem, error) {
	updatedAt := opt.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = r.now()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return model.ChecklistItem{}, fmt.Errorf("%w item %s: %w", repository.ErrFailedToUpdate, opt.ID, err)
	}
	defer func() { _ = tx.Rollback() }()

	current, err := scanItem(tx.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM checklist_items WHERE id = ?`, opt.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.ChecklistItem{}, nil
	}
	if err != nil {
		return model.ChecklistItem{}, fmt.Errorf("%w item %s: %w", repository.ErrFailedToUpdate, opt.ID, err)
	}

	next := opt.Patch.Apply(current)
	next.UpdatedAt = updatedAt.UTC()

	_, err = tx.ExecContext(ctx, `UPDATE checklist_items SET
		category = ?, title = ?, description = ?, action_required = ?, priority = ?, difficulty = ?,
		estimated_minutes = ?, actual_minutes = ?, is_completed = ?, completed_at = ?, completed_by = ?,
		notes = ?, evidence_url = ?, sort_order = ?, updated_at = ?
		WHERE id = ?`,
		next.Category, next.Title, next.Description, next.ActionRequired, string(next.Priority), string(next.Difficulty),
		next.EstimatedMinutes, nullInt(next.ActualMinutes), boolInt(next.IsCompleted), nullTime(next.CompletedAt),
		nullString(next.CompletedBy), nullString(next.Notes), nullString(next.EvidenceURL), next.SortOrder,
		formatTime(next.UpdatedAt), next.ID)
	if err != nil {
		r.l.Errorf(ctx, "sqlite.UpdateItem: %v", err)
		return model.ChecklistItem{}, fmt.Errorf("%w item %s: %w", repository.ErrFailedToUpdate, opt.ID, err)
	}

	var parent model.Checklist
	flipped := current.IsCompleted != next.IsCompleted
	if flipped {
		if parent, err = getChecklistTx(ctx, tx, next.ChecklistID); err != nil {
			return model.ChecklistItem{}, fmt.Errorf("%w item %s: %w", repository.ErrFailedToUpdate, opt.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return model.ChecklistItem{}, fmt.Errorf("%w item %s: %w", repository.ErrFailedToUpdate, opt.ID, err)
	}

	r.hub.Publish(ctx, model.ItemEvent(model.OpUpdate, next))
	if flipped && parent.ID != "" {
		r.hub.Publish(ctx, model.ChecklistEvent(model.OpUpdate, parent))
	}

	return next, nil
}
