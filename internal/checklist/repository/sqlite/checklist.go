package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"realtime-checklist/internal/checklist/repository"
	"realtime-checklist/internal/model"
)

const defaultListLimit = 20

func (r *implRepository) GetChecklist(ctx context.Context, id string) (model.Checklist, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+checklistColumns+` FROM interactive_checklists WHERE id = ?`, id)

	c, err := scanChecklist(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Checklist{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "sqlite.GetChecklist: %v", err)
		return model.Checklist{}, fmt.Errorf("%w checklist %s: %w", repository.ErrFailedToGet, id, err)
	}
	return c, nil
}

func (r *implRepository) ListChecklists(ctx context.Context, opt repository.ListChecklistsOptions) ([]model.Checklist, error) {
	limit := opt.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+checklistColumns+` FROM interactive_checklists WHERE user_id = ? ORDER BY created_at DESC, id LIMIT ?`,
		opt.UserID, limit)
	if err != nil {
		r.l.Errorf(ctx, "sqlite.ListChecklists: %v", err)
		return nil, fmt.Errorf("%w checklists: %w", repository.ErrFailedToList, err)
	}
	defer rows.Close()

	checklists := make([]model.Checklist, 0)
	for rows.Next() {
		c, err := scanChecklist(rows)
		if err != nil {
			return nil, fmt.Errorf("%w checklists: %w", repository.ErrFailedToList, err)
		}
		checklists = append(checklists, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w checklists: %w", repository.ErrFailedToList, err)
	}
	return checklists, nil
}

func getChecklistTx(ctx context.Context, tx *sql.Tx, id string) (model.Checklist, error) {
	c, err := scanChecklist(tx.QueryRowContext(ctx, `SELECT `+checklistColumns+` FROM interactive_checklists WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Checklist{}, nil
	}
	return c, err
}
