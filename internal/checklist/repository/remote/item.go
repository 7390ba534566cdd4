package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"realtime-checklist/internal/checklist/repository"
	"realtime-checklist/internal/model"
)

// ListItems returns the checklist's items in sort order. An unknown checklist has no items.
func (c *Client) ListItems(ctx context.Context, checklistID string) ([]model.ChecklistItem, error) {
	var resp struct {
		Items []model.ChecklistItem `json:"items"`
	}
	err := c.do(ctx, http.MethodGet, "/api/v1/checklists/"+url.PathEscape(checklistID)+"/items", nil, &resp)
	if errors.Is(err, errNotFound) {
		return nil, nil
	}
	if err != nil {
		c.l.Errorf(ctx, "remote.ListItems: %v", err)
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
	}
	return resp.Items, nil
}

// UpdateItem sends the patch. The server stamps completion and updated_at itself,
// so opt.UpdatedAt is not sent. An unknown item yields a zero value.
func (c *Client) UpdateItem(ctx context.Context, opt repository.UpdateItemOptions) (model.ChecklistItem, error) {
	var resp struct {
		Item model.ChecklistItem `json:"item"`
	}
	err := c.do(ctx, http.MethodPatch, "/api/v1/items/"+url.PathEscape(opt.ID), opt.Patch, &resp)
	if errors.Is(err, errNotFound) {
		return model.ChecklistItem{}, nil
	}
	if err != nil {
		c.l.Errorf(ctx, "remote.UpdateItem: %v", err)
		return model.ChecklistItem{}, fmt.Errorf("%w: %w", repository.ErrFailedToUpdate, err)
	}
	return resp.Item, nil
}
