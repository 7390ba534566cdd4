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

// CurrentActor asks the API who the access token belongs to. A rejected token means nobody.
func (c *Client) CurrentActor(ctx context.Context) (string, error) {
	var me struct {
		UserID string `json:"user_id"`
	}
	err := c.do(ctx, http.MethodGet, "/api/v1/me", nil, &me)
	if errors.Is(err, errUnauthorized) {
		return "", nil
	}
	if err != nil {
		c.l.Errorf(ctx, "remote.CurrentActor: %v", err)
		return "", err
	}
	return me.UserID, nil
}

// GetChecklist reads the checklist row. Items are left empty; use ListItems.
func (c *Client) GetChecklist(ctx context.Context, id string) (model.Checklist, error) {
	var detail struct {
		Checklist model.Checklist `json:"checklist"`
	}
	err := c.do(ctx, http.MethodGet, "/api/v1/checklists/"+url.PathEscape(id), nil, &detail)
	if errors.Is(err, errNotFound) {
		return model.Checklist{}, nil
	}
	if err != nil {
		c.l.Errorf(ctx, "remote.GetChecklist: %v", err)
		return model.Checklist{}, fmt.Errorf("%w: %w", repository.ErrFailedToGet, err)
	}

	detail.Checklist.Items = nil
	return detail.Checklist, nil
}

// ListChecklists lists the token owner's checklists. opt.UserID is not sent:
// the server always lists for the authenticated user.
func (c *Client) ListChecklists(ctx context.Context, opt repository.ListChecklistsOptions) ([]model.Checklist, error) {
	path := "/api/v1/checklists"
	if opt.Limit > 0 {
		path += fmt.Sprintf("?limit=%d", opt.Limit)
	}

	var list struct {
		Checklists []model.Checklist `json:"checklists"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &list); err != nil {
		c.l.Errorf(ctx, "remote.ListChecklists: %v", err)
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
	}
	return list.Checklists, nil
}

// CreateChecklistWithItems runs the server-side factory. The owner is the token's user.
func (c *Client) CreateChecklistWithItems(ctx context.Context, opt repository.CreateChecklistOptions) (string, error) {
	body := struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}{Title: opt.Title, Description: opt.Description}

	var created struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/checklists", body, &created); err != nil {
		c.l.Errorf(ctx, "remote.CreateChecklistWithItems: %v", err)
		return "", fmt.Errorf("%w: %w", repository.ErrFailedToInsert, err)
	}
	return created.ID, nil
}
