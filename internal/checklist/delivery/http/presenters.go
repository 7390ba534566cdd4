package http

import (
	"realtime-checklist/internal/checklist"
	"realtime-checklist/internal/model"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100

	formatJSON     = "json"
	formatMarkdown = "markdown"
)

// --- Request DTOs ---

type createReq struct {
	Title       string `json:"title"       binding:"max=255"`
	Description string `json:"description" binding:"max=2000"`
}

func (r createReq) toInput() checklist.CreateInput {
	return checklist.CreateInput{
		Title:       r.Title,
		Description: r.Description,
	}
}

// ---

type listReq struct {
	Limit int `form:"limit"`
}

func (r listReq) toInput() checklist.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > maxListLimit {
		limit = defaultListLimit
	}
	return checklist.ListInput{Limit: limit}
}

// ---

type exportReq struct {
	ID     string `json:"-"`
	Format string `form:"format"`
}

func (r exportReq) validate() error {
	if r.Format != formatJSON && r.Format != formatMarkdown {
		return errInvalidFormat
	}
	return nil
}

// ---

type importReq struct {
	ID      string `json:"-"`
	Content string `json:"content" binding:"required"`
}

func (r importReq) toInput() checklist.ImportMarkdownInput {
	return checklist.ImportMarkdownInput{
		ChecklistID: r.ID,
		Content:     r.Content,
	}
}

// ---

type updateItemReq struct {
	ID    string
	Patch model.ItemPatch
}

func (r updateItemReq) toInput() checklist.UpdateItemInput {
	return checklist.UpdateItemInput{
		ItemID: r.ID,
		Patch:  r.Patch,
	}
}

// ---

type batchReq struct {
	Entries []checklist.BatchEntry `json:"entries" binding:"required,min=1"`
}

// --- Response DTOs ---

type meResp struct {
	UserID string `json:"user_id"`
}

type listResp struct {
	Checklists []model.Checklist `json:"checklists"`
}

func (h *handler) newListResp(out checklist.ListOutput) listResp {
	list := out.Checklists
	if list == nil {
		list = []model.Checklist{}
	}
	return listResp{Checklists: list}
}

type createResp struct {
	ID string `json:"id"`
}

type detailResp struct {
	Checklist model.Checklist `json:"checklist"`
	Stats     checklist.Stats `json:"stats"`
}

func (h *handler) newDetailResp(out checklist.DetailOutput) detailResp {
	return detailResp{Checklist: out.Checklist, Stats: out.Stats}
}

type itemsResp struct {
	Items []model.ChecklistItem `json:"items"`
}

func (h *handler) newItemsResp(out checklist.DetailOutput) itemsResp {
	items := out.Checklist.Items
	if items == nil {
		items = []model.ChecklistItem{}
	}
	return itemsResp{Items: items}
}

type itemResp struct {
	Item model.ChecklistItem `json:"item"`
}

type importResp struct {
	Matched int `json:"matched"`
	Updated int `json:"updated"`
}

func (h *handler) newImportResp(out checklist.ImportMarkdownOutput) importResp {
	return importResp{Matched: out.Matched, Updated: out.Updated}
}
