package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"realtime-checklist/internal/checklist"
	"realtime-checklist/internal/model"
	"realtime-checklist/pkg/response"
)

// Me godoc
// @Summary     Current user
// @Description Returns the user id the bearer token resolves to.
// @Tags        Checklist
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} meResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/me [GET]
func (h *handler) Me(c *gin.Context) {
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok {
		response.Unauthorized(c)
		return
	}
	response.OK(c, meResp{UserID: sc.UserID})
}

// List godoc
// @Summary     List checklists
// @Description Returns the current user's checklists, newest first.
// @Tags        Checklist
// @Produce     json
// @Security    BearerAuth
// @Param       limit query int false "Page size (default: 20, max: 100)"
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/checklists [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Create godoc
// @Summary     Create a website audit checklist
// @Description Creates a checklist seeded with the website audit catalog. Title and description are optional.
// @Tags        Checklist
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq false "Checklist data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/checklists [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, createResp{ID: output.ID})
}

// Detail godoc
// @Summary     Get checklist detail
// @Description Returns a checklist with its ordered items and derived statistics.
// @Tags        Checklist
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Checklist ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/checklists/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	output, ok := h.detail(c)
	if !ok {
		return
	}
	response.OK(c, h.newDetailResp(output))
}

// Items godoc
// @Summary     List checklist items
// @Description Returns the items of a checklist ordered by sort order.
// @Tags        Checklist
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Checklist ID"
// @Success     200 {object} itemsResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/checklists/{id}/items [GET]
func (h *handler) Items(c *gin.Context) {
	output, ok := h.detail(c)
	if !ok {
		return
	}
	response.OK(c, h.newItemsResp(output))
}

// Stats godoc
// @Summary     Get checklist statistics
// @Description Returns progress, remaining time, and per-category and per-priority breakdowns.
// @Tags        Checklist
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Checklist ID"
// @Success     200 {object} checklist.Stats
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/checklists/{id}/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	output, ok := h.detail(c)
	if !ok {
		return
	}
	response.OK(c, output.Stats)
}

// Export godoc
// @Summary     Export a checklist
// @Description Exports the checklist with stats and summary as JSON, or as a markdown checklist.
// @Tags        Checklist
// @Produce     json
// @Produce     text/markdown
// @Security    BearerAuth
// @Param       id     path  string true  "Checklist ID"
// @Param       format query string false "json (default) or markdown"
// @Success     200 {object} checklist.Export
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/checklists/{id}/export [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, req.ID)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	if req.Format == formatMarkdown {
		md := checklist.RenderMarkdown(output.Checklist, output.Stats)
		c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(md))
		return
	}
	response.OK(c, checklist.BuildExport(output.Checklist, output.Stats, h.now()))
}

// Import godoc
// @Summary     Import checkbox states
// @Description Applies markdown checkbox states to the items whose titles they match.
// @Tags        Checklist
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string    true "Checklist ID"
// @Param       body body importReq true "Markdown content"
// @Success     200 {object} importResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Some updates failed"
// @Router      /api/v1/checklists/{id}/import [POST]
func (h *handler) Import(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processImportReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.ImportMarkdown(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ImportMarkdown: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newImportResp(output))
}

// Reset godoc
// @Summary     Reset a checklist
// @Description Un-completes every completed item, clearing completion stamps and notes.
// @Tags        Checklist
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Checklist ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Some updates failed"
// @Router      /api/v1/checklists/{id}/reset [POST]
func (h *handler) Reset(c *gin.Context) {
	h.bulk(c, "uc.ResetItems", h.uc.ResetItems)
}

// CompleteAll godoc
// @Summary     Complete every item
// @Description Completes every incomplete item. Notes are left as they are.
// @Tags        Checklist
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Checklist ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Some updates failed"
// @Router      /api/v1/checklists/{id}/complete-all [POST]
func (h *handler) CompleteAll(c *gin.Context) {
	h.bulk(c, "uc.CompleteItems", h.uc.CompleteItems)
}

// UpdateItem godoc
// @Summary     Update an item
// @Description Applies a partial update. Completion stamps are set server side when is_completed changes.
// @Tags        Checklist
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string          true "Item ID"
// @Param       body body model.ItemPatch true "Fields to update"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items/{id} [PATCH]
func (h *handler) UpdateItem(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateItemReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	item, err := h.uc.UpdateItem(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateItem: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, itemResp{Item: item})
}

// BatchUpdate godoc
// @Summary     Update several items
// @Description Issues every update concurrently. Fails with 409 if any of them failed; the others stay applied.
// @Tags        Checklist
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body batchReq true "Updates"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Some updates failed"
// @Router      /api/v1/items/batch [POST]
func (h *handler) BatchUpdate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processBatchReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	if err := h.uc.BatchUpdate(ctx, req.Entries); err != nil {
		h.l.Errorf(ctx, "uc.BatchUpdate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// detail loads the checklist named by the id param, reporting failures itself.
func (h *handler) detail(c *gin.Context) (checklist.DetailOutput, bool) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return checklist.DetailOutput{}, false
	}
	return output, true
}

// bulk runs a whole-checklist operation over the current items and responds with the new detail.
func (h *handler) bulk(c *gin.Context, op string, fn func(ctx context.Context, items []model.ChecklistItem) error) {
	ctx := c.Request.Context()

	before, ok := h.detail(c)
	if !ok {
		return
	}

	if err := fn(ctx, before.Checklist.Items); err != nil {
		h.l.Errorf(ctx, "%s: %v", op, err)
		response.Error(c, h.mapError(err))
		return
	}

	h.Detail(c)
}
