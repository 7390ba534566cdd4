package http

import (
	"github.com/gin-gonic/gin"

	"realtime-checklist/internal/checklist"
)

// processCreateReq binds the create checklist request body. An empty body uses the defaults.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processExportReq binds the export query and URI param. Format defaults to json.
func (h *handler) processExportReq(c *gin.Context) (exportReq, error) {
	var req exportReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.Format == "" {
		req.Format = formatJSON
	}
	return req, req.validate()
}

// processImportReq binds the import body and URI param.
func (h *handler) processImportReq(c *gin.Context) (importReq, error) {
	var req importReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	return req, nil
}

// processUpdateItemReq binds the partial item update body and URI param.
func (h *handler) processUpdateItemReq(c *gin.Context) (updateItemReq, error) {
	var req updateItemReq
	if err := c.ShouldBindJSON(&req.Patch); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.Patch.IsEmpty() {
		return req, checklist.ErrEmptyPatch
	}
	return req, nil
}

// processBatchReq binds the batch body.
func (h *handler) processBatchReq(c *gin.Context) (batchReq, error) {
	var req batchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
