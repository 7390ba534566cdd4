package http

import (
	"context"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gin-gonic/gin"

	"realtime-checklist/pkg/response"
)

const feedWriteTimeout = 5 * time.Second

// Feed godoc
// @Summary     Subscribe to checklist changes
// @Description Upgrades to a websocket streaming one JSON change event per message for the checklist
// @Description and its items. The token may be passed as access_token when headers cannot be set.
// @Tags        Checklist
// @Security    BearerAuth
// @Param       id           path  string true  "Checklist ID"
// @Param       access_token query string false "Bearer token"
// @Success     101 {object} model.ChangeEvent "Switching Protocols"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/checklists/{id}/feed [GET]
func (h *handler) Feed(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	sub, err := h.uc.Watch(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Watch: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	defer sub.Close()

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		h.l.Warnf(ctx, "delivery.Feed websocket.Accept: %v", err)
		return
	}
	defer conn.CloseNow()

	// Clients only listen; CloseRead answers control frames and ends ctx on disconnect.
	ctx = conn.CloseRead(ctx)
	h.l.Infof(ctx, "delivery.Feed: client subscribed to checklist %s", id)

	for {
		select {
		case <-ctx.Done():
			_ = conn.Close(websocket.StatusNormalClosure, "")
			return
		case ev, ok := <-sub.Events():
			if !ok {
				_ = conn.Close(websocket.StatusGoingAway, "feed closed")
				return
			}
			wctx, cancel := context.WithTimeout(ctx, feedWriteTimeout)
			err := wsjson.Write(wctx, conn, ev)
			cancel()
			if err != nil {
				h.l.Warnf(ctx, "delivery.Feed wsjson.Write: %v", err)
				return
			}
		}
	}
}
