package http

import (
	"realtime-checklist/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route requires a bearer token and is rate limited per user.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.GET("/me", mw.Auth(), mw.RateLimit(), h.Me)

	checklists := rg.Group("/checklists", mw.Auth(), mw.RateLimit())
	{
		checklists.GET("", h.List)
		checklists.POST("", h.Create)
		checklists.GET("/:id", h.Detail)
		checklists.GET("/:id/items", h.Items)
		checklists.GET("/:id/stats", h.Stats)
		checklists.GET("/:id/export", h.Export)
		checklists.POST("/:id/import", h.Import)
		checklists.POST("/:id/reset", h.Reset)
		checklists.POST("/:id/complete-all", h.CompleteAll)
		checklists.GET("/:id/feed", h.Feed)
	}

	items := rg.Group("/items", mw.Auth(), mw.RateLimit())
	{
		items.POST("/batch", h.BatchUpdate)
		items.PATCH("/:id", h.UpdateItem)
	}
}
