package httpserver

import (
	"context"

	checklistHTTP "realtime-checklist/internal/checklist/delivery/http"
	"realtime-checklist/internal/checklist/repository"
	checklistRepo "realtime-checklist/internal/checklist/repository/sqlite"
	checklistUC "realtime-checklist/internal/checklist/usecase"
	"realtime-checklist/internal/middleware"

	"github.com/gin-gonic/gin"
)

// setupChecklistDomain wires the checklist store, use case and handlers and registers their routes.
func (srv HTTPServer) setupChecklistDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository: SQLite store publishing to the change-feed hub
	repo := checklistRepo.New(srv.l, srv.db, srv.hub)

	// 2. UseCase: the actor is the authenticated user of each request
	uc := checklistUC.New(srv.l, repo, repository.ScopeResolver{})

	// 3. HTTP Handler
	h := checklistHTTP.New(srv.l, uc)

	// 4. Routes: /api/v1/me, /api/v1/checklists/..., /api/v1/items/...
	checklistHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Checklist domain registered")
	return nil
}
