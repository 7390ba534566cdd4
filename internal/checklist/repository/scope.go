package repository

import (
	"context"

	"realtime-checklist/internal/model"
)

// ScopeResolver resolves the actor from the request scope set by the auth middleware.
type ScopeResolver struct{}

// CurrentActor implements ActorResolver.
func (ScopeResolver) CurrentActor(ctx context.Context) (string, error) {
	sc, ok := model.GetScopeFromContext(ctx)
	if !ok {
		return "", nil
	}
	return sc.UserID, nil
}
