package model

import "context"

// Environment names used by config and the HTTP server.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope identifies the authenticated actor of a request.
type Scope struct {
	UserID string
}

type scopeKey struct{}

// SetScopeToContext attaches sc to ctx.
func SetScopeToContext(ctx context.Context, sc Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

// GetScopeFromContext returns the scope set by SetScopeToContext.
func GetScopeFromContext(ctx context.Context) (Scope, bool) {
	sc, ok := ctx.Value(scopeKey{}).(Scope)
	if !ok || sc.UserID == "" {
		return Scope{}, false
	}
	return sc, true
}
