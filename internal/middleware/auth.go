package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"realtime-checklist/internal/model"
	"realtime-checklist/pkg/response"
)

// accessTokenQuery carries the token for clients that cannot set headers on a websocket handshake.
const accessTokenQuery = "access_token"

// Auth resolves the bearer token to a user and stores the scope in the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		userID, ok := m.tokens[token]
		if token == "" || !ok {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: rejected request to %s", c.FullPath())
			response.Unauthorized(c)
			return
		}

		ctx := model.SetScopeToContext(c.Request.Context(), model.Scope{UserID: userID})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return c.Query(accessTokenQuery)
}
