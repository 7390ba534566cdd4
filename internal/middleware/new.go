package middleware

import (
	"realtime-checklist/config"
	"realtime-checklist/pkg/log"
)

type Middleware struct {
	l       log.Logger
	tokens  map[string]string // bearer token -> user id
	limiter *rateLimiter
}

func New(l log.Logger, authCfg config.AuthConfig, rlCfg config.RateLimitConfig) Middleware {
	tokens := make(map[string]string, len(authCfg.Tokens))
	for _, t := range authCfg.Tokens {
		tokens[t.Token] = t.UserID
	}

	return Middleware{
		l:       l,
		tokens:  tokens,
		limiter: newRateLimiter(rlCfg.RequestsPerMin),
	}
}
