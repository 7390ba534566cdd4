package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"realtime-checklist/config"
	"realtime-checklist/internal/checklist/feed"
	"realtime-checklist/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Checklist domain
	db        *sql.DB
	hub       *feed.Hub
	auth      config.AuthConfig
	rateLimit config.RateLimitConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Checklist domain
	DB        *sql.DB
	Hub       *feed.Hub
	Auth      config.AuthConfig
	RateLimit config.RateLimitConfig
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		db:          cfg.DB,
		hub:         cfg.Hub,
		auth:        cfg.Auth,
		rateLimit:   cfg.RateLimit,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.hub == nil {
		return errors.New("feed hub is required")
	}
	return nil
}
