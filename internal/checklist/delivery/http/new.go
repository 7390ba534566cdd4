package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"realtime-checklist/internal/checklist"
	"realtime-checklist/pkg/log"
)

// Handler is the public interface for the checklist HTTP delivery layer.
type Handler interface {
	Me(c *gin.Context)
	List(c *gin.Context)
	Create(c *gin.Context)
	Detail(c *gin.Context)
	Items(c *gin.Context)
	Stats(c *gin.Context)
	Export(c *gin.Context)
	Import(c *gin.Context)
	Reset(c *gin.Context)
	CompleteAll(c *gin.Context)
	Feed(c *gin.Context)
	UpdateItem(c *gin.Context)
	BatchUpdate(c *gin.Context)
}

type handler struct {
	l   log.Logger
	uc  checklist.UseCase
	now func() time.Time
}

// New creates a new HTTP handler for the checklist domain.
func New(l log.Logger, uc checklist.UseCase) Handler {
	return &handler{
		l:   l,
		uc:  uc,
		now: func() time.Time { return time.Now().UTC() },
	}
}
