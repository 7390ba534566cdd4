package usecase

import (
	"time"

	"github.com/go-playground/validator/v10"

	"realtime-checklist/internal/checklist"
	"realtime-checklist/internal/checklist/repository"
	pkgLog "realtime-checklist/pkg/log"
)

// Factory defaults applied when the caller leaves title or description empty.
const (
	DefaultTitle       = "Complete Website Audit"
	DefaultDescription = "Technical and UX audit of your website"
)

// batchConcurrency caps the in-flight updates of one batch.
const batchConcurrency = 16

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	actors   repository.ActorResolver
	validate *validator.Validate
	now      func() time.Time
}

// New creates a new checklist UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, actors repository.ActorResolver) checklist.UseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		actors:   actors,
		validate: validator.New(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}
