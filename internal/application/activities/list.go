package activities

import (
	"context"

	"github.com/activityhub/core/internal/domain/entities"
	"github.com/activityhub/core/internal/infrastructure/logger"
	"github.com/activityhub/core/internal/ports"
)

// ListQuery requests all activities
type ListQuery struct{}

// ListHandler handles the list query
type ListHandler struct {
	repo   ports.ActivityRepository
	logger *logger.Logger
}

// NewListHandler creates a new list handler
func NewListHandler(repo ports.ActivityRepository, logger *logger.Logger) *ListHandler {
	return &ListHandler{repo: repo, logger: logger}
}

func (h *ListHandler) Handle(ctx context.Context, query ListQuery) ([]*entities.Activity, error) {
	return h.repo.List(ctx)
}
