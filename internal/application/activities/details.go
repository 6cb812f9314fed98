package activities

import (
	"context"

	"github.com/activityhub/core/internal/domain/entities"
	"github.com/activityhub/core/internal/infrastructure/logger"
	"github.com/activityhub/core/internal/ports"
)

// DetailsQuery requests a single activity by id
type DetailsQuery struct {
	ID string
}

// DetailsHandler handles the details query
type DetailsHandler struct {
	repo   ports.ActivityRepository
	logger *logger.Logger
}

// NewDetailsHandler creates a new details handler
func NewDetailsHandler(repo ports.ActivityRepository, logger *logger.Logger) *DetailsHandler {
	return &DetailsHandler{repo: repo, logger: logger}
}

func (h *DetailsHandler) Handle(ctx context.Context, query DetailsQuery) (*entities.Activity, error) {
	return h.repo.GetByID(ctx, query.ID)
}
