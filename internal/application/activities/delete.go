package activities

import (
	"context"

	"github.com/activityhub/core/internal/infrastructure/logger"
	"github.com/activityhub/core/internal/ports"
)

// DeleteCommand requests removal of an activity by id
type DeleteCommand struct {
	ID string
}

// DeleteHandler handles the delete command
type DeleteHandler struct {
	repo   ports.ActivityRepository
	logger *logger.Logger
}

// NewDeleteHandler creates a new delete handler
func NewDeleteHandler(repo ports.ActivityRepository, logger *logger.Logger) *DeleteHandler {
	return &DeleteHandler{repo: repo, logger: logger}
}

func (h *DeleteHandler) Handle(ctx context.Context, cmd DeleteCommand) (struct{}, error) {
	if err := h.repo.Delete(ctx, cmd.ID); err != nil {
		return struct{}{}, err
	}

	h.logger.Infow("Activity deleted", "activity_id", cmd.ID)

	return struct{}{}, nil
}
