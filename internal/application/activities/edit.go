package activities

import (
	"context"
	"time"

	"github.com/activityhub/core/internal/domain/entities"
	"github.com/activityhub/core/internal/infrastructure/logger"
	"github.com/activityhub/core/internal/ports"
)

// EditCommand requests a whole-record replace of an existing activity
type EditCommand struct {
	ID          string
	Title       string
	Date        time.Time
	Description string
	Category    string
	City        string
	Venue       string
	Latitude    float64
	Longitude   float64
}

// EditHandler handles the edit command
type EditHandler struct {
	repo   ports.ActivityRepository
	logger *logger.Logger
}

// NewEditHandler creates a new edit handler
func NewEditHandler(repo ports.ActivityRepository, logger *logger.Logger) *EditHandler {
	return &EditHandler{repo: repo, logger: logger}
}

func (h *EditHandler) Handle(ctx context.Context, cmd EditCommand) (struct{}, error) {
	// Edits require the record to exist, same as deletes.
	existing, err := h.repo.GetByID(ctx, cmd.ID)
	if err != nil {
		return struct{}{}, err
	}

	activity := &entities.Activity{
		ID:          existing.ID,
		Title:       cmd.Title,
		Date:        cmd.Date,
		Description: cmd.Description,
		Category:    cmd.Category,
		City:        cmd.City,
		Venue:       cmd.Venue,
		Latitude:    cmd.Latitude,
		Longitude:   cmd.Longitude,
	}

	if err := h.repo.Update(ctx, activity); err != nil {
		return struct{}{}, err
	}

	h.logger.Infow("Activity updated", "activity_id", cmd.ID)

	return struct{}{}, nil
}
