package activities

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/activityhub/core/internal/domain/entities"
	"github.com/activityhub/core/internal/infrastructure/logger"
	"github.com/activityhub/core/internal/ports"
)

// CreateCommand requests creation of a new activity. When ID is empty
// a uuid is generated for the record.
type CreateCommand struct {
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

// CreateHandler handles the create command
type CreateHandler struct {
	repo   ports.ActivityRepository
	logger *logger.Logger
}

// NewCreateHandler creates a new create handler
func NewCreateHandler(repo ports.ActivityRepository, logger *logger.Logger) *CreateHandler {
	return &CreateHandler{repo: repo, logger: logger}
}

func (h *CreateHandler) Handle(ctx context.Context, cmd CreateCommand) (string, error) {
	id := cmd.ID
	if id == "" {
		id = uuid.NewString()
	}

	activity := &entities.Activity{
		ID:          id,
		Title:       cmd.Title,
		Date:        cmd.Date,
		Description: cmd.Description,
		Category:    cmd.Category,
		City:        cmd.City,
		Venue:       cmd.Venue,
		Latitude:    cmd.Latitude,
		Longitude:   cmd.Longitude,
	}

	if err := h.repo.Create(ctx, activity); err != nil {
		return "", err
	}

	h.logger.Infow("Activity created", "activity_id", id, "title", cmd.Title)

	return id, nil
}
