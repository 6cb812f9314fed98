package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/activityhub/core/internal/application/activities"
	"github.com/activityhub/core/internal/application/mediator"
	"github.com/activityhub/core/internal/domain/entities"
	"github.com/activityhub/core/internal/infrastructure/logger"
)

// ActivityRequest is the JSON payload for create and edit operations
type ActivityRequest struct {
	ID          string    `json:"id"`
	Title       string    `json:"title" validate:"required"`
	Date        time.Time `json:"date" validate:"required"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	City        string    `json:"city"`
	Venue       string    `json:"venue"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
}

// ActivityHandler translates HTTP requests into mediator requests and
// handler results into responses. All error-to-status mapping lives
// here; application handlers only return domain errors.
type ActivityHandler struct {
	dispatcher *mediator.Dispatcher
	logger     *logger.Logger
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(dispatcher *mediator.Dispatcher, logger *logger.Logger) *ActivityHandler {
	return &ActivityHandler{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// ListActivities handles listing all activities
func (h *ActivityHandler) ListActivities(c echo.Context) error {
	result, err := mediator.Send[[]*entities.Activity](c.Request().Context(), h.dispatcher, activities.ListQuery{})
	if err != nil {
		h.logger.Error("List activities failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to retrieve activities")
	}

	return c.JSON(http.StatusOK, result)
}

// GetActivity handles getting an activity by ID
func (h *ActivityHandler) GetActivity(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Activity ID is required")
	}

	result, err := mediator.Send[*entities.Activity](c.Request().Context(), h.dispatcher, activities.DetailsQuery{ID: id})
	if err != nil {
		if errors.Is(err, entities.ErrActivityNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Activity not found")
		}
		h.logger.Error("Get activity failed", "error", err, "activity_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to retrieve activity")
	}

	return c.JSON(http.StatusOK, result)
}

// CreateActivity handles activity creation
func (h *ActivityHandler) CreateActivity(c echo.Context) error {
	var req ActivityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := mediator.Send[string](c.Request().Context(), h.dispatcher, activities.CreateCommand{
		ID:          req.ID,
		Title:       req.Title,
		Date:        req.Date,
		Description: req.Description,
		Category:    req.Category,
		City:        req.City,
		Venue:       req.Venue,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		h.logger.Error("Create activity failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create activity")
	}

	return c.JSON(http.StatusOK, id)
}

// EditActivity handles a whole-record replace; the id travels in the body
func (h *ActivityHandler) EditActivity(c echo.Context) error {
	var req ActivityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if req.ID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Activity ID is required")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, err := mediator.Send[struct{}](c.Request().Context(), h.dispatcher, activities.EditCommand{
		ID:          req.ID,
		Title:       req.Title,
		Date:        req.Date,
		Description: req.Description,
		Category:    req.Category,
		City:        req.City,
		Venue:       req.Venue,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		if errors.Is(err, entities.ErrActivityNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Activity not found")
		}
		h.logger.Error("Edit activity failed", "error", err, "activity_id", req.ID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update activity")
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteActivity handles activity deletion
func (h *ActivityHandler) DeleteActivity(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Activity ID is required")
	}

	_, err := mediator.Send[struct{}](c.Request().Context(), h.dispatcher, activities.DeleteCommand{ID: id})
	if err != nil {
		if errors.Is(err, entities.ErrActivityNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Activity not found")
		}
		h.logger.Error("Delete activity failed", "error", err, "activity_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete activity")
	}

	return c.NoContent(http.StatusOK)
}
