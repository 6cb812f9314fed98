package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/activityhub/core/internal/domain/entities"
	"github.com/activityhub/core/internal/infrastructure/logger"
	"github.com/activityhub/core/internal/ports"
)

// Run loads the sample activities into the store when it is empty.
// A non-empty store is left untouched.
func Run(ctx context.Context, repo ports.ActivityRepository, logger *logger.Logger) error {
	empty, err := repo.IsEmpty(ctx)
	if err != nil {
		return fmt.Errorf("check store: %w", err)
	}

	if !empty {
		logger.Debug("Store already seeded, skipping")
		return nil
	}

	activities := Activities()
	if err := repo.BulkInsert(ctx, activities); err != nil {
		return fmt.Errorf("seed activities: %w", err)
	}

	logger.Infow("Seeded activities", "count", len(activities))

	return nil
}

// Activities returns the sample data set
func Activities() []*entities.Activity {
	now := time.Now().UTC().Truncate(time.Hour)

	return []*entities.Activity{
		{
			ID:          uuid.NewString(),
			Title:       "Past Activity 1",
			Date:        now.AddDate(0, -2, 0),
			Description: "Activity 2 months ago",
			Category:    "drinks",
			City:        "London",
			Venue:       "Pub",
		},
		{
			ID:          uuid.NewString(),
			Title:       "Past Activity 2",
			Date:        now.AddDate(0, -1, 0),
			Description: "Activity 1 month ago",
			Category:    "culture",
			City:        "Paris",
			Venue:       "Louvre",
			Latitude:    48.8606,
			Longitude:   2.3376,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Future Activity 1",
			Date:        now.AddDate(0, 1, 0),
			Description: "Activity 1 month in future",
			Category:    "culture",
			City:        "London",
			Venue:       "Natural History Museum",
			Latitude:    51.4967,
			Longitude:   -0.1764,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Future Activity 2",
			Date:        now.AddDate(0, 2, 0),
			Description: "Activity 2 months in future",
			Category:    "music",
			City:        "London",
			Venue:       "O2 Arena",
		},
		{
			ID:          uuid.NewString(),
			Title:       "Future Activity 3",
			Date:        now.AddDate(0, 3, 0),
			Description: "Activity 3 months in future",
			Category:    "drinks",
			City:        "London",
			Venue:       "Another pub",
		},
		{
			ID:          uuid.NewString(),
			Title:       "Future Activity 4",
			Date:        now.AddDate(0, 4, 0),
			Description: "Activity 4 months in future",
			Category:    "film",
			City:        "Berlin",
			Venue:       "Kino International",
			Latitude:    52.5205,
			Longitude:   13.4234,
		},
	}
}
