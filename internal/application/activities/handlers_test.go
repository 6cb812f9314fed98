package activities

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/activityhub/core/internal/adapters/repository"
	"github.com/activityhub/core/internal/domain/entities"
	"github.com/activityhub/core/internal/infrastructure/logger"
	"github.com/activityhub/core/internal/ports"
)

func newTestRepo(t *testing.T) ports.ActivityRepository {
	t.Helper()
	return repository.NewMemoryActivityRepository()
}

func sampleCommand(id string) CreateCommand {
	return CreateCommand{
		ID:          id,
		Title:       "Run",
		Date:        time.Date(2024, 1, 1, 18, 0, 0, 0, time.UTC),
		Description: "after-work run",
		Category:    "sport",
		City:        "London",
		Venue:       "Hyde Park",
		Latitude:    51.5073,
		Longitude:   -0.1657,
	}
}

func TestCreateHandler_UsesSuppliedID(t *testing.T) {
	repo := newTestRepo(t)
	handler := NewCreateHandler(repo, logger.NewNop())

	id, err := handler.Handle(context.Background(), sampleCommand("1"))
	require.NoError(t, err)
	assert.Equal(t, "1", id)

	got, err := repo.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Run", got.Title)
	assert.Equal(t, "Hyde Park", got.Venue)
}

func TestCreateHandler_GeneratesIDWhenMissing(t *testing.T) {
	repo := newTestRepo(t)
	handler := NewCreateHandler(repo, logger.NewNop())

	id, err := handler.Handle(context.Background(), sampleCommand(""))
	require.NoError(t, err)

	_, err = uuid.Parse(id)
	assert.NoError(t, err)

	_, err = repo.GetByID(context.Background(), id)
	assert.NoError(t, err)
}

func TestCreateThenDetails_RoundTrips(t *testing.T) {
	repo := newTestRepo(t)
	create := NewCreateHandler(repo, logger.NewNop())
	details := NewDetailsHandler(repo, logger.NewNop())

	cmd := sampleCommand("1")
	_, err := create.Handle(context.Background(), cmd)
	require.NoError(t, err)

	got, err := details.Handle(context.Background(), DetailsQuery{ID: "1"})
	require.NoError(t, err)
	assert.Equal(t, cmd.Title, got.Title)
	assert.Equal(t, cmd.Date, got.Date)
	assert.Equal(t, cmd.Description, got.Description)
	assert.Equal(t, cmd.Category, got.Category)
	assert.Equal(t, cmd.City, got.City)
	assert.Equal(t, cmd.Venue, got.Venue)
	assert.Equal(t, cmd.Latitude, got.Latitude)
	assert.Equal(t, cmd.Longitude, got.Longitude)
}

func TestDetailsHandler_NotFound(t *testing.T) {
	handler := NewDetailsHandler(newTestRepo(t), logger.NewNop())

	_, err := handler.Handle(context.Background(), DetailsQuery{ID: "missing"})
	assert.ErrorIs(t, err, entities.ErrActivityNotFound)
}

func TestListHandler_ReflectsCreatesAndDeletes(t *testing.T) {
	repo := newTestRepo(t)
	create := NewCreateHandler(repo, logger.NewNop())
	del := NewDeleteHandler(repo, logger.NewNop())
	list := NewListHandler(repo, logger.NewNop())

	_, err := create.Handle(context.Background(), sampleCommand("1"))
	require.NoError(t, err)

	activities, err := list.Handle(context.Background(), ListQuery{})
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "1", activities[0].ID)

	_, err = del.Handle(context.Background(), DeleteCommand{ID: "1"})
	require.NoError(t, err)

	activities, err = list.Handle(context.Background(), ListQuery{})
	require.NoError(t, err)
	assert.Empty(t, activities)
}

func TestEditHandler_ReplacesAllFields(t *testing.T) {
	repo := newTestRepo(t)
	create := NewCreateHandler(repo, logger.NewNop())
	edit := NewEditHandler(repo, logger.NewNop())

	_, err := create.Handle(context.Background(), sampleCommand("1"))
	require.NoError(t, err)

	_, err = edit.Handle(context.Background(), EditCommand{
		ID:       "1",
		Title:    "Swim",
		Date:     time.Date(2024, 2, 1, 7, 0, 0, 0, time.UTC),
		Category: "sport",
		City:     "London",
		Venue:    "Serpentine Lido",
	})
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Swim", got.Title)
	assert.Equal(t, "Serpentine Lido", got.Venue)
	// Fields absent from the edit are cleared, not merged.
	assert.Empty(t, got.Description)
	assert.Zero(t, got.Latitude)
}

func TestEditHandler_RequiresExistingRecord(t *testing.T) {
	handler := NewEditHandler(newTestRepo(t), logger.NewNop())

	_, err := handler.Handle(context.Background(), EditCommand{ID: "missing", Title: "Run"})
	assert.ErrorIs(t, err, entities.ErrActivityNotFound)
}

func TestDeleteHandler_NotFound(t *testing.T) {
	handler := NewDeleteHandler(newTestRepo(t), logger.NewNop())

	_, err := handler.Handle(context.Background(), DeleteCommand{ID: "missing"})
	assert.ErrorIs(t, err, entities.ErrActivityNotFound)
}

func TestDeleteHandler_SecondDeleteIsNotFound(t *testing.T) {
	repo := newTestRepo(t)
	create := NewCreateHandler(repo, logger.NewNop())
	del := NewDeleteHandler(repo, logger.NewNop())

	_, err := create.Handle(context.Background(), sampleCommand("1"))
	require.NoError(t, err)

	_, err = del.Handle(context.Background(), DeleteCommand{ID: "1"})
	require.NoError(t, err)

	_, err = del.Handle(context.Background(), DeleteCommand{ID: "1"})
	assert.ErrorIs(t, err, entities.ErrActivityNotFound)
}
