package repository

import (
	"context"
	"sync"
	"time"

	"github.com/activityhub/core/internal/domain/entities"
	"github.com/activityhub/core/internal/ports"
)

// MemoryActivityRepository implements the ActivityRepository interface
// with an in-process map. It backs the memory database driver and keeps
// records in insertion order.
type MemoryActivityRepository struct {
	mu         sync.RWMutex
	activities map[string]*entities.Activity
	order      []string
}

// NewMemoryActivityRepository creates a new in-memory activity repository
func NewMemoryActivityRepository() *MemoryActivityRepository {
	return &MemoryActivityRepository{
		activities: make(map[string]*entities.Activity),
	}
}

var _ ports.ActivityRepository = (*MemoryActivityRepository)(nil)

func (r *MemoryActivityRepository) Create(ctx context.Context, activity *entities.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.activities[activity.ID]; exists {
		return entities.ErrWriteConflict
	}

	now := time.Now()
	activity.CreatedAt = now
	activity.UpdatedAt = now

	stored := *activity
	r.activities[activity.ID] = &stored
	r.order = append(r.order, activity.ID)

	return nil
}

func (r *MemoryActivityRepository) GetByID(ctx context.Context, id string) (*entities.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activity, ok := r.activities[id]
	if !ok {
		return nil, entities.ErrActivityNotFound
	}

	found := *activity
	return &found, nil
}

func (r *MemoryActivityRepository) Update(ctx context.Context, activity *entities.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.activities[activity.ID]
	if !ok {
		return entities.ErrWriteConflict
	}

	stored := *activity
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = time.Now()
	r.activities[activity.ID] = &stored

	return nil
}

func (r *MemoryActivityRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.activities[id]; !ok {
		return entities.ErrActivityNotFound
	}

	delete(r.activities, id)
	for i, storedID := range r.order {
		if storedID == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}

func (r *MemoryActivityRepository) List(ctx context.Context) ([]*entities.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activities := make([]*entities.Activity, 0, len(r.order))
	for _, id := range r.order {
		found := *r.activities[id]
		activities = append(activities, &found)
	}

	return activities, nil
}

func (r *MemoryActivityRepository) IsEmpty(ctx context.Context) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.activities) == 0, nil
}

func (r *MemoryActivityRepository) BulkInsert(ctx context.Context, activities []*entities.Activity) error {
	for _, activity := range activities {
		if err := r.Create(ctx, activity); err != nil {
			return err
		}
	}

	return nil
}
