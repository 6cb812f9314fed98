package ports

import (
	"context"

	"github.com/activityhub/core/internal/domain/entities"
)

// ActivityRepository defines the interface for activity data operations.
// Reads report a miss as entities.ErrActivityNotFound. Writes report a
// statement that affected no rows as entities.ErrWriteConflict, except
// Delete, where a zero-row result means the record was already gone and
// is reported as entities.ErrActivityNotFound.
type ActivityRepository interface {
	Create(ctx context.Context, activity *entities.Activity) error
	GetByID(ctx context.Context, id string) (*entities.Activity, error)
	Update(ctx context.Context, activity *entities.Activity) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entities.Activity, error)

	// Seeding support
	IsEmpty(ctx context.Context) (bool, error)
	BulkInsert(ctx context.Context, activities []*entities.Activity) error
}
