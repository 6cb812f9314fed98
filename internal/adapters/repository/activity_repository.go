package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/activityhub/core/internal/domain/entities"
	"github.com/activityhub/core/internal/ports"
)

// ActivityRepositoryImpl implements the ActivityRepository interface
// on top of a PostgreSQL activities table
type ActivityRepositoryImpl struct {
	db *sqlx.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *sqlx.DB) ports.ActivityRepository {
	return &ActivityRepositoryImpl{db: db}
}

func (r *ActivityRepositoryImpl) Create(ctx context.Context, activity *entities.Activity) error {
	query := `
		INSERT INTO activities (id, title, date, description, category, city, venue, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		activity.ID, activity.Title, activity.Date, activity.Description,
		activity.Category, activity.City, activity.Venue,
		activity.Latitude, activity.Longitude,
	).Scan(&activity.CreatedAt, &activity.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create activity: %w", err)
	}

	return nil
}

func (r *ActivityRepositoryImpl) GetByID(ctx context.Context, id string) (*entities.Activity, error) {
	query := `
		SELECT id, title, date, description, category, city, venue, latitude, longitude,
			created_at, updated_at
		FROM activities
		WHERE id = $1`

	var activity entities.Activity
	err := r.db.GetContext(ctx, &activity, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, entities.ErrActivityNotFound
		}
		return nil, fmt.Errorf("get activity by id: %w", err)
	}

	return &activity, nil
}

func (r *ActivityRepositoryImpl) Update(ctx context.Context, activity *entities.Activity) error {
	query := `
		UPDATE activities
		SET title = $2, date = $3, description = $4, category = $5, city = $6,
			venue = $7, latitude = $8, longitude = $9, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		activity.ID, activity.Title, activity.Date, activity.Description,
		activity.Category, activity.City, activity.Venue,
		activity.Latitude, activity.Longitude,
	)
	if err != nil {
		return fmt.Errorf("update activity: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return entities.ErrWriteConflict
	}

	return nil
}

func (r *ActivityRepositoryImpl) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM activities WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return entities.ErrActivityNotFound
	}

	return nil
}

func (r *ActivityRepositoryImpl) List(ctx context.Context) ([]*entities.Activity, error) {
	query := `
		SELECT id, title, date, description, category, city, venue, latitude, longitude,
			created_at, updated_at
		FROM activities
		ORDER BY created_at`

	activities := []*entities.Activity{}
	err := r.db.SelectContext(ctx, &activities, query)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	return activities, nil
}

func (r *ActivityRepositoryImpl) IsEmpty(ctx context.Context) (bool, error) {
	query := `SELECT COUNT(*) FROM activities`

	var count int64
	err := r.db.GetContext(ctx, &count, query)
	if err != nil {
		return false, fmt.Errorf("count activities: %w", err)
	}

	return count == 0, nil
}

func (r *ActivityRepositoryImpl) BulkInsert(ctx context.Context, activities []*entities.Activity) error {
	query := `
		INSERT INTO activities (id, title, date, description, category, city, venue, latitude, longitude)
		VALUES (:id, :title, :date, :description, :category, :city, :venue, :latitude, :longitude)`

	_, err := r.db.NamedExecContext(ctx, query, activities)
	if err != nil {
		return fmt.Errorf("bulk insert activities: %w", err)
	}

	return nil
}
