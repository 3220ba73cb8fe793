package repository

import (
	"context"

	"workout-catalog/internal/domain/entity"

	"github.com/google/uuid"
)

type WorkoutRepository interface {
	FindAll(ctx context.Context, filter *entity.WorkoutFilter, limit, offset int) ([]entity.Workout, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Workout, error)
	CreateBatch(ctx context.Context, workouts []entity.Workout) error
	Count(ctx context.Context) (int64, error)
}
