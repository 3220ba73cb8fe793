package repository

import (
	"context"
	"errors"

	"workout-catalog/internal/domain/entity"
	domainRepo "workout-catalog/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const createBatchSize = 100

type workoutRepository struct {
	db *gorm.DB
}

func NewWorkoutRepository(db *gorm.DB) domainRepo.WorkoutRepository {
	return &workoutRepository{db: db}
}

func (r *workoutRepository) filtered(ctx context.Context, filter *entity.WorkoutFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&entity.Workout{})
	if filter == nil {
		return query
	}
	if len(filter.Categories) > 0 {
		query = query.Where("category IN ?", filter.Categories)
	}
	if !filter.StartFrom.IsZero() {
		query = query.Where("start_date >= ?", filter.StartFrom)
	}
	if !filter.StartUntil.IsZero() {
		query = query.Where("start_date < ?", filter.StartUntil)
	}
	return query
}

func (r *workoutRepository) FindAll(ctx context.Context, filter *entity.WorkoutFilter, limit, offset int) ([]entity.Workout, int64, error) {
	var workouts []entity.Workout
	var total int64

	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// past the last page, or an offset that overflowed: skip the second round trip
	if offset < 0 || int64(offset) >= total {
		return []entity.Workout{}, total, nil
	}

	err := r.filtered(ctx, filter).
		Order("start_date ASC, name ASC").
		Limit(limit).
		Offset(offset).
		Find(&workouts).Error
	if err != nil {
		return nil, 0, err
	}

	return workouts, total, nil
}

func (r *workoutRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Workout, error) {
	var workout entity.Workout
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&workout).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &workout, nil
}

func (r *workoutRepository) CreateBatch(ctx context.Context, workouts []entity.Workout) error {
	if len(workouts) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(&workouts, createBatchSize).Error
}

func (r *workoutRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Workout{}).Count(&total).Error
	return total, err
}
