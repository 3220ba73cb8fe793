package converter

import (
	"workout-catalog/internal/delivery/dto"
	"workout-catalog/internal/domain/entity"
)

const startDateLayout = "2006-01-02"

// WorkoutToResponse converts a Workout entity to WorkoutResponse DTO
func WorkoutToResponse(workout *entity.Workout) *dto.WorkoutResponse {
	if workout == nil {
		return nil
	}

	return &dto.WorkoutResponse{
		ID:          workout.ID,
		Name:        workout.Name,
		Description: workout.Description,
		Category:    string(workout.Category),
		StartDate:   workout.StartDate.Format(startDateLayout),
	}
}

// WorkoutsToResponses converts a slice of Workout entities; the result is never nil
func WorkoutsToResponses(workouts []entity.Workout) []dto.WorkoutResponse {
	responses := make([]dto.WorkoutResponse, len(workouts))
	for i := range workouts {
		responses[i] = *WorkoutToResponse(&workouts[i])
	}
	return responses
}
