package dto

import "github.com/google/uuid"

// Request DTOs

// ListWorkoutsQuery is the parsed query string of GET /workouts.
type ListWorkoutsQuery struct {
	Page       int      `query:"page" validate:"min=1"`
	Categories []string `query:"category" validate:"dive,oneof=c1 c2 c3 c4 c5 c6 c7"`
	StartDate  string   `query:"startDate" validate:"omitempty,yearmonth"`
}

// Response DTOs

type WorkoutResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	StartDate   string    `json:"startDate"`
}

type WorkoutListResponse struct {
	Workouts []WorkoutResponse `json:"workouts"`
	Total    int64             `json:"total"`
	PageSize int               `json:"pageSize"`
}
