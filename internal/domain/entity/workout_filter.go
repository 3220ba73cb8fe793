package entity

import "time"

// WorkoutFilter is a domain-level filter for listing workouts.
// Zero values mean "no filter".
type WorkoutFilter struct {
	Categories []Category
	StartFrom  time.Time // inclusive
	StartUntil time.Time // exclusive
}
