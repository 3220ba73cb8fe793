package client

import (
	"encoding/json"
	"fmt"
	"time"
)

// Workout mirrors a list or detail item returned by the API.
type Workout struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	StartDate   Date   `json:"startDate"`
}

// WorkoutList is one page of GET /workouts.
type WorkoutList struct {
	Workouts []Workout `json:"workouts"`
	Total    int       `json:"total"`
	PageSize int       `json:"pageSize"`
}

// Date is a calendar date. It accepts both YYYY-MM-DD and RFC 3339 timestamps.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(d.Format(dateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date: %w", err)
	}
	if raw == "" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(dateLayout, raw); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fmt.Errorf("date %q: %w", raw, err)
	}
	d.Time = t
	return nil
}

// String renders the date as YYYY-MM-DD, empty when unset.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}
