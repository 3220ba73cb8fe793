package query

import (
	"fmt"
	"time"
)

// Months lists n start-month values beginning with the month of now.
func Months(now time.Time, n int) []string {
	if n <= 0 {
		return nil
	}
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	months := make([]string, n)
	for i := range months {
		months[i] = first.AddDate(0, i, 0).Format(MonthLayout)
	}
	return months
}

// MonthLabel renders "2026-10" as "October 2026". Invalid values are returned unchanged.
func MonthLabel(value string) string {
	t, err := time.Parse(MonthLayout, value)
	if err != nil {
		return value
	}
	return t.Format("January 2006")
}

// ValidMonth reports whether value is a YYYY-MM month.
func ValidMonth(value string) bool {
	_, err := time.Parse(MonthLayout, value)
	return err == nil && len(value) == len(MonthLayout)
}

// MonthBounds returns the half-open range [start, end) covered by a YYYY-MM value in UTC.
func MonthBounds(value string) (time.Time, time.Time, error) {
	if !ValidMonth(value) {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month %q, use YYYY-MM", value)
	}
	start, _ := time.Parse(MonthLayout, value)
	return start, start.AddDate(0, 1, 0), nil
}

// TotalPages is ceil(total/pageSize), never less than 1.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}
