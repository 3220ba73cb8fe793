package query

import (
	"slices"
	"strings"
	"time"
)

// Action is a user interaction on the workout list.
type Action interface {
	isAction()
}

// ToggleCategory adds Code to the category filter, or removes it when present.
type ToggleCategory struct{ Code string }

// SetStartMonth replaces the month filter; an empty Value clears it.
type SetStartMonth struct{ Value string }

// SetPage moves to Page. Bounds are enforced by the affordances, not here.
type SetPage struct{ Page int }

// ResetFilters clears every filter.
type ResetFilters struct{}

func (ToggleCategory) isAction() {}
func (SetStartMonth) isAction()  {}
func (SetPage) isAction()        {}
func (ResetFilters) isAction()   {}

// Reduce maps the current query and an action to the next query. Every filter
// change lands on page 1. q is never modified.
func Reduce(q Query, action Action) Query {
	next := q.clone()

	switch a := action.(type) {
	case ToggleCategory:
		code := strings.TrimSpace(a.Code)
		if code == "" {
			return next
		}
		if idx := slices.Index(next.Categories, code); idx >= 0 {
			next.Categories = slices.Delete(next.Categories, idx, idx+1)
		} else {
			next.Categories = append(next.Categories, code)
		}
		if len(next.Categories) == 0 {
			next.Categories = nil
		}
		next.Page = 1
	case SetStartMonth:
		next.StartMonth = strings.TrimSpace(a.Value)
		next.Page = 1
	case SetPage:
		next.Page = a.Page
	case ResetFilters:
		next = Default()
	}

	return next
}

// Bootstrap fills an empty month filter with the month of now, the default a
// freshly opened list starts from. It reports whether anything changed.
func Bootstrap(q Query, now time.Time) (Query, bool) {
	if q.StartMonth != "" {
		return q, false
	}
	next := q.clone()
	next.StartMonth = now.Format(MonthLayout)
	next.Page = 1
	return next, true
}
