// Package query holds the canonical list-view state of the workout catalog
// and the pure functions that derive, serialize and transform it.
//
// A Query is always derived from URL parameters, never stored beside them:
// every interaction maps the current Query to a new one (see Reduce) which the
// caller writes back to the address bar in a single step.
package query

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// URL and List Endpoint parameter names.
const (
	ParamPage      = "page"
	ParamCategory  = "category"
	ParamStartDate = "startDate"
)

// MonthLayout is the Go time layout of a start-month filter value.
const MonthLayout = "2006-01"

// Query is the filter and pagination state of the workout list.
type Query struct {
	Page       int
	Categories []string
	StartMonth string
}

// Default returns the query of a bare list URL.
func Default() Query {
	return Query{Page: 1}
}

// Parse derives a Query from URL parameters. Unparseable or non-positive pages
// fall back to 1, blank and repeated category codes are dropped.
func Parse(values url.Values) Query {
	q := Default()

	if raw := strings.TrimSpace(values.Get(ParamPage)); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page > 0 {
			q.Page = page
		}
	}

	for _, code := range strings.Split(values.Get(ParamCategory), ",") {
		code = strings.TrimSpace(code)
		if code == "" || slices.Contains(q.Categories, code) {
			continue
		}
		q.Categories = append(q.Categories, code)
	}

	q.StartMonth = strings.TrimSpace(values.Get(ParamStartDate))
	return q
}

// Values serializes q into shareable URL parameters: page is always present,
// category and startDate only when set.
func (q Query) Values() url.Values {
	values := url.Values{}
	page := q.Page
	if page < 1 {
		page = 1
	}
	values.Set(ParamPage, strconv.Itoa(page))
	if len(q.Categories) > 0 {
		values.Set(ParamCategory, strings.Join(q.Categories, ","))
	}
	if q.StartMonth != "" {
		values.Set(ParamStartDate, q.StartMonth)
	}
	return values
}

// Params returns the List Endpoint request parameters for q. The endpoint
// shares the address bar's parameter names, so this is the same encoding.
func (q Query) Params() url.Values {
	return q.Values()
}

// HasFilters reports whether a category or month filter is active.
func (q Query) HasFilters() bool {
	return len(q.Categories) > 0 || q.StartMonth != ""
}

// HasCategory reports whether code is part of the category filter.
func (q Query) HasCategory(code string) bool {
	return slices.Contains(q.Categories, code)
}

// Equal compares by value; category order is insignificant.
func (q Query) Equal(other Query) bool {
	if q.Page != other.Page || q.StartMonth != other.StartMonth {
		return false
	}
	if len(q.Categories) != len(other.Categories) {
		return false
	}
	for _, code := range q.Categories {
		if !other.HasCategory(code) {
			return false
		}
	}
	return true
}

// SameFilters reports whether q and other differ at most in their page.
func (q Query) SameFilters(other Query) bool {
	q.Page, other.Page = 0, 0
	return q.Equal(other)
}

// Key is a canonical rendering of q with categories sorted, equal for equal queries.
func (q Query) Key() string {
	categories := slices.Clone(q.Categories)
	slices.Sort(categories)
	return "page=" + strconv.Itoa(q.Page) +
		"&category=" + strings.Join(categories, ",") +
		"&startDate=" + q.StartMonth
}

func (q Query) clone() Query {
	q.Categories = slices.Clone(q.Categories)
	return q
}
