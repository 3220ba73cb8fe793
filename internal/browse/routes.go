package browse

import "strings"

// Route paths of the browser, matching the web client's address bar.
const (
	RouteList         = "/"
	routeDetailPrefix = "/workout/"
)

// Route identifies which view a path belongs to.
type Route int

const (
	RouteUnknown Route = iota
	RouteWorkoutList
	RouteWorkoutDetail
)

// WorkoutPath is the detail path of a workout id.
func WorkoutPath(id string) string {
	return routeDetailPrefix + id
}

// Match resolves a path to its route and, for detail paths, the workout id.
func Match(path string) (Route, string) {
	switch {
	case path == "" || path == RouteList:
		return RouteWorkoutList, ""
	case strings.HasPrefix(path, routeDetailPrefix):
		id := strings.Trim(strings.TrimPrefix(path, routeDetailPrefix), "/")
		if id == "" || strings.Contains(id, "/") {
			return RouteUnknown, ""
		}
		return RouteWorkoutDetail, id
	default:
		return RouteUnknown, ""
	}
}
