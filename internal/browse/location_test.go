package browse

import (
	"net/url"
	"testing"
)

func TestParseLocation(t *testing.T) {
	loc, err := ParseLocation("http://localhost:5173/?page=2&category=c1,c3")
	if err != nil {
		t.Fatalf("ParseLocation returned error: %v", err)
	}
	if loc.Path() != "/" {
		t.Fatalf("Path = %q, want /", loc.Path())
	}
	if got := loc.Query().Get("category"); got != "c1,c3" {
		t.Fatalf("category = %q, want c1,c3", got)
	}

	empty, err := ParseLocation("")
	if err != nil {
		t.Fatalf("ParseLocation(\"\") returned error: %v", err)
	}
	if empty.String() != "/" {
		t.Fatalf("empty location = %q, want /", empty.String())
	}

	if _, err := ParseLocation("/?page=%zz"); err == nil {
		t.Fatalf("ParseLocation accepted a malformed query")
	}
}

func TestMemoryLocation_HistoryAndAtomicWrites(t *testing.T) {
	loc := NewMemoryLocation("/", url.Values{"page": {"1"}, "startDate": {"2026-10"}})

	loc.Push("/", url.Values{"page": {"2"}, "category": {"c1"}})
	if got := loc.String(); got != "/?category=c1&page=2" {
		t.Fatalf("after Push = %q", got)
	}
	if loc.Query().Get("startDate") != "" {
		t.Fatalf("Push kept a parameter from the previous entry")
	}

	loc.Push(WorkoutPath("abc"), nil)
	if loc.String() != "/workout/abc" || loc.Depth() != 3 {
		t.Fatalf("after detail Push = %q depth %d", loc.String(), loc.Depth())
	}

	if !loc.Back() || loc.String() != "/?category=c1&page=2" {
		t.Fatalf("after Back = %q", loc.String())
	}
	loc.Replace("/", url.Values{"page": {"5"}})
	if loc.String() != "/?page=5" || loc.Depth() != 2 {
		t.Fatalf("after Replace = %q depth %d", loc.String(), loc.Depth())
	}

	if !loc.Back() {
		t.Fatalf("Back with two entries returned false")
	}
	if loc.Back() {
		t.Fatalf("Back on the first entry returned true")
	}
}

func TestQueryIsACopy(t *testing.T) {
	loc := NewMemoryLocation("/", url.Values{"page": {"1"}})
	values := loc.Query()
	values.Set("page", "9")
	if loc.Query().Get("page") != "1" {
		t.Fatalf("mutating Query() result changed the location")
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		path  string
		route Route
		id    string
	}{
		{"/", RouteWorkoutList, ""},
		{"", RouteWorkoutList, ""},
		{"/workout/abc-123", RouteWorkoutDetail, "abc-123"},
		{"/workout/", RouteUnknown, ""},
		{"/workout/a/b", RouteUnknown, ""},
		{"/elsewhere", RouteUnknown, ""},
	}
	for _, tt := range tests {
		route, id := Match(tt.path)
		if route != tt.route || id != tt.id {
			t.Fatalf("Match(%q) = %v, %q; want %v, %q", tt.path, route, id, tt.route, tt.id)
		}
	}
}
