package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != defaultBaseURL {
		t.Fatalf("base = %q, want %q", u.String(), defaultBaseURL)
	}

	u, err = parseBaseURL("api.example:9000/prefix?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" || u.Host != "api.example:9000" {
		t.Fatalf("base = %q, want http://api.example:9000", u.String())
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_ListWorkoutsPassesParams(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/workouts" {
			http.NotFound(w, r)
			return
		}
		gotQuery = r.URL.Query()
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"workouts":[{"id":"w-1","name":"Morning HIIT","description":"Short","category":"c3","startDate":"2026-10-05"}],"total":25,"pageSize":10}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	params := url.Values{}
	params.Set("page", "2")
	params.Set("category", "c3,c1")
	params.Set("startDate", "2026-10")

	list, err := c.ListWorkouts(context.Background(), params)
	if err != nil {
		t.Fatalf("ListWorkouts returned error: %v", err)
	}
	if gotQuery.Get("page") != "2" || gotQuery.Get("category") != "c3,c1" || gotQuery.Get("startDate") != "2026-10" {
		t.Fatalf("query = %v, want params passed through", gotQuery)
	}
	if list.Total != 25 || list.PageSize != 10 || len(list.Workouts) != 1 {
		t.Fatalf("list = %+v, want total=25 pageSize=10 one workout", list)
	}
	w := list.Workouts[0]
	if w.ID != "w-1" || w.Category != "c3" || w.StartDate.String() != "2026-10-05" {
		t.Fatalf("workout = %+v", w)
	}
	if !strings.HasPrefix(gotUserAgent, "workouts-browse/") {
		t.Fatalf("User-Agent = %q, want workouts-browse/*", gotUserAgent)
	}
}

func TestClient_ListWorkoutsEmptyPage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"workouts":null,"total":0,"pageSize":10}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	list, err := c.ListWorkouts(context.Background(), url.Values{"page": {"1"}})
	if err != nil {
		t.Fatalf("ListWorkouts returned error: %v", err)
	}
	if list.Workouts == nil || len(list.Workouts) != 0 {
		t.Fatalf("Workouts = %#v, want empty non-nil slice", list.Workouts)
	}
}

func TestClient_GetWorkout(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/workouts/abc":
			_ = json.NewEncoder(w).Encode(map[string]string{
				"id": "abc", "name": "Yoga Flow", "description": "Stretch", "category": "c1",
				"startDate": "2026-11-01T00:00:00Z",
			})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	workout, err := c.GetWorkout(context.Background(), "abc")
	if err != nil {
		t.Fatalf("GetWorkout returned error: %v", err)
	}
	if workout.Name != "Yoga Flow" || workout.StartDate.String() != "2026-11-01" {
		t.Fatalf("workout = %+v", workout)
	}

	_, err = c.GetWorkout(context.Background(), "missing")
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusNotFound {
		t.Fatalf("GetWorkout(missing) error = %v, want 404 StatusError", err)
	}

	if _, err := c.GetWorkout(context.Background(), " "); err == nil {
		t.Fatalf("GetWorkout(blank) returned nil error")
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	var healthy atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !healthy.Load() {
			http.Error(w, "nope", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("{not-json"))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.ListWorkouts(context.Background(), nil)
	if err == nil || !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("ListWorkouts error = %v, want status 500 error", err)
	}

	healthy.Store(true)
	_, err = c.ListWorkouts(context.Background(), nil)
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("ListWorkouts error = %v, want decode response error", err)
	}
}
