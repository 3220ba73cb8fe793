package ui

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"workout-catalog/internal/browse"
	"workout-catalog/internal/client"
)

var fixedNow = time.Date(2026, time.October, 14, 9, 30, 0, 0, time.UTC)

type fakeClient struct {
	mu       sync.Mutex
	calls    []string
	pages    map[string]*client.WorkoutList
	workouts map[string]*client.Workout
	err      error
}

func (f *fakeClient) ListWorkouts(_ context.Context, params url.Values) (*client.WorkoutList, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, params.Encode())
	if f.err != nil {
		return nil, f.err
	}
	if page, ok := f.pages[params.Encode()]; ok {
		return page, nil
	}
	return &client.WorkoutList{Workouts: []client.Workout{}, PageSize: 10}, nil
}

func (f *fakeClient) GetWorkout(_ context.Context, id string) (*client.Workout, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if w, ok := f.workouts[id]; ok {
		return w, nil
	}
	return nil, &client.StatusError{Path: "/workouts/" + id, StatusCode: http.StatusNotFound}
}

func (f *fakeClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func listPage(total int, names ...string) *client.WorkoutList {
	list := &client.WorkoutList{Workouts: []client.Workout{}, Total: total, PageSize: 10}
	for i, name := range names {
		list.Workouts = append(list.Workouts, client.Workout{
			ID:          fmt.Sprintf("id-%s", strings.ToLower(name)),
			Name:        name,
			Description: "Session " + name,
			Category:    fmt.Sprintf("c%d", i%7+1),
			StartDate:   client.Date{Time: time.Date(2026, time.October, i+1, 0, 0, 0, 0, time.UTC)},
		})
	}
	return list
}

func newTestModel(t *testing.T, rawURL string, fc *fakeClient) Model {
	t.Helper()
	loc, err := browse.ParseLocation(rawURL)
	if err != nil {
		t.Fatalf("ParseLocation(%q): %v", rawURL, err)
	}
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(Options{
		Client:   fc,
		Location: loc,
		Logger:   log,
		Now:      func() time.Time { return fixedNow },
	})
}

// run executes cmd and every command it leads to, feeding messages through Update.
func run(t *testing.T, m tea.Model, cmd tea.Cmd) Model {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		msg := next()
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		var follow tea.Cmd
		m, follow = m.Update(msg)
		queue = append(queue, follow)
	}
	return m.(Model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	return run(t, next, cmd)
}

func TestNew_BootstrapsStartMonth(t *testing.T) {
	fc := &fakeClient{pages: map[string]*client.WorkoutList{
		"page=1&startDate=2026-10": listPage(2, "Yoga", "Spin"),
	}}
	m := newTestModel(t, "/", fc)
	m = run(t, m, m.start())

	if got := m.URL(); got != "/?page=1&startDate=2026-10" {
		t.Fatalf("URL = %q, want /?page=1&startDate=2026-10", got)
	}
	if fc.callCount() != 1 {
		t.Fatalf("fetches = %d, want 1", fc.callCount())
	}
	view := m.View()
	for _, want := range []string{"Workout List", "Yoga", "Spin", "October 2026", "Page 1 of 1"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestNew_UnknownRouteShowsList(t *testing.T) {
	fc := &fakeClient{}
	m := newTestModel(t, "/nowhere?page=3&startDate=2026-11", fc)
	m = run(t, m, m.start())

	if m.route != browse.RouteWorkoutList {
		t.Fatalf("route = %v, want list", m.route)
	}
	if got := m.URL(); got != "/?page=3&startDate=2026-11" {
		t.Fatalf("URL = %q", got)
	}
}

func TestCategoryToggle(t *testing.T) {
	fc := &fakeClient{pages: map[string]*client.WorkoutList{
		"page=1&startDate=2026-10":             listPage(30, "A"),
		"category=c3&page=1&startDate=2026-10": listPage(1, "Cycling"),
	}}
	m := newTestModel(t, "/?page=2&startDate=2026-10", fc)
	m = run(t, m, m.start())

	m = press(t, m, runes("3"))
	if got := m.URL(); got != "/?category=c3&page=1&startDate=2026-10" {
		t.Fatalf("URL after toggle = %q", got)
	}
	st := m.ctrl.State()
	if len(st.Workouts) != 1 || st.Workouts[0].Name != "Cycling" {
		t.Fatalf("workouts = %+v, want Cycling", st.Workouts)
	}

	m = press(t, m, runes("3"))
	if got := m.URL(); got != "/?page=1&startDate=2026-10" {
		t.Fatalf("URL after second toggle = %q", got)
	}
}

func TestPagingBounds(t *testing.T) {
	fc := &fakeClient{pages: map[string]*client.WorkoutList{
		"page=1&startDate=2026-10": listPage(25, "One"),
		"page=2&startDate=2026-10": listPage(25, "Two"),
		"page=3&startDate=2026-10": listPage(25, "Three"),
	}}
	m := newTestModel(t, "/?page=1&startDate=2026-10", fc)
	m = run(t, m, m.start())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if fc.callCount() != 1 || m.ctrl.State().Query.Page != 1 {
		t.Fatalf("prev on page 1 moved: page %d, fetches %d", m.ctrl.State().Query.Page, fc.callCount())
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = press(t, m, runes("l"))
	if got := m.ctrl.State().Query.Page; got != 3 {
		t.Fatalf("page = %d, want 3", got)
	}
	if !strings.Contains(m.View(), "Page 3 of 3") {
		t.Fatalf("view missing Page 3 of 3:\n%s", m.View())
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if fc.callCount() != 3 {
		t.Fatalf("next on last page fetched: %d fetches, want 3", fc.callCount())
	}
	if got := m.URL(); got != "/?page=3&startDate=2026-10" {
		t.Fatalf("URL = %q", got)
	}
}

func TestResetFilters(t *testing.T) {
	fc := &fakeClient{}
	m := newTestModel(t, "/?category=c1,c2&page=4&startDate=2026-12", fc)
	m = run(t, m, m.start())

	m = press(t, m, runes("r"))
	if got := m.URL(); got != "/?page=1" {
		t.Fatalf("URL after reset = %q, want /?page=1", got)
	}
	before := fc.callCount()
	m = press(t, m, runes("r"))
	if fc.callCount() != before {
		t.Fatalf("reset without filters fetched again")
	}
	if strings.Contains(m.View(), "Reset Filters") {
		t.Fatalf("reset shown without active filters")
	}
}

func TestEmptyState(t *testing.T) {
	fc := &fakeClient{}
	m := newTestModel(t, "/?page=1&startDate=2026-10&category=c7", fc)
	m = run(t, m, m.start())

	view := m.View()
	if !strings.Contains(view, "No workouts found for these filters.") {
		t.Fatalf("view missing empty message:\n%s", view)
	}
	if !strings.Contains(view, "Page 1 of 1") {
		t.Fatalf("view missing Page 1 of 1:\n%s", view)
	}
}

func TestOutOfOrderCompletions(t *testing.T) {
	fc := &fakeClient{pages: map[string]*client.WorkoutList{
		"category=c1&page=1&startDate=2026-10":    listPage(1, "First"),
		"category=c1%2Cc2&page=1&startDate=2026-10": listPage(2, "Second", "Both"),
	}}
	m := newTestModel(t, "/?page=1&startDate=2026-10", fc)
	m = run(t, m, m.start())

	next, first := m.Update(runes("1"))
	next, second := next.Update(runes("2"))

	// the newer fetch lands first, the older one afterwards
	m = run(t, next, second)
	m = run(t, m, first)

	st := m.ctrl.State()
	if len(st.Workouts) != 2 || st.Workouts[0].Name != "Second" {
		t.Fatalf("workouts = %+v, want the c1,c2 page", st.Workouts)
	}
	if st.Loading {
		t.Fatalf("still loading after both completions")
	}
}

func TestMonthCycling(t *testing.T) {
	fc := &fakeClient{}
	m := newTestModel(t, "/?page=2&startDate=2026-10", fc)
	m = run(t, m, m.start())

	m = press(t, m, runes("m"))
	if got := m.URL(); got != "/?page=1&startDate=2026-11" {
		t.Fatalf("URL after next month = %q", got)
	}
	m = press(t, m, runes("M"))
	m = press(t, m, runes("M"))
	if got := m.URL(); got != "/?page=1" {
		t.Fatalf("URL after clearing month = %q, want /?page=1", got)
	}
	if !strings.Contains(m.View(), "All") {
		t.Fatalf("view missing All month label")
	}
	m = press(t, m, runes("M"))
	if got := m.URL(); got != "/?page=1&startDate=2027-09" {
		t.Fatalf("URL after wrapping = %q", got)
	}
}

func TestDetailOpenAndBack(t *testing.T) {
	list := listPage(2, "Yoga", "Spin")
	fc := &fakeClient{
		pages:    map[string]*client.WorkoutList{"page=1&startDate=2026-10": list},
		workouts: map[string]*client.Workout{"id-spin": &list.Workouts[1]},
	}
	m := newTestModel(t, "/?page=1&startDate=2026-10", fc)
	m = run(t, m, m.start())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.route != browse.RouteWorkoutDetail || m.ctrl != nil {
		t.Fatalf("route = %v, ctrl = %v; want detail without a controller", m.route, m.ctrl)
	}
	if got := m.URL(); got != "/workout/id-spin" {
		t.Fatalf("URL = %q", got)
	}
	if view := m.View(); !strings.Contains(view, "Spin") || !strings.Contains(view, "2026-10-02") {
		t.Fatalf("detail view:\n%s", view)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.route != browse.RouteWorkoutList || m.ctrl == nil {
		t.Fatalf("back did not remount the list")
	}
	if got := m.URL(); got != "/?page=1&startDate=2026-10" {
		t.Fatalf("URL after back = %q", got)
	}
	if fc.callCount() != 2 {
		t.Fatalf("fetches = %d, want 2 (remount refetches)", fc.callCount())
	}
}

func TestDetailNotFound(t *testing.T) {
	fc := &fakeClient{}
	m := newTestModel(t, "/workout/missing", fc)
	m = run(t, m, m.start())

	if !strings.Contains(m.View(), "Workout not found.") {
		t.Fatalf("view:\n%s", m.View())
	}

	// no history to pop: back lands on the bare list and bootstraps it
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if got := m.URL(); got != "/?page=1&startDate=2026-10" {
		t.Fatalf("URL = %q", got)
	}
}

func TestQuitReleasesController(t *testing.T) {
	fc := &fakeClient{pages: map[string]*client.WorkoutList{
		"page=1&startDate=2026-10": listPage(1, "Yoga"),
	}}
	m := newTestModel(t, "/", fc)
	m = run(t, m, m.start())

	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatalf("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("quit command did not quit")
	}
	if m.ctrl.State().HasResult {
		t.Fatalf("controller kept its page after quit")
	}
}
