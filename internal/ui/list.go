package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"workout-catalog/internal/browse"
	"workout-catalog/internal/client"
	"workout-catalog/internal/domain/entity"
	"workout-catalog/internal/query"
)

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.ctrl.State()

	switch {
	case key.Matches(msg, m.keys.Category):
		idx := int(msg.String()[0] - '1')
		if idx < 0 || idx >= len(entity.AllCategories) {
			return m, nil
		}
		return m.dispatch(m.ctrl.ToggleCategory(string(entity.AllCategories[idx])))

	case key.Matches(msg, m.keys.NextMonth):
		return m.dispatch(m.ctrl.SetStartMonth(m.cycleMonth(st.Query.StartMonth, 1)))

	case key.Matches(msg, m.keys.PrevMonth):
		return m.dispatch(m.ctrl.SetStartMonth(m.cycleMonth(st.Query.StartMonth, -1)))

	case key.Matches(msg, m.keys.Reset):
		if !st.Query.HasFilters() {
			return m, nil
		}
		return m.dispatch(m.ctrl.ResetFilters())

	case key.Matches(msg, m.keys.PrevPage):
		if !st.CanPrev {
			return m, nil
		}
		return m.dispatch(m.ctrl.SetPage(st.Query.Page - 1))

	case key.Matches(msg, m.keys.NextPage):
		if !st.CanNext {
			return m, nil
		}
		return m.dispatch(m.ctrl.SetPage(st.Query.Page + 1))

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(st.Workouts)-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.Open):
		if m.selected < 0 || m.selected >= len(st.Workouts) {
			return m, nil
		}
		return m.openDetail(st.Workouts[m.selected].ID)
	}

	return m, nil
}

func (m Model) dispatch(req *browse.Request) (tea.Model, tea.Cmd) {
	if req == nil {
		return m, nil
	}
	m.selected = 0
	return m, fetchPageCmd(m.ctrl, req)
}

// openDetail leaves the list route: the controller is released and its page discarded.
func (m Model) openDetail(id string) (tea.Model, tea.Cmd) {
	m.ctrl.Release()
	m.ctrl = nil
	m.loc.Push(browse.WorkoutPath(id), nil)
	m.route = browse.RouteWorkoutDetail
	m.detail = detailState{id: id, loading: true}
	return m, fetchDetailCmd(m.ctx, m.client, id)
}

// cycleMonth steps through "All" and the upcoming months. A month outside the
// list counts as "All".
func (m Model) cycleMonth(current string, step int) string {
	idx := slices.Index(m.months, current)
	if idx < 0 {
		idx = 0
	}
	n := len(m.months)
	return m.months[((idx+step)%n+n)%n]
}

func (m *Model) clampSelection() {
	if m.ctrl == nil {
		return
	}
	n := len(m.ctrl.State().Workouts)
	if m.selected >= n {
		m.selected = max(n-1, 0)
	}
}

func (m Model) renderList() string {
	st := m.ctrl.State()
	s := m.styles
	var b strings.Builder

	b.WriteString(s.Title.Render("Workout List"))
	b.WriteString("\n")

	// Filters
	b.WriteString(s.Label.Render("Filter by Category:"))
	b.WriteString(" ")
	for i, code := range entity.AllCategories {
		chip := fmt.Sprintf("[%d] %s", i+1, code)
		if st.Query.HasCategory(string(code)) {
			b.WriteString(s.ChipActive.Render("● " + chip))
		} else {
			b.WriteString(s.Chip.Render("○ " + chip))
		}
	}
	b.WriteString("\n")

	b.WriteString(s.Label.Render("Start Date (Month):"))
	b.WriteString(" ")
	b.WriteString(s.Text.Render(monthText(st.Query.StartMonth)))
	b.WriteString("\n")

	if st.Query.HasFilters() {
		b.WriteString(s.Button.Render("[r] Reset Filters"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Body
	switch {
	case st.Loading && !st.HasResult:
		b.WriteString(m.spinner.View() + " " + s.Muted.Render("Loading workouts..."))
		b.WriteString("\n")
	case !st.HasResult && st.Err != nil:
		b.WriteString(s.Error.Render("Failed to load workouts: " + st.Err.Error()))
		b.WriteString("\n")
	case len(st.Workouts) == 0:
		b.WriteString(s.Muted.Italic(true).Render("No workouts found for these filters."))
		b.WriteString("\n")
	default:
		for i, w := range st.Workouts {
			b.WriteString(m.renderWorkoutItem(w, i == m.selected))
		}
		if st.Loading {
			b.WriteString(m.spinner.View() + " " + s.Muted.Render("Refreshing..."))
			b.WriteString("\n")
		}
		if st.Err != nil {
			b.WriteString(s.Error.Render("Failed to load workouts: " + st.Err.Error()))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	// Pagination
	b.WriteString(m.renderPager(st))
	b.WriteString("\n")

	b.WriteString(s.Footer.Render(m.URL()))
	b.WriteString("\n")
	b.WriteString(m.help.View(listHelp(m.pagerKeys(st))))
	return b.String()
}

func (m Model) renderWorkoutItem(w client.Workout, selected bool) string {
	s := m.styles
	cursor := "  "
	name := s.Name.Render(w.Name)
	if selected {
		cursor = s.Selected.Render("› ")
		name = s.Selected.Render(w.Name)
	}
	var b strings.Builder
	b.WriteString(cursor + name + "\n")
	if desc := Excerpt(w.Description); desc != "" {
		b.WriteString("    " + s.Text.Render(desc) + "\n")
	}
	b.WriteString("    " + s.Muted.Render(fmt.Sprintf("Category: %s · %s", w.Category, w.StartDate)) + "\n")
	return b.String()
}

func (m Model) renderPager(st browse.State) string {
	s := m.styles
	prev := s.Faint.Render("‹ Prev")
	if st.CanPrev {
		prev = s.Button.Render("‹ Prev")
	}
	next := s.Faint.Render("Next ›")
	if st.CanNext {
		next = s.Button.Render("Next ›")
	}
	page := s.Text.Render(fmt.Sprintf("Page %d of %d", st.Query.Page, st.TotalPages))
	return prev + "   " + page + "   " + next
}

// pagerKeys disables the page bindings that would leave [1, totalPages].
func (m Model) pagerKeys(st browse.State) keyMap {
	keys := m.keys
	keys.PrevPage.SetEnabled(st.CanPrev)
	keys.NextPage.SetEnabled(st.CanNext)
	keys.Reset.SetEnabled(st.Query.HasFilters())
	return keys
}

func monthText(value string) string {
	if value == "" {
		return "All"
	}
	return query.MonthLabel(value)
}
