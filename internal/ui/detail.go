package ui

import (
	"errors"
	"net/http"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"workout-catalog/internal/browse"
	"workout-catalog/internal/client"
)

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) {
		return m.backToList()
	}
	return m, nil
}

// backToList pops the detail entry and mounts a fresh list controller, as a
// route remount does.
func (m Model) backToList() (tea.Model, tea.Cmd) {
	if !m.loc.Back() {
		m.loc.Replace(browse.RouteList, nil)
	}
	if route, _ := browse.Match(m.loc.Path()); route != browse.RouteWorkoutList {
		m.loc.Replace(browse.RouteList, nil)
	}

	m.route = browse.RouteWorkoutList
	m.detail = detailState{}
	m.selected = 0
	m.ctrl = m.newController()
	return m, fetchPageCmd(m.ctrl, m.ctrl.Activate())
}

func (m Model) renderDetail() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.Button.Render("← Back to list"))
	b.WriteString("\n\n")

	d := m.detail
	switch {
	case d.loading:
		b.WriteString(m.spinner.View() + " " + s.Muted.Render("Loading workout..."))
		b.WriteString("\n")
	case d.err != nil:
		var statusErr *client.StatusError
		if errors.As(d.err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			b.WriteString(s.Muted.Render("Workout not found."))
		} else {
			b.WriteString(s.Error.Render("Failed to load workout: " + d.err.Error()))
		}
		b.WriteString("\n")
	case d.workout != nil:
		w := d.workout
		b.WriteString(s.Title.Render(w.Name))
		b.WriteString("\n")
		b.WriteString(s.Muted.Render("Category: " + w.Category + " · Starts " + w.StartDate.String()))
		b.WriteString("\n\n")
		desc := s.Text
		if m.width > 4 {
			desc = desc.Width(m.width - 4)
		}
		b.WriteString(desc.Render(w.Description))
		b.WriteString("\n")
	}

	b.WriteString(s.Footer.Render(m.URL()))
	b.WriteString("\n")
	b.WriteString(m.help.View(detailHelp(m.keys)))
	return b.String()
}
