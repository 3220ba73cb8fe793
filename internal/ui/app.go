package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"workout-catalog/internal/browse"
	"workout-catalog/internal/client"
	"workout-catalog/internal/query"
)

// monthChoices is how many upcoming months the picker offers after "All".
const monthChoices = 12

// Options configures the UI.
type Options struct {
	Context  context.Context
	Client   client.WorkoutFetcher
	Location browse.Location
	Logger   *logrus.Logger
	Now      func() time.Time
}

// detailState holds the detail route's fetch.
type detailState struct {
	id      string
	workout *client.Workout
	loading bool
	err     error
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx    context.Context
	client client.WorkoutFetcher
	loc    browse.Location
	log    *logrus.Logger
	now    func() time.Time

	// UI state
	keys    keyMap
	help    help.Model
	spinner spinner.Model
	styles  styles
	width   int
	height  int

	// Route state
	route    browse.Route
	ctrl     *browse.Controller
	selected int
	months   []string
	detail   detailState
}

// New creates the model and mounts the route the location points at.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	loc := opts.Location
	if loc == nil {
		loc = browse.NewMemoryLocation(browse.RouteList, nil)
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(colorPrimary))

	m := Model{
		ctx:     ctx,
		client:  opts.Client,
		loc:     loc,
		log:     log,
		now:     now,
		keys:    defaultKeyMap(),
		help:    help.New(),
		spinner: sp,
		styles:  defaultStyles(),
		months:  append([]string{""}, query.Months(now(), monthChoices)...),
	}

	route, id := browse.Match(loc.Path())
	switch route {
	case browse.RouteWorkoutDetail:
		m.route = route
		m.detail = detailState{id: id, loading: true}
	default:
		if route == browse.RouteUnknown {
			log.WithField("path", loc.Path()).Debug("Unknown route, showing workout list")
			loc.Replace(browse.RouteList, loc.Query())
		}
		m.route = browse.RouteWorkoutList
		m.ctrl = m.newController()
	}
	return m
}

func (m Model) newController() *browse.Controller {
	return browse.New(browse.Options{
		Context:  m.ctx,
		Location: m.loc,
		Fetcher:  m.client,
		Logger:   m.log,
		Now:      m.now,
	})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.start())
}

// start issues the first fetch of the mounted route.
func (m Model) start() tea.Cmd {
	if m.route == browse.RouteWorkoutDetail {
		return fetchDetailCmd(m.ctx, m.client, m.detail.id)
	}
	return fetchPageCmd(m.ctrl, m.ctrl.Activate())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pageMsg:
		// completions of a released controller are ignored by it
		msg.ctrl.Complete(msg.done)
		if msg.ctrl == m.ctrl {
			m.clampSelection()
		}
		return m, nil

	case detailMsg:
		if m.route == browse.RouteWorkoutDetail && msg.id == m.detail.id {
			m.detail.loading = false
			m.detail.workout = msg.workout
			m.detail.err = msg.err
			if msg.err != nil {
				m.log.WithError(msg.err).WithField("id", msg.id).Warn("Failed to fetch workout")
			}
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.route == browse.RouteWorkoutDetail {
		return m.renderDetail()
	}
	return m.renderList()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.ctrl != nil {
			m.ctrl.Release()
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.route == browse.RouteWorkoutDetail {
		return m.handleDetailKey(msg)
	}
	return m.handleListKey(msg)
}

// URL is the current shareable location.
func (m Model) URL() string {
	return m.loc.String()
}
