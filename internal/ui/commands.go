package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"workout-catalog/internal/browse"
	"workout-catalog/internal/client"
)

// pageMsg carries a finished list fetch back to the controller that issued it.
type pageMsg struct {
	ctrl *browse.Controller
	done browse.Completion
}

// detailMsg carries a finished single-workout fetch.
type detailMsg struct {
	id      string
	workout *client.Workout
	err     error
}

func fetchPageCmd(ctrl *browse.Controller, req *browse.Request) tea.Cmd {
	if ctrl == nil || req == nil {
		return nil
	}
	return func() tea.Msg {
		return pageMsg{ctrl: ctrl, done: ctrl.Execute(req)}
	}
}

func fetchDetailCmd(ctx context.Context, fetcher client.WorkoutFetcher, id string) tea.Cmd {
	return func() tea.Msg {
		workout, err := fetcher.GetWorkout(ctx, id)
		return detailMsg{id: id, workout: workout, err: err}
	}
}
