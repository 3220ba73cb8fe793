package ui

import "github.com/charmbracelet/lipgloss"

const (
	colorPrimary = "#E11D48"
	colorText    = "#E5E7EB"
	colorMuted   = "#9CA3AF"
	colorFaint   = "#4B5563"
	colorDanger  = "#F87171"
)

// styles holds the Lipgloss styles used by both routes.
type styles struct {
	Title      lipgloss.Style
	Label      lipgloss.Style
	Text       lipgloss.Style
	Muted      lipgloss.Style
	Faint      lipgloss.Style
	Error      lipgloss.Style
	Chip       lipgloss.Style
	ChipActive lipgloss.Style
	Name       lipgloss.Style
	Selected   lipgloss.Style
	Button     lipgloss.Style
	Footer     lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorPrimary)).
			MarginBottom(1),
		Label: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorText)),
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorText)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorMuted)),
		Faint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorFaint)),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorDanger)),
		Chip: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorMuted)).
			Padding(0, 1),
		ChipActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorPrimary)).
			Padding(0, 1),
		Name: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorText)),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorPrimary)),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorPrimary)),
		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorFaint)).
			MarginTop(1),
	}
}
