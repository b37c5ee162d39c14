package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	colorAccent  = "51"  // cyan, add control and drop marker
	colorDanger  = "196" // delete control
	colorDone    = "42"  // checked box
	colorMuted   = "241" // handles, hints, empty state
	colorText    = "252"
	colorSurface = "236" // dragged row background
)

type styles struct {
	Title    lipgloss.Style
	Input    lipgloss.Style
	AddBtn   lipgloss.Style
	Handle   lipgloss.Style
	Box      lipgloss.Style
	BoxDone  lipgloss.Style
	Label    lipgloss.Style
	Selected lipgloss.Style
	Dragged  lipgloss.Style
	Delete   lipgloss.Style
	Empty    lipgloss.Style
	Status   lipgloss.Style
}

// newStyles builds the palette for a theme name. Unknown names get "dark".
func newStyles(theme string) styles {
	if strings.EqualFold(theme, "mono") {
		plain := lipgloss.NewStyle()
		return styles{
			Title:    plain.Bold(true),
			Input:    plain,
			AddBtn:   plain.Bold(true),
			Handle:   plain,
			Box:      plain,
			BoxDone:  plain,
			Label:    plain,
			Selected: plain.Bold(true),
			Dragged:  plain.Reverse(true),
			Delete:   plain,
			Empty:    plain,
			Status:   plain,
		}
	}
	return styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")),
		Input: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorText)),
		AddBtn: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorAccent)),
		Handle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorMuted)),
		Box: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorText)),
		BoxDone: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorDone)),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorText)),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorAccent)),
		Dragged: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorAccent)).
			Background(lipgloss.Color(colorSurface)),
		Delete: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorDanger)),
		Empty: lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color(colorMuted)),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorMuted)),
	}
}
