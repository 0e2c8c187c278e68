package cmd

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// styles are bound to the writer they render for, so output that is not a
// terminal stays plain.
type styles struct {
	title   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	detail  lipgloss.Style
	hint    lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(colorPrimary),
		success: r.NewStyle().Bold(true).Foreground(colorSecondary),
		failure: r.NewStyle().Bold(true).Foreground(colorError),
		detail:  r.NewStyle(),
		hint:    r.NewStyle().Foreground(colorMuted).Italic(true),
	}
}
