// Package tui provides the interactive chat shell for geminichat.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/geminichat/internal/render"
)

// Styles holds every lipgloss style used by the chat shell
type Styles struct {
	Header    lipgloss.Style
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Hint      lipgloss.Style
	Messages  lipgloss.Style
	UserLabel lipgloss.Style
	UserText  lipgloss.Style
	AILabel   lipgloss.Style
	AIText    lipgloss.Style
	Separator lipgloss.Style
	Error     lipgloss.Style
	ErrorHint lipgloss.Style
	Input     lipgloss.Style
	InputText lipgloss.Style
	Loading   lipgloss.Style
	StatusBar lipgloss.Style
	StatusKey lipgloss.Style
	Status    lipgloss.Style
	Welcome   lipgloss.Style
	Notice    lipgloss.Style

	Placeholder lipgloss.Style
}

// NewStyles builds the shell styles from a color theme
func NewStyles(theme render.TUITheme) Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 2),
		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),
		Subtitle: lipgloss.NewStyle().
			Foreground(theme.TextDim),
		Hint: lipgloss.NewStyle().
			Foreground(theme.TextMute).
			Italic(true),
		Messages: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
		UserLabel: lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true),
		UserText: lipgloss.NewStyle().
			Foreground(theme.Text),
		AILabel: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),
		AIText: lipgloss.NewStyle().
			Foreground(theme.Text),
		Separator: lipgloss.NewStyle().
			Foreground(theme.TextMute),
		Error: lipgloss.NewStyle().
			Foreground(theme.Error).
			Bold(true),
		ErrorHint: lipgloss.NewStyle().
			Foreground(theme.Warning).
			Italic(true),
		Input: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
		InputText: lipgloss.NewStyle().
			Foreground(theme.Text),
		Loading: lipgloss.NewStyle().
			Foreground(theme.Accent),
		StatusBar: lipgloss.NewStyle().
			Foreground(theme.TextDim),
		StatusKey: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),
		Status: lipgloss.NewStyle().
			Foreground(theme.TextDim),
		Welcome: lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Align(lipgloss.Center),
		Notice: lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Italic(true),
		Placeholder: lipgloss.NewStyle().
			Foreground(theme.TextDim),
	}
}
