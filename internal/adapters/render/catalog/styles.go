package catalog

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	name     lipgloss.Style
	id       lipgloss.Style
	category lipgloss.Style
	detail   lipgloss.Style
	tag      lipgloss.Style
	heading  lipgloss.Style
	bullet   lipgloss.Style
	section  lipgloss.Style
	empty    lipgloss.Style
	count    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		name:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		id:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		category: lipgloss.NewStyle().Foreground(lipgloss.Color("44")),
		detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		tag:      lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		heading:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250")),
		bullet:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		section:  lipgloss.NewStyle().MarginTop(1),
		empty:    lipgloss.NewStyle().Faint(true),
		count:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
	}
}
