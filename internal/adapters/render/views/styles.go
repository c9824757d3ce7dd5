package views

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	name     lipgloss.Style
	detail   lipgloss.Style
	price    lipgloss.Style
	faint    lipgloss.Style
	warning  lipgloss.Style
	success  lipgloss.Style
	section  lipgloss.Style
	empty    lipgloss.Style
	badge    lipgloss.Style
	marker   lipgloss.Style
	status   lipgloss.Style
	boxTitle lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		name:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		price:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		faint:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		warning:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		success:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
		section:  lipgloss.NewStyle().MarginTop(1),
		empty:    lipgloss.NewStyle().Faint(true),
		badge:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")),
		marker:   lipgloss.NewStyle().Foreground(lipgloss.Color("204")),
		status:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		boxTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")).MarginBottom(1),
	}
}
