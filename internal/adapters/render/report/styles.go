package report

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	meta    lipgloss.Style
	warning lipgloss.Style
	section lipgloss.Style
	empty   lipgloss.Style
	border  lipgloss.Style
	column  lipgloss.Style
	name    lipgloss.Style
	cell    lipgloss.Style
	checked lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		meta:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section: lipgloss.NewStyle().MarginTop(1),
		empty:   lipgloss.NewStyle().Faint(true),
		border:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		column:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Padding(0, 1),
		name:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1),
		cell:    lipgloss.NewStyle().Align(lipgloss.Center).Padding(0, 1),
		checked: lipgloss.NewStyle().Align(lipgloss.Center).Padding(0, 1).Foreground(lipgloss.Color("159")),
	}
}
