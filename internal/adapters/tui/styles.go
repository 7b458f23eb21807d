package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	Panel      lipgloss.Style
	ActivePane lipgloss.Style
	Title      lipgloss.Style
	Selected   lipgloss.Style
	Done       lipgloss.Style
	Pending    lipgloss.Style
	Branch     lipgloss.Style
	Status     lipgloss.Style
	Help       lipgloss.Style
}

func newStyles(noColor bool) styles {
	s := styles{
		Panel:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()),
		ActivePane: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()),
		Title:      lipgloss.NewStyle().Bold(true),
		Selected:   lipgloss.NewStyle().Reverse(true),
		Done:       lipgloss.NewStyle(),
		Pending:    lipgloss.NewStyle(),
		Branch:     lipgloss.NewStyle(),
		Status:     lipgloss.NewStyle(),
		Help:       lipgloss.NewStyle(),
	}
	if noColor {
		return s
	}
	s.ActivePane = s.ActivePane.BorderForeground(lipgloss.Color("10"))
	s.Selected = s.Selected.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10")).Bold(true).Reverse(false)
	s.Done = s.Done.Foreground(lipgloss.Color("2"))
	s.Pending = s.Pending.Foreground(lipgloss.Color("8"))
	s.Branch = s.Branch.Foreground(lipgloss.Color("4"))
	s.Status = s.Status.Foreground(lipgloss.Color("3"))
	s.Help = s.Help.Foreground(lipgloss.Color("8"))
	return s
}
