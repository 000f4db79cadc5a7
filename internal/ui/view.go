package ui

import tea "github.com/charmbracelet/bubbletea"

// View is a message-driven region implementing Bubble Tea's Init/Update/View.
// A page's body is a View; it receives messages while the page is current.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
