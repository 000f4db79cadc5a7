package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Palette of the toolkit chrome, as ANSI 256 indexes. Page content such as
// the team panes picks its own colors.
const (
	ColorAccent    = "86"  // bar buttons, popover borders
	ColorHighlight = "205" // selection, dialog borders, toasts
	ColorDanger    = "196" // destructive alert buttons
	ColorMuted     = "241" // hints
	ColorText      = "252"
	ColorBar       = "236" // navigation bar and toolbar background
)

// Styles are the shared styles for bars, presenters and list rows.
var Styles = struct {
	Title    lipgloss.Style
	Bar      lipgloss.Style
	BarTitle lipgloss.Style

	Modal   lipgloss.Style
	Dialog  lipgloss.Style
	Popover lipgloss.Style

	Selected lipgloss.Style
	Muted    lipgloss.Style
	Normal   lipgloss.Style
	Hint     lipgloss.Style
	Danger   lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Bar: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorBar)),
	BarTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	Modal: lipgloss.NewStyle(),
	Dialog: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Popover: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Danger: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
}

// NewCompactListDelegate is a bubbles/list delegate drawn in the toolkit's
// row styles, one line per item.
func NewCompactListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = false
	d.Styles.SelectedTitle = Styles.Selected
	d.Styles.SelectedDesc = Styles.Selected
	d.Styles.NormalTitle = Styles.Normal
	d.Styles.NormalDesc = Styles.Muted
	return d
}
