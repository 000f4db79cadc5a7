package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AlertButton is one choice in an AlertDialog.
type AlertButton struct {
	Text  string
	Color string
	OnTap func() tea.Cmd
}

// AlertDialog asks a question with a row of buttons. Left and right move
// the selection; enter taps the selected button. Any tap dismisses.
type AlertDialog struct {
	*Dialog

	title    *Component
	message  *Component
	row      *Node
	buttons  []AlertButton
	nodes    []*Component
	selected int
}

// NewAlertDialog creates an alert with a title, a message and buttons.
// With no buttons a single "OK" is shown.
func NewAlertDialog(host *OverlayStack, title, message string, buttons ...AlertButton) *AlertDialog {
	if len(buttons) == 0 {
		buttons = []AlertButton{{Text: "OK"}}
	}
	a := &AlertDialog{
		Dialog:  NewDialog(host),
		title:   MustComponent("alert-title", Options{Text: title}),
		message: MustComponent("alert-message", Options{Text: message, MarginTop: "1", MarginBottom: "1"}),
		row:     NewNode("alert-buttons"),
	}
	a.title.node.Style.Bold = true
	a.title.node.Style.Align = lipgloss.Center
	a.message.node.Style.Align = lipgloss.Center
	a.row.Layout = LayoutHorizontal
	a.buttons = buttons
	for i, b := range buttons {
		c := MustComponent("alert-button", Options{Text: " " + b.Text + " ", MarginLeft: "1", MarginRight: "1"})
		if b.Color != "" {
			if err := c.SetForeground(b.Color); err != nil {
				report(a.reporter, err)
			}
		}
		c.SetOnTap(func(TapEvent) tea.Cmd {
			a.selected = i
			return a.tap()
		})
		a.nodes = append(a.nodes, c)
		_ = a.row.AppendChild(c)
	}
	row := MustComponent("alert-actions", Options{})
	row.node.Style.Align = lipgloss.Center
	_ = row.AppendChild(a.row)
	_ = a.AddComponents(a.title, a.message, row)
	a.SetCancelable(false)
	return a
}

// Title returns the title text.
func (a *AlertDialog) Title() string { return a.title.Text() }

// Message returns the message text.
func (a *AlertDialog) Message() string { return a.message.Text() }

// Buttons returns the button definitions.
func (a *AlertDialog) Buttons() []AlertButton { return a.buttons }

// Selected returns the index of the selected button.
func (a *AlertDialog) Selected() int { return a.selected }

func (a *AlertDialog) tap() tea.Cmd {
	b := a.buttons[a.selected]
	cmds := []tea.Cmd{a.Dismiss(a.host.Animate)}
	if b.OnTap != nil {
		cmds = append(cmds, b.OnTap())
	}
	return tea.Batch(cmds...)
}

// Update implements Presentation.
func (a *AlertDialog) Update(msg tea.Msg) (bool, tea.Cmd) {
	if ok, cmd := a.frame(msg); ok {
		return true, cmd
	}
	if a.state == Dismissing {
		return true, nil
	}
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	switch km.String() {
	case "left", "h", "shift+tab":
		if a.selected > 0 {
			a.selected--
		}
	case "right", "l", "tab":
		if a.selected < len(a.buttons)-1 {
			a.selected++
		}
	case "enter", " ":
		return true, a.tap()
	case "esc":
		if a.cancelable {
			return true, a.Dismiss(a.host.Animate)
		}
	}
	return true, nil
}

// Render implements Presentation.
func (a *AlertDialog) Render(ctx RenderContext, base string) string {
	for i, c := range a.nodes {
		if i == a.selected {
			c.node.Style.Background = ColorHighlight
		} else {
			c.node.Style.Background = ""
		}
	}
	return a.Dialog.Render(ctx, base)
}

// Dismiss hides the alert.
func (a *AlertDialog) Dismiss(animated bool) tea.Cmd {
	return a.dismiss(a, animated)
}

// Present shows the alert with the first button selected.
func (a *AlertDialog) Present(animated bool) (tea.Cmd, error) {
	a.selected = 0
	return a.present("AlertDialog.Present", a, animated)
}
