package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal covers the whole screen. It holds either one root page or a set
// of components.
type Modal struct {
	presenter
	container
}

// NewModal creates a dismissed modal that presents into host.
func NewModal(host *OverlayStack) *Modal {
	m := &Modal{presenter: newPresenter("modal", host)}
	m.container = container{owner: m, body: NewNode("modal-body")}
	_ = m.node.AppendChild(m.body)
	m.willPresent = func() { m.showRoot(m.node.IsAttached()) }
	m.willDismiss = m.hideRoot
	return m
}

// Root returns the root page, or nil.
func (m *Modal) Root() *Page { return m.root }

// SetRoot sets the root page. It can be set once, and not after components.
func (m *Modal) SetRoot(page *Page) error {
	return report(m.reporter, m.setRoot("Modal.SetRoot", page))
}

// AddComponents adds components. Rejected once a root page is set.
func (m *Modal) AddComponents(cs ...*Component) error {
	return report(m.reporter, m.addComponents("Modal.AddComponents", cs))
}

// Present shows the modal.
func (m *Modal) Present(animated bool) (tea.Cmd, error) {
	return m.present("Modal.Present", m, animated)
}

// Dismiss hides the modal and detaches it once hidden.
func (m *Modal) Dismiss(animated bool) tea.Cmd {
	return m.dismiss(m, animated)
}

// Update implements Presentation.
func (m *Modal) Update(msg tea.Msg) (bool, tea.Cmd) {
	if ok, cmd := m.frame(msg); ok {
		return true, cmd
	}
	if m.state == Dismissing {
		return true, nil
	}
	return false, m.updateRoot(msg)
}

// Render implements Presentation.
func (m *Modal) Render(ctx RenderContext, base string) string {
	var out string
	if m.root != nil {
		out = m.root.Render(ctx)
	} else {
		out = m.body.Render(ctx)
	}
	s := Styles.Modal.Width(ctx.Width).Height(ctx.Height).MaxHeight(ctx.Height)
	if m.node.Style.Opacity < 0.5 {
		s = s.Faint(true)
	}
	if m.node.Style.Opacity <= 0 {
		return base
	}
	return s.Render(lipgloss.PlaceVertical(ctx.Height, lipgloss.Top, out))
}
