package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Dialog is a bordered box centered over the current screen.
type Dialog struct {
	presenter
	container

	cancelable    bool
	width, height Dimension
}

// NewDialog creates a dismissed dialog that presents into host.
func NewDialog(host *OverlayStack) *Dialog {
	d := &Dialog{presenter: newPresenter("dialog", host)}
	d.container = container{owner: d, body: NewNode("dialog-body")}
	_ = d.node.AppendChild(d.body)
	d.willPresent = func() { d.showRoot(d.node.IsAttached()) }
	d.willDismiss = d.hideRoot
	return d
}

// Cancelable reports whether esc dismisses the dialog.
func (d *Dialog) Cancelable() bool { return d.cancelable }

// SetCancelable sets whether esc dismisses the dialog.
func (d *Dialog) SetCancelable(v bool) {
	d.cancelable = v
	if v {
		d.dismissKey = "esc"
	} else {
		d.dismissKey = ""
	}
}

// SetWidth sets the box width, e.g. "60%" or "40".
func (d *Dialog) SetWidth(v string) error {
	return report(d.reporter, setDimension("Dialog.SetWidth", &d.width, v, false))
}

// SetHeight sets the box height.
func (d *Dialog) SetHeight(v string) error {
	return report(d.reporter, setDimension("Dialog.SetHeight", &d.height, v, false))
}

// Root returns the root page, or nil.
func (d *Dialog) Root() *Page { return d.root }

// SetRoot sets the root page. It can be set once, and not after components.
func (d *Dialog) SetRoot(page *Page) error {
	return report(d.reporter, d.setRoot("Dialog.SetRoot", page))
}

// AddComponents adds components. Rejected once a root page is set.
func (d *Dialog) AddComponents(cs ...*Component) error {
	return report(d.reporter, d.addComponents("Dialog.AddComponents", cs))
}

// Present shows the dialog.
func (d *Dialog) Present(animated bool) (tea.Cmd, error) {
	return d.present("Dialog.Present", d, animated)
}

// Dismiss hides the dialog.
func (d *Dialog) Dismiss(animated bool) tea.Cmd {
	return d.dismiss(d, animated)
}

// Update implements Presentation.
func (d *Dialog) Update(msg tea.Msg) (bool, tea.Cmd) {
	if ok, cmd := d.frame(msg); ok {
		return true, cmd
	}
	if d.state == Dismissing {
		return true, nil
	}
	return false, d.updateRoot(msg)
}

func (d *Dialog) box(ctx RenderContext) string {
	w := d.width.Resolve(ctx.Width)
	if w <= 0 {
		w = min(ctx.Width-4, 50)
	}
	h := d.height.Resolve(ctx.Height)
	inner := ctx
	inner.Width = w - 4
	if h > 0 {
		inner.Height = h - 2
	} else {
		inner.Height = ctx.Height / 2
	}
	var out string
	if d.root != nil {
		out = d.root.Render(inner)
	} else {
		out = d.body.Render(inner)
	}
	s := Styles.Dialog.Width(w - 2)
	if h > 0 {
		s = s.Height(h - 2).MaxHeight(h)
	}
	if d.node.Style.Opacity < 0.5 {
		s = s.Faint(true)
	}
	return s.Render(out)
}

// Render implements Presentation.
func (d *Dialog) Render(ctx RenderContext, base string) string {
	if d.node.Style.Opacity <= 0 {
		return base
	}
	box := d.box(ctx)
	x := (ctx.Width - lipgloss.Width(box)) / 2
	y := (ctx.Height - lipgloss.Height(box)) / 2
	return Composite(base, box, x, y)
}
