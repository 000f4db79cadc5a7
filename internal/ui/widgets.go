package ui

import (
	"cornscore/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// FocusMsg asks the app to move keyboard focus to a node.
type FocusMsg struct {
	Node *Node
}

// NewText creates a plain text component.
func NewText(text string) *Component {
	return MustComponent("text", Options{Text: text})
}

// ListItem is a tappable row in a List.
type ListItem struct {
	*Component
	label   string
	chevron bool
}

// NewListItem creates a row. A row with a tap handler shows a chevron.
func NewListItem(label string, onTap TapHandler) *ListItem {
	li := &ListItem{
		Component: MustComponent("list-item", Options{}),
		label:     label,
		chevron:   onTap != nil,
	}
	li.SetOnTap(onTap)
	li.node.Content = li.render
	return li
}

// Label returns the row text.
func (li *ListItem) Label() string { return li.label }

// SetLabel replaces the row text.
func (li *ListItem) SetLabel(s string) { li.label = s }

func (li *ListItem) render(width, _ int) string {
	if !li.chevron {
		return Styles.Normal.Render(li.label)
	}
	return Styles.Normal.Render(textutil.PadRight(li.label, width-2)) + Styles.Muted.Render(" ›")
}

// NewList stacks items vertically under an optional header.
func NewList(header string, items ...*ListItem) *Component {
	l := MustComponent("list", Options{MarginBottom: "1"})
	if header != "" {
		h := NewText(header)
		h.node.Style.Bold = true
		_ = l.AppendChild(h)
	}
	for _, it := range items {
		if it != nil {
			_ = l.AppendChild(it)
		}
	}
	return l
}

// Textfield is a single-line text input backed by bubbles/textinput. It
// takes keys while focused; tapping it requests focus.
type Textfield struct {
	*Component
	input    textinput.Model
	onChange func(value string) tea.Cmd
}

// NewTextfield creates a text field with a placeholder and character limit.
func NewTextfield(placeholder string, limit int) *Textfield {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if limit > 0 {
		ti.CharLimit = limit
	}
	ti.Prompt = "> "
	tf := &Textfield{Component: MustComponent("textfield", Options{BorderWidth: "1"}), input: ti}
	n := tf.node
	n.Content = func(width, _ int) string {
		tf.input.Width = max(0, width-len(tf.input.Prompt)-1)
		return tf.input.View()
	}
	n.SetOnTap(func(TapEvent) tea.Cmd {
		return func() tea.Msg { return FocusMsg{Node: n} }
	})
	n.SetFocusHandler(func(focused bool) {
		if focused {
			tf.input.Focus()
		} else {
			tf.input.Blur()
		}
	})
	n.SetKeyHandler(tf.handleKey)
	return tf
}

// Value returns the current text.
func (tf *Textfield) Value() string { return tf.input.Value() }

// SetValue replaces the text without firing the change handler.
func (tf *Textfield) SetValue(s string) { tf.input.SetValue(s) }

// Focused reports whether the field is taking input.
func (tf *Textfield) Focused() bool { return tf.input.Focused() }

// SetOnChange sets the handler run after each edit.
func (tf *Textfield) SetOnChange(fn func(value string) tea.Cmd) { tf.onChange = fn }

func (tf *Textfield) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if !tf.input.Focused() {
		return false, nil
	}
	switch msg.String() {
	case "tab", "shift+tab", "esc", "enter", "up", "down":
		return false, nil
	}
	before := tf.input.Value()
	var cmd tea.Cmd
	tf.input, cmd = tf.input.Update(msg)
	if v := tf.input.Value(); v != before && tf.onChange != nil {
		cmd = tea.Batch(cmd, tf.onChange(v))
	}
	return true, cmd
}
