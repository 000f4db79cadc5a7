package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// Presentation is something drawn above the page stack: a modal, dialog,
// popover or alert.
type Presentation interface {
	// Update handles a message while the presentation is on top. It reports
	// whether the message was consumed.
	Update(msg tea.Msg) (bool, tea.Cmd)
	// Render draws the presentation over base.
	Render(ctx RenderContext, base string) string
	Dismiss(animated bool) tea.Cmd
}

// Overlay is a presentation with the key that dismisses it. An empty
// Dismiss means only the presentation itself can close.
type Overlay struct {
	Presentation Presentation
	Dismiss      string
}

// IsDismissKey returns true if the given key string should dismiss this overlay.
func (o *Overlay) IsDismissKey(key string) bool {
	return o.Dismiss != "" && key == o.Dismiss
}

// OverlayStack manages a stack of overlays (topmost receives input first).
// Presented nodes are attached under Layer. Animate sets whether dismissals
// started from input (dismiss keys, alert buttons) fade out.
type OverlayStack struct {
	Stack   []Overlay
	Layer   *Node
	Animate bool
}

// NewOverlayStack creates a stack whose layer is attached under parent.
func NewOverlayStack(parent *Node) *OverlayStack {
	s := &OverlayStack{Layer: NewNode("overlays"), Animate: true}
	if parent != nil {
		_ = parent.AppendChild(s.Layer)
	}
	return s
}

// Push adds an overlay to the top of the stack.
func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

// Pop removes and returns the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top, true
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of overlays in the stack.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// Contains reports whether p is on the stack.
func (s *OverlayStack) Contains(p Presentation) bool {
	for _, o := range s.Stack {
		if o.Presentation == p {
			return true
		}
	}
	return false
}

// Remove takes p off the stack wherever it is.
func (s *OverlayStack) Remove(p Presentation) bool {
	for i, o := range s.Stack {
		if o.Presentation == p {
			s.Stack = append(s.Stack[:i], s.Stack[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateTop passes msg to the top overlay. A dismiss key dismisses it.
// Key messages are always consumed while an overlay is up.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := s.Stack[len(s.Stack)-1]
	if km, ok := msg.(tea.KeyMsg); ok && top.IsDismissKey(km.String()) {
		return top.Presentation.Dismiss(s.Animate), true
	}
	consumed, cmd := top.Presentation.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		consumed = true
	}
	return cmd, consumed
}

// Broadcast sends msg to every overlay, bottom first. Used for transition frames.
func (s *OverlayStack) Broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, o := range append([]Overlay(nil), s.Stack...) {
		if _, cmd := o.Presentation.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// Render draws every overlay over base, bottom first.
func (s *OverlayStack) Render(ctx RenderContext, base string) string {
	for _, o := range s.Stack {
		base = o.Presentation.Render(ctx, base)
	}
	return base
}

// Composite draws box over base with its top-left cell at (x, y).
func Composite(base, box string, x, y int) string {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	lines := strings.Split(base, "\n")
	boxLines := strings.Split(box, "\n")
	for len(lines) < y+len(boxLines) {
		lines = append(lines, "")
	}
	for i, bl := range boxLines {
		line := lines[y+i]
		w := ansi.StringWidth(line)
		left := ansi.Truncate(line, x, "")
		if w < x {
			left += strings.Repeat(" ", x-w)
		}
		right := ""
		if end := x + ansi.StringWidth(bl); end < w {
			right = ansi.TruncateLeft(line, end, "")
		}
		lines[y+i] = left + bl + right
	}
	return strings.Join(lines, "\n")
}
