package ui

import (
	"strconv"
	"strings"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// Layout is the direction a node stacks its children in.
type Layout int

const (
	LayoutVertical Layout = iota
	LayoutHorizontal
)

// Style is the presentation state of a node.
type Style struct {
	Width, Height Dimension
	X, Y          Dimension

	MarginTop, MarginRight, MarginBottom, MarginLeft Dimension

	Background  string
	Foreground  string
	BorderColor string
	BorderWidth int
	Opacity     float64
	Bold        bool
	Align       lipgloss.Position
}

// TapEvent describes a tap on a node. X and Y are relative to the node's
// top-left cell. Keyboard taps have X and Y set to -1.
type TapEvent struct {
	X, Y          int
	Width, Height int
	Keyboard      bool
}

// TapHandler handles a tap and may return a command for the program loop.
type TapHandler func(TapEvent) tea.Cmd

// KeyHandlerFunc receives keys while its node has focus. It reports whether
// the key was consumed.
type KeyHandlerFunc func(tea.KeyMsg) (bool, tea.Cmd)

// Child is anything that can be appended to a node: a *Node or a *Component.
type Child interface {
	nodeOf() *Node
}

// Node is a renderable element. A node has at most one parent.
type Node struct {
	Tag    string
	ID     string
	Text   string
	Style  Style
	Layout Layout

	// Content renders custom leaf content in the given cells, after Text.
	Content func(width, height int) string

	// arrange replaces the default child layout when set.
	arrange func(inner RenderContext) string

	hidden     bool
	translateX float64
	attrs      map[string]string
	children   []*Node
	parent     *Node
	root       bool
	tap        TapHandler
	keys       KeyHandlerFunc
	onFocus    func(focused bool)
	zoneID     string
	// anchor marks the node's zone even without a tap handler.
	anchor bool
}

var nodeSeq atomic.Uint64

// NewNode creates a detached node.
func NewNode(tag string) *Node {
	return &Node{
		Tag:    tag,
		Style:  Style{Opacity: 1},
		zoneID: "n" + strconv.FormatUint(nodeSeq.Add(1), 10),
	}
}

func (n *Node) nodeOf() *Node { return n }

// AppendChild moves child under n. A child already attached elsewhere is
// detached from its old parent first.
func (n *Node) AppendChild(child Child) error {
	if child == nil {
		return validationErr("Node.AppendChild", ErrNilComponent)
	}
	c := child.nodeOf()
	if c == nil {
		return validationErr("Node.AppendChild", ErrNilComponent)
	}
	for p := n; p != nil; p = p.parent {
		if p == c {
			return structureErr("Node.AppendChild", ErrCycle)
		}
	}
	if c.parent != nil {
		c.parent.RemoveChild(c)
	}
	c.parent = n
	n.children = append(n.children, c)
	return nil
}

// InsertChild inserts child at index i, clamped to the child range.
func (n *Node) InsertChild(i int, child Child) error {
	if err := n.AppendChild(child); err != nil {
		return err
	}
	c := child.nodeOf()
	last := len(n.children) - 1
	if i < 0 {
		i = 0
	}
	if i >= last {
		return nil
	}
	copy(n.children[i+1:], n.children[i:last])
	n.children[i] = c
	return nil
}

// RemoveChild detaches c if it is a direct child of n.
func (n *Node) RemoveChild(c *Node) bool {
	for i, ch := range n.children {
		if ch == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			c.parent = nil
			return true
		}
	}
	return false
}

// RemoveChildren detaches all children.
func (n *Node) RemoveChildren() {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
}

// Remove detaches n from its parent. It reports whether n had one.
func (n *Node) Remove() bool {
	if n.parent == nil {
		return false
	}
	return n.parent.RemoveChild(n)
}

// Parent returns the parent node, or nil.
func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// IsAttached reports whether n is reachable from a live document root.
func (n *Node) IsAttached() bool {
	for p := n; p != nil; p = p.parent {
		if p.root {
			return true
		}
	}
	return false
}

// Hide suppresses rendering of n and its subtree.
func (n *Node) Hide() { n.hidden = true }

// Show undoes Hide.
func (n *Node) Show() { n.hidden = false }

// Hidden reports whether n is hidden.
func (n *Node) Hidden() bool { return n.hidden }

// TranslateX returns the horizontal offset as a percentage of the width.
func (n *Node) TranslateX() float64 { return n.translateX }

// SetTranslateX sets the horizontal offset as a percentage of the width.
func (n *Node) SetTranslateX(pct float64) { n.translateX = pct }

// SetAttribute sets a string attribute.
func (n *Node) SetAttribute(key, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[key] = value
}

// Attribute returns an attribute value.
func (n *Node) Attribute(key string) (string, bool) {
	v, ok := n.attrs[key]
	return v, ok
}

// RemoveAttribute deletes an attribute.
func (n *Node) RemoveAttribute(key string) {
	delete(n.attrs, key)
}

// SetOnTap replaces the tap handler. Nil clears it.
func (n *Node) SetOnTap(fn TapHandler) { n.tap = fn }

// Tappable reports whether n has a tap handler.
func (n *Node) Tappable() bool { return n.tap != nil }

// Tap invokes the tap handler, if any.
func (n *Node) Tap(ev TapEvent) (bool, tea.Cmd) {
	if n.tap == nil {
		return false, nil
	}
	return true, n.tap(ev)
}

// SetKeyHandler installs a handler for keys received while n is focused.
func (n *Node) SetKeyHandler(fn KeyHandlerFunc) { n.keys = fn }

// HandleKey passes a key to the node's key handler.
func (n *Node) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if n.keys == nil {
		return false, nil
	}
	return n.keys(msg)
}

// SetFocusHandler installs a callback run when n gains or loses focus.
func (n *Node) SetFocusHandler(fn func(focused bool)) { n.onFocus = fn }

func (n *Node) focusChanged(focused bool) {
	if n.onFocus != nil {
		n.onFocus(focused)
	}
}

// ZoneID is the bubblezone id used to hit-test n.
func (n *Node) ZoneID() string { return n.zoneID }

// Document is the live root nodes are mounted into.
type Document struct {
	Body *Node
}

// NewDocument creates a document with an empty body.
func NewDocument() *Document {
	body := NewNode("body")
	body.root = true
	return &Document{Body: body}
}

// RenderContext carries the available size and hit-test state through a render.
type RenderContext struct {
	Width, Height int
	Zones         *zone.Manager
	Focused       *Node
	// Tappables collects every tappable node drawn in this frame, in draw order.
	Tappables *[]*Node
}

// Render draws n and its subtree.
func (n *Node) Render(ctx RenderContext) string {
	if n == nil || n.hidden {
		return ""
	}
	st := n.Style
	w := st.Width.Resolve(ctx.Width)
	h := st.Height.Resolve(ctx.Height)
	bw := st.BorderWidth
	if bw > 1 {
		bw = 1
	}
	ml := st.MarginLeft.Resolve(ctx.Width) + st.X.Resolve(ctx.Width)
	mr := st.MarginRight.Resolve(ctx.Width)
	mt := st.MarginTop.Resolve(ctx.Height) + st.Y.Resolve(ctx.Height)
	mb := st.MarginBottom.Resolve(ctx.Height)

	inner := ctx
	if w > 0 {
		inner.Width = w
	} else {
		inner.Width = ctx.Width - ml - mr
	}
	inner.Width -= 2 * bw
	if h > 0 {
		inner.Height = h - 2*bw
	}
	if inner.Width < 0 {
		inner.Width = 0
	}

	var parts []string
	if n.Text != "" {
		parts = append(parts, n.Text)
	}
	if n.Content != nil {
		parts = append(parts, n.Content(inner.Width, inner.Height))
	}
	if n.arrange != nil {
		parts = append(parts, n.arrange(inner))
	} else {
		for _, c := range n.children {
			if c.hidden {
				continue
			}
			parts = append(parts, c.Render(inner))
		}
	}
	var body string
	if n.Layout == LayoutHorizontal {
		body = lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	} else {
		body = lipgloss.JoinVertical(st.Align, parts...)
	}

	s := lipgloss.NewStyle().Align(st.Align).Bold(st.Bold)
	if w > 0 {
		s = s.Width(w - 2*bw).MaxWidth(w)
	}
	if h > 0 {
		s = s.Height(h - 2*bw).MaxHeight(h)
	}
	if c, ok := ParseColor(st.Background); ok {
		s = s.Background(c)
	}
	if c, ok := ParseColor(st.Foreground); ok {
		s = s.Foreground(c)
	}
	if bw > 0 {
		s = s.Border(lipgloss.RoundedBorder())
		if c, ok := ParseColor(st.BorderColor); ok {
			s = s.BorderForeground(c)
		}
	}
	if st.Opacity < 0.5 {
		s = s.Faint(true)
	}
	if ctx.Focused != nil && ctx.Focused == n {
		s = s.Reverse(true)
	}
	out := s.Render(body)
	if st.Opacity <= 0 {
		out = blank(lipgloss.Width(out), lipgloss.Height(out))
	}
	if ml > 0 || mr > 0 || mt > 0 || mb > 0 {
		out = lipgloss.NewStyle().Margin(mt, mr, mb, ml).Render(out)
	}
	if n.tap != nil && ctx.Tappables != nil {
		*ctx.Tappables = append(*ctx.Tappables, n)
	}
	if (n.tap != nil || n.anchor) && ctx.Zones != nil {
		out = ctx.Zones.Mark(n.zoneID, out)
	}
	return out
}

func blank(w, h int) string {
	if h <= 0 {
		return ""
	}
	line := strings.Repeat(" ", w)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
