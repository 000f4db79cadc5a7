package ui

import (
	"cornscore/internal/ui/textutil"

	"github.com/charmbracelet/lipgloss"
)

// BarButton is a tappable button for navigation bars and toolbars.
type BarButton struct {
	*Component
}

// NewBarButton creates a bar button with a label and tap handler.
func NewBarButton(label string, onTap TapHandler) *BarButton {
	c := MustComponent("bar-button", Options{Text: label, MarginLeft: "1", MarginRight: "1"})
	c.SetOnTap(onTap)
	return &BarButton{Component: c}
}

func (*BarButton) leftBarItem() {}

func (b *BarButton) nodeOf() *Node {
	if b == nil {
		return nil
	}
	return b.Component.nodeOf()
}

// BackBarButton is a bar button drawn with a back chevron. It only fits the
// left slot of a navigation bar.
type BackBarButton struct {
	*Component
}

// NewBackBarButton creates a back button. An empty label reads "Back".
func NewBackBarButton(label string, onTap TapHandler) *BackBarButton {
	if label == "" {
		label = "Back"
	}
	c := MustComponent("back-bar-button", Options{Text: "‹ " + label, MarginRight: "1"})
	c.SetOnTap(onTap)
	return &BackBarButton{Component: c}
}

func (*BackBarButton) leftBarItem() {}

func (b *BackBarButton) nodeOf() *Node {
	if b == nil {
		return nil
	}
	return b.Component.nodeOf()
}

// LeftBarItem is accepted in the left slot of a navigation bar:
// a *BarButton or a *BackBarButton.
type LeftBarItem interface {
	Child
	leftBarItem()
}

// Bar is a one-line strip with left and right button groups and an
// optional centered title.
type Bar struct {
	node  *Node
	left  *Node
	right *Node
	title string
}

func newBar(tag string) *Bar {
	b := &Bar{
		node:  NewNode(tag),
		left:  NewNode("bar-left"),
		right: NewNode("bar-right"),
	}
	b.left.Layout = LayoutHorizontal
	b.right.Layout = LayoutHorizontal
	_ = b.node.AppendChild(b.left)
	_ = b.node.AppendChild(b.right)
	b.node.arrange = b.arrange
	return b
}

// Node returns the bar's node.
func (b *Bar) Node() *Node { return b.node }

// Title returns the bar title.
func (b *Bar) Title() string { return b.title }

// Left returns the left-slot nodes in order.
func (b *Bar) Left() []*Node { return b.left.Children() }

// Right returns the right-slot nodes in order.
func (b *Bar) Right() []*Node { return b.right.Children() }

// replace swaps the contents of slot for items. Nil items are skipped and
// reported; the remaining items are still installed.
func replace[T Child](op string, slot *Node, items []T) error {
	var err error
	next := make([]*Node, 0, len(items))
	for _, it := range items {
		var n *Node
		if c := Child(it); c != nil {
			n = c.nodeOf()
		}
		if n == nil {
			err = validationErr(op, ErrNilComponent)
			continue
		}
		next = append(next, n)
	}
	slot.RemoveChildren()
	for _, n := range next {
		_ = slot.AppendChild(n)
	}
	return err
}

func (b *Bar) arrange(ctx RenderContext) string {
	left := b.left.Render(ctx)
	right := b.right.Render(ctx)
	lw, rw := lipgloss.Width(left), lipgloss.Width(right)
	side := max(lw, rw)
	mid := ctx.Width - 2*side
	if mid < 0 {
		mid = 0
	}
	title := Styles.BarTitle.Render(textutil.Truncate(b.title, mid))
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.PlaceHorizontal(side, lipgloss.Left, left),
		lipgloss.PlaceHorizontal(mid, lipgloss.Center, title),
		lipgloss.PlaceHorizontal(side, lipgloss.Right, right),
	)
	return Styles.Bar.Width(ctx.Width).MaxWidth(ctx.Width).Render(row)
}
