package ui

import (
	"fmt"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// NavEvent describes a completed navigation call.
type NavEvent struct {
	Op       string
	From, To *Page
	Index    int
	Depth    int
	Animated bool
	Duration time.Duration
}

// Observer is notified after each successful navigation call.
type Observer interface {
	DidPush(ev NavEvent)
	DidPop(ev NavEvent)
	DidSwitch(ev NavEvent)
}

// Navigator is a stack of pages. The stack always holds at least the root.
// The current page is usually the top, but SwitchTo can make any page current
// without changing the stack.
type Navigator struct {
	stack     []*Page
	current   int
	container *Node
	live      bool

	reporter  Reporter
	observers []Observer
	animate   bool

	trans                 *Transition
	slideLeft, slideRight *Page
}

// NavigatorOption configures a Navigator.
type NavigatorOption func(*Navigator)

// WithReporter sets where navigation errors are reported.
func WithReporter(r Reporter) NavigatorOption {
	return func(n *Navigator) { n.reporter = r }
}

// WithObserver adds a navigation observer.
func WithObserver(o Observer) NavigatorOption {
	return func(n *Navigator) {
		if o != nil {
			n.observers = append(n.observers, o)
		}
	}
}

// WithAnimations turns transitions on or off. When off, animated calls
// behave as non-animated ones.
func WithAnimations(on bool) NavigatorOption {
	return func(n *Navigator) { n.animate = on }
}

// NewNavigator creates a navigator with root as its only page.
func NewNavigator(root *Page, opts ...NavigatorOption) (*Navigator, error) {
	n := &Navigator{
		container: NewNode("navigator"),
		reporter:  LogReporter{},
		animate:   true,
	}
	for _, o := range opts {
		o(n)
	}
	if err := n.check("NewNavigator", root); err != nil {
		return nil, report(n.reporter, err)
	}
	n.adopt(root)
	n.stack = []*Page{root}
	return n, nil
}

func (n *Navigator) nodeOf() *Node { return n.container }

// Node returns the navigator's container.
func (n *Navigator) Node() *Node { return n.container }

// Len returns the stack depth.
func (n *Navigator) Len() int { return len(n.stack) }

// Stack returns a copy of the stack, root first.
func (n *Navigator) Stack() []*Page {
	out := make([]*Page, len(n.stack))
	copy(out, n.stack)
	return out
}

// Current returns the visible page.
func (n *Navigator) Current() *Page { return n.stack[n.current] }

// CurrentIndex returns the stack index of the visible page.
func (n *Navigator) CurrentIndex() int { return n.current }

// Top returns the last page of the stack.
func (n *Navigator) Top() *Page { return n.stack[len(n.stack)-1] }

// Transition returns the pending transition, or nil.
func (n *Navigator) Transition() *Transition { return n.trans }

// Live reports whether the navigator is mounted in a live document.
func (n *Navigator) Live() bool {
	n.wake()
	return n.live
}

// Mount attaches the navigator under parent. If parent is live, every page
// in the stack gets OnInit in order and the current page is shown. A parent
// that joins the document later wakes the navigator on its next call.
func (n *Navigator) Mount(parent *Node) error {
	if parent == nil {
		return report(n.reporter, validationErr("Navigator.Mount", ErrNilComponent))
	}
	if err := parent.AppendChild(n.container); err != nil {
		return report(n.reporter, err)
	}
	n.wake()
	return nil
}

// wake runs the first OnInit and OnShow pass once the container is live.
func (n *Navigator) wake() {
	if n.live || !n.container.IsAttached() {
		return
	}
	n.live = true
	for _, p := range n.stack {
		p.init()
	}
	for i, p := range n.stack {
		if i != n.current {
			p.node.Hide()
		}
	}
	n.Current().show()
}

func (n *Navigator) check(op string, p *Page) error {
	switch {
	case p == nil:
		return structureErr(op, ErrNilPage)
	case p.state == PageDestroyed:
		return structureErr(op, fmt.Errorf("%w: %q", ErrPageDestroyed, p.id))
	case p.owner != nil:
		return structureErr(op, fmt.Errorf("%w: %q", ErrPageInStack, p.id))
	}
	return nil
}

func (n *Navigator) adopt(p *Page) {
	p.owner = n
	p.nav = n
	p.node.SetTranslateX(0)
	_ = n.container.AppendChild(p.node)
}

// settle finishes any pending transition so its deferred steps run before
// the stack changes again.
func (n *Navigator) settle() {
	if t := n.trans; t != nil {
		n.trans = nil
		n.slideLeft, n.slideRight = nil, nil
		t.Finish()
	}
}

// Push makes page the new top and current page. The outgoing page's OnHide
// fires before page's OnShow. When animated the outgoing page stays drawn
// until the slide completes.
func (n *Navigator) Push(page *Page, animated bool) (tea.Cmd, error) {
	if err := n.check("Navigator.Push", page); err != nil {
		return nil, report(n.reporter, err)
	}
	n.wake()
	n.settle()
	from := n.Current()

	n.adopt(page)
	page.returnTo = n.current
	n.stack = append(n.stack, page)
	n.current = len(n.stack) - 1
	if n.live {
		page.init()
		from.hide()
		page.show()
	}

	animated = animated && n.animate
	var cmd tea.Cmd
	if animated {
		cmd = n.slide(TransitionPush, PushDuration, from, page, true, func() {
			from.node.Hide()
		})
	} else {
		from.node.Hide()
	}
	n.notify(func(o Observer) {
		o.DidPush(NavEvent{Op: "push", From: from, To: page, Index: n.current, Depth: len(n.stack), Animated: animated, Duration: durationIf(animated, PushDuration)})
	})
	return cmd, nil
}

// Pop removes the top page. When the top was current, the page that was
// current when it was pushed becomes current again; otherwise the new top
// does. The removed page is detached and gets OnDestroy after the slide
// settles, or at once when not animated.
func (n *Navigator) Pop(animated bool) (*Page, tea.Cmd, error) {
	if len(n.stack) <= 1 {
		return nil, nil, report(n.reporter, structureErr("Navigator.Pop", ErrLastPage))
	}
	n.wake()
	n.settle()
	from := n.Current()
	top := len(n.stack) - 1
	popped := n.stack[top]
	n.stack[top] = nil
	n.stack = n.stack[:top]
	if from == popped {
		n.current = min(popped.returnTo, top-1)
	} else {
		n.current = top - 1
	}
	to := n.Current()

	// After a SwitchTo the current page may already be the new top.
	revealing := from != to
	to.node.Show()
	if n.live && revealing {
		from.hide()
		to.show()
	}

	teardown := func() {
		if from != popped && revealing {
			from.node.Hide()
		}
		popped.node.Remove()
		popped.destroy()
	}
	animated = animated && n.animate && revealing
	var cmd tea.Cmd
	if animated {
		cmd = n.slide(TransitionPop, PopSettleDuration, to, from, false, teardown)
	} else {
		teardown()
	}
	n.notify(func(o Observer) {
		o.DidPop(NavEvent{Op: "pop", From: popped, To: to, Index: n.current, Depth: len(n.stack), Animated: animated, Duration: durationIf(animated, PopSettleDuration)})
	})
	return popped, cmd, nil
}

// SwitchTo makes the page at index current without changing the stack.
// Switching to the current index does nothing.
func (n *Navigator) SwitchTo(index int, animated bool) (tea.Cmd, error) {
	if index < 0 || index >= len(n.stack) {
		return nil, report(n.reporter, structureErr("Navigator.SwitchTo",
			fmt.Errorf("%w: index %d, depth %d", ErrOutOfBounds, index, len(n.stack))))
	}
	n.wake()
	if index == n.current {
		return nil, nil
	}
	n.settle()
	prev := n.current
	from, to := n.stack[prev], n.stack[index]
	n.current = index

	to.node.Show()
	if n.live {
		from.hide()
		to.show()
	}

	animated = animated && n.animate
	var cmd tea.Cmd
	if animated {
		// Forward switches slide in like a push, backward ones like a pop.
		if index > prev {
			cmd = n.slide(TransitionSwitch, SwitchDuration, from, to, true, func() { from.node.Hide() })
		} else {
			cmd = n.slide(TransitionSwitch, SwitchDuration, to, from, false, func() { from.node.Hide() })
		}
	} else {
		from.node.Hide()
	}
	n.notify(func(o Observer) {
		o.DidSwitch(NavEvent{Op: "switch", From: from, To: to, Index: index, Depth: len(n.stack), Animated: animated, Duration: durationIf(animated, SwitchDuration)})
	})
	return cmd, nil
}

// slide starts a transition between a stationary left page and a right page
// moving in (entering) or out.
func (n *Navigator) slide(kind TransitionKind, d time.Duration, left, right *Page, entering bool, done func()) tea.Cmd {
	n.trans = newTransition(kind, d,
		func(p float64) {
			if entering {
				right.node.SetTranslateX((1 - p) * 100)
			} else {
				right.node.SetTranslateX(p * 100)
			}
		},
		func() {
			left.node.SetTranslateX(0)
			right.node.SetTranslateX(0)
			done()
		})
	n.slideLeft, n.slideRight = left, right
	return n.trans.Next()
}

// Update advances the pending transition.
func (n *Navigator) Update(msg tea.Msg) tea.Cmd {
	m, ok := msg.(TransitionFrameMsg)
	if !ok || n.trans == nil || m.ID != n.trans.ID {
		return nil
	}
	if n.trans.advance(m.Step) {
		n.settle()
		return nil
	}
	return n.trans.Next()
}

// Render draws the current page, or both pages mid-slide.
func (n *Navigator) Render(ctx RenderContext) string {
	n.wake()
	if n.trans == nil || n.slideLeft == nil || n.slideRight == nil {
		return n.Current().Render(ctx)
	}
	w := ctx.Width
	x := int(math.Round(n.slideRight.node.TranslateX() / 100 * float64(w)))
	switch {
	case x <= 0:
		return n.slideRight.Render(ctx)
	case x >= w:
		return n.slideLeft.Render(ctx)
	}
	left := lipgloss.NewStyle().MaxWidth(x).Render(n.slideLeft.Render(ctx))
	right := lipgloss.NewStyle().MaxWidth(w - x).Render(n.slideRight.Render(ctx))
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// Reporter returns the navigator's error reporter.
func (n *Navigator) Reporter() Reporter { return n.reporter }

func (n *Navigator) notify(fn func(Observer)) {
	for _, o := range n.observers {
		fn(o)
	}
}

func durationIf(animated bool, d time.Duration) time.Duration {
	if animated {
		return d
	}
	return 0
}
