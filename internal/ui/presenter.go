package ui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrNoHost is returned when a presenter has no overlay stack to attach to.
var ErrNoHost = errors.New("presenter has no overlay host")

// PresentState is the visibility state of a modal, dialog or popover.
type PresentState int

const (
	Dismissed PresentState = iota
	Presenting
	Presented
	Dismissing
)

func (s PresentState) String() string {
	switch s {
	case Dismissed:
		return "dismissed"
	case Presenting:
		return "presenting"
	case Presented:
		return "presented"
	case Dismissing:
		return "dismissing"
	default:
		return "unknown"
	}
}

// presenter is the state shared by every overlay kind: a node that is
// attached to the overlay layer while shown, and a fade transition.
type presenter struct {
	node       *Node
	host       *OverlayStack
	state      PresentState
	trans      *Transition
	dismissKey string
	reporter   Reporter

	// willPresent and willDismiss let embedders drive a nested root page.
	willPresent func()
	willDismiss func()
	didDismiss  func()
}

func newPresenter(tag string, host *OverlayStack) presenter {
	return presenter{node: NewNode(tag), host: host, reporter: LogReporter{}}
}

// State returns the presentation state.
func (p *presenter) State() PresentState { return p.state }

// IsPresented reports whether the overlay is up or on its way up.
func (p *presenter) IsPresented() bool {
	return p.state == Presented || p.state == Presenting
}

// Node returns the overlay's root node.
func (p *presenter) Node() *Node { return p.node }

// OnDismiss sets a callback run once the overlay has been removed.
func (p *presenter) OnDismiss(fn func()) { p.didDismiss = fn }

// SetReporter sets where presentation errors are reported.
func (p *presenter) SetReporter(r Reporter) { p.reporter = r }

// Reporter returns where presentation errors are reported.
func (p *presenter) Reporter() Reporter { return p.reporter }

func (p *presenter) settle() {
	if t := p.trans; t != nil {
		p.trans = nil
		t.Finish()
	}
}

func (p *presenter) present(op string, self Presentation, animated bool) (tea.Cmd, error) {
	if p.host == nil {
		return nil, report(p.reporter, structureErr(op, ErrNoHost))
	}
	p.settle()
	if p.IsPresented() {
		return nil, nil
	}
	p.host.Push(Overlay{Presentation: self, Dismiss: p.dismissKey})
	_ = p.host.Layer.AppendChild(p.node)
	if p.willPresent != nil {
		p.willPresent()
	}
	if !animated {
		p.state = Presented
		p.node.Style.Opacity = 1
		return nil, nil
	}
	p.state = Presenting
	p.trans = newTransition(TransitionFade, FadeDuration,
		func(x float64) { p.node.Style.Opacity = x },
		func() { p.state = Presented })
	return p.trans.Next(), nil
}

func (p *presenter) dismiss(self Presentation, animated bool) tea.Cmd {
	p.settle()
	if !p.IsPresented() {
		return nil
	}
	if p.willDismiss != nil {
		p.willDismiss()
	}
	finish := func() {
		p.host.Remove(self)
		p.node.Remove()
		p.node.Style.Opacity = 1
		p.state = Dismissed
		if p.didDismiss != nil {
			p.didDismiss()
		}
	}
	if !animated {
		finish()
		return nil
	}
	p.state = Dismissing
	p.trans = newTransition(TransitionFade, FadeDuration,
		func(x float64) { p.node.Style.Opacity = 1 - x },
		finish)
	return p.trans.Next()
}

// frame advances the fade. It reports whether msg was a frame for this presenter.
func (p *presenter) frame(msg tea.Msg) (bool, tea.Cmd) {
	m, ok := msg.(TransitionFrameMsg)
	if !ok || p.trans == nil || m.ID != p.trans.ID {
		return false, nil
	}
	if p.trans.advance(m.Step) {
		p.settle()
		return true, nil
	}
	return true, p.trans.Next()
}

// container holds either one root page or plain components, never both.
type container struct {
	owner any
	body  *Node
	root  *Page
}

func (c *container) setRoot(op string, page *Page) error {
	switch {
	case c.root != nil:
		return structureErr(op, ErrRootAlreadySet)
	case len(c.body.children) > 0:
		return structureErr(op, ErrComponentsPreventRoot)
	case page == nil:
		return structureErr(op, ErrNilPage)
	case page.state == PageDestroyed:
		return structureErr(op, fmt.Errorf("%w: %q", ErrPageDestroyed, page.id))
	case page.owner != nil:
		return structureErr(op, fmt.Errorf("%w: %q", ErrPageInStack, page.id))
	}
	page.owner = c.owner
	c.root = page
	return c.body.AppendChild(page)
}

func (c *container) addComponents(op string, cs []*Component) error {
	if c.root != nil {
		return structureErr(op, ErrRootPreventsComponents)
	}
	var err error
	for _, comp := range cs {
		if comp == nil {
			err = validationErr(op, ErrNilComponent)
			continue
		}
		if e := c.body.AppendChild(comp); e != nil {
			err = e
		}
	}
	return err
}

// showRoot and hideRoot drive the root page's hooks around presentation.
func (c *container) showRoot(live bool) {
	if c.root == nil || !live {
		return
	}
	c.root.init()
	c.root.show()
}

func (c *container) hideRoot() {
	if c.root != nil {
		c.root.hide()
	}
}

func (c *container) updateRoot(msg tea.Msg) tea.Cmd {
	if c.root == nil || c.root.body == nil {
		return nil
	}
	v, cmd := c.root.body.Update(msg)
	c.root.body = v
	return cmd
}
