package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Direction is the side of the target a popover opens on.
type Direction string

const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// ParseDirection validates a direction string.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(s))); d {
	case DirectionUp, DirectionDown, DirectionLeft, DirectionRight:
		return d, nil
	}
	return "", validationErr("ParseDirection", fmt.Errorf("%w: %q", ErrInvalidDirection, s))
}

// Popover is a small box anchored next to a target component.
type Popover struct {
	presenter

	body      *Node
	target    *Component
	direction Direction
}

// NewPopover creates a dismissed popover that opens downward. Esc dismisses it.
func NewPopover(host *OverlayStack) *Popover {
	p := &Popover{
		presenter: newPresenter("popover", host),
		body:      NewNode("popover-body"),
		direction: DirectionDown,
	}
	p.dismissKey = "esc"
	_ = p.node.AppendChild(p.body)
	return p
}

// Direction returns the opening direction.
func (p *Popover) Direction() Direction { return p.direction }

// SetDirection sets the opening direction from "up", "down", "left" or "right".
func (p *Popover) SetDirection(s string) error {
	d, err := ParseDirection(s)
	if err != nil {
		return report(p.reporter, err)
	}
	p.direction = d
	return nil
}

// Target returns the component the popover is anchored to.
func (p *Popover) Target() *Component { return p.target }

// SetCancelable sets whether esc dismisses the popover.
func (p *Popover) SetCancelable(v bool) {
	if v {
		p.dismissKey = "esc"
	} else {
		p.dismissKey = ""
	}
}

// AddComponents adds components to the popover body.
func (p *Popover) AddComponents(cs ...*Component) error {
	var err error
	for _, c := range cs {
		if c == nil {
			err = validationErr("Popover.AddComponents", ErrNilComponent)
			continue
		}
		if e := p.body.AppendChild(c); e != nil {
			err = e
		}
	}
	return report(p.reporter, err)
}

// Present anchors the popover to target and shows it. A target is required.
func (p *Popover) Present(target *Component, animated bool) (tea.Cmd, error) {
	if target == nil {
		return nil, report(p.reporter, structureErr("Popover.Present", ErrNoTarget))
	}
	p.target = target
	target.node.anchor = true
	return p.present("Popover.Present", p, animated)
}

// Dismiss hides the popover.
func (p *Popover) Dismiss(animated bool) tea.Cmd {
	return p.dismiss(p, animated)
}

// Update implements Presentation.
func (p *Popover) Update(msg tea.Msg) (bool, tea.Cmd) {
	if ok, cmd := p.frame(msg); ok {
		return true, cmd
	}
	if p.state == Dismissing {
		return true, nil
	}
	if km, ok := msg.(tea.KeyMsg); ok {
		return p.body.HandleKey(km)
	}
	return false, nil
}

// SetKeyHandler sets the handler for keys while the popover is on top.
func (p *Popover) SetKeyHandler(fn KeyHandlerFunc) { p.body.SetKeyHandler(fn) }

// Render implements Presentation. The popover is placed beside the
// target's zone from the previous frame, or centered if the target has
// not been drawn yet.
func (p *Popover) Render(ctx RenderContext, base string) string {
	if p.node.Style.Opacity <= 0 {
		return base
	}
	inner := ctx
	inner.Width = min(ctx.Width/2, 40)
	s := Styles.Popover
	if p.node.Style.Opacity < 0.5 {
		s = s.Faint(true)
	}
	box := s.Render(p.body.Render(inner))
	bw, bh := lipgloss.Width(box), lipgloss.Height(box)
	x, y := (ctx.Width-bw)/2, (ctx.Height-bh)/2

	if ctx.Zones != nil && p.target != nil {
		if z := ctx.Zones.Get(p.target.node.zoneID); z != nil && !z.IsZero() {
			switch p.direction {
			case DirectionUp:
				x, y = z.StartX, z.StartY-bh
			case DirectionDown:
				x, y = z.StartX, z.EndY+1
			case DirectionLeft:
				x, y = z.StartX-bw, z.StartY
			case DirectionRight:
				x, y = z.EndX+1, z.StartY
			}
		}
	}
	x = max(0, min(x, ctx.Width-bw))
	y = max(0, min(y, ctx.Height-bh))
	return Composite(base, box, x, y)
}
