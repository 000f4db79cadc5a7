package ui

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Options configures a new Component. Empty fields are left at their defaults.
type Options struct {
	ID   string
	Text string

	Width, Height string
	X, Y          string

	MarginTop, MarginRight, MarginBottom, MarginLeft string

	BackgroundColor string
	BorderColor     string
	BorderWidth     string
	Foreground      string
	Alpha           string

	Layout     Layout
	Modifiers  []string
	Attributes map[string]string
	OnTap      TapHandler
}

// Component wraps a Node with validated, string-typed accessors.
type Component struct {
	node      *Node
	modifiers []string
}

// NewComponent creates a component and applies opts. Invalid options are
// skipped; every failure is returned in one joined error and the component
// is still returned.
func NewComponent(tag string, opts Options) (*Component, error) {
	c := &Component{node: NewNode(tag)}
	c.node.ID = opts.ID
	c.node.Text = opts.Text
	c.node.Layout = opts.Layout
	for k, v := range opts.Attributes {
		c.node.SetAttribute(k, v)
	}
	if opts.OnTap != nil {
		c.SetOnTap(opts.OnTap)
	}

	var errs []error
	set := func(v string, fn func(string) error) {
		if v == "" {
			return
		}
		if err := fn(v); err != nil {
			errs = append(errs, err)
		}
	}
	set(opts.Width, c.SetWidth)
	set(opts.Height, c.SetHeight)
	set(opts.X, c.SetX)
	set(opts.Y, c.SetY)
	set(opts.MarginTop, c.SetMarginTop)
	set(opts.MarginRight, c.SetMarginRight)
	set(opts.MarginBottom, c.SetMarginBottom)
	set(opts.MarginLeft, c.SetMarginLeft)
	set(opts.BackgroundColor, c.SetBackgroundColor)
	set(opts.BorderColor, c.SetBorderColor)
	set(opts.BorderWidth, c.SetBorderWidth)
	set(opts.Foreground, c.SetForeground)
	set(opts.Alpha, c.SetAlpha)
	for _, m := range opts.Modifiers {
		if err := c.AddModifier(m); err != nil {
			errs = append(errs, err)
		}
	}
	return c, errors.Join(errs...)
}

// MustComponent is NewComponent for options known to be valid.
func MustComponent(tag string, opts Options) *Component {
	c, err := NewComponent(tag, opts)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Component) nodeOf() *Node {
	if c == nil {
		return nil
	}
	return c.node
}

// Node returns the underlying node.
func (c *Component) Node() *Node { return c.node }

// ID returns the component id.
func (c *Component) ID() string { return c.node.ID }

// SetID sets the component id.
func (c *Component) SetID(id string) { c.node.ID = id }

// Text returns the text content.
func (c *Component) Text() string { return c.node.Text }

// SetText replaces the text content.
func (c *Component) SetText(s string) { c.node.Text = s }

func setDimension(op string, dst *Dimension, v string, allowNegative bool) error {
	d, err := ParseDimension(v)
	if err != nil {
		return validationErr(op, err)
	}
	if !allowNegative && d.Value < 0 {
		return validationErr(op, fmt.Errorf("%w: %q is negative", ErrOutOfRange, v))
	}
	*dst = d
	return nil
}

func (c *Component) Width() string  { return c.node.Style.Width.String() }
func (c *Component) Height() string { return c.node.Style.Height.String() }
func (c *Component) X() string      { return c.node.Style.X.String() }
func (c *Component) Y() string      { return c.node.Style.Y.String() }

func (c *Component) SetWidth(v string) error {
	return setDimension("Component.SetWidth", &c.node.Style.Width, v, false)
}

func (c *Component) SetHeight(v string) error {
	return setDimension("Component.SetHeight", &c.node.Style.Height, v, false)
}

func (c *Component) SetX(v string) error {
	return setDimension("Component.SetX", &c.node.Style.X, v, true)
}

func (c *Component) SetY(v string) error {
	return setDimension("Component.SetY", &c.node.Style.Y, v, true)
}

// Margins returns top, right, bottom and left margins.
func (c *Component) Margins() (top, right, bottom, left string) {
	s := c.node.Style
	return s.MarginTop.String(), s.MarginRight.String(), s.MarginBottom.String(), s.MarginLeft.String()
}

func (c *Component) SetMarginTop(v string) error {
	return setDimension("Component.SetMarginTop", &c.node.Style.MarginTop, v, false)
}

func (c *Component) SetMarginRight(v string) error {
	return setDimension("Component.SetMarginRight", &c.node.Style.MarginRight, v, false)
}

func (c *Component) SetMarginBottom(v string) error {
	return setDimension("Component.SetMarginBottom", &c.node.Style.MarginBottom, v, false)
}

func (c *Component) SetMarginLeft(v string) error {
	return setDimension("Component.SetMarginLeft", &c.node.Style.MarginLeft, v, false)
}

// BackgroundColor returns the background color as set.
func (c *Component) BackgroundColor() string { return c.node.Style.Background }

// SetBackgroundColor sets the background color. Invalid colors leave it unchanged.
func (c *Component) SetBackgroundColor(v string) error {
	if !IsValidColor(v) {
		return colorErr("Component.SetBackgroundColor", v)
	}
	c.node.Style.Background = v
	return nil
}

// BorderColor returns the border color as set.
func (c *Component) BorderColor() string { return c.node.Style.BorderColor }

// SetBorderColor sets the border color.
func (c *Component) SetBorderColor(v string) error {
	if !IsValidColor(v) {
		return colorErr("Component.SetBorderColor", v)
	}
	c.node.Style.BorderColor = v
	return nil
}

// Foreground returns the text color as set.
func (c *Component) Foreground() string { return c.node.Style.Foreground }

// SetForeground sets the text color.
func (c *Component) SetForeground(v string) error {
	if !IsValidColor(v) {
		return colorErr("Component.SetForeground", v)
	}
	c.node.Style.Foreground = v
	return nil
}

// BorderWidth returns the border width in cells.
func (c *Component) BorderWidth() string {
	return strconv.Itoa(c.node.Style.BorderWidth)
}

// SetBorderWidth sets the border width. Terminal borders are one cell, so
// any positive width draws a border.
func (c *Component) SetBorderWidth(v string) error {
	var d Dimension
	if err := setDimension("Component.SetBorderWidth", &d, v, false); err != nil {
		return err
	}
	if d.Unit == UnitPercent {
		return validationErr("Component.SetBorderWidth", fmt.Errorf("%w %q: percent not allowed", ErrInvalidDimension, v))
	}
	c.node.Style.BorderWidth = d.Resolve(0)
	return nil
}

// Alpha returns the opacity as a decimal string, e.g. "0.5".
func (c *Component) Alpha() string {
	return strconv.FormatFloat(c.node.Style.Opacity, 'f', -1, 64)
}

// SetAlpha sets the opacity from a string in the inclusive range 0.0 to 1.0.
func (c *Component) SetAlpha(v string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return validationErr("Component.SetAlpha", fmt.Errorf("%w: alpha %q is not a number", ErrOutOfRange, v))
	}
	if f < 0 || f > 1 {
		return validationErr("Component.SetAlpha", fmt.Errorf("%w: alpha %q not in [0.0, 1.0]", ErrOutOfRange, v))
	}
	c.node.Style.Opacity = f
	return nil
}

// SetOnTap replaces the tap handler. Handlers never stack.
func (c *Component) SetOnTap(fn TapHandler) { c.node.SetOnTap(fn) }

// Tap invokes the tap handler as a keyboard tap.
func (c *Component) Tap() tea.Cmd {
	_, cmd := c.node.Tap(TapEvent{X: -1, Y: -1, Keyboard: true})
	return cmd
}

// AddModifier adds a modifier class. Adding an existing modifier is a no-op.
func (c *Component) AddModifier(m string) error {
	m = strings.TrimSpace(m)
	if m == "" {
		return validationErr("Component.AddModifier", ErrEmptyModifier)
	}
	if !slices.Contains(c.modifiers, m) {
		c.modifiers = append(c.modifiers, m)
		c.node.SetAttribute("modifier", strings.Join(c.modifiers, " "))
	}
	return nil
}

// RemoveModifier removes a modifier class.
func (c *Component) RemoveModifier(m string) error {
	m = strings.TrimSpace(m)
	if m == "" {
		return validationErr("Component.RemoveModifier", ErrEmptyModifier)
	}
	if i := slices.Index(c.modifiers, m); i >= 0 {
		c.modifiers = slices.Delete(c.modifiers, i, i+1)
		if len(c.modifiers) == 0 {
			c.node.RemoveAttribute("modifier")
		} else {
			c.node.SetAttribute("modifier", strings.Join(c.modifiers, " "))
		}
	}
	return nil
}

// HasModifier reports whether m is set.
func (c *Component) HasModifier(m string) bool {
	return slices.Contains(c.modifiers, m)
}

// Modifiers returns a copy of the modifier list.
func (c *Component) Modifiers() []string {
	return slices.Clone(c.modifiers)
}

// AppendChild moves child under c.
func (c *Component) AppendChild(child Child) error {
	return c.node.AppendChild(child)
}

// Remove detaches c from its parent.
func (c *Component) Remove() bool { return c.node.Remove() }

func (c *Component) Hide()        { c.node.Hide() }
func (c *Component) Show()        { c.node.Show() }
func (c *Component) Hidden() bool { return c.node.Hidden() }

// SetAttribute sets a string attribute on the node.
func (c *Component) SetAttribute(key, value string) { c.node.SetAttribute(key, value) }

// Attribute returns an attribute value.
func (c *Component) Attribute(key string) (string, bool) { return c.node.Attribute(key) }
