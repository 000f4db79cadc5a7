package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// PageState is where a page is in its lifecycle.
type PageState int

const (
	PageUninitialized PageState = iota
	PageMounted
	PageShown
	PageHidden
	PageDestroyed
)

func (s PageState) String() string {
	switch s {
	case PageUninitialized:
		return "uninitialized"
	case PageMounted:
		return "mounted"
	case PageShown:
		return "shown"
	case PageHidden:
		return "hidden"
	case PageDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Lifecycle receives page hooks. OnInit and OnDestroy fire once per page.
type Lifecycle interface {
	OnInit(p *Page)
	OnShow(p *Page)
	OnHide(p *Page)
	OnDestroy(p *Page)
}

// BaseLifecycle is a no-op Lifecycle for embedding.
type BaseLifecycle struct{}

func (BaseLifecycle) OnInit(*Page)    {}
func (BaseLifecycle) OnShow(*Page)    {}
func (BaseLifecycle) OnHide(*Page)    {}
func (BaseLifecycle) OnDestroy(*Page) {}

// Page is a screen: a content region between an optional navigation bar
// and an optional toolbar.
type Page struct {
	id      string
	node    *Node
	content *Node
	navBar  *Bar
	toolbar *Bar
	hooks   Lifecycle
	state   PageState
	body    View

	// owner is the navigator or presenter holding the page.
	owner any
	nav   *Navigator
	// returnTo is the index that was current when the page was pushed.
	returnTo int
	reporter Reporter
}

// NewPage creates a page. A nil hooks value means no hooks.
func NewPage(id string, hooks Lifecycle) *Page {
	if hooks == nil {
		hooks = BaseLifecycle{}
	}
	p := &Page{
		id:      id,
		node:    NewNode("page"),
		content: NewNode("page-content"),
		hooks:   hooks,
	}
	p.node.ID = id
	_ = p.node.AppendChild(p.content)
	p.node.arrange = p.arrange
	return p
}

func (p *Page) nodeOf() *Node {
	if p == nil {
		return nil
	}
	return p.node
}

// ID returns the page id.
func (p *Page) ID() string { return p.id }

// State returns the lifecycle state.
func (p *Page) State() PageState { return p.state }

// Node returns the page's root node.
func (p *Page) Node() *Node { return p.node }

// Content returns the content region.
func (p *Page) Content() *Node { return p.content }

// Navigator returns the navigator holding the page, or nil.
func (p *Page) Navigator() *Navigator { return p.nav }

// Body returns the page's message-driven view, if any.
func (p *Page) Body() View { return p.body }

// SetBody installs a view that is drawn below the content components and
// receives messages while the page is current.
func (p *Page) SetBody(v View) { p.body = v }

// AddComponents appends components to the content region. Nil entries are
// skipped and reported; the rest are still added.
func (p *Page) AddComponents(cs ...*Component) error {
	var err error
	for _, c := range cs {
		if c == nil {
			err = validationErr("Page.AddComponents", ErrNilComponent)
			continue
		}
		if e := p.content.AppendChild(c); e != nil {
			err = e
		}
	}
	return p.report(err)
}

// SetReporter sets where the page reports errors. Without one the page
// reports through the navigator or presenter holding it.
func (p *Page) SetReporter(r Reporter) { p.reporter = r }

func (p *Page) report(err error) error {
	r := p.reporter
	if r == nil {
		if o, ok := p.owner.(interface{ Reporter() Reporter }); ok {
			r = o.Reporter()
		}
	}
	return report(r, err)
}

// NavigationBar returns the navigation bar, or nil if none was set.
func (p *Page) NavigationBar() *Bar { return p.navBar }

// Toolbar returns the toolbar, or nil if none was set.
func (p *Page) Toolbar() *Bar { return p.toolbar }

func (p *Page) ensureNavBar() *Bar {
	if p.navBar == nil {
		p.navBar = newBar("navigation-bar")
		p.navBar.node.parent = p.node
	}
	return p.navBar
}

func (p *Page) ensureToolbar() *Bar {
	if p.toolbar == nil {
		p.toolbar = newBar("toolbar")
		p.toolbar.node.parent = p.node
	}
	return p.toolbar
}

// SetNavigationBarTitle sets the title, creating the bar if needed.
func (p *Page) SetNavigationBarTitle(title string) {
	p.ensureNavBar().title = title
}

// SetNavigationBarButtonsLeft replaces the left navigation bar buttons.
func (p *Page) SetNavigationBarButtonsLeft(items ...LeftBarItem) error {
	return p.report(replace("Page.SetNavigationBarButtonsLeft", p.ensureNavBar().left, items))
}

// SetNavigationBarButtonsRight replaces the right navigation bar buttons.
func (p *Page) SetNavigationBarButtonsRight(items ...*BarButton) error {
	return p.report(replace("Page.SetNavigationBarButtonsRight", p.ensureNavBar().right, items))
}

// SetToolbarButtonsLeft replaces the left toolbar buttons.
func (p *Page) SetToolbarButtonsLeft(items ...*BarButton) error {
	return p.report(replace("Page.SetToolbarButtonsLeft", p.ensureToolbar().left, items))
}

// SetToolbarButtonsRight replaces the right toolbar buttons.
func (p *Page) SetToolbarButtonsRight(items ...*BarButton) error {
	return p.report(replace("Page.SetToolbarButtonsRight", p.ensureToolbar().right, items))
}

func (p *Page) ShowNavigationBar() { p.ensureNavBar().node.Show() }
func (p *Page) HideNavigationBar() { p.ensureNavBar().node.Hide() }
func (p *Page) ShowToolbar()       { p.ensureToolbar().node.Show() }
func (p *Page) HideToolbar()       { p.ensureToolbar().node.Hide() }

// BackgroundColor returns the page background.
func (p *Page) BackgroundColor() string { return p.node.Style.Background }

// SetBackgroundColor sets the page background.
func (p *Page) SetBackgroundColor(v string) error {
	if !IsValidColor(v) {
		return p.report(colorErr("Page.SetBackgroundColor", v))
	}
	p.node.Style.Background = v
	return nil
}

func (p *Page) arrange(ctx RenderContext) string {
	var top, bottom string
	if p.navBar != nil && !p.navBar.node.hidden {
		top = p.navBar.node.Render(ctx)
	}
	if p.toolbar != nil && !p.toolbar.node.hidden {
		bottom = p.toolbar.node.Render(ctx)
	}
	var view string
	if p.body != nil {
		view = p.body.View()
	}
	height := ctx.Height - lipgloss.Height(top) - lipgloss.Height(bottom)
	if top == "" {
		height++
	}
	if bottom == "" {
		height++
	}
	height = max(height, 0)
	// The body view keeps its lines; components get what is left.
	inner := ctx
	inner.Height = height
	if view != "" {
		inner.Height = max(height-lipgloss.Height(view), 0)
	}
	body := p.content.Render(inner)
	if view != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, view)
	}
	body = lipgloss.Place(ctx.Width, height, lipgloss.Left, lipgloss.Top, body)
	parts := make([]string, 0, 3)
	if top != "" {
		parts = append(parts, top)
	}
	parts = append(parts, body)
	if bottom != "" {
		parts = append(parts, bottom)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Render draws the page to fill ctx.
func (p *Page) Render(ctx RenderContext) string {
	p.node.Style.Width = Cells(ctx.Width)
	p.node.Style.Height = Cells(ctx.Height)
	return p.node.Render(ctx)
}

// Hook transitions. Each fires only on a real state change.

func (p *Page) init() {
	if p.state != PageUninitialized {
		return
	}
	p.state = PageMounted
	p.hooks.OnInit(p)
}

func (p *Page) show() {
	switch p.state {
	case PageDestroyed, PageShown:
		return
	case PageUninitialized:
		p.init()
	}
	p.state = PageShown
	p.node.Show()
	p.hooks.OnShow(p)
}

func (p *Page) hide() {
	if p.state != PageShown {
		return
	}
	p.state = PageHidden
	p.hooks.OnHide(p)
}

func (p *Page) destroy() {
	if p.state == PageDestroyed {
		return
	}
	p.hide()
	p.state = PageDestroyed
	p.owner = nil
	p.nav = nil
	p.hooks.OnDestroy(p)
}
