package ui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// BackMsg pops the app's navigator.
type BackMsg struct{}

// Back is a command that pops the app's navigator.
func Back() tea.Msg { return BackMsg{} }

// Presentable is an app root: a *Navigator or a *Page.
type Presentable interface {
	Child
	presentable()
}

func (*Navigator) presentable() {}
func (*Page) presentable()      {}

// App is the composition root. It owns the document, the overlay stack,
// keybinds, focus and the component registry.
type App struct {
	doc      *Document
	nav      *Navigator
	page     *Page
	overlays *OverlayStack
	keys     *KeyHandler
	focus    *FocusManager
	zones    *zone.Manager
	reporter Reporter
	animate  bool
	mouse    bool

	registry  map[string]*Component
	presented bool

	width, height int
	// tappable nodes drawn in the last frame, by layer
	baseTaps    []*Node
	overlayTaps []*Node
}

// AppOption configures an App.
type AppOption func(*App)

// WithAppReporter sets where app errors are reported.
func WithAppReporter(r Reporter) AppOption {
	return func(a *App) { a.reporter = r }
}

// WithKeybinds sets the keybind registry. SPC is the leader key.
func WithKeybinds(reg *KeybindRegistry) AppOption {
	return func(a *App) { a.keys = NewKeyHandler(reg) }
}

// WithZones sets the bubblezone manager used for mouse hit-testing.
func WithZones(z *zone.Manager) AppOption {
	return func(a *App) { a.zones = z }
}

// WithMouse enables mouse taps.
func WithMouse(on bool) AppOption {
	return func(a *App) { a.mouse = on }
}

// WithAppAnimations turns navigation animations on or off.
func WithAppAnimations(on bool) AppOption {
	return func(a *App) { a.animate = on }
}

// NewApp creates an app with an empty document.
func NewApp(opts ...AppOption) *App {
	a := &App{
		doc:      NewDocument(),
		focus:    &FocusManager{},
		reporter: LogReporter{},
		animate:  true,
		registry: make(map[string]*Component),
		width:    80,
		height:   24,
	}
	for _, o := range opts {
		o(a)
	}
	if a.keys == nil {
		a.keys = NewKeyHandler(NewKeybindRegistry())
	}
	a.overlays = NewOverlayStack(a.doc.Body)
	a.overlays.Animate = a.animate
	a.focus.OnChange = a.focusChanged
	return a
}

// Document returns the live document.
func (a *App) Document() *Document { return a.doc }

// Overlays returns the overlay stack presenters attach to.
func (a *App) Overlays() *OverlayStack { return a.overlays }

// Navigator returns the root navigator, or nil if the root is a page.
func (a *App) Navigator() *Navigator { return a.nav }

// Reporter returns the app's error reporter.
func (a *App) Reporter() Reporter { return a.reporter }

// Animate reports whether navigation should animate.
func (a *App) Animate() bool { return a.animate }

// Keys returns the key handler.
func (a *App) Keys() *KeyHandler { return a.keys }

// Focus returns the focus manager.
func (a *App) Focus() *FocusManager { return a.focus }

// Size returns the last known terminal size.
func (a *App) Size() (width, height int) { return a.width, a.height }

// CurrentPage returns the visible page.
func (a *App) CurrentPage() *Page {
	switch {
	case a.nav != nil:
		return a.nav.Current()
	case a.page != nil:
		return a.page
	}
	return nil
}

// Present mounts root into the document. It can be called once.
func (a *App) Present(root Presentable) error {
	const op = "App.Present"
	if a.presented {
		return report(a.reporter, structureErr(op, ErrAlreadyPresented))
	}
	switch r := root.(type) {
	case *Navigator:
		if r == nil {
			return report(a.reporter, structureErr(op, ErrNilPage))
		}
		if err := r.Mount(a.doc.Body); err != nil {
			return err
		}
		a.nav = r
	case *Page:
		if r == nil {
			return report(a.reporter, structureErr(op, ErrNilPage))
		}
		if r.owner != nil {
			return report(a.reporter, structureErr(op, fmt.Errorf("%w: %q", ErrPageInStack, r.id)))
		}
		if err := a.doc.Body.AppendChild(r); err != nil {
			return report(a.reporter, err)
		}
		r.owner = a
		r.init()
		r.show()
		a.page = r
	default:
		return report(a.reporter, structureErr(op, ErrNilPage))
	}
	// Keep overlays drawn after the root.
	_ = a.doc.Body.AppendChild(a.overlays.Layer)
	a.presented = true
	return nil
}

// RegisterComponent makes c findable by its id.
func (a *App) RegisterComponent(c *Component) error {
	const op = "App.RegisterComponent"
	if c == nil {
		return report(a.reporter, validationErr(op, ErrNilComponent))
	}
	if c.ID() == "" {
		return report(a.reporter, structureErr(op, ErrMissingID))
	}
	a.registry[c.ID()] = c
	return nil
}

// ComponentByID returns a registered component.
func (a *App) ComponentByID(id string) (*Component, error) {
	const op = "App.ComponentByID"
	if !a.presented {
		return nil, report(a.reporter, structureErr(op, ErrNotPresented))
	}
	c, ok := a.registry[id]
	if !ok {
		return nil, report(a.reporter, structureErr(op, fmt.Errorf("%w %q", ErrNotFound, id)))
	}
	return c, nil
}

func (a *App) focusChanged(from, to string) {
	for _, n := range a.activeTaps() {
		switch n.zoneID {
		case from:
			n.focusChanged(false)
		case to:
			n.focusChanged(true)
		}
	}
}

func (a *App) activeTaps() []*Node {
	if a.overlays.Len() > 0 {
		return a.overlayTaps
	}
	return a.baseTaps
}

func (a *App) focusedNode() *Node {
	if a.focus.Current == "" {
		return nil
	}
	for _, n := range a.activeTaps() {
		if n.zoneID == a.focus.Current {
			return n
		}
	}
	return nil
}

// AsTeaModel adapts the app for tea.NewProgram.
func (a *App) AsTeaModel() tea.Model {
	return &appModelAdapter{App: a}
}

// Ensure App can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps App to implement tea.Model.
type appModelAdapter struct {
	*App
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	if p := a.CurrentPage(); p != nil && p.body != nil {
		return p.body.Init()
	}
	return nil
}

// Update implements tea.Model. Keys go to overlays first, then the focused
// input, then keybinds, then focus movement, then the current page body.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, a.updateBody(msg)
	case TransitionFrameMsg:
		var cmd tea.Cmd
		if a.nav != nil {
			cmd = a.nav.Update(msg)
		}
		return a, tea.Batch(cmd, a.overlays.Broadcast(msg))
	case FocusMsg:
		if msg.Node != nil {
			a.focus.SetFocus(msg.Node.zoneID)
		}
		return a, nil
	case BackMsg:
		if a.nav == nil {
			return a, nil
		}
		a.focus.Clear()
		_, cmd, _ := a.nav.Pop(a.animate)
		return a, cmd
	case tea.MouseMsg:
		return a, a.handleMouse(msg)
	case tea.KeyMsg:
		return a, a.handleKey(msg)
	}
	cmd, ok := a.overlays.UpdateTop(msg)
	if ok {
		return a, cmd
	}
	return a, tea.Batch(cmd, a.updateBody(msg))
}

func (a *appModelAdapter) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	if a.overlays.Len() > 0 {
		cmd, _ := a.overlays.UpdateTop(msg)
		return cmd
	}
	if n := a.focusedNode(); n != nil {
		if consumed, cmd := n.HandleKey(msg); consumed {
			return cmd
		}
	}
	if a.keys != nil {
		if p := a.CurrentPage(); p != nil {
			a.keys.Page = p.id
		}
		if consumed, cmd := a.keys.Handle(msg); consumed {
			return cmd
		}
	}
	switch msg.String() {
	case "tab":
		a.focus.Next()
		return nil
	case "shift+tab":
		a.focus.Prev()
		return nil
	case "esc":
		if a.focus.Current != "" {
			a.focus.Clear()
			return nil
		}
	case "enter":
		if n := a.focusedNode(); n != nil {
			_, cmd := n.Tap(TapEvent{X: -1, Y: -1, Keyboard: true})
			return cmd
		}
	}
	return a.updateBody(msg)
}

func (a *appModelAdapter) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !a.mouse || a.zones == nil {
		return nil
	}
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	taps := a.activeTaps()
	// Later nodes are drawn on top.
	for i := len(taps) - 1; i >= 0; i-- {
		n := taps[i]
		z := a.zones.Get(n.zoneID)
		if z == nil || !z.InBounds(msg) {
			continue
		}
		x, y := z.Pos(msg)
		if n.keys != nil {
			a.focus.SetFocus(n.zoneID)
		}
		_, cmd := n.Tap(TapEvent{X: x, Y: y, Width: z.EndX - z.StartX + 1, Height: z.EndY - z.StartY + 1})
		return cmd
	}
	if a.overlays.Len() == 0 {
		a.focus.Clear()
	}
	return nil
}

// updateBody passes msg to the current page's body view.
func (a *appModelAdapter) updateBody(msg tea.Msg) tea.Cmd {
	p := a.CurrentPage()
	if p == nil || p.body == nil {
		return nil
	}
	v, cmd := p.body.Update(msg)
	p.body = v
	return cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if !a.presented {
		return ""
	}
	var base, over []*Node
	ctx := RenderContext{
		Width:     a.width,
		Height:    a.height,
		Zones:     a.zones,
		Focused:   a.focusedNode(),
		Tappables: &base,
	}
	var out string
	if a.nav != nil {
		out = a.nav.Render(ctx)
	} else {
		out = a.page.Render(ctx)
	}
	if a.keys != nil && a.keys.LeaderWaiting {
		if help := RenderKeybindHelp(a.keys); help != "" {
			out = Composite(out, help, 0, a.height-lipgloss.Height(help))
		}
	}
	if a.overlays.Len() > 0 {
		ctx.Tappables = &over
		out = a.overlays.Render(ctx, out)
	}
	a.baseTaps, a.overlayTaps = base, over
	order := make([]string, 0, len(a.activeTaps()))
	for _, n := range a.activeTaps() {
		order = append(order, n.zoneID)
	}
	a.focus.Sync(order)
	if a.zones != nil {
		return a.zones.Scan(out)
	}
	return out
}

// IsStructural reports whether err is a structural toolkit error.
func IsStructural(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindStructure
}
