package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// hookLog records lifecycle hooks as "id:hook" strings.
type hookLog struct{ events []string }

func (l *hookLog) page(id string) *Page {
	return NewPage(id, &recorder{id: id, log: l})
}

func (l *hookLog) take() []string {
	out := l.events
	l.events = nil
	return out
}

type recorder struct {
	id  string
	log *hookLog
}

func (r *recorder) OnInit(*Page)    { r.log.events = append(r.log.events, r.id+":init") }
func (r *recorder) OnShow(*Page)    { r.log.events = append(r.log.events, r.id+":show") }
func (r *recorder) OnHide(*Page)    { r.log.events = append(r.log.events, r.id+":hide") }
func (r *recorder) OnDestroy(*Page) { r.log.events = append(r.log.events, r.id+":destroy") }

type navRecorder struct{ ops []string }

func (o *navRecorder) DidPush(ev NavEvent)   { o.ops = append(o.ops, "push "+ev.To.ID()) }
func (o *navRecorder) DidPop(ev NavEvent)    { o.ops = append(o.ops, "pop "+ev.From.ID()) }
func (o *navRecorder) DidSwitch(ev NavEvent) { o.ops = append(o.ops, "switch "+ev.To.ID()) }

func mountedNavigator(t *testing.T, log *hookLog, opts ...NavigatorOption) (*Navigator, *ErrorLog) {
	t.Helper()
	errs := &ErrorLog{}
	nav, err := NewNavigator(log.page("root"), append([]NavigatorOption{WithReporter(errs)}, opts...)...)
	if err != nil {
		t.Fatalf("NewNavigator: %v", err)
	}
	if err := nav.Mount(NewDocument().Body); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	return nav, errs
}

func diffHooks(t *testing.T, want, got []string) {
	t.Helper()
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("hooks (-want +got):\n%s", d)
	}
}

func TestNavigator_MountInitsRoot(t *testing.T) {
	log := &hookLog{}
	nav, err := NewNavigator(log.page("root"))
	if err != nil {
		t.Fatal(err)
	}
	if len(log.events) != 0 {
		t.Fatalf("hooks before mount: %v", log.events)
	}
	if err := nav.Mount(NewNode("detached")); err != nil {
		t.Fatal(err)
	}
	if nav.Live() {
		t.Fatal("a detached parent is not live")
	}
	if err := nav.Mount(NewDocument().Body); err != nil {
		t.Fatal(err)
	}
	diffHooks(t, []string{"root:init", "root:show"}, log.take())
}

func TestNavigator_PushPopHooks(t *testing.T) {
	log := &hookLog{}
	obs := &navRecorder{}
	nav, errs := mountedNavigator(t, log, WithObserver(obs))
	log.take()

	if _, err := nav.Push(log.page("a"), false); err != nil {
		t.Fatal(err)
	}
	diffHooks(t, []string{"a:init", "root:hide", "a:show"}, log.take())
	if !nav.Stack()[0].Node().Hidden() {
		t.Error("root should be hidden after a non-animated push")
	}

	popped, _, err := nav.Pop(false)
	if err != nil {
		t.Fatal(err)
	}
	if popped.ID() != "a" || popped.State() != PageDestroyed {
		t.Errorf("popped %s in state %v", popped.ID(), popped.State())
	}
	diffHooks(t, []string{"a:hide", "root:show", "a:destroy"}, log.take())

	if d := cmp.Diff([]string{"push a", "pop a"}, obs.ops); d != "" {
		t.Errorf("observer (-want +got):\n%s", d)
	}
	if len(errs.Errors) != 0 {
		t.Errorf("unexpected errors: %v", errs.Errors)
	}
}

func TestNavigator_PopLastPage(t *testing.T) {
	log := &hookLog{}
	nav, errs := mountedNavigator(t, log)

	_, _, err := nav.Pop(false)
	if !errors.Is(err, ErrLastPage) {
		t.Fatalf("err = %v, want ErrLastPage", err)
	}
	if k, _ := KindOf(err); k != KindStructure {
		t.Errorf("kind = %v", k)
	}
	if len(errs.Errors) != 1 {
		t.Errorf("reported %d errors, want 1", len(errs.Errors))
	}
	if nav.Len() != 1 {
		t.Errorf("depth = %d", nav.Len())
	}
}

func TestNavigator_PushRejectsBadPages(t *testing.T) {
	log := &hookLog{}
	nav, _ := mountedNavigator(t, log)
	a := log.page("a")
	if _, err := nav.Push(a, false); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		page *Page
		want error
	}{
		{"nil", nil, ErrNilPage},
		{"already in stack", a, ErrPageInStack},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := nav.Push(tt.page, false); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}

	if _, _, err := nav.Pop(false); err != nil {
		t.Fatal(err)
	}
	if _, err := nav.Push(a, false); !errors.Is(err, ErrPageDestroyed) {
		t.Errorf("pushing a destroyed page: err = %v", err)
	}
}

func TestNavigator_SwitchTo(t *testing.T) {
	log := &hookLog{}
	nav, _ := mountedNavigator(t, log)
	for _, id := range []string{"a", "b"} {
		if _, err := nav.Push(log.page(id), false); err != nil {
			t.Fatal(err)
		}
	}
	log.take()

	if _, err := nav.SwitchTo(0, false); err != nil {
		t.Fatal(err)
	}
	diffHooks(t, []string{"b:hide", "root:show"}, log.take())
	if nav.Current().ID() != "root" || nav.Len() != 3 {
		t.Errorf("current %s depth %d", nav.Current().ID(), nav.Len())
	}

	if _, err := nav.SwitchTo(0, false); err != nil {
		t.Fatal(err)
	}
	if len(log.events) != 0 {
		t.Errorf("switching to the current page fired %v", log.events)
	}

	for _, index := range []int{3, 5, -1} {
		if _, err := nav.SwitchTo(index, false); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("SwitchTo(%d) err = %v, want ErrOutOfBounds", index, err)
		}
		if nav.Current().ID() != "root" || nav.CurrentIndex() != 0 || nav.Len() != 3 {
			t.Errorf("SwitchTo(%d) changed state: current %s index %d depth %d",
				index, nav.Current().ID(), nav.CurrentIndex(), nav.Len())
		}
		if evs := log.take(); len(evs) != 0 {
			t.Errorf("SwitchTo(%d) fired %v", index, evs)
		}
	}

	// Popping while root is current makes the new top current.
	if _, _, err := nav.Pop(false); err != nil {
		t.Fatal(err)
	}
	diffHooks(t, []string{"root:hide", "a:show", "b:destroy"}, log.take())
	if nav.Current().ID() != "a" {
		t.Errorf("current = %s, want the new top", nav.Current().ID())
	}
}

func TestNavigator_PushPopRestores(t *testing.T) {
	tests := []struct {
		name     string
		animated bool
		// setup runs on a stack of [root, a] with a current.
		setup func(t *testing.T, nav *Navigator)
		want  string
		hooks []string
	}{
		{name: "top", want: "a", hooks: []string{"b:hide", "a:show", "b:destroy"}},
		{name: "top animated", animated: true, want: "a", hooks: []string{"b:hide", "a:show", "b:destroy"}},
		{
			name: "after switch",
			setup: func(t *testing.T, nav *Navigator) {
				if _, err := nav.SwitchTo(0, false); err != nil {
					t.Fatal(err)
				}
			},
			want:  "root",
			hooks: []string{"b:hide", "root:show", "b:destroy"},
		},
		{
			name:     "after switch animated",
			animated: true,
			setup: func(t *testing.T, nav *Navigator) {
				if _, err := nav.SwitchTo(0, false); err != nil {
					t.Fatal(err)
				}
			},
			want:  "root",
			hooks: []string{"b:hide", "root:show", "b:destroy"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &hookLog{}
			nav, _ := mountedNavigator(t, log)
			if _, err := nav.Push(log.page("a"), false); err != nil {
				t.Fatal(err)
			}
			if tt.setup != nil {
				tt.setup(t, nav)
			}
			wantCurrent, wantIndex, wantLen := nav.Current(), nav.CurrentIndex(), nav.Len()
			if wantCurrent.ID() != tt.want {
				t.Fatalf("current before push = %s, want %s", wantCurrent.ID(), tt.want)
			}

			b := log.page("b")
			if _, err := nav.Push(b, tt.animated); err != nil {
				t.Fatal(err)
			}
			log.take()
			if _, _, err := nav.Pop(tt.animated); err != nil {
				t.Fatal(err)
			}
			runFrames(nav)

			if nav.Current() != wantCurrent || nav.CurrentIndex() != wantIndex || nav.Len() != wantLen {
				t.Errorf("after push+pop: current %s index %d depth %d, want %s %d %d",
					nav.Current().ID(), nav.CurrentIndex(), nav.Len(), wantCurrent.ID(), wantIndex, wantLen)
			}
			diffHooks(t, tt.hooks, log.take())
			if wantCurrent.Node().Hidden() || b.Node().IsAttached() {
				t.Error("the restored page should be drawn and b detached")
			}
		})
	}
}

func TestNavigator_MountUnderLateAttachedParent(t *testing.T) {
	log := &hookLog{}
	nav, err := NewNavigator(log.page("root"))
	if err != nil {
		t.Fatal(err)
	}
	wrapper := NewNode("wrapper")
	if err := nav.Mount(wrapper); err != nil {
		t.Fatal(err)
	}
	if nav.Live() {
		t.Fatal("a detached parent is not live")
	}
	if evs := log.take(); len(evs) != 0 {
		t.Fatalf("hooks before attach: %v", evs)
	}

	doc := NewDocument()
	if err := doc.Body.AppendChild(wrapper); err != nil {
		t.Fatal(err)
	}
	a := log.page("a")
	if _, err := nav.Push(a, false); err != nil {
		t.Fatal(err)
	}
	diffHooks(t, []string{"root:init", "root:show", "a:init", "root:hide", "a:show"}, log.take())
	if !nav.Live() || a.State() != PageShown {
		t.Errorf("live %v, a %v", nav.Live(), a.State())
	}
}

// runFrames feeds transition frames to nav until it settles.
func runFrames(nav *Navigator) int {
	n := 0
	for nav.Transition() != nil {
		tr := nav.Transition()
		nav.Update(TransitionFrameMsg{ID: tr.ID, Step: tr.Step() + 1})
		n++
	}
	return n
}

func TestNavigator_AnimatedPush(t *testing.T) {
	log := &hookLog{}
	nav, _ := mountedNavigator(t, log)
	root := nav.Current()
	log.take()

	cmd, err := nav.Push(log.page("a"), true)
	if err != nil {
		t.Fatal(err)
	}
	if cmd == nil {
		t.Fatal("expected a frame command")
	}
	diffHooks(t, []string{"a:init", "root:hide", "a:show"}, log.take())
	if root.Node().Hidden() {
		t.Error("outgoing page stays drawn during the slide")
	}
	if got := nav.Current().Node().TranslateX(); got != 100 {
		t.Errorf("incoming page starts at %v%%, want 100", got)
	}

	frames := runFrames(nav)
	if want := nav.Stack()[1]; frames == 0 || want.Node().TranslateX() != 0 {
		t.Errorf("after %d frames translateX = %v", frames, want.Node().TranslateX())
	}
	if !root.Node().Hidden() {
		t.Error("outgoing page should be hidden once the slide ends")
	}
}

func TestNavigator_SupersededTransitionSettles(t *testing.T) {
	log := &hookLog{}
	nav, _ := mountedNavigator(t, log)
	if _, err := nav.Push(log.page("a"), true); err != nil {
		t.Fatal(err)
	}
	first := nav.Transition()
	log.take()

	// Popping mid-slide finishes the push first.
	if _, _, err := nav.Pop(true); err != nil {
		t.Fatal(err)
	}
	if !first.Done() || first.Context().Err() == nil {
		t.Error("superseded transition should be finished and cancelled")
	}
	diffHooks(t, []string{"a:hide", "root:show"}, log.take())

	// A stale frame for the old transition does nothing.
	if cmd := nav.Update(TransitionFrameMsg{ID: first.ID, Step: 1}); cmd != nil {
		t.Error("stale frame produced a command")
	}
	runFrames(nav)
	diffHooks(t, []string{"a:destroy"}, log.take())
	if nav.Len() != 1 || nav.Current().Node().Hidden() {
		t.Error("root should be the only, visible page")
	}
}

func TestNavigator_AnimationsOff(t *testing.T) {
	log := &hookLog{}
	nav, _ := mountedNavigator(t, log, WithAnimations(false))
	cmd, err := nav.Push(log.page("a"), true)
	if err != nil {
		t.Fatal(err)
	}
	if cmd != nil || nav.Transition() != nil {
		t.Error("animations are off")
	}
}

func TestNavigator_RenderMidSlide(t *testing.T) {
	root := NewPage("root", nil)
	root.SetNavigationBarTitle("Root")
	nav, err := NewNavigator(root)
	if err != nil {
		t.Fatal(err)
	}
	if err := nav.Mount(NewDocument().Body); err != nil {
		t.Fatal(err)
	}
	next := NewPage("next", nil)
	next.SetNavigationBarTitle("Next")
	if _, err := nav.Push(next, true); err != nil {
		t.Fatal(err)
	}
	tr := nav.Transition()
	nav.Update(TransitionFrameMsg{ID: tr.ID, Step: tr.Steps / 2})
	out := nav.Render(RenderContext{Width: 40, Height: 5})
	if out == "" {
		t.Fatal("empty render")
	}
	runFrames(nav)
	if got := nav.Render(RenderContext{Width: 40, Height: 5}); !strings.Contains(got, "Next") {
		t.Errorf("settled render = %q", got)
	}
}

func TestTransition_FrameCommandAfterFinish(t *testing.T) {
	tr := newTransition(TransitionFade, FadeDuration, nil, nil)
	cmd := tr.Next()
	tr.Finish()
	if msg := cmd(); msg != nil {
		t.Errorf("frame after finish = %#v, want nil", msg)
	}
}

func TestEaseInOut(t *testing.T) {
	for _, tt := range []struct{ in, want float64 }{
		{-1, 0}, {0, 0}, {0.25, 0.125}, {0.5, 0.5}, {0.75, 0.875}, {1, 1}, {2, 1},
	} {
		if got := easeInOut(tt.in); got != tt.want {
			t.Errorf("easeInOut(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
