package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func barTexts(nodes []*Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Text)
	}
	return out
}

func TestPage_SetBarButtonsReplaces(t *testing.T) {
	p := NewPage("board", nil)
	if p.NavigationBar() != nil {
		t.Fatal("bars are created on first use")
	}
	if err := p.SetNavigationBarButtonsLeft(NewBarButton("Restart", nil), NewBarButton("Timer", nil)); err != nil {
		t.Fatal(err)
	}
	if err := p.SetNavigationBarButtonsLeft(NewBackBarButton("", nil)); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"‹ Back"}, barTexts(p.NavigationBar().Left())); d != "" {
		t.Errorf("left buttons (-want +got):\n%s", d)
	}
}

func TestPage_NilBarButtonReported(t *testing.T) {
	p := NewPage("board", nil)
	err := p.SetToolbarButtonsRight(NewBarButton("Edit", nil), nil)
	if !errors.Is(err, ErrNilComponent) {
		t.Fatalf("err = %v", err)
	}
	var te *Error
	if !errors.As(err, &te) || te.Kind != KindValidation {
		t.Errorf("err = %#v", err)
	}
	if d := cmp.Diff([]string{"Edit"}, barTexts(p.Toolbar().Right())); d != "" {
		t.Errorf("right buttons (-want +got):\n%s", d)
	}
}

func TestPage_AddComponentsSkipsNil(t *testing.T) {
	p := NewPage("settings", nil)
	err := p.AddComponents(NewText("one"), nil, NewText("two"))
	if !errors.Is(err, ErrNilComponent) {
		t.Errorf("err = %v", err)
	}
	if n := len(p.Content().Children()); n != 2 {
		t.Errorf("content has %d children, want 2", n)
	}
}

func TestPage_BarsRender(t *testing.T) {
	p := NewPage("settings", nil)
	p.SetNavigationBarTitle("Settings")
	if err := p.SetToolbarButtonsLeft(NewBarButton("Start", nil)); err != nil {
		t.Fatal(err)
	}
	out := p.Render(RenderContext{Width: 40, Height: 8})
	if !strings.Contains(out, "Settings") || !strings.Contains(out, "Start") {
		t.Errorf("render = %q", out)
	}

	p.HideToolbar()
	p.HideNavigationBar()
	out = p.Render(RenderContext{Width: 40, Height: 8})
	if strings.Contains(out, "Settings") || strings.Contains(out, "Start") {
		t.Errorf("hidden bars still drawn: %q", out)
	}
}

func TestPage_SetBackgroundColor(t *testing.T) {
	p := NewPage("board", nil)
	if err := p.SetBackgroundColor("#0000FF"); err != nil {
		t.Fatal(err)
	}
	err := p.SetBackgroundColor("bluish")
	if !errors.Is(err, ErrInvalidColor) {
		t.Errorf("err = %v", err)
	}
	if p.BackgroundColor() != "#0000FF" {
		t.Errorf("background = %q", p.BackgroundColor())
	}
}

func TestPage_HooksFireOnce(t *testing.T) {
	log := &hookLog{}
	nav, _ := mountedNavigator(t, log)
	a := log.page("a")
	for range 3 {
		if _, err := nav.Push(a, false); err != nil {
			t.Fatal(err)
		}
		if _, err := nav.SwitchTo(0, false); err != nil {
			t.Fatal(err)
		}
		if _, err := nav.SwitchTo(1, false); err != nil {
			t.Fatal(err)
		}
		if _, _, err := nav.Pop(false); err != nil {
			t.Fatal(err)
		}
		if _, err := nav.Push(a, false); !errors.Is(err, ErrPageDestroyed) {
			t.Fatalf("re-push of a destroyed page: %v", err)
		}
		a = log.page("a")
	}
	var inits, destroys int
	for _, ev := range log.take() {
		switch ev {
		case "a:init":
			inits++
		case "a:destroy":
			destroys++
		}
	}
	if inits != 3 || destroys != 3 {
		t.Errorf("inits %d destroys %d, want one each per page", inits, destroys)
	}
}

func TestPage_ReportsThroughOwner(t *testing.T) {
	log := &hookLog{}
	nav, errs := mountedNavigator(t, log)
	p := log.page("a")
	if _, err := nav.Push(p, false); err != nil {
		t.Fatal(err)
	}
	_ = p.SetBackgroundColor("bluish")
	_ = p.SetNavigationBarButtonsRight(nil)
	if len(errs.Errors) != 2 {
		t.Fatalf("navigator reporter got %v", errs.Errors)
	}

	own := &ErrorLog{}
	p.SetReporter(own)
	_ = p.AddComponents(nil)
	if len(own.Errors) != 1 || len(errs.Errors) != 2 {
		t.Errorf("page reporter %v, navigator reporter %v", own.Errors, errs.Errors)
	}

	d := NewDialog(liveStack())
	dlog := &ErrorLog{}
	d.SetReporter(dlog)
	sheet := NewPage("sheet", nil)
	if err := d.SetRoot(sheet); err != nil {
		t.Fatal(err)
	}
	_ = sheet.SetToolbarButtonsLeft(nil)
	if len(dlog.Errors) != 1 {
		t.Errorf("dialog reporter got %v", dlog.Errors)
	}
}
