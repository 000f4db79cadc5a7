package pages

import (
	_ "embed"
	"fmt"

	"cornscore/internal/ui"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"
)

// AppInfoPage shows the version and links to the release notes.
type AppInfoPage struct {
	ui.BaseLifecycle
	env  Env
	page *ui.Page
}

// NewAppInfoPage creates the app info page.
func NewAppInfoPage(env Env) *AppInfoPage {
	ap := &AppInfoPage{env: env}
	ap.page = ui.NewPage(AppInfoID, ap)
	return ap
}

// Page returns the page.
func (ap *AppInfoPage) Page() *ui.Page { return ap.page }

// OnInit implements ui.Lifecycle.
func (ap *AppInfoPage) OnInit(p *ui.Page) {
	p.SetNavigationBarTitle("App Info")
	p.SetNavigationBarButtonsLeft(backButton())
	rows := ui.NewList("",
		ui.NewListItem("Version: "+Version, nil),
		ui.NewListItem("What's New", func(ui.TapEvent) tea.Cmd {
			wp, err := NewWhatsNewPage(ap.env)
			if err != nil {
				ap.env.report(err)
				return nil
			}
			return push(ap.env, p, wp.Page())
		}),
	)
	p.AddComponents(rows)
}

//go:embed whatsnew.yaml
var whatsNewYAML []byte

// ReleaseNotes is the what's new document.
type ReleaseNotes struct {
	Releases []Release `yaml:"releases"`
}

// Release is one version's notes.
type Release struct {
	Version string `yaml:"version"`
	Notes   []Note `yaml:"notes"`
}

// Note is one change. Kind is "feature" or "fix".
type Note struct {
	Kind string `yaml:"kind"`
	Text string `yaml:"text"`
}

// ParseReleaseNotes decodes a release notes document.
func ParseReleaseNotes(data []byte) (*ReleaseNotes, error) {
	var rn ReleaseNotes
	if err := yaml.Unmarshal(data, &rn); err != nil {
		return nil, fmt.Errorf("parse release notes: %w", err)
	}
	for i, r := range rn.Releases {
		if r.Version == "" {
			return nil, fmt.Errorf("parse release notes: release %d has no version", i)
		}
	}
	return &rn, nil
}

// noteItem implements list.Item for a Note.
type noteItem struct {
	version string
	Note
}

func (n noteItem) FilterValue() string { return n.Text }
func (n noteItem) Title() string {
	icon := "★"
	if n.Kind == "fix" {
		icon = "✔"
	}
	return icon + " " + n.Text
}
func (n noteItem) Description() string { return n.version }

// WhatsNewPage lists the release notes in a scrollable list.
type WhatsNewPage struct {
	ui.BaseLifecycle
	env  Env
	page *ui.Page
	list list.Model
}

// NewWhatsNewPage creates the page from the embedded release notes.
func NewWhatsNewPage(env Env) (*WhatsNewPage, error) {
	rn, err := ParseReleaseNotes(whatsNewYAML)
	if err != nil {
		return nil, err
	}
	var items []list.Item
	for _, r := range rn.Releases {
		for _, n := range r.Notes {
			items = append(items, noteItem{version: r.Version, Note: n})
		}
	}
	l := list.New(items, ui.NewCompactListDelegate(), 0, 0)
	l.Title = "App Version: " + Version
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = ui.Styles.Title
	w, h := env.App.Size()
	l.SetSize(w, max(h-2, 1))

	wp := &WhatsNewPage{env: env, list: l}
	wp.page = ui.NewPage(WhatsNewID, wp)
	wp.page.SetBody(wp)
	return wp, nil
}

// Page returns the page.
func (wp *WhatsNewPage) Page() *ui.Page { return wp.page }

// OnInit implements ui.Lifecycle.
func (wp *WhatsNewPage) OnInit(p *ui.Page) {
	p.SetNavigationBarTitle("What's New")
	p.SetNavigationBarButtonsLeft(backButton())
}

// Init implements ui.View.
func (wp *WhatsNewPage) Init() tea.Cmd { return nil }

// Update implements ui.View.
func (wp *WhatsNewPage) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		wp.list.SetSize(ws.Width, max(ws.Height-2, 1))
		return wp, nil
	}
	var cmd tea.Cmd
	wp.list, cmd = wp.list.Update(msg)
	return wp, cmd
}

// View implements ui.View.
func (wp *WhatsNewPage) View() string { return wp.list.View() }
