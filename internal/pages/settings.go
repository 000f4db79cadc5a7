package pages

import (
	"cornscore/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// SettingsPage links to customization, the round timer switch, the
// project links and app info.
type SettingsPage struct {
	ui.BaseLifecycle
	env   Env
	page  *ui.Page
	timer *ui.ListItem
}

// NewSettingsPage creates the settings page.
func NewSettingsPage(env Env) *SettingsPage {
	sp := &SettingsPage{env: env}
	sp.page = ui.NewPage(SettingsID, sp)
	return sp
}

// Page returns the page.
func (sp *SettingsPage) Page() *ui.Page { return sp.page }

// OnInit implements ui.Lifecycle.
func (sp *SettingsPage) OnInit(p *ui.Page) {
	p.SetNavigationBarTitle("Settings")
	p.SetNavigationBarButtonsLeft(backButton())

	sp.timer = ui.NewListItem("", func(ui.TapEvent) tea.Cmd {
		sp.env.report(sp.env.Settings.SetShowTimer(!sp.env.Settings.ShowTimer()))
		sp.syncTimer()
		return nil
	})
	rows := ui.NewList("",
		ui.NewListItem("Customize", func(ui.TapEvent) tea.Cmd {
			return push(sp.env, p, NewCustomizationPage(sp.env).Page())
		}),
		sp.timer,
		ui.NewListItem("Get Involved", func(ui.TapEvent) tea.Cmd {
			return push(sp.env, p, NewGetInvolvedPage(sp.env).Page())
		}),
		ui.NewListItem("App Info", func(ui.TapEvent) tea.Cmd {
			return push(sp.env, p, NewAppInfoPage(sp.env).Page())
		}),
	)
	p.AddComponents(rows)
	sp.syncTimer()
}

func (sp *SettingsPage) syncTimer() {
	state := "Off"
	if sp.env.Settings.ShowTimer() {
		state = "On"
	}
	sp.timer.SetLabel("Round Timer: " + state)
}

// GetInvolvedPage points at the project. Links are shown, not opened.
type GetInvolvedPage struct {
	ui.BaseLifecycle
	env  Env
	page *ui.Page
}

// NewGetInvolvedPage creates the get involved page.
func NewGetInvolvedPage(env Env) *GetInvolvedPage {
	gp := &GetInvolvedPage{env: env}
	gp.page = ui.NewPage(GetInvolvedID, gp)
	return gp
}

// Page returns the page.
func (gp *GetInvolvedPage) Page() *ui.Page { return gp.page }

// OnInit implements ui.Lifecycle.
func (gp *GetInvolvedPage) OnInit(p *ui.Page) {
	p.SetNavigationBarTitle("Get Involved")
	p.SetNavigationBarButtonsLeft(backButton())
	rows := ui.NewList("",
		ui.NewListItem("Source Code", gp.linkTapped("Source Code", SourceURL)),
		ui.NewListItem("Report A Bug", gp.linkTapped("Report A Bug", SourceURL+"/issues/new?labels=bug")),
		ui.NewListItem("Request A Feature", gp.linkTapped("Request A Feature", SourceURL+"/issues/new?labels=enhancement")),
	)
	p.AddComponents(rows)
}

func (gp *GetInvolvedPage) linkTapped(title, url string) ui.TapHandler {
	return func(ui.TapEvent) tea.Cmd {
		alert := ui.NewAlertDialog(gp.env.App.Overlays(), title, url)
		alert.SetCancelable(true)
		cmd, err := alert.Present(gp.env.animate())
		gp.env.report(err)
		return cmd
	}
}
