// Package pages holds the cornscore screens: the scoreboard at the root of
// the navigator and the settings pages pushed above it.
package pages

import (
	"errors"

	"cornscore/internal/score"
	"cornscore/internal/settings"
	"cornscore/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// Version is the app version shown on the app info pages.
const Version = "1.6"

// SourceURL is where the project lives.
const SourceURL = "https://github.com/cobocombo/Corn-Score"

// Page IDs. Keybinds are scoped by these.
const (
	ScoreboardID  = "scoreboard"
	SettingsID    = "settings"
	CustomizeID   = "customization"
	GetInvolvedID = "get-involved"
	AppInfoID     = "app-info"
	WhatsNewID    = "whats-new"
	TimerEditID   = "timer-edit"
)

// Env is what every page needs from the program.
type Env struct {
	App      *ui.App
	Settings *settings.Manager
	// WinningScore ends a game; zero means score.WinningScore.
	WinningScore int
	// FirstLaunch runs the board tour the first time the board is shown.
	FirstLaunch bool
}

func (e Env) animate() bool { return e.App.Animate() }

func (e Env) report(err error) {
	if err != nil {
		e.App.Reporter().Report(err)
	}
}

// ScoreMsg changes a team's score by Delta (+1 or -1).
type ScoreMsg struct {
	Team  score.Team
	Delta int
}

// RestartMsg asks the board to restart the game.
type RestartMsg struct{}

// OpenSettingsMsg pushes the settings page.
type OpenSettingsMsg struct{}

// TimerAction is a round timer control.
type TimerAction int

const (
	TimerToggle TimerAction = iota
	TimerReset
	TimerEdit
)

// TimerMsg runs a round timer control.
type TimerMsg struct {
	Action TimerAction
}

func send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// Build creates the scoreboard and a navigator rooted at it, and binds the
// app's keys.
func Build(env Env, opts ...ui.NavigatorOption) (*ui.Navigator, *Scoreboard, error) {
	if env.App == nil || env.Settings == nil {
		return nil, nil, errors.New("pages: app and settings are required")
	}
	sb := NewScoreboard(env)
	nav, err := ui.NewNavigator(sb.Page(), opts...)
	if err != nil {
		return nil, nil, err
	}
	BindKeys(env.App.Keys().Registry)
	return nav, sb, nil
}

// BindKeys registers the app's keybinds.
func BindKeys(reg *ui.KeybindRegistry) {
	reg.BindForPages("a", send(ScoreMsg{Team: score.Team1, Delta: 1}), "Team 1 +1", ScoreboardID)
	reg.BindForPages("z", send(ScoreMsg{Team: score.Team1, Delta: -1}), "Team 1 -1", ScoreboardID)
	reg.BindForPages("k", send(ScoreMsg{Team: score.Team2, Delta: 1}), "Team 2 +1", ScoreboardID)
	reg.BindForPages("m", send(ScoreMsg{Team: score.Team2, Delta: -1}), "Team 2 -1", ScoreboardID)

	reg.BindForPages("SPC r", send(RestartMsg{}), "Restart game", ScoreboardID)
	reg.BindForPages("SPC s", send(OpenSettingsMsg{}), "Settings", ScoreboardID)
	reg.SetSubmenuLabel("t", "Timer")
	reg.BindForPages("SPC t t", send(TimerMsg{Action: TimerToggle}), "Start/pause", ScoreboardID)
	reg.BindForPages("SPC t r", send(TimerMsg{Action: TimerReset}), "Reset", ScoreboardID)
	reg.BindForPages("SPC t e", send(TimerMsg{Action: TimerEdit}), "Edit", ScoreboardID)

	reg.BindForPages("SPC b", ui.Back, "Back", SettingsID, CustomizeID, GetInvolvedID, AppInfoID, WhatsNewID)
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
}

// push puts page on top of from's navigator.
func push(env Env, from, page *ui.Page) tea.Cmd {
	nav := from.Navigator()
	if nav == nil {
		return nil
	}
	cmd, _ := nav.Push(page, env.animate())
	return cmd
}

func backButton() *ui.BackBarButton {
	return ui.NewBackBarButton("", func(ui.TapEvent) tea.Cmd { return ui.Back })
}
