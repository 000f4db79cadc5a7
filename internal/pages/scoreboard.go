package pages

import (
	"fmt"
	"time"

	"cornscore/internal/score"
	"cornscore/internal/ui"
	"cornscore/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ToastDuration is how long the "Times Up!" notice stays up.
const ToastDuration = 2500 * time.Millisecond

var teams = [2]score.Team{score.Team1, score.Team2}

type timerTickMsg struct{ seq int }

type toastDoneMsg struct{ seq int }

// Scoreboard is the root page: one pane per team, tapped above the middle
// to add a point and below it to take one away.
type Scoreboard struct {
	ui.BaseLifecycle

	env   Env
	page  *ui.Page
	game  *score.Game
	timer *score.Timer

	panes          [2]*ui.Component
	restartButton  *ui.BarButton
	settingsButton *ui.BarButton
	timerButton    *ui.BarButton
	resetButton    *ui.BarButton
	editButton     *ui.BarButton

	toast    string
	tickSeq  int
	toastSeq int
	toured   bool
}

// NewScoreboard creates the board page. Components are built on init.
func NewScoreboard(env Env) *Scoreboard {
	s := &Scoreboard{
		env:   env,
		game:  score.NewGame(env.WinningScore),
		timer: score.NewTimer(),
	}
	s.page = ui.NewPage(ScoreboardID, s)
	s.page.SetBody(s)
	return s
}

// Page returns the board's page.
func (s *Scoreboard) Page() *ui.Page { return s.page }

// Game returns the running game.
func (s *Scoreboard) Game() *score.Game { return s.game }

// Timer returns the round timer.
func (s *Scoreboard) Timer() *score.Timer { return s.timer }

// Toast returns the notice currently shown under the board, if any.
func (s *Scoreboard) Toast() string { return s.toast }

// OnInit implements ui.Lifecycle.
func (s *Scoreboard) OnInit(p *ui.Page) {
	p.SetNavigationBarTitle("Corn Score")
	s.restartButton = ui.NewBarButton("↻ Restart", func(ui.TapEvent) tea.Cmd { return s.restart() })
	s.settingsButton = ui.NewBarButton("⚙ Settings", func(ui.TapEvent) tea.Cmd { return s.openSettings() })
	p.SetNavigationBarButtonsLeft(s.restartButton)
	p.SetNavigationBarButtonsRight(s.settingsButton)

	s.timerButton = ui.NewBarButton("", func(ui.TapEvent) tea.Cmd { return s.timerAction(TimerToggle) })
	s.resetButton = ui.NewBarButton("Reset", func(ui.TapEvent) tea.Cmd { return s.timerAction(TimerReset) })
	s.editButton = ui.NewBarButton("Edit", func(ui.TapEvent) tea.Cmd { return s.timerAction(TimerEdit) })
	p.SetToolbarButtonsLeft(s.timerButton)
	p.SetToolbarButtonsRight(s.resetButton, s.editButton)

	row := ui.MustComponent("score-row", ui.Options{Layout: ui.LayoutHorizontal, Height: "100%"})
	for i, t := range teams {
		pane := ui.MustComponent("team-pane", ui.Options{ID: t.String(), Width: "50%", Height: "100%"})
		pane.SetOnTap(s.paneTapped(t))
		pane.Node().Content = s.renderPane(t)
		s.panes[i] = pane
		s.env.report(row.AppendChild(pane))
		s.env.report(s.env.App.RegisterComponent(pane))
	}
	p.AddComponents(row)
	s.syncTimer()
}

// OnShow implements ui.Lifecycle. Settings may have changed while another
// page was on top.
func (s *Scoreboard) OnShow(p *ui.Page) {
	m := s.env.Settings
	for i, t := range teams {
		s.env.report(s.panes[i].SetBackgroundColor(m.TeamColor(t)))
		s.env.report(s.panes[i].SetForeground(m.TextColor()))
	}
	if m.ShowTimer() {
		p.ShowToolbar()
	} else {
		p.HideToolbar()
	}
}

// OnHide implements ui.Lifecycle. Ticks only reach the current page, so
// a running round is paused.
func (s *Scoreboard) OnHide(*ui.Page) {
	if s.timer.State() == score.TimerRunning {
		s.timer.Pause()
		s.tickSeq++
		s.syncTimer()
	}
}

// Init implements ui.View.
func (s *Scoreboard) Init() tea.Cmd {
	if s.env.FirstLaunch && !s.toured {
		s.toured = true
		s.startTour()
	}
	return nil
}

// Update implements ui.View.
func (s *Scoreboard) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	switch msg := msg.(type) {
	case ScoreMsg:
		return s, s.change(msg.Team, msg.Delta)
	case RestartMsg:
		return s, s.restart()
	case OpenSettingsMsg:
		return s, s.openSettings()
	case TimerMsg:
		return s, s.timerAction(msg.Action)
	case timerTickMsg:
		if msg.seq != s.tickSeq {
			return s, nil
		}
		expired := s.timer.Tick(time.Second)
		s.syncTimer()
		if expired {
			return s, s.showToast("Times Up!")
		}
		return s, s.scheduleTick()
	case toastDoneMsg:
		if msg.seq == s.toastSeq {
			s.toast = ""
		}
	}
	return s, nil
}

// View implements ui.View. It is the toast line, when one is up.
func (s *Scoreboard) View() string {
	if s.toast == "" {
		return ""
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ui.ColorHighlight)).Render(s.toast)
}

func (s *Scoreboard) paneTapped(t score.Team) ui.TapHandler {
	return func(ev ui.TapEvent) tea.Cmd {
		if ev.Keyboard || ev.Y < ev.Height/2 {
			return s.change(t, 1)
		}
		return s.change(t, -1)
	}
}

func (s *Scoreboard) change(t score.Team, delta int) tea.Cmd {
	if delta < 0 {
		s.game.Decrement(t)
		return nil
	}
	winner, won := s.game.Increment(t)
	if !won {
		return nil
	}
	alert := ui.NewAlertDialog(s.env.App.Overlays(), "Game Over!",
		fmt.Sprintf("%s wins!", s.env.Settings.TeamName(winner)))
	cmd, err := alert.Present(s.env.animate())
	s.env.report(err)
	return cmd
}

// restart asks before clearing a game in progress.
func (s *Scoreboard) restart() tea.Cmd {
	if !s.game.HasScores() {
		return nil
	}
	alert := ui.NewAlertDialog(s.env.App.Overlays(), "Restart Game?", "All score data will be lost",
		ui.AlertButton{Text: "Cancel"},
		ui.AlertButton{Text: "Restart", Color: ui.ColorDanger, OnTap: func() tea.Cmd {
			s.game.Restart()
			return nil
		}},
	)
	cmd, err := alert.Present(s.env.animate())
	s.env.report(err)
	return cmd
}

func (s *Scoreboard) openSettings() tea.Cmd {
	return push(s.env, s.page, NewSettingsPage(s.env).Page())
}

func (s *Scoreboard) timerAction(a TimerAction) tea.Cmd {
	switch a {
	case TimerToggle:
		s.timer.Toggle()
	case TimerReset:
		s.timer.Reset()
	case TimerEdit:
		return s.editTimer()
	}
	s.syncTimer()
	return s.scheduleTick()
}

// scheduleTick starts a new tick chain and orphans any pending one.
func (s *Scoreboard) scheduleTick() tea.Cmd {
	s.tickSeq++
	if s.timer.State() != score.TimerRunning {
		return nil
	}
	seq := s.tickSeq
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return timerTickMsg{seq: seq} })
}

func (s *Scoreboard) showToast(text string) tea.Cmd {
	s.toast = text
	s.toastSeq++
	seq := s.toastSeq
	return tea.Tick(ToastDuration, func(time.Time) tea.Msg { return toastDoneMsg{seq: seq} })
}

func (s *Scoreboard) syncTimer() {
	if s.timerButton == nil {
		return
	}
	icon := "▶"
	if s.timer.State() == score.TimerRunning {
		icon = "❚❚"
	}
	s.timerButton.SetText(icon + " " + s.timer.String())
}

func (s *Scoreboard) editTimer() tea.Cmd {
	s.timer.Pause()
	s.tickSeq++
	s.syncTimer()
	cmd, err := newTimerEditor(s.env, s.timer.Programmed(), func(minutes, seconds int) {
		s.env.report(s.timer.Program(minutes, seconds))
		s.syncTimer()
	}).present()
	s.env.report(err)
	return cmd
}

// renderPane draws a team's name at the top and its score in the middle,
// over the team color.
func (s *Scoreboard) renderPane(t score.Team) func(width, height int) string {
	return func(width, height int) string {
		m := s.env.Settings
		st := lipgloss.NewStyle()
		var opts []lipgloss.WhitespaceOption
		if c, ok := ui.ParseColor(m.TeamColor(t)); ok {
			st = st.Background(c)
			opts = append(opts, lipgloss.WithWhitespaceBackground(c))
		}
		if c, ok := ui.ParseColor(m.TextColor()); ok {
			st = st.Foreground(c)
		}
		name := st.Bold(true).Render(textutil.Truncate(textutil.SingleLine(m.TeamName(t)), width))
		digits := st.Render(bigNumber(s.game.Score(t), m.TextSize().Scale))
		hint := st.Faint(true).Render(scoreHint(width))
		top := lipgloss.PlaceHorizontal(width, lipgloss.Center, name, opts...)
		rest := max(height-1, 0)
		mid := lipgloss.Place(width, rest, lipgloss.Center, lipgloss.Center,
			lipgloss.JoinVertical(lipgloss.Center, digits, "", hint), opts...)
		return lipgloss.JoinVertical(lipgloss.Left, top, mid)
	}
}

func scoreHint(width int) string {
	if width < 24 {
		return "▲ +1  ▼ -1"
	}
	return "▲ tap above +1   tap below -1 ▼"
}
