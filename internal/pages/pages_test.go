package pages

import (
	"testing"
	"time"

	"cornscore/internal/score"
	"cornscore/internal/settings"
	"cornscore/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	t     *testing.T
	app   *ui.App
	model tea.Model
	nav   *ui.Navigator
	board *Scoreboard
	env   Env
	errs  *ui.ErrorLog
}

func newHarness(t *testing.T, firstLaunch bool) *harness {
	t.Helper()
	errs := &ui.ErrorLog{}
	app := ui.NewApp(ui.WithAppReporter(errs), ui.WithAppAnimations(false))
	env := Env{App: app, Settings: settings.NewManager(settings.NewMemStore()), FirstLaunch: firstLaunch}
	nav, board, err := Build(env, ui.WithReporter(errs), ui.WithAnimations(false))
	require.NoError(t, err)
	require.NoError(t, app.Present(nav))
	h := &harness{t: t, app: app, model: app.AsTeaModel(), nav: nav, board: board, env: env, errs: errs}
	h.send(tea.WindowSizeMsg{Width: 80, Height: 24})
	h.model.View()
	return h
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send delivers msg and returns the resulting command without running it.
func (h *harness) send(msg tea.Msg) tea.Cmd {
	h.t.Helper()
	_, cmd := h.model.Update(msg)
	return cmd
}

// press sends keys in order. Commands that come straight back from a
// keybind are run and their messages delivered too.
func (h *harness) press(keys ...string) {
	h.t.Helper()
	for _, k := range keys {
		h.deliver(h.send(keyMsg(k)))
	}
}

// deliver runs cmd and feeds back any message that is not a timer.
func (h *harness) deliver(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			h.deliver(c)
		}
	default:
		h.deliver(h.send(msg))
	}
}

func (h *harness) topAlert() *ui.AlertDialog {
	h.t.Helper()
	top, ok := h.app.Overlays().Peek()
	require.True(h.t, ok, "expected an overlay")
	a, ok := top.Presentation.(*ui.AlertDialog)
	require.True(h.t, ok, "expected an alert, got %T", top.Presentation)
	return a
}

func TestScoreboard_KeysChangeScores(t *testing.T) {
	h := newHarness(t, false)
	h.press("a", "a", "k", "z", "m", "m")
	assert.Equal(t, 1, h.board.Game().Score(score.Team1))
	assert.Equal(t, 0, h.board.Game().Score(score.Team2), "decrement floors at zero")
}

func TestScoreboard_PaneTapHalves(t *testing.T) {
	h := newHarness(t, false)
	pane, err := h.app.ComponentByID("team-2")
	require.NoError(t, err)

	tap := func(y int) {
		_, cmd := pane.Node().Tap(ui.TapEvent{X: 3, Y: y, Width: 40, Height: 20})
		h.deliver(cmd)
	}
	tap(1)
	tap(2)
	assert.Equal(t, 2, h.board.Game().Score(score.Team2))

	tap(15)
	assert.Equal(t, 1, h.board.Game().Score(score.Team2))

	h.deliver(pane.Tap())
	assert.Equal(t, 2, h.board.Game().Score(score.Team2), "keyboard tap adds a point")
}

func TestScoreboard_GameOver(t *testing.T) {
	h := newHarness(t, false)
	require.NoError(t, h.env.Settings.SetTeamName(score.Team1, "Aces"))
	for i := 0; i < score.WinningScore; i++ {
		h.press("a")
	}
	a := h.topAlert()
	assert.Equal(t, "Game Over!", a.Title())
	assert.Equal(t, "Aces wins!", a.Message())
	assert.False(t, h.board.Game().HasScores(), "a win starts a new game")

	h.press("a")
	assert.Equal(t, 0, h.board.Game().Score(score.Team1), "keys go to the alert while it is up")

	h.press("enter")
	assert.Equal(t, 0, h.app.Overlays().Len())
}

func TestScoreboard_RestartConfirm(t *testing.T) {
	h := newHarness(t, false)

	h.press(" ", "r")
	assert.Equal(t, 0, h.app.Overlays().Len(), "nothing to confirm on an empty board")

	h.press("a", "k")
	h.press(" ", "r")
	a := h.topAlert()
	assert.Equal(t, "Restart Game?", a.Title())
	assert.Equal(t, "All score data will be lost", a.Message())

	h.press("enter") // Cancel
	assert.True(t, h.board.Game().HasScores())

	h.press(" ", "r", "right", "enter")
	assert.False(t, h.board.Game().HasScores())
	assert.Equal(t, 0, h.app.Overlays().Len())
}

func TestNavigation_SettingsAndBack(t *testing.T) {
	h := newHarness(t, false)
	h.press(" ", "s")
	require.Equal(t, SettingsID, h.nav.Current().ID())

	h.press("a")
	assert.Equal(t, 0, h.board.Game().Score(score.Team1), "board keys are scoped to the board")

	h.press(" ", "b")
	assert.Equal(t, ScoreboardID, h.nav.Current().ID())
	assert.Equal(t, 1, h.nav.Len())
	assert.Empty(t, h.errs.Errors)
}

func TestSettingsPage_TimerSwitch(t *testing.T) {
	h := newHarness(t, false)
	sp := NewSettingsPage(h.env)
	_, err := h.nav.Push(sp.Page(), false)
	require.NoError(t, err)
	assert.Equal(t, "Round Timer: Off", sp.timer.Label())

	h.deliver(sp.timer.Tap())
	assert.True(t, h.env.Settings.ShowTimer())
	assert.Equal(t, "Round Timer: On", sp.timer.Label())

	h.press(" ", "b")
	require.Equal(t, ScoreboardID, h.nav.Current().ID())
	require.NotNil(t, h.board.Page().Toolbar())
	assert.False(t, h.board.Page().Toolbar().Node().Hidden(), "board shows the timer after settings change")
}

func TestScoreboard_TimerCountdown(t *testing.T) {
	h := newHarness(t, false)
	require.NoError(t, h.board.Timer().Program(0, 2))

	h.send(TimerMsg{Action: TimerToggle})
	require.Equal(t, score.TimerRunning, h.board.Timer().State())

	stale := timerTickMsg{seq: h.board.tickSeq - 1}
	h.send(stale)
	assert.Equal(t, 2*time.Second, h.board.Timer().Remaining(), "stale ticks are ignored")

	h.send(timerTickMsg{seq: h.board.tickSeq})
	h.send(timerTickMsg{seq: h.board.tickSeq})
	assert.Equal(t, score.TimerExpired, h.board.Timer().State())
	assert.Equal(t, "Times Up!", h.board.Toast())

	h.send(toastDoneMsg{seq: h.board.toastSeq})
	assert.Empty(t, h.board.Toast())
}

func TestScoreboard_TimerPausesWhenHidden(t *testing.T) {
	h := newHarness(t, false)
	h.send(TimerMsg{Action: TimerToggle})
	h.press(" ", "s")
	assert.Equal(t, score.TimerPaused, h.board.Timer().State())
}

func TestScoreboard_EditTimer(t *testing.T) {
	h := newHarness(t, false)
	h.deliver(h.send(TimerMsg{Action: TimerEdit}))
	require.Equal(t, 1, h.app.Overlays().Len())

	h.press("up", "right", "down", "down")
	h.press("enter")
	assert.Equal(t, 0, h.app.Overlays().Len())
	assert.Equal(t, time.Minute+28*time.Second, h.board.Timer().Programmed())
	assert.Equal(t, score.TimerStopped, h.board.Timer().State())
}

func TestScoreboard_EditTimerRejectsZero(t *testing.T) {
	h := newHarness(t, false)
	require.NoError(t, h.board.Timer().Program(0, 1))
	h.deliver(h.send(TimerMsg{Action: TimerEdit}))
	h.press("right", "down", "enter")
	assert.Equal(t, 1, h.app.Overlays().Len(), "a zero round is not saved")

	h.press("esc")
	assert.Equal(t, 0, h.app.Overlays().Len())
	assert.Equal(t, time.Second, h.board.Timer().Programmed())
}

func TestScoreboard_FirstLaunchTour(t *testing.T) {
	h := newHarness(t, true)
	h.deliver(h.model.Init())
	for stop := 0; stop < 4; stop++ {
		top, ok := h.app.Overlays().Peek()
		require.True(t, ok, "stop %d", stop)
		_, isPopover := top.Presentation.(*ui.Popover)
		require.True(t, isPopover)
		h.press("esc")
	}
	assert.Equal(t, 0, h.app.Overlays().Len())
}

func TestCustomization_EditsSettings(t *testing.T) {
	h := newHarness(t, false)
	cp := NewCustomizationPage(h.env)
	_, err := h.nav.Push(cp.Page(), false)
	require.NoError(t, err)
	h.model.View()

	tf := cp.Names()[0]
	assert.Equal(t, "Team 1", tf.Value())
	h.send(ui.FocusMsg{Node: tf.Node()})
	require.True(t, tf.Focused())

	// Typing is sent without running the cursor blink command.
	h.send(keyMsg("X"))
	assert.Equal(t, "Team 1X", h.env.Settings.TeamName(score.Team1))

	h.send(keyMsg("ctrl+u"))
	assert.Equal(t, "Team 1X", h.env.Settings.TeamName(score.Team1), "an empty name is not saved")
	assert.Contains(t, cp.status.Text(), "empty")

	h.deliver(cp.size.Tap())
	assert.Equal(t, "Large", h.env.Settings.TextSize().Name)
	assert.Equal(t, "Text size: Large", cp.size.Label())
}

func TestCustomization_ColorPicker(t *testing.T) {
	h := newHarness(t, false)
	cp := NewCustomizationPage(h.env)
	_, err := h.nav.Push(cp.Page(), false)
	require.NoError(t, err)

	h.deliver(cp.colors[0].Tap())
	top, ok := h.app.Overlays().Peek()
	require.True(t, ok)
	_, isPopover := top.Presentation.(*ui.Popover)
	require.True(t, isPopover)

	h.press("right", "enter")
	assert.Equal(t, settings.Palette[1], h.env.Settings.TeamColor(score.Team1))
	assert.Equal(t, 0, h.app.Overlays().Len())
}

func TestCustomization_ResetToDefaults(t *testing.T) {
	h := newHarness(t, false)
	cp := NewCustomizationPage(h.env)
	_, err := h.nav.Push(cp.Page(), false)
	require.NoError(t, err)
	require.NoError(t, h.env.Settings.SetTeamName(score.Team2, "Bags"))

	h.deliver(cp.confirmReset())
	a := h.topAlert()
	assert.Equal(t, "Reset To Default?", a.Title())
	h.press("right", "enter")
	assert.Equal(t, "Team 2", h.env.Settings.TeamName(score.Team2))
	assert.Equal(t, "Team 2", cp.Names()[1].Value())
}

func TestWhatsNew_ReleaseNotes(t *testing.T) {
	rn, err := ParseReleaseNotes(whatsNewYAML)
	require.NoError(t, err)
	require.NotEmpty(t, rn.Releases)
	assert.Equal(t, Version, rn.Releases[0].Version)

	_, err = ParseReleaseNotes([]byte("releases:\n  - notes: []\n"))
	assert.Error(t, err)

	h := newHarness(t, false)
	wp, err := NewWhatsNewPage(h.env)
	require.NoError(t, err)
	_, err = h.nav.Push(wp.Page(), false)
	require.NoError(t, err)
	assert.Contains(t, h.model.View(), "App Version: "+Version)
}

func TestBigNumber(t *testing.T) {
	assert.Equal(t, "17", bigNumber(17, 1))
	lines := bigNumber(8, 2)
	assert.Equal(t, "███\n█ █\n███\n█ █\n███", lines)
	assert.Len(t, splitLines(bigNumber(8, 3)), 10)
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return append(out, s[start:])
}
