package pages

import (
	"fmt"
	"time"

	"cornscore/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// timerEditor is the body of the round timer dialog: two steppers for
// minutes and seconds.
type timerEditor struct {
	env     Env
	dialog  *ui.Dialog
	page    *ui.Page
	minutes int
	seconds int
	field   int // 0 minutes, 1 seconds
	err     string
	onSave  func(minutes, seconds int)
}

func newTimerEditor(env Env, current time.Duration, onSave func(minutes, seconds int)) *timerEditor {
	secs := int(current / time.Second)
	e := &timerEditor{
		env:     env,
		dialog:  ui.NewDialog(env.App.Overlays()),
		page:    ui.NewPage(TimerEditID, nil),
		minutes: secs / 60,
		seconds: secs % 60,
		onSave:  onSave,
	}
	e.page.SetNavigationBarTitle("Round Timer")
	e.page.SetBody(e)
	e.dialog.SetCancelable(true)
	env.report(e.dialog.SetHeight("9"))
	env.report(e.dialog.SetRoot(e.page))
	return e
}

func (e *timerEditor) present() (tea.Cmd, error) {
	return e.dialog.Present(e.env.animate())
}

func (e *timerEditor) Init() tea.Cmd { return nil }

func (e *timerEditor) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return e, nil
	}
	e.err = ""
	switch km.String() {
	case "left", "h", "right", "l", "tab", "shift+tab":
		e.field = 1 - e.field
	case "up", "k", "+":
		e.step(1)
	case "down", "j", "-":
		e.step(-1)
	case "enter":
		if e.minutes == 0 && e.seconds == 0 {
			e.err = "A round must be longer than zero"
			return e, nil
		}
		e.onSave(e.minutes, e.seconds)
		return e, e.dialog.Dismiss(e.env.animate())
	}
	return e, nil
}

// step moves the selected field, wrapping within 0-59.
func (e *timerEditor) step(d int) {
	v := &e.minutes
	if e.field == 1 {
		v = &e.seconds
	}
	*v = (*v + d + 60) % 60
}

func (e *timerEditor) View() string {
	cell := func(label string, v, field int) string {
		val := fmt.Sprintf(" %02d ", v)
		if field == e.field {
			val = ui.Styles.Selected.Reverse(true).Render(val)
		}
		return lipgloss.JoinVertical(lipgloss.Center, ui.Styles.Muted.Render(label), val)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cell("min", e.minutes, 0), "  :  ", cell("sec", e.seconds, 1))
	lines := []string{row, ""}
	if e.err != "" {
		lines = append(lines, ui.Styles.Danger.Render(e.err))
	} else {
		lines = append(lines, ui.Styles.Hint.Render("←/→ field  ↑/↓ change  enter save  esc cancel"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
