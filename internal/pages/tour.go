package pages

import (
	"cornscore/internal/ui"
)

// tourStop is one popover of the first-launch tour.
type tourStop struct {
	target    *ui.Component
	direction string
	text      string
}

// startTour walks a new player through the board, one popover at a time.
// Dismissing a stop (esc) presents the next.
func (s *Scoreboard) startTour() {
	stops := []tourStop{
		{s.panes[0], "down", "Tap above the number to increase the score!"},
		{s.panes[1], "down", "Tap below the number to decrease the score!"},
		{s.restartButton.Component, "down", "Tap here to restart the game!"},
		{s.settingsButton.Component, "down", "Go to settings to customize the board!"},
	}
	s.presentStop(stops, 0)
}

func (s *Scoreboard) presentStop(stops []tourStop, i int) {
	if i >= len(stops) {
		return
	}
	stop := stops[i]
	p := ui.NewPopover(s.env.App.Overlays())
	s.env.report(p.SetDirection(stop.direction))
	hint := ui.NewText("esc to continue")
	hint.Node().Style.Opacity = 0.4
	s.env.report(p.AddComponents(ui.NewText(stop.text), hint))
	p.OnDismiss(func() { s.presentStop(stops, i+1) })
	// Presented without a fade: a dismiss callback has no way to return
	// the fade's frame command.
	_, err := p.Present(stop.target, false)
	s.env.report(err)
}
