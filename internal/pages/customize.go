package pages

import (
	"fmt"

	"cornscore/internal/score"
	"cornscore/internal/settings"
	"cornscore/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CustomizationPage edits team names, colors and the board's text.
type CustomizationPage struct {
	ui.BaseLifecycle
	env  Env
	page *ui.Page

	names  [2]*ui.Textfield
	colors [2]*ui.ListItem
	text   *ui.ListItem
	size   *ui.ListItem
	status *ui.Component
}

// NewCustomizationPage creates the customization page.
func NewCustomizationPage(env Env) *CustomizationPage {
	cp := &CustomizationPage{env: env}
	cp.page = ui.NewPage(CustomizeID, cp)
	return cp
}

// Page returns the page.
func (cp *CustomizationPage) Page() *ui.Page { return cp.page }

// Names returns the team name fields.
func (cp *CustomizationPage) Names() [2]*ui.Textfield { return cp.names }

// OnInit implements ui.Lifecycle.
func (cp *CustomizationPage) OnInit(p *ui.Page) {
	p.SetNavigationBarTitle("Customization")
	p.SetNavigationBarButtonsLeft(backButton())

	m := cp.env.Settings
	var items []*ui.ListItem
	for i, t := range teams {
		tf := ui.NewTextfield(fmt.Sprintf("Team %d name", i+1), settings.MaxNameLength)
		tf.SetID(t.String() + "-name")
		tf.SetOnChange(cp.nameChanged(t))
		cp.names[i] = tf
		cp.env.report(cp.env.App.RegisterComponent(tf.Component))

		cp.colors[i] = ui.NewListItem("", func(ui.TapEvent) tea.Cmd {
			return cp.pickColor(cp.colors[i], m.TeamColor(t), func(c string) error {
				return m.SetTeamColor(t, c)
			})
		})
		items = append(items, cp.colors[i])
	}
	cp.text = ui.NewListItem("", func(ui.TapEvent) tea.Cmd {
		return cp.pickColor(cp.text, m.TextColor(), m.SetTextColor)
	})
	cp.size = ui.NewListItem("", func(ui.TapEvent) tea.Cmd {
		cp.env.report(m.SetTextSize(m.NextTextSize().Name))
		cp.refresh()
		return nil
	})
	reset := ui.NewListItem("Reset To Default", func(ui.TapEvent) tea.Cmd { return cp.confirmReset() })
	items = append(items, cp.text, cp.size, reset)

	cp.status = ui.NewText("")
	cp.env.report(cp.status.SetForeground(ui.ColorDanger))

	names := ui.NewList("Team Names")
	cp.env.report(names.AppendChild(cp.names[0]))
	cp.env.report(names.AppendChild(cp.names[1]))
	p.AddComponents(names, ui.NewList("Board", items...), cp.status)
	cp.refresh()
}

// refresh loads every control from the stored settings.
func (cp *CustomizationPage) refresh() {
	m := cp.env.Settings
	for i, t := range teams {
		cp.names[i].SetValue(m.TeamName(t))
		cp.colors[i].SetLabel(colorLabel(t.String()+" color", m.TeamColor(t)))
	}
	cp.text.SetLabel(colorLabel("Text color", m.TextColor()))
	cp.size.SetLabel("Text size: " + m.TextSize().Name)
}

// nameChanged saves a valid name as it is typed. An invalid one is shown
// and the stored name is kept.
func (cp *CustomizationPage) nameChanged(t score.Team) func(string) tea.Cmd {
	return func(v string) tea.Cmd {
		if err := cp.env.Settings.SetTeamName(t, v); err != nil {
			cp.status.SetText(err.Error())
			return nil
		}
		cp.status.SetText("")
		return nil
	}
}

// pickColor opens a palette popover next to item. Left and right move the
// selection; enter or a tap applies it.
func (cp *CustomizationPage) pickColor(item *ui.ListItem, current string, apply func(string) error) tea.Cmd {
	pop := ui.NewPopover(cp.env.App.Overlays())
	sel := 0
	for i, c := range settings.Palette {
		if c == current {
			sel = i
		}
	}
	row := ui.MustComponent("palette", ui.Options{Layout: ui.LayoutHorizontal})
	swatches := make([]*ui.Component, len(settings.Palette))
	choose := func(c string) tea.Cmd {
		cp.env.report(apply(c))
		cp.refresh()
		return pop.Dismiss(cp.env.animate())
	}
	mark := func() {
		for i, sw := range swatches {
			if i == sel {
				sw.SetText("[]")
			} else {
				sw.SetText("  ")
			}
		}
	}
	for i, c := range settings.Palette {
		sw := ui.MustComponent("swatch", ui.Options{BackgroundColor: c, MarginRight: "1"})
		sw.SetOnTap(func(ui.TapEvent) tea.Cmd { return choose(c) })
		swatches[i] = sw
		cp.env.report(row.AppendChild(sw))
	}
	mark()
	pop.SetKeyHandler(func(km tea.KeyMsg) (bool, tea.Cmd) {
		switch km.String() {
		case "left", "h":
			sel = (sel + len(swatches) - 1) % len(swatches)
		case "right", "l", "tab":
			sel = (sel + 1) % len(swatches)
		case "enter":
			return true, choose(settings.Palette[sel])
		default:
			return false, nil
		}
		mark()
		return true, nil
	})
	cp.env.report(pop.AddComponents(row))
	cmd, err := pop.Present(item.Component, cp.env.animate())
	cp.env.report(err)
	return cmd
}

func (cp *CustomizationPage) confirmReset() tea.Cmd {
	alert := ui.NewAlertDialog(cp.env.App.Overlays(), "Reset To Default?", "All customizations will be lost",
		ui.AlertButton{Text: "Cancel"},
		ui.AlertButton{Text: "Reset", Color: ui.ColorDanger, OnTap: func() tea.Cmd {
			cp.env.report(cp.env.Settings.SetDefaults())
			cp.refresh()
			return nil
		}},
	)
	cmd, err := alert.Present(cp.env.animate())
	cp.env.report(err)
	return cmd
}

func colorLabel(name, hex string) string {
	sw := "  "
	if c, ok := ui.ParseColor(hex); ok {
		sw = lipgloss.NewStyle().Background(c).Render("  ")
	}
	return name + ": " + sw + " " + hex
}
