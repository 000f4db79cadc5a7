package settings

import (
	"errors"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"cornscore/internal/score"
)

// Storage keys.
const (
	KeyFirstLaunch = "first-launch"
	KeyTeam1Name   = "team-1-name"
	KeyTeam2Name   = "team-2-name"
	KeyTeam1Color  = "team-1-color"
	KeyTeam2Color  = "team-2-color"
	KeyTextColor   = "text-color"
	KeyTextSize    = "text-size"
	KeyShowTimer   = "show-timer"
)

// MaxNameLength caps team names so they fit a half-width pane.
const MaxNameLength = 20

// Defaults are the values restored by SetDefaults.
var Defaults = map[string]string{
	KeyTeam1Name:  "Team 1",
	KeyTeam2Name:  "Team 2",
	KeyTeam1Color: "#FF0000",
	KeyTeam2Color: "#0000FF",
	KeyTextColor:  "#FFFFFF",
	KeyTextSize:   "Medium",
	KeyShowTimer:  "false",
}

// defaultKeys fixes the write order of SetDefaults.
var defaultKeys = []string{KeyTeam1Name, KeyTeam2Name, KeyTeam1Color, KeyTeam2Color, KeyTextColor, KeyTextSize, KeyShowTimer}

// TextSize is a named scoreboard text size. NamePx and ScorePx are the
// sizes the mobile layout used; Scale is the digit scale in the terminal.
type TextSize struct {
	Name    string
	NamePx  int
	ScorePx int
	Scale   int
}

// TextSizes lists the selectable sizes, smallest first.
var TextSizes = []TextSize{
	{Name: "Small", NamePx: 20, ScorePx: 90, Scale: 1},
	{Name: "Medium", NamePx: 30, ScorePx: 110, Scale: 2},
	{Name: "Large", NamePx: 40, ScorePx: 130, Scale: 3},
}

// Palette is the cycle of colors offered for teams and text.
var Palette = []string{"#FF0000", "#0000FF", "#008000", "#FFA500", "#800080", "#FFD700", "#000000", "#FFFFFF"}

var (
	ErrEmptyName   = errors.New("name is empty")
	ErrNameTooLong = fmt.Errorf("name is longer than %d characters", MaxNameLength)
	ErrBadColor    = errors.New("color must be #RRGGBB")
	ErrBadTextSize = errors.New("unknown text size")
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Manager reads and writes typed settings with defaults.
type Manager struct {
	store Store
}

// NewManager wraps a store.
func NewManager(s Store) *Manager {
	return &Manager{store: s}
}

// Get returns the stored value for key, or its default. Read errors are
// logged and the default is used.
func (m *Manager) Get(key string) string {
	v, ok, err := m.store.Get(key)
	if err != nil {
		log.Printf("settings: get %s: %v", key, err)
	}
	if err != nil || !ok {
		return Defaults[key]
	}
	return v
}

func (m *Manager) set(key, value string) error {
	if err := m.store.Set(key, value); err != nil {
		return fmt.Errorf("settings: set %s: %w", key, err)
	}
	return nil
}

// SetDefaults writes every default value.
func (m *Manager) SetDefaults() error {
	for _, k := range defaultKeys {
		if err := m.set(k, Defaults[k]); err != nil {
			return err
		}
	}
	return nil
}

// FirstLaunch reports whether this is the first run against the store. On
// the first run it writes the defaults and records the launch.
func (m *Manager) FirstLaunch() (bool, error) {
	_, ok, err := m.store.Get(KeyFirstLaunch)
	if err != nil {
		return false, fmt.Errorf("settings: get %s: %w", KeyFirstLaunch, err)
	}
	if ok {
		return false, nil
	}
	if err := m.SetDefaults(); err != nil {
		return true, err
	}
	return true, m.set(KeyFirstLaunch, "false")
}

func nameKey(t score.Team) string {
	if t == score.Team2 {
		return KeyTeam2Name
	}
	return KeyTeam1Name
}

func colorKey(t score.Team) string {
	if t == score.Team2 {
		return KeyTeam2Color
	}
	return KeyTeam1Color
}

// TeamName returns a team's display name.
func (m *Manager) TeamName(t score.Team) string { return m.Get(nameKey(t)) }

// SetTeamName stores a team name. Surrounding space is trimmed.
func (m *Manager) SetTeamName(t score.Team, name string) error {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return fmt.Errorf("settings: %s: %w", nameKey(t), ErrEmptyName)
	case len([]rune(name)) > MaxNameLength:
		return fmt.Errorf("settings: %s: %w", nameKey(t), ErrNameTooLong)
	}
	return m.set(nameKey(t), name)
}

// TeamColor returns a team's background color as #RRGGBB.
func (m *Manager) TeamColor(t score.Team) string { return m.Get(colorKey(t)) }

// SetTeamColor stores a team color.
func (m *Manager) SetTeamColor(t score.Team, color string) error {
	return m.setColor(colorKey(t), color)
}

// TextColor returns the score and name text color.
func (m *Manager) TextColor() string { return m.Get(KeyTextColor) }

// SetTextColor stores the text color.
func (m *Manager) SetTextColor(color string) error {
	return m.setColor(KeyTextColor, color)
}

func (m *Manager) setColor(key, color string) error {
	if !hexColor.MatchString(color) {
		return fmt.Errorf("settings: %s %q: %w", key, color, ErrBadColor)
	}
	return m.set(key, strings.ToUpper(color))
}

// TextSize returns the stored text size. Unknown values fall back to Small.
func (m *Manager) TextSize() TextSize {
	name := m.Get(KeyTextSize)
	for _, ts := range TextSizes {
		if strings.EqualFold(ts.Name, name) {
			return ts
		}
	}
	return TextSizes[0]
}

// SetTextSize stores a text size by name.
func (m *Manager) SetTextSize(name string) error {
	for _, ts := range TextSizes {
		if strings.EqualFold(ts.Name, name) {
			return m.set(KeyTextSize, ts.Name)
		}
	}
	return fmt.Errorf("settings: %s %q: %w", KeyTextSize, name, ErrBadTextSize)
}

// NextTextSize returns the size after the current one, wrapping around.
func (m *Manager) NextTextSize() TextSize {
	cur := m.TextSize()
	for i, ts := range TextSizes {
		if ts.Name == cur.Name {
			return TextSizes[(i+1)%len(TextSizes)]
		}
	}
	return TextSizes[0]
}

// ShowTimer reports whether the round timer is shown on the board.
func (m *Manager) ShowTimer() bool {
	v, _ := strconv.ParseBool(m.Get(KeyShowTimer))
	return v
}

// SetShowTimer stores whether the round timer is shown.
func (m *Manager) SetShowTimer(on bool) error {
	return m.set(KeyShowTimer, strconv.FormatBool(on))
}

// NextColor returns the palette color after current, wrapping around.
// Colors outside the palette start the cycle over.
func NextColor(current string) string {
	for i, c := range Palette {
		if strings.EqualFold(c, current) {
			return Palette[(i+1)%len(Palette)]
		}
	}
	return Palette[0]
}
