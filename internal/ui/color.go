package ui

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// namedColors maps the CSS basic color keywords to hex.
var namedColors = map[string]string{
	"black":   "#000000",
	"silver":  "#c0c0c0",
	"gray":    "#808080",
	"grey":    "#808080",
	"white":   "#ffffff",
	"maroon":  "#800000",
	"red":     "#ff0000",
	"purple":  "#800080",
	"fuchsia": "#ff00ff",
	"magenta": "#ff00ff",
	"green":   "#008000",
	"lime":    "#00ff00",
	"olive":   "#808000",
	"yellow":  "#ffff00",
	"gold":    "#ffd700",
	"navy":    "#000080",
	"blue":    "#0000ff",
	"teal":    "#008080",
	"aqua":    "#00ffff",
	"cyan":    "#00ffff",
	"orange":  "#ffa500",
}

// ParseColor resolves a color string to a lipgloss color. Accepted forms are
// "#rgb", "#rrggbb", an ANSI index "0".."255" and the CSS basic names.
func ParseColor(s string) (lipgloss.Color, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if strings.HasPrefix(s, "#") {
		if len(s) != 4 && len(s) != 7 {
			return "", false
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return "", false
		}
		return lipgloss.Color(c.Hex()), true
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 255 {
			return "", false
		}
		return lipgloss.Color(s), true
	}
	if hex, ok := namedColors[strings.ToLower(s)]; ok {
		return lipgloss.Color(hex), true
	}
	return "", false
}

// IsValidColor reports whether s parses as a color.
func IsValidColor(s string) bool {
	_, ok := ParseColor(s)
	return ok
}

// IsHexColor reports whether s is a six digit hex color such as "#FF0000".
func IsHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}

// ContrastText picks black or white text for the given background.
func ContrastText(background string) lipgloss.Color {
	c, ok := ParseColor(background)
	if !ok || !strings.HasPrefix(string(c), "#") {
		return lipgloss.Color("#ffffff")
	}
	cf, err := colorful.Hex(string(c))
	if err != nil {
		return lipgloss.Color("#ffffff")
	}
	_, _, l := cf.Hsl()
	if l > 0.6 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#ffffff")
}
