package pages

import (
	"strconv"
	"strings"
)

// glyphs is a 3x5 block font for the digits 0-9.
var glyphs = [10][5]string{
	{"###", "# #", "# #", "# #", "###"},
	{" # ", "## ", " # ", " # ", "###"},
	{"###", "  #", "###", "#  ", "###"},
	{"###", "  #", "###", "  #", "###"},
	{"# #", "# #", "###", "  #", "  #"},
	{"###", "#  ", "###", "  #", "###"},
	{"###", "#  ", "###", "# #", "###"},
	{"###", "  #", "  #", "  #", "  #"},
	{"###", "# #", "###", "# #", "###"},
	{"###", "# #", "###", "  #", "###"},
}

// bigNumber draws n in block digits. Scale 1 is plain text; each step up
// widens every block by one cell and, from scale 3, doubles its height.
func bigNumber(n, scale int) string {
	s := strconv.Itoa(n)
	if scale <= 1 {
		return s
	}
	wide := scale - 1
	tall := 1
	if scale >= 3 {
		tall = 2
	}
	var rows []string
	for r := 0; r < 5; r++ {
		var b strings.Builder
		for i, ch := range s {
			if i > 0 {
				b.WriteString(strings.Repeat(" ", wide))
			}
			for _, px := range glyphs[ch-'0'][r] {
				cell := " "
				if px == '#' {
					cell = "█"
				}
				b.WriteString(strings.Repeat(cell, wide))
			}
		}
		for t := 0; t < tall; t++ {
			rows = append(rows, b.String())
		}
	}
	return strings.Join(rows, "\n")
}
