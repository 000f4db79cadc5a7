package ui

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit is the unit of a Dimension.
type Unit int

const (
	// UnitCells is a count of terminal cells. "px" and bare numbers both map here.
	UnitCells Unit = iota
	// UnitPercent is relative to the parent's size.
	UnitPercent
)

// Dimension is a parsed size string such as "50%", "200px" or "12".
// The zero value means auto.
type Dimension struct {
	Value float64
	Unit  Unit
	raw   string
}

// ParseDimension parses a unit-suffixed size string.
func ParseDimension(s string) (Dimension, error) {
	raw := strings.TrimSpace(s)
	if raw == "" || raw == "auto" {
		return Dimension{raw: raw}, nil
	}
	num, unit := raw, UnitCells
	switch {
	case strings.HasSuffix(raw, "%"):
		num, unit = strings.TrimSuffix(raw, "%"), UnitPercent
	case strings.HasSuffix(raw, "px"):
		num = strings.TrimSuffix(raw, "px")
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Dimension{}, fmt.Errorf("%w %q", ErrInvalidDimension, s)
	}
	return Dimension{Value: v, Unit: unit, raw: raw}, nil
}

// Cells returns a fixed dimension of n cells.
func Cells(n int) Dimension {
	return Dimension{Value: float64(n), Unit: UnitCells, raw: strconv.Itoa(n)}
}

// IsAuto reports whether the dimension was left unset.
func (d Dimension) IsAuto() bool {
	return d.raw == "" || d.raw == "auto"
}

// Resolve converts the dimension to cells given the parent's size.
// Auto resolves to 0.
func (d Dimension) Resolve(parent int) int {
	if d.IsAuto() {
		return 0
	}
	if d.Unit == UnitPercent {
		return int(math.Round(d.Value / 100 * float64(parent)))
	}
	return int(math.Round(d.Value))
}

func (d Dimension) String() string {
	return d.raw
}
