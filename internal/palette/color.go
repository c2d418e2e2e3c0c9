// Package palette defines terminal colors and the registry that binds
// foreground/background combinations to color-pair slots.
package palette

import (
	"fmt"
	"strings"
)

// Color is one of the eight base terminal colors, or Unset for the
// terminal's own default.
type Color int

const (
	Unset Color = iota
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

var colorNames = [...]string{
	Unset:   "default",
	Black:   "black",
	Red:     "red",
	Green:   "green",
	Yellow:  "yellow",
	Blue:    "blue",
	Magenta: "magenta",
	Cyan:    "cyan",
	White:   "white",
}

func (c Color) String() string {
	if c < Unset || int(c) >= len(colorNames) {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// Index returns the color's position in the ANSI palette (0 for black through
// 7 for white) and false for Unset.
func (c Color) Index() (int, bool) {
	if c <= Unset || c > White {
		return 0, false
	}
	return int(c - Black), true
}

// FromIndex maps an ANSI palette index 0-7 to a Color.
func FromIndex(idx int) (Color, bool) {
	if idx < 0 || idx > 7 {
		return Unset, false
	}
	return Black + Color(idx), true
}

// ParseColor accepts a color name. "grey"/"gray" render as black, matching the
// bright-black escape code.
func ParseColor(name string) (Color, error) {
	switch n := strings.ToLower(strings.TrimSpace(name)); n {
	case "", "default", "none":
		return Unset, nil
	case "grey", "gray":
		return Black, nil
	default:
		for c, cn := range colorNames {
			if cn == n {
				return Color(c), nil
			}
		}
	}
	return Unset, fmt.Errorf("unknown color %q", name)
}
