package term

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a tagged color value: a named color, an explicit RGB triple, or
// a raw escape sequence passed through untouched. Named colors resolve to a
// concrete RGB triple at construction time, so rendering never re-parses.
type Color struct {
	kind    colorKind
	r, g, b uint8
	escape  string
}

type colorKind int

const (
	colorRGB colorKind = iota
	colorEscape
)

// Candle palette defaults.
var (
	Green = RGB(52, 208, 88)
	Red   = RGB(234, 74, 90)
	Gray  = RGB(140, 140, 140)
)

var namedColors = map[string][3]uint8{
	"black":   {0, 0, 0},
	"red":     {234, 74, 90},
	"green":   {52, 208, 88},
	"yellow":  {255, 200, 0},
	"blue":    {64, 120, 242},
	"magenta": {198, 120, 221},
	"cyan":    {86, 182, 194},
	"white":   {220, 220, 220},
	"gray":    {140, 140, 140},
	"orange":  {255, 165, 0},
}

// RGB builds a color from an explicit triple.
func RGB(r, g, b uint8) Color {
	return Color{kind: colorRGB, r: r, g: g, b: b}
}

// Named resolves a color name from the built-in table.
func Named(name string) (Color, error) {
	rgb, ok := namedColors[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Color{}, fmt.Errorf("term: unknown color name %q", name)
	}
	return RGB(rgb[0], rgb[1], rgb[2]), nil
}

// RawEscape wraps a pre-built escape sequence. It is emitted verbatim and
// has no RGB representation.
func RawEscape(seq string) Color {
	return Color{kind: colorEscape, escape: seq}
}

// Parse accepts "name", "r,g,b", "#rrggbb", or a raw "\x1b[..." sequence.
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return Color{}, fmt.Errorf("term: empty color")
	case strings.HasPrefix(s, "\x1b["):
		return RawEscape(s), nil
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.Contains(s, ","):
		return parseTriple(s)
	default:
		return Named(s)
	}
}

func parseHex(s string) (Color, error) {
	if len(s) != 7 {
		return Color{}, fmt.Errorf("term: bad hex color %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("term: bad hex color %q: %w", s, err)
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

func parseTriple(s string) (Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Color{}, fmt.Errorf("term: bad rgb color %q", s)
	}
	var c [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return Color{}, fmt.Errorf("term: bad rgb component %q: %w", p, err)
		}
		c[i] = uint8(v)
	}
	return RGB(c[0], c[1], c[2]), nil
}

// RGBValues returns the resolved triple. Raw escapes report black.
func (c Color) RGBValues() (r, g, b uint8) {
	return c.r, c.g, c.b
}

// Colorize wraps s in the escape sequence appropriate for the profile.
func Colorize(s string, c Color, p Profile) string {
	if p == ProfileNone || s == "" {
		return s
	}
	if c.kind == colorEscape {
		return c.escape + s + reset
	}
	if p == ProfileTrueColor {
		return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s%s", c.r, c.g, c.b, s, reset)
	}
	return fmt.Sprintf("\x1b[%dm%s%s", nearestBasic(c.r, c.g, c.b), s, reset)
}

// nearestBasic degrades an RGB triple to one of the eight basic foreground
// codes. Low channel spread is treated as grayscale; otherwise the dominant
// channel(s) pick the hue.
func nearestBasic(r, g, b uint8) int {
	const spread = 32

	hi := max(r, max(g, b))
	lo := min(r, min(g, b))

	if int(hi)-int(lo) < spread {
		if hi > 128 {
			return 37 // white
		}
		return 30 // black
	}

	rDom := int(r) >= int(hi)-spread
	gDom := int(g) >= int(hi)-spread
	bDom := int(b) >= int(hi)-spread

	switch {
	case rDom && gDom:
		return 33 // yellow
	case gDom && bDom:
		return 36 // cyan
	case rDom && bDom:
		return 35 // magenta
	case gDom:
		return 32 // green
	case bDom:
		return 34 // blue
	default:
		return 31 // red
	}
}
