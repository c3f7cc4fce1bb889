package chart

import (
	"math"

	"github.com/rustyeddy/candleterm/market"
	"github.com/rustyeddy/candleterm/term"
)

// DefaultVolumeFill is the stock volume bar rune. A custom fill rune
// disables the bottom-row half cap.
const DefaultVolumeFill = '┃'

// VolumePane renders per-candle volume bars scaled to its own height,
// below the price pane.
type VolumePane struct {
	Enabled   bool
	Height    int
	FillRune  rune
	BullColor term.Color
	BearColor term.Color
}

func NewVolumePane(height int) *VolumePane {
	return &VolumePane{
		Enabled:   true,
		Height:    height,
		FillRune:  DefaultVolumeFill,
		BullColor: term.Green,
		BearColor: term.Red,
	}
}

// glyph picks the rune for one candle at one pane row. Bars fill every row
// below ceil(volume/maxVolume × height). A candle with no reported volume
// renders void on every row; with the default fill rune the bottom row of a
// bar renders a half cap so small bars stay distinguishable.
func (p *VolumePane) glyph(c market.Candle, y int, maxVolume float64) rune {
	if c.Volume == nil {
		return GlyphVoid
	}
	if maxVolume == 0 {
		maxVolume = 1
	}
	ratio := *c.Volume / maxVolume * float64(p.Height)
	if float64(y) >= math.Ceil(ratio) {
		return GlyphVoid
	}
	if y == 1 && p.FillRune == DefaultVolumeFill {
		return GlyphHalfBodyBottom
	}
	return p.FillRune
}

// Cell renders one colorized character cell of the pane.
func (p *VolumePane) Cell(c market.Candle, y int, maxVolume float64, profile term.Profile) string {
	g := p.glyph(c, y, maxVolume)
	if g == GlyphVoid {
		return " "
	}
	color := p.BearColor
	if c.Type() == market.Bullish {
		color = p.BullColor
	}
	return term.Colorize(string(g), color, profile)
}
