package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/candleterm/market"
	"github.com/rustyeddy/candleterm/term"
)

func TestVolumePaneGlyphs(t *testing.T) {
	pane := NewVolumePane(5)
	const maxVolume = 100.0

	t.Run("missing volume is void everywhere", func(t *testing.T) {
		c := market.Candle{Open: 1, High: 2, Low: 1, Close: 2}
		for y := 1; y <= 5; y++ {
			assert.Equal(t, " ", pane.Cell(c, y, maxVolume, term.ProfileNone))
		}
	})

	t.Run("zero volume is void everywhere", func(t *testing.T) {
		c := market.Candle{Open: 1, High: 2, Low: 1, Close: 2, Volume: fv(0)}
		for y := 1; y <= 5; y++ {
			assert.Equal(t, " ", pane.Cell(c, y, maxVolume, term.ProfileNone))
		}
	})

	t.Run("full bar fills rows below the ceiling", func(t *testing.T) {
		c := market.Candle{Open: 1, High: 2, Low: 1, Close: 2, Volume: fv(100)}
		assert.Equal(t, string(GlyphHalfBodyBottom), pane.Cell(c, 1, maxVolume, term.ProfileNone))
		for y := 2; y <= 4; y++ {
			assert.Equal(t, string(DefaultVolumeFill), pane.Cell(c, y, maxVolume, term.ProfileNone))
		}
		assert.Equal(t, " ", pane.Cell(c, 5, maxVolume, term.ProfileNone))
	})

	t.Run("half bar", func(t *testing.T) {
		c := market.Candle{Open: 1, High: 2, Low: 1, Close: 2, Volume: fv(50)}
		// ratio 2.5 rounds up to 3: rows 1 and 2 fill.
		assert.Equal(t, string(GlyphHalfBodyBottom), pane.Cell(c, 1, maxVolume, term.ProfileNone))
		assert.Equal(t, string(DefaultVolumeFill), pane.Cell(c, 2, maxVolume, term.ProfileNone))
		assert.Equal(t, " ", pane.Cell(c, 3, maxVolume, term.ProfileNone))
	})

	t.Run("custom fill rune skips the bottom half cap", func(t *testing.T) {
		custom := NewVolumePane(5)
		custom.FillRune = '█'
		c := market.Candle{Open: 1, High: 2, Low: 1, Close: 2, Volume: fv(100)}
		assert.Equal(t, "█", custom.Cell(c, 1, maxVolume, term.ProfileNone))
	})

	t.Run("zero max volume is guarded", func(t *testing.T) {
		c := market.Candle{Open: 1, High: 2, Low: 1, Close: 2, Volume: fv(0)}
		for y := 1; y <= 5; y++ {
			assert.Equal(t, " ", pane.Cell(c, y, 0, term.ProfileNone))
		}
	})
}
