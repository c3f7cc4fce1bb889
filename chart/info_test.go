package chart

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/candleterm/market"
	"github.com/rustyeddy/candleterm/term"
)

func TestInfoBar(t *testing.T) {
	st := market.Stats{
		MinPrice:         99,
		MaxPrice:         115,
		LastPrice:        114,
		Average:          107.2,
		Variation:        14,
		VariationDefined: true,
		CumulativeVolume: 1234567.89,
	}

	t.Run("all fields", func(t *testing.T) {
		ib := NewInfoBar("BTCUSDT")
		line := ib.Render(st, 200, term.ProfileNone)
		assert.Contains(t, line, "BTCUSDT")
		assert.Contains(t, line, "Price: 114.00")
		assert.Contains(t, line, "Highest: 115.00")
		assert.Contains(t, line, "Lowest: 99.00")
		assert.Contains(t, line, "+14.00%")
		assert.Contains(t, line, "Avg.: 107.20")
		assert.Contains(t, line, "1,234,567.89")
	})

	t.Run("centered by visible width", func(t *testing.T) {
		ib := NewInfoBar("")
		line := ib.Render(st, 200, term.ProfileNone)
		pad := len(line) - len(strings.TrimLeft(line, " "))
		content := term.VisibleWidth(line) - pad
		assert.InDelta(t, (200-content)/2, pad, 1.0)
	})

	t.Run("centering ignores escape sequences", func(t *testing.T) {
		ib := NewInfoBar("")
		plain := ib.Render(st, 200, term.ProfileNone)
		colored := ib.Render(st, 200, term.ProfileTrueColor)
		padPlain := len(plain) - len(strings.TrimLeft(plain, " "))
		padColored := len(colored) - len(strings.TrimLeft(colored, " "))
		assert.Equal(t, padPlain, padColored)
	})

	t.Run("empty label hides the field", func(t *testing.T) {
		ib := NewInfoBar("")
		ib.SetLabel(FieldVolume, "")
		line := ib.Render(st, 200, term.ProfileNone)
		assert.NotContains(t, line, "1,234,567.89")
	})

	t.Run("undefined variation renders N/A", func(t *testing.T) {
		undef := st
		undef.Variation = math.NaN()
		undef.VariationDefined = false
		ib := NewInfoBar("")
		line := ib.Render(undef, 200, term.ProfileNone)
		assert.Contains(t, line, "Var.: N/A")
	})
}
