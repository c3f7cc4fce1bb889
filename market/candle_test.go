package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fv(v float64) *float64 { return &v }

func TestCandleType(t *testing.T) {
	assert.Equal(t, Bullish, Candle{Open: 100, Close: 103}.Type())
	assert.Equal(t, Bearish, Candle{Open: 103, Close: 100}.Type())
	assert.Equal(t, Bearish, Candle{Open: 100, Close: 100}.Type(), "flat body is bearish")
}

func TestCandleBody(t *testing.T) {
	bullish := Candle{Open: 100, High: 110, Low: 95, Close: 105}
	assert.Equal(t, 105.0, bullish.BodyHigh())
	assert.Equal(t, 100.0, bullish.BodyLow())

	bearish := Candle{Open: 105, High: 110, Low: 95, Close: 100}
	assert.Equal(t, 105.0, bearish.BodyHigh())
	assert.Equal(t, 100.0, bearish.BodyLow())
}

func TestCandleVolumeOr(t *testing.T) {
	assert.Equal(t, 42.0, Candle{Volume: fv(42)}.VolumeOr(0))
	assert.Equal(t, -1.0, Candle{}.VolumeOr(-1))
}

func validSeq(n int) []Candle {
	out := make([]Candle, n)
	for i := range out {
		out[i] = Candle{Open: 100, High: 106, Low: 99, Close: 105, Volume: fv(10)}
	}
	return out
}

func TestValidate(t *testing.T) {
	t.Run("valid sequence", func(t *testing.T) {
		assert.NoError(t, Validate(validSeq(5)))
	})

	t.Run("too few candles", func(t *testing.T) {
		assert.Error(t, Validate(validSeq(4)))
	})

	t.Run("too many candles", func(t *testing.T) {
		assert.Error(t, Validate(validSeq(10001)))
	})

	t.Run("high below body", func(t *testing.T) {
		seq := validSeq(5)
		seq[2].High = 104
		assert.Error(t, Validate(seq))
	})

	t.Run("low above body", func(t *testing.T) {
		seq := validSeq(5)
		seq[2].Low = 101
		assert.Error(t, Validate(seq))
	})

	t.Run("negative price", func(t *testing.T) {
		seq := validSeq(5)
		seq[0].Low = -1
		assert.Error(t, Validate(seq))
	})

	t.Run("negative volume", func(t *testing.T) {
		seq := validSeq(5)
		seq[0].Volume = fv(-3)
		assert.Error(t, Validate(seq))
	})

	t.Run("nil volume is fine", func(t *testing.T) {
		seq := validSeq(5)
		seq[0].Volume = nil
		assert.NoError(t, Validate(seq))
	})
}
