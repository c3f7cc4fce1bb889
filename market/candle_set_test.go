package market

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats(t *testing.T) {
	t.Run("empty sequence yields zero stats", func(t *testing.T) {
		st := ComputeStats(nil)
		assert.Equal(t, 0.0, st.MinPrice)
		assert.Equal(t, 0.0, st.MaxPrice)
		assert.Equal(t, 0.0, st.MinVolume)
		assert.Equal(t, 0.0, st.MaxVolume)
		assert.Equal(t, 0.0, st.Average)
		assert.Equal(t, 0.0, st.LastPrice)
		assert.Equal(t, 0.0, st.CumulativeVolume)
		assert.False(t, st.VariationDefined)
	})

	t.Run("aggregates", func(t *testing.T) {
		candles := []Candle{
			{Open: 100, High: 105, Low: 99, Close: 103, Volume: fv(10)},
			{Open: 103, High: 108, Low: 102, Close: 106, Volume: fv(30)},
			{Open: 106, High: 110, Low: 104, Close: 109},
			{Open: 109, High: 112, Low: 107, Close: 111, Volume: fv(5)},
			{Open: 111, High: 115, Low: 110, Close: 114, Volume: fv(20)},
		}

		st := ComputeStats(candles)
		assert.Equal(t, 99.0, st.MinPrice)
		assert.Equal(t, 115.0, st.MaxPrice)
		assert.Equal(t, 5.0, st.MinVolume)
		assert.Equal(t, 30.0, st.MaxVolume)
		assert.Equal(t, 65.0, st.CumulativeVolume, "nil volumes are skipped")
		assert.Equal(t, 114.0, st.LastPrice)
		assert.True(t, st.VariationDefined)
		assert.InDelta(t, 14.0, st.Variation, 1e-9)
		assert.InDelta(t, 107.2, st.Average, 1e-9, "mean of pooled highs and lows")
	})

	t.Run("zero first open leaves variation undefined", func(t *testing.T) {
		candles := []Candle{
			{Open: 0, High: 10, Low: 0, Close: 5},
			{Open: 5, High: 12, Low: 4, Close: 9},
		}
		st := ComputeStats(candles)
		assert.False(t, st.VariationDefined)
		assert.True(t, math.IsNaN(st.Variation))
	})
}

func TestCandleSetMutation(t *testing.T) {
	base := []Candle{
		{Open: 100, High: 105, Low: 99, Close: 103, Volume: fv(10)},
		{Open: 103, High: 108, Low: 102, Close: 106, Volume: fv(20)},
	}

	cs := NewCandleSet(base)
	assert.Equal(t, 2, cs.Len())
	assert.Equal(t, 99.0, cs.Stats().MinPrice)
	assert.Equal(t, 106.0, cs.Stats().LastPrice)

	t.Run("append recomputes", func(t *testing.T) {
		cs.Append(Candle{Open: 106, High: 120, Low: 90, Close: 110, Volume: fv(5)})
		assert.Equal(t, 3, cs.Len())
		assert.Equal(t, 90.0, cs.Stats().MinPrice)
		assert.Equal(t, 120.0, cs.Stats().MaxPrice)
		assert.Equal(t, 110.0, cs.Stats().LastPrice)
		assert.Equal(t, 35.0, cs.Stats().CumulativeVolume)
	})

	t.Run("replace swaps contents", func(t *testing.T) {
		cs.Replace([]Candle{{Open: 1, High: 2, Low: 0.5, Close: 1.5}})
		assert.Equal(t, 1, cs.Len())
		assert.Equal(t, 0.5, cs.Stats().MinPrice)
		assert.Equal(t, 2.0, cs.Stats().MaxPrice)
	})

	t.Run("replace with nil resets to zero stats", func(t *testing.T) {
		cs.Replace(nil)
		assert.Equal(t, 0, cs.Len())
		assert.Equal(t, Stats{}, cs.Stats())
	})

	t.Run("replace copies its input", func(t *testing.T) {
		in := []Candle{{Open: 1, High: 2, Low: 0.5, Close: 1.5}}
		cs.Replace(in)
		in[0].High = 99
		assert.Equal(t, 2.0, cs.Stats().MaxPrice)
	})
}
