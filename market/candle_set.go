package market

import (
	"math"

	"github.com/montanaflynn/stats"
)

// Stats holds the scalar aggregates derived from a candle sequence. It is
// recomputed in full on every mutation; see ComputeStats.
type Stats struct {
	MinPrice  float64
	MaxPrice  float64
	MinVolume float64
	MaxVolume float64

	// Variation is the percentage move from the first open to the last
	// close. It is NaN and VariationDefined is false when the first open
	// is zero.
	Variation        float64
	VariationDefined bool

	// Average is the mean of all high and low prices pooled together.
	Average float64

	LastPrice        float64
	CumulativeVolume float64
}

// CandleSet owns an ordered candle sequence plus its derived statistics.
// The statistics are always a pure function of the current contents.
type CandleSet struct {
	candles []Candle
	stats   Stats
}

func NewCandleSet(candles []Candle) *CandleSet {
	cs := &CandleSet{}
	cs.Replace(candles)
	return cs
}

// Candles returns the underlying sequence. Callers must not mutate it;
// use Append or Replace so the statistics stay consistent.
func (cs *CandleSet) Candles() []Candle {
	return cs.candles
}

func (cs *CandleSet) Len() int {
	return len(cs.candles)
}

func (cs *CandleSet) Stats() Stats {
	return cs.stats
}

// Append extends the sequence and recomputes all statistics.
func (cs *CandleSet) Append(candles ...Candle) {
	cs.candles = append(cs.candles, candles...)
	cs.stats = ComputeStats(cs.candles)
}

// Replace swaps the whole sequence and recomputes all statistics.
func (cs *CandleSet) Replace(candles []Candle) {
	cs.candles = make([]Candle, len(candles))
	copy(cs.candles, candles)
	cs.stats = ComputeStats(cs.candles)
}

// ComputeStats derives the full aggregate set from a candle sequence in a
// single O(n) pass. An empty sequence yields the zero Stats so downstream
// scaling never sees NaN where it expects a number.
func ComputeStats(candles []Candle) Stats {
	if len(candles) == 0 {
		return Stats{}
	}

	st := Stats{
		MinPrice: candles[0].Low,
		MaxPrice: candles[0].High,
	}

	pooled := make([]float64, 0, 2*len(candles))
	volumeSeen := false

	for _, c := range candles {
		st.MinPrice = min(st.MinPrice, c.Low)
		st.MaxPrice = max(st.MaxPrice, c.High)
		pooled = append(pooled, c.High, c.Low)

		if c.Volume == nil {
			continue
		}
		v := *c.Volume
		if !volumeSeen {
			st.MinVolume, st.MaxVolume = v, v
			volumeSeen = true
		} else {
			st.MinVolume = min(st.MinVolume, v)
			st.MaxVolume = max(st.MaxVolume, v)
		}
		st.CumulativeVolume += v
	}

	st.LastPrice = candles[len(candles)-1].Close

	firstOpen := candles[0].Open
	lastClose := candles[len(candles)-1].Close
	if firstOpen != 0 {
		st.Variation = (lastClose - firstOpen) / firstOpen * 100
		st.VariationDefined = true
	} else {
		st.Variation = math.NaN()
	}

	// Mean of highs and lows pooled, not mean of closes.
	if avg, err := stats.Mean(pooled); err == nil {
		st.Average = avg
	}

	return st
}
