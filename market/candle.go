package market

import (
	"fmt"
	"time"
)

// CandleType classifies a candle by the direction of its body.
type CandleType int

const (
	Bearish CandleType = iota
	Bullish
)

func (t CandleType) String() string {
	if t == Bullish {
		return "bullish"
	}
	return "bearish"
}

// Candle represents a single OHLCV candlestick. Volume is optional: a nil
// pointer means the source did not report volume, which is distinct from a
// reported volume of zero.
type Candle struct {
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    *float64
	Timestamp time.Time
}

// Type derives the candle direction: open < close is bullish, everything
// else (including a flat body) is bearish.
func (c Candle) Type() CandleType {
	if c.Open < c.Close {
		return Bullish
	}
	return Bearish
}

// BodyHigh returns the top of the candle body.
func (c Candle) BodyHigh() float64 {
	return max(c.Open, c.Close)
}

// BodyLow returns the bottom of the candle body.
func (c Candle) BodyLow() float64 {
	return min(c.Open, c.Close)
}

// VolumeOr returns the candle volume, or def when volume is unreported.
func (c Candle) VolumeOr(def float64) float64 {
	if c.Volume == nil {
		return def
	}
	return *c.Volume
}

const (
	MinCandles = 5
	MaxCandles = 10000
)

// Validate checks a candle sequence before it is handed to a chart:
// count bounds, OHLC consistency, and non-negative prices and volumes.
// The chart itself assumes its input already passed here.
func Validate(candles []Candle) error {
	if len(candles) < MinCandles || len(candles) > MaxCandles {
		return fmt.Errorf("market: candle count %d out of bounds [%d, %d]",
			len(candles), MinCandles, MaxCandles)
	}
	for i, c := range candles {
		if c.Open < 0 || c.High < 0 || c.Low < 0 || c.Close < 0 {
			return fmt.Errorf("market: candle %d has a negative price", i)
		}
		if c.High < c.BodyHigh() {
			return fmt.Errorf("market: candle %d high %v below body top %v", i, c.High, c.BodyHigh())
		}
		if c.Low > c.BodyLow() {
			return fmt.Errorf("market: candle %d low %v above body bottom %v", i, c.Low, c.BodyLow())
		}
		if c.Volume != nil && *c.Volume < 0 {
			return fmt.Errorf("market: candle %d has negative volume %v", i, *c.Volume)
		}
	}
	return nil
}
