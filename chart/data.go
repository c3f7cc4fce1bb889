package chart

import (
	"errors"
	"fmt"
	"math"

	"github.com/rustyeddy/candleterm/market"
)

// ScalingMode selects how the visible candle subset is derived from the
// main set.
type ScalingMode int

const (
	// ScaleFit shows the whole series, decimating when it exceeds the
	// available width.
	ScaleFit ScalingMode = iota
	// ScaleFixed shows an inclusive index range of the main set.
	ScaleFixed
	// ScalePrice shows every candle whose body interval overlaps a price
	// window.
	ScalePrice
)

func (m ScalingMode) String() string {
	switch m {
	case ScaleFixed:
		return "fixed"
	case ScalePrice:
		return "price"
	default:
		return "fit"
	}
}

// ParseScalingMode maps a config string to a mode.
func ParseScalingMode(s string) (ScalingMode, error) {
	switch s {
	case "fit", "":
		return ScaleFit, nil
	case "fixed":
		return ScaleFixed, nil
	case "price":
		return ScalePrice, nil
	}
	return ScaleFit, fmt.Errorf("chart: unknown scaling mode %q", s)
}

// Margins are blank character cells around the candle area.
type Margins struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

func (m Margins) validate() error {
	if m.Top < 0 || m.Right < 0 || m.Bottom < 0 || m.Left < 0 {
		return errors.New("chart: margins must be non-negative")
	}
	return nil
}

const (
	// axisWidth is the fixed column budget of the price axis gutter:
	// a 9-cell label, a space, the axis rune, and a trailing space.
	axisWidth = 12

	// heightOffset keeps the info bar and prompt line on screen.
	heightOffset = 2
	minHeight    = 10
)

var (
	ErrInvalidPriceRange = errors.New("chart: price range min must be below max")
	ErrInvalidTimeRange  = errors.New("chart: time range out of bounds")
)

// Data owns the main candle set, the derived visible set, and every knob
// that decides which candles end up on screen. The visible set is never
// edited directly; it is recomputed from the main set whenever the mode,
// range, or dimensions change.
type Data struct {
	main    *market.CandleSet
	visible *market.CandleSet

	termWidth  int
	termHeight int
	height     int

	margins Margins
	mode    ScalingMode

	rangeStart, rangeEnd int
	priceMin, priceMax   float64

	volumePaneHeight int
}

func NewData(set *market.CandleSet, width, height int) *Data {
	d := &Data{
		main:    set,
		visible: market.NewCandleSet(nil),
	}
	d.SetSize(width, height)
	return d
}

func (d *Data) Main() *market.CandleSet    { return d.main }
func (d *Data) Visible() *market.CandleSet { return d.visible }
func (d *Data) Width() int                 { return d.termWidth }
func (d *Data) Height() int                { return d.height }
func (d *Data) Margins() Margins           { return d.margins }
func (d *Data) Mode() ScalingMode          { return d.mode }

// SetSize records the terminal dimensions and recomputes the chart height
// and visible set.
func (d *Data) SetSize(width, height int) {
	d.termWidth = width
	d.termHeight = height
	d.recompute()
}

func (d *Data) SetMargins(m Margins) error {
	if err := m.validate(); err != nil {
		return err
	}
	d.margins = m
	d.recompute()
	return nil
}

// SetVolumePaneHeight reserves rows below the price pane. Zero disables
// the reservation.
func (d *Data) SetVolumePaneHeight(h int) {
	if h < 0 {
		h = 0
	}
	d.volumePaneHeight = h
	d.recompute()
}

// ScaleToFit shows the entire main set, sampling when needed.
func (d *Data) ScaleToFit() {
	d.mode = ScaleFit
	d.recompute()
}

// SetTimeRange switches to fixed mode over the inclusive index range
// [start, end] of the main set. Out-of-range indices are rejected, not
// clamped.
func (d *Data) SetTimeRange(start, end int) error {
	if start < 0 || start > end || end >= d.main.Len() {
		return fmt.Errorf("%w: [%d, %d] against %d candles",
			ErrInvalidTimeRange, start, end, d.main.Len())
	}
	d.mode = ScaleFixed
	d.rangeStart, d.rangeEnd = start, end
	d.recompute()
	return nil
}

// SetPriceRange switches to price mode: only candles whose body interval
// overlaps [min, max] are shown.
func (d *Data) SetPriceRange(min, max float64) error {
	if min >= max {
		return fmt.Errorf("%w: [%v, %v]", ErrInvalidPriceRange, min, max)
	}
	d.mode = ScalePrice
	d.priceMin, d.priceMax = min, max
	d.recompute()
	return nil
}

// ResetCandles replaces the main set contents and refreshes the view.
func (d *Data) ResetCandles(candles []market.Candle) {
	d.main.Replace(candles)
	d.recompute()
}

// AppendCandles extends the main set and refreshes the view.
func (d *Data) AppendCandles(candles ...market.Candle) {
	d.main.Append(candles...)
	d.recompute()
}

// AvailableWidth is the column budget left for candles once the axis
// gutter and horizontal margins are paid for.
func (d *Data) AvailableWidth() int {
	w := d.termWidth - axisWidth - d.margins.Left - d.margins.Right
	if w < 0 {
		w = 0
	}
	return w
}

func (d *Data) recompute() {
	d.height = d.termHeight - d.margins.Top - d.volumePaneHeight - heightOffset
	if d.height < minHeight {
		d.height = minHeight
	}
	d.computeVisible()
}

func (d *Data) computeVisible() {
	candles := d.main.Candles()

	switch d.mode {
	case ScaleFixed:
		if d.rangeEnd < len(candles) {
			candles = candles[d.rangeStart : d.rangeEnd+1]
		}
	case ScalePrice:
		kept := make([]market.Candle, 0, len(candles))
		for _, c := range candles {
			if c.BodyLow() <= d.priceMax && c.BodyHigh() >= d.priceMin {
				kept = append(kept, c)
			}
		}
		candles = kept
	default:
		if w := d.AvailableWidth(); w > 0 && len(candles) > w {
			candles = sampleCandles(candles, w)
		}
	}

	d.visible.Replace(candles)
}

// sampleCandles decimates a sequence to at most target entries with a
// rounding stride over the index range. The first and last candle are
// always kept, the output is a strictly increasing subsequence of the
// input, and no candle appears twice. Wicks and extremes survive better
// under index decimation than under averaging, which is what matters for
// candlestick readability.
func sampleCandles(in []market.Candle, target int) []market.Candle {
	n := len(in)
	if target >= n {
		out := make([]market.Candle, n)
		copy(out, in)
		return out
	}
	if target <= 1 {
		return []market.Candle{in[0]}
	}

	out := make([]market.Candle, 0, target)
	prev := -1
	stride := float64(n-1) / float64(target-1)
	for k := 0; k < target; k++ {
		idx := int(math.Round(float64(k) * stride))
		if idx == prev {
			continue
		}
		out = append(out, in[idx])
		prev = idx
	}
	return out
}
