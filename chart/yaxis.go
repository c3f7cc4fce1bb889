package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/rustyeddy/candleterm/market"
	"github.com/rustyeddy/candleterm/term"
)

const (
	// labelSpacing puts a price label on every fourth row; the top and
	// bottom rows always get one.
	labelSpacing = 4
	labelWidth   = 9

	// highlightEps is the exact-match window for highlight prices.
	highlightEps = 1e-6
)

// Highlight pins a price to a colored axis label. Highlights are kept in
// registration order; when several could claim the same row, the first one
// registered wins.
type Highlight struct {
	Price float64
	Color term.Color
}

// YAxis maps prices into the vertical row space of a Data's visible set
// and renders the axis gutter row by row.
type YAxis struct {
	data *Data
}

func NewYAxis(data *Data) *YAxis {
	return &YAxis{data: data}
}

// PriceToHeights linear-maps a candle's four relevant prices into the
// [0, height] row space, using the visible set's price range as domain.
// A degenerate (flat) range is widened to 1 so the division never blows up.
func (a *YAxis) PriceToHeights(c market.Candle) (highY, lowY, bodyTopY, bodyBottomY float64) {
	st := a.data.Visible().Stats()
	span := st.MaxPrice - st.MinPrice
	if span == 0 {
		span = 1
	}
	h := float64(a.data.Height())
	scale := func(p float64) float64 {
		return (p - st.MinPrice) / span * h
	}
	return scale(c.High), scale(c.Low), scale(c.BodyHigh()), scale(c.BodyLow())
}

// rowPrice interpolates the price shown at a row: MinPrice sits at row 1,
// MaxPrice at the top row.
func (a *YAxis) rowPrice(y int) float64 {
	st := a.data.Visible().Stats()
	h := a.data.Height()
	if h <= 1 {
		return st.MinPrice
	}
	return st.MinPrice + (st.MaxPrice-st.MinPrice)*float64(y-1)/float64(h-1)
}

// Row renders the axis gutter for one row: a price label on label rows, a
// highlighted label when a highlight claims the row, blank gutter
// otherwise. A highlight claims a row on an exact epsilon match, or when
// its target falls between this row's price and the next row's.
func (a *YAxis) Row(y int, highlights []Highlight, profile term.Profile) string {
	price := a.rowPrice(y)
	next := a.rowPrice(y + 1)

	for _, h := range highlights {
		if math.Abs(h.Price-price) < highlightEps || (price <= h.Price && h.Price < next) {
			label := fmt.Sprintf("%*.2f", labelWidth, h.Price)
			return term.Colorize(label, h.Color, profile) + " ┤ "
		}
	}

	if y%labelSpacing == 0 || y == a.data.Height() || y == 1 {
		return fmt.Sprintf("%*.2f │ ", labelWidth, price)
	}
	return strings.Repeat(" ", labelWidth) + " │ "
}

// BlankRow renders the gutter with no label, used under the price pane.
func (a *YAxis) BlankRow() string {
	return strings.Repeat(" ", labelWidth) + " │ "
}
