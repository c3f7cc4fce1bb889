// Package chart renders OHLCV candle series as Unicode charts for text
// terminals: a price pane built from sub-cell glyph selection, an optional
// volume pane, a price axis with highlight support, and a statistics line.
package chart

import (
	"strings"

	"github.com/rustyeddy/candleterm/market"
	"github.com/rustyeddy/candleterm/term"
)

// Chart composites the price pane, volume pane, and info bar into a single
// string. Rendering is a pure function of the current candles, dimensions,
// scaling state, colors, and highlights; there is no render-to-render
// state.
type Chart struct {
	data       *Data
	yAxis      *YAxis
	volumePane *VolumePane
	infoBar    *InfoBar

	bullColor  term.Color
	bearColor  term.Color
	highlights []Highlight
	profile    term.Profile
}

// New builds a chart over a candle sequence at the given terminal size.
// Candles are assumed pre-validated (see market.Validate).
func New(candles []market.Candle, size term.Size) *Chart {
	data := NewData(market.NewCandleSet(candles), size.Width, size.Height)
	return &Chart{
		data:      data,
		yAxis:     NewYAxis(data),
		infoBar:   NewInfoBar(""),
		bullColor: term.Green,
		bearColor: term.Red,
		profile:   term.ProfileTrueColor,
	}
}

func (c *Chart) Data() *Data       { return c.data }
func (c *Chart) YAxis() *YAxis     { return c.yAxis }
func (c *Chart) InfoBar() *InfoBar { return c.infoBar }

func (c *Chart) SetName(name string)           { c.infoBar.Name = name }
func (c *Chart) SetBullColor(color term.Color) { c.bullColor = color }
func (c *Chart) SetBearColor(color term.Color) { c.bearColor = color }
func (c *Chart) SetProfile(p term.Profile)     { c.profile = p }
func (c *Chart) SetLabel(field, label string)  { c.infoBar.SetLabel(field, label) }

// SetVolumePane attaches (or detaches) a volume pane and re-derives the
// price pane height around it.
func (c *Chart) SetVolumePane(pane *VolumePane) {
	c.volumePane = pane
	if pane != nil && pane.Enabled {
		c.data.SetVolumePaneHeight(pane.Height)
	} else {
		c.data.SetVolumePaneHeight(0)
	}
}

// AddHighlight pins a price to a colored axis label. Registration order is
// match priority.
func (c *Chart) AddHighlight(price float64, color term.Color) {
	c.highlights = append(c.highlights, Highlight{Price: price, Color: color})
}

// Render composites the chart top to bottom: top margin, price pane rows
// from height down to 1, volume pane rows, then the centered info bar.
func (c *Chart) Render() string {
	var b strings.Builder

	margins := c.data.Margins()
	left := strings.Repeat(" ", margins.Left)
	visible := c.data.Visible().Candles()

	for i := 0; i < margins.Top; i++ {
		b.WriteByte('\n')
	}

	for y := c.data.Height(); y >= 1; y-- {
		b.WriteString(left)
		b.WriteString(c.yAxis.Row(y, c.highlights, c.profile))
		for _, candle := range visible {
			b.WriteString(c.renderCell(candle, y))
		}
		b.WriteByte('\n')
	}

	if c.volumePane != nil && c.volumePane.Enabled {
		maxVolume := c.data.Visible().Stats().MaxVolume
		for y := c.volumePane.Height; y >= 1; y-- {
			b.WriteString(left)
			b.WriteString(c.yAxis.BlankRow())
			for _, candle := range visible {
				b.WriteString(c.volumePane.Cell(candle, y, maxVolume, c.profile))
			}
			b.WriteByte('\n')
		}
	}

	b.WriteString(left)
	b.WriteString(c.infoBar.Render(c.data.Main().Stats(), c.data.Width(), c.profile))
	b.WriteByte('\n')

	return b.String()
}

func (c *Chart) renderCell(candle market.Candle, y int) string {
	highY, lowY, bodyTopY, bodyBottomY := c.yAxis.PriceToHeights(candle)
	g := candleGlyph(y, highY, lowY, bodyTopY, bodyBottomY)
	if g == GlyphVoid {
		return " "
	}
	color := c.bearColor
	if candle.Type() == market.Bullish {
		color = c.bullColor
	}
	return term.Colorize(string(g), color, c.profile)
}
