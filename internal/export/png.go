package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/rustyeddy/candleterm/market"
	"github.com/rustyeddy/candleterm/term"
)

// PNGOptions sizes the exported image.
type PNGOptions struct {
	Width     int
	Height    int
	BullColor term.Color
	BearColor term.Color
}

// WritePNG draws a candle series as an image. Pixel positions are derived
// from the prices directly, not from the character grid, so the image
// resolution is independent of the terminal rendering.
func WritePNG(path string, candles []market.Candle, opts PNGOptions) error {
	if len(candles) == 0 {
		return fmt.Errorf("export: no candles")
	}
	if opts.Width <= 0 {
		opts.Width = 1200
	}
	if opts.Height <= 0 {
		opts.Height = 600
	}

	st := market.ComputeStats(candles)
	span := st.MaxPrice - st.MinPrice
	if span == 0 {
		span = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	fillRect(img, 0, 0, opts.Width, opts.Height, color.RGBA{20, 20, 24, 255})

	bull := toRGBA(opts.BullColor, color.RGBA{52, 208, 88, 255})
	bear := toRGBA(opts.BearColor, color.RGBA{234, 74, 90, 255})

	colWidth := float64(opts.Width) / float64(len(candles))
	bodyWidth := int(colWidth * 0.6)
	if bodyWidth < 1 {
		bodyWidth = 1
	}

	// y grows downward in image space.
	toY := func(price float64) int {
		return opts.Height - 1 - int((price-st.MinPrice)/span*float64(opts.Height-1))
	}

	for i, c := range candles {
		fill := bear
		if c.Type() == market.Bullish {
			fill = bull
		}

		xCenter := int(float64(i)*colWidth + colWidth/2)

		// Wick: one-pixel-ish column from high to low.
		fillRect(img, xCenter, toY(c.High), 1, toY(c.Low)-toY(c.High)+1, fill)

		// Body rectangle, at least one pixel tall so flat bodies stay visible.
		top := toY(c.BodyHigh())
		h := toY(c.BodyLow()) - top
		if h < 1 {
			h = 1
		}
		fillRect(img, xCenter-bodyWidth/2, top, bodyWidth, h, fill)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("export: encode png: %w", err)
	}
	return nil
}

func fillRect(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	bounds := img.Bounds()
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			if image.Pt(xx, yy).In(bounds) {
				img.SetRGBA(xx, yy, c)
			}
		}
	}
}

func toRGBA(c term.Color, fallback color.RGBA) color.RGBA {
	r, g, b := c.RGBValues()
	if r == 0 && g == 0 && b == 0 {
		return fallback
	}
	return color.RGBA{r, g, b, 255}
}
