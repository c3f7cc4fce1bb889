package chart

import "math"

// Candle cell glyphs. Heavy strokes are body, light strokes are wick; the
// mixed glyphs cover cells where one tapers into the other.
const (
	GlyphVoid           = ' '
	GlyphBody           = '┃'
	GlyphHalfBodyTop    = '╹'
	GlyphHalfBodyBottom = '╻'
	GlyphWick           = '│'
	GlyphTopCap         = '╽'
	GlyphBottomCap      = '╿'
	GlyphUpperWickCap   = '╷'
	GlyphLowerWickCap   = '╵'
)

// Fractional-coverage thresholds for the glyph cascade. A candle edge
// covering more than maxDiffThreshold of a cell gets the full glyph, more
// than minDiffThreshold gets the half glyph, anything less is dropped.
const (
	minDiffThreshold = 0.25
	maxDiffThreshold = 0.75
)

// candleGlyph picks the single glyph representing a candle at row y, given
// the candle's four mapped heights. The fractional distances between the
// row line and the candle edges approximate how much of the character cell
// the candle actually occupies, which is what makes wicks look smooth on a
// coarse grid. Every input combination lands on exactly one glyph.
func candleGlyph(y int, highY, lowY, bodyTopY, bodyBottomY float64) rune {
	h := float64(y)

	switch {
	case math.Ceil(highY) >= h && h >= math.Floor(bodyTopY):
		// Upper zone: wick above the body tapering into the body top.
		bodyDiff := bodyTopY - h
		highDiff := highY - h
		switch {
		case bodyDiff > maxDiffThreshold:
			return GlyphBody
		case bodyDiff > minDiffThreshold:
			if highDiff > maxDiffThreshold {
				return GlyphTopCap
			}
			return GlyphHalfBodyBottom
		case highDiff > maxDiffThreshold:
			return GlyphWick
		case highDiff > minDiffThreshold:
			return GlyphUpperWickCap
		default:
			return GlyphVoid
		}

	case math.Ceil(bodyBottomY) >= h && h >= math.Floor(lowY):
		// Lower zone: body bottom tapering into the wick below.
		bodyDiff := bodyBottomY - h
		lowDiff := lowY - h
		switch {
		case bodyDiff < minDiffThreshold:
			return GlyphBody
		case bodyDiff < maxDiffThreshold:
			if lowDiff < minDiffThreshold {
				return GlyphBottomCap
			}
			return GlyphHalfBodyTop
		case lowDiff < minDiffThreshold:
			return GlyphWick
		case lowDiff < maxDiffThreshold:
			return GlyphLowerWickCap
		default:
			return GlyphVoid
		}

	case bodyTopY >= h && h >= math.Ceil(bodyBottomY):
		return GlyphBody

	default:
		return GlyphVoid
	}
}
