package strategy

import (
	"SwingSentinel/internal/calculator"
	"SwingSentinel/internal/model"
)

const (
	GlyphUp   = "🔺"
	GlyphDown = "🔻"
)

// Evaluate decides whether a swing is large enough to alert on.
// A zero move counts as a decline for the glyph.
func Evaluate(swing *model.SwingResult, threshold float64) *model.Decision {
	glyph := GlyphDown
	if swing.PercentMove > 0 {
		glyph = GlyphUp
	}
	return &model.Decision{
		Alert:     calculator.ExceedsThreshold(swing.PercentMove, threshold),
		Glyph:     glyph,
		Threshold: threshold,
	}
}
