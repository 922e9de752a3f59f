package calculator

import (
	"math"
	"time"

	"SwingSentinel/internal/errs"
	"SwingSentinel/internal/model"

	"github.com/pkg/errors"
)

// AnalyzeSwing reduces an intraday window to its biggest move.
//
// samples must be ordered most recent first. The current price is the first
// sample; extremum ties keep the sample seen first in that order. The move is
// an ascent (max/min - 1) when the maximum is strictly later than the minimum,
// otherwise a descent (min/max - 1), which is never positive.
func AnalyzeSwing(samples []model.PriceSample) (*model.SwingResult, error) {
	if len(samples) == 0 {
		return nil, errors.Wrap(errs.ErrDataUnavailable, "no price samples")
	}

	maxIdx, minIdx := 0, 0
	for i, s := range samples {
		if math.IsNaN(s.Close) || math.IsInf(s.Close, 0) || s.Close <= 0 {
			return nil, errors.Wrapf(errs.ErrMalformedData, "sample %d at %s has price %v",
				i, s.Time.Format(time.RFC3339), s.Close)
		}
		if s.Close > samples[maxIdx].Close {
			maxIdx = i
		}
		if s.Close < samples[minIdx].Close {
			minIdx = i
		}
	}

	maxPrice := RoundUnits(samples[maxIdx].Close)
	minPrice := RoundUnits(samples[minIdx].Close)
	if minPrice == 0 {
		return nil, errors.Wrapf(errs.ErrMalformedData, "minimum price %v rounds to zero", samples[minIdx].Close)
	}

	res := &model.SwingResult{
		CurrentPrice: RoundUnits(samples[0].Close),
		MinPrice:     minPrice,
		MaxPrice:     maxPrice,
		MinAt:        samples[minIdx].Time,
		MaxAt:        samples[maxIdx].Time,
	}

	if res.MaxAt.After(res.MinAt) {
		res.Direction = model.DirectionAscent
		res.PercentMove = percentChange(maxPrice, minPrice)
	} else {
		res.Direction = model.DirectionDescent
		res.PercentMove = percentChange(minPrice, maxPrice)
	}
	return res, nil
}

// ExceedsThreshold reports whether |percentMove| is strictly above threshold.
func ExceedsThreshold(percentMove, threshold float64) bool {
	return math.Abs(percentMove) > threshold
}
