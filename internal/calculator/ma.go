package calculator

import (
	"SwingSentinel/internal/errs"
	"SwingSentinel/internal/model"

	"github.com/pkg/errors"
)

// LatestSMA returns the most recent value of a most-recent-first SMA series,
// rounded to whole units.
func LatestSMA(series []model.IndicatorValue) (float64, error) {
	if len(series) == 0 {
		return 0, errors.Wrap(errs.ErrDataUnavailable, "empty SMA series")
	}
	return RoundUnits(series[0].Value), nil
}
