package calculator

import (
	"SwingSentinel/internal/errs"
	"SwingSentinel/internal/model"

	"github.com/pkg/errors"
)

// RecentRSI takes the n most recent values of a most-recent-first RSI series
// and returns them oldest -> newest, rounded to one decimal.
func RecentRSI(series []model.IndicatorValue, n int) ([]float64, error) {
	if n <= 0 {
		return nil, errors.New("n must be positive")
	}
	if len(series) < n {
		return nil, errors.Wrapf(errs.ErrDataUnavailable, "need %d RSI values, got %d", n, len(series))
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = RoundTenth(series[n-1-i].Value)
	}
	return out, nil
}
