package collector

import (
	"context"
	"time"

	"SwingSentinel/internal/model"
)

// StubMarketData returns controllable fixed data for development and testing.
type StubMarketData struct {
	Samples []model.PriceSample
	RSI     []model.IndicatorValue
	SMA     []model.IndicatorValue
	Err     error

	IntradayCalls int
	RSICalls      int
	SMACalls      int
}

func (s *StubMarketData) Name() string { return "stub" }

func (s *StubMarketData) FetchIntraday(_ context.Context) ([]model.PriceSample, error) {
	s.IntradayCalls++
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Samples, nil
}

func (s *StubMarketData) FetchRSI(_ context.Context) ([]model.IndicatorValue, error) {
	s.RSICalls++
	if s.Err != nil {
		return nil, s.Err
	}
	return s.RSI, nil
}

func (s *StubMarketData) FetchSMA(_ context.Context) ([]model.IndicatorValue, error) {
	s.SMACalls++
	if s.Err != nil {
		return nil, s.Err
	}
	return s.SMA, nil
}

// StubNews returns fixed headlines and records the queries it saw.
type StubNews struct {
	Headlines []model.Headline
	Err       error
	Queries   []string
}

func (s *StubNews) Name() string { return "stub" }

func (s *StubNews) FetchHeadlines(_ context.Context, query string) ([]model.Headline, error) {
	s.Queries = append(s.Queries, query)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Headlines, nil
}

// SamplesFromPrices builds most-recent-first samples spaced step apart, ending at end.
func SamplesFromPrices(end time.Time, step time.Duration, prices ...float64) []model.PriceSample {
	out := make([]model.PriceSample, len(prices))
	for i, p := range prices {
		out[i] = model.PriceSample{Time: end.Add(-time.Duration(i) * step), Close: p}
	}
	return out
}

// IndicatorSeries builds a most-recent-first indicator series spaced step apart.
func IndicatorSeries(end time.Time, step time.Duration, values ...float64) []model.IndicatorValue {
	out := make([]model.IndicatorValue, len(values))
	for i, v := range values {
		out[i] = model.IndicatorValue{Time: end.Add(-time.Duration(i) * step), Value: v}
	}
	return out
}
