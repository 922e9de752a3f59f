package collector

import (
	"context"

	"SwingSentinel/internal/model"
)

// MarketData defines the interface for fetching price and indicator series.
// Every series is returned most recent first.
type MarketData interface {
	FetchIntraday(ctx context.Context) ([]model.PriceSample, error)
	FetchRSI(ctx context.Context) ([]model.IndicatorValue, error)
	FetchSMA(ctx context.Context) ([]model.IndicatorValue, error)
	Name() string
}

// NewsSource defines the interface for fetching headlines, newest first.
type NewsSource interface {
	FetchHeadlines(ctx context.Context, query string) ([]model.Headline, error)
	Name() string
}
