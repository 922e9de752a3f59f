package collector

import (
	"context"
	"fmt"

	"SwingSentinel/internal/calculator"
	"SwingSentinel/internal/model"
)

// rsiWindow is how many recent RSI readings an alert shows.
const rsiWindow = 3

// Collector orchestrates data fetching and signal computation.
type Collector struct {
	Market            MarketData
	News              NewsSource
	NewsQuery         string
	SMAPeriod         int
	IndicatorInterval string
}

// NewCollector creates a new Collector.
func NewCollector(market MarketData, news NewsSource, newsQuery string, smaPeriod int, indicatorInterval string) *Collector {
	return &Collector{
		Market:            market,
		News:              news,
		NewsQuery:         newsQuery,
		SMAPeriod:         smaPeriod,
		IndicatorInterval: indicatorInterval,
	}
}

// Swing fetches the intraday window and reduces it to a SwingResult.
func (c *Collector) Swing(ctx context.Context) (*model.SwingResult, error) {
	samples, err := c.Market.FetchIntraday(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch intraday: %w", err)
	}
	res, err := calculator.AnalyzeSwing(samples)
	if err != nil {
		return nil, fmt.Errorf("analyze swing: %w", err)
	}
	return res, nil
}

// Enrich fetches RSI, SMA and headlines, in that order.
func (c *Collector) Enrich(ctx context.Context) (*model.Indicators, []model.Headline, error) {
	rsiSeries, err := c.Market.FetchRSI(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch rsi: %w", err)
	}
	rsi, err := calculator.RecentRSI(rsiSeries, rsiWindow)
	if err != nil {
		return nil, nil, fmt.Errorf("recent rsi: %w", err)
	}

	smaSeries, err := c.Market.FetchSMA(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch sma: %w", err)
	}
	sma, err := calculator.LatestSMA(smaSeries)
	if err != nil {
		return nil, nil, fmt.Errorf("latest sma: %w", err)
	}

	headlines, err := c.News.FetchHeadlines(ctx, c.NewsQuery)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch headlines: %w", err)
	}

	ind := &model.Indicators{
		RSI:       rsi,
		SMA:       sma,
		SMAPeriod: c.SMAPeriod,
		Interval:  c.IndicatorInterval,
	}
	return ind, headlines, nil
}
