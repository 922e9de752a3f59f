package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"SwingSentinel/internal/errs"
	"SwingSentinel/internal/model"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// AlphaVantageConfig selects the asset and indicator parameters.
type AlphaVantageConfig struct {
	BaseURL           string
	APIKey            string
	Symbol            string // intraday symbol, e.g. BTC
	Market            string // e.g. USD
	Interval          string // intraday interval, e.g. 15min
	IndicatorSymbol   string // pair symbol for RSI/SMA, e.g. BTCUSD
	IndicatorInterval string // e.g. weekly
	RSIPeriod         int
	SMAPeriod         int
	SeriesType        string
	Proxy             string
	Timeout           time.Duration
}

// AlphaVantageClient implements MarketData using the Alpha Vantage query API.
type AlphaVantageClient struct {
	client *resty.Client
	cfg    AlphaVantageConfig
}

// NewAlphaVantageClient creates a client with optional proxy support.
func NewAlphaVantageClient(cfg AlphaVantageConfig) *AlphaVantageClient {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	client := resty.New().SetTimeout(cfg.Timeout)
	if cfg.Proxy != "" {
		client.SetProxy(cfg.Proxy)
	}
	return &AlphaVantageClient{client: client, cfg: cfg}
}

func (a *AlphaVantageClient) Name() string { return "alphavantage" }

// avTimestampLayouts covers intraday, intraday-without-seconds and daily keys.
var avTimestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseAVTimestamp(s string) (time.Time, error) {
	for _, layout := range avTimestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

func (a *AlphaVantageClient) FetchIntraday(ctx context.Context) ([]model.PriceSample, error) {
	params := map[string]string{
		"function": "CRYPTO_INTRADAY",
		"symbol":   a.cfg.Symbol,
		"market":   a.cfg.Market,
		"interval": a.cfg.Interval,
	}
	key := fmt.Sprintf("Time Series Crypto (%s)", a.cfg.Interval)
	rows, err := a.fetchSeries(ctx, params, key)
	if err != nil {
		return nil, err
	}

	samples := make([]model.PriceSample, 0, len(rows))
	for ts, fields := range rows {
		t, err := parseAVTimestamp(ts)
		if err != nil {
			return nil, errors.Wrap(errs.ErrMalformedData, err.Error())
		}
		closeStr, ok := fields["4. close"]
		if !ok {
			return nil, errors.Wrapf(errs.ErrMalformedData, "sample %s has no close price", ts)
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(closeStr), 64)
		if err != nil {
			return nil, errors.Wrapf(errs.ErrMalformedData, "sample %s close %q", ts, closeStr)
		}
		samples = append(samples, model.PriceSample{Time: t, Close: price})
	}
	// Go maps drop the provider's ordering; restore most recent first.
	sort.Slice(samples, func(i, j int) bool { return samples[i].Time.After(samples[j].Time) })
	return samples, nil
}

func (a *AlphaVantageClient) FetchRSI(ctx context.Context) ([]model.IndicatorValue, error) {
	return a.fetchIndicator(ctx, "RSI", a.cfg.RSIPeriod)
}

func (a *AlphaVantageClient) FetchSMA(ctx context.Context) ([]model.IndicatorValue, error) {
	return a.fetchIndicator(ctx, "SMA", a.cfg.SMAPeriod)
}

func (a *AlphaVantageClient) fetchIndicator(ctx context.Context, function string, period int) ([]model.IndicatorValue, error) {
	params := map[string]string{
		"function":    function,
		"symbol":      a.cfg.IndicatorSymbol,
		"interval":    a.cfg.IndicatorInterval,
		"time_period": strconv.Itoa(period),
		"series_type": a.cfg.SeriesType,
	}
	rows, err := a.fetchSeries(ctx, params, "Technical Analysis: "+function)
	if err != nil {
		return nil, err
	}

	values := make([]model.IndicatorValue, 0, len(rows))
	for ts, fields := range rows {
		t, err := parseAVTimestamp(ts)
		if err != nil {
			return nil, errors.Wrap(errs.ErrMalformedData, err.Error())
		}
		raw, ok := fields[function]
		if !ok {
			return nil, errors.Wrapf(errs.ErrProvider, "%s point %s has no %s field", function, ts, function)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, errors.Wrapf(errs.ErrMalformedData, "%s point %s value %q", function, ts, raw)
		}
		values = append(values, model.IndicatorValue{Time: t, Value: v})
	}
	sort.Slice(values, func(i, j int) bool { return values[i].Time.After(values[j].Time) })
	return values, nil
}

// fetchSeries runs one query and returns the keyed time series under seriesKey.
func (a *AlphaVantageClient) fetchSeries(ctx context.Context, params map[string]string, seriesKey string) (map[string]map[string]string, error) {
	function := params["function"]
	query := map[string]string{"apikey": a.cfg.APIKey}
	for k, v := range params {
		query[k] = v
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParams(query).
		Get(a.cfg.BaseURL)
	if err != nil {
		return nil, errors.Wrapf(errs.ErrProvider, "alphavantage %s: %v", function, redactTransport(err))
	}
	if !resp.IsSuccess() {
		return nil, errors.Wrapf(errs.ErrProvider, "alphavantage %s: status %d, body: %s",
			function, resp.StatusCode(), truncate(resp.String(), 200))
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, errors.Wrapf(errs.ErrMalformedData, "alphavantage %s: decode: %v", function, err)
	}
	// Rate limits and bad keys come back as 200 with a message field.
	for _, k := range []string{"Error Message", "Note", "Information"} {
		if raw, ok := payload[k]; ok {
			var msg string
			if err := json.Unmarshal(raw, &msg); err != nil {
				msg = truncate(string(raw), 200)
			}
			return nil, errors.Wrapf(errs.ErrProvider, "alphavantage %s: %s", function, msg)
		}
	}

	raw, ok := payload[seriesKey]
	if !ok {
		return nil, errors.Wrapf(errs.ErrProvider, "alphavantage %s: response has no %q", function, seriesKey)
	}
	var rows map[string]map[string]string
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, errors.Wrapf(errs.ErrMalformedData, "alphavantage %s: decode %q: %v", function, seriesKey, err)
	}
	if len(rows) == 0 {
		return nil, errors.Wrapf(errs.ErrDataUnavailable, "alphavantage %s: %q is empty", function, seriesKey)
	}
	return rows, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
