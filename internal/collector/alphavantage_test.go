package collector

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"SwingSentinel/internal/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const intradayBody = `{
  "Meta Data": {"1. Information": "Crypto Intraday (15min) Time Series"},
  "Time Series Crypto (15min)": {
    "2026-10-17 11:30:00": {"1. open": "99.0", "4. close": "100.00", "5. volume": "12"},
    "2026-10-17 11:45:00": {"1. open": "100.0", "4. close": "105.20", "5. volume": "10"},
    "2026-10-17 11:15:00": {"1. open": "97.5", "4. close": "98.10", "5. volume": "8"}
  }
}`

const rsiBody = `{
  "Meta Data": {"2: Indicator": "Relative Strength Index (RSI)"},
  "Technical Analysis: RSI": {
    "2026-10-03": {"RSI": "60.2600"},
    "2026-10-10": {"RSI": "65.3400"},
    "2026-09-26": {"RSI": "55.1400"}
  }
}`

const smaBody = `{
  "Technical Analysis: SMA": {
    "2026-10-10": {"SMA": "30512.4900"},
    "2026-10-03": {"SMA": "30100.0000"}
  }
}`

func newAVServer(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) *AlphaVantageClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(handler))
	t.Cleanup(srv.Close)
	return NewAlphaVantageClient(AlphaVantageConfig{
		BaseURL:           srv.URL + "/query",
		APIKey:            "test-key",
		Symbol:            "BTC",
		Market:            "USD",
		Interval:          "15min",
		IndicatorSymbol:   "BTCUSD",
		IndicatorInterval: "weekly",
		RSIPeriod:         14,
		SMAPeriod:         20,
		SeriesType:        "close",
		Timeout:           5 * time.Second,
	})
}

func TestAlphaVantage_FetchIntraday(t *testing.T) {
	client := newAVServer(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "CRYPTO_INTRADAY", q.Get("function"))
		assert.Equal(t, "BTC", q.Get("symbol"))
		assert.Equal(t, "USD", q.Get("market"))
		assert.Equal(t, "15min", q.Get("interval"))
		assert.Equal(t, "test-key", q.Get("apikey"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(intradayBody))
	})

	samples, err := client.FetchIntraday(context.Background())
	require.NoError(t, err)
	require.Len(t, samples, 3)

	assert.Equal(t, 105.20, samples[0].Close)
	assert.Equal(t, 100.00, samples[1].Close)
	assert.Equal(t, 98.10, samples[2].Close)
	assert.Equal(t, time.Date(2026, 10, 17, 11, 45, 0, 0, time.UTC), samples[0].Time)
	assert.True(t, samples[0].Time.After(samples[1].Time))
}

func TestAlphaVantage_FetchIndicators(t *testing.T) {
	client := newAVServer(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "BTCUSD", q.Get("symbol"))
		assert.Equal(t, "weekly", q.Get("interval"))
		assert.Equal(t, "close", q.Get("series_type"))
		switch q.Get("function") {
		case "RSI":
			assert.Equal(t, "14", q.Get("time_period"))
			_, _ = w.Write([]byte(rsiBody))
		case "SMA":
			assert.Equal(t, "20", q.Get("time_period"))
			_, _ = w.Write([]byte(smaBody))
		default:
			t.Errorf("unexpected function %q", q.Get("function"))
		}
	})

	rsi, err := client.FetchRSI(context.Background())
	require.NoError(t, err)
	require.Len(t, rsi, 3)
	assert.Equal(t, 65.34, rsi[0].Value)
	assert.Equal(t, 60.26, rsi[1].Value)
	assert.Equal(t, 55.14, rsi[2].Value)

	sma, err := client.FetchSMA(context.Background())
	require.NoError(t, err)
	require.Len(t, sma, 2)
	assert.Equal(t, 30512.49, sma[0].Value)
}

func TestAlphaVantage_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"server error", http.StatusInternalServerError, `oops`, errs.ErrProvider},
		{"rate limit note", http.StatusOK, `{"Note": "Thank you for using Alpha Vantage!"}`, errs.ErrProvider},
		{"bad key", http.StatusOK, `{"Error Message": "Invalid API call."}`, errs.ErrProvider},
		{"missing series", http.StatusOK, `{"Meta Data": {}}`, errs.ErrProvider},
		{"empty series", http.StatusOK, `{"Time Series Crypto (15min)": {}}`, errs.ErrDataUnavailable},
		{"bad price", http.StatusOK, `{"Time Series Crypto (15min)": {"2026-10-17 11:45:00": {"4. close": "n/a"}}}`, errs.ErrMalformedData},
		{"no close", http.StatusOK, `{"Time Series Crypto (15min)": {"2026-10-17 11:45:00": {"1. open": "1"}}}`, errs.ErrMalformedData},
		{"bad timestamp", http.StatusOK, `{"Time Series Crypto (15min)": {"yesterday": {"4. close": "1"}}}`, errs.ErrMalformedData},
		{"not json", http.StatusOK, `<html></html>`, errs.ErrMalformedData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newAVServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			_, err := client.FetchIntraday(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAlphaVantage_TransportErrorHidesAPIKey(t *testing.T) {
	client := NewAlphaVantageClient(AlphaVantageConfig{
		BaseURL:  "http://127.0.0.1:1/query",
		APIKey:   "AV-SECRET-123",
		Symbol:   "BTC",
		Market:   "USD",
		Interval: "15min",
		Timeout:  2 * time.Second,
	})

	_, err := client.FetchIntraday(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrProvider)
	assert.NotContains(t, err.Error(), "AV-SECRET-123")
	assert.NotContains(t, fmt.Sprintf("%+v", err), "AV-SECRET-123")
	assert.Contains(t, err.Error(), "127.0.0.1:1/query")
}

func TestAlphaVantage_NonStringNoteKeepsPayload(t *testing.T) {
	client := newAVServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Note": {"text": "slow down"}}`))
	})

	_, err := client.FetchIntraday(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrProvider)
	assert.Contains(t, err.Error(), "slow down")
}
