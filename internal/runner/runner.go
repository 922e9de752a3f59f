// Package runner executes one check: swing, threshold, enrichment, delivery.
package runner

import (
	"context"
	"fmt"

	"SwingSentinel/internal/collector"
	"SwingSentinel/internal/model"
	"SwingSentinel/internal/notifier"
	"SwingSentinel/internal/strategy"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Runner wires the four stages of a check run.
type Runner struct {
	Collector  *collector.Collector
	Dispatcher *notifier.Dispatcher
	Symbol     string
	Threshold  float64
	Log        logrus.FieldLogger
}

// Outcome summarizes a finished run.
type Outcome struct {
	RunID    string
	Swing    *model.SwingResult
	Decision *model.Decision
	Channels []string // channels delivered, empty when no alert was due
}

// NewRunner creates a new Runner.
func NewRunner(col *collector.Collector, d *notifier.Dispatcher, symbol string, threshold float64, log logrus.FieldLogger) *Runner {
	return &Runner{
		Collector:  col,
		Dispatcher: d,
		Symbol:     symbol,
		Threshold:  threshold,
		Log:        log,
	}
}

// Run performs one check. Any stage failure aborts the run.
func (r *Runner) Run(ctx context.Context) (*Outcome, error) {
	out := &Outcome{RunID: uuid.NewString()}
	log := r.Log.WithFields(logrus.Fields{"run_id": out.RunID, "symbol": r.Symbol})

	log.WithField("source", r.Collector.Market.Name()).Info("fetching intraday prices")
	swing, err := r.Collector.Swing(ctx)
	if err != nil {
		return out, err
	}
	out.Swing = swing
	log.WithFields(logrus.Fields{
		"current":   swing.CurrentPrice,
		"min":       swing.MinPrice,
		"max":       swing.MaxPrice,
		"move_pct":  swing.PercentMove,
		"direction": swing.Direction,
	}).Info("swing computed")

	decision := strategy.Evaluate(swing, r.Threshold)
	out.Decision = decision
	if !decision.Alert {
		log.WithField("threshold", r.Threshold).Info("move within threshold, no alert")
		return out, nil
	}

	log.Info("threshold exceeded, collecting indicators and news")
	ind, headlines, err := r.Collector.Enrich(ctx)
	if err != nil {
		return out, err
	}
	log.WithFields(logrus.Fields{
		"rsi":       ind.RSI,
		"sma":       ind.SMA,
		"headlines": len(headlines),
	}).Debug("enrichment done")

	brief := &model.Brief{
		Symbol:     r.Symbol,
		Swing:      swing,
		Decision:   decision,
		Indicators: ind,
		Headlines:  headlines,
	}
	sent, err := r.Dispatcher.Dispatch(ctx, brief)
	out.Channels = sent
	if err != nil {
		return out, fmt.Errorf("notify: %w", err)
	}
	log.WithField("channels", sent).Info("alert delivered")
	return out, nil
}
