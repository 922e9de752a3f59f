package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"SwingSentinel/internal/collector"
	"SwingSentinel/internal/config"
	"SwingSentinel/internal/errs"
	"SwingSentinel/internal/logger"
	"SwingSentinel/internal/model"
	"SwingSentinel/internal/notifier"
	"SwingSentinel/internal/runner"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		var logged *reportedError
		if !errors.As(err, &logged) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}

// reportedError marks a failure runCheck has already logged.
type reportedError struct{ err error }

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "swingsentinel",
		Short: "Alert on large intraday crypto price swings",
		Long: `swingsentinel checks the recent intraday price window of one crypto asset and,
when the biggest move exceeds the configured threshold, mails and/or texts a short brief
with RSI, SMA and the latest headlines. It runs once and exits; schedule it externally.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runCheck,
	}
	root.AddCommand(&cobra.Command{
		Use:           "check",
		Short:         "Run one swing check (default)",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runCheck,
	})
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "swingsentinel %s\n", version)
		},
	})
	return root
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logrus.WithField("class", errs.Class(err)).Errorf("load config: %v", err)
		return &reportedError{err}
	}

	log, err := logger.New(logger.Config{Level: cfg.Log.Level, OutputFile: cfg.Log.File})
	if err != nil {
		logrus.Errorf("init logger: %v", err)
		return &reportedError{err}
	}
	if err := cfg.Validate(); err != nil {
		log.WithField("class", errs.Class(err)).Errorf("config validation: %v", err)
		return &reportedError{err}
	}

	r := buildRunner(cfg, log)
	out, err := r.Run(cmd.Context())
	if err != nil {
		entry := log.WithField("class", errs.Class(err))
		if out != nil {
			entry = entry.WithField("run_id", out.RunID)
		}
		entry.Errorf("check failed: %+v", err)
		return &reportedError{err}
	}
	return nil
}

func buildRunner(cfg *config.Config, log *logrus.Logger) *runner.Runner {
	market := collector.NewAlphaVantageClient(collector.AlphaVantageConfig{
		BaseURL:           cfg.MarketData.BaseURL,
		APIKey:            cfg.MarketData.APIKey,
		Symbol:            cfg.Asset.Symbol,
		Market:            cfg.Asset.Market,
		Interval:          cfg.MarketData.Interval,
		IndicatorSymbol:   cfg.IndicatorSymbol(),
		IndicatorInterval: cfg.MarketData.IndicatorInterval,
		RSIPeriod:         cfg.MarketData.RSIPeriod,
		SMAPeriod:         cfg.MarketData.SMAPeriod,
		SeriesType:        cfg.MarketData.SeriesType,
		Proxy:             cfg.Proxy,
		Timeout:           cfg.HTTPTimeout,
	})
	news := collector.NewNewsAPIClient(collector.NewsAPIConfig{
		BaseURL:  cfg.News.BaseURL,
		APIKey:   cfg.News.APIKey,
		Language: cfg.News.Language,
		SortBy:   cfg.News.SortBy,
		Proxy:    cfg.Proxy,
		Timeout:  cfg.HTTPTimeout,
	})
	col := collector.NewCollector(market, news, cfg.Asset.Name, cfg.MarketData.SMAPeriod, cfg.MarketData.IndicatorInterval)

	d := notifier.NewDispatcher()
	if cfg.MailEnabled() {
		d.Add(notifier.NewEmailSender(notifier.EmailConfig{
			Host:     cfg.Mail.Host,
			Port:     cfg.Mail.Port,
			From:     cfg.Mail.From,
			Password: cfg.Mail.Password,
			To:       cfg.Mail.To,
			Timeout:  cfg.HTTPTimeout,
		}), func(b *model.Brief) model.AlertMessage {
			return notifier.FormatEmail(b, cfg.News.EmailHeadlines)
		})
	}
	if cfg.SMSEnabled() {
		d.Add(notifier.NewTwilioSender(notifier.TwilioConfig{
			BaseURL:    cfg.SMS.BaseURL,
			AccountSID: cfg.SMS.AccountSID,
			AuthToken:  cfg.SMS.AuthToken,
			From:       cfg.SMS.From,
			To:         cfg.SMS.To,
			Proxy:      cfg.Proxy,
			Timeout:    cfg.HTTPTimeout,
		}), func(b *model.Brief) model.AlertMessage {
			return notifier.FormatSMS(b, cfg.News.SMSHeadlines)
		})
	}
	log.WithField("channels", d.Channels()).Debug("notifier channels")

	return runner.NewRunner(col, d, cfg.Asset.Symbol, cfg.Asset.AlertPercentThreshold, log)
}
