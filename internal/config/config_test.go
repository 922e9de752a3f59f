package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"SwingSentinel/internal/errs"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"ASSET_SYMBOL", "ASSET_NAME", "AV_KEY", "AV_BASE_URL", "NEWS_API_KEY", "NEWS_BASE_URL",
		"SMTP_HOST", "SMTP_PORT", "MAIL_FROM", "MAIL_PASSWORD", "MAIL_TO",
		"TWILIO_SID", "TWILIO_AUTH_TOKEN", "SMS_FROM", "SMS_TO",
		"NOTIFY_EMAIL", "NOTIFY_SMS", "ALERT_PERCENT_THRESH", "LOG_LEVEL", "LOG_FILE", "HTTPS_PROXY",
	} {
		t.Setenv(k, "")
	}
}

func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("AV_KEY", "av")
	t.Setenv("NEWS_API_KEY", "news")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("MAIL_FROM", "bot@example.com")
	t.Setenv("MAIL_PASSWORD", "secret")
	t.Setenv("MAIL_TO", "me@example.com")
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Asset.Symbol != "BTC" || cfg.Asset.Name != "bitcoin" || cfg.Asset.Market != "USD" {
		t.Errorf("unexpected asset defaults: %+v", cfg.Asset)
	}
	if cfg.Asset.AlertPercentThreshold != 2 {
		t.Errorf("expected threshold 2, got %v", cfg.Asset.AlertPercentThreshold)
	}
	if cfg.MarketData.RSIPeriod != 14 || cfg.MarketData.SMAPeriod != 20 {
		t.Errorf("unexpected indicator periods: %+v", cfg.MarketData)
	}
	if cfg.News.EmailHeadlines != 5 || cfg.News.SMSHeadlines != 3 {
		t.Errorf("unexpected headline counts: %+v", cfg.News)
	}
	if !cfg.MailEnabled() || cfg.SMSEnabled() {
		t.Errorf("expected mail on and sms off by default")
	}
	if cfg.Mail.Port != 587 || cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("unexpected port/timeout: %d %s", cfg.Mail.Port, cfg.HTTPTimeout)
	}
	if cfg.IndicatorSymbol() != "BTCUSD" {
		t.Errorf("expected BTCUSD, got %s", cfg.IndicatorSymbol())
	}
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := `
asset:
  symbol: eth
  name: ethereum
  alert_percent_threshold: 3.5
sms:
  enabled: true
  from: "+100"
http_timeout: 10s
`
	if err := os.WriteFile(path, []byte(yml), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ALERT_PERCENT_THRESH", "4")
	t.Setenv("SMS_FROM", "+200")
	t.Setenv("NOTIFY_EMAIL", "false")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Asset.Name != "ethereum" || cfg.IndicatorSymbol() != "ETHUSD" {
		t.Errorf("yaml asset not applied: %+v", cfg.Asset)
	}
	if cfg.Asset.AlertPercentThreshold != 4 {
		t.Errorf("env should override yaml threshold, got %v", cfg.Asset.AlertPercentThreshold)
	}
	if cfg.SMS.From != "+200" {
		t.Errorf("env should override yaml sms.from, got %s", cfg.SMS.From)
	}
	if cfg.MailEnabled() || !cfg.SMSEnabled() {
		t.Errorf("expected mail off and sms on")
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %s", cfg.HTTPTimeout)
	}
}

func TestLoad_BadEnvValue(t *testing.T) {
	clearEnv(t)
	t.Setenv("SMTP_PORT", "abc")
	if _, err := Load(filepath.Join(t.TempDir(), "none.yaml")); !errors.Is(err, errs.ErrConfig) {
		t.Errorf("expected ErrConfig, got %v", err)
	}
}

func TestLoad_UnreadableOrInvalidFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("asset: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	for name, path := range map[string]string{"directory": dir, "invalid yaml": bad} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(path)
			if !errors.Is(err, errs.ErrConfig) {
				t.Errorf("expected ErrConfig, got %v", err)
			}
			if got := errs.Class(err); got != "ConfigError" {
				t.Errorf("expected class ConfigError, got %q", got)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{"complete mail setup", nil, false},
		{"missing av key", map[string]string{"AV_KEY": ""}, true},
		{"missing news key", map[string]string{"NEWS_API_KEY": ""}, true},
		{"missing mail password", map[string]string{"MAIL_PASSWORD": ""}, true},
		{"no channel", map[string]string{"NOTIFY_EMAIL": "false"}, true},
		{"sms without credentials", map[string]string{"NOTIFY_SMS": "true"}, true},
		{"sms only", map[string]string{
			"NOTIFY_EMAIL": "false", "NOTIFY_SMS": "true",
			"TWILIO_SID": "AC1", "TWILIO_AUTH_TOKEN": "tok", "SMS_FROM": "+1", "SMS_TO": "+2",
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			validEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			err = cfg.Validate()
			if tt.wantErr && !errors.Is(err, errs.ErrConfig) {
				t.Errorf("expected ErrConfig, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
