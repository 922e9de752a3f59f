package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"SwingSentinel/internal/errs"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Asset struct {
		Symbol                string  `yaml:"symbol"`
		Name                  string  `yaml:"name"`
		Market                string  `yaml:"market"`
		AlertPercentThreshold float64 `yaml:"alert_percent_threshold"`
	} `yaml:"asset"`
	MarketData struct {
		BaseURL           string `yaml:"base_url"`
		APIKey            string `yaml:"api_key"`
		Interval          string `yaml:"interval"`
		IndicatorInterval string `yaml:"indicator_interval"`
		RSIPeriod         int    `yaml:"rsi_period"`
		SMAPeriod         int    `yaml:"sma_period"`
		SeriesType        string `yaml:"series_type"`
	} `yaml:"market_data"`
	News struct {
		BaseURL        string `yaml:"base_url"`
		APIKey         string `yaml:"api_key"`
		Language       string `yaml:"language"`
		SortBy         string `yaml:"sort_by"`
		EmailHeadlines int    `yaml:"email_headlines"`
		SMSHeadlines   int    `yaml:"sms_headlines"`
	} `yaml:"news"`
	Mail struct {
		Enabled  *bool  `yaml:"enabled"`
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		From     string `yaml:"from"`
		Password string `yaml:"password"`
		To       string `yaml:"to"`
	} `yaml:"mail"`
	SMS struct {
		Enabled    *bool  `yaml:"enabled"`
		BaseURL    string `yaml:"base_url"`
		AccountSID string `yaml:"account_sid"`
		AuthToken  string `yaml:"auth_token"`
		From       string `yaml:"from"`
		To         string `yaml:"to"`
	} `yaml:"sms"`
	Log struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"log"`
	Proxy       string        `yaml:"proxy"`
	HTTPTimeout time.Duration `yaml:"http_timeout"`
}

// Load reads config from an optional YAML file, then a .env file, then
// applies environment variable overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrapf(errs.ErrConfig, "read config %s: %v", path, err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(errs.ErrConfig, "parse config %s: %v", path, err)
		}
	}

	// .env never overrides variables already set in the process.
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setString(&c.Asset.Symbol, "ASSET_SYMBOL")
	setString(&c.Asset.Name, "ASSET_NAME")
	setString(&c.MarketData.APIKey, "AV_KEY")
	setString(&c.MarketData.BaseURL, "AV_BASE_URL")
	setString(&c.News.APIKey, "NEWS_API_KEY")
	setString(&c.News.BaseURL, "NEWS_BASE_URL")
	setString(&c.Mail.Host, "SMTP_HOST")
	setString(&c.Mail.From, "MAIL_FROM")
	setString(&c.Mail.Password, "MAIL_PASSWORD")
	setString(&c.Mail.To, "MAIL_TO")
	setString(&c.SMS.AccountSID, "TWILIO_SID")
	setString(&c.SMS.AuthToken, "TWILIO_AUTH_TOKEN")
	setString(&c.SMS.From, "SMS_FROM")
	setString(&c.SMS.To, "SMS_TO")
	setString(&c.Log.Level, "LOG_LEVEL")
	setString(&c.Log.File, "LOG_FILE")
	setString(&c.Proxy, "HTTPS_PROXY")

	if v := os.Getenv("ALERT_PERCENT_THRESH"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.Wrapf(errs.ErrConfig, "ALERT_PERCENT_THRESH=%q", v)
		}
		c.Asset.AlertPercentThreshold = f
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(errs.ErrConfig, "SMTP_PORT=%q", v)
		}
		c.Mail.Port = port
	}
	if v := os.Getenv("NOTIFY_EMAIL"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(errs.ErrConfig, "NOTIFY_EMAIL=%q", v)
		}
		c.Mail.Enabled = &b
	}
	if v := os.Getenv("NOTIFY_SMS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(errs.ErrConfig, "NOTIFY_SMS=%q", v)
		}
		c.SMS.Enabled = &b
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Asset.Symbol == "" {
		c.Asset.Symbol = "BTC"
	}
	if c.Asset.Name == "" {
		c.Asset.Name = "bitcoin"
	}
	if c.Asset.Market == "" {
		c.Asset.Market = "USD"
	}
	if c.Asset.AlertPercentThreshold == 0 {
		c.Asset.AlertPercentThreshold = 2
	}

	if c.MarketData.BaseURL == "" {
		c.MarketData.BaseURL = "https://www.alphavantage.co/query"
	}
	if c.MarketData.Interval == "" {
		c.MarketData.Interval = "15min"
	}
	if c.MarketData.IndicatorInterval == "" {
		c.MarketData.IndicatorInterval = "weekly"
	}
	if c.MarketData.RSIPeriod == 0 {
		c.MarketData.RSIPeriod = 14
	}
	if c.MarketData.SMAPeriod == 0 {
		c.MarketData.SMAPeriod = 20
	}
	if c.MarketData.SeriesType == "" {
		c.MarketData.SeriesType = "close"
	}

	if c.News.BaseURL == "" {
		c.News.BaseURL = "https://newsapi.org/v2/everything"
	}
	if c.News.Language == "" {
		c.News.Language = "en"
	}
	if c.News.SortBy == "" {
		c.News.SortBy = "publishedAt"
	}
	if c.News.EmailHeadlines == 0 {
		c.News.EmailHeadlines = 5
	}
	if c.News.SMSHeadlines == 0 {
		c.News.SMSHeadlines = 3
	}

	if c.Mail.Enabled == nil {
		enabled := true
		c.Mail.Enabled = &enabled
	}
	if c.Mail.Port == 0 {
		c.Mail.Port = 587
	}
	if c.SMS.Enabled == nil {
		enabled := false
		c.SMS.Enabled = &enabled
	}
	if c.SMS.BaseURL == "" {
		c.SMS.BaseURL = "https://api.twilio.com/2010-04-01"
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.HTTPTimeout == 0 {
		c.HTTPTimeout = 30 * time.Second
	}
}

// MailEnabled reports whether the email channel is on.
func (c *Config) MailEnabled() bool { return c.Mail.Enabled != nil && *c.Mail.Enabled }

// SMSEnabled reports whether the SMS channel is on.
func (c *Config) SMSEnabled() bool { return c.SMS.Enabled != nil && *c.SMS.Enabled }

// IndicatorSymbol is the pair symbol the indicator endpoints expect, e.g. BTCUSD.
func (c *Config) IndicatorSymbol() string {
	return strings.ToUpper(c.Asset.Symbol + c.Asset.Market)
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.MarketData.APIKey == "" {
		return errors.Wrap(errs.ErrConfig, "market_data.api_key (AV_KEY) is required")
	}
	if c.News.APIKey == "" {
		return errors.Wrap(errs.ErrConfig, "news.api_key (NEWS_API_KEY) is required")
	}
	if c.Asset.AlertPercentThreshold <= 0 {
		return errors.Wrap(errs.ErrConfig, "asset.alert_percent_threshold must be positive")
	}
	if c.News.EmailHeadlines < 1 || c.News.SMSHeadlines < 1 {
		return errors.Wrap(errs.ErrConfig, "news headline counts must be at least 1")
	}
	if !c.MailEnabled() && !c.SMSEnabled() {
		return errors.Wrap(errs.ErrConfig, "at least one of mail or sms must be enabled")
	}
	if c.MailEnabled() {
		if c.Mail.Host == "" || c.Mail.From == "" || c.Mail.Password == "" || c.Mail.To == "" {
			return errors.Wrap(errs.ErrConfig, "mail requires SMTP_HOST, MAIL_FROM, MAIL_PASSWORD and MAIL_TO")
		}
	}
	if c.SMSEnabled() {
		if c.SMS.AccountSID == "" || c.SMS.AuthToken == "" || c.SMS.From == "" || c.SMS.To == "" {
			return errors.Wrap(errs.ErrConfig, "sms requires TWILIO_SID, TWILIO_AUTH_TOKEN, SMS_FROM and SMS_TO")
		}
	}
	return nil
}
