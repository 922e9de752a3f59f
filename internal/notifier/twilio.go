package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"SwingSentinel/internal/errs"
	"SwingSentinel/internal/model"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// TwilioConfig addresses and authenticates the messaging REST API.
type TwilioConfig struct {
	BaseURL    string
	AccountSID string
	AuthToken  string
	From       string
	To         string
	Proxy      string
	Timeout    time.Duration
}

// TwilioSender sends SMS through the Twilio Messages resource.
type TwilioSender struct {
	client *resty.Client
	cfg    TwilioConfig
}

// NewTwilioSender creates a sender with optional proxy support.
func NewTwilioSender(cfg TwilioConfig) *TwilioSender {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	client := resty.New().SetTimeout(cfg.Timeout)
	if cfg.Proxy != "" {
		client.SetProxy(cfg.Proxy)
	}
	return &TwilioSender{client: client, cfg: cfg}
}

func (t *TwilioSender) Channel() string { return "sms" }

type twilioError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Send posts the message body. Only the body is used; SMS has no subject.
func (t *TwilioSender) Send(ctx context.Context, msg model.AlertMessage) error {
	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json",
		strings.TrimRight(t.cfg.BaseURL, "/"), url.PathEscape(t.cfg.AccountSID))

	resp, err := t.client.R().
		SetContext(ctx).
		SetBasicAuth(t.cfg.AccountSID, t.cfg.AuthToken).
		SetFormData(map[string]string{
			"From": t.cfg.From,
			"To":   t.cfg.To,
			"Body": msg.Body,
		}).
		Post(endpoint)
	if err != nil {
		return errors.Wrapf(errs.ErrDelivery, "sms: %v", err)
	}
	if !resp.IsSuccess() {
		var te twilioError
		if json.Unmarshal(resp.Body(), &te) == nil && te.Message != "" {
			return errors.Wrapf(errs.ErrDelivery, "sms: status %d: %s (code %d)", resp.StatusCode(), te.Message, te.Code)
		}
		return errors.Wrapf(errs.ErrDelivery, "sms: status %d", resp.StatusCode())
	}
	return nil
}
