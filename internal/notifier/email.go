package notifier

import (
	"context"
	"strings"
	"time"

	"SwingSentinel/internal/errs"
	"SwingSentinel/internal/model"

	"github.com/pkg/errors"
	"github.com/wneessen/go-mail"
)

// EmailConfig addresses and authenticates SMTP submission.
type EmailConfig struct {
	Host     string
	Port     int
	From     string
	Password string
	To       string // comma separated
	Timeout  time.Duration
}

// EmailSender submits plain-text UTF-8 mail over STARTTLS with SMTP AUTH.
type EmailSender struct {
	cfg EmailConfig
}

// NewEmailSender creates an EmailSender.
func NewEmailSender(cfg EmailConfig) *EmailSender {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &EmailSender{cfg: cfg}
}

func (e *EmailSender) Channel() string { return "email" }

// Send delivers one message. The connection is opened and closed per call.
func (e *EmailSender) Send(ctx context.Context, msg model.AlertMessage) error {
	m := mail.NewMsg(mail.WithCharset(mail.CharsetUTF8))
	if err := m.From(e.cfg.From); err != nil {
		return errors.Wrapf(errs.ErrDelivery, "email: from address: %v", err)
	}
	if err := m.To(splitAddresses(e.cfg.To)...); err != nil {
		return errors.Wrapf(errs.ErrDelivery, "email: to address: %v", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)

	client, err := mail.NewClient(e.cfg.Host,
		mail.WithPort(e.cfg.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(e.cfg.From),
		mail.WithPassword(e.cfg.Password),
		mail.WithTimeout(e.cfg.Timeout),
	)
	if err != nil {
		return errors.Wrapf(errs.ErrDelivery, "email: client: %v", err)
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return errors.Wrapf(errs.ErrDelivery, "email: send via %s: %v", e.cfg.Host, err)
	}
	return nil
}

func splitAddresses(s string) []string {
	var out []string
	for _, a := range strings.Split(s, ",") {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}
