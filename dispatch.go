package dispatch

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrymomot/dispatch/pkg/mailer"
	"github.com/dmitrymomot/dispatch/pkg/mailer/mailtrap"
	"github.com/dmitrymomot/dispatch/pkg/mailer/resend"
	"github.com/dmitrymomot/dispatch/pkg/mailer/smtp"
)

// ProviderKind selects which transport a dispatcher is built around.
type ProviderKind string

const (
	// ProviderSMTP sends through a plain SMTP account.
	ProviderSMTP ProviderKind = "smtp"

	// ProviderSandbox sends through the Mailtrap API; with an inbox ID it
	// targets the sandbox testing inbox instead of real delivery.
	ProviderSandbox ProviderKind = "sandbox"

	// ProviderResend sends through the Resend API.
	ProviderResend ProviderKind = "resend"

	// ProviderLog writes messages to the logger instead of sending.
	// For development only.
	ProviderLog ProviderKind = "log"
)

// Config holds dispatcher configuration. Only the section matching Provider
// is consulted; construction fails before any network attempt when that
// section is missing required fields.
type Config struct {
	Provider ProviderKind `env:"MAIL_PROVIDER" envDefault:"log"`

	SMTP    smtp.Config
	Sandbox mailtrap.Config
	Resend  resend.Config

	// SendTimeout bounds each provider call. Zero keeps the default.
	SendTimeout time.Duration `env:"MAIL_SEND_TIMEOUT"`

	// BatchConcurrency limits in-flight sends during SendBatch.
	// Zero keeps the default.
	BatchConcurrency int `env:"MAIL_BATCH_CONCURRENCY"`
}

// New builds a Dispatcher for the configured provider. Credentials are passed
// in explicitly by the caller; nothing is read from the environment here.
func New(cfg Config, opts ...mailer.Option) (*mailer.Dispatcher, error) {
	var (
		transport mailer.Transport
		err       error
	)
	switch cfg.Provider {
	case ProviderSMTP:
		transport, err = smtp.New(cfg.SMTP)
	case ProviderSandbox:
		transport, err = mailtrap.New(cfg.Sandbox)
	case ProviderResend:
		transport, err = resend.New(cfg.Resend)
	case ProviderLog:
		transport = mailer.NewLogTransport(nil)
	default:
		return nil, errors.Join(mailer.ErrInvalidConfig,
			fmt.Errorf("unknown provider kind %q", cfg.Provider))
	}
	if err != nil {
		return nil, err
	}

	base := make([]mailer.Option, 0, 2+len(opts))
	if cfg.SendTimeout > 0 {
		base = append(base, mailer.WithSendTimeout(cfg.SendTimeout))
	}
	if cfg.BatchConcurrency > 0 {
		base = append(base, mailer.WithBatchConcurrency(cfg.BatchConcurrency))
	}
	base = append(base, opts...)

	return mailer.New(transport, base...)
}
