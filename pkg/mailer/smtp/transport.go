package smtp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/textproto"
	"strings"

	"github.com/google/uuid"
	mail "gopkg.in/mail.v2"

	"github.com/dmitrymomot/dispatch/pkg/mailer"
)

// Transport implements mailer.Transport over a plain SMTP account.
//
// Each Send dials a fresh connection, so concurrent sends are safe but do
// not share an SMTP session. The underlying client has no context support:
// when ctx expires mid-send the call returns immediately, but the SMTP
// exchange may still complete in the background.
type Transport struct {
	dialer *mail.Dialer
	config Config
}

// New creates an SMTP transport. It fails with mailer.ErrInvalidConfig when
// required fields are missing; no network attempt is made until Send or Verify.
func New(cfg Config) (*Transport, error) {
	if cfg.Host == "" {
		return nil, errors.Join(mailer.ErrInvalidConfig, errors.New("smtp: host is required"))
	}
	if cfg.Port <= 0 {
		cfg.Port = 587
	}

	dialer := mail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	dialer.SSL = cfg.SSL

	return &Transport{dialer: dialer, config: cfg}, nil
}

// Name implements mailer.Transport.
func (t *Transport) Name() string { return "smtp" }

// Send implements mailer.Transport. SMTP assigns no server-side message ID,
// so the transport generates the Message-Id header itself and returns it.
func (t *Transport) Send(ctx context.Context, msg *mailer.EmailMessage) (string, error) {
	m, messageID := t.buildMessage(msg)

	errc := make(chan error, 1)
	go func() {
		errc <- t.dialer.DialAndSend(m)
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case err := <-errc:
		if err != nil {
			return "", classify(err)
		}
		return messageID, nil
	}
}

// Verify implements mailer.Transport by dialing and authenticating once.
func (t *Transport) Verify(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		conn, err := t.dialer.Dial()
		if err != nil {
			errc <- err
			return
		}
		errc <- conn.Close()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-errc:
		if err != nil {
			return classify(err)
		}
		return nil
	}
}

func (t *Transport) buildMessage(msg *mailer.EmailMessage) (*mail.Message, string) {
	m := mail.NewMessage()
	m.SetAddressHeader("From", msg.Sender.Email, msg.Sender.Name)
	m.SetHeader("To", msg.Recipients...)
	if len(msg.CC) > 0 {
		m.SetHeader("Cc", msg.CC...)
	}
	if len(msg.BCC) > 0 {
		m.SetHeader("Bcc", msg.BCC...)
	}
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetHeader("Subject", msg.Subject)

	messageID := fmt.Sprintf("<%s@%s>", uuid.NewString(), senderDomain(msg.Sender.Email))
	m.SetHeader("Message-Id", messageID)

	if msg.Category != "" {
		m.SetHeader("X-Category", msg.Category)
	}
	for name, value := range msg.Headers {
		m.SetHeader(name, value)
	}

	switch {
	case msg.TextBody != "" && msg.HTMLBody != "":
		m.SetBody("text/plain", msg.TextBody)
		m.AddAlternative("text/html", msg.HTMLBody)
	case msg.HTMLBody != "":
		m.SetBody("text/html", msg.HTMLBody)
	default:
		m.SetBody("text/plain", msg.TextBody)
	}

	for _, a := range msg.Attachments {
		settings := []mail.FileSetting{
			mail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(a.Content)
				return err
			}),
		}
		if a.ContentType != "" {
			settings = append(settings, mail.SetHeader(map[string][]string{
				"Content-Type": {a.ContentType},
			}))
		}
		if a.ContentID != "" {
			m.Embed(a.Filename, settings...)
			continue
		}
		m.Attach(a.Filename, settings...)
	}

	return m, messageID
}

func senderDomain(addr string) string {
	if _, domain, ok := strings.Cut(addr, "@"); ok && domain != "" {
		return domain
	}
	return "localhost"
}

// classify wraps SMTP reply codes with the mailer sentinel errors.
// 53x replies signal credential problems, other negative replies mean the
// server refused the message; anything without a reply code is a
// transport-level connection failure.
func classify(err error) error {
	var replyErr *textproto.Error
	if errors.As(err, &replyErr) {
		switch {
		case replyErr.Code == 530 || replyErr.Code == 534 || replyErr.Code == 535:
			return errors.Join(mailer.ErrAuthFailed, err)
		case replyErr.Code >= 400:
			return errors.Join(mailer.ErrProviderRejected, err)
		}
		return fmt.Errorf("smtp: unexpected reply: %w", err)
	}

	if mailer.Classify(err) != mailer.KindUnknown {
		return err
	}
	return errors.Join(mailer.ErrConnectionFailed, err)
}
