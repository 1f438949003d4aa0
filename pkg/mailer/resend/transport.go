package resend

import (
	"context"
	"errors"
	"fmt"

	"github.com/resend/resend-go/v3"

	"github.com/dmitrymomot/dispatch/pkg/mailer"
)

// Transport implements mailer.Transport using the Resend API.
// Safe for concurrent use: the underlying client issues independent
// HTTP requests per send.
type Transport struct {
	client *resend.Client
}

// New creates a Resend transport. It fails with mailer.ErrInvalidConfig when
// the API key is missing; no network attempt is made until Send or Verify.
func New(cfg Config) (*Transport, error) {
	if cfg.APIKey == "" {
		return nil, errors.Join(mailer.ErrInvalidConfig, errors.New("resend: API key is required"))
	}
	return &Transport{client: resend.NewClient(cfg.APIKey)}, nil
}

// Name implements mailer.Transport.
func (t *Transport) Name() string { return "resend" }

// Send implements mailer.Transport.
func (t *Transport) Send(ctx context.Context, msg *mailer.EmailMessage) (string, error) {
	req := &resend.SendEmailRequest{
		From:    msg.Sender.String(),
		To:      msg.Recipients,
		Subject: msg.Subject,
		Html:    msg.HTMLBody,
		Text:    msg.TextBody,
		ReplyTo: msg.ReplyTo,
		Cc:      msg.CC,
		Bcc:     msg.BCC,
		Headers: msg.Headers,
	}

	if msg.Category != "" {
		req.Tags = []resend.Tag{{Name: "category", Value: msg.Category}}
	}
	if len(msg.Attachments) > 0 {
		req.Attachments = convertAttachments(msg.Attachments)
	}

	sent, err := t.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", fmt.Errorf("resend: failed to send email: %w", err)
	}

	return sent.Id, nil
}

// Verify implements mailer.Transport. The Resend API has no dedicated ping
// endpoint; the key presence is checked at construction and the API validates
// it on first send.
func (t *Transport) Verify(context.Context) error { return nil }

func convertAttachments(attachments []mailer.Attachment) []*resend.Attachment {
	result := make([]*resend.Attachment, len(attachments))
	for i, a := range attachments {
		result[i] = &resend.Attachment{
			Filename:    a.Filename,
			Content:     a.Content,
			ContentType: a.ContentType,
			ContentId:   a.ContentID,
		}
	}
	return result
}
