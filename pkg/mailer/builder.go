package mailer

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/dmitrymomot/dispatch/pkg/sanitizer"
)

// BuildOption customizes message building.
type BuildOption func(*buildOptions)

type buildOptions struct {
	sanitizeHTML bool
}

// WithSanitizedHTML runs the HTML body through an email-safe sanitization
// policy, stripping scripts, event handlers, and javascript: URLs. Use when
// the HTML body contains user-generated content.
func WithSanitizedHTML() BuildOption {
	return func(o *buildOptions) {
		o.sanitizeHTML = true
	}
}

// BuildMessage validates and normalizes a draft into an EmailMessage.
// It is a pure transformation with no side effects: on failure it returns an
// error wrapping ErrInvalidMessage and performs no network activity.
func BuildMessage(draft Draft, opts ...BuildOption) (*EmailMessage, error) {
	var options buildOptions
	for _, opt := range opts {
		opt(&options)
	}

	if err := validateDraft(draft); err != nil {
		return nil, errors.Join(ErrInvalidMessage, err)
	}

	htmlBody := draft.HTML
	if options.sanitizeHTML && htmlBody != "" {
		htmlBody = sanitizer.EmailHTML(htmlBody)
	}

	// Copy all reference types so the message cannot be mutated through the draft.
	msg := &EmailMessage{
		Sender:      draft.From,
		ReplyTo:     draft.ReplyTo,
		Subject:     draft.Subject,
		TextBody:    draft.Text,
		HTMLBody:    htmlBody,
		Category:    draft.Category,
		Recipients:  slices.Clone(draft.To),
		CC:          slices.Clone(draft.CC),
		BCC:         slices.Clone(draft.BCC),
		Attachments: slices.Clone(draft.Attachments),
	}
	if len(draft.Headers) > 0 {
		msg.Headers = maps.Clone(draft.Headers)
	}

	return msg, nil
}

func validateDraft(draft Draft) error {
	if err := validateAddress(draft.From.Email); err != nil {
		return fmt.Errorf("sender: %w", err)
	}
	if len(draft.To) == 0 {
		return ErrNoRecipient
	}
	for _, addr := range draft.To {
		if err := validateAddress(addr); err != nil {
			return fmt.Errorf("recipient: %w", err)
		}
	}
	for _, addr := range draft.CC {
		if err := validateAddress(addr); err != nil {
			return fmt.Errorf("cc: %w", err)
		}
	}
	for _, addr := range draft.BCC {
		if err := validateAddress(addr); err != nil {
			return fmt.Errorf("bcc: %w", err)
		}
	}
	if draft.ReplyTo != "" {
		if err := validateAddress(draft.ReplyTo); err != nil {
			return fmt.Errorf("reply-to: %w", err)
		}
	}
	if strings.TrimSpace(draft.Subject) == "" {
		return ErrNoSubject
	}
	if draft.Text == "" && draft.HTML == "" {
		return ErrNoContent
	}
	for name := range draft.Headers {
		if strings.TrimSpace(name) == "" {
			return errors.New("header name must not be empty")
		}
	}
	return nil
}

// validateAddress performs a basic syntax check: a non-empty local part and
// a non-empty domain separated by a single "@", with no whitespace.
func validateAddress(addr string) error {
	local, domain, ok := strings.Cut(addr, "@")
	if !ok || local == "" || domain == "" ||
		strings.Contains(domain, "@") || strings.ContainsAny(addr, " \t\r\n") {
		return fmt.Errorf("%w: %q", ErrInvalidAddress, addr)
	}
	return nil
}
