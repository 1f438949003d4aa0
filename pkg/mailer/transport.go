package mailer

import "context"

// Transport delivers a prepared message through one provider. It is the
// external collaborator boundary: implementations adapt a provider SDK or
// SMTP client and are not expected to validate message content.
//
// Implementations must be safe for concurrent use by multiple in-flight
// Send calls, since the Dispatcher shares one Transport across sends.
type Transport interface {
	// Name returns the provider identifier (e.g. "smtp", "resend").
	Name() string

	// Send performs one network call delivering the message and returns the
	// provider-assigned message ID. Failures the transport can recognize are
	// wrapped with the package sentinel errors (ErrAuthFailed,
	// ErrConnectionFailed, ErrProviderRejected) for classification.
	Send(ctx context.Context, msg *EmailMessage) (string, error)

	// Verify proactively checks transport reachability and credentials.
	// Intended for process startup, not per send.
	Verify(ctx context.Context) error
}
