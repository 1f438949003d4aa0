package mailer

import (
	"context"
	"errors"
	"net"
)

var (
	// ErrInvalidMessage indicates a draft failed validation before any network call.
	ErrInvalidMessage = errors.New("message failed validation")

	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have at least one recipient")

	// ErrNoSubject indicates no subject was provided.
	ErrNoSubject = errors.New("email must have a subject")

	// ErrNoContent indicates neither a text nor an HTML body was provided.
	ErrNoContent = errors.New("email must have a text or HTML body")

	// ErrInvalidAddress indicates a malformed email address.
	ErrInvalidAddress = errors.New("malformed email address")

	// ErrInvalidConfig indicates a misconfigured dispatcher or transport.
	ErrInvalidConfig = errors.New("invalid mailer configuration")

	// ErrAuthFailed indicates the provider rejected the configured credentials.
	ErrAuthFailed = errors.New("provider rejected credentials")

	// ErrConnectionFailed indicates a transport-level failure reaching the provider.
	ErrConnectionFailed = errors.New("failed to connect to provider")

	// ErrProviderRejected indicates the provider accepted the connection but
	// refused the message (bad address, content policy, quota).
	ErrProviderRejected = errors.New("provider rejected the message")
)

// ErrorKind is the normalized failure category carried by a DispatchResult.
type ErrorKind string

const (
	KindInvalidMessage ErrorKind = "invalid_message"
	KindConfiguration  ErrorKind = "configuration_error"
	KindAuthentication ErrorKind = "authentication_failed"
	KindConnection     ErrorKind = "connection_failed"
	KindTimeout        ErrorKind = "timeout"
	KindCancelled      ErrorKind = "cancelled"
	KindRejected       ErrorKind = "provider_rejected"
	KindUnknown        ErrorKind = "unknown"
)

// Classify maps an error onto the ErrorKind taxonomy. Sentinel errors wrapped
// by transports take precedence; context and network errors are recognized as
// fallbacks; anything else is KindUnknown with the original error preserved
// by the caller for diagnostics.
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidMessage):
		return KindInvalidMessage
	case errors.Is(err, ErrInvalidConfig):
		return KindConfiguration
	case errors.Is(err, ErrAuthFailed):
		return KindAuthentication
	case errors.Is(err, ErrProviderRejected):
		return KindRejected
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	case errors.Is(err, context.Canceled):
		return KindCancelled
	case errors.Is(err, ErrConnectionFailed):
		return KindConnection
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return KindTimeout
		}
		return KindConnection
	}

	return KindUnknown
}
