package mailer

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// LogTransport writes messages to a logger instead of sending them.
// Useful for development and tests; it never fails and fabricates a
// provider message ID so DispatchResult shapes match real transports.
type LogTransport struct {
	log *slog.Logger
}

// NewLogTransport creates a log-backed transport.
func NewLogTransport(log *slog.Logger) *LogTransport {
	if log == nil {
		log = slog.Default()
	}
	return &LogTransport{log: log}
}

// Name implements Transport.
func (t *LogTransport) Name() string { return "log" }

// Send implements Transport.
func (t *LogTransport) Send(ctx context.Context, msg *EmailMessage) (string, error) {
	id := "log-" + uuid.NewString()
	t.log.InfoContext(ctx, "email logged (dev mode, not sent)",
		slog.String("from", msg.Sender.String()),
		slog.String("to", strings.Join(msg.Recipients, ", ")),
		slog.String("subject", msg.Subject),
		slog.String("text", msg.TextBody),
		slog.String("provider_message_id", id),
	)
	return id, nil
}

// Verify implements Transport.
func (t *LogTransport) Verify(context.Context) error { return nil }
