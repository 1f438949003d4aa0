package mailer

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogTransport_Send(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	transport := NewLogTransport(log)
	msg, err := BuildMessage(validDraft())
	require.NoError(t, err)

	id, err := transport.Send(context.Background(), msg)

	require.NoError(t, err)
	require.NotEmpty(t, id)
	require.Contains(t, buf.String(), "user@example.com")
	require.Contains(t, buf.String(), "Welcome")
}

func TestLogTransport_Verify(t *testing.T) {
	t.Parallel()

	transport := NewLogTransport(nil)

	require.NoError(t, transport.Verify(context.Background()))
	require.Equal(t, "log", transport.Name())
}
