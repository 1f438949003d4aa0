package smtp

import (
	"errors"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dispatch/pkg/mailer"
)

func TestNew_MissingHost(t *testing.T) {
	t.Parallel()

	_, err := New(Config{Username: "user", Password: "pass"})

	require.ErrorIs(t, err, mailer.ErrInvalidConfig)
}

func TestNew_DefaultPort(t *testing.T) {
	t.Parallel()

	transport, err := New(Config{Host: "smtp.example.com"})

	require.NoError(t, err)
	require.Equal(t, 587, transport.config.Port)
	require.Equal(t, "smtp", transport.Name())
}

func TestBuildMessage_Headers(t *testing.T) {
	t.Parallel()

	transport, err := New(Config{Host: "smtp.example.com"})
	require.NoError(t, err)

	msg, err := mailer.BuildMessage(mailer.Draft{
		From:     mailer.Address{Email: "team@example.com", Name: "Team"},
		To:       []string{"user@example.com", "second@example.com"},
		CC:       []string{"copy@example.com"},
		ReplyTo:  "replies@example.com",
		Subject:  "Welcome",
		Text:     "Hello!",
		HTML:     "<p>Hello!</p>",
		Category: "welcome",
		Headers:  map[string]string{"X-Campaign": "onboarding"},
	})
	require.NoError(t, err)

	m, messageID := transport.buildMessage(msg)

	require.Equal(t, []string{"Team <team@example.com>"}, m.GetHeader("From"))
	require.Equal(t, []string{"user@example.com", "second@example.com"}, m.GetHeader("To"))
	require.Equal(t, []string{"copy@example.com"}, m.GetHeader("Cc"))
	require.Equal(t, []string{"replies@example.com"}, m.GetHeader("Reply-To"))
	require.Equal(t, []string{"Welcome"}, m.GetHeader("Subject"))
	require.Equal(t, []string{"welcome"}, m.GetHeader("X-Category"))
	require.Equal(t, []string{"onboarding"}, m.GetHeader("X-Campaign"))
	require.Equal(t, []string{messageID}, m.GetHeader("Message-Id"))
	require.Contains(t, messageID, "@example.com>")
}

func TestClassify_ReplyCodes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want error
	}{
		{"auth 535", &textproto.Error{Code: 535, Msg: "authentication failed"}, mailer.ErrAuthFailed},
		{"auth 530", &textproto.Error{Code: 530, Msg: "auth required"}, mailer.ErrAuthFailed},
		{"rejected 550", &textproto.Error{Code: 550, Msg: "mailbox unavailable"}, mailer.ErrProviderRejected},
		{"rejected 452", &textproto.Error{Code: 452, Msg: "quota exceeded"}, mailer.ErrProviderRejected},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.ErrorIs(t, classify(tc.err), tc.want)
		})
	}
}

func TestClassify_DialFailure(t *testing.T) {
	t.Parallel()

	err := classify(errors.New("dial tcp 127.0.0.1:587: connect: connection refused"))

	require.ErrorIs(t, err, mailer.ErrConnectionFailed)
}
