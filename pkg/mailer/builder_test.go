package mailer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validDraft() Draft {
	return Draft{
		From:    Address{Email: "team@example.com", Name: "Team"},
		To:      []string{"user@example.com"},
		Subject: "Welcome",
		Text:    "Hello and welcome!",
		HTML:    "<p>Hello and welcome!</p>",
	}
}

func TestBuildMessage_Valid(t *testing.T) {
	t.Parallel()

	draft := validDraft()
	draft.CC = []string{"copy@example.com"}
	draft.BCC = []string{"blind@example.com"}
	draft.ReplyTo = "replies@example.com"
	draft.Category = "welcome"
	draft.Headers = map[string]string{"X-Campaign": "onboarding"}

	msg, err := BuildMessage(draft)

	require.NoError(t, err)
	require.Equal(t, draft.From, msg.Sender)
	require.Equal(t, draft.To, msg.Recipients)
	require.Equal(t, draft.CC, msg.CC)
	require.Equal(t, draft.BCC, msg.BCC)
	require.Equal(t, draft.ReplyTo, msg.ReplyTo)
	require.Equal(t, draft.Subject, msg.Subject)
	require.Equal(t, draft.Text, msg.TextBody)
	require.Equal(t, draft.HTML, msg.HTMLBody)
	require.Equal(t, draft.Category, msg.Category)
	require.Equal(t, draft.Headers, msg.Headers)
}

func TestBuildMessage_TextOnly(t *testing.T) {
	t.Parallel()

	draft := validDraft()
	draft.HTML = ""

	msg, err := BuildMessage(draft)

	require.NoError(t, err)
	require.Empty(t, msg.HTMLBody)
	require.Equal(t, draft.Text, msg.TextBody)
}

func TestBuildMessage_NoRecipients(t *testing.T) {
	t.Parallel()

	draft := validDraft()
	draft.To = nil

	_, err := BuildMessage(draft)

	require.ErrorIs(t, err, ErrInvalidMessage)
	require.ErrorIs(t, err, ErrNoRecipient)
}

func TestBuildMessage_NoBody(t *testing.T) {
	t.Parallel()

	draft := validDraft()
	draft.Text = ""
	draft.HTML = ""

	_, err := BuildMessage(draft)

	require.ErrorIs(t, err, ErrInvalidMessage)
	require.ErrorIs(t, err, ErrNoContent)
}

func TestBuildMessage_EmptySubject(t *testing.T) {
	t.Parallel()

	draft := validDraft()
	draft.Subject = "   "

	_, err := BuildMessage(draft)

	require.ErrorIs(t, err, ErrInvalidMessage)
	require.ErrorIs(t, err, ErrNoSubject)
}

func TestBuildMessage_MalformedRecipient(t *testing.T) {
	t.Parallel()

	for _, addr := range []string{"not-an-email", "@example.com", "user@", "user @example.com"} {
		draft := validDraft()
		draft.To = []string{addr}

		_, err := BuildMessage(draft)

		require.ErrorIs(t, err, ErrInvalidMessage, "address %q", addr)
		require.ErrorIs(t, err, ErrInvalidAddress, "address %q", addr)
	}
}

func TestBuildMessage_MalformedSender(t *testing.T) {
	t.Parallel()

	draft := validDraft()
	draft.From = Address{Email: "no-at-sign"}

	_, err := BuildMessage(draft)

	require.ErrorIs(t, err, ErrInvalidMessage)
	require.ErrorIs(t, err, ErrInvalidAddress)
}

func TestBuildMessage_MalformedCC(t *testing.T) {
	t.Parallel()

	draft := validDraft()
	draft.CC = []string{"bogus"}

	_, err := BuildMessage(draft)

	require.ErrorIs(t, err, ErrInvalidAddress)
}

func TestBuildMessage_CopiesDraftData(t *testing.T) {
	t.Parallel()

	draft := validDraft()
	draft.Headers = map[string]string{"X-Campaign": "onboarding"}

	msg, err := BuildMessage(draft)
	require.NoError(t, err)

	draft.To[0] = "changed@example.com"
	draft.Headers["X-Campaign"] = "changed"

	require.Equal(t, "user@example.com", msg.Recipients[0])
	require.Equal(t, "onboarding", msg.Headers["X-Campaign"])
}

func TestBuildMessage_SanitizedHTML(t *testing.T) {
	t.Parallel()

	draft := validDraft()
	draft.HTML = `<p>Hello</p><script>alert("x")</script>`

	msg, err := BuildMessage(draft, WithSanitizedHTML())

	require.NoError(t, err)
	require.Contains(t, msg.HTMLBody, "<p>Hello</p>")
	require.NotContains(t, msg.HTMLBody, "<script>")
}

func TestAddress_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "John Doe <john@example.com>",
		Address{Email: "john@example.com", Name: "John Doe"}.String())
	require.Equal(t, "john@example.com",
		Address{Email: "john@example.com"}.String())
}
