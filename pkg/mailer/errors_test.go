package mailer

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeNetError struct {
	timeout bool
}

func (e *fakeNetError) Error() string   { return "fake net error" }
func (e *fakeNetError) Timeout() bool   { return e.timeout }
func (e *fakeNetError) Temporary() bool { return false }

var _ net.Error = (*fakeNetError)(nil)

func TestClassify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil", nil, ErrorKind("")},
		{"invalid message", fmt.Errorf("builder: %w", ErrInvalidMessage), KindInvalidMessage},
		{"configuration", errors.Join(ErrInvalidConfig, errors.New("host missing")), KindConfiguration},
		{"authentication", errors.Join(ErrAuthFailed, errors.New("535")), KindAuthentication},
		{"rejected", errors.Join(ErrProviderRejected, errors.New("550")), KindRejected},
		{"deadline", fmt.Errorf("send: %w", context.DeadlineExceeded), KindTimeout},
		{"cancelled", fmt.Errorf("send: %w", context.Canceled), KindCancelled},
		{"connection sentinel", errors.Join(ErrConnectionFailed, errors.New("refused")), KindConnection},
		{"net error", fmt.Errorf("dial: %w", &fakeNetError{}), KindConnection},
		{"net timeout", fmt.Errorf("dial: %w", &fakeNetError{timeout: true}), KindTimeout},
		{"unclassified", errors.New("weird provider hiccup"), KindUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Classify(tc.err))
		})
	}
}

func TestClassify_SentinelBeatsNetError(t *testing.T) {
	t.Parallel()

	// A transport may wrap a network error with a more specific sentinel;
	// the sentinel wins.
	err := errors.Join(ErrAuthFailed, &fakeNetError{timeout: true})

	require.Equal(t, KindAuthentication, Classify(err))
}
