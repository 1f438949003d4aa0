package mailer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	defaultSendTimeout      = 30 * time.Second
	defaultBatchConcurrency = 4
)

// Dispatcher owns one configured Transport and sends messages through it.
// It performs no retry and no deduplication: two Send calls with an identical
// message produce two provider sends. A Dispatcher is safe for concurrent use.
type Dispatcher struct {
	transport        Transport
	log              *slog.Logger
	sendTimeout      time.Duration
	batchConcurrency int
}

// Option configures the Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger for dispatch outcomes.
// Defaults to a no-op logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.log = l
		}
	}
}

// WithSendTimeout bounds each provider call.
// Defaults to 30 seconds.
func WithSendTimeout(timeout time.Duration) Option {
	return func(d *Dispatcher) {
		if timeout > 0 {
			d.sendTimeout = timeout
		}
	}
}

// WithBatchConcurrency limits how many sends SendBatch runs in flight at once.
// Defaults to 4.
func WithBatchConcurrency(n int) Option {
	return func(d *Dispatcher) {
		if n > 0 {
			d.batchConcurrency = n
		}
	}
}

// New creates a Dispatcher around the given transport.
func New(transport Transport, opts ...Option) (*Dispatcher, error) {
	if transport == nil {
		return nil, errors.Join(ErrInvalidConfig, errors.New("transport is required"))
	}

	d := &Dispatcher{
		transport:        transport,
		log:              slog.New(slog.NewTextHandler(io.Discard, nil)),
		sendTimeout:      defaultSendTimeout,
		batchConcurrency: defaultBatchConcurrency,
	}
	for _, opt := range opts {
		opt(d)
	}

	return d, nil
}

// Send performs one network call delivering the message and reports the
// outcome as a DispatchResult. Transport failures never escape as errors:
// they are classified into the ErrorKind taxonomy with the underlying
// diagnostic preserved in DispatchResult.Err. The call is bounded by the
// configured send timeout; cancelling ctx aborts an in-flight send.
func (d *Dispatcher) Send(ctx context.Context, msg *EmailMessage) DispatchResult {
	result := DispatchResult{
		Provider:   d.transport.Name(),
		DispatchID: uuid.NewString(),
	}

	if msg == nil {
		result.Status = StatusFailed
		result.ErrorKind = KindInvalidMessage
		result.Err = errors.Join(ErrInvalidMessage, errors.New("message is nil"))
		return result
	}

	ctx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()

	providerID, err := d.transport.Send(ctx, msg)
	if err != nil {
		kind := Classify(err)
		if kind == KindUnknown && ctx.Err() != nil {
			// Transport wrapped the failure opaquely; the expired context
			// tells us whether this was a timeout or a caller cancellation.
			kind = Classify(ctx.Err())
		}
		result.Status = StatusFailed
		result.ErrorKind = kind
		result.Err = err

		d.log.ErrorContext(ctx, "email dispatch failed",
			slog.String("dispatch_id", result.DispatchID),
			slog.String("provider", result.Provider),
			slog.String("error_kind", string(kind)),
			slog.String("error", err.Error()),
		)
		return result
	}

	result.Status = StatusSent
	result.ProviderMessageID = providerID

	d.log.InfoContext(ctx, "email dispatched",
		slog.String("dispatch_id", result.DispatchID),
		slog.String("provider", result.Provider),
		slog.String("provider_message_id", providerID),
	)
	return result
}

// SendBatch sends messages concurrently over the shared transport, bounded by
// the configured batch concurrency. Individual failures do not stop the batch.
// The returned slice matches the input order.
func (d *Dispatcher) SendBatch(ctx context.Context, msgs []*EmailMessage) []DispatchResult {
	results := make([]DispatchResult, len(msgs))

	var g errgroup.Group
	g.SetLimit(d.batchConcurrency)
	for i, msg := range msgs {
		g.Go(func() error {
			results[i] = d.Send(ctx, msg)
			return nil
		})
	}
	_ = g.Wait() // individual outcomes are in results; Send never returns an error

	return results
}

// VerifyConnection proactively checks transport reachability and credentials.
// Use at process startup; sends do not verify.
func (d *Dispatcher) VerifyConnection(ctx context.Context) error {
	if err := d.transport.Verify(ctx); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}
