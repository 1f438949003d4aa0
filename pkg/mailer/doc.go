// Package mailer provides transactional email dispatch over pluggable transports.
//
// The package separates message construction from delivery: BuildMessage
// validates a caller-supplied Draft into an immutable EmailMessage, and a
// Dispatcher sends it through one configured Transport, normalizing every
// provider failure into a structured DispatchResult instead of an error.
//
// # Architecture
//
// The package consists of three main components:
//
//   - Transport: interface that email providers implement (see the smtp,
//     mailtrap, and resend subpackages)
//   - BuildMessage: pure validation/normalization of drafts
//   - Dispatcher: owns one Transport and exposes Send, SendBatch, and
//     VerifyConnection
//
// # Usage
//
//	transport, err := smtp.New(smtp.Config{
//		Host:     "smtp.example.com",
//		Port:     587,
//		Username: "postmaster@example.com",
//		Password: os.Getenv("SMTP_PASSWORD"),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	d, err := mailer.New(transport,
//		mailer.WithLogger(logger.New()),
//		mailer.WithSendTimeout(15*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	msg, err := mailer.BuildMessage(mailer.Draft{
//		From:    mailer.Address{Email: "team@example.com", Name: "Team"},
//		To:      []string{"user@example.com"},
//		Subject: "Welcome",
//		Text:    "Hello and welcome!",
//		HTML:    "<p>Hello and welcome!</p>",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result := d.Send(ctx, msg)
//	if !result.Sent() {
//		log.Printf("send failed: %s: %v", result.ErrorKind, result.Err)
//	}
//
// # Error Reporting
//
// Send never returns an error. Every failure is classified into an ErrorKind
// (authentication, connection, timeout, cancellation, provider rejection, or
// unknown) and carried in the DispatchResult together with the underlying
// diagnostic error, so callers and batch loops can inspect outcomes
// programmatically. Validation and configuration problems are detected
// locally and reported before any network attempt.
//
// # Delivery Semantics
//
// The Dispatcher performs no retry and no deduplication: resending is an
// explicit caller decision. Concurrent sends share the one Transport, which
// must be safe for concurrent use; all bundled transports are.
package mailer
