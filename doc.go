// Package dispatch is a small library for sending transactional email
// through a configurable provider.
//
// The root package is a thin orchestration layer: it maps a ProviderKind to
// one of the bundled transports (SMTP account, Mailtrap sandbox/send API,
// Resend API, or a dev log sink) and wraps it in a mailer.Dispatcher. The
// actual machinery lives in pkg/mailer.
//
// # Quick Start
//
//	d, err := dispatch.New(dispatch.Config{
//	    Provider: dispatch.ProviderSMTP,
//	    SMTP: smtp.Config{
//	        Host:     "smtp.example.com",
//	        Port:     587,
//	        Username: "postmaster@example.com",
//	        Password: cfg.SMTPPassword,
//	    },
//	}, mailer.WithLogger(logger.New(slog.LevelInfo)))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	msg, err := mailer.BuildMessage(mailer.Draft{
//	    From:    mailer.Address{Email: "team@example.com", Name: "Team"},
//	    To:      []string{"user@example.com"},
//	    Subject: "Welcome",
//	    Text:    "Hello and welcome!",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if result := d.Send(ctx, msg); !result.Sent() {
//	    log.Printf("send failed: %s: %v", result.ErrorKind, result.Err)
//	}
//
// Provider choice is a configuration-time variant: swapping SMTP for an API
// provider changes only the Config, never the sending code.
package dispatch
