package mailer

import "fmt"

// Address couples an email address with an optional display name.
type Address struct {
	Email string
	Name  string
}

// String formats the address in RFC 5322 form.
// Returns "Name <email>" if a display name is set, otherwise just the email.
func (a Address) String() string {
	if a.Name == "" {
		return a.Email
	}
	return fmt.Sprintf("%s <%s>", a.Name, a.Email)
}

// Draft is a caller-supplied, unvalidated message description.
// Pass it to BuildMessage to obtain a sendable EmailMessage.
type Draft struct {
	Headers     map[string]string // Custom headers (keys unique)
	From        Address           // Sender address (required)
	ReplyTo     string            // Reply-to address
	Subject     string            // Subject line (required)
	Text        string            // Plain-text body
	HTML        string            // HTML body
	Category    string            // Provider-side analytics category/tag
	To          []string          // Recipients (at least one required)
	CC          []string          // Carbon copy recipients
	BCC         []string          // Blind carbon copy recipients
	Attachments []Attachment      // File attachments
}

// EmailMessage is a validated message ready for dispatch.
// Instances are produced by BuildMessage and must be treated as immutable:
// the builder copies all slices and maps so a message cannot be changed
// through the original draft after it is built.
type EmailMessage struct {
	Headers     map[string]string
	Sender      Address
	ReplyTo     string
	Subject     string
	TextBody    string
	HTMLBody    string
	Category    string
	Recipients  []string
	CC          []string
	BCC         []string
	Attachments []Attachment
}

// Attachment represents an email attachment.
type Attachment struct {
	Filename    string // Display name for the attachment
	ContentType string // MIME type (e.g., "application/pdf")
	ContentID   string // Optional Content-ID for inline attachments
	Content     []byte // Raw file content
}

// Status reports the outcome of a dispatch.
type Status string

const (
	// StatusSent indicates the provider accepted the message.
	StatusSent Status = "sent"

	// StatusFailed indicates the message was not handed to the provider.
	StatusFailed Status = "failed"
)

// DispatchResult is the value returned from every Dispatcher.Send call.
// Failures are reported through ErrorKind and Err rather than a returned
// error, so batch-sending callers can continue past individual failures.
type DispatchResult struct {
	Status            Status
	Provider          string // Transport name that handled the send
	DispatchID        string // Locally generated ID for log correlation
	ProviderMessageID string // Provider-assigned ID, set when Status is StatusSent
	ErrorKind         ErrorKind
	Err               error // Underlying diagnostic, set when Status is StatusFailed
}

// Sent reports whether the dispatch succeeded.
func (r DispatchResult) Sent() bool {
	return r.Status == StatusSent
}
