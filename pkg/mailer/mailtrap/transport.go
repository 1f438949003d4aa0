package mailtrap

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dmitrymomot/dispatch/pkg/mailer"
)

const (
	sendEndpoint    = "https://send.api.mailtrap.io/api/send"
	sandboxEndpoint = "https://sandbox.api.mailtrap.io/api/send"
)

// Transport implements mailer.Transport using the Mailtrap send API.
// With an inbox ID configured it targets the sandbox testing API, which
// captures messages in a test inbox instead of delivering them.
// Safe for concurrent use: each Send is an independent HTTP request.
type Transport struct {
	client   *http.Client
	endpoint string
	token    string
}

// New creates a Mailtrap transport. It fails with mailer.ErrInvalidConfig
// when the API token is missing; no network attempt is made until Send or Verify.
func New(cfg Config) (*Transport, error) {
	if cfg.APIToken == "" {
		return nil, errors.Join(mailer.ErrInvalidConfig, errors.New("mailtrap: API token is required"))
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = sendEndpoint
		if cfg.InboxID != "" {
			endpoint = sandboxEndpoint
		}
	}
	if cfg.InboxID != "" {
		endpoint = strings.TrimSuffix(endpoint, "/") + "/" + cfg.InboxID
	}

	return &Transport{
		client:   &http.Client{},
		endpoint: endpoint,
		token:    cfg.APIToken,
	}, nil
}

// Name implements mailer.Transport.
func (t *Transport) Name() string { return "mailtrap" }

// Send implements mailer.Transport.
func (t *Transport) Send(ctx context.Context, msg *mailer.EmailMessage) (string, error) {
	payload, err := json.Marshal(buildPayload(msg))
	if err != nil {
		return "", fmt.Errorf("mailtrap: failed to encode payload: %w", err)
	}

	status, body, err := t.post(ctx, payload)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", classifyStatus(status, body)
	}

	var reply struct {
		Success    bool     `json:"success"`
		MessageIDs []string `json:"message_ids"`
	}
	if err := json.Unmarshal(body, &reply); err != nil {
		return "", fmt.Errorf("mailtrap: failed to decode response: %w", err)
	}
	if len(reply.MessageIDs) == 0 {
		return "", nil
	}
	return reply.MessageIDs[0], nil
}

// Verify implements mailer.Transport. It posts an empty payload: a 401/403
// reply means bad credentials, any other API reply proves the endpoint is
// reachable and the token was accepted.
func (t *Transport) Verify(ctx context.Context) error {
	status, body, err := t.post(ctx, []byte("{}"))
	if err != nil {
		return err
	}
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return classifyStatus(status, body)
	}
	return nil
}

func (t *Transport) post(ctx context.Context, payload []byte) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, fmt.Errorf("mailtrap: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Api-Token", t.token)

	resp, err := t.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, nil, ctxErr
		}
		return 0, nil, errors.Join(mailer.ErrConnectionFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, nil, errors.Join(mailer.ErrConnectionFailed, err)
	}
	return resp.StatusCode, body, nil
}

func classifyStatus(status int, body []byte) error {
	detail := apiErrors(body)
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return errors.Join(mailer.ErrAuthFailed, fmt.Errorf("mailtrap: status %d: %s", status, detail))
	case status >= 400 && status < 500:
		return errors.Join(mailer.ErrProviderRejected, fmt.Errorf("mailtrap: status %d: %s", status, detail))
	default:
		return fmt.Errorf("mailtrap: unexpected status %d: %s", status, detail)
	}
}

// apiErrors extracts the "errors" field Mailtrap returns on rejection.
func apiErrors(body []byte) string {
	var reply struct {
		Errors []string `json:"errors"`
	}
	if err := json.Unmarshal(body, &reply); err == nil && len(reply.Errors) > 0 {
		return strings.Join(reply.Errors, "; ")
	}
	return strings.TrimSpace(string(body))
}

type address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type attachment struct {
	Content     string `json:"content"`
	Type        string `json:"type,omitempty"`
	Filename    string `json:"filename"`
	Disposition string `json:"disposition,omitempty"`
	ContentID   string `json:"content_id,omitempty"`
}

func buildPayload(msg *mailer.EmailMessage) map[string]any {
	payload := map[string]any{
		"from":    address{Email: msg.Sender.Email, Name: msg.Sender.Name},
		"to":      addresses(msg.Recipients),
		"subject": msg.Subject,
	}
	if msg.TextBody != "" {
		payload["text"] = msg.TextBody
	}
	if msg.HTMLBody != "" {
		payload["html"] = msg.HTMLBody
	}
	if len(msg.CC) > 0 {
		payload["cc"] = addresses(msg.CC)
	}
	if len(msg.BCC) > 0 {
		payload["bcc"] = addresses(msg.BCC)
	}
	if msg.ReplyTo != "" {
		payload["reply_to"] = address{Email: msg.ReplyTo}
	}
	if msg.Category != "" {
		payload["category"] = msg.Category
	}
	if len(msg.Headers) > 0 {
		payload["headers"] = msg.Headers
	}
	if len(msg.Attachments) > 0 {
		attachments := make([]attachment, 0, len(msg.Attachments))
		for _, a := range msg.Attachments {
			entry := attachment{
				Content:  base64.StdEncoding.EncodeToString(a.Content),
				Type:     a.ContentType,
				Filename: a.Filename,
			}
			if a.ContentID != "" {
				entry.Disposition = "inline"
				entry.ContentID = a.ContentID
			}
			attachments = append(attachments, entry)
		}
		payload["attachments"] = attachments
	}
	return payload
}

func addresses(emails []string) []address {
	out := make([]address, len(emails))
	for i, email := range emails {
		out[i] = address{Email: email}
	}
	return out
}
