package mailtrap

// Config holds Mailtrap API configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	APIToken string `env:"MAILTRAP_API_TOKEN"`
	// InboxID routes sends to a sandbox testing inbox instead of real
	// delivery. Leave empty to use the production sending API.
	InboxID string `env:"MAILTRAP_INBOX_ID"`
	// Endpoint overrides the API base URL. Intended for tests.
	Endpoint string `env:"MAILTRAP_ENDPOINT"`
}
