package smtp

// Config holds SMTP account configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	// SSL enables implicit TLS (typically port 465).
	// When false, STARTTLS is negotiated opportunistically.
	SSL bool `env:"SMTP_SSL"`
}
