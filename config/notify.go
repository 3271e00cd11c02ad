package config

// SMTPConfig contains outbound notification delivery configuration.
// When Host is empty, the notification endpoint is disabled.
type SMTPConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`

	// From is the sender address for outbound notification emails.
	From string `env:"SMTP_FROM"`
}
