package smtpmailer

// Package smtpmailer delivers notification emails over SMTP. It is a thin
// envelope writer; templating and delivery policy live elsewhere.

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/pinehollow/storefront/internal/ports"
)

// Config holds SMTP connection settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer implements the Mailer port using the standard SMTP protocol.
type Mailer struct {
	cfg  Config
	auth smtp.Auth
}

// New creates an SMTP-backed mailer. All fields are required so that a
// partially configured deployment fails at startup rather than at send
// time.
func New(cfg Config) (*Mailer, error) {
	if cfg.Host == "" {
		return nil, errors.New("smtp host is required")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, errors.New("smtp port must be between 1 and 65535")
	}
	if cfg.From == "" {
		return nil, errors.New("smtp sender address is required")
	}

	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return &Mailer{cfg: cfg, auth: auth}, nil
}

// Send delivers one message. net/smtp has no context support; the context
// is checked before dialing so an already-cancelled request does not open a
// connection.
func (m *Mailer) Send(ctx context.Context, msg ports.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))
	body := buildMessage(m.cfg.From, msg)

	if err := smtp.SendMail(addr, m.auth, m.cfg.From, []string{msg.To}, body); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// buildMessage assembles a minimal RFC 5322 message.
func buildMessage(from string, msg ports.Message) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + msg.To + "\r\n")
	b.WriteString("Subject: " + sanitizeHeader(msg.Subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Body)
	return []byte(b.String())
}

// sanitizeHeader strips CR/LF to prevent header injection from request
// payloads.
func sanitizeHeader(v string) string {
	v = strings.ReplaceAll(v, "\r", " ")
	return strings.ReplaceAll(v, "\n", " ")
}
