// Package mail forwards contact form submissions to the site owner.
package mail

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strings"
)

// ErrNotConfigured is returned when SMTP credentials are missing.
var ErrNotConfigured = errors.New("SMTP credentials not configured")

// Contact is a submission to forward.
type Contact struct {
	Name    string
	Email   string
	Message string
}

// Sender delivers a contact submission.
type Sender interface {
	Send(ctx context.Context, c Contact) error
}

// SMTPConfig holds the outgoing mail settings.
type SMTPConfig struct {
	Host string
	Port string
	User string
	Pass string
	To   string
}

// Configured reports whether credentials are present.
func (c SMTPConfig) Configured() bool {
	return c.User != "" && c.Pass != ""
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPSender sends mail with PLAIN auth.
type SMTPSender struct {
	cfg  SMTPConfig
	send sendFunc
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg, send: smtp.SendMail}
}

// Send delivers c. smtp.SendMail has no context support, so ctx is only
// checked before dialing.
func (s *SMTPSender) Send(ctx context.Context, c Contact) error {
	if !s.cfg.Configured() {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)
	addr := net.JoinHostPort(s.cfg.Host, s.cfg.Port)
	if err := s.send(addr, auth, s.cfg.User, []string{s.cfg.To}, Compose(s.cfg, c)); err != nil {
		return fmt.Errorf("sending mail via %s: %w", addr, err)
	}
	return nil
}

// Compose builds the RFC 5322 message for a submission. Header values are
// stripped of line breaks so a submission cannot inject headers.
func Compose(cfg SMTPConfig, c Contact) []byte {
	subject := fmt.Sprintf("Portfolio Contact: %s", headerSafe(c.Name))
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, c.Name, c.Email, c.Message)

	var b strings.Builder
	b.WriteString("To: " + cfg.To + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("From: " + cfg.User + "\r\n")
	b.WriteString("Reply-To: " + headerSafe(c.Email) + "\r\n")
	b.WriteString("\r\n")
	b.WriteString(body + "\r\n")
	return []byte(b.String())
}

func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

// Noop drops every submission. It is used when SMTP is not configured and
// messages are only stored.
type Noop struct{}

func (Noop) Send(context.Context, Contact) error { return ErrNotConfigured }
