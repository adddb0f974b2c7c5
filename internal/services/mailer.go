package services

import (
	"fmt"
	"log/slog"

	"gopkg.in/gomail.v2"

	"github.com/keeperbase/keeperbase/internal/config"
)

// Mailer dispatches transactional email. The core treats welcome mail as
// fire-and-forget; reset mail failures propagate because the email is the
// whole point of that flow.
type Mailer interface {
	SendWelcome(email, name, token string) error
	SendPasswordReset(email, name, token string) error
}

// NewMailer returns an SMTP-backed mailer when SMTP_HOST is configured and
// a log-only mailer otherwise (local development, tests).
func NewMailer(cfg *config.Config) Mailer {
	if cfg.SMTPHost == "" {
		return &LogMailer{}
	}
	return &SMTPMailer{cfg: cfg}
}

type SMTPMailer struct {
	cfg *config.Config
}

func (m *SMTPMailer) SendWelcome(email, name, token string) error {
	link := fmt.Sprintf("%s/verify-email?token=%s", m.cfg.AppBaseURL, token)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Welcome to Keeperbase. Confirm your email address by clicking the link below:</p><p><a href=%q>Verify email</a></p><p>The link is valid for 24 hours.</p>",
		name, link)
	return m.send(email, "Welcome to Keeperbase: verify your email", body)
}

func (m *SMTPMailer) SendPasswordReset(email, name, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", m.cfg.AppBaseURL, token)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>A password reset was requested for your account. Click the link below to choose a new password:</p><p><a href=%q>Reset password</a></p><p>The link is valid for 1 hour. If you did not request this, you can ignore this email.</p>",
		name, link)
	return m.send(email, "Reset your Keeperbase password", body)
}

func (m *SMTPMailer) send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.MailFrom)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.SMTPUser, m.cfg.SMTPPass)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// LogMailer logs instead of sending. Keeps the token visible in dev logs.
type LogMailer struct{}

func (m *LogMailer) SendWelcome(email, name, token string) error {
	slog.Info("welcome email (smtp disabled)", "to", email, "token", token)
	return nil
}

func (m *LogMailer) SendPasswordReset(email, name, token string) error {
	slog.Info("password reset email (smtp disabled)", "to", email, "token", token)
	return nil
}
