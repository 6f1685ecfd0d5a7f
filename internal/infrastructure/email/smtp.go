package email

import (
	"crypto/tls"
	"fmt"

	"gopkg.in/gomail.v2"

	"licenza/internal/domain/alert"
	"licenza/internal/shared/logger"
)

const fromName = "License Alerts"

// SMTPMailer sends alert mail over SMTP using the stored alert settings.
// A dialer is built per send so that settings edits take effect without a
// restart.
type SMTPMailer struct {
	logger logger.Interface
}

// NewSMTPMailer creates a new SMTPMailer
func NewSMTPMailer(logger logger.Interface) *SMTPMailer {
	return &SMTPMailer{logger: logger}
}

// Send delivers one message to every configured recipient. An empty recipient
// list fails before any connection is attempted.
func (s *SMTPMailer) Send(settings *alert.Settings, subject, body string) error {
	recipients := settings.RecipientList()
	if len(recipients) == 0 {
		return alert.ErrNoRecipients
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", settings.FromAddress(), fromName)
	m.SetHeader("To", recipients...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	dialer := gomail.NewDialer(settings.SMTPHost(), settings.SMTPPort(), settings.SMTPUser(), settings.SMTPPassword())
	switch settings.Security() {
	case alert.SecuritySSL:
		dialer.SSL = true
	case alert.SecurityNone:
		// Plain session; STARTTLS is still used when the server offers it
		dialer.TLSConfig = &tls.Config{ServerName: settings.SMTPHost()}
	default:
		// starttls: gomail upgrades the session after the EHLO exchange
	}

	if err := dialer.DialAndSend(m); err != nil {
		s.logger.Errorw("failed to send alert email", "host", settings.SMTPHost(), "recipients", len(recipients), "error", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infow("alert email sent", "recipients", len(recipients), "subject", subject)
	return nil
}
