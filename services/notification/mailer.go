package notification

import (
	"fmt"

	"meetly/config"

	"gopkg.in/gomail.v2"
)

// Mailer sends invitee-facing email.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer delivers mail through the configured SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer constructs a mailer from AppConfig SMTP settings.
func NewSMTPMailer() *SMTPMailer {
	cfg := config.AppConfig
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.SMTPFrom,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}
