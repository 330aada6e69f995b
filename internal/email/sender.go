package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"skillconnect/internal/config"
)

// Sender delivers marketplace notification emails.
type Sender interface {
	Send(to, subject, htmlBody string) error
}

// SMTPSender sends mail through the configured SMTP relay via gomail.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(cfg *config.Config) (*SMTPSender, error) {
	if cfg.Email.SMTPHost == "" {
		return nil, fmt.Errorf("smtp host is not configured")
	}

	dialer := gomail.NewDialer(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUsername,
		cfg.Email.SMTPPassword,
	)

	from := cfg.Email.FromEmail
	if cfg.Email.FromName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.Email.FromName, cfg.Email.FromEmail)
	}

	return &SMTPSender{dialer: dialer, from: from}, nil
}

func (s *SMTPSender) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	return s.dialer.DialAndSend(m)
}
