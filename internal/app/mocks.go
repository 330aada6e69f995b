package app

import "skillconnect/internal/logger"

// MockEmailSender stands in for SMTP when mail is not configured. Messages are
// logged and dropped.
type MockEmailSender struct{}

func (m *MockEmailSender) Send(to, subject, htmlBody string) error {
	logger.Info("MOCK email send", "to", to, "subject", subject)
	return nil
}
