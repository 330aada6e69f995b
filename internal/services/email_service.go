package services

import (
	"skillconnect/internal/email"
	"skillconnect/internal/services/dto"
	"skillconnect/pkg/apperrors"
)

type EmailService interface {
	ContactJobProvider(req *dto.ContactProviderRequest) error
}

type emailService struct {
	sender email.Sender
}

func NewEmailService(sender email.Sender) EmailService {
	return &emailService{sender: sender}
}

func (s *emailService) ContactJobProvider(req *dto.ContactProviderRequest) error {
	body, err := email.RenderProviderMessage(email.ProviderMessageData{
		UserName: req.UserName,
		Message:  req.Message,
	})
	if err != nil {
		return apperrors.InternalError(err)
	}

	subject := "New message from " + req.UserName + " on SkillConnect"
	if err := s.sender.Send(req.ProviderEmail, subject, body); err != nil {
		return apperrors.Wrap(err, apperrors.CodeExternalServiceError, "email", "Failed to send email.", 500)
	}
	return nil
}
