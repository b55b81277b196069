package services

import (
	"fmt"
	"strings"

	"ice-cream-shop/models"

	"go.uber.org/zap"
)

// ContactService accepts the contact form. Without a mailer messages are only
// logged.
type ContactService struct {
	mailer Mailer
	logger *zap.Logger
}

func NewContactService(logger *zap.Logger) *ContactService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactService{logger: logger}
}

func (s *ContactService) WithMailer(mailer Mailer) *ContactService {
	s.mailer = mailer
	return s
}

func (s *ContactService) Submit(req models.ContactRequest) error {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Message) == "" {
		return ErrMissingFields
	}

	s.logger.Info("contact message received",
		zap.String("email", req.Email),
		zap.String("subject", req.Subject),
	)

	if s.mailer != nil {
		if err := s.mailer.SendContactMessage(req); err != nil {
			return fmt.Errorf("forward contact message: %w", err)
		}
	}
	return nil
}
