package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/pulse/internal/client/client"
	"github.com/dmitrijs2005/pulse/internal/client/models"
	"github.com/dmitrijs2005/pulse/internal/client/session"
	"github.com/dmitrijs2005/pulse/internal/logging"
)

// ContactService sends the contact form.
type ContactService interface {
	Prefill(ctx context.Context) models.ContactMessage
	Send(ctx context.Context, msg models.ContactMessage) error
}

type contactService struct {
	client client.Client
	gate   *session.Gate
	logger logging.Logger
}

func NewContactService(c client.Client, g *session.Gate, logger logging.Logger) ContactService {
	return &contactService{client: c, gate: g, logger: logger}
}

// Prefill returns a form with name and email taken from the signed-in
// profile, or an empty one.
func (s *contactService) Prefill(ctx context.Context) models.ContactMessage {
	p, ok := s.gate.Profile(ctx)
	if !ok {
		return models.ContactMessage{}
	}
	return models.ContactMessage{Name: p.UserName, Email: p.Email}
}

func (s *contactService) Send(ctx context.Context, msg models.ContactMessage) error {
	if err := models.Validate(msg); err != nil {
		return err
	}
	if err := s.client.SendContact(ctx, msg); err != nil {
		return fmt.Errorf("send contact: %w", err)
	}
	s.logger.Info(ctx, "contact message sent", "email", msg.Email)
	return nil
}
