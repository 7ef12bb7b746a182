package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sparksonic/portal/internal/domain"
	"github.com/sparksonic/portal/internal/events"
	"github.com/sparksonic/portal/internal/repository"
)

// ContactInput carries the public contact form fields.
type ContactInput struct {
	Name    string
	Email   string
	Phone   *string
	Message string
	Service *string
}

// ContactService stores contact form submissions.
type ContactService struct {
	contacts   repository.ContactRepository
	dispatcher events.Dispatcher
}

// NewContactService builds the service.
func NewContactService(contacts repository.ContactRepository, dispatcher events.Dispatcher) *ContactService {
	return &ContactService{contacts: contacts, dispatcher: dispatcher}
}

// SubmitContact persists the submission and notifies the office.
func (s *ContactService) SubmitContact(ctx context.Context, input ContactInput) (*domain.ContactMessage, error) {
	contact := &domain.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Message: input.Message,
		Service: input.Service,
		Status:  domain.ContactStatusNew,
	}
	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventContactReceived,
			Timestamp: time.Now(),
			Payload: events.ContactReceivedPayload{
				Name:    contact.Name,
				Email:   contact.Email,
				Service: contact.Service,
			},
		})
	}
	return contact, nil
}
