package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sparksonic/portal/internal/domain"
	"github.com/sparksonic/portal/internal/events"
	"github.com/sparksonic/portal/internal/repository"
	apperrors "github.com/sparksonic/portal/pkg/util"
)

// TicketCreateInput carries ticket form fields.
type TicketCreateInput struct {
	Subject     string
	Description string
	Priority    domain.TicketPriority
}

// TicketService handles support ticket creation and retrieval.
type TicketService struct {
	tickets    repository.TicketRepository
	dispatcher events.Dispatcher
}

// NewTicketService builds the service.
func NewTicketService(tickets repository.TicketRepository, dispatcher events.Dispatcher) *TicketService {
	return &TicketService{tickets: tickets, dispatcher: dispatcher}
}

// CreateTicket opens a new support ticket for the customer.
func (s *TicketService) CreateTicket(ctx context.Context, customer *domain.Customer, input TicketCreateInput) (*domain.Ticket, error) {
	priority := input.Priority
	if priority == "" {
		priority = domain.TicketPriorityMedium
	}
	if !domain.ValidPriority(priority) {
		return nil, apperrors.NewValidationError("priority must be low, medium or high", nil)
	}

	ticket := &domain.Ticket{
		TicketID:      "TKT-" + shortID(),
		CustomerID:    customer.CustomerID,
		CustomerEmail: customer.Email,
		Subject:       input.Subject,
		Description:   input.Description,
		Priority:      priority,
		Status:        domain.TicketStatusOpen,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventTicketOpened,
			Timestamp: time.Now(),
			Payload: events.TicketOpenedPayload{
				TicketID:   ticket.TicketID,
				CustomerID: ticket.CustomerID,
				Subject:    ticket.Subject,
				Priority:   string(ticket.Priority),
			},
		})
	}
	return ticket, nil
}

// ListCustomerTickets returns the customer's support tickets.
func (s *TicketService) ListCustomerTickets(ctx context.Context, email string) ([]domain.Ticket, error) {
	return s.tickets.ListByCustomerEmail(ctx, email)
}
