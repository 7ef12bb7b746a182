package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sparksonic/portal/internal/domain"
	"github.com/sparksonic/portal/internal/events"
	"github.com/sparksonic/portal/internal/repository"
)

// QuoteCreateInput carries the public lead form fields.
type QuoteCreateInput struct {
	Service       string
	Description   string
	Location      string
	PreferredDate *string
	Phone         string
	Email         string
}

// QuoteService handles quote request intake and retrieval.
type QuoteService struct {
	quotes     repository.QuoteRepository
	dispatcher events.Dispatcher
}

// NewQuoteService builds the service.
func NewQuoteService(quotes repository.QuoteRepository, dispatcher events.Dispatcher) *QuoteService {
	return &QuoteService{quotes: quotes, dispatcher: dispatcher}
}

// CreateQuote records a new quote request in pending state.
func (s *QuoteService) CreateQuote(ctx context.Context, input QuoteCreateInput) (*domain.Quote, error) {
	quote := &domain.Quote{
		QuoteID:       "QT-" + shortID(),
		Service:       input.Service,
		Description:   input.Description,
		Location:      input.Location,
		PreferredDate: input.PreferredDate,
		Phone:         input.Phone,
		Email:         input.Email,
		Status:        domain.QuoteStatusPending,
	}
	if err := s.quotes.Create(ctx, quote); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventQuoteRequested,
			Timestamp: time.Now(),
			Payload: events.QuoteRequestedPayload{
				QuoteID:  quote.QuoteID,
				Service:  quote.Service,
				Location: quote.Location,
				Email:    quote.Email,
				Phone:    quote.Phone,
			},
		})
	}
	return quote, nil
}

// ListCustomerQuotes returns quotes submitted with the customer's email.
func (s *QuoteService) ListCustomerQuotes(ctx context.Context, email string) ([]domain.Quote, error) {
	return s.quotes.ListByEmail(ctx, email)
}
