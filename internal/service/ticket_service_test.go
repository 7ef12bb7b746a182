package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparksonic/portal/internal/domain"
	"github.com/sparksonic/portal/internal/events"
	apperrors "github.com/sparksonic/portal/pkg/util"
)

type mockTicketRepo struct {
	CreateFunc              func(ctx context.Context, ticket *domain.Ticket) error
	GetByTicketIDFunc       func(ctx context.Context, ticketID string) (*domain.Ticket, error)
	ListByCustomerEmailFunc func(ctx context.Context, email string) ([]domain.Ticket, error)
}

func (m *mockTicketRepo) Create(ctx context.Context, ticket *domain.Ticket) error {
	return m.CreateFunc(ctx, ticket)
}

func (m *mockTicketRepo) GetByTicketID(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	return m.GetByTicketIDFunc(ctx, ticketID)
}

func (m *mockTicketRepo) ListByCustomerEmail(ctx context.Context, email string) ([]domain.Ticket, error) {
	return m.ListByCustomerEmailFunc(ctx, email)
}

func testCustomer() *domain.Customer {
	return &domain.Customer{CustomerID: "CUST-ABCD1234", Email: "a@b.com", FullName: "A B"}
}

func TestTicketService_CreateTicket(t *testing.T) {
	var stored *domain.Ticket
	repo := &mockTicketRepo{
		CreateFunc: func(_ context.Context, ticket *domain.Ticket) error {
			stored = ticket
			return nil
		},
	}
	dispatcher := events.NewInMemoryDispatcher()
	var published []events.Event
	dispatcher.Subscribe(events.EventTicketOpened, func(_ context.Context, event events.Event) error {
		published = append(published, event)
		return nil
	})
	svc := NewTicketService(repo, dispatcher)

	ticket, err := svc.CreateTicket(context.Background(), testCustomer(), TicketCreateInput{
		Subject:     "No power",
		Description: "Breaker keeps tripping",
		Priority:    domain.TicketPriorityHigh,
	})
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.True(t, strings.HasPrefix(ticket.TicketID, "TKT-"))
	assert.Equal(t, domain.TicketStatusOpen, ticket.Status)
	assert.Equal(t, "CUST-ABCD1234", ticket.CustomerID)
	assert.Equal(t, "a@b.com", ticket.CustomerEmail)
	require.Len(t, published, 1)
	assert.Equal(t, events.EventTicketOpened, published[0].Type)
}

func TestTicketService_DefaultPriority(t *testing.T) {
	repo := &mockTicketRepo{
		CreateFunc: func(context.Context, *domain.Ticket) error { return nil },
	}
	svc := NewTicketService(repo, nil)

	ticket, err := svc.CreateTicket(context.Background(), testCustomer(), TicketCreateInput{
		Subject:     "Dim lights",
		Description: "Hallway lights dim at night",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TicketPriorityMedium, ticket.Priority)
}

func TestTicketService_InvalidPriority(t *testing.T) {
	repo := &mockTicketRepo{
		CreateFunc: func(context.Context, *domain.Ticket) error {
			t.Fatal("invalid priority must not be persisted")
			return nil
		},
	}
	svc := NewTicketService(repo, nil)

	_, err := svc.CreateTicket(context.Background(), testCustomer(), TicketCreateInput{
		Subject:     "Dim lights",
		Description: "Hallway lights dim at night",
		Priority:    domain.TicketPriority("urgent"),
	})
	require.Error(t, err)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
}
