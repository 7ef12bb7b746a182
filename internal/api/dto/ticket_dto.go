package dto

import (
	"time"

	"github.com/sparksonic/portal/internal/domain"
)

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Subject     string                `json:"subject"`
	Description string                `json:"description"`
	Priority    domain.TicketPriority `json:"priority"`
}

// CreateTicketResponse acknowledges the new ticket.
type CreateTicketResponse struct {
	Message  string `json:"message"`
	TicketID string `json:"ticket_id"`
}

// TicketRecord is one ticket in the customer's list.
type TicketRecord struct {
	ID          string                `json:"id"`
	TicketID    string                `json:"ticket_id"`
	Subject     string                `json:"subject"`
	Description string                `json:"description"`
	Priority    domain.TicketPriority `json:"priority"`
	Status      domain.TicketStatus   `json:"status"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}
