package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventCustomerRegistered EventType = "customer_registered"
	EventQuoteRequested     EventType = "quote_requested"
	EventTicketOpened       EventType = "ticket_opened"
	EventContactReceived    EventType = "contact_received"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// CustomerRegisteredPayload payload.
type CustomerRegisteredPayload struct {
	CustomerID string `json:"customer_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
}

// QuoteRequestedPayload payload.
type QuoteRequestedPayload struct {
	QuoteID  string `json:"quote_id"`
	Service  string `json:"service"`
	Location string `json:"location"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// TicketOpenedPayload payload.
type TicketOpenedPayload struct {
	TicketID   string `json:"ticket_id"`
	CustomerID string `json:"customer_id"`
	Subject    string `json:"subject"`
	Priority   string `json:"priority"`
}

// ContactReceivedPayload payload.
type ContactReceivedPayload struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Service *string `json:"service,omitempty"`
}
