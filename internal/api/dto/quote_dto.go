package dto

import (
	"time"

	"github.com/sparksonic/portal/internal/domain"
)

// CreateQuoteRequest payload for the public lead form.
type CreateQuoteRequest struct {
	Service       string  `json:"service"`
	Description   string  `json:"description"`
	Location      string  `json:"location"`
	PreferredDate *string `json:"preferred_date,omitempty"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email"`
}

// CreateQuoteResponse acknowledges the request.
type CreateQuoteResponse struct {
	Message string `json:"message"`
	QuoteID string `json:"quote_id"`
}

// QuoteRecord is one quote in the customer's list.
type QuoteRecord struct {
	ID            string             `json:"id"`
	QuoteID       string             `json:"quote_id"`
	Service       string             `json:"service"`
	Description   string             `json:"description"`
	Location      string             `json:"location"`
	PreferredDate *string            `json:"preferred_date,omitempty"`
	Status        domain.QuoteStatus `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}
