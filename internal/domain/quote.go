package domain

import "time"

// QuoteStatus enumerates lifecycle states for quote requests.
// The backend may introduce further states; unknown values pass through.
type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusApproved QuoteStatus = "approved"
	QuoteStatusRejected QuoteStatus = "rejected"
)

// Quote is a service-cost estimate request submitted through the lead form.
type Quote struct {
	ID            string
	QuoteID       string
	Service       string
	Description   string
	Location      string
	PreferredDate *string
	Phone         string
	Email         string
	Status        QuoteStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
