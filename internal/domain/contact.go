package domain

import "time"

// ContactStatus tracks triage of inbound contact messages.
type ContactStatus string

const (
	ContactStatusNew     ContactStatus = "new"
	ContactStatusHandled ContactStatus = "handled"
)

// ContactMessage is a submission from the public contact form.
type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Phone     *string
	Message   string
	Service   *string
	Status    ContactStatus
	CreatedAt time.Time
}
