package domain

import "time"

// Customer is the domain model for portal account holders.
type Customer struct {
	ID           string
	CustomerID   string
	FullName     string
	Email        string
	Phone        *string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
