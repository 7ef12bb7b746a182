package domain

import "time"

// Project is a completed installation shown on the projects page.
type Project struct {
	ID          string
	Title       string
	Description string
	Service     string
	Location    string
	ImageURL    *string
	CreatedAt   time.Time
}
