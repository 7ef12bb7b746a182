package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sparksonic/portal/internal/domain"
)

// ContactRepository stores inbound contact form submissions.
type ContactRepository interface {
	Create(ctx context.Context, contact *domain.ContactMessage) error
}

type contactRepository struct {
	pool *pgxpool.Pool
}

// NewContactRepository instantiates the repository.
func NewContactRepository(pool *pgxpool.Pool) ContactRepository {
	return &contactRepository{pool: pool}
}

func (r *contactRepository) Create(ctx context.Context, contact *domain.ContactMessage) error {
	const query = `
        INSERT INTO contacts (name, email, phone, message, service, status)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		contact.Name,
		contact.Email,
		contact.Phone,
		contact.Message,
		contact.Service,
		contact.Status,
	).Scan(&contact.ID, &contact.CreatedAt)
}
