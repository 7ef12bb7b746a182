package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sparksonic/portal/internal/domain"
)

// QuoteRepository encapsulates quote persistence.
type QuoteRepository interface {
	Create(ctx context.Context, quote *domain.Quote) error
	GetByQuoteID(ctx context.Context, quoteID string) (*domain.Quote, error)
	ListByEmail(ctx context.Context, email string) ([]domain.Quote, error)
}

type quoteRepository struct {
	pool *pgxpool.Pool
}

// NewQuoteRepository instantiates the repository.
func NewQuoteRepository(pool *pgxpool.Pool) QuoteRepository {
	return &quoteRepository{pool: pool}
}

func (r *quoteRepository) Create(ctx context.Context, quote *domain.Quote) error {
	const query = `
        INSERT INTO quotes (quote_id, service, description, location, preferred_date, phone, email, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		quote.QuoteID,
		quote.Service,
		quote.Description,
		quote.Location,
		quote.PreferredDate,
		quote.Phone,
		quote.Email,
		quote.Status,
	).Scan(&quote.ID, &quote.CreatedAt, &quote.UpdatedAt)
}

func (r *quoteRepository) GetByQuoteID(ctx context.Context, quoteID string) (*domain.Quote, error) {
	const query = `
        SELECT id, quote_id, service, description, location, preferred_date, phone, email, status, created_at, updated_at
        FROM quotes WHERE quote_id=$1`

	var quote domain.Quote
	if err := r.pool.QueryRow(ctx, query, quoteID).Scan(
		&quote.ID,
		&quote.QuoteID,
		&quote.Service,
		&quote.Description,
		&quote.Location,
		&quote.PreferredDate,
		&quote.Phone,
		&quote.Email,
		&quote.Status,
		&quote.CreatedAt,
		&quote.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &quote, nil
}

func (r *quoteRepository) ListByEmail(ctx context.Context, email string) ([]domain.Quote, error) {
	const query = `
        SELECT id, quote_id, service, description, location, preferred_date, phone, email, status, created_at, updated_at
        FROM quotes WHERE email=$1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanQuotes(rows)
}

func scanQuotes(rows pgx.Rows) ([]domain.Quote, error) {
	var result []domain.Quote
	for rows.Next() {
		var quote domain.Quote
		if err := rows.Scan(
			&quote.ID,
			&quote.QuoteID,
			&quote.Service,
			&quote.Description,
			&quote.Location,
			&quote.PreferredDate,
			&quote.Phone,
			&quote.Email,
			&quote.Status,
			&quote.CreatedAt,
			&quote.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, quote)
	}
	return result, rows.Err()
}
