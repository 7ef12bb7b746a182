package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sparksonic/portal/internal/domain"
)

// ProjectRepository reads the completed projects gallery.
type ProjectRepository interface {
	ListRecent(ctx context.Context, limit int) ([]domain.Project, error)
}

type projectRepository struct {
	pool *pgxpool.Pool
}

// NewProjectRepository instantiates the repository.
func NewProjectRepository(pool *pgxpool.Pool) ProjectRepository {
	return &projectRepository{pool: pool}
}

func (r *projectRepository) ListRecent(ctx context.Context, limit int) ([]domain.Project, error) {
	if limit <= 0 {
		limit = 12
	}
	const query = `
        SELECT id, title, description, service, location, image_url, created_at
        FROM projects ORDER BY created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Project
	for rows.Next() {
		var project domain.Project
		if err := rows.Scan(
			&project.ID,
			&project.Title,
			&project.Description,
			&project.Service,
			&project.Location,
			&project.ImageURL,
			&project.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, project)
	}
	return result, rows.Err()
}
