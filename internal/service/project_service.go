package service

import (
	"context"

	"github.com/sparksonic/portal/internal/domain"
	"github.com/sparksonic/portal/internal/repository"
)

const projectPageSize = 12

// ProjectService reads the completed projects gallery.
type ProjectService struct {
	projects repository.ProjectRepository
}

// NewProjectService builds the service.
func NewProjectService(projects repository.ProjectRepository) *ProjectService {
	return &ProjectService{projects: projects}
}

// ListRecent returns the most recent projects for the gallery page.
func (s *ProjectService) ListRecent(ctx context.Context) ([]domain.Project, error) {
	return s.projects.ListRecent(ctx, projectPageSize)
}
