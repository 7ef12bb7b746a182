package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sparksonic/portal/internal/api/dto"
	"github.com/sparksonic/portal/internal/service"
)

// SiteHandler serves public marketing data: reviews, the service catalog
// and the completed projects gallery.
type SiteHandler struct {
	reviews  *service.ReviewService
	projects *service.ProjectService
}

// NewSiteHandler constructs handler.
func NewSiteHandler(reviews *service.ReviewService, projects *service.ProjectService) *SiteHandler {
	return &SiteHandler{reviews: reviews, projects: projects}
}

// GetReviews handles GET /api/reviews.
func (h *SiteHandler) GetReviews(c *fiber.Ctx) error {
	return c.JSON(h.reviews.GetReviews(c.Context()))
}

// GetServices handles GET /api/services.
func (h *SiteHandler) GetServices(c *fiber.Ctx) error {
	return c.JSON(service.ServiceCatalog())
}

// GetProjects handles GET /api/projects.
func (h *SiteHandler) GetProjects(c *fiber.Ctx) error {
	projects, err := h.projects.ListRecent(c.Context())
	if err != nil {
		return err
	}
	records := make([]dto.ProjectRecord, 0, len(projects))
	for _, project := range projects {
		records = append(records, dto.ProjectRecord{
			ID:          project.ID,
			Title:       project.Title,
			Description: project.Description,
			Service:     project.Service,
			Location:    project.Location,
			ImageURL:    project.ImageURL,
			CreatedAt:   project.CreatedAt,
		})
	}
	return c.JSON(records)
}
