package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sparksonic/portal/internal/api/dto"
	"github.com/sparksonic/portal/internal/service"
	apperrors "github.com/sparksonic/portal/pkg/util"
)

// ContactHandler accepts public contact form submissions.
type ContactHandler struct {
	service *service.ContactService
}

// NewContactHandler constructs handler.
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{service: contactService}
}

// SubmitContact handles POST /api/contact.
func (h *ContactHandler) SubmitContact(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return apperrors.NewValidationError("name, email, message required", nil)
	}

	if _, err := h.service.SubmitContact(c.Context(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
		Service: req.Service,
	}); err != nil {
		return err
	}

	return c.JSON(dto.AckResponse{Message: "Contact form submitted successfully"})
}
