package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/sparksonic/portal/internal/api/dto"
	"github.com/sparksonic/portal/internal/auth"
	"github.com/sparksonic/portal/internal/domain"
	"github.com/sparksonic/portal/internal/service"
	apperrors "github.com/sparksonic/portal/pkg/util"
)

// TicketsHandler manages customer support ticket endpoints.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// CreateTicket handles POST /api/tickets.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Customer == nil {
		return apperrors.NewUnauthorized("customer required")
	}

	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Subject) == "" || strings.TrimSpace(req.Description) == "" {
		return apperrors.NewValidationError("subject and description required", nil)
	}

	ticket, err := h.service.CreateTicket(c.Context(), principal.Customer, service.TicketCreateInput{
		Subject:     req.Subject,
		Description: req.Description,
		Priority:    req.Priority,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.CreateTicketResponse{
		Message:  "Ticket created",
		TicketID: ticket.TicketID,
	})
}

// ListUserTickets handles GET /api/tickets/user.
func (h *TicketsHandler) ListUserTickets(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Customer == nil {
		return apperrors.NewUnauthorized("customer required")
	}

	tickets, err := h.service.ListCustomerTickets(c.Context(), principal.Customer.Email)
	if err != nil {
		return err
	}

	records := make([]dto.TicketRecord, 0, len(tickets))
	for i := range tickets {
		records = append(records, ticketRecord(&tickets[i]))
	}
	return c.JSON(records)
}

func ticketRecord(ticket *domain.Ticket) dto.TicketRecord {
	return dto.TicketRecord{
		ID:          ticket.ID,
		TicketID:    ticket.TicketID,
		Subject:     ticket.Subject,
		Description: ticket.Description,
		Priority:    ticket.Priority,
		Status:      ticket.Status,
		CreatedAt:   ticket.CreatedAt,
		UpdatedAt:   ticket.UpdatedAt,
	}
}
