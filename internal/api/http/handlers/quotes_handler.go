package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/sparksonic/portal/internal/api/dto"
	"github.com/sparksonic/portal/internal/auth"
	"github.com/sparksonic/portal/internal/domain"
	"github.com/sparksonic/portal/internal/service"
	apperrors "github.com/sparksonic/portal/pkg/util"
)

// QuotesHandler manages quote request endpoints.
type QuotesHandler struct {
	service *service.QuoteService
}

// NewQuotesHandler constructs handler.
func NewQuotesHandler(quoteService *service.QuoteService) *QuotesHandler {
	return &QuotesHandler{service: quoteService}
}

// CreateQuote handles POST /api/quotes. Public lead form, no auth.
func (h *QuotesHandler) CreateQuote(c *fiber.Ctx) error {
	var req dto.CreateQuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Service == "" || req.Description == "" || req.Location == "" || req.Phone == "" || req.Email == "" {
		return apperrors.NewValidationError("service, description, location, phone, email required", nil)
	}

	quote, err := h.service.CreateQuote(c.Context(), service.QuoteCreateInput{
		Service:       req.Service,
		Description:   req.Description,
		Location:      req.Location,
		PreferredDate: req.PreferredDate,
		Phone:         req.Phone,
		Email:         req.Email,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.CreateQuoteResponse{
		Message: "Quote request submitted",
		QuoteID: quote.QuoteID,
	})
}

// ListUserQuotes handles GET /api/quotes/user.
func (h *QuotesHandler) ListUserQuotes(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Customer == nil {
		return apperrors.NewUnauthorized("customer required")
	}

	quotes, err := h.service.ListCustomerQuotes(c.Context(), principal.Customer.Email)
	if err != nil {
		return err
	}

	records := make([]dto.QuoteRecord, 0, len(quotes))
	for i := range quotes {
		records = append(records, quoteRecord(&quotes[i]))
	}
	return c.JSON(records)
}

func quoteRecord(quote *domain.Quote) dto.QuoteRecord {
	return dto.QuoteRecord{
		ID:            quote.ID,
		QuoteID:       quote.QuoteID,
		Service:       quote.Service,
		Description:   quote.Description,
		Location:      quote.Location,
		PreferredDate: quote.PreferredDate,
		Status:        quote.Status,
		CreatedAt:     quote.CreatedAt,
		UpdatedAt:     quote.UpdatedAt,
	}
}
