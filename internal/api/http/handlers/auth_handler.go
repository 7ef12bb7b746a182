package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/sparksonic/portal/internal/api/dto"
	"github.com/sparksonic/portal/internal/auth"
	"github.com/sparksonic/portal/internal/service"
	apperrors "github.com/sparksonic/portal/pkg/util"
)

// AuthHandler exposes customer registration, login and profile endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" || req.FullName == "" {
		return apperrors.NewValidationError("email, password, full_name required", nil)
	}
	if len(req.Password) < 6 {
		return apperrors.NewValidationError("password must be at least 6 characters", nil)
	}
	if !strings.Contains(req.Email, "@") {
		return apperrors.NewValidationError("invalid email address", nil)
	}

	customer, err := h.auth.Register(c.Context(), req.Email, req.Password, req.FullName, req.Phone)
	if err != nil {
		if err == service.ErrEmailTaken {
			return apperrors.NewDomainError("EMAIL_TAKEN", err.Error(), http.StatusBadRequest, nil)
		}
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.RegisterResponse{
		Message:    "Registration successful",
		CustomerID: customer.CustomerID,
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	customer, token, _, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			return apperrors.NewUnauthorized(err.Error())
		}
		return err
	}

	return c.JSON(dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		CustomerID:  customer.CustomerID,
		FullName:    customer.FullName,
	})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Customer == nil {
		return apperrors.NewUnauthorized("customer required")
	}
	customer := principal.Customer
	return c.JSON(dto.ProfileResponse{
		CustomerID: customer.CustomerID,
		FullName:   customer.FullName,
		Email:      customer.Email,
		Phone:      customer.Phone,
		CreatedAt:  customer.CreatedAt,
	})
}
