package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/sparksonic/portal/internal/domain"
	"github.com/sparksonic/portal/internal/repository"
	apperrors "github.com/sparksonic/portal/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated customer.
type Principal struct {
	Customer *domain.Customer
}

// AuthMiddleware validates bearer tokens and loads the customer record.
type AuthMiddleware struct {
	tokens    *TokenManager
	customers repository.CustomerRepository
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, customers repository.CustomerRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, customers: customers}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("Invalid authentication credentials")
	}

	customer, err := m.customers.GetByEmail(c.Context(), claims.Subject)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("User", nil)
		}
		return apperrors.MapError(err)
	}

	c.Locals(principalKey, &Principal{Customer: customer})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated customer.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
