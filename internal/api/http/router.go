package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sparksonic/portal/internal/api/http/handlers"
	"github.com/sparksonic/portal/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Quotes         *handlers.QuotesHandler
	Tickets        *handlers.TicketsHandler
	Contact        *handlers.ContactHandler
	Site           *handlers.SiteHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes under the /api prefix.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	api := app.Group("/api")

	api.Get("/health", cfg.Health.Health)
	api.Get("/health/ready", cfg.Health.Ready)

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Auth.Me)

	api.Post("/quotes", cfg.Quotes.CreateQuote)
	api.Get("/quotes/user", cfg.AuthMiddleware.Handle, cfg.Quotes.ListUserQuotes)

	api.Post("/tickets", cfg.AuthMiddleware.Handle, cfg.Tickets.CreateTicket)
	api.Get("/tickets/user", cfg.AuthMiddleware.Handle, cfg.Tickets.ListUserTickets)

	api.Post("/contact", cfg.Contact.SubmitContact)

	api.Get("/reviews", cfg.Site.GetReviews)
	api.Get("/services", cfg.Site.GetServices)
	api.Get("/projects", cfg.Site.GetProjects)
}
