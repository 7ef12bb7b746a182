package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/sparksonic/portal/internal/api/http/handlers"
	"github.com/sparksonic/portal/internal/auth"
	"github.com/sparksonic/portal/internal/config"
	"github.com/sparksonic/portal/internal/domain"
	"github.com/sparksonic/portal/internal/observability"
	"github.com/sparksonic/portal/internal/service"
)

// memCustomerRepo is a map-backed CustomerRepository for endpoint tests.
type memCustomerRepo struct {
	byEmail map[string]*domain.Customer
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{byEmail: map[string]*domain.Customer{}}
}

func (r *memCustomerRepo) Create(_ context.Context, customer *domain.Customer) error {
	r.byEmail[customer.Email] = customer
	return nil
}

func (r *memCustomerRepo) Update(_ context.Context, customer *domain.Customer) error {
	r.byEmail[customer.Email] = customer
	return nil
}

func (r *memCustomerRepo) GetByEmail(_ context.Context, email string) (*domain.Customer, error) {
	customer, ok := r.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return customer, nil
}

func (r *memCustomerRepo) GetByCustomerID(_ context.Context, customerID string) (*domain.Customer, error) {
	for _, customer := range r.byEmail {
		if customer.CustomerID == customerID {
			return customer, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type memQuoteRepo struct {
	quotes []domain.Quote
}

func (r *memQuoteRepo) Create(_ context.Context, quote *domain.Quote) error {
	r.quotes = append(r.quotes, *quote)
	return nil
}

func (r *memQuoteRepo) GetByQuoteID(_ context.Context, quoteID string) (*domain.Quote, error) {
	for i := range r.quotes {
		if r.quotes[i].QuoteID == quoteID {
			return &r.quotes[i], nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memQuoteRepo) ListByEmail(_ context.Context, email string) ([]domain.Quote, error) {
	var out []domain.Quote
	for _, quote := range r.quotes {
		if quote.Email == email {
			out = append(out, quote)
		}
	}
	return out, nil
}

type memTicketRepo struct {
	tickets []domain.Ticket
}

func (r *memTicketRepo) Create(_ context.Context, ticket *domain.Ticket) error {
	r.tickets = append(r.tickets, *ticket)
	return nil
}

func (r *memTicketRepo) GetByTicketID(_ context.Context, ticketID string) (*domain.Ticket, error) {
	for i := range r.tickets {
		if r.tickets[i].TicketID == ticketID {
			return &r.tickets[i], nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memTicketRepo) ListByCustomerEmail(_ context.Context, email string) ([]domain.Ticket, error) {
	var out []domain.Ticket
	for _, ticket := range r.tickets {
		if ticket.CustomerEmail == email {
			out = append(out, ticket)
		}
	}
	return out, nil
}

type memContactRepo struct {
	contacts []domain.ContactMessage
}

func (r *memContactRepo) Create(_ context.Context, contact *domain.ContactMessage) error {
	r.contacts = append(r.contacts, *contact)
	return nil
}

type memProjectRepo struct {
	projects []domain.Project
}

func (r *memProjectRepo) ListRecent(_ context.Context, limit int) ([]domain.Project, error) {
	if limit > len(r.projects) {
		limit = len(r.projects)
	}
	return r.projects[:limit], nil
}

type testEnv struct {
	app       *fiber.App
	customers *memCustomerRepo
	authSvc   *service.AuthService
}

func newTestApp(t *testing.T) *testEnv {
	t.Helper()

	cfg := config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret",
			AccessTokenTTLMinutes: 60,
			BcryptCost:            bcrypt.MinCost,
		},
	}
	customers := newMemCustomerRepo()
	quotes := &memQuoteRepo{}
	tickets := &memTicketRepo{}
	contacts := &memContactRepo{}
	projects := &memProjectRepo{projects: []domain.Project{
		{Title: "Warehouse solar array", Service: "solar-panels", Location: "Leeds"},
	}}

	logger := zap.NewNop()
	authSvc := service.NewAuthService(cfg, customers, nil)
	quoteSvc := service.NewQuoteService(quotes, nil)
	ticketSvc := service.NewTicketService(tickets, nil)
	contactSvc := service.NewContactService(contacts, nil)
	reviewSvc := service.NewReviewService(config.ReviewsConfig{}, nil, logger)
	projectSvc := service.NewProjectService(projects)

	app := fiber.New()
	RegisterMiddlewares(app, logger, observability.NewMetrics(), 5*time.Second)
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler("portal-test", "test", nil, nil),
		Auth:           handlers.NewAuthHandler(authSvc),
		Quotes:         handlers.NewQuotesHandler(quoteSvc),
		Tickets:        handlers.NewTicketsHandler(ticketSvc),
		Contact:        handlers.NewContactHandler(contactSvc),
		Site:           handlers.NewSiteHandler(reviewSvc, projectSvc),
		AuthMiddleware: auth.NewAuthMiddleware(authSvc.TokenManager(), customers),
	})

	return &testEnv{app: app, customers: customers, authSvc: authSvc}
}

func (e *testEnv) request(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func (e *testEnv) registerAndLogin(t *testing.T, email, password string) string {
	t.Helper()
	resp := e.request(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": email, "password": password, "full_name": "A B",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = e.request(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login struct {
		AccessToken string `json:"access_token"`
	}
	decodeBody(t, resp, &login)
	require.NotEmpty(t, login.AccessToken)
	return login.AccessToken
}

func TestRegisterEndpoint(t *testing.T) {
	env := newTestApp(t)

	resp := env.request(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": "a@b.com", "password": "secret1", "full_name": "A B",
	})

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var body struct {
		Message     string `json:"message"`
		CustomerID  string `json:"customer_id"`
		AccessToken string `json:"access_token"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "Registration successful", body.Message)
	assert.Contains(t, body.CustomerID, "CUST-")
	assert.Empty(t, body.AccessToken, "registration must not issue a token")
}

func TestRegisterEndpoint_DuplicateEmail(t *testing.T) {
	env := newTestApp(t)
	env.registerAndLogin(t, "a@b.com", "secret1")

	resp := env.request(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": "a@b.com", "password": "other11", "full_name": "A B",
	})

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body struct {
		Detail string `json:"detail"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "Email already registered", body.Detail)
}

func TestRegisterEndpoint_ShortPassword(t *testing.T) {
	env := newTestApp(t)

	resp := env.request(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": "a@b.com", "password": "short", "full_name": "A B",
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestLoginEndpoint_WrongPassword(t *testing.T) {
	env := newTestApp(t)
	env.registerAndLogin(t, "a@b.com", "secret1")

	resp := env.request(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "a@b.com", "password": "wrong",
	})

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	var body struct {
		Detail string `json:"detail"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "Invalid credentials", body.Detail)
}

func TestMeEndpoint(t *testing.T) {
	env := newTestApp(t)
	token := env.registerAndLogin(t, "a@b.com", "secret1")

	resp := env.request(t, http.MethodGet, "/api/auth/me", token, nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var profile struct {
		CustomerID string `json:"customer_id"`
		FullName   string `json:"full_name"`
		Email      string `json:"email"`
	}
	decodeBody(t, resp, &profile)
	assert.Contains(t, profile.CustomerID, "CUST-")
	assert.Equal(t, "A B", profile.FullName)
	assert.Equal(t, "a@b.com", profile.Email)
}

func TestMeEndpoint_BadToken(t *testing.T) {
	env := newTestApp(t)

	resp := env.request(t, http.MethodGet, "/api/auth/me", "not-a-real-token", nil)

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	var body struct {
		Detail string `json:"detail"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "Invalid authentication credentials", body.Detail)
}

func TestTicketEndpoints(t *testing.T) {
	env := newTestApp(t)
	token := env.registerAndLogin(t, "a@b.com", "secret1")

	resp := env.request(t, http.MethodPost, "/api/tickets", token, map[string]string{
		"subject": "No power", "description": "Breaker keeps tripping",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		Message  string `json:"message"`
		TicketID string `json:"ticket_id"`
	}
	decodeBody(t, resp, &created)
	assert.Equal(t, "Ticket created", created.Message)
	assert.Contains(t, created.TicketID, "TKT-")

	resp = env.request(t, http.MethodGet, "/api/tickets/user", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var tickets []struct {
		TicketID string `json:"ticket_id"`
		Priority string `json:"priority"`
		Status   string `json:"status"`
	}
	decodeBody(t, resp, &tickets)
	require.Len(t, tickets, 1)
	assert.Equal(t, created.TicketID, tickets[0].TicketID)
	assert.Equal(t, "medium", tickets[0].Priority)
	assert.Equal(t, "open", tickets[0].Status)
}

func TestTicketEndpoints_RequireAuth(t *testing.T) {
	env := newTestApp(t)

	resp := env.request(t, http.MethodPost, "/api/tickets", "", map[string]string{
		"subject": "No power", "description": "Breaker keeps tripping",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = env.request(t, http.MethodGet, "/api/tickets/user", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestQuoteEndpoints(t *testing.T) {
	env := newTestApp(t)
	token := env.registerAndLogin(t, "a@b.com", "secret1")

	// public lead form, no auth header
	resp := env.request(t, http.MethodPost, "/api/quotes", "", map[string]string{
		"service":     "solar-panels",
		"description": "Roof install",
		"location":    "Manchester",
		"phone":       "07000000000",
		"email":       "a@b.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		Message string `json:"message"`
		QuoteID string `json:"quote_id"`
	}
	decodeBody(t, resp, &created)
	assert.Equal(t, "Quote request submitted", created.Message)
	assert.Contains(t, created.QuoteID, "QT-")

	resp = env.request(t, http.MethodGet, "/api/quotes/user", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var quotes []struct {
		QuoteID string `json:"quote_id"`
		Status  string `json:"status"`
	}
	decodeBody(t, resp, &quotes)
	require.Len(t, quotes, 1)
	assert.Equal(t, created.QuoteID, quotes[0].QuoteID)
	assert.Equal(t, "pending", quotes[0].Status)
}

func TestQuoteEndpoint_MissingFields(t *testing.T) {
	env := newTestApp(t)

	resp := env.request(t, http.MethodPost, "/api/quotes", "", map[string]string{
		"service": "solar-panels",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestContactEndpoint(t *testing.T) {
	env := newTestApp(t)

	resp := env.request(t, http.MethodPost, "/api/contact", "", map[string]string{
		"name": "A B", "email": "a@b.com", "message": "Please call me back",
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Message string `json:"message"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "Contact form submitted successfully", body.Message)
}

func TestPublicSiteEndpoints(t *testing.T) {
	env := newTestApp(t)

	resp := env.request(t, http.MethodGet, "/api/services", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var services []struct {
		ID string `json:"id"`
	}
	decodeBody(t, resp, &services)
	assert.Len(t, services, 9)

	resp = env.request(t, http.MethodGet, "/api/reviews", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var reviews struct {
		Rating       float64 `json:"rating"`
		TotalReviews int     `json:"total_reviews"`
	}
	decodeBody(t, resp, &reviews)
	assert.Equal(t, 5.0, reviews.Rating)
	assert.Equal(t, 48, reviews.TotalReviews)

	resp = env.request(t, http.MethodGet, "/api/projects", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var projects []struct {
		Title string `json:"title"`
	}
	decodeBody(t, resp, &projects)
	require.Len(t, projects, 1)
	assert.Equal(t, "Warehouse solar array", projects[0].Title)
}

func TestHealthEndpoint(t *testing.T) {
	env := newTestApp(t)

	resp := env.request(t, http.MethodGet, "/api/health", "", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Status string `json:"status"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "healthy", body.Status)
}
