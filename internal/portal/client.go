package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// genericFailure is shown when the backend gives no structured error payload.
const genericFailure = "Request failed. Please try again."

// TokenFunc supplies the bearer token at request-issue time.
type TokenFunc func() (string, bool)

// APIError carries a backend rejection with its user-facing message.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Detail)
}

// MalformedResponseError reports a success payload that failed to parse or
// was missing required fields.
type MalformedResponseError struct {
	Endpoint string
	Err      error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response from %s: %v", e.Endpoint, e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// Profile is the authenticated customer's account record.
type Profile struct {
	CustomerID string  `json:"customer_id"`
	FullName   string  `json:"full_name"`
	Email      string  `json:"email"`
	Phone      *string `json:"phone,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

func (p *Profile) validate() error {
	if p.CustomerID == "" || p.FullName == "" || p.Email == "" {
		return fmt.Errorf("missing customer_id, full_name or email")
	}
	return nil
}

// Quote is a service-cost estimate record.
type Quote struct {
	ID          string `json:"id"`
	QuoteID     string `json:"quote_id"`
	Service     string `json:"service"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

// Ticket is a customer support request record.
type Ticket struct {
	ID          string `json:"id"`
	TicketID    string `json:"ticket_id"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

// RegisterInput carries the registration form.
type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
}

// RegisterResult is the backend acknowledgement of a new account.
type RegisterResult struct {
	Message    string `json:"message"`
	CustomerID string `json:"customer_id"`
}

// LoginResult carries the issued bearer token.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	CustomerID  string `json:"customer_id"`
	FullName    string `json:"full_name"`
}

// TicketInput carries the ticket creation form.
type TicketInput struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// TicketResult acknowledges a created ticket.
type TicketResult struct {
	Message  string `json:"message"`
	TicketID string `json:"ticket_id"`
}

// QuoteInput carries the public quote request form.
type QuoteInput struct {
	Service       string `json:"service"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	PreferredDate string `json:"preferred_date,omitempty"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
}

// QuoteResult acknowledges a created quote request.
type QuoteResult struct {
	Message string `json:"message"`
	QuoteID string `json:"quote_id"`
}

// ContactInput carries the public contact form.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
	Service string `json:"service,omitempty"`
}

// ReviewSummary aggregates the public company rating.
type ReviewSummary struct {
	Rating       float64 `json:"rating"`
	TotalReviews int     `json:"total_reviews"`
	Reviews      []struct {
		AuthorName string `json:"author_name"`
		Rating     int    `json:"rating"`
		Text       string `json:"text"`
		Time       string `json:"time"`
	} `json:"reviews"`
}

// Client is a typed REST client for the portal backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      TokenFunc
}

// NewClient builds a client rooted at baseURL. token supplies the bearer
// credential for authenticated endpoints; it may be nil for public use.
func NewClient(baseURL string, timeout time.Duration, token TokenFunc) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		token:      token,
	}
}

// Register creates a new account. Public endpoint.
func (c *Client) Register(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	var result RegisterResult
	if err := c.do(ctx, http.MethodPost, "/auth/register", input, &result); err != nil {
		return nil, err
	}
	if result.CustomerID == "" {
		return nil, &MalformedResponseError{Endpoint: "/auth/register", Err: fmt.Errorf("missing customer_id")}
	}
	return &result, nil
}

// Login authenticates and returns the issued token. Public endpoint.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	payload := map[string]string{"email": email, "password": password}
	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", payload, &result); err != nil {
		return nil, err
	}
	if result.AccessToken == "" {
		return nil, &MalformedResponseError{Endpoint: "/auth/login", Err: fmt.Errorf("missing access_token")}
	}
	return &result, nil
}

// Profile fetches the authenticated account record.
func (c *Client) Profile(ctx context.Context) (*Profile, error) {
	var profile Profile
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &profile); err != nil {
		return nil, err
	}
	if err := profile.validate(); err != nil {
		return nil, &MalformedResponseError{Endpoint: "/auth/me", Err: err}
	}
	return &profile, nil
}

// UserQuotes lists the caller's quote requests.
func (c *Client) UserQuotes(ctx context.Context) ([]Quote, error) {
	var quotes []Quote
	if err := c.do(ctx, http.MethodGet, "/quotes/user", nil, &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}

// UserTickets lists the caller's support tickets.
func (c *Client) UserTickets(ctx context.Context) ([]Ticket, error) {
	var tickets []Ticket
	if err := c.do(ctx, http.MethodGet, "/tickets/user", nil, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

// CreateTicket opens a support ticket for the authenticated customer.
func (c *Client) CreateTicket(ctx context.Context, input TicketInput) (*TicketResult, error) {
	var result TicketResult
	if err := c.do(ctx, http.MethodPost, "/tickets", input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateQuote submits a public quote request.
func (c *Client) CreateQuote(ctx context.Context, input QuoteInput) (*QuoteResult, error) {
	var result QuoteResult
	if err := c.do(ctx, http.MethodPost, "/quotes", input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SubmitContact submits the public contact form.
func (c *Client) SubmitContact(ctx context.Context, input ContactInput) error {
	return c.do(ctx, http.MethodPost, "/contact", input, nil)
}

// Reviews fetches the public review summary.
func (c *Client) Reviews(ctx context.Context) (*ReviewSummary, error) {
	var summary ReviewSummary
	if err := c.do(ctx, http.MethodGet, "/reviews", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != nil {
		if token, ok := c.token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Detail: errorDetail(resp.Body)}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &MalformedResponseError{Endpoint: path, Err: err}
	}
	return nil
}

// errorDetail extracts the backend's detail message, falling back to a
// generic one when the payload is absent or unstructured.
func errorDetail(body io.Reader) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}
	return genericFailure
}

// ErrorMessage returns the user-facing message for err.
func ErrorMessage(err error) string {
	if apiErr, ok := err.(*APIError); ok && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return genericFailure
}
