package portal

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ViewState is the portal's top-level view.
type ViewState string

const (
	StateLoading   ViewState = "loading"
	StateLogin     ViewState = "login"
	StateRegister  ViewState = "register"
	StateDashboard ViewState = "dashboard"
)

// Tab selects the active dashboard panel.
type Tab string

const (
	TabDashboard Tab = "dashboard"
	TabQuotes    Tab = "quotes"
	TabTickets   Tab = "tickets"
)

// errDisplayDuration is how long transient inline errors stay visible.
const errDisplayDuration = 5 * time.Second

// API is the backend surface the controller drives.
type API interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterResult, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Profile(ctx context.Context) (*Profile, error)
	UserQuotes(ctx context.Context) ([]Quote, error)
	UserTickets(ctx context.Context) ([]Ticket, error)
	CreateTicket(ctx context.Context, input TicketInput) (*TicketResult, error)
}

// LoginForm holds the login inputs.
type LoginForm struct {
	Email    string
	Password string
}

// RegisterForm holds the registration inputs.
type RegisterForm struct {
	Email    string
	Password string
	FullName string
	Phone    string
}

// TicketForm holds the new-ticket inputs.
type TicketForm struct {
	Subject     string
	Description string
	Priority    string
}

// defaultTicketForm is the reset state after a successful submission.
func defaultTicketForm() TicketForm {
	return TicketForm{Priority: "medium"}
}

// Controller owns the portal's client-side session state: the view machine,
// the stored token, and the account-scoped data loaded after authentication.
type Controller struct {
	api    API
	store  SessionStore
	logger *zap.Logger

	mu      sync.Mutex
	state   ViewState
	tab     Tab
	loading bool
	sending bool

	profile *Profile
	quotes  []Quote
	tickets []Ticket

	LoginForm    LoginForm
	RegisterForm RegisterForm
	TicketForm   TicketForm

	authErr  string
	notice   string
	errEpoch int
}

// NewController builds a controller in the initial loading state.
func NewController(api API, store SessionStore, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		api:        api,
		store:      store,
		logger:     logger,
		state:      StateLoading,
		tab:        TabDashboard,
		TicketForm: defaultTicketForm(),
	}
}

// State returns the current view state.
func (c *Controller) State() ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// ActiveTab returns the selected dashboard tab.
func (c *Controller) ActiveTab() Tab {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tab
}

// SelectTab switches the dashboard tab.
func (c *Controller) SelectTab(tab Tab) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tab = tab
}

// Loading reports whether a bootstrap is in flight.
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Sending reports whether a form submission is in flight.
func (c *Controller) Sending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sending
}

// Profile returns the loaded account record, nil when unauthenticated.
func (c *Controller) Profile() *Profile {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.profile
}

// Quotes returns the loaded quote list.
func (c *Controller) Quotes() []Quote {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.quotes
}

// Tickets returns the loaded ticket list.
func (c *Controller) Tickets() []Ticket {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tickets
}

// RecentQuotes returns at most n quotes for the summary panel.
func (c *Controller) RecentQuotes(n int) []Quote {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.quotes) <= n {
		return c.quotes
	}
	return c.quotes[:n]
}

// RecentTickets returns at most n tickets for the summary panel.
func (c *Controller) RecentTickets(n int) []Ticket {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.tickets) <= n {
		return c.tickets
	}
	return c.tickets[:n]
}

// AuthError returns the current inline error message, if any.
func (c *Controller) AuthError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.authErr
}

// Notice returns the persistent success banner, if any.
func (c *Controller) Notice() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.notice
}

// ShowRegister switches to the registration view.
func (c *Controller) ShowRegister() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateRegister
	c.authErr = ""
}

// ShowLogin switches to the login view.
func (c *Controller) ShowLogin() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateLogin
	c.authErr = ""
}

// CheckAuth is the bootstrap: it derives the view state from the stored
// token. With no token it lands on login without touching the network; with
// one it verifies the profile and either enters the dashboard (loading
// dependent data) or purges the token and falls back to login.
func (c *Controller) CheckAuth(ctx context.Context) {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.loading = false
		c.mu.Unlock()
	}()

	token, ok := c.store.Token()
	if !ok || token == "" {
		c.mu.Lock()
		c.state = StateLogin
		c.mu.Unlock()
		return
	}

	profile, err := c.api.Profile(ctx)
	if err != nil {
		// Any failure counts as an invalid session, including transient
		// network errors.
		c.logger.Warn("profile verification failed, purging token", zap.Error(err))
		if clearErr := c.store.Clear(); clearErr != nil {
			c.logger.Warn("token clear failed", zap.Error(clearErr))
		}
		c.mu.Lock()
		c.profile = nil
		c.state = StateLogin
		c.mu.Unlock()
		return
	}

	c.mu.Lock()
	c.profile = profile
	c.state = StateDashboard
	c.mu.Unlock()

	c.LoadData(ctx)
}

// LoadData fetches the customer's quotes and tickets concurrently. Each list
// is updated as its own fetch completes; a failure on one side leaves that
// list at its previous value and never changes the view state.
func (c *Controller) LoadData(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		quotes, err := c.api.UserQuotes(ctx)
		if err != nil {
			c.logger.Warn("quotes load failed", zap.Error(err))
			return
		}
		c.mu.Lock()
		c.quotes = quotes
		c.mu.Unlock()
	}()

	go func() {
		defer wg.Done()
		tickets, err := c.api.UserTickets(ctx)
		if err != nil {
			c.logger.Warn("tickets load failed", zap.Error(err))
			return
		}
		c.mu.Lock()
		c.tickets = tickets
		c.mu.Unlock()
	}()

	wg.Wait()
}

// Login validates the form, exchanges credentials for a token, persists it
// and re-runs the bootstrap so profile and data load through one code path.
func (c *Controller) Login(ctx context.Context) {
	c.mu.Lock()
	form := c.LoginForm
	c.mu.Unlock()

	if form.Email == "" || form.Password == "" {
		c.setAuthError("Email and password are required")
		return
	}

	c.setSending(true)
	defer c.setSending(false)

	result, err := c.api.Login(ctx, form.Email, form.Password)
	if err != nil {
		c.setAuthError(ErrorMessage(err))
		return
	}
	if err := c.store.SetToken(result.AccessToken); err != nil {
		c.logger.Error("token persist failed", zap.Error(err))
		c.setAuthError(genericFailure)
		return
	}

	c.mu.Lock()
	c.authErr = ""
	c.notice = ""
	c.LoginForm = LoginForm{}
	c.mu.Unlock()

	c.CheckAuth(ctx)
}

// Register creates an account. On success the controller returns to the
// login view with the email pre-filled and a banner carrying the customer
// identifier; the customer signs in explicitly.
func (c *Controller) Register(ctx context.Context) {
	c.mu.Lock()
	form := c.RegisterForm
	c.mu.Unlock()

	if form.Email == "" || form.Password == "" || form.FullName == "" {
		c.setAuthError("Email, password and full name are required")
		return
	}
	if len(form.Password) < 6 {
		c.setAuthError("Password must be at least 6 characters")
		return
	}

	c.setSending(true)
	defer c.setSending(false)

	result, err := c.api.Register(ctx, RegisterInput{
		Email:    form.Email,
		Password: form.Password,
		FullName: form.FullName,
		Phone:    form.Phone,
	})
	if err != nil {
		c.setAuthError(ErrorMessage(err))
		return
	}

	c.mu.Lock()
	c.state = StateLogin
	c.authErr = ""
	c.notice = "Registration successful! Your Customer ID: " + result.CustomerID + ". Please login with your email and password."
	c.LoginForm = LoginForm{Email: form.Email}
	c.RegisterForm = RegisterForm{}
	c.mu.Unlock()
}

// Logout purges the token and all account-scoped state. No network call.
func (c *Controller) Logout() {
	if err := c.store.Clear(); err != nil {
		c.logger.Warn("token clear failed", zap.Error(err))
	}
	c.mu.Lock()
	c.profile = nil
	c.quotes = nil
	c.tickets = nil
	c.state = StateLogin
	c.tab = TabDashboard
	c.notice = ""
	c.authErr = ""
	c.mu.Unlock()
}

// CreateTicket submits the ticket form. On success the form resets and the
// data load re-runs so the new ticket appears; on failure the form keeps its
// values for retry.
func (c *Controller) CreateTicket(ctx context.Context) {
	c.mu.Lock()
	form := c.TicketForm
	c.mu.Unlock()

	if form.Subject == "" || form.Description == "" {
		c.setAuthError("Subject and description are required")
		return
	}

	c.setSending(true)
	defer c.setSending(false)

	if _, err := c.api.CreateTicket(ctx, TicketInput{
		Subject:     form.Subject,
		Description: form.Description,
		Priority:    form.Priority,
	}); err != nil {
		c.setAuthError(ErrorMessage(err))
		return
	}

	c.mu.Lock()
	c.TicketForm = defaultTicketForm()
	c.notice = "Ticket created successfully!"
	c.mu.Unlock()

	c.LoadData(ctx)
}

// ClearTransient drops the inline error message.
func (c *Controller) ClearTransient() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.authErr = ""
}

func (c *Controller) setSending(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sending = v
}

// setAuthError installs a transient error that clears itself unless a newer
// message replaced it in the meantime.
func (c *Controller) setAuthError(msg string) {
	c.mu.Lock()
	c.authErr = msg
	c.errEpoch++
	epoch := c.errEpoch
	c.mu.Unlock()

	time.AfterFunc(errDisplayDuration, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.errEpoch == epoch {
			c.authErr = ""
		}
	})
}
