package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sparksonic/portal/internal/auth"
	"github.com/sparksonic/portal/internal/config"
	"github.com/sparksonic/portal/internal/domain"
	"github.com/sparksonic/portal/internal/events"
	"github.com/sparksonic/portal/internal/repository"
)

// ErrEmailTaken is returned when registering with an existing email.
var ErrEmailTaken = errors.New("Email already registered")

// ErrInvalidCredentials is returned on failed login.
var ErrInvalidCredentials = errors.New("Invalid credentials")

// AuthService coordinates registration and login flows.
type AuthService struct {
	customers  repository.CustomerRepository
	dispatcher events.Dispatcher
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, customers repository.CustomerRepository, dispatcher events.Dispatcher) *AuthService {
	return &AuthService{
		customers:  customers,
		dispatcher: dispatcher,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Register creates a new customer account and returns its customer identifier.
// No token is issued; the customer logs in explicitly afterwards.
func (s *AuthService) Register(ctx context.Context, email, password, fullName string, phone *string) (*domain.Customer, error) {
	if _, err := s.customers.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if err != nil && err != pgx.ErrNoRows {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	customer := &domain.Customer{
		CustomerID:   NewCustomerID(),
		FullName:     fullName,
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventCustomerRegistered, events.CustomerRegisteredPayload{
		CustomerID: customer.CustomerID,
		FullName:   customer.FullName,
		Email:      customer.Email,
	})
	return customer, nil
}

// Login authenticates a customer and issues an access token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Customer, string, time.Time, error) {
	customer, err := s.customers.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", time.Time{}, ErrInvalidCredentials
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(customer.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	token, exp, err := s.tokenMgr.GenerateToken(customer.Email, customer.CustomerID)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return customer, token, exp, nil
}

// Profile returns the account record for the given email.
func (s *AuthService) Profile(ctx context.Context, email string) (*domain.Customer, error) {
	return s.customers.GetByEmail(ctx, email)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}

// NewCustomerID generates a short public customer identifier.
func NewCustomerID() string {
	return "CUST-" + shortID()
}

func shortID() string {
	return strings.ToUpper(uuid.NewString()[:8])
}
