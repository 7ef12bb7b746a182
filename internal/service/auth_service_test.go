package service

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sparksonic/portal/internal/config"
	"github.com/sparksonic/portal/internal/domain"
)

type mockCustomerRepo struct {
	CreateFunc          func(ctx context.Context, customer *domain.Customer) error
	UpdateFunc          func(ctx context.Context, customer *domain.Customer) error
	GetByEmailFunc      func(ctx context.Context, email string) (*domain.Customer, error)
	GetByCustomerIDFunc func(ctx context.Context, customerID string) (*domain.Customer, error)
}

func (m *mockCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	return m.CreateFunc(ctx, customer)
}

func (m *mockCustomerRepo) Update(ctx context.Context, customer *domain.Customer) error {
	return m.UpdateFunc(ctx, customer)
}

func (m *mockCustomerRepo) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	return m.GetByEmailFunc(ctx, email)
}

func (m *mockCustomerRepo) GetByCustomerID(ctx context.Context, customerID string) (*domain.Customer, error) {
	return m.GetByCustomerIDFunc(ctx, customerID)
}

func testAuthConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret",
			AccessTokenTTLMinutes: 60,
			BcryptCost:            bcrypt.MinCost,
		},
	}
}

func TestAuthService_Register(t *testing.T) {
	var created *domain.Customer
	repo := &mockCustomerRepo{
		GetByEmailFunc: func(context.Context, string) (*domain.Customer, error) {
			return nil, pgx.ErrNoRows
		},
		CreateFunc: func(_ context.Context, customer *domain.Customer) error {
			created = customer
			return nil
		},
	}
	svc := NewAuthService(testAuthConfig(), repo, nil)

	customer, err := svc.Register(context.Background(), "a@b.com", "secret1", "A B", nil)
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.True(t, strings.HasPrefix(customer.CustomerID, "CUST-"))
	assert.Len(t, customer.CustomerID, len("CUST-")+8)
	assert.Equal(t, strings.ToUpper(customer.CustomerID), customer.CustomerID)
	assert.NotEqual(t, "secret1", customer.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte("secret1")))
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	repo := &mockCustomerRepo{
		GetByEmailFunc: func(context.Context, string) (*domain.Customer, error) {
			return &domain.Customer{Email: "a@b.com"}, nil
		},
	}
	svc := NewAuthService(testAuthConfig(), repo, nil)

	_, err := svc.Register(context.Background(), "a@b.com", "secret1", "A B", nil)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &mockCustomerRepo{
		GetByEmailFunc: func(context.Context, string) (*domain.Customer, error) {
			return &domain.Customer{
				CustomerID:   "CUST-ABCD1234",
				Email:        "a@b.com",
				FullName:     "A B",
				PasswordHash: string(hash),
			}, nil
		},
	}
	svc := NewAuthService(testAuthConfig(), repo, nil)

	customer, token, _, err := svc.Login(context.Background(), "a@b.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "CUST-ABCD1234", customer.CustomerID)

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", claims.Subject)
	assert.Equal(t, "CUST-ABCD1234", claims.CustomerID)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &mockCustomerRepo{
		GetByEmailFunc: func(context.Context, string) (*domain.Customer, error) {
			return &domain.Customer{Email: "a@b.com", PasswordHash: string(hash)}, nil
		},
	}
	svc := NewAuthService(testAuthConfig(), repo, nil)

	_, _, _, err = svc.Login(context.Background(), "a@b.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_LoginUnknownEmail(t *testing.T) {
	repo := &mockCustomerRepo{
		GetByEmailFunc: func(context.Context, string) (*domain.Customer, error) {
			return nil, pgx.ErrNoRows
		},
	}
	svc := NewAuthService(testAuthConfig(), repo, nil)

	_, _, _, err := svc.Login(context.Background(), "missing@b.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
