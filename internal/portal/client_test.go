package portal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.Handler, token string) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	tokenFn := func() (string, bool) { return token, token != "" }
	return NewClient(server.URL, time.Second, tokenFn), server
}

func TestClient_BearerHeader(t *testing.T) {
	var gotAuth string
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(Profile{CustomerID: "CUST-1", FullName: "A B", Email: "a@b.com"})
	}), "my-token")
	defer server.Close()

	_, err := client.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer my-token", gotAuth)
}

func TestClient_NoBearerWithoutToken(t *testing.T) {
	var gotAuth string
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]Quote{})
	}), "")
	defer server.Close()

	_, err := client.UserQuotes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_ErrorDetail(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid credentials"})
	}), "")
	defer server.Close()

	_, err := client.Login(context.Background(), "a@b.com", "wrong")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid credentials", apiErr.Detail)
}

func TestClient_ErrorWithoutDetail(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}), "")
	defer server.Close()

	_, err := client.UserTickets(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, genericFailure, apiErr.Detail)
}

func TestClient_MalformedProfile(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"email": "a@b.com"})
	}), "tok")
	defer server.Close()

	_, err := client.Profile(context.Background())
	var malformed *MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "/auth/me", malformed.Endpoint)
}

func TestClient_LoginMissingToken(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"customer_id": "CUST-1"})
	}), "")
	defer server.Close()

	_, err := client.Login(context.Background(), "a@b.com", "secret1")
	var malformed *MalformedResponseError
	require.ErrorAs(t, err, &malformed)
}

func TestClient_RegisterRoundTrip(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/register", r.URL.Path)
		var input RegisterInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		assert.Equal(t, "a@b.com", input.Email)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RegisterResult{Message: "Registration successful", CustomerID: "CUST-1"})
	}), "")
	defer server.Close()

	result, err := client.Register(context.Background(), RegisterInput{
		Email: "a@b.com", Password: "secret1", FullName: "A B",
	})
	require.NoError(t, err)
	assert.Equal(t, "CUST-1", result.CustomerID)
}

func TestClient_Timeout(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}), "")
	defer server.Close()

	short := NewClient(server.URL, 50*time.Millisecond, client.token)
	_, err := short.UserQuotes(context.Background())
	require.Error(t, err)
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"api error", &APIError{StatusCode: 401, Detail: "Invalid credentials"}, "Invalid credentials"},
		{"malformed", &MalformedResponseError{Endpoint: "/auth/me", Err: errors.New("bad json")}, genericFailure},
		{"transport", errors.New("connection refused"), genericFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorMessage(tt.err))
		})
	}
}
