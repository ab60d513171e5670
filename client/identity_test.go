package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityServer(t *testing.T, status int, body any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
}

func errorBody(code string) map[string]any {
	return map[string]any{"error": map[string]any{"code": code, "message": code}}
}

func TestSignInSuccess(t *testing.T) {
	srv := identityServer(t, http.StatusOK, AuthUser{
		UID: "u1", Name: "John Rossi", Email: "john@example.com", EmailVerified: true,
	})
	defer srv.Close()

	c := NewIdentityClient(srv.URL, "test-key")
	user, err := c.SignIn(context.Background(), "john@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.UID)
	assert.True(t, user.EmailVerified)
}

func TestSignInClassifiesErrors(t *testing.T) {
	tests := []struct {
		code string
		want error
	}{
		{"INVALID_CREDENTIAL", ErrInvalidCredential},
		{"INVALID_PASSWORD", ErrInvalidCredential},
		{"EMAIL_NOT_FOUND", ErrInvalidCredential},
		{"EMAIL_NOT_VERIFIED", ErrEmailNotVerified},
		{"EMAIL_EXISTS", ErrEmailAlreadyInUse},
		{"UNAUTHORIZED_DOMAIN", ErrUnauthorizedDomain},
		{"ACCOUNT_EXISTS_WITH_DIFFERENT_CREDENTIAL", ErrAccountExistsOtherMethod},
		{"REQUIRES_RECENT_LOGIN", ErrRequiresRecentLogin},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			srv := identityServer(t, http.StatusBadRequest, errorBody(tt.code))
			defer srv.Close()

			c := NewIdentityClient(srv.URL, "test-key")
			_, err := c.SignIn(context.Background(), "john@example.com", "wrong")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUnknownErrorCodeIsUnavailable(t *testing.T) {
	srv := identityServer(t, http.StatusInternalServerError, errorBody("SOMETHING_ELSE"))
	defer srv.Close()

	c := NewIdentityClient(srv.URL, "test-key")
	_, err := c.SignIn(context.Background(), "a@b.com", "x")
	assert.ErrorIs(t, err, ErrIdentityUnavailable)
}

func TestServiceDown(t *testing.T) {
	srv := identityServer(t, http.StatusOK, AuthUser{})
	srv.Close() // immediately, so the call fails to connect

	c := NewIdentityClient(srv.URL, "test-key")
	_, err := c.SignIn(context.Background(), "a@b.com", "x")
	assert.ErrorIs(t, err, ErrIdentityUnavailable)
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "Invalid email or password. Please try again.", UserMessage(ErrInvalidCredential))
	assert.Equal(t, "This email is already registered. Please sign in instead.", UserMessage(ErrEmailAlreadyInUse))
	assert.Equal(t, "An unexpected authentication error occurred.", UserMessage(ErrIdentityUnavailable))
}
