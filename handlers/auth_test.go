package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ebelene1994/Presto-Pizza/client"
	"github.com/Ebelene1994/Presto-Pizza/internal/payment"
	"github.com/Ebelene1994/Presto-Pizza/internal/session"
)

func newAuthTestRouter(sessions *session.Manager, identity *client.IdentityClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router, sessions,
		NewMenuHandler(), NewCartHandler(),
		NewCheckoutHandler(payment.NewProcessorWithDelay(time.Millisecond)),
		NewAuthHandler(identity, nil, nil, sessions), NewFormsHandler(nil),
		NewContentHandler(), NewNavigationHandler())
	return router
}

func fakeIdentityServer(user client.AuthUser) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(user)
	}))
}

func TestLoginRejectsUnverifiedAccount(t *testing.T) {
	srv := fakeIdentityServer(client.AuthUser{
		UID:           "u1",
		Name:          "Dana",
		Email:         "dana@example.com",
		EmailVerified: false,
		Provider:      "password",
	})
	defer srv.Close()

	sessions := session.NewManager()
	router := newAuthTestRouter(sessions, client.NewIdentityClient(srv.URL, "test-key"))

	w := doJSON(router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "dana@example.com",
		"password": "secret",
	})

	require.Equal(t, http.StatusForbidden, w.Code)
	body := decode(t, w)
	assert.Equal(t, "verify-email", body["redirect"])
	assert.Nil(t, body["token"])
}

func TestProviderLoginRejectsUnverifiedNonFederatedAccount(t *testing.T) {
	srv := fakeIdentityServer(client.AuthUser{
		UID:           "u2",
		Email:         "dana@example.com",
		EmailVerified: false,
	})
	defer srv.Close()

	sessions := session.NewManager()
	router := newAuthTestRouter(sessions, client.NewIdentityClient(srv.URL, "test-key"))

	w := doJSON(router, http.MethodPost, "/api/v1/auth/login/provider", "", gin.H{
		"provider": "google.com",
		"id_token": "tok",
	})

	require.Equal(t, http.StatusForbidden, w.Code)
	body := decode(t, w)
	assert.Equal(t, "verify-email", body["redirect"])
}
