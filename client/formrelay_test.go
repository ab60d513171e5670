package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitSendsFormFieldsWithAccessKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "relay-key", r.PostForm.Get("access_key"))
		assert.Equal(t, "John Rossi", r.PostForm.Get("name"))
		assert.Equal(t, "Hello", r.PostForm.Get("message"))
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "message": "Email sent"}`))
	}))
	defer srv.Close()

	c := NewFormRelayClient(srv.URL, "relay-key")
	resp, err := c.Submit(context.Background(), map[string]string{
		"name":    "John Rossi",
		"message": "Hello",
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Email sent", resp.Message)
}

func TestSubmitRelayRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": false, "message": "Invalid access key"}`))
	}))
	defer srv.Close()

	c := NewFormRelayClient(srv.URL, "bad-key")
	resp, err := c.Submit(context.Background(), map[string]string{"email": "a@b.com"})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid access key", resp.Message)
}

func TestSubmitNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewFormRelayClient(srv.URL, "relay-key")
	_, err := c.Submit(context.Background(), map[string]string{"email": "a@b.com"})
	assert.ErrorIs(t, err, ErrRelayUnavailable)
}

func TestSubmitConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewFormRelayClient(srv.URL, "relay-key")
	_, err := c.Submit(context.Background(), map[string]string{"email": "a@b.com"})
	assert.ErrorIs(t, err, ErrRelayUnavailable)
}
