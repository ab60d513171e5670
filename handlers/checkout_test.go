package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ebelene1994/Presto-Pizza/internal/payment"
	"github.com/Ebelene1994/Presto-Pizza/internal/session"
)

func pickupInfo() gin.H {
	return gin.H{
		"method":   "pickup",
		"store_id": "loc1",
		"contact": gin.H{
			"name":  "Dana",
			"phone": "555-0101",
			"email": "dana@example.com",
		},
	}
}

func TestSetOrderInfoValidation(t *testing.T) {
	sessions := session.NewManager()
	router := newTestRouter(sessions, payment.NewProcessorWithDelay(time.Millisecond))
	s := signedInSession(sessions)

	w := doJSON(router, http.MethodPost, "/api/v1/order/info", s.Token, gin.H{
		"method":  "delivery",
		"contact": gin.H{"name": "Dana", "phone": "555-0101", "email": "dana@example.com"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPost, "/api/v1/order/info", s.Token, gin.H{
		"method":   "pickup",
		"store_id": "nowhere",
		"contact":  gin.H{"name": "Dana", "phone": "555-0101", "email": "dana@example.com"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/order/info", s.Token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	body := decode(t, w)
	assert.Equal(t, "order-setup", body["redirect"])

	w = doJSON(router, http.MethodPost, "/api/v1/order/info", s.Token, pickupInfo())
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/order/info", s.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, "pickup", body["method"])
}

func TestPayGuards(t *testing.T) {
	sessions := session.NewManager()
	router := newTestRouter(sessions, payment.NewProcessorWithDelay(time.Millisecond))
	s := signedInSession(sessions)

	w := doJSON(router, http.MethodPost, "/api/v1/checkout/pay", s.Token, gin.H{"method": "cash"})
	assert.Equal(t, http.StatusConflict, w.Code)

	doJSON(router, http.MethodPost, "/api/v1/order/info", s.Token, pickupInfo())

	w = doJSON(router, http.MethodPost, "/api/v1/checkout/pay", s.Token, gin.H{"method": "cash"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPost, "/api/v1/checkout/pay", s.Token, gin.H{"method": "bitcoin"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPaymentSuccessPlacesOrder(t *testing.T) {
	sessions := session.NewManager()
	router := newTestRouter(sessions, payment.NewProcessorWithDelay(10*time.Millisecond))
	s := signedInSession(sessions)

	doJSON(router, http.MethodPost, "/api/v1/cart/items", s.Token, gin.H{"product_id": "p1", "size_label": "M"})
	doJSON(router, http.MethodPost, "/api/v1/order/info", s.Token, pickupInfo())

	w := doJSON(router, http.MethodPost, "/api/v1/checkout/pay", s.Token, gin.H{"method": "cash"})
	require.Equal(t, http.StatusAccepted, w.Code)
	body := decode(t, w)
	assert.Equal(t, "pending", body["status"])

	require.Eventually(t, func() bool {
		w := doJSON(router, http.MethodGet, "/api/v1/checkout/status", s.Token, nil)
		return decode(t, w)["status"] == "succeeded"
	}, time.Second, 5*time.Millisecond)

	w = doJSON(router, http.MethodGet, "/api/v1/checkout/status", s.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, "Order placed successfully!", body["toast"])
	assert.NotEmpty(t, body["order_number"])

	w = doJSON(router, http.MethodGet, "/api/v1/orders/current", s.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	steps := body["steps"].([]any)
	require.Len(t, steps, 5)
	assert.Equal(t, "Ready for Pickup", steps[4])
	assert.EqualValues(t, 1, body["progress"])

	w = doJSON(router, http.MethodGet, "/api/v1/cart", s.Token, nil)
	resp := decodeCart(t, w)
	assert.Empty(t, resp.Items)
}

func TestCardDeclineLeavesCartUntouched(t *testing.T) {
	sessions := session.NewManager()
	router := newTestRouter(sessions, payment.NewProcessorWithDelay(10*time.Millisecond))
	s := signedInSession(sessions)

	doJSON(router, http.MethodPost, "/api/v1/cart/items", s.Token, gin.H{"product_id": "p1", "size_label": "M"})
	doJSON(router, http.MethodPost, "/api/v1/order/info", s.Token, pickupInfo())

	w := doJSON(router, http.MethodPost, "/api/v1/checkout/pay", s.Token, gin.H{
		"method": "card",
		"card": gin.H{
			"holder": "Dana",
			"number": "4242424242424241",
			"expiry": "12/30",
			"cvv":    "123",
		},
	})
	require.Equal(t, http.StatusAccepted, w.Code)

	require.Eventually(t, func() bool {
		w := doJSON(router, http.MethodGet, "/api/v1/checkout/status", s.Token, nil)
		return decode(t, w)["status"] == "failed"
	}, time.Second, 5*time.Millisecond)

	w = doJSON(router, http.MethodGet, "/api/v1/checkout/status", s.Token, nil)
	body := decode(t, w)
	assert.Contains(t, body["reason"], "card declined")

	w = doJSON(router, http.MethodGet, "/api/v1/cart", s.Token, nil)
	resp := decodeCart(t, w)
	require.Len(t, resp.Items, 1)

	w = doJSON(router, http.MethodGet, "/api/v1/orders/current", s.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPayWhilePendingConflicts(t *testing.T) {
	sessions := session.NewManager()
	router := newTestRouter(sessions, payment.NewProcessorWithDelay(time.Second))
	s := signedInSession(sessions)

	doJSON(router, http.MethodPost, "/api/v1/cart/items", s.Token, gin.H{"product_id": "p1"})
	doJSON(router, http.MethodPost, "/api/v1/order/info", s.Token, pickupInfo())

	w := doJSON(router, http.MethodPost, "/api/v1/checkout/pay", s.Token, gin.H{"method": "cash"})
	require.Equal(t, http.StatusAccepted, w.Code)

	w = doJSON(router, http.MethodPost, "/api/v1/checkout/pay", s.Token, gin.H{"method": "cash"})
	assert.Equal(t, http.StatusConflict, w.Code)
}
