package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ebelene1994/Presto-Pizza/internal/flow"
	"github.com/Ebelene1994/Presto-Pizza/internal/payment"
	"github.com/Ebelene1994/Presto-Pizza/internal/session"
	"github.com/Ebelene1994/Presto-Pizza/models"
)

func newTestRouter(sessions *session.Manager, processor *payment.Processor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router, sessions,
		NewMenuHandler(), NewCartHandler(), NewCheckoutHandler(processor),
		NewAuthHandler(nil, nil, nil, sessions), NewFormsHandler(nil),
		NewContentHandler(), NewNavigationHandler())
	return router
}

func doJSON(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("X-Session-Token", token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

type cartResponse struct {
	Items        []models.CartItem    `json:"items"`
	PromoApplied bool                 `json:"promo_applied"`
	TipRate      float64              `json:"tip_rate"`
	Totals       models.Totals        `json:"totals"`
	Display      models.DisplayTotals `json:"display_totals"`
	Toast        string               `json:"toast"`
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) cartResponse {
	t.Helper()
	var resp cartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func signedInSession(sessions *session.Manager) *session.Session {
	return sessions.Create(models.User{
		ID:    "user-1",
		Name:  "Dana",
		Email: "dana@example.com",
	})
}

func TestCartRequiresSession(t *testing.T) {
	sessions := session.NewManager()
	router := newTestRouter(sessions, payment.NewProcessorWithDelay(time.Millisecond))

	w := doJSON(router, http.MethodPost, "/api/v1/cart/items", "", gin.H{"product_id": "p1"})

	require.Equal(t, http.StatusUnauthorized, w.Code)
	body := decode(t, w)
	assert.Equal(t, flow.ToastLoginRequired, body["error"])
	assert.Equal(t, "login", body["redirect"])
}

func TestAddItemMergesByProductAndSize(t *testing.T) {
	sessions := session.NewManager()
	router := newTestRouter(sessions, payment.NewProcessorWithDelay(time.Millisecond))
	s := signedInSession(sessions)

	w := doJSON(router, http.MethodPost, "/api/v1/cart/items", s.Token, gin.H{"product_id": "p1", "size_label": "M"})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeCart(t, w)
	assert.Equal(t, "Added Margherita Classico to cart!", resp.Toast)

	w = doJSON(router, http.MethodPost, "/api/v1/cart/items", s.Token, gin.H{"product_id": "p1", "size_label": "M"})
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeCart(t, w)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 2, resp.Items[0].Quantity)

	w = doJSON(router, http.MethodPost, "/api/v1/cart/items", s.Token, gin.H{"product_id": "p1", "size_label": "L"})
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeCart(t, w)
	assert.Len(t, resp.Items, 2)
}

func TestAddItemValidation(t *testing.T) {
	sessions := session.NewManager()
	router := newTestRouter(sessions, payment.NewProcessorWithDelay(time.Millisecond))
	s := signedInSession(sessions)

	w := doJSON(router, http.MethodPost, "/api/v1/cart/items", s.Token, gin.H{"product_id": "nope"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, http.MethodPost, "/api/v1/cart/items", s.Token, gin.H{"product_id": "p1", "size_label": "XXL"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPost, "/api/v1/cart/items", s.Token, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateQuantityFloorsAtOne(t *testing.T) {
	sessions := session.NewManager()
	router := newTestRouter(sessions, payment.NewProcessorWithDelay(time.Millisecond))
	s := signedInSession(sessions)

	doJSON(router, http.MethodPost, "/api/v1/cart/items", s.Token, gin.H{"product_id": "p1", "size_label": "M"})

	w := doJSON(router, http.MethodPatch, "/api/v1/cart/items", s.Token, gin.H{"product_id": "p1", "size_label": "M", "delta": -5})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeCart(t, w)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 1, resp.Items[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	sessions := session.NewManager()
	router := newTestRouter(sessions, payment.NewProcessorWithDelay(time.Millisecond))
	s := signedInSession(sessions)

	doJSON(router, http.MethodPost, "/api/v1/cart/items", s.Token, gin.H{"product_id": "p1", "size_label": "M"})
	doJSON(router, http.MethodPost, "/api/v1/cart/items", s.Token, gin.H{"product_id": "s1"})

	w := doJSON(router, http.MethodDelete, "/api/v1/cart/items/p1?size=M", s.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeCart(t, w)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "s1", resp.Items[0].ID)
}

func TestPromoAndTip(t *testing.T) {
	sessions := session.NewManager()
	router := newTestRouter(sessions, payment.NewProcessorWithDelay(time.Millisecond))
	s := signedInSession(sessions)

	doJSON(router, http.MethodPost, "/api/v1/cart/items", s.Token, gin.H{"product_id": "p1", "size_label": "M"})

	w := doJSON(router, http.MethodPost, "/api/v1/cart/promo", s.Token, gin.H{"code": "NOPE"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPost, "/api/v1/cart/promo", s.Token, gin.H{"code": "SAVE15"})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeCart(t, w)
	assert.True(t, resp.PromoApplied)

	w = doJSON(router, http.MethodPut, "/api/v1/cart/tip", s.Token, gin.H{"rate": 0.5})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPut, "/api/v1/cart/tip", s.Token, gin.H{"rate": 0.0})
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeCart(t, w)
	assert.Zero(t, resp.TipRate)
	assert.Zero(t, resp.Totals.Tip)
}

func TestMenuEndpoints(t *testing.T) {
	sessions := session.NewManager()
	router := newTestRouter(sessions, payment.NewProcessorWithDelay(time.Millisecond))

	w := doJSON(router, http.MethodGet, "/api/v1/menu?category=pizza", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	data := body["data"].([]any)
	assert.Len(t, data, 8)

	w = doJSON(router, http.MethodGet, "/api/v1/menu?category=sushi", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/menu?limit=2&offset=1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Len(t, body["data"].([]any), 2)

	w = doJSON(router, http.MethodGet, "/api/v1/menu/p1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/menu/zzz", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestContentEndpoints(t *testing.T) {
	sessions := session.NewManager()
	router := newTestRouter(sessions, payment.NewProcessorWithDelay(time.Millisecond))

	w := doJSON(router, http.MethodGet, "/api/v1/locations", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/locations/loc1", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/locations/nowhere", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/careers/jobs", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.NotEmpty(t, body["data"])
	assert.NotEmpty(t, body["testimonials"])
}

func TestNavigateGuards(t *testing.T) {
	sessions := session.NewManager()
	router := newTestRouter(sessions, payment.NewProcessorWithDelay(time.Millisecond))

	w := doJSON(router, http.MethodPost, "/api/v1/navigate", "", gin.H{"to": "dashboard"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "login", body["page"])
	assert.Equal(t, true, body["redirected"])
	assert.Equal(t, flow.ToastLoginRequired, body["toast"])

	s := signedInSession(sessions)
	w = doJSON(router, http.MethodPost, "/api/v1/navigate", s.Token, gin.H{"to": "login"})
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, "home", body["page"])
	assert.Equal(t, true, body["redirected"])

	s.Lock()
	assert.Equal(t, flow.PageHome, s.Page)
	s.Unlock()

	w = doJSON(router, http.MethodPost, "/api/v1/navigate", s.Token, gin.H{"to": "elsewhere"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStartOrder(t *testing.T) {
	sessions := session.NewManager()
	router := newTestRouter(sessions, payment.NewProcessorWithDelay(time.Millisecond))

	w := doJSON(router, http.MethodPost, "/api/v1/start-order", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "login", body["page"])
	assert.Equal(t, flow.ToastLoginRequired, body["toast"])

	s := signedInSession(sessions)
	w = doJSON(router, http.MethodPost, "/api/v1/start-order", s.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, "order-setup", body["page"])

	s.Lock()
	s.OrderInfo = &models.OrderInfo{Method: models.MethodPickup, StoreID: "loc1"}
	s.Unlock()

	w = doJSON(router, http.MethodPost, "/api/v1/start-order", s.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, "menu", body["page"])
	assert.Equal(t, false, body["redirected"])
}
