package handlers

import (
	"encoding/binary"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Ebelene1994/Presto-Pizza/catalog"
	"github.com/Ebelene1994/Presto-Pizza/internal/flow"
	"github.com/Ebelene1994/Presto-Pizza/internal/payment"
	"github.com/Ebelene1994/Presto-Pizza/internal/session"
	"github.com/Ebelene1994/Presto-Pizza/models"
)

// CheckoutHandler owns order setup, the simulated payment, and tracking.
type CheckoutHandler struct {
	processor *payment.Processor
}

func NewCheckoutHandler(processor *payment.Processor) *CheckoutHandler {
	return &CheckoutHandler{processor: processor}
}

// SetOrderInfo captures fulfillment details once; checkout and tracking read
// them but never write them.
func (h *CheckoutHandler) SetOrderInfo(c *gin.Context) {
	var info models.OrderInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	switch info.Method {
	case models.MethodDelivery:
		if info.Address == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Delivery orders need a delivery address"})
			return
		}
		info.StoreID = ""
	case models.MethodPickup:
		if _, ok := catalog.LocationByID(info.StoreID); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Pickup orders need a valid store id"})
			return
		}
		info.Address = nil
	}

	s, _ := currentSession(c)
	s.Lock()
	s.OrderInfo = &info
	s.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"order_info": info,
		"toast":      fmt.Sprintf("Ready for %s!", info.Method),
	})
}

func (h *CheckoutHandler) GetOrderInfo(c *gin.Context) {
	s, _ := currentSession(c)
	s.Lock()
	defer s.Unlock()
	if s.OrderInfo == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":    flow.ToastOrderInfoFirst,
			"redirect": string(flow.PageOrderSetup),
		})
		return
	}
	c.JSON(http.StatusOK, s.OrderInfo)
}

type payInput struct {
	Method payment.Method       `json:"method" binding:"required,oneof=card apple google cash"`
	Card   *payment.CardDetails `json:"card"`
}

// Pay starts the simulated charge. The response is immediate with the
// pending state; the outcome lands on the session when the processor calls
// back. A decline leaves the cart and order info untouched so the user can
// correct the card and resubmit.
func (h *CheckoutHandler) Pay(c *gin.Context) {
	var input payInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	s, _ := currentSession(c)
	s.Lock()
	defer s.Unlock()

	if s.OrderInfo == nil {
		c.JSON(http.StatusConflict, gin.H{
			"error":    flow.ToastOrderInfoFirst,
			"redirect": string(flow.PageOrderSetup),
		})
		return
	}
	if s.Cart.Len() == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
		return
	}
	if s.PaymentStatus == payment.StatusPending {
		c.JSON(http.StatusConflict, gin.H{"error": "A payment is already processing"})
		return
	}

	totals := s.Cart.Totals()
	s.PaymentStatus = h.processor.Charge(payment.ChargeRequest{
		Method: input.Method,
		Card:   input.Card,
		Amount: totals.Total,
	}, func(result payment.Result) {
		h.completePayment(s, totals, result)
	})

	c.JSON(http.StatusAccepted, gin.H{
		"status": s.PaymentStatus,
		"totals": totals.Display(),
	})
}

// completePayment runs on the processor's timer once the delay elapses.
func (h *CheckoutHandler) completePayment(s *session.Session, totals models.Totals, result payment.Result) {
	s.Lock()
	defer s.Unlock()

	s.PaymentStatus = result.Status
	s.PaymentResult = result

	if result.Status != payment.StatusSucceeded {
		log.Printf("Payment failed for user %s: %s", s.User.ID, result.Reason)
		return
	}

	order := &models.Order{
		ID:       uuid.NewString(),
		Number:   orderNumber(),
		UserID:   s.User.ID,
		Items:    s.Cart.Items(),
		Info:     *s.OrderInfo,
		Totals:   totals,
		PlacedAt: result.CompletedAt,
	}
	s.ActiveOrder = order
	s.Cart.Clear()
	s.Page = flow.PageTracking
	log.Printf("Order %s placed by user %s, total %s", order.Number, s.User.ID, totals.Display().Total)
}

func (h *CheckoutHandler) PaymentStatus(c *gin.Context) {
	s, _ := currentSession(c)
	s.Lock()
	defer s.Unlock()

	resp := gin.H{"status": s.PaymentStatus}
	if s.PaymentStatus == payment.StatusFailed {
		resp["reason"] = s.PaymentResult.Reason
	}
	if s.PaymentStatus == payment.StatusSucceeded && s.ActiveOrder != nil {
		resp["order_number"] = s.ActiveOrder.Number
		resp["toast"] = "Order placed successfully!"
	}
	c.JSON(http.StatusOK, resp)
}

// TrackOrder renders the tracking view for the session's active order.
func (h *CheckoutHandler) TrackOrder(c *gin.Context) {
	s, _ := currentSession(c)
	s.Lock()
	defer s.Unlock()

	order := s.ActiveOrder
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No active order to track"})
		return
	}

	now := time.Now()
	c.JSON(http.StatusOK, gin.H{
		"order":             order,
		"steps":             order.Steps(),
		"progress":          order.Progress(now),
		"time_left_seconds": int(order.TimeLeft(now).Seconds()),
		"display_totals":    order.Totals.Display(),
	})
}

// orderNumber is the short number shown on the tracking view, in the
// four-digit style of the storefront.
func orderNumber() string {
	u := uuid.New()
	n := binary.BigEndian.Uint16(u[0:2])%9000 + 1000
	return fmt.Sprintf("#%04d", n)
}
