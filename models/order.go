package models

import "time"

type OrderMethod string

const (
	MethodDelivery OrderMethod = "delivery"
	MethodPickup   OrderMethod = "pickup"
)

type DeliveryAddress struct {
	Street       string `json:"street" binding:"required"`
	City         string `json:"city" binding:"required"`
	Zip          string `json:"zip" binding:"required"`
	Instructions string `json:"instructions,omitempty"`
}

type ContactInfo struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// OrderInfo is captured once during order setup and carried read-only into
// checkout and tracking. Delivery orders carry an address, pickup orders a
// store id.
type OrderInfo struct {
	Method  OrderMethod      `json:"method" binding:"required,oneof=delivery pickup"`
	Address *DeliveryAddress `json:"address,omitempty"`
	StoreID string           `json:"store_id,omitempty"`
	Contact ContactInfo      `json:"contact" binding:"required"`
}

const (
	// TrackingStepCount is the number of fulfillment stages an order moves
	// through after placement.
	TrackingStepCount = 5

	// StepInterval is how long the simulated kitchen spends on each stage.
	StepInterval = 5 * time.Second

	// EstimatedWait is the countdown shown on the tracking view.
	EstimatedWait = 30 * time.Minute
)

// Order exists only for the lifetime of the session that placed it; there is
// no server-side order persistence.
type Order struct {
	ID       string     `json:"id"`
	Number   string     `json:"order_number"`
	UserID   string     `json:"user_id"`
	Items    []CartItem `json:"items"`
	Info     OrderInfo  `json:"info"`
	Totals   Totals     `json:"totals"`
	PlacedAt time.Time  `json:"placed_at"`
}

// Progress reports the 1-based tracking stage reached by now.
func (o *Order) Progress(now time.Time) int {
	elapsed := now.Sub(o.PlacedAt)
	if elapsed < 0 {
		return 1
	}
	step := 1 + int(elapsed/StepInterval)
	if step > TrackingStepCount {
		step = TrackingStepCount
	}
	return step
}

// TimeLeft is the remaining estimated wait, floored at zero.
func (o *Order) TimeLeft(now time.Time) time.Duration {
	left := EstimatedWait - now.Sub(o.PlacedAt)
	if left < 0 {
		return 0
	}
	return left
}

// Steps returns the stage labels; the final stage depends on the fulfillment
// method.
func (o *Order) Steps() []string {
	last := "Ready for Pickup"
	if o.Info.Method == MethodDelivery {
		last = "Out for Delivery"
	}
	return []string{"Order Placed", "Preparing", "Baking", "Quality Check", last}
}
