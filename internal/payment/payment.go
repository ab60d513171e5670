// Package payment simulates the payment step of checkout. There is no real
// gateway: a charge validates the card, waits a fixed delay, and reports back
// through an explicit operation state instead of ad hoc flags.
package payment

import (
	"strings"
	"time"
	"unicode"
)

type Status string

const (
	StatusIdle      Status = "idle"
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

type Method string

const (
	MethodCard   Method = "card"
	MethodApple  Method = "apple"
	MethodGoogle Method = "google"
	MethodCash   Method = "cash"
)

var ValidMethods = map[Method]bool{
	MethodCard: true, MethodApple: true, MethodGoogle: true, MethodCash: true,
}

type CardDetails struct {
	Holder string `json:"holder" binding:"required"`
	Number string `json:"number" binding:"required"`
	Expiry string `json:"expiry" binding:"required"`
	CVV    string `json:"cvv" binding:"required"`
}

type ChargeRequest struct {
	Method Method
	Card   *CardDetails
	Amount float64
}

// Result is the terminal state of a charge.
type Result struct {
	Status      Status    `json:"status"`
	Reason      string    `json:"reason,omitempty"`
	CompletedAt time.Time `json:"completed_at"`
}

// ProcessingDelay mirrors the checkout spinner duration of the storefront.
const ProcessingDelay = 2500 * time.Millisecond

type Processor struct {
	delay time.Duration
	now   func() time.Time
}

func NewProcessor() *Processor {
	return &Processor{delay: ProcessingDelay, now: time.Now}
}

// NewProcessorWithDelay is for tests that cannot wait the full delay.
func NewProcessorWithDelay(delay time.Duration) *Processor {
	return &Processor{delay: delay, now: time.Now}
}

// Charge validates the request, then delivers the outcome to done after the
// fixed delay. Card charges decline when the number fails the Luhn check or
// the expiry is past; wallet and cash charges always succeed. The decision is
// made up front but only surfaced after the delay, like a real gateway
// round-trip.
func (p *Processor) Charge(req ChargeRequest, done func(Result)) Status {
	result := Result{Status: StatusSucceeded}
	if req.Method == MethodCard {
		if reason := declineReason(req.Card, p.now()); reason != "" {
			result = Result{Status: StatusFailed, Reason: reason}
		}
	}

	time.AfterFunc(p.delay, func() {
		result.CompletedAt = p.now()
		done(result)
	})
	return StatusPending
}

func declineReason(card *CardDetails, now time.Time) string {
	if card == nil {
		return "card details required"
	}
	if !ValidCardNumber(card.Number) {
		return "card declined: invalid card number"
	}
	if !validExpiry(card.Expiry, now) {
		return "card declined: card expired"
	}
	if n := len(card.CVV); n < 3 || n > 4 {
		return "card declined: invalid security code"
	}
	return ""
}

// ValidCardNumber runs the Luhn check over the digits of the card number,
// ignoring spaces.
func ValidCardNumber(number string) bool {
	digits := strings.Map(func(r rune) rune {
		if r == ' ' {
			return -1
		}
		return r
	}, number)
	if len(digits) < 12 || len(digits) > 19 {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		r := rune(digits[i])
		if !unicode.IsDigit(r) {
			return false
		}
		d := int(r - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// validExpiry accepts MM/YY not earlier than the current month.
func validExpiry(expiry string, now time.Time) bool {
	parts := strings.Split(expiry, "/")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return false
	}
	month := atoi2(parts[0])
	year := atoi2(parts[1])
	if month < 1 || month > 12 || year < 0 {
		return false
	}
	expires := time.Date(2000+year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC)
	return now.Before(expires)
}

func atoi2(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return -1
		}
		n = n*10 + int(r-'0')
	}
	return n
}
