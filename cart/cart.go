// Package cart maintains the set of items a user intends to purchase and
// computes the money amounts shown at checkout. A ledger belongs to exactly
// one session and is mutated only under that session's lock.
package cart

import (
	"errors"
	"strings"

	"github.com/Ebelene1994/Presto-Pizza/models"
)

const (
	TaxRate   = 0.08
	PromoCode = "SAVE15"
	PromoRate = 0.15

	DefaultTipRate = 0.15
)

// TipPresets are the selectable tip rates.
var TipPresets = []float64{0, 0.10, 0.15, 0.20, 0.25}

var (
	ErrInvalidPromoCode = errors.New("invalid promo code")
	ErrInvalidTipRate   = errors.New("tip rate must be one of the presets")
)

// Ledger is an ordered collection of cart lines keyed by
// (product id, size label). No two lines share a key: adding an existing key
// increments its quantity instead of duplicating the line.
type Ledger struct {
	items        []models.CartItem
	promoApplied bool
	tipRate      float64
}

func New() *Ledger {
	return &Ledger{tipRate: DefaultTipRate}
}

// Add merges the product into the ledger. An existing line for the same
// composite key gains quantity 1; otherwise a new line is appended with the
// size's price as effective price when a size was chosen.
func (l *Ledger) Add(p models.Product, size *models.SizeOption) models.CartItem {
	key := models.CartKey(p.ID, sizeLabel(size))
	for i := range l.items {
		if l.items[i].Key() == key {
			l.items[i].Quantity++
			return l.items[i]
		}
	}

	item := models.CartItem{Product: p, Quantity: 1}
	if size != nil {
		s := *size
		item.SelectedSize = &s
		item.Price = s.Price
	}
	l.items = append(l.items, item)
	return item
}

// UpdateQuantity applies a delta to the line matching the composite key,
// flooring the result at 1. Missing keys are a no-op; dropping a line goes
// through Remove.
func (l *Ledger) UpdateQuantity(productID string, delta int, sizeLabel string) {
	key := models.CartKey(productID, sizeLabel)
	for i := range l.items {
		if l.items[i].Key() == key {
			q := l.items[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			l.items[i].Quantity = q
			return
		}
	}
}

// Remove deletes the line matching the composite key, if present.
func (l *Ledger) Remove(productID string, sizeLabel string) {
	key := models.CartKey(productID, sizeLabel)
	for i := range l.items {
		if l.items[i].Key() == key {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return
		}
	}
}

// Items returns a copy of the cart lines in insertion order.
func (l *Ledger) Items() []models.CartItem {
	out := make([]models.CartItem, len(l.items))
	copy(out, l.items)
	return out
}

func (l *Ledger) Len() int {
	return len(l.items)
}

// Clear empties the ledger but keeps the tip and promo selections.
func (l *Ledger) Clear() {
	l.items = nil
}

// ApplyPromo accepts the single valid promotional code, in any letter case,
// and rejects everything else, leaving the discount at zero.
func (l *Ledger) ApplyPromo(code string) error {
	if strings.ToUpper(code) != PromoCode {
		return ErrInvalidPromoCode
	}
	l.promoApplied = true
	return nil
}

func (l *Ledger) PromoApplied() bool {
	return l.promoApplied
}

// SetTipRate accepts only the preset rates.
func (l *Ledger) SetTipRate(rate float64) error {
	for _, preset := range TipPresets {
		if rate == preset {
			l.tipRate = rate
			return nil
		}
	}
	return ErrInvalidTipRate
}

func (l *Ledger) TipRate() float64 {
	return l.tipRate
}

// Totals derives the checkout amounts from the current lines. Values stay
// unrounded; callers round at display time only.
func (l *Ledger) Totals() models.Totals {
	var t models.Totals
	for _, item := range l.items {
		t.Subtotal += item.Price * float64(item.Quantity)
	}
	t.Tax = t.Subtotal * TaxRate
	t.Tip = t.Subtotal * l.tipRate
	if l.promoApplied {
		t.Discount = t.Subtotal * PromoRate
	}
	t.Total = t.Subtotal + t.Tax + t.Tip - t.Discount
	return t
}

func sizeLabel(size *models.SizeOption) string {
	if size != nil {
		return size.Label
	}
	return ""
}
