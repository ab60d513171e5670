package models

import "fmt"

// CartItem is a product plus the quantity and size variant the user picked.
// Price on the embedded Product is the effective price: the size's price when
// a size was chosen, otherwise the base price.
type CartItem struct {
	Product
	Quantity     int         `json:"quantity"`
	SelectedSize *SizeOption `json:"selected_size,omitempty"`
}

// Key is the composite identity of a cart line: product id plus the chosen
// size label. Two lines never share a key.
func (i CartItem) Key() string {
	return CartKey(i.ID, i.SizeLabel())
}

func (i CartItem) SizeLabel() string {
	if i.SelectedSize != nil {
		return i.SelectedSize.Label
	}
	return ""
}

func CartKey(productID, sizeLabel string) string {
	return productID + "|" + sizeLabel
}

// Totals carries unrounded money amounts. Rounding happens only at display.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Tip      float64 `json:"tip"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// DisplayTotals is Totals formatted to two decimal places for presentation.
type DisplayTotals struct {
	Subtotal string `json:"subtotal"`
	Tax      string `json:"tax"`
	Tip      string `json:"tip"`
	Discount string `json:"discount"`
	Total    string `json:"total"`
}

func (t Totals) Display() DisplayTotals {
	return DisplayTotals{
		Subtotal: money(t.Subtotal),
		Tax:      money(t.Tax),
		Tip:      money(t.Tip),
		Discount: money(t.Discount),
		Total:    money(t.Total),
	}
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
