package models

type Category string

const (
	CategoryPizza    Category = "pizza"
	CategorySide     Category = "side"
	CategoryDrink    Category = "drink"
	CategoryDeal     Category = "deal"
	CategoryPasta    Category = "pasta"
	CategorySalad    Category = "salad"
	CategoryDessert  Category = "dessert"
	CategoryGiftCard Category = "gift-card"
)

// ValidCategories is the closed set accepted by menu filtering.
var ValidCategories = map[Category]bool{
	CategoryPizza:    true,
	CategorySide:     true,
	CategoryDrink:    true,
	CategoryDeal:     true,
	CategoryPasta:    true,
	CategorySalad:    true,
	CategoryDessert:  true,
	CategoryGiftCard: true,
}

// SizeOption is a price override chosen at add-to-cart time.
type SizeOption struct {
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

// Product is a static catalog entry. Catalog entries are never mutated at
// runtime; a cart line captures the price it was added at.
type Product struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       float64      `json:"price"`
	OldPrice    float64      `json:"old_price,omitempty"`
	Image       string       `json:"image"`
	Rating      float64      `json:"rating"`
	Category    Category     `json:"category"`
	Tags        []string     `json:"tags,omitempty"`
	Calories    int          `json:"calories,omitempty"`
	Allergens   []string     `json:"allergens,omitempty"`
	Sizes       []SizeOption `json:"sizes,omitempty"`
}

// SizeByLabel returns the product's size option with the given label, if any.
func (p Product) SizeByLabel(label string) *SizeOption {
	for i := range p.Sizes {
		if p.Sizes[i].Label == label {
			return &p.Sizes[i]
		}
	}
	return nil
}
