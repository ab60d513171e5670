// Package catalog is the static product and content catalog. Everything here
// is fixed at compile time and served read-only; there is no inventory or
// pricing engine behind it.
package catalog

import "github.com/Ebelene1994/Presto-Pizza/models"

var Pizzas = []models.Product{
	{
		ID:          "p1",
		Name:        "Margherita Classico",
		Description: "Fresh basil, mozzarella di bufala, tomato sauce.",
		Price:       12.99,
		Rating:      4.8,
		Category:    models.CategoryPizza,
		Image:       "https://images.unsplash.com/photo-1574071318508-1cdbab80d002?auto=format&fit=crop&w=500&q=80",
		Tags:        []string{"vegetarian", "nut-free"},
		Calories:    260,
		Allergens:   []string{"Gluten", "Dairy"},
		Sizes: []models.SizeOption{
			{Label: "S", Price: 12.99},
			{Label: "M", Price: 15.99},
			{Label: "L", Price: 19.99},
		},
	},
	{
		ID:          "p2",
		Name:        "Pepperoni Feast",
		Description: "Double pepperoni, extra mozzarella, signature sauce.",
		Price:       15.99,
		Rating:      4.9,
		Category:    models.CategoryPizza,
		Image:       "https://images.unsplash.com/photo-1628840042765-356cda07504e?auto=format&fit=crop&w=500&q=80",
		Tags:        []string{"nut-free"},
		Calories:    320,
		Allergens:   []string{"Gluten", "Dairy", "Pork"},
		Sizes: []models.SizeOption{
			{Label: "S", Price: 15.99},
			{Label: "M", Price: 18.99},
			{Label: "L", Price: 22.99},
		},
	},
	{
		ID:          "p3",
		Name:        "Truffle Mushroom",
		Description: "Wild mushrooms, truffle oil, parmesan, thyme.",
		Price:       18.99,
		Rating:      4.7,
		Category:    models.CategoryPizza,
		Image:       "https://images.unsplash.com/photo-1513104890138-7c749659a591?auto=format&fit=crop&w=500&q=80",
		Tags:        []string{"vegetarian", "nut-free"},
		Calories:    280,
		Allergens:   []string{"Gluten", "Dairy"},
		Sizes: []models.SizeOption{
			{Label: "S", Price: 18.99},
			{Label: "M", Price: 22.99},
			{Label: "L", Price: 26.99},
		},
	},
	{
		ID:          "p4",
		Name:        "BBQ Chicken Supreme",
		Description: "Grilled chicken, red onions, BBQ swirl, cilantro.",
		Price:       16.99,
		OldPrice:    19.99,
		Rating:      4.6,
		Category:    models.CategoryPizza,
		Image:       "https://images.unsplash.com/photo-1565299624946-b28f40a0ae38?auto=format&fit=crop&w=500&q=80",
		Tags:        []string{"nut-free"},
		Calories:    310,
		Allergens:   []string{"Gluten", "Dairy"},
		Sizes: []models.SizeOption{
			{Label: "S", Price: 16.99},
			{Label: "M", Price: 19.99},
			{Label: "L", Price: 23.99},
		},
	},
	{
		ID:          "p5",
		Name:        "Spicy Hawaiian",
		Description: "Roasted pineapple, jalapeños, ham, spicy drizzle.",
		Price:       14.99,
		Rating:      4.5,
		Category:    models.CategoryPizza,
		Image:       "https://images.unsplash.com/photo-1604382354936-07c5d9983bd3?auto=format&fit=crop&w=500&q=80",
		Tags:        []string{"spicy", "nut-free"},
		Calories:    290,
		Allergens:   []string{"Gluten", "Dairy", "Pork"},
		Sizes: []models.SizeOption{
			{Label: "S", Price: 14.99},
			{Label: "M", Price: 17.99},
			{Label: "L", Price: 21.99},
		},
	},
	{
		ID:          "p6",
		Name:        "Veggie Garden",
		Description: "Bell peppers, olives, onions, tomatoes, spinach.",
		Price:       13.99,
		Rating:      4.8,
		Category:    models.CategoryPizza,
		Image:       "https://images.unsplash.com/photo-1574071318508-1cdbab80d002?auto=format&fit=crop&w=500&q=80",
		Tags:        []string{"vegan", "vegetarian", "nut-free", "dairy-free"},
		Calories:    240,
		Allergens:   []string{"Gluten"},
		Sizes: []models.SizeOption{
			{Label: "S", Price: 13.99},
			{Label: "M", Price: 16.99},
			{Label: "L", Price: 20.99},
		},
	},
	{
		ID:          "p7",
		Name:        "Meat Lovers",
		Description: "Sausage, bacon, ham, pepperoni, beef.",
		Price:       19.99,
		Rating:      4.9,
		Category:    models.CategoryPizza,
		Image:       "https://images.unsplash.com/photo-1604382354936-07c5d9983bd3?auto=format&fit=crop&w=500&q=80",
		Tags:        []string{"nut-free"},
		Calories:    380,
		Allergens:   []string{"Gluten", "Dairy", "Pork", "Beef"},
		Sizes: []models.SizeOption{
			{Label: "S", Price: 19.99},
			{Label: "M", Price: 23.99},
			{Label: "L", Price: 28.99},
		},
	},
	{
		ID:          "p8",
		Name:        "Quattro Formaggi",
		Description: "Mozzarella, gorgonzola, parmesan, provolone.",
		Price:       15.99,
		Rating:      4.7,
		Category:    models.CategoryPizza,
		Image:       "https://images.unsplash.com/photo-1573821663912-6df460f9c684?auto=format&fit=crop&w=500&q=80",
		Tags:        []string{"vegetarian", "nut-free"},
		Calories:    330,
		Allergens:   []string{"Gluten", "Dairy"},
		Sizes: []models.SizeOption{
			{Label: "S", Price: 15.99},
			{Label: "M", Price: 18.99},
			{Label: "L", Price: 22.99},
		},
	},
}

var Sides = []models.Product{
	{
		ID:          "s1",
		Name:        "Golden Onion Rings",
		Description: "Crispy battered onion rings with ranch dip.",
		Price:       5.99,
		Rating:      4.5,
		Category:    models.CategorySide,
		Image:       "https://images.unsplash.com/photo-1639024471283-03518883512d?auto=format&fit=crop&w=500&q=80",
		Tags:        []string{"vegetarian", "nut-free"},
		Calories:    320,
		Allergens:   []string{"Gluten", "Dairy", "Egg"},
	},
	{
		ID:          "s2",
		Name:        "Truffle Fries",
		Description: "Hand-cut fries, parmesan, truffle oil.",
		Price:       6.99,
		Rating:      4.8,
		Category:    models.CategorySide,
		Image:       "https://www.runningtothekitchen.com/wp-content/uploads/2025/07/parmesan-truffle-fries-8.jpg",
		Tags:        []string{"vegetarian", "gluten-free", "nut-free"},
		Calories:    350,
		Allergens:   []string{"Dairy"},
	},
	{
		ID:          "s3",
		Name:        "Buffalo Wings (6pcs)",
		Description: "Spicy buffalo sauce, celery, blue cheese.",
		Price:       8.99,
		Rating:      4.7,
		Category:    models.CategorySide,
		Image:       "https://images.unsplash.com/photo-1567620832903-9fc6debc209f?auto=format&fit=crop&w=500&q=80",
		Tags:        []string{"spicy", "gluten-free", "nut-free"},
		Calories:    420,
		Allergens:   []string{"Dairy"},
	},
	{
		ID:          "s4",
		Name:        "Garlic Knots",
		Description: "Oven-baked dough knots with garlic butter.",
		Price:       4.99,
		Rating:      4.6,
		Category:    models.CategorySide,
		Image:       "https://images.unsplash.com/photo-1541745537411-b8046dc6d66c?auto=format&fit=crop&w=500&q=80",
		Tags:        []string{"vegetarian", "nut-free"},
		Calories:    220,
		Allergens:   []string{"Gluten", "Dairy"},
	},
}

var Pasta = []models.Product{
	{
		ID:          "pa1",
		Name:        "Fettuccine Alfredo",
		Description: "Creamy parmesan sauce over hand-made fettuccine.",
		Price:       14.99,
		Rating:      4.8,
		Category:    models.CategoryPasta,
		Image:       "https://images.unsplash.com/photo-1612874742237-6526221588e3?auto=format&fit=crop&w=500&q=80",
		Tags:        []string{"vegetarian", "nut-free"},
		Calories:    650,
		Allergens:   []string{"Gluten", "Dairy", "Egg"},
	},
}

var Salads = []models.Product{
	{
		ID:          "sa1",
		Name:        "Classic Caesar",
		Description: "Romaine lettuce, parmesan, croutons, signature Caesar dressing.",
		Price:       9.99,
		Rating:      4.7,
		Category:    models.CategorySalad,
		Image:       "https://images.unsplash.com/photo-1540189549336-e6e99c3679fe?auto=format&fit=crop&w=500&q=80",
		Tags:        []string{"vegetarian", "nut-free"},
		Calories:    280,
		Allergens:   []string{"Dairy", "Gluten", "Fish"},
	},
}

var Desserts = []models.Product{
	{
		ID:          "d1",
		Name:        "Tiramisu",
		Description: "Coffee-soaked ladyfingers with mascarpone cream.",
		Price:       7.99,
		Rating:      4.9,
		Category:    models.CategoryDessert,
		Image:       "https://images.unsplash.com/photo-1571877227200-a0d98ea607e9?auto=format&fit=crop&w=500&q=80",
		Tags:        []string{"vegetarian", "nut-free"},
		Calories:    450,
		Allergens:   []string{"Dairy", "Gluten", "Egg"},
	},
}

var Drinks = []models.Product{
	{
		ID:          "dr1",
		Name:        "San Pellegrino",
		Description: "Italian sparkling mineral water.",
		Price:       3.50,
		Rating:      4.8,
		Category:    models.CategoryDrink,
		Image:       "https://images.unsplash.com/photo-1513558161293-cdaf765ed2fd?auto=format&fit=crop&w=500&q=80",
		Tags:        []string{"vegan", "vegetarian", "gluten-free", "nut-free"},
		Calories:    0,
	},
}

// Gift cards are ordinary cart items; the denominations work like sizes.
var GiftCards = []models.Product{
	{
		ID:          "g1",
		Name:        "Presto Gift Card",
		Description: "Share a slice of happiness. Redeemable at any location.",
		Price:       25,
		Rating:      5.0,
		Category:    models.CategoryGiftCard,
		Image:       "https://images.unsplash.com/photo-1513104890138-7c749659a591?auto=format&fit=crop&w=500&q=80",
		Sizes: []models.SizeOption{
			{Label: "$25", Price: 25},
			{Label: "$50", Price: 50},
			{Label: "$100", Price: 100},
		},
	},
}

// FullMenu is every orderable product, in display order.
var FullMenu = concat(Pizzas, Sides, Pasta, Salads, Desserts, Drinks, GiftCards)

var byID = func() map[string]models.Product {
	m := make(map[string]models.Product, len(FullMenu))
	for _, p := range FullMenu {
		m[p.ID] = p
	}
	return m
}()

// ProductByID looks up a product by catalog id.
func ProductByID(id string) (models.Product, bool) {
	p, ok := byID[id]
	return p, ok
}

// ProductsByCategory filters the menu; an empty category returns everything.
func ProductsByCategory(category models.Category) []models.Product {
	if category == "" {
		return FullMenu
	}
	var out []models.Product
	for _, p := range FullMenu {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func concat(lists ...[]models.Product) []models.Product {
	var out []models.Product
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
