package catalog

import "github.com/Ebelene1994/Presto-Pizza/models"

var Locations = []models.StoreLocation{
	{
		ID:          "loc1",
		Name:        "Presto Downtown Main",
		Address:     "123 Broadway, New York, NY 10001",
		Phone:       "(212) 555-0123",
		Image:       "https://images.unsplash.com/photo-1524661135-423995f22d0b?auto=format&fit=crop&w=500&q=80",
		Hours:       "10:00 AM - 11:00 PM",
		Features:    []string{"Dine-In", "Takeout", "Delivery", "WiFi"},
		Coordinates: models.Coordinates{Lat: 40.7128, Lng: -74.0060},
		Distance:    "0.5 mi",
	},
	{
		ID:          "loc2",
		Name:        "Presto Brooklyn Heights",
		Address:     "456 Court St, Brooklyn, NY 11201",
		Phone:       "(718) 555-0456",
		Image:       "https://images.unsplash.com/photo-1555396273-367ea4eb4db5?auto=format&fit=crop&w=500&q=80",
		Hours:       "11:00 AM - 10:00 PM",
		Features:    []string{"Dine-In", "Takeout", "Delivery", "Outdoor Seating"},
		Coordinates: models.Coordinates{Lat: 40.6925, Lng: -73.9903},
		Distance:    "2.3 mi",
	},
}

var Jobs = []models.JobPosition{
	{
		ID:           "j1",
		Title:        "Head Pizza Chef",
		Type:         "Full-time",
		Location:     "Downtown Main",
		Salary:       "$55k - $70k",
		Description:  "We are looking for an experienced Pizza Chef to lead our kitchen operations.",
		Requirements: []string{"5+ years experience", "Food safety certified", "Strong leadership skills"},
	},
	{
		ID:           "j2",
		Title:        "Delivery Driver",
		Type:         "Part-time",
		Location:     "Brooklyn Heights",
		Salary:       "$15/hr + Tips",
		Description:  "Deliver hot, fresh pizza to our neighbors.",
		Requirements: []string{"Valid driver license", "Clean driving record", "Punctual and friendly"},
	},
}

var BlogPosts = []models.BlogPost{
	{
		ID:       "b1",
		Title:    "Secrets to the Perfect Thin Crust",
		Excerpt:  "Our head chef Elena reveals the techniques behind our world-famous crust.",
		Content:  "<p>The secret lies in the fermentation process. We let our dough rest for 48 hours...</p>",
		Date:     "Oct 12, 2024",
		ReadTime: "5 min read",
		Category: "Recipes",
		Image:    "https://images.unsplash.com/photo-1574071318508-1cdbab80d002?auto=format&fit=crop&w=800&q=80",
		Author:   "Elena Marco",
		Tags:     []string{"Pizza", "CookingTips"},
	},
}

var Testimonials = []models.EmployeeTestimonial{
	{
		ID:    "t1",
		Name:  "Marco Rossi",
		Role:  "Store Manager",
		Image: "https://images.unsplash.com/photo-1577219491135-ce391730fb2c?auto=format&fit=crop&w=400&q=80",
		Quote: "I started as a driver 5 years ago. Today I manage our flagship store.",
	},
}

var GiftCardThemes = []models.GiftCardTheme{
	{ID: "classic", Name: "Classic Presto", Image: "https://images.unsplash.com/photo-1513104890138-7c749659a591?auto=format&fit=crop&w=500&q=80"},
	{ID: "birthday", Name: "Happy Birthday", Image: "https://images.unsplash.com/photo-1555396273-367ea4eb4db5?auto=format&fit=crop&w=500&q=80"},
}

// LocationByID looks up a store by id.
func LocationByID(id string) (models.StoreLocation, bool) {
	for _, loc := range Locations {
		if loc.ID == id {
			return loc, true
		}
	}
	return models.StoreLocation{}, false
}

// JobByID looks up an open position by id.
func JobByID(id string) (models.JobPosition, bool) {
	for _, j := range Jobs {
		if j.ID == id {
			return j, true
		}
	}
	return models.JobPosition{}, false
}

// BlogPostByID looks up a post by id.
func BlogPostByID(id string) (models.BlogPost, bool) {
	for _, b := range BlogPosts {
		if b.ID == id {
			return b, true
		}
	}
	return models.BlogPost{}, false
}
