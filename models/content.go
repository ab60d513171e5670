package models

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type StoreLocation struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Address     string      `json:"address"`
	Phone       string      `json:"phone"`
	Image       string      `json:"image"`
	Hours       string      `json:"hours"`
	Features    []string    `json:"features"`
	Coordinates Coordinates `json:"coordinates"`
	Distance    string      `json:"distance,omitempty"`
}

type JobPosition struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Type         string   `json:"type"`
	Location     string   `json:"location"`
	Salary       string   `json:"salary"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
}

type BlogPost struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	Date     string   `json:"date"`
	ReadTime string   `json:"read_time"`
	Category string   `json:"category"`
	Image    string   `json:"image"`
	Author   string   `json:"author"`
	Tags     []string `json:"tags"`
}

type EmployeeTestimonial struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Image string `json:"image"`
	Quote string `json:"quote"`
}

type GiftCardTheme struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}
