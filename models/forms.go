package models

// Form inputs are validated at the binding level; anything that passes is
// relayed as-is.

type ContactForm struct {
	Name    string `json:"name" form:"name" binding:"required"`
	Email   string `json:"email" form:"email" binding:"required,email"`
	Subject string `json:"subject" form:"subject" binding:"required"`
	Message string `json:"message" form:"message" binding:"required"`
}

type NewsletterForm struct {
	Email string `json:"email" form:"email" binding:"required,email"`
}

type CateringForm struct {
	Name    string `json:"name" form:"name" binding:"required"`
	Phone   string `json:"phone" form:"phone" binding:"required"`
	Email   string `json:"email" form:"email" binding:"required,email"`
	Date    string `json:"date" form:"date" binding:"required"`
	Guests  int    `json:"guests" form:"guests" binding:"required,gt=0"`
	Package string `json:"package" form:"package" binding:"required"`
	Message string `json:"message" form:"message"`
}

type FranchiseForm struct {
	Name       string `json:"name" form:"name" binding:"required"`
	Email      string `json:"email" form:"email" binding:"required,email"`
	Phone      string `json:"phone" form:"phone" binding:"required"`
	Capital    string `json:"capital" form:"capital" binding:"required"`
	Location   string `json:"location" form:"location" binding:"required"`
	Experience string `json:"experience" form:"experience"`
}

type JobApplicationForm struct {
	PositionID string `json:"position_id" form:"position_id" binding:"required"`
	Name       string `json:"name" form:"name" binding:"required"`
	Email      string `json:"email" form:"email" binding:"required,email"`
	Phone      string `json:"phone" form:"phone" binding:"required"`
	ResumeURL  string `json:"resume_url" form:"resume_url"`
}
