package models

import "time"

// User is the signed-in identity attached to a session.
type User struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	PhotoURL      string `json:"photo_url,omitempty"`
	Role          string `json:"role,omitempty"`
	Provider      string `json:"provider,omitempty"`
	EmailVerified bool   `json:"email_verified"`
}

// UserProfile is the document persisted per user, keyed by the identity
// provider's uid.
type UserProfile struct {
	UID       string    `json:"uid" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	PhotoURL  string    `json:"photo_url,omitempty" bson:"photo_url,omitempty"`
	Role      string    `json:"role" bson:"role"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
