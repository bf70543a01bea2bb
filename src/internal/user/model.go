package user

import (
	"time"

	"bizpulse-api/src/internal/models"
)

// User is the identity record. ID is assigned by the identity provider and
// never changes once stored.
type User struct {
	ID        string    `json:"id" bson:"_id"`
	Email     string    `json:"email" bson:"email"`
	Name      string    `json:"name" bson:"name"`
	Picture   *string   `json:"picture" bson:"picture,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// FromProvider builds a new User from provider session data.
func FromProvider(data *models.ProviderSessionData, now time.Time) *User {
	u := &User{
		ID:        data.ID,
		Email:     data.Email,
		Name:      data.Name,
		CreatedAt: now,
	}
	if data.Picture != "" {
		picture := data.Picture
		u.Picture = &picture
	}
	return u
}
