package models

import "time"

// Session is an active login. It references the user by id and does not own it.
type Session struct {
	UserID       string    `json:"user_id" bson:"user_id"`
	SessionToken string    `json:"session_token" bson:"session_token"`
	ExpiresAt    time.Time `json:"expires_at" bson:"expires_at"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// IsActive reports whether the session is still usable at now.
func (s *Session) IsActive(now time.Time) bool {
	return now.Before(s.ExpiresAt)
}

// ProviderSessionData is what the identity provider returns for an exchange id.
type ProviderSessionData struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Picture      string `json:"picture"`
	SessionToken string `json:"session_token"`
}
