package models

import "time"

// User is an externally identified principal. The ID is issued by the
// identity provider, not by this service, and is stored as-is.
type User struct {
	ID        string    `bson:"_id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	LoginAt   time.Time `bson:"login_at" json:"login_at"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	Alias     *string   `bson:"alias,omitempty" json:"alias,omitempty"`
	AvatarURL *string   `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
}
