package dto

import "time"

type CreateUserRequest struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	LoginAt   *time.Time `json:"login_at,omitempty"`
	ExpiresAt time.Time  `json:"expires_at"`
	Alias     *string    `json:"alias,omitempty"`
	AvatarURL *string    `json:"avatar_url,omitempty"`
}

type UpdateUserRequest struct {
	Alias     *string    `json:"alias,omitempty"`
	AvatarURL *string    `json:"avatar_url,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	LoginAt   time.Time `json:"login_at"`
	ExpiresAt time.Time `json:"expires_at"`
	Alias     *string   `json:"alias,omitempty"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
}
