package dto

import "time"

// RegisterRequest describes the signup payload.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest describes the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the issued token together with the profile.
type AuthResponse struct {
	Token   string          `json:"token"`
	Profile ProfileResponse `json:"profile"`
}

// ProfileResponse is the public view of a profile.
type ProfileResponse struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	DisplayName    *string   `json:"display_name,omitempty"`
	AvatarURL      *string   `json:"avatar_url,omitempty"`
	Role           string    `json:"role"`
	Phone          *string   `json:"phone,omitempty"`
	WhatsAppNumber *string   `json:"whatsapp_number,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// UpdateProfileRequest carries mutable profile fields; absent fields keep
// their stored value.
type UpdateProfileRequest struct {
	DisplayName    *string `json:"display_name"`
	AvatarURL      *string `json:"avatar_url"`
	Phone          *string `json:"phone"`
	WhatsAppNumber *string `json:"whatsapp_number"`
}
