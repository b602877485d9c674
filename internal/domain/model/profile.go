package model

import "time"

// Role distinguishes marketplace participants. It is fixed at signup.
type Role string

const (
	RoleClient   Role = "client"
	RoleMerchant Role = "merchant"
)

// Valid reports whether the role is a known value.
func (r Role) Valid() bool {
	return r == RoleClient || r == RoleMerchant
}

// Profile represents a registered marketplace user.
type Profile struct {
	ID             string
	Email          string
	PasswordHash   string
	DisplayName    *string
	AvatarURL      *string
	Role           Role
	Phone          *string
	WhatsAppNumber *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ProfileUpdate carries the mutable profile fields. Nil pointers leave the
// stored value untouched; email and role are never updatable.
type ProfileUpdate struct {
	DisplayName    *string
	AvatarURL      *string
	Phone          *string
	WhatsAppNumber *string
}
