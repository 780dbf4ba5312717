package models

import (
	"time"
)

// UserRole represents what a user may do on the marketplace
type UserRole string

const (
	RoleRider  UserRole = "rider"
	RoleDriver UserRole = "driver"
	RoleBoth   UserRole = "both"
)

// Valid reports whether r is one of the known roles
func (r UserRole) Valid() bool {
	switch r {
	case RoleRider, RoleDriver, RoleBoth:
		return true
	}
	return false
}

// Includes reports whether r grants the capabilities of role.
// "both" includes rider and driver.
func (r UserRole) Includes(role UserRole) bool {
	if r == role {
		return true
	}
	return r == RoleBoth && (role == RoleRider || role == RoleDriver)
}

// User represents a marketplace account keyed by the identity provider subject id
type User struct {
	ID         string    `json:"id" db:"id"`
	Email      string    `json:"email" db:"email"`
	Phone      *string   `json:"phone,omitempty" db:"phone"`
	Name       string    `json:"name" db:"name"`
	Role       UserRole  `json:"role" db:"role"`
	IsVerified bool      `json:"is_verified" db:"is_verified"`
	IsActive   bool      `json:"is_active" db:"is_active"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// RegisterUserRequest carries the registration input of an authenticated subject
type RegisterUserRequest struct {
	Email *string
	Phone *string
	Name  string
	Role  UserRole
}

// UpdateProfileRequest carries the mutable profile fields; nil means unchanged
type UpdateProfileRequest struct {
	Name  *string
	Phone *string
}
