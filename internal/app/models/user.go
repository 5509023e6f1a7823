package models

import (
	"time"
)

// User defines the login account model based on the 'users' table
type User struct {
	ID          int64      `json:"id" db:"id" example:"1"`                                   // Unique identifier for the account
	Username    string     `json:"username" db:"username" example:"ana.gomez"`               // Unique login handle
	Password    string     `json:"-" db:"password"`                                          // Hashed credential (excluded from JSON)
	FirstName   string     `json:"firstName" db:"first_name" example:"Ana"`                  // First name mirrored from the student at creation
	LastName    string     `json:"lastName" db:"last_name" example:"Gómez"`                  // Last name mirrored from the student at creation
	Email       string     `json:"email" db:"email" example:"ana.gomez@mail.com"`            // Email mirrored from the student at creation
	IsActive    bool       `json:"isActive" db:"is_active" example:"true"`                   // Whether the account is active
	CreatedAt   time.Time  `json:"createdAt" db:"created_at" example:"2025-03-01T10:00:00Z"` // Timestamp when the account was created
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at" example:"2025-03-01T10:00:00Z"` // Timestamp when the account was last updated
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`                 // Timestamp of the last login (nullable)

	// Relations (populated when needed)
	Roles []string `json:"roles,omitempty"` // Role names granted to this account
}

// ProvisionedAccount carries a freshly built login account together with the
// role grant and student link it must be persisted with. It is written in the
// same transaction as the enrollment that triggered it.
type ProvisionedAccount struct {
	User      *User
	RoleName  string
	StudentID int64
}

// Role defines a role grant based on the 'roles' table
type Role struct {
	ID   int64  `json:"id" db:"id" example:"1"`
	Name string `json:"name" db:"name" example:"alumno"`
}
