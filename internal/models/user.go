package models

import (
	"fmt"
	"time"
)

// UserRole distinguishes ordinary students from marketplace admins.
type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleAdmin   UserRole = "admin"
)

// Valid reports whether the role is one of the known values.
func (r UserRole) Valid() bool {
	return r == RoleStudent || r == RoleAdmin
}

// UserStatus is the account state toggled from the admin panel.
type UserStatus string

const (
	UserActive    UserStatus = "active"
	UserSuspended UserStatus = "suspended"
)

// Valid reports whether the status is one of the known values.
func (s UserStatus) Valid() bool {
	return s == UserActive || s == UserSuspended
}

// User is the account record as exposed to callers. The stored credential
// never leaves the user collection.
type User struct {
	ID        string     `json:"id"`               // Opaque unique identifier
	Email     string     `json:"email"`            // Unique at registration time
	Name      string     `json:"name"`             // Display name
	College   string     `json:"college"`          // Free text
	Role      UserRole   `json:"role"`             // student or admin
	Phone     string     `json:"phone,omitempty"`  // Optional contact number
	CreatedAt time.Time  `json:"createdAt"`        // Registration timestamp
	Status    UserStatus `json:"status,omitempty"` // Missing in old records, defaults to active
}

// Normalize fills fields older records may lack.
func (u *User) Normalize() {
	if u.Status == "" {
		u.Status = UserActive
	}
}

// Validate rejects records whose tagged fields fall outside the closed enums.
func (u *User) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("user: empty id")
	}
	if u.Email == "" {
		return fmt.Errorf("user %s: empty email", u.ID)
	}
	if !u.Role.Valid() {
		return fmt.Errorf("user %s: unknown role %q", u.ID, u.Role)
	}
	if u.Status != "" && !u.Status.Valid() {
		return fmt.Errorf("user %s: unknown status %q", u.ID, u.Status)
	}
	return nil
}

// StoredUser is the persisted shape of a user, plaintext credential included.
type StoredUser struct {
	User
	Password string `json:"password"`
}

// Public returns the record with the credential stripped.
func (u StoredUser) Public() User {
	return u.User
}
