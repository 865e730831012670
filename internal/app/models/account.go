package models

import (
	"time"

	"github.com/google/uuid"
)

// Role keys seeded at startup.
const (
	RoleAdmin    = "admin"
	RoleReviewer = "reviewer"
)

// Account is a staff account. Applicants do not have accounts; the
// application submission endpoints are public.
type Account struct {
	ID                uuid.UUID  `json:"id"`
	FirstName         string     `json:"firstName"`
	LastName          string     `json:"lastName"`
	Email             string     `json:"email"`
	PasswordHash      string     `json:"-"`
	PasswordTemporary bool       `json:"passwordTemporary"`
	CreatedBy         *uuid.UUID `json:"createdBy,omitempty"`
	Active            bool       `json:"active"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         *time.Time `json:"updatedAt,omitempty"`
	LastLogin         *time.Time `json:"lastLogin,omitempty"`

	// Role keys resolved through accounts_roles, not a column.
	Roles []string `json:"roles,omitempty"`
}

// HasRole reports whether the account carries the given role key.
func (a *Account) HasRole(key string) bool {
	for _, r := range a.Roles {
		if r == key {
			return true
		}
	}
	return false
}

// Role is a named permission group.
type Role struct {
	ID          uuid.UUID `json:"id"`
	Key         string    `json:"key"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
}
