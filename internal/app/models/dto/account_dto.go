package dto

import (
	"time"

	"github.com/google/uuid"
)

// AccountResponse represents a staff account
type AccountResponse struct {
	ID                uuid.UUID  `json:"id"`
	FirstName         string     `json:"firstName"`
	LastName          string     `json:"lastName"`
	Email             string     `json:"email"`
	Roles             []string   `json:"roles"`
	PasswordTemporary bool       `json:"passwordTemporary"`
	Active            bool       `json:"active"`
	CreatedAt         time.Time  `json:"createdAt"`
	LastLogin         *time.Time `json:"lastLogin,omitempty"`
}

// CreateAccountRequest represents staff account creation data. The initial
// password is generated server-side and returned once.
type CreateAccountRequest struct {
	FirstName string   `json:"firstName" binding:"required"`
	LastName  string   `json:"lastName" binding:"required"`
	Email     string   `json:"email" binding:"required,email"`
	Roles     []string `json:"roles" binding:"required,min=1"`
}

// CreateAccountResponse includes the one-time temporary password.
type CreateAccountResponse struct {
	Account           AccountResponse `json:"account"`
	TemporaryPassword string          `json:"temporaryPassword"`
}

// UpdateAccountRequest represents staff account update data
type UpdateAccountRequest struct {
	FirstName string   `json:"firstName" binding:"required"`
	LastName  string   `json:"lastName" binding:"required"`
	Email     string   `json:"email" binding:"required,email"`
	Roles     []string `json:"roles" binding:"required,min=1"`
	Active    *bool    `json:"active" binding:"required"`
}

// RoleResponse represents a permission role
type RoleResponse struct {
	ID          uuid.UUID `json:"id"`
	Key         string    `json:"key"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
}
