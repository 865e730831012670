package dto

import "github.com/google/uuid"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	AccountID         uuid.UUID `json:"accountId"`
	Email             string    `json:"email"`
	Roles             []string  `json:"roles"`
	PasswordTemporary bool      `json:"passwordTemporary"`
	AccessToken       string    `json:"accessToken"`
	RefreshToken      string    `json:"refreshToken"`
	ExpiresIn         int       `json:"expiresIn"`
}

// ChangePasswordRequest represents a password change for the logged-in
// account.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}
