package models

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	UserID       int64     `json:"user_id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	IsActive     bool      `json:"is_active"`
}

// IsValid reports whether the user record is usable: non-blank username and
// an email that at least contains an '@'.
func (u *User) IsValid() bool {
	return strings.TrimSpace(u.Username) != "" &&
		strings.TrimSpace(u.Email) != "" &&
		strings.Contains(u.Email, "@")
}

type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Success   bool   `json:"success"`
	Token     string `json:"token,omitempty"`
	ExpiresIn int    `json:"expires_in,omitempty"`
	Message   string `json:"message,omitempty"`
}
