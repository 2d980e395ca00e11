package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims represents JWT custom claims. The user id travels in the standard subject.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// UserID returns the opaque id of the authenticated user
func (c *Claims) UserID() string {
	return c.Subject
}
