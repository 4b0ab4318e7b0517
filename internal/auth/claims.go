package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v4"
)

// ErrInvalidToken is returned when the request context carries no usable token.
var ErrInvalidToken = errors.New("invalid token")

// Claims are the identity provider claims this service consumes.
type Claims struct {
	Sub           string
	Email         string
	FullName      string
	EmailVerified bool
}

// ClaimsFromToken extracts the claims from a validated bearer token.
func ClaimsFromToken(token *jwt.Token) (Claims, error) {
	if token == nil {
		return Claims{}, ErrInvalidToken
	}
	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	sub, _ := mapClaims["sub"].(string)
	if sub == "" {
		return Claims{}, ErrInvalidToken
	}

	email, _ := mapClaims["email"].(string)
	fullName, _ := mapClaims["full_name"].(string)
	verified, _ := mapClaims["email_verified"].(bool)

	return Claims{
		Sub:           sub,
		Email:         email,
		FullName:      fullName,
		EmailVerified: verified,
	}, nil
}
