package utils

import (
	"errors" // Error values
	"time"   // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// ErrEmptySubject is returned when a token would be issued without a subject
var ErrEmptySubject = errors.New("jwt: empty subject")

// GenerateJWT creates an HS256 token whose subject is the user's email
func GenerateJWT(email, secret string, ttl time.Duration) (string, error) {
	if email == "" {
		return "", ErrEmptySubject
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   email,                            // Login key of the user
		IssuedAt:  jwt.NewNumericDate(now),          // Issued at current time
		NotBefore: jwt.NewNumericDate(now),          // Valid immediately
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)), // Token expires after ttl
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// ParseJWT parses and validates a token string, returning its claims
func ParseJWT(tokenStr, secret string) (*jwt.RegisteredClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil // Return the secret key for validation
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	// Check for parsing errors
	if err != nil {
		return nil, err // Return error if parsing fails
	}
	// Validate token and extract claims
	if claims, ok := token.Claims.(*jwt.RegisteredClaims); ok && token.Valid {
		return claims, nil // Return claims if valid
	}
	// Return error if token is invalid
	return nil, jwt.ErrSignatureInvalid
}
