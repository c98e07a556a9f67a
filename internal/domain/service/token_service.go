package service

import "squareone/internal/domain/entity"

// SessionClaims identify the operator behind a dashboard session token.
type SessionClaims struct {
	AdminID string
	Email   string
}

// TokenService issues and validates dashboard session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a session token for an authenticated operator.
	GenerateToken(admin entity.Admin) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*SessionClaims, error)
}
