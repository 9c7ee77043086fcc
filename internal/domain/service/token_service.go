package service

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	UserID uuid.UUID   `json:"-"`
	Role   entity.Role `json:"role"`
	Type   string      `json:"type"`
	jwt.RegisteredClaims
}

// Actor converts the claims into the identity the policy engine evaluates.
func (c *Claims) Actor() entity.Actor {
	return entity.Actor{ID: c.UserID, Role: c.Role}
}

// TokenService validates access tokens issued by the identity provider.
// Issuance is kept for operator tooling and tests.
type TokenService interface {
	// GenerateAccessToken signs an access token for the user and role.
	GenerateAccessToken(userID uuid.UUID, role entity.Role) (string, error)

	// ValidateAccessToken checks the token signature, expiry and type.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// GetAccessTokenDuration returns the lifetime of issued access tokens.
	GetAccessTokenDuration() time.Duration
}
