package entity

import "github.com/google/uuid"

// Role represents the type of role an actor can have in the system.
type Role string

const (
	// RoleGuest is the role resolved for anonymous actors.
	RoleGuest Role = "guest"
	// RoleUser indicates a regular shopper.
	RoleUser Role = "user"
	// RoleAdmin indicates a store administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// Actor is the identity a request is evaluated for. It is supplied by the
// identity layer and never persisted by the order core.
type Actor struct {
	ID   uuid.UUID // Stable identity key; uuid.Nil for anonymous actors.
	Role Role      // Role as asserted by the identity layer, possibly unknown.
}

// Anonymous returns the actor used when a request carries no identity.
func Anonymous() Actor {
	return Actor{Role: RoleGuest}
}

// IsAnonymous reports whether the actor carries no identity.
func (a Actor) IsAnonymous() bool {
	return a.ID == uuid.Nil
}
