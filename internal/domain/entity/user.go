// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can place orders. Only the fields the payment
// gateway needs for customer details are modelled here.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	FullName  string    // Display name sent to the payment gateway.
	Email     string    // Contact email sent to the payment gateway.
	Role      Role      // Role used when the user's identity is resolved.
	CreatedAt time.Time
	UpdatedAt time.Time
}
