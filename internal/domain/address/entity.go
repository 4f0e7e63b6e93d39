package address

import (
	"time"

	"github.com/google/uuid"
)

// Address is a postal address owned by exactly one user. Deliveries reference
// addresses but never own them.
type Address struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
	Phone      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
