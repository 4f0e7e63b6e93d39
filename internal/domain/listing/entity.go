package listing

import (
	"time"

	"github.com/google/uuid"
)

// Listing is an item offered for rent. The catalogue itself is managed
// elsewhere; the fulfillment core reads listings for pricing, lender
// notification addressing and operator rollups.
type Listing struct {
	ID          uuid.UUID
	UserID      uuid.UUID // lender
	Title       string
	Description string
	Price       float64
	Category    string
	Location    string
	ItemCount   int
	CreatedAt   time.Time
}
