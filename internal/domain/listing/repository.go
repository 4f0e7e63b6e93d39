package listing

import (
	"context"

	"github.com/google/uuid"
)

// Repository is read-only from the fulfillment core's perspective.
type Repository interface {
	GetByID(ctx context.Context, listingID uuid.UUID) (*Listing, error)
	ListAll(ctx context.Context) ([]*Listing, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Listing, error)
}
