package address

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for address persistence. Update and Delete
// are scoped by owner so a user can never touch another user's records.
type Repository interface {
	Create(ctx context.Context, a *Address) error
	GetByID(ctx context.Context, addressID uuid.UUID) (*Address, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Address, error)
	GetLatestForUser(ctx context.Context, userID uuid.UUID) (*Address, error)
	UpdateOwned(ctx context.Context, userID uuid.UUID, a *Address) error
	DeleteOwned(ctx context.Context, userID, addressID uuid.UUID) error
}
