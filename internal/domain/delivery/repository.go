package delivery

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for delivery persistence.
type Repository interface {
	Create(ctx context.Context, d *Delivery) error
	GetByID(ctx context.Context, deliveryID uuid.UUID) (*Delivery, error)
	GetByReservationID(ctx context.Context, reservationID uuid.UUID) (*Delivery, error)
	Update(ctx context.Context, d *Delivery) error
	UpdateStatus(ctx context.Context, deliveryID uuid.UUID, status Status) error

	// Assign sets the courier profile and status in a single update.
	Assign(ctx context.Context, deliveryID, courierProfileID uuid.UUID, status Status, trackingID *string) error
	// SetAddress attaches a delivery address and moves the status forward.
	SetAddress(ctx context.Context, deliveryID, addressID uuid.UUID, status Status) error
	// ResetAll unassigns every delivery and forces status back to pending.
	ResetAll(ctx context.Context) (int64, error)

	ListAll(ctx context.Context) ([]*Delivery, error)
	ListByRenter(ctx context.Context, renterID uuid.UUID) ([]*Delivery, error)
	ListUnassigned(ctx context.Context) ([]*BoardSummary, error)
	ListSummaries(ctx context.Context) ([]*BoardSummary, error)
}
