package delivery

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the fulfillment state of a delivery. Values are persisted
// and transmitted as these literal strings.
type Status string

const (
	StatusAddressRequired Status = "address_required" // Created without a resolvable address
	StatusPending         Status = "pending"          // Address known, awaiting courier dispatch
	StatusDispatched      Status = "dispatched"       // Courier assigned and dispatched
	StatusOutForDelivery  Status = "out-for-delivery" // Courier en route to the renter
	StatusDelivered       Status = "delivered"        // Handed over, terminal
	StatusCancelled       Status = "cancelled"        // Reservation refunded, terminal
)

// Delivery represents the physical fulfillment of a reservation. Exactly one
// delivery exists per reservation.
type Delivery struct {
	ID uuid.UUID

	ReservationID    uuid.UUID
	AddressID        *uuid.UUID
	CourierProfileID *uuid.UUID

	Status     Status
	TrackingID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Assigned reports whether a courier has been attached.
func (d *Delivery) Assigned() bool {
	return d.CourierProfileID != nil
}

// Terminal reports whether no further forward transition exists.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CourierUpdatable lists the statuses a courier may set directly. The
// address_required and cancelled states are reachable only through the
// bridge and the refund workflow respectively.
func CourierUpdatable(s Status) bool {
	switch s {
	case StatusPending, StatusDispatched, StatusOutForDelivery, StatusDelivered:
		return true
	}
	return false
}

// BoardSummary is the operator-console projection of a delivery.
type BoardSummary struct {
	ID        uuid.UUID
	Status    Status
	CreatedAt time.Time
}
