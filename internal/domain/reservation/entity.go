package reservation

import (
	"time"

	"github.com/google/uuid"
)

// Status of a reservation. Cancellation happens only through the refund
// workflow.
type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
)

// Reservation is a booking of a listing by a renter for a date range.
type Reservation struct {
	ID         uuid.UUID
	UserID     uuid.UUID // renter
	ListingID  uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
	TotalPrice float64
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PaymentStatus of a gateway payment.
const (
	PaymentStatusPaid = "paid"
)

// Payment is a completed gateway transaction tied to a reservation. Immutable
// after creation except for refund linkage.
type Payment struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	UserID        uuid.UUID
	OrderID       string // gateway order identifier
	PaymentID     string // gateway payment identifier
	Signature     string
	Amount        float64
	Status        string
	CreatedAt     time.Time
}

// RefundStatus of a recorded refund.
const (
	RefundStatusCompleted = "completed"
)

// Refund reverses a payment and cancels the owning reservation.
type Refund struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	PaymentID     uuid.UUID // local payment record, not the gateway id
	UserID        uuid.UUID
	Amount        float64
	Reason        string
	Status        string
	CreatedAt     time.Time
}
