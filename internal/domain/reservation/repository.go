package reservation

import (
	"context"

	"github.com/google/uuid"

	"rentease/internal/domain/delivery"
)

// Repository defines reservation, payment and refund persistence. Multi-record
// sequences are expressed as single operations so the store can run them in
// one transaction.
type Repository interface {
	Create(ctx context.Context, r *Reservation) error
	GetByID(ctx context.Context, reservationID uuid.UUID) (*Reservation, error)
	ListByRenter(ctx context.Context, renterID uuid.UUID) ([]*Reservation, error)
	ListAll(ctx context.Context) ([]*Reservation, error)
	UpdateStatus(ctx context.Context, reservationID uuid.UUID, status Status) error

	// CreateWithPaymentAndDelivery persists the reservation, its payment and
	// its delivery atomically. Partial failure leaves no orphaned records.
	CreateWithPaymentAndDelivery(ctx context.Context, r *Reservation, p *Payment, d *delivery.Delivery) error

	ListPayments(ctx context.Context, reservationID uuid.UUID) ([]*Payment, error)
	GetPaymentByID(ctx context.Context, paymentID uuid.UUID) (*Payment, error)

	CreateRefund(ctx context.Context, refund *Refund) error
	// FinalizeRefund records the refund, cancels the reservation and, when
	// cancelDeliveryID is set, moves that delivery to cancelled, all in one
	// transaction.
	FinalizeRefund(ctx context.Context, refund *Refund, cancelDeliveryID *uuid.UUID) error
	ListRefunds(ctx context.Context) ([]*Refund, error)
}
