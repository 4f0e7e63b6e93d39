package refund

import (
	"time"

	"github.com/google/uuid"

	domainReservation "rentease/internal/domain/reservation"
)

// Request DTOs
type RequestRefundRequest struct {
	ReservationID uuid.UUID `json:"reservation_id" validate:"required"`
	PaymentID     uuid.UUID `json:"payment_id" validate:"required"`
	Amount        float64   `json:"amount" validate:"required,gt=0"`
	Reason        string    `json:"reason" validate:"required,min=5,max=500"`
}

type ConfirmRefundRequest struct {
	ReservationID uuid.UUID `json:"reservation_id" validate:"required"`
	PaymentID     uuid.UUID `json:"payment_id" validate:"required"`
	Amount        float64   `json:"amount" validate:"required,gt=0"`
	Reason        string    `json:"reason" validate:"required,min=5,max=500"`
}

// Response DTOs
type RefundResponse struct {
	ID            uuid.UUID `json:"id"`
	ReservationID uuid.UUID `json:"reservation_id"`
	PaymentID     uuid.UUID `json:"payment_id"`
	UserID        uuid.UUID `json:"user_id"`
	Amount        float64   `json:"amount"`
	Reason        string    `json:"reason"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func ToRefundResponse(r *domainReservation.Refund) *RefundResponse {
	return &RefundResponse{
		ID:            r.ID,
		ReservationID: r.ReservationID,
		PaymentID:     r.PaymentID,
		UserID:        r.UserID,
		Amount:        r.Amount,
		Reason:        r.Reason,
		Status:        r.Status,
		CreatedAt:     r.CreatedAt,
	}
}

func ToRefundResponses(refunds []*domainReservation.Refund) []*RefundResponse {
	out := make([]*RefundResponse, 0, len(refunds))
	for _, r := range refunds {
		out = append(out, ToRefundResponse(r))
	}
	return out
}
