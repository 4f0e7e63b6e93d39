package reservation

import (
	"time"

	"github.com/google/uuid"

	domainReservation "rentease/internal/domain/reservation"
)

// Request DTOs
type CreateReservationRequest struct {
	ListingID uuid.UUID `json:"listing_id" validate:"required"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required,gtfield=StartDate"`
}

type CreateOrderRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type VerifyPaymentRequest struct {
	OrderID   string `json:"order_id" validate:"required"`
	PaymentID string `json:"payment_id" validate:"required"`
	Signature string `json:"signature" validate:"required"`

	ListingID  uuid.UUID  `json:"listing_id" validate:"required"`
	StartDate  time.Time  `json:"start_date" validate:"required"`
	EndDate    time.Time  `json:"end_date" validate:"required,gtfield=StartDate"`
	TotalPrice float64    `json:"total_price" validate:"required,gt=0"`
	AddressID  *uuid.UUID `json:"address_id" validate:"omitempty"`
}

// Response DTOs
type ReservationResponse struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	ListingID  uuid.UUID `json:"listing_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	TotalPrice float64   `json:"total_price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type OrderResponse struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type CheckoutResponse struct {
	Reservation *ReservationResponse `json:"reservation"`
	PaymentID   uuid.UUID            `json:"payment_id"`
	DeliveryID  uuid.UUID            `json:"delivery_id"`
	Status      string               `json:"delivery_status"`
}

func ToReservationResponse(r *domainReservation.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		ListingID:  r.ListingID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		TotalPrice: r.TotalPrice,
		Status:     string(r.Status),
		CreatedAt:  r.CreatedAt,
	}
}

func ToReservationResponses(reservations []*domainReservation.Reservation) []*ReservationResponse {
	out := make([]*ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, ToReservationResponse(r))
	}
	return out
}
