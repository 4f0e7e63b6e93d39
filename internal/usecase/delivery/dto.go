package delivery

import (
	"time"

	"github.com/google/uuid"

	domainDelivery "rentease/internal/domain/delivery"
)

// Request DTOs
type CreateDeliveryRequest struct {
	ReservationID uuid.UUID  `json:"reservation_id" validate:"required"`
	AddressID     *uuid.UUID `json:"address_id" validate:"omitempty"`
}

type AssignRequest struct {
	CourierUserID uuid.UUID `json:"courier_user_id" validate:"required"`
	TrackingID    *string   `json:"tracking_id" validate:"omitempty,min=4,max=64"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending dispatched out-for-delivery delivered"`
}

type AttachAddressRequest struct {
	AddressID uuid.UUID `json:"address_id" validate:"required"`
}

// Response DTOs
type DeliveryResponse struct {
	ID               uuid.UUID  `json:"id"`
	ReservationID    uuid.UUID  `json:"reservation_id"`
	AddressID        *uuid.UUID `json:"address_id,omitempty"`
	CourierProfileID *uuid.UUID `json:"courier_profile_id,omitempty"`
	Status           string     `json:"status"`
	TrackingID       *string    `json:"tracking_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type ResetResponse struct {
	ResetCount int64 `json:"reset_count"`
}

func ToDeliveryResponse(d *domainDelivery.Delivery) *DeliveryResponse {
	return &DeliveryResponse{
		ID:               d.ID,
		ReservationID:    d.ReservationID,
		AddressID:        d.AddressID,
		CourierProfileID: d.CourierProfileID,
		Status:           string(d.Status),
		TrackingID:       d.TrackingID,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func ToDeliveryResponses(deliveries []*domainDelivery.Delivery) []*DeliveryResponse {
	out := make([]*DeliveryResponse, 0, len(deliveries))
	for _, d := range deliveries {
		out = append(out, ToDeliveryResponse(d))
	}
	return out
}
