package address

import (
	"time"

	"github.com/google/uuid"

	domainAddress "rentease/internal/domain/address"
)

type CreateAddressRequest struct {
	Street     string `json:"street" validate:"required,min=3,max=200"`
	City       string `json:"city" validate:"required,min=2,max=100"`
	State      string `json:"state" validate:"required,min=2,max=100"`
	PostalCode string `json:"postal_code" validate:"required,min=3,max=12"`
	Country    string `json:"country" validate:"required,min=2,max=100"`
	Phone      string `json:"phone" validate:"required,phone"`
}

type UpdateAddressRequest struct {
	Street     *string `json:"street" validate:"omitempty,min=3,max=200"`
	City       *string `json:"city" validate:"omitempty,min=2,max=100"`
	State      *string `json:"state" validate:"omitempty,min=2,max=100"`
	PostalCode *string `json:"postal_code" validate:"omitempty,min=3,max=12"`
	Country    *string `json:"country" validate:"omitempty,min=2,max=100"`
	Phone      *string `json:"phone" validate:"omitempty,phone"`
}

type AddressResponse struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Street     string    `json:"street"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	PostalCode string    `json:"postal_code"`
	Country    string    `json:"country"`
	Phone      string    `json:"phone"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ToAddressResponse(a *domainAddress.Address) *AddressResponse {
	return &AddressResponse{
		ID:         a.ID,
		UserID:     a.UserID,
		Street:     a.Street,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		Phone:      a.Phone,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func ToAddressResponses(addresses []*domainAddress.Address) []*AddressResponse {
	out := make([]*AddressResponse, 0, len(addresses))
	for _, a := range addresses {
		out = append(out, ToAddressResponse(a))
	}
	return out
}
