package models

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryModel represents the database model for deliveries. The unique index
// on reservation_id enforces the 1:1 with reservations.
type DeliveryModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ReservationID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	AddressID        *uuid.UUID `gorm:"type:uuid;index"`
	CourierProfileID *uuid.UUID `gorm:"type:uuid;index"`
	Status           string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	TrackingID       *string    `gorm:"type:varchar(64)"`
	CreatedAt        time.Time  `gorm:"not null;index"`
	UpdatedAt        time.Time  `gorm:"not null"`

	Reservation    *ReservationModel    `gorm:"foreignKey:ReservationID"`
	Address        *AddressModel        `gorm:"foreignKey:AddressID"`
	CourierProfile *CourierProfileModel `gorm:"foreignKey:CourierProfileID"`
}

func (DeliveryModel) TableName() string {
	return "deliveries"
}
