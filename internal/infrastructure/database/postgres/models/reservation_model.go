package models

import (
	"time"

	"github.com/google/uuid"
)

// ReservationModel represents the database model for reservations.
type ReservationModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ListingID  uuid.UUID `gorm:"type:uuid;not null;index"`
	StartDate  time.Time `gorm:"type:timestamptz;not null"`
	EndDate    time.Time `gorm:"type:timestamptz;not null"`
	TotalPrice float64   `gorm:"type:decimal(12,2);not null"`
	Status     string    `gorm:"type:varchar(20);not null;default:'active';index"`
	CreatedAt  time.Time `gorm:"not null;index"`
	UpdatedAt  time.Time `gorm:"not null"`

	User    *UserModel    `gorm:"foreignKey:UserID"`
	Listing *ListingModel `gorm:"foreignKey:ListingID"`
}

func (ReservationModel) TableName() string {
	return "reservations"
}

// PaymentModel represents the database model for gateway payments.
type PaymentModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ReservationID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderID       string    `gorm:"type:varchar(64);not null"`
	PaymentID     string    `gorm:"type:varchar(64);not null;index"`
	Signature     string    `gorm:"type:varchar(128);not null"`
	Amount        float64   `gorm:"type:decimal(12,2);not null"`
	Status        string    `gorm:"type:varchar(20);not null"`
	CreatedAt     time.Time `gorm:"not null"`

	Reservation *ReservationModel `gorm:"foreignKey:ReservationID"`
}

func (PaymentModel) TableName() string {
	return "payments"
}

// RefundModel represents the database model for refunds.
type RefundModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ReservationID uuid.UUID `gorm:"type:uuid;not null;index"`
	PaymentID     uuid.UUID `gorm:"type:uuid;not null"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount        float64   `gorm:"type:decimal(12,2);not null"`
	Reason        string    `gorm:"type:text;not null"`
	Status        string    `gorm:"type:varchar(20);not null"`
	CreatedAt     time.Time `gorm:"not null"`

	Reservation *ReservationModel `gorm:"foreignKey:ReservationID"`
	Payment     *PaymentModel     `gorm:"foreignKey:PaymentID"`
}

func (RefundModel) TableName() string {
	return "refunds"
}
