package models

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel represents the database model for addresses.
type AddressModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Street     string    `gorm:"type:text;not null"`
	City       string    `gorm:"type:varchar(100);not null"`
	State      string    `gorm:"type:varchar(100);not null"`
	PostalCode string    `gorm:"type:varchar(20);not null"`
	Country    string    `gorm:"type:varchar(100);not null"`
	Phone      string    `gorm:"type:varchar(20)"`
	CreatedAt  time.Time `gorm:"not null;index"`
	UpdatedAt  time.Time `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID"`
}

func (AddressModel) TableName() string {
	return "addresses"
}

// ListingModel represents the database model for listings. The catalogue is
// written elsewhere; this side reads it.
type ListingModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Price       float64   `gorm:"type:decimal(12,2);not null"`
	Category    string    `gorm:"type:varchar(100)"`
	Location    string    `gorm:"type:varchar(255)"`
	ItemCount   int       `gorm:"type:integer;default:1"`
	CreatedAt   time.Time `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID"`
}

func (ListingModel) TableName() string {
	return "listings"
}
