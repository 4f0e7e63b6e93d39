package models

import (
	"time"

	"github.com/google/uuid"
)

// UserModel represents the database model for users.
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Email          string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHashed string    `gorm:"type:varchar(255);not null;column:password_hash"`
	Role           string    `gorm:"type:varchar(20);not null;default:'user';index"`
	IsVerified     bool      `gorm:"not null;default:false"`
	Phone          *string   `gorm:"type:varchar(20)"`
	NationalID     *string   `gorm:"type:varchar(20);column:national_id"`
	BankAccount    *string   `gorm:"type:varchar(34)"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}

// CourierProfileModel represents the database model for courier profiles.
// The unique index on user_id enforces the 1:1 with users.
type CourierProfileModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Phone       string    `gorm:"type:varchar(20);not null"`
	NationalID  string    `gorm:"type:varchar(20);not null;column:national_id"`
	BankAccount string    `gorm:"type:varchar(34);not null"`
	CreatedAt   time.Time `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID"`
}

func (CourierProfileModel) TableName() string {
	return "courier_profiles"
}

// VerificationCodeModel stores one-time codes with server-side expiry.
type VerificationCodeModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Target     string     `gorm:"type:varchar(255);not null;index:idx_verification_target_purpose"`
	Code       string     `gorm:"type:varchar(10);not null"`
	Purpose    string     `gorm:"type:varchar(30);not null;index:idx_verification_target_purpose"`
	ExpiresAt  time.Time  `gorm:"not null;index"`
	ConsumedAt *time.Time `gorm:"type:timestamptz"`
	CreatedAt  time.Time  `gorm:"not null"`
}

func (VerificationCodeModel) TableName() string {
	return "verification_codes"
}
