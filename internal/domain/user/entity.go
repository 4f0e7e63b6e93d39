package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser     = "user"
	RoleAdmin    = "admin"
	RoleDelivery = "delivery"
)

// User represents an account in the marketplace. Courier-specific fields
// (national ID, bank account) are populated only for delivery-role onboarding.
type User struct {
	ID             uuid.UUID
	Name           string
	Email          string
	PasswordHashed string
	Role           string
	IsVerified     bool

	Phone       *string
	NationalID  *string
	BankAccount *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CourierProfile is the delivery-person record, 1:1 with a delivery-role user.
// It is created lazily on first assignment or first courier dashboard visit.
type CourierProfile struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Phone       string
	NationalID  string
	BankAccount string
	CreatedAt   time.Time
}

// VerificationCode is a durable, time-bounded one-time code keyed by its
// target (email address or phone number). Expiry is enforced server-side so
// correctness does not depend on in-process memory.
type VerificationCode struct {
	ID         uuid.UUID
	Target     string
	Code       string
	Purpose    string
	ExpiresAt  time.Time
	ConsumedAt *time.Time
	CreatedAt  time.Time
}

const (
	PurposeCourierEmail = "courier_email"
	PurposeCourierPhone = "courier_phone"
)
