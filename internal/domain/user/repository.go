package user

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for user repository operations.
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*User, error)
	GetAll(ctx context.Context) ([]*User, error)
	ListByRole(ctx context.Context, role string) ([]*User, error)
	Update(ctx context.Context, user *User) error
	UpdateRole(ctx context.Context, userID uuid.UUID, role string) error
	SetVerified(ctx context.Context, userID uuid.UUID, verified bool) error
}

// CourierProfileRepository manages the 1:1 courier records.
type CourierProfileRepository interface {
	Create(ctx context.Context, profile *CourierProfile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*CourierProfile, error)
	GetByID(ctx context.Context, profileID uuid.UUID) (*CourierProfile, error)
}

// VerificationCodeRepository stores one-time codes durably with expiry.
type VerificationCodeRepository interface {
	Save(ctx context.Context, code *VerificationCode) error
	GetActive(ctx context.Context, target, purpose string, now time.Time) (*VerificationCode, error)
	Consume(ctx context.Context, codeID uuid.UUID, at time.Time) error
	DeleteExpired(ctx context.Context, olderThan time.Time) error
}
