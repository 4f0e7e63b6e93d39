package user

import (
	"time"

	"github.com/google/uuid"

	domainUser "rentease/internal/domain/user"
)

// Request DTOs
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,user_role"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type OnboardCourierRequest struct {
	Phone       string `json:"phone" validate:"required,phone"`
	NationalID  string `json:"national_id" validate:"required,min=4,max=32"`
	BankAccount string `json:"bank_account" validate:"required,min=6,max=34"`
}

type IssueCodeRequest struct {
	Purpose string `json:"purpose" validate:"required,oneof=courier_email courier_phone"`
	Target  string `json:"target" validate:"required"`
}

type VerifyCodeRequest struct {
	Purpose string `json:"purpose" validate:"required,oneof=courier_email courier_phone"`
	Target  string `json:"target" validate:"required"`
	Code    string `json:"code" validate:"required,len=6,numeric"`
}

// Response DTOs
type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	IsVerified bool      `json:"is_verified"`
	Phone      *string   `json:"phone,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type AuthResponse struct {
	User         *UserResponse `json:"user"`
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresAt    int64         `json:"expires_at"`
}

type CourierProfileResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Phone       string    `json:"phone"`
	NationalID  string    `json:"national_id"`
	BankAccount string    `json:"bank_account"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToUserResponse(u *domainUser.User) *UserResponse {
	return &UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		IsVerified: u.IsVerified,
		Phone:      u.Phone,
		CreatedAt:  u.CreatedAt,
	}
}

func ToCourierProfileResponse(p *domainUser.CourierProfile) *CourierProfileResponse {
	return &CourierProfileResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		Phone:       p.Phone,
		NationalID:  p.NationalID,
		BankAccount: p.BankAccount,
		CreatedAt:   p.CreatedAt,
	}
}
