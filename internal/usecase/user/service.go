package user

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"rentease/internal/config"
	domainUser "rentease/internal/domain/user"
	"rentease/internal/logger"
	"rentease/internal/notification"
	appErrors "rentease/pkg/errors"
	"rentease/pkg/utils"
)

const codeTTL = 10 * time.Minute

// Service implements account and courier onboarding use cases
type Service struct {
	userRepo    domainUser.Repository
	profileRepo domainUser.CourierProfileRepository
	codeRepo    domainUser.VerificationCodeRepository
	mailer      notification.Sender
	config      *config.Config
}

// NewService creates a new user service
func NewService(
	userRepo domainUser.Repository,
	profileRepo domainUser.CourierProfileRepository,
	codeRepo domainUser.VerificationCodeRepository,
	mailer notification.Sender,
	cfg *config.Config,
) *Service {
	return &Service{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		codeRepo:    codeRepo,
		mailer:      mailer,
		config:      cfg,
	}
}

func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}

	if err := utils.ValidatePassword(req.Password); err != nil {
		return nil, appErrors.Validation(err.Error(), nil)
	}

	existingUser, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, domainUser.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		logger.Warn("Registration attempt with existing email",
			zap.String("email", req.Email),
			zap.String("event", "registration_failed_duplicate_email"),
		)
		return nil, appErrors.Conflict("Email is already registered", appErrors.ErrUserAlreadyExists)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = domainUser.RoleUser
	}

	user := &domainUser.User{
		Name:           req.Name,
		Email:          req.Email,
		PasswordHashed: hashedPassword,
		Role:           role,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("role", user.Role),
		zap.String("event", "user_registered"),
	)

	return s.authResponse(user)
}

func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			return nil, appErrors.Authentication("Invalid email or password", appErrors.ErrInvalidCredentials)
		}
		return nil, err
	}

	if !utils.CheckPassword(user.PasswordHashed, req.Password) {
		logger.Warn("Failed login attempt",
			zap.String("email", req.Email),
			zap.String("event", "login_failed"),
		)
		return nil, appErrors.Authentication("Invalid email or password", appErrors.ErrInvalidCredentials)
	}

	logger.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("event", "user_logged_in"),
	)

	return s.authResponse(user)
}

func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			return nil, appErrors.NotFound("User not found", err)
		}
		return nil, err
	}
	return ToUserResponse(user), nil
}

// OnboardCourier records the courier-specific details on a delivery-role user
// and materializes the courier profile.
func (s *Service) OnboardCourier(ctx context.Context, userID uuid.UUID, req *OnboardCourierRequest) (*CourierProfileResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			return nil, appErrors.NotFound("User not found", err)
		}
		return nil, err
	}
	if user.Role != domainUser.RoleDelivery {
		return nil, appErrors.Validation("Only delivery accounts can onboard as couriers", nil)
	}

	user.Phone = &req.Phone
	user.NationalID = &req.NationalID
	user.BankAccount = &req.BankAccount
	user.UpdatedAt = time.Now()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domainUser.ErrProfileNotFound) {
		return nil, err
	}
	if profile == nil {
		profile = &domainUser.CourierProfile{
			UserID:      userID,
			Phone:       req.Phone,
			NationalID:  req.NationalID,
			BankAccount: req.BankAccount,
		}
		if err := s.profileRepo.Create(ctx, profile); err != nil {
			return nil, err
		}
	}

	logger.Info("Courier onboarded",
		zap.String("user_id", userID.String()),
		zap.String("profile_id", profile.ID.String()),
		zap.String("event", "courier_onboarded"),
	)

	return ToCourierProfileResponse(profile), nil
}

// IssueVerificationCode creates a durable one-time code and sends it to the
// target. Expiry is enforced server-side when the code is checked.
func (s *Service) IssueVerificationCode(ctx context.Context, userID uuid.UUID, req *IssueCodeRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return appErrors.Validation("Invalid input", err)
	}

	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("failed to generate verification code: %w", err)
	}

	record := &domainUser.VerificationCode{
		Target:    req.Target,
		Code:      code,
		Purpose:   req.Purpose,
		ExpiresAt: time.Now().Add(codeTTL),
	}
	if err := s.codeRepo.Save(ctx, record); err != nil {
		return err
	}

	if req.Purpose == domainUser.PurposeCourierEmail {
		s.mailer.Send(req.Target, "Your verification code",
			fmt.Sprintf("Your verification code is %s. It expires in 10 minutes.", code))
	}

	logger.Info("Verification code issued",
		zap.String("user_id", userID.String()),
		zap.String("purpose", req.Purpose),
		zap.String("event", "verification_code_issued"),
	)
	return nil
}

// VerifyCode consumes the active code for a target and marks the user verified.
func (s *Service) VerifyCode(ctx context.Context, userID uuid.UUID, req *VerifyCodeRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return appErrors.Validation("Invalid input", err)
	}

	record, err := s.codeRepo.GetActive(ctx, req.Target, req.Purpose, time.Now())
	if err != nil {
		if errors.Is(err, domainUser.ErrCodeNotFound) {
			return appErrors.Validation("Verification code has expired or was never issued", appErrors.ErrCodeExpired)
		}
		return err
	}

	if subtle.ConstantTimeCompare([]byte(record.Code), []byte(req.Code)) != 1 {
		logger.Warn("Verification code mismatch",
			zap.String("user_id", userID.String()),
			zap.String("event", "verification_code_mismatch"),
		)
		return appErrors.Validation("Verification code does not match", appErrors.ErrCodeMismatch)
	}

	if err := s.codeRepo.Consume(ctx, record.ID, time.Now()); err != nil {
		return err
	}
	if err := s.userRepo.SetVerified(ctx, userID, true); err != nil {
		return err
	}

	logger.Info("Verification code accepted",
		zap.String("user_id", userID.String()),
		zap.String("purpose", req.Purpose),
		zap.String("event", "verification_code_accepted"),
	)
	return nil
}

// PurgeExpiredCodes removes codes past their expiry. Run periodically.
func (s *Service) PurgeExpiredCodes(ctx context.Context) error {
	return s.codeRepo.DeleteExpired(ctx, time.Now())
}

func (s *Service) authResponse(user *domainUser.User) (*AuthResponse, error) {
	tokenPair, err := utils.GenerateTokenPair(
		user.ID,
		user.Email,
		user.Role,
		s.config.JWT.Secret,
		s.config.JWT.ExpiryHours,
		s.config.JWT.RefreshExpiryHours,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &AuthResponse{
		User:         ToUserResponse(user),
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresAt:    tokenPair.ExpiresAt,
	}, nil
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
