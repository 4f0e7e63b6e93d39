package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rentease/internal/domain/user"
	"rentease/internal/infrastructure/database/postgres/models"
)

type CourierProfileRepository struct {
	db *DB
}

func NewCourierProfileRepository(db *DB) *CourierProfileRepository {
	return &CourierProfileRepository{db: db}
}

func (r *CourierProfileRepository) Create(ctx context.Context, profile *user.CourierProfile) error {
	profile.ID = uuid.New()
	profile.CreatedAt = time.Now()

	dbModel := &models.CourierProfileModel{
		ID:          profile.ID,
		UserID:      profile.UserID,
		Phone:       profile.Phone,
		NationalID:  profile.NationalID,
		BankAccount: profile.BankAccount,
		CreatedAt:   profile.CreatedAt,
	}
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create courier profile: %w", err)
	}
	return nil
}

func (r *CourierProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*user.CourierProfile, error) {
	var dbModel models.CourierProfileModel
	err := r.db.DB.WithContext(ctx).Where("user_id = ?", userID).First(&dbModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, user.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get courier profile: %w", err)
	}
	return toCourierProfileEntity(&dbModel), nil
}

func (r *CourierProfileRepository) GetByID(ctx context.Context, profileID uuid.UUID) (*user.CourierProfile, error) {
	var dbModel models.CourierProfileModel
	err := r.db.DB.WithContext(ctx).Where("id = ?", profileID).First(&dbModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, user.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get courier profile: %w", err)
	}
	return toCourierProfileEntity(&dbModel), nil
}

func toCourierProfileEntity(m *models.CourierProfileModel) *user.CourierProfile {
	return &user.CourierProfile{
		ID:          m.ID,
		UserID:      m.UserID,
		Phone:       m.Phone,
		NationalID:  m.NationalID,
		BankAccount: m.BankAccount,
		CreatedAt:   m.CreatedAt,
	}
}

type VerificationCodeRepository struct {
	db *DB
}

func NewVerificationCodeRepository(db *DB) *VerificationCodeRepository {
	return &VerificationCodeRepository{db: db}
}

func (r *VerificationCodeRepository) Save(ctx context.Context, code *user.VerificationCode) error {
	code.ID = uuid.New()
	code.CreatedAt = time.Now()

	dbModel := &models.VerificationCodeModel{
		ID:        code.ID,
		Target:    code.Target,
		Code:      code.Code,
		Purpose:   code.Purpose,
		ExpiresAt: code.ExpiresAt,
		CreatedAt: code.CreatedAt,
	}
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to save verification code: %w", err)
	}
	return nil
}

func (r *VerificationCodeRepository) GetActive(ctx context.Context, target, purpose string, now time.Time) (*user.VerificationCode, error) {
	var dbModel models.VerificationCodeModel
	err := r.db.DB.WithContext(ctx).
		Where("target = ? AND purpose = ? AND expires_at > ? AND consumed_at IS NULL", target, purpose, now).
		Order("created_at DESC").
		First(&dbModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, user.ErrCodeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get verification code: %w", err)
	}

	return &user.VerificationCode{
		ID:         dbModel.ID,
		Target:     dbModel.Target,
		Code:       dbModel.Code,
		Purpose:    dbModel.Purpose,
		ExpiresAt:  dbModel.ExpiresAt,
		ConsumedAt: dbModel.ConsumedAt,
		CreatedAt:  dbModel.CreatedAt,
	}, nil
}

func (r *VerificationCodeRepository) Consume(ctx context.Context, codeID uuid.UUID, at time.Time) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.VerificationCodeModel{}).
		Where("id = ? AND consumed_at IS NULL", codeID).
		Update("consumed_at", at)
	if result.Error != nil {
		return fmt.Errorf("failed to consume verification code: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrCodeNotFound
	}
	return nil
}

func (r *VerificationCodeRepository) DeleteExpired(ctx context.Context, olderThan time.Time) error {
	err := r.db.DB.WithContext(ctx).
		Where("expires_at < ?", olderThan).
		Delete(&models.VerificationCodeModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete expired codes: %w", err)
	}
	return nil
}
