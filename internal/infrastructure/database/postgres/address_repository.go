package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rentease/internal/domain/address"
	"rentease/internal/infrastructure/database/postgres/models"
)

type AddressRepository struct {
	db *DB
}

func NewAddressRepository(db *DB) *AddressRepository {
	return &AddressRepository{db: db}
}

func (r *AddressRepository) Create(ctx context.Context, a *address.Address) error {
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	a.UpdatedAt = time.Now()

	dbModel := toAddressModel(a)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create address: %w", err)
	}
	return nil
}

func (r *AddressRepository) GetByID(ctx context.Context, addressID uuid.UUID) (*address.Address, error) {
	var dbModel models.AddressModel
	err := r.db.DB.WithContext(ctx).Where("id = ?", addressID).First(&dbModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, address.ErrAddressNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get address: %w", err)
	}
	return toAddressEntity(&dbModel), nil
}

func (r *AddressRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*address.Address, error) {
	var dbModels []models.AddressModel
	err := r.db.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}

	addresses := make([]*address.Address, 0, len(dbModels))
	for i := range dbModels {
		addresses = append(addresses, toAddressEntity(&dbModels[i]))
	}
	return addresses, nil
}

func (r *AddressRepository) GetLatestForUser(ctx context.Context, userID uuid.UUID) (*address.Address, error) {
	var dbModel models.AddressModel
	err := r.db.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&dbModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, address.ErrAddressNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest address: %w", err)
	}
	return toAddressEntity(&dbModel), nil
}

// UpdateOwned updates only when the record belongs to userID, so ownership is
// enforced in the same statement.
func (r *AddressRepository) UpdateOwned(ctx context.Context, userID uuid.UUID, a *address.Address) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.AddressModel{}).
		Where("id = ? AND user_id = ?", a.ID, userID).
		Updates(map[string]interface{}{
			"street":      a.Street,
			"city":        a.City,
			"state":       a.State,
			"postal_code": a.PostalCode,
			"country":     a.Country,
			"phone":       a.Phone,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update address: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return address.ErrAddressNotFound
	}
	return nil
}

func (r *AddressRepository) DeleteOwned(ctx context.Context, userID, addressID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", addressID, userID).
		Delete(&models.AddressModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete address: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return address.ErrAddressNotFound
	}
	return nil
}

func toAddressModel(a *address.Address) *models.AddressModel {
	return &models.AddressModel{
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

func toAddressEntity(m *models.AddressModel) *address.Address {
	return &address.Address{
		ID:         m.ID,
		UserID:     m.UserID,
		Street:     m.Street,
		City:       m.City,
		State:      m.State,
		PostalCode: m.PostalCode,
		Country:    m.Country,
		Phone:      m.Phone,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
