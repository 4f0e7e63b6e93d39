package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rentease/internal/domain/listing"
	"rentease/internal/infrastructure/database/postgres/models"
)

type ListingRepository struct {
	db *DB
}

func NewListingRepository(db *DB) *ListingRepository {
	return &ListingRepository{db: db}
}

func (r *ListingRepository) GetByID(ctx context.Context, listingID uuid.UUID) (*listing.Listing, error) {
	var dbModel models.ListingModel
	err := r.db.DB.WithContext(ctx).Where("id = ?", listingID).First(&dbModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, listing.ErrListingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return toListingEntity(&dbModel), nil
}

func (r *ListingRepository) ListAll(ctx context.Context) ([]*listing.Listing, error) {
	var dbModels []models.ListingModel
	if err := r.db.DB.WithContext(ctx).Order("created_at DESC").Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}

	listings := make([]*listing.Listing, 0, len(dbModels))
	for i := range dbModels {
		listings = append(listings, toListingEntity(&dbModels[i]))
	}
	return listings, nil
}

func (r *ListingRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*listing.Listing, error) {
	var dbModels []models.ListingModel
	err := r.db.DB.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list listings by owner: %w", err)
	}

	listings := make([]*listing.Listing, 0, len(dbModels))
	for i := range dbModels {
		listings = append(listings, toListingEntity(&dbModels[i]))
	}
	return listings, nil
}

func toListingEntity(m *models.ListingModel) *listing.Listing {
	return &listing.Listing{
		ID:          m.ID,
		UserID:      m.UserID,
		Title:       m.Title,
		Description: m.Description,
		Price:       m.Price,
		Category:    m.Category,
		Location:    m.Location,
		ItemCount:   m.ItemCount,
		CreatedAt:   m.CreatedAt,
	}
}
