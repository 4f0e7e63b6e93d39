package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rentease/internal/domain/delivery"
	"rentease/internal/infrastructure/database/postgres/models"
)

type DeliveryRepository struct {
	db *DB
}

func NewDeliveryRepository(db *DB) *DeliveryRepository {
	return &DeliveryRepository{db: db}
}

func (r *DeliveryRepository) Create(ctx context.Context, d *delivery.Delivery) error {
	d.ID = uuid.New()
	d.CreatedAt = time.Now()
	d.UpdatedAt = time.Now()
	if d.Status == "" {
		d.Status = delivery.StatusPending
	}

	dbModel := toDeliveryModel(d)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return delivery.ErrDeliveryExists
		}
		return fmt.Errorf("failed to create delivery: %w", err)
	}
	return nil
}

func (r *DeliveryRepository) GetByID(ctx context.Context, deliveryID uuid.UUID) (*delivery.Delivery, error) {
	var dbModel models.DeliveryModel
	err := r.db.DB.WithContext(ctx).Where("id = ?", deliveryID).First(&dbModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, delivery.ErrDeliveryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery: %w", err)
	}
	return toDeliveryEntity(&dbModel), nil
}

func (r *DeliveryRepository) GetByReservationID(ctx context.Context, reservationID uuid.UUID) (*delivery.Delivery, error) {
	var dbModel models.DeliveryModel
	err := r.db.DB.WithContext(ctx).Where("reservation_id = ?", reservationID).First(&dbModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, delivery.ErrDeliveryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery by reservation: %w", err)
	}
	return toDeliveryEntity(&dbModel), nil
}

func (r *DeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	d.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).
		Model(&models.DeliveryModel{}).
		Where("id = ?", d.ID).
		Updates(map[string]interface{}{
			"address_id":         d.AddressID,
			"courier_profile_id": d.CourierProfileID,
			"status":             string(d.Status),
			"tracking_id":        d.TrackingID,
			"updated_at":         d.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update delivery: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return delivery.ErrDeliveryNotFound
	}
	return nil
}

func (r *DeliveryRepository) UpdateStatus(ctx context.Context, deliveryID uuid.UUID, status delivery.Status) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.DeliveryModel{}).
		Where("id = ?", deliveryID).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update delivery status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return delivery.ErrDeliveryNotFound
	}
	return nil
}

func (r *DeliveryRepository) Assign(ctx context.Context, deliveryID, courierProfileID uuid.UUID, status delivery.Status, trackingID *string) error {
	updates := map[string]interface{}{
		"courier_profile_id": courierProfileID,
		"status":             string(status),
		"updated_at":         time.Now(),
	}
	if trackingID != nil {
		updates["tracking_id"] = *trackingID
	}

	result := r.db.DB.WithContext(ctx).
		Model(&models.DeliveryModel{}).
		Where("id = ?", deliveryID).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to assign delivery: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return delivery.ErrDeliveryNotFound
	}
	return nil
}

func (r *DeliveryRepository) SetAddress(ctx context.Context, deliveryID, addressID uuid.UUID, status delivery.Status) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.DeliveryModel{}).
		Where("id = ?", deliveryID).
		Updates(map[string]interface{}{
			"address_id": addressID,
			"status":     string(status),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to set delivery address: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return delivery.ErrDeliveryNotFound
	}
	return nil
}

// ResetAll unassigns every delivery and forces status back to pending. This is
// the single administrative override that moves statuses backward.
func (r *DeliveryRepository) ResetAll(ctx context.Context) (int64, error) {
	result := r.db.DB.WithContext(ctx).
		Model(&models.DeliveryModel{}).
		Where("1 = 1").
		Updates(map[string]interface{}{
			"courier_profile_id": nil,
			"status":             string(delivery.StatusPending),
			"updated_at":         time.Now(),
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to reset deliveries: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *DeliveryRepository) ListAll(ctx context.Context) ([]*delivery.Delivery, error) {
	var dbModels []models.DeliveryModel
	if err := r.db.DB.WithContext(ctx).Order("created_at DESC").Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list deliveries: %w", err)
	}
	return toDeliveryEntities(dbModels), nil
}

// ListByRenter returns deliveries whose reservation belongs to the renter.
func (r *DeliveryRepository) ListByRenter(ctx context.Context, renterID uuid.UUID) ([]*delivery.Delivery, error) {
	var dbModels []models.DeliveryModel
	err := r.db.DB.WithContext(ctx).
		Joins("JOIN reservations ON reservations.id = deliveries.reservation_id").
		Where("reservations.user_id = ?", renterID).
		Order("deliveries.created_at DESC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list deliveries by renter: %w", err)
	}
	return toDeliveryEntities(dbModels), nil
}

// ListUnassigned returns deliveries with no courier or still needing address
// setup, newest first.
func (r *DeliveryRepository) ListUnassigned(ctx context.Context) ([]*delivery.BoardSummary, error) {
	var dbModels []models.DeliveryModel
	err := r.db.DB.WithContext(ctx).
		Where("courier_profile_id IS NULL OR status = ?", string(delivery.StatusAddressRequired)).
		Order("created_at DESC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list unassigned deliveries: %w", err)
	}
	return toBoardSummaries(dbModels), nil
}

func (r *DeliveryRepository) ListSummaries(ctx context.Context) ([]*delivery.BoardSummary, error) {
	var dbModels []models.DeliveryModel
	err := r.db.DB.WithContext(ctx).
		Select("id", "status", "created_at").
		Order("created_at DESC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list delivery summaries: %w", err)
	}
	return toBoardSummaries(dbModels), nil
}

func toDeliveryModel(d *delivery.Delivery) *models.DeliveryModel {
	return &models.DeliveryModel{
		ID:               d.ID,
		ReservationID:    d.ReservationID,
		AddressID:        d.AddressID,
		CourierProfileID: d.CourierProfileID,
		Status:           string(d.Status),
		TrackingID:       d.TrackingID,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func toDeliveryEntity(m *models.DeliveryModel) *delivery.Delivery {
	return &delivery.Delivery{
		ID:               m.ID,
		ReservationID:    m.ReservationID,
		AddressID:        m.AddressID,
		CourierProfileID: m.CourierProfileID,
		Status:           delivery.Status(m.Status),
		TrackingID:       m.TrackingID,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func toDeliveryEntities(dbModels []models.DeliveryModel) []*delivery.Delivery {
	deliveries := make([]*delivery.Delivery, 0, len(dbModels))
	for i := range dbModels {
		deliveries = append(deliveries, toDeliveryEntity(&dbModels[i]))
	}
	return deliveries
}

func toBoardSummaries(dbModels []models.DeliveryModel) []*delivery.BoardSummary {
	summaries := make([]*delivery.BoardSummary, 0, len(dbModels))
	for i := range dbModels {
		summaries = append(summaries, &delivery.BoardSummary{
			ID:        dbModels[i].ID,
			Status:    delivery.Status(dbModels[i].Status),
			CreatedAt: dbModels[i].CreatedAt,
		})
	}
	return summaries
}
