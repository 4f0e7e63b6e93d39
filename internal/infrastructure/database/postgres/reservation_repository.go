package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rentease/internal/domain/delivery"
	"rentease/internal/domain/reservation"
	"rentease/internal/infrastructure/database/postgres/models"
)

type ReservationRepository struct {
	db *DB
}

func NewReservationRepository(db *DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	res.ID = uuid.New()
	res.CreatedAt = time.Now()
	res.UpdatedAt = time.Now()
	if res.Status == "" {
		res.Status = reservation.StatusActive
	}

	dbModel := toReservationModel(res)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}
	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, reservationID uuid.UUID) (*reservation.Reservation, error) {
	var dbModel models.ReservationModel
	err := r.db.DB.WithContext(ctx).Where("id = ?", reservationID).First(&dbModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, reservation.ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}
	return toReservationEntity(&dbModel), nil
}

func (r *ReservationRepository) ListByRenter(ctx context.Context, renterID uuid.UUID) ([]*reservation.Reservation, error) {
	var dbModels []models.ReservationModel
	err := r.db.DB.WithContext(ctx).
		Where("user_id = ?", renterID).
		Order("created_at DESC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return toReservationEntities(dbModels), nil
}

func (r *ReservationRepository) ListAll(ctx context.Context) ([]*reservation.Reservation, error) {
	var dbModels []models.ReservationModel
	if err := r.db.DB.WithContext(ctx).Order("created_at DESC").Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return toReservationEntities(dbModels), nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, reservationID uuid.UUID, status reservation.Status) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.ReservationModel{}).
		Where("id = ?", reservationID).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update reservation status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return reservation.ErrReservationNotFound
	}
	return nil
}

// CreateWithPaymentAndDelivery persists the three records in one transaction
// so a partial failure never leaves a reservation without its payment or
// delivery.
func (r *ReservationRepository) CreateWithPaymentAndDelivery(
	ctx context.Context,
	res *reservation.Reservation,
	p *reservation.Payment,
	d *delivery.Delivery,
) error {
	now := time.Now()

	res.ID = uuid.New()
	res.CreatedAt = now
	res.UpdatedAt = now
	if res.Status == "" {
		res.Status = reservation.StatusActive
	}

	p.ID = uuid.New()
	p.ReservationID = res.ID
	p.CreatedAt = now

	d.ID = uuid.New()
	d.ReservationID = res.ID
	d.CreatedAt = now
	d.UpdatedAt = now

	err := r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(toReservationModel(res)).Error; err != nil {
			return fmt.Errorf("create reservation: %w", err)
		}
		if err := tx.Create(toPaymentModel(p)).Error; err != nil {
			return fmt.Errorf("create payment: %w", err)
		}
		if err := tx.Create(toDeliveryModel(d)).Error; err != nil {
			return fmt.Errorf("create delivery: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create reservation with payment and delivery: %w", err)
	}
	return nil
}

func (r *ReservationRepository) ListPayments(ctx context.Context, reservationID uuid.UUID) ([]*reservation.Payment, error) {
	var dbModels []models.PaymentModel
	err := r.db.DB.WithContext(ctx).
		Where("reservation_id = ?", reservationID).
		Order("created_at ASC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	payments := make([]*reservation.Payment, 0, len(dbModels))
	for i := range dbModels {
		payments = append(payments, toPaymentEntity(&dbModels[i]))
	}
	return payments, nil
}

func (r *ReservationRepository) GetPaymentByID(ctx context.Context, paymentID uuid.UUID) (*reservation.Payment, error) {
	var dbModel models.PaymentModel
	err := r.db.DB.WithContext(ctx).Where("id = ?", paymentID).First(&dbModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, reservation.ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return toPaymentEntity(&dbModel), nil
}

func (r *ReservationRepository) CreateRefund(ctx context.Context, refund *reservation.Refund) error {
	refund.ID = uuid.New()
	refund.CreatedAt = time.Now()

	if err := r.db.DB.WithContext(ctx).Create(toRefundModel(refund)).Error; err != nil {
		return fmt.Errorf("failed to create refund: %w", err)
	}
	return nil
}

// FinalizeRefund records the refund, cancels the reservation and optionally
// cancels its delivery in a single transaction.
func (r *ReservationRepository) FinalizeRefund(
	ctx context.Context,
	refund *reservation.Refund,
	cancelDeliveryID *uuid.UUID,
) error {
	now := time.Now()
	refund.ID = uuid.New()
	refund.CreatedAt = now

	err := r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(toRefundModel(refund)).Error; err != nil {
			return fmt.Errorf("create refund: %w", err)
		}

		result := tx.Model(&models.ReservationModel{}).
			Where("id = ?", refund.ReservationID).
			Updates(map[string]interface{}{
				"status":     string(reservation.StatusCancelled),
				"updated_at": now,
			})
		if result.Error != nil {
			return fmt.Errorf("cancel reservation: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return reservation.ErrReservationNotFound
		}

		if cancelDeliveryID != nil {
			err := tx.Model(&models.DeliveryModel{}).
				Where("id = ?", *cancelDeliveryID).
				Updates(map[string]interface{}{
					"status":     string(delivery.StatusCancelled),
					"updated_at": now,
				}).Error
			if err != nil {
				return fmt.Errorf("cancel delivery: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to finalize refund: %w", err)
	}
	return nil
}

func (r *ReservationRepository) ListRefunds(ctx context.Context) ([]*reservation.Refund, error) {
	var dbModels []models.RefundModel
	if err := r.db.DB.WithContext(ctx).Order("created_at DESC").Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list refunds: %w", err)
	}

	refunds := make([]*reservation.Refund, 0, len(dbModels))
	for i := range dbModels {
		refunds = append(refunds, toRefundEntity(&dbModels[i]))
	}
	return refunds, nil
}

func toReservationModel(res *reservation.Reservation) *models.ReservationModel {
	return &models.ReservationModel{
		ID:         res.ID,
		UserID:     res.UserID,
		ListingID:  res.ListingID,
		StartDate:  res.StartDate,
		EndDate:    res.EndDate,
		TotalPrice: res.TotalPrice,
		Status:     string(res.Status),
		CreatedAt:  res.CreatedAt,
		UpdatedAt:  res.UpdatedAt,
	}
}

func toReservationEntity(m *models.ReservationModel) *reservation.Reservation {
	return &reservation.Reservation{
		ID:         m.ID,
		UserID:     m.UserID,
		ListingID:  m.ListingID,
		StartDate:  m.StartDate,
		EndDate:    m.EndDate,
		TotalPrice: m.TotalPrice,
		Status:     reservation.Status(m.Status),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func toReservationEntities(dbModels []models.ReservationModel) []*reservation.Reservation {
	reservations := make([]*reservation.Reservation, 0, len(dbModels))
	for i := range dbModels {
		reservations = append(reservations, toReservationEntity(&dbModels[i]))
	}
	return reservations
}

func toPaymentModel(p *reservation.Payment) *models.PaymentModel {
	return &models.PaymentModel{
		ID:            p.ID,
		ReservationID: p.ReservationID,
		UserID:        p.UserID,
		OrderID:       p.OrderID,
		PaymentID:     p.PaymentID,
		Signature:     p.Signature,
		Amount:        p.Amount,
		Status:        p.Status,
		CreatedAt:     p.CreatedAt,
	}
}

func toPaymentEntity(m *models.PaymentModel) *reservation.Payment {
	return &reservation.Payment{
		ID:            m.ID,
		ReservationID: m.ReservationID,
		UserID:        m.UserID,
		OrderID:       m.OrderID,
		PaymentID:     m.PaymentID,
		Signature:     m.Signature,
		Amount:        m.Amount,
		Status:        m.Status,
		CreatedAt:     m.CreatedAt,
	}
}

func toRefundModel(refund *reservation.Refund) *models.RefundModel {
	return &models.RefundModel{
		ID:            refund.ID,
		ReservationID: refund.ReservationID,
		PaymentID:     refund.PaymentID,
		UserID:        refund.UserID,
		Amount:        refund.Amount,
		Reason:        refund.Reason,
		Status:        refund.Status,
		CreatedAt:     refund.CreatedAt,
	}
}

func toRefundEntity(m *models.RefundModel) *reservation.Refund {
	return &reservation.Refund{
		ID:            m.ID,
		ReservationID: m.ReservationID,
		PaymentID:     m.PaymentID,
		UserID:        m.UserID,
		Amount:        m.Amount,
		Reason:        m.Reason,
		Status:        m.Status,
		CreatedAt:     m.CreatedAt,
	}
}
