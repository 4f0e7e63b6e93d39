package refund

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainDelivery "rentease/internal/domain/delivery"
	domainReservation "rentease/internal/domain/reservation"
	domainUser "rentease/internal/domain/user"
	"rentease/internal/gateway"
	"rentease/internal/logger"
	"rentease/internal/notification"
	appErrors "rentease/pkg/errors"
	"rentease/pkg/utils"
)

// Service implements refund use cases. A refund always cancels its
// reservation and, unless the item was already handed over, its delivery.
type Service struct {
	reservationRepo domainReservation.Repository
	deliveryRepo    domainDelivery.Repository
	userRepo        domainUser.Repository
	gateway         gateway.Gateway
	mailer          notification.Sender
}

// NewService creates a new refund service
func NewService(
	reservationRepo domainReservation.Repository,
	deliveryRepo domainDelivery.Repository,
	userRepo domainUser.Repository,
	gw gateway.Gateway,
	mailer notification.Sender,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		deliveryRepo:    deliveryRepo,
		userRepo:        userRepo,
		gateway:         gw,
		mailer:          mailer,
	}
}

// Request reverses a payment at the gateway and then records the refund,
// cancels the reservation and cancels the delivery in one transaction. A
// gateway failure persists nothing.
func (s *Service) Request(ctx context.Context, req *RequestRefundRequest) (*RefundResponse, error) {
	return s.request(ctx, req, nil)
}

// RequestOwn lets a renter cancel their own reservation. A reservation that
// belongs to someone else looks like it does not exist.
func (s *Service) RequestOwn(ctx context.Context, renterID uuid.UUID, req *RequestRefundRequest) (*RefundResponse, error) {
	return s.request(ctx, req, &renterID)
}

func (s *Service) request(ctx context.Context, req *RequestRefundRequest, actor *uuid.UUID) (*RefundResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}

	reservation, payment, err := s.loadAndCheck(ctx, req.ReservationID, req.PaymentID, req.Amount, actor)
	if err != nil {
		return nil, err
	}

	result, err := s.gateway.Refund(ctx, payment.PaymentID, toMinorUnits(req.Amount))
	if err != nil {
		logger.Error("Gateway refund failed",
			zap.String("reservation_id", req.ReservationID.String()),
			zap.String("gateway_payment_id", payment.PaymentID),
			zap.Error(err),
		)
		return nil, err
	}

	refund, err := s.finalize(ctx, reservation, payment, req.Amount, req.Reason)
	if err != nil {
		return nil, err
	}

	logger.Info("Refund completed",
		zap.String("refund_id", refund.ID.String()),
		zap.String("gateway_refund_id", result.RefundID),
		zap.String("reservation_id", reservation.ID.String()),
		zap.Float64("amount", req.Amount),
		zap.String("event", "refund_completed"),
	)

	s.notifyRenter(ctx, reservation, req.Amount)
	return ToRefundResponse(refund), nil
}

// Confirm records a refund that already settled at the gateway. No gateway
// call is made; the reservation and delivery are cancelled the same way.
func (s *Service) Confirm(ctx context.Context, req *ConfirmRefundRequest) (*RefundResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}

	reservation, payment, err := s.loadAndCheck(ctx, req.ReservationID, req.PaymentID, req.Amount, nil)
	if err != nil {
		return nil, err
	}

	refund, err := s.finalize(ctx, reservation, payment, req.Amount, req.Reason)
	if err != nil {
		return nil, err
	}

	logger.Info("Refund confirmed",
		zap.String("refund_id", refund.ID.String()),
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("event", "refund_confirmed"),
	)

	s.notifyRenter(ctx, reservation, req.Amount)
	return ToRefundResponse(refund), nil
}

func (s *Service) List(ctx context.Context) ([]*RefundResponse, error) {
	refunds, err := s.reservationRepo.ListRefunds(ctx)
	if err != nil {
		return nil, err
	}
	return ToRefundResponses(refunds), nil
}

// loadAndCheck verifies the refund preconditions: the reservation exists, is
// owned by the actor when one is given, and is not already cancelled; the
// payment exists and belongs to it; and the amount does not exceed what was
// paid.
func (s *Service) loadAndCheck(ctx context.Context, reservationID, paymentID uuid.UUID, amount float64, actor *uuid.UUID) (*domainReservation.Reservation, *domainReservation.Payment, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, domainReservation.ErrReservationNotFound) {
			return nil, nil, appErrors.NotFound("Reservation not found", err)
		}
		return nil, nil, err
	}
	if actor != nil && reservation.UserID != *actor {
		return nil, nil, appErrors.NotFound("Reservation not found", domainReservation.ErrReservationNotFound)
	}
	if reservation.Status == domainReservation.StatusCancelled {
		return nil, nil, appErrors.Conflict("Reservation is already cancelled", domainReservation.ErrAlreadyCancelled)
	}

	payment, err := s.reservationRepo.GetPaymentByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, domainReservation.ErrPaymentNotFound) {
			return nil, nil, appErrors.NotFound("Payment not found", err)
		}
		return nil, nil, err
	}
	if payment.ReservationID != reservation.ID {
		return nil, nil, appErrors.Validation("Payment does not belong to this reservation", nil)
	}

	if amount > payment.Amount {
		return nil, nil, appErrors.Validation(
			fmt.Sprintf("Refund amount %.2f exceeds payment amount %.2f", amount, payment.Amount),
			domainReservation.ErrRefundExceedsAmount,
		)
	}

	return reservation, payment, nil
}

// finalize writes the refund, cancels the reservation and cancels the
// delivery when the item has not reached the renter.
func (s *Service) finalize(ctx context.Context, reservation *domainReservation.Reservation, payment *domainReservation.Payment, amount float64, reason string) (*domainReservation.Refund, error) {
	refund := &domainReservation.Refund{
		ReservationID: reservation.ID,
		PaymentID:     payment.ID,
		UserID:        reservation.UserID,
		Amount:        amount,
		Reason:        reason,
		Status:        domainReservation.RefundStatusCompleted,
	}

	var cancelDeliveryID *uuid.UUID
	d, err := s.deliveryRepo.GetByReservationID(ctx, reservation.ID)
	if err != nil && !errors.Is(err, domainDelivery.ErrDeliveryNotFound) {
		return nil, err
	}
	if d != nil && !d.Status.Terminal() {
		cancelDeliveryID = &d.ID
	}

	if err := s.reservationRepo.FinalizeRefund(ctx, refund, cancelDeliveryID); err != nil {
		return nil, err
	}
	return refund, nil
}

func (s *Service) notifyRenter(ctx context.Context, reservation *domainReservation.Reservation, amount float64) {
	renter, err := s.userRepo.GetByID(ctx, reservation.UserID)
	if err != nil {
		logger.Warn("Skipping refund notification", zap.Error(err))
		return
	}
	s.mailer.Send(renter.Email, "Your refund has been processed",
		fmt.Sprintf("A refund of %.2f for reservation %s has been processed. The reservation is now cancelled.", amount, reservation.ID))
}

func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
