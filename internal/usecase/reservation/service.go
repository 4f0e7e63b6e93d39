package reservation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"rentease/internal/config"
	domainAddress "rentease/internal/domain/address"
	domainDelivery "rentease/internal/domain/delivery"
	domainListing "rentease/internal/domain/listing"
	domainReservation "rentease/internal/domain/reservation"
	domainUser "rentease/internal/domain/user"
	"rentease/internal/gateway"
	"rentease/internal/logger"
	appErrors "rentease/pkg/errors"
	"rentease/pkg/utils"
)

// Service implements reservation and checkout use cases
type Service struct {
	reservationRepo domainReservation.Repository
	deliveryRepo    domainDelivery.Repository
	listingRepo     domainListing.Repository
	addressRepo     domainAddress.Repository
	gateway         gateway.Gateway
	config          *config.Config
}

// NewService creates a new reservation service
func NewService(
	reservationRepo domainReservation.Repository,
	deliveryRepo domainDelivery.Repository,
	listingRepo domainListing.Repository,
	addressRepo domainAddress.Repository,
	gw gateway.Gateway,
	cfg *config.Config,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		deliveryRepo:    deliveryRepo,
		listingRepo:     listingRepo,
		addressRepo:     addressRepo,
		gateway:         gw,
		config:          cfg,
	}
}

// Create books a listing without payment. The delivery bridge is non-fatal: a
// reservation stands even when its delivery row could not be created.
func (s *Service) Create(ctx context.Context, renterID uuid.UUID, req *CreateReservationRequest) (*ReservationResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}

	listing, err := s.listingRepo.GetByID(ctx, req.ListingID)
	if err != nil {
		if errors.Is(err, domainListing.ErrListingNotFound) {
			return nil, appErrors.NotFound("Listing not found", err)
		}
		return nil, err
	}

	r := &domainReservation.Reservation{
		UserID:     renterID,
		ListingID:  req.ListingID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		TotalPrice: listing.Price * rentalDays(req.StartDate, req.EndDate),
		Status:     domainReservation.StatusActive,
	}
	if err := s.reservationRepo.Create(ctx, r); err != nil {
		return nil, err
	}

	addressID, status := s.resolveAddress(ctx, renterID, nil)
	d := &domainDelivery.Delivery{
		ReservationID: r.ID,
		AddressID:     addressID,
		Status:        status,
	}
	if err := s.deliveryRepo.Create(ctx, d); err != nil {
		logger.Warn("Reservation created but delivery bridge failed",
			zap.String("reservation_id", r.ID.String()),
			zap.Error(err),
		)
	}

	logger.Info("Reservation created",
		zap.String("reservation_id", r.ID.String()),
		zap.String("renter_id", renterID.String()),
		zap.String("event", "reservation_created"),
	)
	return ToReservationResponse(r), nil
}

// CreateOrder opens a gateway payment order. Amounts come in as major units
// and go out in minor units.
func (s *Service) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*OrderResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}

	receipt := fmt.Sprintf("rcpt_%d", time.Now().UnixMilli())
	order, err := s.gateway.CreateOrder(ctx, toMinorUnits(req.Amount), s.config.Gateway.Currency, receipt)
	if err != nil {
		return nil, err
	}

	logger.Info("Payment order created",
		zap.String("order_id", order.OrderID),
		zap.Int64("amount", order.Amount),
		zap.String("event", "payment_order_created"),
	)
	return &OrderResponse{
		OrderID:  order.OrderID,
		Amount:   order.Amount,
		Currency: order.Currency,
		Receipt:  order.Receipt,
	}, nil
}

// VerifyPayment checks the gateway signature, then persists the reservation,
// the payment and the delivery in one transaction. A bad signature persists
// nothing.
func (s *Service) VerifyPayment(ctx context.Context, renterID uuid.UUID, req *VerifyPaymentRequest) (*CheckoutResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}

	if !gateway.VerifySignature(req.OrderID, req.PaymentID, req.Signature, s.config.Gateway.KeySecret) {
		logger.Warn("Payment signature rejected",
			zap.String("order_id", req.OrderID),
			zap.String("renter_id", renterID.String()),
			zap.String("event", "payment_signature_rejected"),
		)
		return nil, appErrors.Authentication("Payment signature verification failed", nil)
	}

	if _, err := s.listingRepo.GetByID(ctx, req.ListingID); err != nil {
		if errors.Is(err, domainListing.ErrListingNotFound) {
			return nil, appErrors.NotFound("Listing not found", err)
		}
		return nil, err
	}

	r := &domainReservation.Reservation{
		UserID:     renterID,
		ListingID:  req.ListingID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		TotalPrice: req.TotalPrice,
		Status:     domainReservation.StatusActive,
	}
	p := &domainReservation.Payment{
		UserID:    renterID,
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
		Amount:    req.TotalPrice,
		Status:    domainReservation.PaymentStatusPaid,
	}

	addressID, status := s.resolveAddress(ctx, renterID, req.AddressID)
	d := &domainDelivery.Delivery{
		AddressID: addressID,
		Status:    status,
	}

	if err := s.reservationRepo.CreateWithPaymentAndDelivery(ctx, r, p, d); err != nil {
		return nil, err
	}

	logger.Info("Payment verified and checkout persisted",
		zap.String("reservation_id", r.ID.String()),
		zap.String("order_id", req.OrderID),
		zap.String("delivery_status", string(d.Status)),
		zap.String("event", "payment_verified"),
	)

	return &CheckoutResponse{
		Reservation: ToReservationResponse(r),
		PaymentID:   p.ID,
		DeliveryID:  d.ID,
		Status:      string(d.Status),
	}, nil
}

func (s *Service) Get(ctx context.Context, reservationID uuid.UUID) (*ReservationResponse, error) {
	r, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, domainReservation.ErrReservationNotFound) {
			return nil, appErrors.NotFound("Reservation not found", err)
		}
		return nil, err
	}
	return ToReservationResponse(r), nil
}

// ListFor returns every reservation for admins and only the caller's own for
// everyone else.
func (s *Service) ListFor(ctx context.Context, actorID uuid.UUID, role string) ([]*ReservationResponse, error) {
	if role == domainUser.RoleAdmin {
		reservations, err := s.reservationRepo.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return ToReservationResponses(reservations), nil
	}

	reservations, err := s.reservationRepo.ListByRenter(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return ToReservationResponses(reservations), nil
}

func (s *Service) resolveAddress(ctx context.Context, renterID uuid.UUID, explicit *uuid.UUID) (*uuid.UUID, domainDelivery.Status) {
	if explicit != nil {
		if a, err := s.addressRepo.GetByID(ctx, *explicit); err == nil && a.UserID == renterID {
			return explicit, domainDelivery.StatusPending
		}
	}

	latest, err := s.addressRepo.GetLatestForUser(ctx, renterID)
	if err != nil {
		return nil, domainDelivery.StatusAddressRequired
	}
	return &latest.ID, domainDelivery.StatusPending
}

func rentalDays(start, end time.Time) float64 {
	days := math.Ceil(end.Sub(start).Hours() / 24)
	if days < 1 {
		days = 1
	}
	return days
}

func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
