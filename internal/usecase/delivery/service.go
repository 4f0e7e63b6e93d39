package delivery

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainAddress "rentease/internal/domain/address"
	domainDelivery "rentease/internal/domain/delivery"
	domainListing "rentease/internal/domain/listing"
	domainReservation "rentease/internal/domain/reservation"
	domainUser "rentease/internal/domain/user"
	"rentease/internal/logger"
	"rentease/internal/notification"
	appErrors "rentease/pkg/errors"
	"rentease/pkg/utils"
)

// placeholder value for courier profiles created before onboarding completes
const profilePlaceholder = "N/A"

// Service implements delivery fulfillment use cases
type Service struct {
	deliveryRepo    domainDelivery.Repository
	reservationRepo domainReservation.Repository
	addressRepo     domainAddress.Repository
	userRepo        domainUser.Repository
	profileRepo     domainUser.CourierProfileRepository
	listingRepo     domainListing.Repository
	mailer          notification.Sender
	events          notification.EventPublisher
}

// NewService creates a new delivery service
func NewService(
	deliveryRepo domainDelivery.Repository,
	reservationRepo domainReservation.Repository,
	addressRepo domainAddress.Repository,
	userRepo domainUser.Repository,
	profileRepo domainUser.CourierProfileRepository,
	listingRepo domainListing.Repository,
	mailer notification.Sender,
	events notification.EventPublisher,
) *Service {
	return &Service{
		deliveryRepo:    deliveryRepo,
		reservationRepo: reservationRepo,
		addressRepo:     addressRepo,
		userRepo:        userRepo,
		profileRepo:     profileRepo,
		listingRepo:     listingRepo,
		mailer:          mailer,
		events:          events,
	}
}

// CreateForReservation creates the delivery for a reservation, resolving the
// drop-off address from the explicit id, then the renter's most recent
// address. With no resolvable address the delivery starts as
// address_required. Idempotent: an existing delivery is returned unchanged.
// Only the reservation's renter and admins may create one; anyone else sees
// the reservation as missing.
func (s *Service) CreateForReservation(ctx context.Context, actorID uuid.UUID, role string, req *CreateDeliveryRequest) (*DeliveryResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}

	reservation, err := s.reservationRepo.GetByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, domainReservation.ErrReservationNotFound) {
			return nil, appErrors.NotFound("Reservation not found", err)
		}
		return nil, err
	}
	if role != domainUser.RoleAdmin && reservation.UserID != actorID {
		return nil, appErrors.NotFound("Reservation not found", domainReservation.ErrReservationNotFound)
	}

	existing, err := s.deliveryRepo.GetByReservationID(ctx, req.ReservationID)
	if err != nil && !errors.Is(err, domainDelivery.ErrDeliveryNotFound) {
		return nil, err
	}
	if existing != nil {
		return ToDeliveryResponse(existing), nil
	}

	addressID, status := s.resolveAddress(ctx, reservation.UserID, req.AddressID)

	d := &domainDelivery.Delivery{
		ReservationID: req.ReservationID,
		AddressID:     addressID,
		Status:        status,
	}
	if err := s.deliveryRepo.Create(ctx, d); err != nil {
		// Lost a race against a concurrent create; the winner's row is the
		// canonical one.
		if errors.Is(err, domainDelivery.ErrDeliveryExists) {
			winner, getErr := s.deliveryRepo.GetByReservationID(ctx, req.ReservationID)
			if getErr != nil {
				return nil, getErr
			}
			return ToDeliveryResponse(winner), nil
		}
		return nil, err
	}

	logger.Info("Delivery created",
		zap.String("delivery_id", d.ID.String()),
		zap.String("reservation_id", req.ReservationID.String()),
		zap.String("status", string(d.Status)),
		zap.String("event", "delivery_created"),
	)
	return ToDeliveryResponse(d), nil
}

// Assign attaches a courier to a delivery. The courier profile is created
// lazily with placeholder details when the delivery user has not onboarded
// yet. Assignment steps address_required to pending and pending to
// dispatched; past dispatched only the courier changes.
func (s *Service) Assign(ctx context.Context, deliveryID uuid.UUID, req *AssignRequest) (*DeliveryResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}

	d, err := s.deliveryRepo.GetByID(ctx, deliveryID)
	if err != nil {
		if errors.Is(err, domainDelivery.ErrDeliveryNotFound) {
			return nil, appErrors.NotFound("Delivery not found", err)
		}
		return nil, err
	}
	if d.Status.Terminal() {
		return nil, appErrors.Validation(
			fmt.Sprintf("Cannot assign a courier to a %s delivery", d.Status), nil)
	}

	courier, err := s.userRepo.GetByID(ctx, req.CourierUserID)
	if err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			return nil, appErrors.NotFound("Courier user not found", err)
		}
		return nil, err
	}
	if courier.Role != domainUser.RoleDelivery {
		return nil, appErrors.Validation("User is not a delivery account", nil)
	}

	profile, err := s.ensureCourierProfile(ctx, courier)
	if err != nil {
		return nil, err
	}

	nextStatus := domainDelivery.NextOnAssign(d.Status)
	if err := s.deliveryRepo.Assign(ctx, deliveryID, profile.ID, nextStatus, req.TrackingID); err != nil {
		return nil, err
	}

	if nextStatus != d.Status {
		s.events.PublishDeliveryStatus(deliveryID, nextStatus)
	}

	logger.Info("Courier assigned",
		zap.String("delivery_id", deliveryID.String()),
		zap.String("courier_profile_id", profile.ID.String()),
		zap.String("status", string(nextStatus)),
		zap.String("event", "delivery_assigned"),
	)

	updated, err := s.deliveryRepo.GetByID(ctx, deliveryID)
	if err != nil {
		return nil, err
	}
	return ToDeliveryResponse(updated), nil
}

// UpdateStatus moves a delivery forward along the lifecycle and notifies the
// renter and the lender. Notifications and events are best-effort.
func (s *Service) UpdateStatus(ctx context.Context, deliveryID uuid.UUID, req *UpdateStatusRequest) (*DeliveryResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}

	next := domainDelivery.Status(req.Status)
	if !domainDelivery.CourierUpdatable(next) {
		return nil, appErrors.Validation(
			fmt.Sprintf("Status %s cannot be set directly", next), nil)
	}

	d, err := s.deliveryRepo.GetByID(ctx, deliveryID)
	if err != nil {
		if errors.Is(err, domainDelivery.ErrDeliveryNotFound) {
			return nil, appErrors.NotFound("Delivery not found", err)
		}
		return nil, err
	}

	if err := domainDelivery.ValidateTransition(d.Status, next); err != nil {
		return nil, err
	}

	if err := s.deliveryRepo.UpdateStatus(ctx, deliveryID, next); err != nil {
		return nil, err
	}

	s.events.PublishDeliveryStatus(deliveryID, next)
	s.notifyStatusChange(ctx, d, next)

	logger.Info("Delivery status updated",
		zap.String("delivery_id", deliveryID.String()),
		zap.String("from", string(d.Status)),
		zap.String("to", string(next)),
		zap.String("event", "delivery_status_updated"),
	)

	d.Status = next
	return ToDeliveryResponse(d), nil
}

// AttachAddress binds one of the renter's addresses to the delivery. An
// address_required delivery becomes pending.
func (s *Service) AttachAddress(ctx context.Context, deliveryID, userID uuid.UUID, req *AttachAddressRequest) (*DeliveryResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}

	d, err := s.deliveryRepo.GetByID(ctx, deliveryID)
	if err != nil {
		if errors.Is(err, domainDelivery.ErrDeliveryNotFound) {
			return nil, appErrors.NotFound("Delivery not found", err)
		}
		return nil, err
	}
	if d.Status.Terminal() {
		return nil, appErrors.Validation(
			fmt.Sprintf("Cannot change the address of a %s delivery", d.Status), nil)
	}

	a, err := s.addressRepo.GetByID(ctx, req.AddressID)
	if err != nil {
		if errors.Is(err, domainAddress.ErrAddressNotFound) {
			return nil, appErrors.NotFound("Address not found", err)
		}
		return nil, err
	}
	if a.UserID != userID {
		return nil, appErrors.NotFound("Address not found", domainAddress.ErrAddressNotFound)
	}

	status := d.Status
	if status == domainDelivery.StatusAddressRequired {
		status = domainDelivery.StatusPending
	}
	if err := s.deliveryRepo.SetAddress(ctx, deliveryID, req.AddressID, status); err != nil {
		return nil, err
	}

	if status != d.Status {
		s.events.PublishDeliveryStatus(deliveryID, status)
	}

	d.AddressID = &req.AddressID
	d.Status = status
	return ToDeliveryResponse(d), nil
}

// ResetAll is the operator recovery switch: every delivery loses its courier
// and returns to pending.
func (s *Service) ResetAll(ctx context.Context) (*ResetResponse, error) {
	count, err := s.deliveryRepo.ResetAll(ctx)
	if err != nil {
		return nil, err
	}

	logger.Warn("All deliveries reset",
		zap.Int64("reset_count", count),
		zap.String("event", "deliveries_reset"),
	)
	return &ResetResponse{ResetCount: count}, nil
}

// Get returns one delivery. Admins and couriers may read any; a renter only
// sees deliveries of their own reservations, others look missing.
func (s *Service) Get(ctx context.Context, deliveryID, actorID uuid.UUID, role string) (*DeliveryResponse, error) {
	d, err := s.deliveryRepo.GetByID(ctx, deliveryID)
	if err != nil {
		if errors.Is(err, domainDelivery.ErrDeliveryNotFound) {
			return nil, appErrors.NotFound("Delivery not found", err)
		}
		return nil, err
	}

	if role != domainUser.RoleAdmin && role != domainUser.RoleDelivery {
		reservation, err := s.reservationRepo.GetByID(ctx, d.ReservationID)
		if err != nil {
			return nil, err
		}
		if reservation.UserID != actorID {
			return nil, appErrors.NotFound("Delivery not found", domainDelivery.ErrDeliveryNotFound)
		}
	}
	return ToDeliveryResponse(d), nil
}

// ListFor scopes the delivery list to the caller. Admins and couriers see the
// whole board; couriers additionally get their profile materialized on first
// visit. Renters see only deliveries of their own reservations.
func (s *Service) ListFor(ctx context.Context, actorID uuid.UUID, role string) ([]*DeliveryResponse, error) {
	switch role {
	case domainUser.RoleAdmin:
		deliveries, err := s.deliveryRepo.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return ToDeliveryResponses(deliveries), nil

	case domainUser.RoleDelivery:
		actor, err := s.userRepo.GetByID(ctx, actorID)
		if err != nil {
			if errors.Is(err, domainUser.ErrUserNotFound) {
				return nil, appErrors.NotFound("User not found", err)
			}
			return nil, err
		}
		if _, err := s.ensureCourierProfile(ctx, actor); err != nil {
			return nil, err
		}
		deliveries, err := s.deliveryRepo.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return ToDeliveryResponses(deliveries), nil

	default:
		deliveries, err := s.deliveryRepo.ListByRenter(ctx, actorID)
		if err != nil {
			return nil, err
		}
		return ToDeliveryResponses(deliveries), nil
	}
}

// resolveAddress picks the drop-off address: explicit id first, then the
// renter's newest address. No address means the delivery waits in
// address_required.
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

func (s *Service) ensureCourierProfile(ctx context.Context, courier *domainUser.User) (*domainUser.CourierProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, courier.ID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, domainUser.ErrProfileNotFound) {
		return nil, err
	}

	profile = &domainUser.CourierProfile{
		UserID:      courier.ID,
		Phone:       valueOr(courier.Phone, profilePlaceholder),
		NationalID:  valueOr(courier.NationalID, profilePlaceholder),
		BankAccount: valueOr(courier.BankAccount, profilePlaceholder),
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}

	logger.Info("Courier profile created lazily",
		zap.String("user_id", courier.ID.String()),
		zap.String("profile_id", profile.ID.String()),
		zap.String("event", "courier_profile_created"),
	)
	return profile, nil
}

// notifyStatusChange emails the renter and the lender. Lookup failures are
// logged and swallowed; the status change already committed.
func (s *Service) notifyStatusChange(ctx context.Context, d *domainDelivery.Delivery, next domainDelivery.Status) {
	reservation, err := s.reservationRepo.GetByID(ctx, d.ReservationID)
	if err != nil {
		logger.Warn("Skipping status notification, reservation lookup failed",
			zap.String("delivery_id", d.ID.String()),
			zap.Error(err),
		)
		return
	}

	subject := fmt.Sprintf("Delivery update: %s", next)
	body := fmt.Sprintf("The delivery for your reservation %s is now %s.", reservation.ID, next)

	if renter, err := s.userRepo.GetByID(ctx, reservation.UserID); err == nil {
		s.mailer.Send(renter.Email, subject, body)
	} else {
		logger.Warn("Skipping renter notification", zap.Error(err))
	}

	listing, err := s.listingRepo.GetByID(ctx, reservation.ListingID)
	if err != nil {
		logger.Warn("Skipping lender notification, listing lookup failed", zap.Error(err))
		return
	}
	if lender, err := s.userRepo.GetByID(ctx, listing.UserID); err == nil {
		s.mailer.Send(lender.Email, subject,
			fmt.Sprintf("The delivery for a reservation of %q is now %s.", listing.Title, next))
	} else {
		logger.Warn("Skipping lender notification", zap.Error(err))
	}
}

func valueOr(v *string, fallback string) string {
	if v != nil && *v != "" {
		return *v
	}
	return fallback
}
