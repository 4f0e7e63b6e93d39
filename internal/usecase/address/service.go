package address

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainAddress "rentease/internal/domain/address"
	"rentease/internal/logger"
	appErrors "rentease/pkg/errors"
	"rentease/pkg/utils"
)

// Service implements address book use cases. Every operation is scoped to the
// calling user so one renter can never read or mutate another's addresses.
type Service struct {
	addressRepo domainAddress.Repository
}

func NewService(addressRepo domainAddress.Repository) *Service {
	return &Service{addressRepo: addressRepo}
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, req *CreateAddressRequest) (*AddressResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}

	a := &domainAddress.Address{
		UserID:     userID,
		Street:     req.Street,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		Phone:      req.Phone,
	}
	if err := s.addressRepo.Create(ctx, a); err != nil {
		return nil, err
	}

	logger.Info("Address created",
		zap.String("address_id", a.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("event", "address_created"),
	)
	return ToAddressResponse(a), nil
}

func (s *Service) Get(ctx context.Context, userID, addressID uuid.UUID) (*AddressResponse, error) {
	a, err := s.addressRepo.GetByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, domainAddress.ErrAddressNotFound) {
			return nil, appErrors.NotFound("Address not found", err)
		}
		return nil, err
	}
	// Ownership violations look identical to missing records.
	if a.UserID != userID {
		return nil, appErrors.NotFound("Address not found", domainAddress.ErrAddressNotFound)
	}
	return ToAddressResponse(a), nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*AddressResponse, error) {
	addresses, err := s.addressRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToAddressResponses(addresses), nil
}

func (s *Service) Update(ctx context.Context, userID, addressID uuid.UUID, req *UpdateAddressRequest) (*AddressResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}

	a, err := s.addressRepo.GetByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, domainAddress.ErrAddressNotFound) {
			return nil, appErrors.NotFound("Address not found", err)
		}
		return nil, err
	}
	if a.UserID != userID {
		return nil, appErrors.NotFound("Address not found", domainAddress.ErrAddressNotFound)
	}

	if req.Street != nil {
		a.Street = *req.Street
	}
	if req.City != nil {
		a.City = *req.City
	}
	if req.State != nil {
		a.State = *req.State
	}
	if req.PostalCode != nil {
		a.PostalCode = *req.PostalCode
	}
	if req.Country != nil {
		a.Country = *req.Country
	}
	if req.Phone != nil {
		a.Phone = *req.Phone
	}
	a.UpdatedAt = time.Now()

	if err := s.addressRepo.UpdateOwned(ctx, userID, a); err != nil {
		if errors.Is(err, domainAddress.ErrAddressNotFound) {
			return nil, appErrors.NotFound("Address not found", err)
		}
		return nil, err
	}
	return ToAddressResponse(a), nil
}

func (s *Service) Delete(ctx context.Context, userID, addressID uuid.UUID) error {
	if err := s.addressRepo.DeleteOwned(ctx, userID, addressID); err != nil {
		if errors.Is(err, domainAddress.ErrAddressNotFound) {
			return appErrors.NotFound("Address not found", err)
		}
		return err
	}

	logger.Info("Address deleted",
		zap.String("address_id", addressID.String()),
		zap.String("user_id", userID.String()),
		zap.String("event", "address_deleted"),
	)
	return nil
}
