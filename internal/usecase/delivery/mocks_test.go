package delivery

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	domainAddress "rentease/internal/domain/address"
	domainDelivery "rentease/internal/domain/delivery"
	domainListing "rentease/internal/domain/listing"
	domainReservation "rentease/internal/domain/reservation"
	domainUser "rentease/internal/domain/user"
)

type MockDeliveryRepository struct {
	mock.Mock
}

func (m *MockDeliveryRepository) Create(ctx context.Context, d *domainDelivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) GetByID(ctx context.Context, deliveryID uuid.UUID) (*domainDelivery.Delivery, error) {
	args := m.Called(ctx, deliveryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainDelivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetByReservationID(ctx context.Context, reservationID uuid.UUID) (*domainDelivery.Delivery, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainDelivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *domainDelivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) UpdateStatus(ctx context.Context, deliveryID uuid.UUID, status domainDelivery.Status) error {
	args := m.Called(ctx, deliveryID, status)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Assign(ctx context.Context, deliveryID, courierProfileID uuid.UUID, status domainDelivery.Status, trackingID *string) error {
	args := m.Called(ctx, deliveryID, courierProfileID, status, trackingID)
	return args.Error(0)
}

func (m *MockDeliveryRepository) SetAddress(ctx context.Context, deliveryID, addressID uuid.UUID, status domainDelivery.Status) error {
	args := m.Called(ctx, deliveryID, addressID, status)
	return args.Error(0)
}

func (m *MockDeliveryRepository) ResetAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDeliveryRepository) ListAll(ctx context.Context) ([]*domainDelivery.Delivery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domainDelivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) ListByRenter(ctx context.Context, renterID uuid.UUID) ([]*domainDelivery.Delivery, error) {
	args := m.Called(ctx, renterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domainDelivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) ListUnassigned(ctx context.Context) ([]*domainDelivery.BoardSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domainDelivery.BoardSummary), args.Error(1)
}

func (m *MockDeliveryRepository) ListSummaries(ctx context.Context) ([]*domainDelivery.BoardSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domainDelivery.BoardSummary), args.Error(1)
}

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) Create(ctx context.Context, r *domainReservation.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReservationRepository) GetByID(ctx context.Context, reservationID uuid.UUID) (*domainReservation.Reservation, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainReservation.Reservation), args.Error(1)
}

func (m *MockReservationRepository) ListByRenter(ctx context.Context, renterID uuid.UUID) ([]*domainReservation.Reservation, error) {
	args := m.Called(ctx, renterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domainReservation.Reservation), args.Error(1)
}

func (m *MockReservationRepository) ListAll(ctx context.Context) ([]*domainReservation.Reservation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domainReservation.Reservation), args.Error(1)
}

func (m *MockReservationRepository) UpdateStatus(ctx context.Context, reservationID uuid.UUID, status domainReservation.Status) error {
	args := m.Called(ctx, reservationID, status)
	return args.Error(0)
}

func (m *MockReservationRepository) CreateWithPaymentAndDelivery(ctx context.Context, r *domainReservation.Reservation, p *domainReservation.Payment, d *domainDelivery.Delivery) error {
	args := m.Called(ctx, r, p, d)
	return args.Error(0)
}

func (m *MockReservationRepository) ListPayments(ctx context.Context, reservationID uuid.UUID) ([]*domainReservation.Payment, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domainReservation.Payment), args.Error(1)
}

func (m *MockReservationRepository) GetPaymentByID(ctx context.Context, paymentID uuid.UUID) (*domainReservation.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainReservation.Payment), args.Error(1)
}

func (m *MockReservationRepository) CreateRefund(ctx context.Context, refund *domainReservation.Refund) error {
	args := m.Called(ctx, refund)
	return args.Error(0)
}

func (m *MockReservationRepository) FinalizeRefund(ctx context.Context, refund *domainReservation.Refund, cancelDeliveryID *uuid.UUID) error {
	args := m.Called(ctx, refund, cancelDeliveryID)
	return args.Error(0)
}

func (m *MockReservationRepository) ListRefunds(ctx context.Context) ([]*domainReservation.Refund, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domainReservation.Refund), args.Error(1)
}

type MockAddressRepository struct {
	mock.Mock
}

func (m *MockAddressRepository) Create(ctx context.Context, a *domainAddress.Address) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAddressRepository) GetByID(ctx context.Context, addressID uuid.UUID) (*domainAddress.Address, error) {
	args := m.Called(ctx, addressID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainAddress.Address), args.Error(1)
}

func (m *MockAddressRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domainAddress.Address, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domainAddress.Address), args.Error(1)
}

func (m *MockAddressRepository) GetLatestForUser(ctx context.Context, userID uuid.UUID) (*domainAddress.Address, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainAddress.Address), args.Error(1)
}

func (m *MockAddressRepository) UpdateOwned(ctx context.Context, userID uuid.UUID, a *domainAddress.Address) error {
	args := m.Called(ctx, userID, a)
	return args.Error(0)
}

func (m *MockAddressRepository) DeleteOwned(ctx context.Context, userID, addressID uuid.UUID) error {
	args := m.Called(ctx, userID, addressID)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domainUser.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domainUser.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainUser.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, userID uuid.UUID) (*domainUser.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainUser.User), args.Error(1)
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]*domainUser.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domainUser.User), args.Error(1)
}

func (m *MockUserRepository) ListByRole(ctx context.Context, role string) ([]*domainUser.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domainUser.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, u *domainUser.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, userID uuid.UUID, role string) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}

func (m *MockUserRepository) SetVerified(ctx context.Context, userID uuid.UUID, verified bool) error {
	args := m.Called(ctx, userID, verified)
	return args.Error(0)
}

type MockCourierProfileRepository struct {
	mock.Mock
}

func (m *MockCourierProfileRepository) Create(ctx context.Context, profile *domainUser.CourierProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockCourierProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domainUser.CourierProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainUser.CourierProfile), args.Error(1)
}

func (m *MockCourierProfileRepository) GetByID(ctx context.Context, profileID uuid.UUID) (*domainUser.CourierProfile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainUser.CourierProfile), args.Error(1)
}

type MockListingRepository struct {
	mock.Mock
}

func (m *MockListingRepository) GetByID(ctx context.Context, listingID uuid.UUID) (*domainListing.Listing, error) {
	args := m.Called(ctx, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainListing.Listing), args.Error(1)
}

func (m *MockListingRepository) ListAll(ctx context.Context) ([]*domainListing.Listing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domainListing.Listing), args.Error(1)
}

func (m *MockListingRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domainListing.Listing, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domainListing.Listing), args.Error(1)
}

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(to, subject, body string) {
	m.Called(to, subject, body)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishDeliveryStatus(deliveryID uuid.UUID, status domainDelivery.Status) {
	m.Called(deliveryID, status)
}
