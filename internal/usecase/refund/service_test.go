package refund

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	domainDelivery "rentease/internal/domain/delivery"
	domainReservation "rentease/internal/domain/reservation"
	domainUser "rentease/internal/domain/user"
	"rentease/internal/gateway"
	appErrors "rentease/pkg/errors"
)

type refundFixture struct {
	svc             *Service
	reservationRepo *MockReservationRepository
	deliveryRepo    *MockDeliveryRepository
	userRepo        *MockUserRepository
	gateway         *MockGateway
	mailer          *MockSender

	reservationID uuid.UUID
	paymentID     uuid.UUID
	renterID      uuid.UUID
}

func newRefundFixture() *refundFixture {
	f := &refundFixture{
		reservationRepo: new(MockReservationRepository),
		deliveryRepo:    new(MockDeliveryRepository),
		userRepo:        new(MockUserRepository),
		gateway:         new(MockGateway),
		mailer:          new(MockSender),
		reservationID:   uuid.New(),
		paymentID:       uuid.New(),
		renterID:        uuid.New(),
	}
	f.svc = NewService(f.reservationRepo, f.deliveryRepo, f.userRepo, f.gateway, f.mailer)
	return f
}

func (f *refundFixture) expectActiveReservation() {
	f.reservationRepo.On("GetByID", mock.Anything, f.reservationID).
		Return(&domainReservation.Reservation{
			ID:     f.reservationID,
			UserID: f.renterID,
			Status: domainReservation.StatusActive,
		}, nil)
}

func (f *refundFixture) expectPayment(amount float64) {
	f.reservationRepo.On("GetPaymentByID", mock.Anything, f.paymentID).
		Return(&domainReservation.Payment{
			ID:            f.paymentID,
			ReservationID: f.reservationID,
			PaymentID:     "pay_gw_1",
			Amount:        amount,
		}, nil)
}

func TestRequest_GatewayFailurePersistsNothing(t *testing.T) {
	f := newRefundFixture()
	f.expectActiveReservation()
	f.expectPayment(500)

	f.gateway.On("Refund", mock.Anything, "pay_gw_1", int64(50000)).
		Return(nil, appErrors.Upstream("payment gateway unreachable", nil))

	_, err := f.svc.Request(context.Background(), &RequestRefundRequest{
		ReservationID: f.reservationID,
		PaymentID:     f.paymentID,
		Amount:        500,
		Reason:        "item damaged on arrival",
	})

	assert.Error(t, err)
	assert.Equal(t, appErrors.CodeUpstream, appErrors.CodeOf(err))
	f.reservationRepo.AssertNotCalled(t, "FinalizeRefund", mock.Anything, mock.Anything, mock.Anything)
	f.reservationRepo.AssertNotCalled(t, "CreateRefund", mock.Anything, mock.Anything)
}

func TestRequest_SuccessCancelsReservationAndDelivery(t *testing.T) {
	f := newRefundFixture()
	f.expectActiveReservation()
	f.expectPayment(500)

	deliveryID := uuid.New()
	f.gateway.On("Refund", mock.Anything, "pay_gw_1", int64(50000)).
		Return(&gateway.RefundResult{RefundID: "rfnd_1", PaymentID: "pay_gw_1", Amount: 50000}, nil)
	f.deliveryRepo.On("GetByReservationID", mock.Anything, f.reservationID).
		Return(&domainDelivery.Delivery{ID: deliveryID, Status: domainDelivery.StatusDispatched}, nil)
	f.reservationRepo.On("FinalizeRefund", mock.Anything, mock.MatchedBy(func(r *domainReservation.Refund) bool {
		return r.ReservationID == f.reservationID &&
			r.Status == domainReservation.RefundStatusCompleted &&
			r.Amount == 500
	}), &deliveryID).Return(nil)
	f.userRepo.On("GetByID", mock.Anything, f.renterID).
		Return(&domainUser.User{ID: f.renterID, Email: "renter@example.com"}, nil)
	f.mailer.On("Send", "renter@example.com", mock.Anything, mock.Anything).Return()

	result, err := f.svc.Request(context.Background(), &RequestRefundRequest{
		ReservationID: f.reservationID,
		PaymentID:     f.paymentID,
		Amount:        500,
		Reason:        "item damaged on arrival",
	})

	assert.NoError(t, err)
	assert.Equal(t, domainReservation.RefundStatusCompleted, result.Status)
	f.reservationRepo.AssertExpectations(t)
}

func TestRequest_DeliveredItemKeepsDelivery(t *testing.T) {
	f := newRefundFixture()
	f.expectActiveReservation()
	f.expectPayment(200)

	f.gateway.On("Refund", mock.Anything, "pay_gw_1", int64(20000)).
		Return(&gateway.RefundResult{RefundID: "rfnd_2"}, nil)
	f.deliveryRepo.On("GetByReservationID", mock.Anything, f.reservationID).
		Return(&domainDelivery.Delivery{ID: uuid.New(), Status: domainDelivery.StatusDelivered}, nil)
	f.reservationRepo.On("FinalizeRefund", mock.Anything, mock.Anything, (*uuid.UUID)(nil)).Return(nil)
	f.userRepo.On("GetByID", mock.Anything, f.renterID).
		Return(&domainUser.User{ID: f.renterID, Email: "renter@example.com"}, nil)
	f.mailer.On("Send", mock.Anything, mock.Anything, mock.Anything).Return()

	_, err := f.svc.Request(context.Background(), &RequestRefundRequest{
		ReservationID: f.reservationID,
		PaymentID:     f.paymentID,
		Amount:        200,
		Reason:        "partial refund agreed",
	})

	assert.NoError(t, err)
	f.reservationRepo.AssertExpectations(t)
}

func TestRequestOwn_RenterCancelsOwnReservation(t *testing.T) {
	f := newRefundFixture()
	f.expectActiveReservation()
	f.expectPayment(400)

	f.gateway.On("Refund", mock.Anything, "pay_gw_1", int64(40000)).
		Return(&gateway.RefundResult{RefundID: "rfnd_3"}, nil)
	f.deliveryRepo.On("GetByReservationID", mock.Anything, f.reservationID).
		Return(nil, domainDelivery.ErrDeliveryNotFound)
	f.reservationRepo.On("FinalizeRefund", mock.Anything, mock.MatchedBy(func(r *domainReservation.Refund) bool {
		return r.UserID == f.renterID && r.Amount == 400
	}), (*uuid.UUID)(nil)).Return(nil)
	f.userRepo.On("GetByID", mock.Anything, f.renterID).
		Return(&domainUser.User{ID: f.renterID, Email: "renter@example.com"}, nil)
	f.mailer.On("Send", mock.Anything, mock.Anything, mock.Anything).Return()

	result, err := f.svc.RequestOwn(context.Background(), f.renterID, &RequestRefundRequest{
		ReservationID: f.reservationID,
		PaymentID:     f.paymentID,
		Amount:        400,
		Reason:        "plans changed, cancelling booking",
	})

	assert.NoError(t, err)
	assert.Equal(t, domainReservation.RefundStatusCompleted, result.Status)
	f.reservationRepo.AssertExpectations(t)
}

func TestRequestOwn_ForeignReservationLooksMissing(t *testing.T) {
	f := newRefundFixture()
	f.expectActiveReservation()

	_, err := f.svc.RequestOwn(context.Background(), uuid.New(), &RequestRefundRequest{
		ReservationID: f.reservationID,
		PaymentID:     f.paymentID,
		Amount:        400,
		Reason:        "attempt on someone else's booking",
	})

	assert.Error(t, err)
	assert.Equal(t, appErrors.CodeNotFound, appErrors.CodeOf(err))
	f.gateway.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything, mock.Anything)
	f.reservationRepo.AssertNotCalled(t, "FinalizeRefund", mock.Anything, mock.Anything, mock.Anything)
}

func TestRequest_AlreadyCancelledConflicts(t *testing.T) {
	f := newRefundFixture()
	f.reservationRepo.On("GetByID", mock.Anything, f.reservationID).
		Return(&domainReservation.Reservation{
			ID:     f.reservationID,
			Status: domainReservation.StatusCancelled,
		}, nil)

	_, err := f.svc.Request(context.Background(), &RequestRefundRequest{
		ReservationID: f.reservationID,
		PaymentID:     f.paymentID,
		Amount:        100,
		Reason:        "double refund attempt",
	})

	assert.Error(t, err)
	assert.Equal(t, appErrors.CodeConflict, appErrors.CodeOf(err))
	f.gateway.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything, mock.Anything)
}

func TestRequest_AmountAbovePaymentRejected(t *testing.T) {
	f := newRefundFixture()
	f.expectActiveReservation()
	f.expectPayment(100)

	_, err := f.svc.Request(context.Background(), &RequestRefundRequest{
		ReservationID: f.reservationID,
		PaymentID:     f.paymentID,
		Amount:        150,
		Reason:        "asking for too much",
	})

	assert.Error(t, err)
	assert.Equal(t, appErrors.CodeValidation, appErrors.CodeOf(err))
	f.gateway.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirm_SkipsGateway(t *testing.T) {
	f := newRefundFixture()
	f.expectActiveReservation()
	f.expectPayment(300)

	f.deliveryRepo.On("GetByReservationID", mock.Anything, f.reservationID).
		Return(nil, domainDelivery.ErrDeliveryNotFound)
	f.reservationRepo.On("FinalizeRefund", mock.Anything, mock.Anything, (*uuid.UUID)(nil)).Return(nil)
	f.userRepo.On("GetByID", mock.Anything, f.renterID).
		Return(&domainUser.User{ID: f.renterID, Email: "renter@example.com"}, nil)
	f.mailer.On("Send", mock.Anything, mock.Anything, mock.Anything).Return()

	result, err := f.svc.Confirm(context.Background(), &ConfirmRefundRequest{
		ReservationID: f.reservationID,
		PaymentID:     f.paymentID,
		Amount:        300,
		Reason:        "settled out of band",
	})

	assert.NoError(t, err)
	assert.Equal(t, domainReservation.RefundStatusCompleted, result.Status)
	f.gateway.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything, mock.Anything)
}
