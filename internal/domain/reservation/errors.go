package reservation

import "errors"

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrRefundNotFound      = errors.New("refund not found")
	ErrAlreadyCancelled    = errors.New("reservation is already cancelled")
	ErrRefundExceedsAmount = errors.New("refund amount exceeds payment amount")
)
