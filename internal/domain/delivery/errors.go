package delivery

import "errors"

var (
	ErrDeliveryNotFound  = errors.New("delivery not found")
	ErrDeliveryExists    = errors.New("delivery already exists for reservation")
	ErrInvalidStatus     = errors.New("invalid delivery status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrCourierRequired   = errors.New("assignee must have delivery role")
	ErrAddressRequired   = errors.New("delivery address is required")
)
