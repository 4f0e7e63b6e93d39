package gateway

import "context"

// Order is a gateway payment order awaiting checkout.
type Order struct {
	OrderID  string
	Amount   int64 // minor units
	Currency string
	Receipt  string
}

// RefundResult is the gateway's acknowledgement of a reversal.
type RefundResult struct {
	RefundID  string
	PaymentID string
	Amount    int64 // minor units
}

// Gateway is the payment-processing contract this core depends on. Amounts are
// minor units (paise for INR).
type Gateway interface {
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*Order, error)
	Refund(ctx context.Context, paymentID string, amountMinor int64) (*RefundResult, error)
}
