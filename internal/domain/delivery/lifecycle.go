package delivery

import (
	"fmt"

	appErrors "rentease/pkg/errors"
)

// State machine for delivery status transitions. Forward-only: the bulk reset
// is an administrative override that bypasses this table entirely.
var validTransitions = map[Status][]Status{
	StatusAddressRequired: {
		StatusPending,
		StatusCancelled,
	},
	StatusPending: {
		StatusDispatched,
		StatusCancelled,
	},
	StatusDispatched: {
		StatusOutForDelivery,
		StatusCancelled,
	},
	StatusOutForDelivery: {
		StatusDelivered,
		StatusCancelled,
	},
	StatusDelivered: {
		// Terminal state - no transitions
	},
	StatusCancelled: {
		// Terminal state - no transitions
	},
}

// ValidateTransition checks if a status transition is allowed.
func ValidateTransition(current, next Status) error {
	allowed, exists := validTransitions[current]
	if !exists {
		return appErrors.Validation(
			fmt.Sprintf("Unknown current status: %s", current),
			nil,
		)
	}

	for _, s := range allowed {
		if next == s {
			return nil
		}
	}

	return appErrors.Validation(
		fmt.Sprintf("Cannot transition from %s to %s", current, next),
		nil,
	)
}

// AllowedTransitions returns allowed next statuses.
func AllowedTransitions(current Status) []Status {
	return validTransitions[current]
}

// NextOnAssign returns the status a delivery steps to when a courier is
// assigned. Past dispatched the assignment changes the courier only.
func NextOnAssign(current Status) Status {
	switch current {
	case StatusAddressRequired:
		return StatusPending
	case StatusPending:
		return StatusDispatched
	default:
		return current
	}
}
