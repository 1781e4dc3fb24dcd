// services/lifecycle.go
package services

import (
	"errors"
	"fmt"

	"carecircle-backend/models"
)

var (
	ErrInvalidTransition = errors.New("invalid booking transition")
	ErrPaymentRequired   = errors.New("booking must be paid before it can be completed")
)

// statusTransitions is the single source of truth for the booking
// lifecycle. Completed and Cancelled are terminal and have no entry.
var statusTransitions = map[string][]string{
	models.StatusPending:   {models.StatusConfirmed, models.StatusCancelled},
	models.StatusConfirmed: {models.StatusCompleted, models.StatusCancelled},
}

func canTransition(current, next string) bool {
	for _, allowed := range statusTransitions[current] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionStatus validates a requested status change against the
// transition table and applies it. Illegitimate transitions (including
// cancelling a terminal booking) are rejected here, not left to UI
// affordances.
func TransitionStatus(b *models.Booking, next string) error {
	if !canTransition(b.Status, next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, next)
	}
	if next == models.StatusCompleted && b.PaymentStatus != models.PaymentPaid {
		return ErrPaymentRequired
	}
	b.Status = next
	return nil
}

// TransitionPayment applies a payment status change. Unpaid -> Paid is the
// only legal move on this axis.
func TransitionPayment(b *models.Booking, next string) error {
	if b.PaymentStatus != models.PaymentUnpaid || next != models.PaymentPaid {
		return fmt.Errorf("%w: payment %s -> %s", ErrInvalidTransition, b.PaymentStatus, next)
	}
	b.PaymentStatus = next
	return nil
}

// ComputeTotalCost fixes the booking price at creation time. Later catalog
// price edits never touch existing bookings.
func ComputeTotalCost(duration int, hourlyPrice float64) float64 {
	return float64(duration) * hourlyPrice
}
