package services

import (
	"testing"

	"carecircle-backend/models"

	"github.com/stretchr/testify/assert"
)

func pendingBooking() *models.Booking {
	return &models.Booking{
		ServiceName:   "Baby Care",
		Duration:      3,
		TotalCost:     45,
		UserEmail:     "a@x.com",
		Status:        models.StatusPending,
		PaymentStatus: models.PaymentUnpaid,
	}
}

func TestTransitionStatus_PendingToConfirmed(t *testing.T) {
	b := pendingBooking()

	err := TransitionStatus(b, models.StatusConfirmed)

	assert.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, b.Status)
}

func TestTransitionStatus_PendingToCompleted_Rejected(t *testing.T) {
	b := pendingBooking()

	err := TransitionStatus(b, models.StatusCompleted)

	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, models.StatusPending, b.Status)
}

func TestTransitionStatus_CompletedRequiresPayment(t *testing.T) {
	b := pendingBooking()
	b.Status = models.StatusConfirmed

	err := TransitionStatus(b, models.StatusCompleted)

	assert.ErrorIs(t, err, ErrPaymentRequired)
	assert.Equal(t, models.StatusConfirmed, b.Status)
}

func TestTransitionStatus_CancelFromNonTerminal(t *testing.T) {
	for _, status := range []string{models.StatusPending, models.StatusConfirmed} {
		b := pendingBooking()
		b.Status = status

		err := TransitionStatus(b, models.StatusCancelled)

		assert.NoError(t, err)
		assert.Equal(t, models.StatusCancelled, b.Status)
	}
}

func TestTransitionStatus_CancelTerminal_Rejected(t *testing.T) {
	for _, status := range []string{models.StatusCompleted, models.StatusCancelled} {
		b := pendingBooking()
		b.Status = status
		b.PaymentStatus = models.PaymentPaid

		err := TransitionStatus(b, models.StatusCancelled)

		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, status, b.Status, "terminal booking state must not change")
	}
}

func TestTransitionStatus_CancelledCannotBeConfirmed(t *testing.T) {
	b := pendingBooking()
	b.Status = models.StatusCancelled

	err := TransitionStatus(b, models.StatusConfirmed)

	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, models.StatusCancelled, b.Status)
}

func TestTransitionPayment_UnpaidToPaid(t *testing.T) {
	b := pendingBooking()

	err := TransitionPayment(b, models.PaymentPaid)

	assert.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, b.PaymentStatus)
}

func TestTransitionPayment_PaidIsFinal(t *testing.T) {
	b := pendingBooking()
	b.PaymentStatus = models.PaymentPaid

	assert.ErrorIs(t, TransitionPayment(b, models.PaymentPaid), ErrInvalidTransition)
	assert.ErrorIs(t, TransitionPayment(b, models.PaymentUnpaid), ErrInvalidTransition)
	assert.Equal(t, models.PaymentPaid, b.PaymentStatus)
}

func TestComputeTotalCost(t *testing.T) {
	// Baby Care at $15/hr for 3 hours
	assert.Equal(t, 45.0, ComputeTotalCost(3, 15))
	assert.Equal(t, 20.0, ComputeTotalCost(1, 20))
}

func TestTotalCost_SurvivesPriceEdits(t *testing.T) {
	service := models.Service{Name: "Baby Care", Price: 15}
	b := pendingBooking()
	b.TotalCost = ComputeTotalCost(b.Duration, service.Price)

	service.Price = 99 // later catalog edit

	assert.Equal(t, 45.0, b.TotalCost)
}

// Full lifecycle: admin confirms, user pays, admin completes.
func TestLifecycle_ConfirmPayComplete(t *testing.T) {
	b := pendingBooking()

	assert.NoError(t, TransitionStatus(b, models.StatusConfirmed))
	assert.NoError(t, TransitionPayment(b, models.PaymentPaid))
	assert.NoError(t, TransitionStatus(b, models.StatusCompleted))

	assert.Equal(t, models.StatusCompleted, b.Status)
	assert.Equal(t, models.PaymentPaid, b.PaymentStatus)
	assert.True(t, b.IsTerminal())
}
