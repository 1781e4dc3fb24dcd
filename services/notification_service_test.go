package services

import (
	"context"
	"errors"
	"testing"

	"carecircle-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// --- Fake transports ---

type fakeEmailSender struct {
	sendFn func(ctx context.Context, to, subject, body string) error
	sent   int
}

func (f *fakeEmailSender) Send(ctx context.Context, to, subject, body string) error {
	f.sent++
	if f.sendFn != nil {
		return f.sendFn(ctx, to, subject, body)
	}
	return nil
}

type fakeSMSSender struct {
	sendFn func(to, body string) error
}

func (f *fakeSMSSender) Send(to, body string) error {
	if f.sendFn != nil {
		return f.sendFn(to, body)
	}
	return nil
}

// --- Tests ---

func sampleBooking() *models.Booking {
	return &models.Booking{
		ID:            uuid.New(),
		ServiceName:   "Baby Care",
		Duration:      3,
		TotalCost:     45,
		UserEmail:     "a@x.com",
		Status:        models.StatusPending,
		PaymentStatus: models.PaymentUnpaid,
	}
}

func TestBuildBookingNotifications_EmailOnly(t *testing.T) {
	b := sampleBooking()

	rows := BuildBookingNotifications(b, &models.User{Email: "a@x.com"})

	assert.Len(t, rows, 1)
	assert.Equal(t, models.ChannelEmail, rows[0].Channel)
	assert.Equal(t, "a@x.com", rows[0].Recipient)
	assert.Equal(t, models.NotificationPending, rows[0].Status)
	assert.Equal(t, b.ID, rows[0].BookingID)
	assert.Contains(t, rows[0].Subject, "Invoice")
	assert.Contains(t, rows[0].Body, "Baby Care")
	assert.Contains(t, rows[0].Body, "$45.00")
	assert.Contains(t, rows[0].Body, "3 Hours")
}

func TestBuildBookingNotifications_WithContactAddsSMS(t *testing.T) {
	b := sampleBooking()
	u := &models.User{Email: "a@x.com", Contact: "+8801712345678"}

	rows := BuildBookingNotifications(b, u)

	assert.Len(t, rows, 2)
	assert.Equal(t, models.ChannelSMS, rows[1].Channel)
	assert.Equal(t, "+8801712345678", rows[1].Recipient)
	assert.Contains(t, rows[1].Body, "Baby Care")
}

func TestBuildBookingNotifications_NilUser(t *testing.T) {
	rows := BuildBookingNotifications(sampleBooking(), nil)

	assert.Len(t, rows, 1)
	assert.Equal(t, models.ChannelEmail, rows[0].Channel)
}

func TestAttempt_Success(t *testing.T) {
	email := &fakeEmailSender{}
	svc := &NotificationService{email: email}

	n := &models.Notification{
		Channel:   models.ChannelEmail,
		Recipient: "a@x.com",
		Status:    models.NotificationPending,
	}

	svc.Attempt(n)

	assert.Equal(t, models.NotificationSent, n.Status)
	assert.Equal(t, 1, n.Attempts)
	assert.NotNil(t, n.SentAt)
	assert.Empty(t, n.LastError)
	assert.Equal(t, 1, email.sent)
}

func TestAttempt_FailureStaysPendingUntilCap(t *testing.T) {
	email := &fakeEmailSender{
		sendFn: func(ctx context.Context, to, subject, body string) error {
			return errors.New("connection refused")
		},
	}
	svc := &NotificationService{email: email}

	n := &models.Notification{
		Channel:   models.ChannelEmail,
		Recipient: "a@x.com",
		Status:    models.NotificationPending,
	}

	for i := 1; i < MaxAttempts; i++ {
		svc.Attempt(n)
		assert.Equal(t, models.NotificationPending, n.Status, "attempt %d should leave row pending", i)
		assert.Equal(t, i, n.Attempts)
		assert.Contains(t, n.LastError, "connection refused")
	}

	svc.Attempt(n)

	assert.Equal(t, models.NotificationFailed, n.Status)
	assert.Equal(t, MaxAttempts, n.Attempts)
}

func TestAttempt_SMSChannel(t *testing.T) {
	var gotTo string
	sms := &fakeSMSSender{
		sendFn: func(to, body string) error {
			gotTo = to
			return nil
		},
	}
	svc := &NotificationService{sms: sms}

	n := &models.Notification{
		Channel:   models.ChannelSMS,
		Recipient: "+8801712345678",
		Status:    models.NotificationPending,
	}

	svc.Attempt(n)

	assert.Equal(t, models.NotificationSent, n.Status)
	assert.Equal(t, "+8801712345678", gotTo)
}

func TestAttempt_UnconfiguredTransport(t *testing.T) {
	svc := &NotificationService{}

	n := &models.Notification{
		Channel:   models.ChannelEmail,
		Recipient: "a@x.com",
		Status:    models.NotificationPending,
	}

	svc.Attempt(n)

	assert.Equal(t, models.NotificationPending, n.Status)
	assert.Contains(t, n.LastError, "not configured")
}

func TestAttempt_UnknownChannel(t *testing.T) {
	svc := &NotificationService{email: &fakeEmailSender{}}

	n := &models.Notification{Channel: "pigeon", Status: models.NotificationPending}

	svc.Attempt(n)

	assert.Equal(t, 1, n.Attempts)
	assert.Contains(t, n.LastError, "unknown channel")
}
