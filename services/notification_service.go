// services/notification_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"carecircle-backend/models"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// MaxAttempts is how many delivery attempts a notification gets before it
// is marked failed for good.
const MaxAttempts = 3

// EmailSender delivers one email. Satisfied by *EmailClient.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMSSender delivers one SMS. Satisfied by *SMSClient.
type SMSSender interface {
	Send(to, body string) error
}

// NotificationService owns the outbox: booking creation enqueues rows, the
// cron dispatcher delivers pending ones at-least-once with retry. Delivery
// is never on the booking request path.
type NotificationService struct {
	db    *gorm.DB
	email EmailSender
	sms   SMSSender
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	s := &NotificationService{db: db}
	if os.Getenv("SENDGRID_API_KEY") != "" {
		s.email = NewEmailClient()
	}
	if os.Getenv("TWILIO_ACCOUNT_SID") != "" {
		s.sms = NewSMSClient()
	}
	return s
}

// BuildBookingNotifications renders the outbox rows for a freshly created
// booking: an invoice email, plus an SMS when the user left a contact
// number.
func BuildBookingNotifications(b *models.Booking, u *models.User) []models.Notification {
	body := fmt.Sprintf(
		"Dear Customer, your booking has been received.\n"+
			"Service: %s\nDuration: %d Hours\nTotal Cost: $%.2f\nStatus: Pending Confirmation\n"+
			"Thank you for choosing Care.Circle!",
		b.ServiceName, b.Duration, b.TotalCost)

	rows := []models.Notification{
		{
			BookingID: b.ID,
			Channel:   models.ChannelEmail,
			Recipient: b.UserEmail,
			Subject:   "Booking Invoice - Care.Circle",
			Body:      body,
			Status:    models.NotificationPending,
		},
	}

	if u != nil && u.Contact != "" {
		rows = append(rows, models.Notification{
			BookingID: b.ID,
			Channel:   models.ChannelSMS,
			Recipient: u.Contact,
			Body: fmt.Sprintf("Care.Circle: booking for %s received. Total $%.2f for %d hrs. Status: Pending.",
				b.ServiceName, b.TotalCost, b.Duration),
			Status: models.NotificationPending,
		})
	}

	return rows
}

// Enqueue persists outbox rows for a booking. A failure here is logged and
// swallowed by the caller; it must never fail the booking.
func (s *NotificationService) Enqueue(b *models.Booking, u *models.User) error {
	rows := BuildBookingNotifications(b, u)
	for i := range rows {
		if err := s.db.Create(&rows[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// StartDispatcher runs the outbox every minute.
func (s *NotificationService) StartDispatcher() *cron.Cron {
	c := cron.New()

	c.AddFunc("* * * * *", s.DispatchPending)

	c.Start()
	log.Info().Msg("Notification dispatcher started")
	return c
}

// DispatchPending attempts delivery for every pending row still under the
// attempt cap.
func (s *NotificationService) DispatchPending() {
	var pending []models.Notification
	if err := s.db.
		Where("status = ? AND attempts < ?", models.NotificationPending, MaxAttempts).
		Order("created_at ASC").
		Find(&pending).Error; err != nil {
		log.Error().Err(err).Msg("Failed to fetch pending notifications")
		return
	}

	for i := range pending {
		n := &pending[i]
		s.Attempt(n)
		if err := s.db.Save(n).Error; err != nil {
			log.Error().Err(err).Str("notification", n.ID.String()).Msg("Failed to persist notification state")
		}
	}
}

// Attempt makes one delivery attempt and updates the row in memory. A row
// that fails under the cap stays pending for the next tick; at the cap it
// goes to failed.
func (s *NotificationService) Attempt(n *models.Notification) {
	n.Attempts++

	if err := s.deliver(n); err != nil {
		n.LastError = err.Error()
		if n.Attempts >= MaxAttempts {
			n.Status = models.NotificationFailed
		}
		log.Warn().
			Err(err).
			Str("channel", n.Channel).
			Str("recipient", n.Recipient).
			Int("attempts", n.Attempts).
			Msg("Notification delivery failed")
		return
	}

	now := time.Now()
	n.Status = models.NotificationSent
	n.SentAt = &now
	n.LastError = ""
	log.Info().
		Str("channel", n.Channel).
		Str("recipient", n.Recipient).
		Msg("Notification delivered")
}

func (s *NotificationService) deliver(n *models.Notification) error {
	switch n.Channel {
	case models.ChannelEmail:
		if s.email == nil {
			return errors.New("email transport not configured")
		}
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return s.email.Send(ctx, n.Recipient, n.Subject, n.Body)
	case models.ChannelSMS:
		if s.sms == nil {
			return errors.New("sms transport not configured")
		}
		return s.sms.Send(n.Recipient, n.Body)
	default:
		return fmt.Errorf("unknown channel: %s", n.Channel)
	}
}
