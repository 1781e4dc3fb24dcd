package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"

	NotificationPending = "pending"
	NotificationSent    = "sent"
	NotificationFailed  = "failed"
)

// Notification is one outbox row. Booking creation enqueues rows here and
// the dispatcher delivers them, so a dead mail transport never touches the
// booking response.
type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BookingID uuid.UUID `gorm:"type:uuid;index;not null" json:"bookingId"`

	Channel   string `gorm:"type:varchar(20);not null" json:"channel"` // email, sms
	Recipient string `gorm:"not null" json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `gorm:"type:text" json:"body"`

	Status    string     `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Attempts  int        `gorm:"default:0" json:"attempts"`
	LastError string     `gorm:"type:text" json:"lastError,omitempty"`
	SentAt    *time.Time `json:"sentAt,omitempty"`

	gorm.Model
}

func (n *Notification) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return
}
