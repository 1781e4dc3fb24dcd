package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"

	PaymentUnpaid = "Unpaid"
	PaymentPaid   = "Paid"
)

type Booking struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ServiceID   uuid.UUID `gorm:"type:uuid;index;not null" json:"serviceId"`
	ServiceName string    `gorm:"not null" json:"serviceName"` // snapshot, survives catalog edits

	Duration int    `gorm:"not null" json:"duration"` // in hours
	Division string `json:"division"`
	District string `json:"district"`
	City     string `json:"city"`
	Area     string `json:"area"`
	Address  string `gorm:"type:text" json:"address"`

	TotalCost float64 `gorm:"type:decimal(10,2);not null" json:"totalCost"`

	UserEmail     string `gorm:"index;not null" json:"userEmail"`
	Status        string `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	PaymentStatus string `gorm:"type:varchar(20);not null;default:'Unpaid'" json:"paymentStatus"`

	CreatedAt time.Time `json:"createdAt"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}

// IsTerminal reports whether the booking can no longer change status.
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}
