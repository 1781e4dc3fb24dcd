package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Image       string    `json:"image"`
	Details     string    `gorm:"type:text" json:"details"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

// DefaultServices is the catalog seeded into an empty services table.
func DefaultServices() []Service {
	return []Service{
		{
			Name:        "Baby Care",
			Description: "Professional and nurturing care for your little ones. Our babysitters are trained in child safety and interactive play.",
			Price:       15,
			Image:       "/baby-care.jpg",
			Details:     "Includes feeding, changing, playtime, and evening care. Available for all age groups from infants to toddlers.",
		},
		{
			Name:        "Elderly Service",
			Description: "Compassionate care and assistance for senior family members. Helping with daily tasks and companionship.",
			Price:       20,
			Image:       "/elderly-care.jpg",
			Details:     "Support with medication reminders, mobility assistance, companionship, and light housekeeping.",
		},
		{
			Name:        "Sick People Service",
			Description: "Specialized home care for recovery and health support. Dedicated care for those dealing with illness.",
			Price:       25,
			Image:       "/sick-care.jpg",
			Details:     "Professional nursing assistance, vital signs monitoring, and recovery support at the comfort of your home.",
		},
	}
}
