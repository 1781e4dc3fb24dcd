// controllers/booking.go
package controllers

import (
	"errors"
	"net/http"

	"carecircle-backend/config"
	"carecircle-backend/models"
	"carecircle-backend/services"
	"carecircle-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Notifier is wired in main. Enqueue failures are logged and swallowed;
// a broken outbox never fails a booking.
var Notifier *services.NotificationService

type CreateBookingInput struct {
	ServiceID string `json:"serviceId" binding:"required"`
	Duration  int    `json:"duration" binding:"required,min=1"`
	Division  string `json:"division" binding:"required"`
	District  string `json:"district" binding:"required"`
	City      string `json:"city" binding:"required"`
	Area      string `json:"area" binding:"required"`
	Address   string `json:"address" binding:"required"`
}

type UpdateBookingInput struct {
	Status        *string `json:"status"`
	PaymentStatus *string `json:"paymentStatus"`
}

// CreateBooking creates a booking for the session user. Cost is computed
// from the catalog price at this moment and never recomputed; status always
// starts at Pending/Unpaid no matter what the client sends.
func CreateBooking(c *gin.Context) {
	userEmail := c.GetString("userEmail")

	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	serviceID, err := uuid.Parse(input.ServiceID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var service models.Service
	if err := config.DB.First(&service, "id = ?", serviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	booking := models.Booking{
		ServiceID:     service.ID,
		ServiceName:   service.Name,
		Duration:      input.Duration,
		Division:      input.Division,
		District:      input.District,
		City:          input.City,
		Area:          input.Area,
		Address:       input.Address,
		TotalCost:     services.ComputeTotalCost(input.Duration, service.Price),
		UserEmail:     userEmail,
		Status:        models.StatusPending,
		PaymentStatus: models.PaymentUnpaid,
	}

	if err := config.DB.Create(&booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Booking failed")
		return
	}

	if Notifier != nil {
		var user models.User
		userPtr := &user
		if err := config.DB.Where("email = ?", userEmail).First(&user).Error; err != nil {
			userPtr = nil
		}
		if err := Notifier.Enqueue(&booking, userPtr); err != nil {
			log.Error().Err(err).Str("booking", booking.ID.String()).Msg("Failed to enqueue notifications")
		}
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Booking saved", "bookingId": booking.ID})
}

// GetBookings lists bookings newest-first. Admins see everything or any
// email they ask for; everyone else is scoped to their own.
func GetBookings(c *gin.Context) {
	userEmail := c.GetString("userEmail")
	role := c.GetString("userRole")
	email := c.Query("email")

	if role != models.RoleAdmin {
		if email == "" {
			email = userEmail
		} else if email != userEmail {
			utils.RespondWithError(c, http.StatusForbidden, "Cannot view other users' bookings")
			return
		}
	}

	query := config.DB.Order("created_at DESC")
	if email != "" {
		query = query.Where("user_email = ?", email)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// UpdateBooking applies partial status/paymentStatus changes through the
// transition table. Owners may pay, and cancel while still Pending; status
// management past that is admin work.
func UpdateBooking(c *gin.Context) {
	userEmail := c.GetString("userEmail")
	role := c.GetString("userRole")

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var input UpdateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Status == nil && input.PaymentStatus == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Nothing to update")
		return
	}

	var booking models.Booking
	if err := config.DB.First(&booking, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if role != models.RoleAdmin {
		if booking.UserEmail != userEmail {
			utils.RespondWithError(c, http.StatusForbidden, "Not your booking")
			return
		}
		if input.Status != nil &&
			(*input.Status != models.StatusCancelled || booking.Status != models.StatusPending) {
			utils.RespondWithError(c, http.StatusForbidden, "Only pending bookings can be cancelled by their owner")
			return
		}
	}

	// Payment first so an admin can mark Paid and Completed in one request.
	if input.PaymentStatus != nil {
		if err := services.TransitionPayment(&booking, *input.PaymentStatus); err != nil {
			utils.RespondWithError(c, http.StatusConflict, err.Error())
			return
		}
	}
	if input.Status != nil {
		if err := services.TransitionStatus(&booking, *input.Status); err != nil {
			utils.RespondWithError(c, http.StatusConflict, err.Error())
			return
		}
	}

	if err := config.DB.Save(&booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Update failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Updated successfully"})
}

// DeleteBooking removes a booking. Owner or admin.
func DeleteBooking(c *gin.Context) {
	userEmail := c.GetString("userEmail")
	role := c.GetString("userRole")

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var booking models.Booking
	if err := config.DB.First(&booking, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if role != models.RoleAdmin && booking.UserEmail != userEmail {
		utils.RespondWithError(c, http.StatusForbidden, "Not your booking")
		return
	}

	if err := config.DB.Delete(&booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Cancellation failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}
