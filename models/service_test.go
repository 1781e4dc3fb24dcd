package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultServices(t *testing.T) {
	seeds := DefaultServices()

	assert.Len(t, seeds, 3)

	prices := map[string]float64{}
	for _, s := range seeds {
		assert.NotEmpty(t, s.Description)
		assert.NotEmpty(t, s.Details)
		assert.NotEmpty(t, s.Image)
		assert.Greater(t, s.Price, 0.0)
		prices[s.Name] = s.Price
	}

	assert.Equal(t, 15.0, prices["Baby Care"])
	assert.Equal(t, 20.0, prices["Elderly Service"])
	assert.Equal(t, 25.0, prices["Sick People Service"])
}

func TestBookingIsTerminal(t *testing.T) {
	assert.False(t, (&Booking{Status: StatusPending}).IsTerminal())
	assert.False(t, (&Booking{Status: StatusConfirmed}).IsTerminal())
	assert.True(t, (&Booking{Status: StatusCompleted}).IsTerminal())
	assert.True(t, (&Booking{Status: StatusCancelled}).IsTerminal())
}
