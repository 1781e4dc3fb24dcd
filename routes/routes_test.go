package routes

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// The frontend depends on these exact paths and verbs.
func TestRouteTable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := SetupRouter()

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"POST /auth/register",
		"POST /auth/login",
		"GET /auth/me",
		"POST /auth/users/:id/promote",
		"GET /services",
		"GET /services/:id",
		"POST /services",
		"POST /bookings",
		"GET /bookings",
		"PATCH /bookings/:id",
		"DELETE /bookings/:id",
		"POST /upload",
	}

	for _, want := range expected {
		assert.True(t, registered[want], "missing route %s", want)
	}
}
