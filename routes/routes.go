package routes

import (
	"carecircle-backend/config"
	"carecircle-backend/controllers"
	"carecircle-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
		auth.POST("/users/:id/promote", utils.AdminMiddleware(), controllers.PromoteUser)
	}

	// Catalog reads are public; browsing needs no session.
	r.GET("/services", controllers.GetServices)
	r.GET("/services/:id", controllers.GetService)
	r.POST("/services", utils.AuthMiddleware(), utils.AdminMiddleware(), controllers.CreateService)

	bookings := r.Group("/bookings")
	bookings.Use(utils.AuthMiddleware())
	{
		bookings.POST("", controllers.CreateBooking)
		bookings.GET("", controllers.GetBookings)
		bookings.PATCH("/:id", controllers.UpdateBooking)
		bookings.DELETE("/:id", controllers.DeleteBooking)
	}

	r.POST("/upload", utils.AuthMiddleware(), controllers.UploadFile)
	r.Static("/uploads", "./public/uploads")

	return r
}
