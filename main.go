package main

import (
	"os"
	"strings"

	"carecircle-backend/config"
	"carecircle-backend/controllers"
	"carecircle-backend/models"
	"carecircle-backend/routes"
	"carecircle-backend/services"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found")
	}

	config.InitLogger()
	config.ConnectDB()
	config.ConnectCache(os.Getenv("REDIS_URL"))

	config.DB.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Booking{},
		&models.Notification{},
	)

	bootstrapAdmin()
}

func main() {
	notifier := services.NewNotificationService(config.DB)
	notifier.StartDispatcher()
	controllers.Notifier = notifier

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter()
	log.Info().Str("port", port).Msg("Starting server")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}

// bootstrapAdmin promotes the ADMIN_EMAIL user once, so a fresh install has
// an admin. Further admins come from POST /auth/users/:id/promote.
func bootstrapAdmin() {
	adminEmail := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	if adminEmail == "" {
		return
	}

	result := config.DB.Model(&models.User{}).
		Where("email = ? AND role <> ?", adminEmail, models.RoleAdmin).
		Update("role", models.RoleAdmin)
	if result.Error != nil {
		log.Error().Err(result.Error).Msg("Admin bootstrap failed")
		return
	}
	if result.RowsAffected > 0 {
		log.Info().Str("email", adminEmail).Msg("Bootstrapped admin user")
	}
}
