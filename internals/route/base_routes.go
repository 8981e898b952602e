package routes

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":   "HONDA MOTORCYCLE DEALER API",
			"version":   "1.0.0",
			"timestamp": time.Now().Format(time.RFC3339),
			"endpoints": fiber.Map{
				"auth":               "/api/auth",
				"users":              "/api/users",
				"motorcycles":        "/api/motorcycles",
				"motorcycles_simple": "/api/motorcycles-simple",
				"motor_detail":       "/api/motor-detail",
				"orders":             "/api/orders",
				"payment":            "/api/payment",
				"upload_payment":     "/api/upload-payment",
				"reviews":            "/api/reviews",
				"reviews_average":    "/api/reviews/average",
				"settings":           "/api/settings",
				"validate_nik":       "/api/validate-nik",
				"advertisements":     "/api/advertisements",
				"health":             "/api/health",
			},
		})
	})

	app.Get("/panic-test", func(c *fiber.Ctx) error {
		panic("Simulasi panic error!") // testing panic handler
	})

	app.Get("/api/health", func(c *fiber.Ctx) error {
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"success":        httpStatus == fiber.StatusOK,
			"message":        "Server is running",
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    os.Getenv("RAILWAY_ENVIRONMENT"),
		})
	})
}
