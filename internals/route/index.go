// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	motorcycleRoute "dayamotor_backend/internals/features/motorcycles/route"
	orderRoute "dayamotor_backend/internals/features/orders/route"
	paymentRoute "dayamotor_backend/internals/features/payments/route"
	reviewRoute "dayamotor_backend/internals/features/reviews/route"
	settingRoute "dayamotor_backend/internals/features/settings/route"
	userRoute "dayamotor_backend/internals/features/users/route"
	utilsRoute "dayamotor_backend/internals/features/utils/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	api := app.Group("/api")

	log.Println("[INFO] Setting up UserRoutes...")
	userRoute.UserRoutes(api, db)

	log.Println("[INFO] Setting up MotorcycleRoutes...")
	motorcycleRoute.MotorcycleRoutes(api, db)

	log.Println("[INFO] Setting up OrderRoutes...")
	orderRoute.OrderRoutes(api, db)

	log.Println("[INFO] Setting up PaymentRoutes...")
	paymentRoute.PaymentRoutes(api, db)

	log.Println("[INFO] Setting up ReviewRoutes...")
	reviewRoute.ReviewRoutes(api, db)

	log.Println("[INFO] Setting up SettingRoutes...")
	settingRoute.SettingRoutes(api, db)

	log.Println("[INFO] Setting up UtilsRoutes...")
	utilsRoute.UtilsRoutes(api)

	// 404 untuk path /api yang tidak terdaftar
	api.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "API endpoint not found",
			"path":    c.OriginalURL(),
			"method":  c.Method(),
		})
	})
}
