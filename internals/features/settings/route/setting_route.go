package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dayamotor_backend/internals/features/settings/controller"
)

// SettingRoutes => profil toko
func SettingRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSettingController(db)
	settings := api.Group("/settings")
	settings.Get("/", ctrl.GetSettings)
	settings.Put("/", ctrl.UpdateSettings)
}
