package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dayamotor_backend/internals/features/motorcycles/controller"
)

// MotorcycleRoutes => katalog publik + CRUD admin + iklan
func MotorcycleRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMotorcycleController(db)

	motorcycles := api.Group("/motorcycles")
	motorcycles.Get("/", ctrl.GetMotorcycles)
	motorcycles.Post("/", ctrl.CreateMotorcycle)
	motorcycles.Get("/:id", ctrl.GetMotorcycle)
	motorcycles.Put("/:id", ctrl.UpdateMotorcycle)
	motorcycles.Delete("/:id", ctrl.DeleteMotorcycle)
	motorcycles.Post("/:id/image", ctrl.UploadImage)

	api.Get("/motorcycles-simple", ctrl.GetMotorcyclesSimple)
	api.Get("/motor-detail", ctrl.GetMotorDetail)
	api.Get("/advertisements", ctrl.GetAdvertisements)
}
