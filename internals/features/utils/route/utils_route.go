package route

import (
	"github.com/gofiber/fiber/v2"

	"dayamotor_backend/internals/features/utils/controller"
)

// UtilsRoutes => utilitas tanpa state (validasi NIK)
func UtilsRoutes(api fiber.Router) {
	ctrl := controller.NewValidateNIKController()
	api.Post("/validate-nik", ctrl.ValidateNIK)
}
