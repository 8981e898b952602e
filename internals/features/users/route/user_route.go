package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dayamotor_backend/internals/features/users/controller"
	"dayamotor_backend/internals/middlewares"
)

// UserRoutes => auth dispatcher + lookup user
func UserRoutes(api fiber.Router, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)
	api.Post("/auth", middlewares.AuthRateLimiter(), authCtrl.Dispatch)

	userCtrl := controller.NewUserController(db)
	users := api.Group("/users")
	users.Get("/", userCtrl.GetUsers)
	users.Put("/", userCtrl.UpdateProfile)
}
