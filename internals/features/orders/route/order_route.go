package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dayamotor_backend/internals/features/orders/controller"
	"dayamotor_backend/internals/features/orders/repository"
	"dayamotor_backend/internals/features/orders/service"
)

func OrderRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewOrderController(
		service.NewOrderService(repository.NewOrderRepository(db)),
	)

	orders := api.Group("/orders")
	orders.Get("/statistics", ctrl.GetStatistics)
	orders.Get("/", ctrl.GetOrders)
	orders.Post("/", ctrl.CreateOrder)
	orders.Put("/", ctrl.UpdateOrder)
}
