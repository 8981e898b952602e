// 📁 controller/order_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"dayamotor_backend/internals/features/orders/dto"
	"dayamotor_backend/internals/features/orders/service"
	helper "dayamotor_backend/internals/helpers"
)

type OrderController struct {
	Service *service.OrderService
}

func NewOrderController(svc *service.OrderService) *OrderController {
	return &OrderController{Service: svc}
}

// GET /api/orders?user_id=&order_id=
func (ctrl *OrderController) GetOrders(c *fiber.Ctx) error {
	orders, err := ctrl.Service.List(c.UserContext(), c.Query("user_id"), c.Query("order_id"))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	log.Printf("✅ Found %d orders", len(orders))
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    orders,
	})
}

// POST /api/orders
func (ctrl *OrderController) CreateOrder(c *fiber.Ctx) error {
	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	order, err := ctrl.Service.Create(c.UserContext(), req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	log.Printf("✅ Order created: %s", order.OrderCode)
	return helper.JsonCreated(c, "Order created successfully", order)
}

// PUT /api/orders — body {order_id, ...patch}
func (ctrl *OrderController) UpdateOrder(c *fiber.Ctx) error {
	var body map[string]any
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	orderID, ok := helper.ToInt(body["order_id"])
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Order ID is required")
	}

	order, err := ctrl.Service.Update(c.UserContext(), orderID, body)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	log.Printf("✅ Order updated: %d", orderID)
	return helper.JsonUpdated(c, "Order updated successfully", order)
}

// GET /api/orders/statistics
func (ctrl *OrderController) GetStatistics(c *fiber.Ctx) error {
	stats, err := ctrl.Service.Statistics(c.UserContext())
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}
