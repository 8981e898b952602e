package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ordersRepo "dayamotor_backend/internals/features/orders/repository"
	"dayamotor_backend/internals/features/payments/dto"
	"dayamotor_backend/internals/features/payments/repository"
	"dayamotor_backend/internals/features/payments/service"
	helper "dayamotor_backend/internals/helpers"
)

type PaymentController struct {
	Engine *service.PaymentEngine
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{
		Engine: service.NewPaymentEngine(
			ordersRepo.NewOrderRepository(db),
			repository.NewPaymentRepository(db),
		),
	}
}

// GET /api/payment?order_id= → info pembayaran order, merged dengan
// record manual kalau ada. payment_type di top-level, bukan di data.
func (pc *PaymentController) GetPayment(c *fiber.Ctx) error {
	raw := c.Query("order_id")
	if raw == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Order ID is required")
	}
	orderID, err := strconv.Atoi(raw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Order ID must be a valid number")
	}

	view, err := pc.Engine.Get(c.Context(), orderID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":      true,
		"data":         view,
		"payment_type": view.Type(),
	})
}

// POST /api/payment → catat pembayaran (kredit: manual_payments dengan
// fallback ke baris order; cash: langsung baris order).
func (pc *PaymentController) CreatePayment(c *fiber.Ctx) error {
	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	rec, err := pc.Engine.Record(c.Context(), req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Payment created successfully", rec.Data())
}

// PUT /api/payment → transisi status pembayaran.
func (pc *PaymentController) UpdatePayment(c *fiber.Ctx) error {
	var req dto.UpdatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	rec, err := pc.Engine.UpdateStatus(c.Context(), req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Payment updated successfully", rec.Data())
}
