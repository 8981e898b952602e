package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dayamotor_backend/internals/configs"
	ordersRepo "dayamotor_backend/internals/features/orders/repository"
	"dayamotor_backend/internals/features/payments/dto"
	"dayamotor_backend/internals/features/payments/service"
	helper "dayamotor_backend/internals/helpers"
)

type UploadPaymentController struct {
	Proofs *service.ProofService
}

func NewUploadPaymentController(db *gorm.DB) *UploadPaymentController {
	return &UploadPaymentController{
		Proofs: service.NewProofService(
			ordersRepo.NewOrderRepository(db),
			helper.NewDiskBlobStore(configs.UploadsDir),
		),
	}
}

// POST /api/upload-payment → terima bukti transfer base64, simpan ke
// disk, tandai order-nya.
func (uc *UploadPaymentController) UploadProof(c *fiber.Ctx) error {
	var req dto.UploadProofRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	result, err := uc.Proofs.Upload(c.Context(), req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Payment proof uploaded successfully", result)
}
