package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	helper "dayamotor_backend/internals/helpers"
)

type ValidateNIKController struct{}

func NewValidateNIKController() *ValidateNIKController {
	return &ValidateNIKController{}
}

// POST /api/validate-nik → cek format NIK 16 digit, lalu simulasi
// verifikasi (produksi: integrasi API Dukcapil).
func (vc *ValidateNIKController) ValidateNIK(c *fiber.Ctx) error {
	var body struct {
		NIK string `json:"nik"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if body.NIK == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "NIK is required")
	}
	if !helper.IsValidNIK(body.NIK) {
		return helper.JsonError(c, fiber.StatusBadRequest, "NIK harus terdiri dari 16 digit angka")
	}

	// Simulasi: NIK berprefiks 32 (Jawa Barat) dianggap valid.
	if !strings.HasPrefix(body.NIK, "32") {
		return helper.JsonError(c, fiber.StatusBadRequest, "NIK tidak valid")
	}

	return helper.JsonOK(c, "NIK valid", fiber.Map{
		"nik":     body.NIK,
		"valid":   true,
		"message": "NIK terverifikasi",
	})
}
