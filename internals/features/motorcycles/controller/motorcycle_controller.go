package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dayamotor_backend/internals/configs"
	"dayamotor_backend/internals/features/motorcycles/dto"
	"dayamotor_backend/internals/features/motorcycles/repository"
	"dayamotor_backend/internals/features/motorcycles/service"
	helper "dayamotor_backend/internals/helpers"
)

type MotorcycleController struct {
	Service *service.MotorcycleService
}

func NewMotorcycleController(db *gorm.DB) *MotorcycleController {
	return &MotorcycleController{
		Service: service.NewMotorcycleService(
			repository.NewMotorcycleRepository(db),
			helper.NewDiskBlobStore(configs.UploadsDir),
		),
	}
}

// GET /api/motorcycles → katalog lengkap + count
func (mc *MotorcycleController) GetMotorcycles(c *fiber.Ctx) error {
	category := c.Query("category")
	var available *bool
	if raw := c.Query("available"); raw != "" {
		v := raw == "true" || raw == "1"
		available = &v
	}

	motos, err := mc.Service.List(c.Context(), category, available)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, motos, len(motos))
}

// GET /api/motorcycles-simple → proyeksi ringan (id, name, category, price, image, available)
func (mc *MotorcycleController) GetMotorcyclesSimple(c *fiber.Ctx) error {
	motos, err := mc.Service.ListSimple(c.Context())
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    motos,
	})
}

// GET /api/motorcycles/:id
func (mc *MotorcycleController) GetMotorcycle(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Motorcycle ID must be a valid number")
	}
	moto, err := mc.Service.Detail(c.Context(), id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    moto,
	})
}

// GET /api/motor-detail?id= → varian query-param dari detail
func (mc *MotorcycleController) GetMotorDetail(c *fiber.Ctx) error {
	raw := c.Query("id")
	if raw == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Motorcycle ID is required")
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Motorcycle ID must be a valid number")
	}
	moto, err := mc.Service.Detail(c.Context(), id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    moto,
	})
}

// POST /api/motorcycles (admin)
func (mc *MotorcycleController) CreateMotorcycle(c *fiber.Ctx) error {
	var req dto.CreateMotorcycleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	moto, err := mc.Service.Create(c.Context(), req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Motorcycle created successfully", moto)
}

// PUT /api/motorcycles/:id (admin)
func (mc *MotorcycleController) UpdateMotorcycle(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Motorcycle ID must be a valid number")
	}
	var req dto.UpdateMotorcycleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	moto, err := mc.Service.Update(c.Context(), id, req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Motorcycle updated successfully", moto)
}

// DELETE /api/motorcycles/:id (admin)
func (mc *MotorcycleController) DeleteMotorcycle(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Motorcycle ID must be a valid number")
	}
	if err := mc.Service.Delete(c.Context(), id); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Motorcycle deleted successfully", nil)
}

// POST /api/motorcycles/:id/image (admin) → upload gambar katalog base64,
// dikompres ke WebP sebelum disimpan.
func (mc *MotorcycleController) UploadImage(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Motorcycle ID must be a valid number")
	}
	var req dto.UploadImageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	moto, imagePath, err := mc.Service.UploadImage(c.Context(), id, req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Image uploaded successfully", fiber.Map{
		"motorcycle": moto,
		"image_path": imagePath,
	})
}

// GET /api/advertisements → iklan homepage + count
func (mc *MotorcycleController) GetAdvertisements(c *fiber.Ctx) error {
	ads, err := mc.Service.Advertisements(c.Context())
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, ads, len(ads))
}
