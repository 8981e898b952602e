package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dayamotor_backend/internals/features/settings/model"
	"dayamotor_backend/internals/features/settings/repository"
	helper "dayamotor_backend/internals/helpers"
)

type SettingController struct {
	Repo *repository.SettingRepository
}

func NewSettingController(db *gorm.DB) *SettingController {
	return &SettingController{Repo: repository.NewSettingRepository(db)}
}

// GET /api/settings → profil toko; default kalau belum pernah diisi.
func (sc *SettingController) GetSettings(c *fiber.Ctx) error {
	setting, err := sc.Repo.Get(c.Context())
	if err != nil {
		if _, notFound := err.(*helper.NotFoundError); notFound {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"success": true,
				"data":    model.DefaultSetting(),
			})
		}
		return helper.JsonFromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    setting,
	})
}

// PUT /api/settings → update-or-insert row tunggal.
func (sc *SettingController) UpdateSettings(c *fiber.Ctx) error {
	var body map[string]any
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	// kolom kelolaan DB tidak boleh ikut dari klien
	delete(body, "id")
	delete(body, "created_at")

	setting, err := sc.Repo.Upsert(c.Context(), body)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Settings updated successfully", setting)
}
