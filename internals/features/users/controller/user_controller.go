package controller

import (
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dayamotor_backend/internals/features/users/dto"
	"dayamotor_backend/internals/features/users/repository"
	helper "dayamotor_backend/internals/helpers"
)

type UserController struct {
	Repo *repository.UserRepository
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{Repo: repository.NewUserRepository(db)}
}

// GET /api/users → lookup by email / id, atau list dengan filter role
// + pagination.
func (uc *UserController) GetUsers(c *fiber.Ctx) error {
	if email := c.Query("email"); email != "" {
		user, err := uc.Repo.FindByEmail(c.Context(), email)
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": true,
			"data":    user,
		})
	}

	if id := c.Query("id"); id != "" {
		user, err := uc.Repo.FindByID(c.Context(), id)
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": true,
			"data":    user,
		})
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if limit < 1 {
		limit = 10
	}

	users, total, err := uc.Repo.List(c.Context(), c.Query("role"), page, limit)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    users,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       total,
			"total_pages": int(math.Ceil(float64(total) / float64(limit))),
		},
	})
}

// PUT /api/users → update profil (name, phone, address, avatar)
func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.ID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "User ID is required")
	}

	if _, err := uc.Repo.FindByID(c.Context(), req.ID); err != nil {
		return helper.JsonFromError(c, err)
	}

	patch := map[string]any{}
	if req.Name != nil {
		patch["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		patch["phone"] = *req.Phone
	}
	if req.Address != nil {
		patch["address"] = *req.Address
	}
	if req.Avatar != nil {
		patch["avatar"] = *req.Avatar
	}

	user, err := uc.Repo.Patch(c.Context(), req.ID, patch)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "User profile updated successfully", user)
}
