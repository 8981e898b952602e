package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dayamotor_backend/internals/features/reviews/dto"
	"dayamotor_backend/internals/features/reviews/repository"
	"dayamotor_backend/internals/features/reviews/service"
	usersRepo "dayamotor_backend/internals/features/users/repository"
	helper "dayamotor_backend/internals/helpers"
)

type ReviewController struct {
	Service *service.ReviewService
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{
		Service: service.NewReviewService(
			repository.NewReviewRepository(db),
			usersRepo.NewUserRepository(db),
		),
	}
}

// GET /api/reviews?motorcycle_id=&user_id=&limit=
func (rc *ReviewController) GetReviews(c *fiber.Ctx) error {
	var motorcycleID *int
	if raw := c.Query("motorcycle_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Motorcycle ID must be a valid number")
		}
		motorcycleID = &id
	}

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	reviews, err := rc.Service.List(c.Context(), motorcycleID, c.Query("user_id"), limit)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    reviews,
	})
}

// POST /api/reviews
func (rc *ReviewController) CreateReview(c *fiber.Ctx) error {
	var req dto.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	review, err := rc.Service.Create(c.Context(), req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Review created successfully", review)
}

// GET /api/reviews/average?motorcycle_id=
func (rc *ReviewController) GetAverages(c *fiber.Ctx) error {
	var motorcycleID *int
	if raw := c.Query("motorcycle_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Motorcycle ID must be a valid number")
		}
		motorcycleID = &id
	}

	averages, err := rc.Service.Averages(c.Context(), motorcycleID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    averages,
	})
}
