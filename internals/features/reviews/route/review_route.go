package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dayamotor_backend/internals/features/reviews/controller"
)

// ReviewRoutes => review produk + agregat rating
func ReviewRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReviewController(db)
	reviews := api.Group("/reviews")
	reviews.Get("/average", ctrl.GetAverages) // harus sebelum "/"
	reviews.Get("/", ctrl.GetReviews)
	reviews.Post("/", ctrl.CreateReview)
}
