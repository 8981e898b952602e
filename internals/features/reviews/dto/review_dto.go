package dto

import (
	"strings"
	"time"

	"dayamotor_backend/internals/features/reviews/model"
)

type CreateReviewRequest struct {
	UserID       string `json:"user_id"`
	Rating       int    `json:"rating"`
	Komentar     string `json:"komentar"`
	MotorcycleID *int   `json:"motorcycle_id"`
}

func (r *CreateReviewRequest) ToModel() *model.Review {
	now := time.Now()
	return &model.Review{
		UserID:       r.UserID,
		Rating:       r.Rating,
		Komentar:     strings.TrimSpace(r.Komentar),
		MotorcycleID: r.MotorcycleID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ReviewWithUser: review + identitas penulisnya (enrichment terpisah,
// tabel reviews tidak punya FK ke users).
type ReviewWithUser struct {
	model.Review
	User ReviewUser `json:"user"`
}

type ReviewUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

/* ===== payload /reviews/average ===== */

type RatingAverage struct {
	AverageRating   float64     `json:"average_rating"`
	TotalReviews    int         `json:"total_reviews"`
	RatingBreakdown map[int]int `json:"rating_breakdown"`
}

type MotorcycleAverage struct {
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int     `json:"total_reviews"`
	Ratings       []int   `json:"ratings"`
}

type AveragesResponse struct {
	Overall      RatingAverage                `json:"overall"`
	ByMotorcycle map[string]MotorcycleAverage `json:"by_motorcycle"`
}
