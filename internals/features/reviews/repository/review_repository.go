package repository

import (
	"context"

	"gorm.io/gorm"

	"dayamotor_backend/internals/features/reviews/model"
	helper "dayamotor_backend/internals/helpers"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

// List => review terbaru dulu, filter opsional motorcycle_id/user_id, limit.
func (r *ReviewRepository) List(ctx context.Context, motorcycleID *int, userID string, limit int) ([]model.Review, error) {
	var reviews []model.Review
	q := r.DB.WithContext(ctx).Order("created_at DESC")
	if motorcycleID != nil {
		q = q.Where("motorcycle_id = ?", *motorcycleID)
	}
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&reviews).Error; err != nil {
		return nil, &helper.StoreError{Err: err}
	}
	return reviews, nil
}

func (r *ReviewRepository) Create(ctx context.Context, review *model.Review) error {
	if err := r.DB.WithContext(ctx).Create(review).Error; err != nil {
		return &helper.StoreError{Err: err}
	}
	return nil
}

// RatingRows => proyeksi (rating, motorcycle_id) untuk kalkulasi rata-rata.
func (r *ReviewRepository) RatingRows(ctx context.Context, motorcycleID *int) ([]model.RatingRow, error) {
	var rows []model.RatingRow
	q := r.DB.WithContext(ctx).Model(&model.Review{}).Select("rating, motorcycle_id")
	if motorcycleID != nil {
		q = q.Where("motorcycle_id = ?", *motorcycleID)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, &helper.StoreError{Err: err}
	}
	return rows, nil
}
