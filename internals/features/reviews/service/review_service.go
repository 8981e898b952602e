package service

import (
	"context"
	"log"
	"math"
	"strconv"

	"dayamotor_backend/internals/features/reviews/dto"
	"dayamotor_backend/internals/features/reviews/model"
	usersModel "dayamotor_backend/internals/features/users/model"
	helper "dayamotor_backend/internals/helpers"
)

type Repository interface {
	List(ctx context.Context, motorcycleID *int, userID string, limit int) ([]model.Review, error)
	Create(ctx context.Context, review *model.Review) error
	RatingRows(ctx context.Context, motorcycleID *int) ([]model.RatingRow, error)
}

// UserLookup mengambil identitas penulis review. Kegagalan lookup tidak
// menggagalkan listing.
type UserLookup interface {
	FindByIDs(ctx context.Context, ids []string) ([]usersModel.User, error)
}

type ReviewService struct {
	Repo  Repository
	Users UserLookup
}

func NewReviewService(repo Repository, users UserLookup) *ReviewService {
	return &ReviewService{Repo: repo, Users: users}
}

// List mengembalikan review plus identitas penulis. Tabel reviews tidak
// punya FK ke users, jadi nama diambil lewat query terpisah.
func (s *ReviewService) List(ctx context.Context, motorcycleID *int, userID string, limit int) ([]dto.ReviewWithUser, error) {
	reviews, err := s.Repo.List(ctx, motorcycleID, userID, limit)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, reviews), nil
}

func (s *ReviewService) enrich(ctx context.Context, reviews []model.Review) []dto.ReviewWithUser {
	out := make([]dto.ReviewWithUser, 0, len(reviews))
	if len(reviews) == 0 {
		return out
	}

	seen := map[string]bool{}
	var ids []string
	for _, r := range reviews {
		if !seen[r.UserID] {
			seen[r.UserID] = true
			ids = append(ids, r.UserID)
		}
	}

	userMap := map[string]dto.ReviewUser{}
	if users, err := s.Users.FindByIDs(ctx, ids); err == nil {
		for _, u := range users {
			userMap[u.ID.String()] = dto.ReviewUser{Name: u.Name, Email: u.Email}
		}
	} else {
		log.Printf("could not fetch user info for reviews: %v", err)
	}

	for _, r := range reviews {
		user, ok := userMap[r.UserID]
		if !ok {
			user = dto.ReviewUser{Name: "Unknown User", Email: ""}
		}
		out = append(out, dto.ReviewWithUser{Review: r, User: user})
	}
	return out
}

func (s *ReviewService) Create(ctx context.Context, req dto.CreateReviewRequest) (*model.Review, error) {
	if req.UserID == "" || req.Rating == 0 || req.Komentar == "" {
		return nil, helper.NewValidationError("User ID, rating, and komentar are required")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, helper.NewValidationError("Rating must be between 1 and 5")
	}

	review := req.ToModel()
	if err := s.Repo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// Averages menghitung rata-rata keseluruhan + per motor, dibulatkan
// 1 desimal, dengan breakdown bintang 1..5.
func (s *ReviewService) Averages(ctx context.Context, motorcycleID *int) (*dto.AveragesResponse, error) {
	rows, err := s.Repo.RatingRows(ctx, motorcycleID)
	if err != nil {
		return nil, err
	}
	return calculateAverages(rows), nil
}

func calculateAverages(rows []model.RatingRow) *dto.AveragesResponse {
	breakdown := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	resp := &dto.AveragesResponse{
		Overall: dto.RatingAverage{
			RatingBreakdown: breakdown,
		},
		ByMotorcycle: map[string]dto.MotorcycleAverage{},
	}
	if len(rows) == 0 {
		return resp
	}

	total := 0
	perMoto := map[string][]int{}
	for _, row := range rows {
		total += row.Rating
		if row.Rating >= 1 && row.Rating <= 5 {
			breakdown[row.Rating]++
		}
		if row.MotorcycleID != nil {
			key := strconv.Itoa(*row.MotorcycleID)
			perMoto[key] = append(perMoto[key], row.Rating)
		}
	}

	resp.Overall.AverageRating = round1(float64(total) / float64(len(rows)))
	resp.Overall.TotalReviews = len(rows)

	for key, ratings := range perMoto {
		sum := 0
		for _, r := range ratings {
			sum += r
		}
		resp.ByMotorcycle[key] = dto.MotorcycleAverage{
			AverageRating: float64(sum) / float64(len(ratings)),
			TotalReviews:  len(ratings),
			Ratings:       ratings,
		}
	}
	return resp
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

