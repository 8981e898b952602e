package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"dayamotor_backend/internals/features/reviews/dto"
	"dayamotor_backend/internals/features/reviews/model"
	usersModel "dayamotor_backend/internals/features/users/model"
	helper "dayamotor_backend/internals/helpers"
)

type fakeReviewRepo struct {
	reviews []model.Review
	rows    []model.RatingRow
	created *model.Review
}

func (f *fakeReviewRepo) List(ctx context.Context, motorcycleID *int, userID string, limit int) ([]model.Review, error) {
	return f.reviews, nil
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *model.Review) error {
	review.ID = 1
	f.created = review
	return nil
}

func (f *fakeReviewRepo) RatingRows(ctx context.Context, motorcycleID *int) ([]model.RatingRow, error) {
	return f.rows, nil
}

type fakeUserLookup struct {
	users []usersModel.User
	err   error
}

func (f *fakeUserLookup) FindByIDs(ctx context.Context, ids []string) ([]usersModel.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users, nil
}

func TestListEnrichesWithUserInfo(t *testing.T) {
	userID := uuid.New()
	repo := &fakeReviewRepo{reviews: []model.Review{
		{ID: 1, UserID: userID.String(), Rating: 5, Komentar: "Mantap"},
		{ID: 2, UserID: "ghost-user", Rating: 3, Komentar: "Biasa"},
	}}
	users := &fakeUserLookup{users: []usersModel.User{
		{ID: userID, Name: "Budi", Email: "budi@dayamotor.com"},
	}}
	svc := NewReviewService(repo, users)

	got, err := svc.List(context.Background(), nil, "", 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got[0].User.Name != "Budi" || got[0].User.Email != "budi@dayamotor.com" {
		t.Errorf("first review user = %+v", got[0].User)
	}
	if got[1].User.Name != "Unknown User" || got[1].User.Email != "" {
		t.Errorf("unknown writer should fall back, got %+v", got[1].User)
	}
}

func TestListToleratesUserLookupFailure(t *testing.T) {
	repo := &fakeReviewRepo{reviews: []model.Review{
		{ID: 1, UserID: "u1", Rating: 4, Komentar: "Oke"},
	}}
	svc := NewReviewService(repo, &fakeUserLookup{err: errors.New("users table locked")})

	got, err := svc.List(context.Background(), nil, "", 10)
	if err != nil {
		t.Fatalf("List should not fail on enrichment error: %v", err)
	}
	if len(got) != 1 || got[0].User.Name != "Unknown User" {
		t.Errorf("got %+v", got)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := NewReviewService(&fakeReviewRepo{}, &fakeUserLookup{})

	_, err := svc.Create(context.Background(), dto.CreateReviewRequest{Rating: 5, Komentar: "Mantap"})
	var ve *helper.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if ve.Error() != "User ID, rating, and komentar are required" {
		t.Errorf("message = %q", ve.Error())
	}

	_, err = svc.Create(context.Background(), dto.CreateReviewRequest{UserID: "u1", Rating: 6, Komentar: "x"})
	if !errors.As(err, &ve) || ve.Error() != "Rating must be between 1 and 5" {
		t.Errorf("rating bounds: err = %v", err)
	}
}

func TestCreateTrimsKomentar(t *testing.T) {
	repo := &fakeReviewRepo{}
	svc := NewReviewService(repo, &fakeUserLookup{})

	motoID := 3
	review, err := svc.Create(context.Background(), dto.CreateReviewRequest{
		UserID:       "u1",
		Rating:       4,
		Komentar:     "  Motor irit  ",
		MotorcycleID: &motoID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if review.Komentar != "Motor irit" {
		t.Errorf("komentar = %q", review.Komentar)
	}
	if review.MotorcycleID == nil || *review.MotorcycleID != 3 {
		t.Errorf("motorcycle_id = %v", review.MotorcycleID)
	}
}

func TestAveragesEmpty(t *testing.T) {
	svc := NewReviewService(&fakeReviewRepo{}, &fakeUserLookup{})

	got, err := svc.Averages(context.Background(), nil)
	if err != nil {
		t.Fatalf("Averages: %v", err)
	}
	if got.Overall.AverageRating != 0 || got.Overall.TotalReviews != 0 {
		t.Errorf("overall = %+v", got.Overall)
	}
	for star := 1; star <= 5; star++ {
		if got.Overall.RatingBreakdown[star] != 0 {
			t.Errorf("breakdown[%d] = %d", star, got.Overall.RatingBreakdown[star])
		}
	}
	if len(got.ByMotorcycle) != 0 {
		t.Errorf("by_motorcycle = %v", got.ByMotorcycle)
	}
}

func TestAveragesRoundsToOneDecimal(t *testing.T) {
	moto := 3
	repo := &fakeReviewRepo{rows: []model.RatingRow{
		{Rating: 5, MotorcycleID: &moto},
		{Rating: 4, MotorcycleID: &moto},
		{Rating: 4, MotorcycleID: nil}, // review toko, tanpa motor
	}}
	svc := NewReviewService(repo, &fakeUserLookup{})

	got, err := svc.Averages(context.Background(), nil)
	if err != nil {
		t.Fatalf("Averages: %v", err)
	}
	// (5+4+4)/3 = 4.333... → 4.3
	if got.Overall.AverageRating != 4.3 {
		t.Errorf("overall average = %v, want 4.3", got.Overall.AverageRating)
	}
	if got.Overall.TotalReviews != 3 {
		t.Errorf("total = %d", got.Overall.TotalReviews)
	}
	if got.Overall.RatingBreakdown[4] != 2 || got.Overall.RatingBreakdown[5] != 1 {
		t.Errorf("breakdown = %v", got.Overall.RatingBreakdown)
	}

	byMoto, ok := got.ByMotorcycle["3"]
	if !ok {
		t.Fatalf("by_motorcycle missing key 3: %v", got.ByMotorcycle)
	}
	if byMoto.AverageRating != 4.5 || byMoto.TotalReviews != 2 {
		t.Errorf("by_motorcycle[3] = %+v", byMoto)
	}
}
