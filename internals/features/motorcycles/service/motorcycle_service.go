package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dayamotor_backend/internals/features/motorcycles/dto"
	"dayamotor_backend/internals/features/motorcycles/model"
	helper "dayamotor_backend/internals/helpers"
)

type Repository interface {
	List(ctx context.Context, category string, available *bool) ([]model.Motorcycle, error)
	ListSimple(ctx context.Context) ([]model.Motorcycle, error)
	FindByID(ctx context.Context, id int) (*model.Motorcycle, error)
	Create(ctx context.Context, moto *model.Motorcycle) error
	Patch(ctx context.Context, id int, patch map[string]any) (*model.Motorcycle, error)
	Delete(ctx context.Context, id int) error
	ListAdvertisements(ctx context.Context) ([]model.AdvertisedMotorcycle, error)
}

type MotorcycleService struct {
	Repo  Repository
	Blobs helper.BlobStore
}

func NewMotorcycleService(repo Repository, blobs helper.BlobStore) *MotorcycleService {
	return &MotorcycleService{Repo: repo, Blobs: blobs}
}

func (s *MotorcycleService) List(ctx context.Context, category string, available *bool) ([]model.Motorcycle, error) {
	return s.Repo.List(ctx, category, available)
}

func (s *MotorcycleService) ListSimple(ctx context.Context) ([]model.Motorcycle, error) {
	return s.Repo.ListSimple(ctx)
}

func (s *MotorcycleService) Detail(ctx context.Context, id int) (*model.Motorcycle, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *MotorcycleService) Create(ctx context.Context, req dto.CreateMotorcycleRequest) (*model.Motorcycle, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, helper.NewValidationError("Validation failed: " + strings.Join(errs, ", "))
	}
	moto := req.ToModel()
	now := time.Now()
	moto.CreatedAt = now
	moto.UpdatedAt = now
	if err := s.Repo.Create(ctx, moto); err != nil {
		return nil, err
	}
	return moto, nil
}

func (s *MotorcycleService) Update(ctx context.Context, id int, req dto.UpdateMotorcycleRequest) (*model.Motorcycle, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, helper.NewValidationError("Validation failed: " + strings.Join(errs, ", "))
	}
	patch := req.Patch()
	if len(patch) == 0 {
		return s.Repo.FindByID(ctx, id)
	}
	return s.Repo.Patch(ctx, id, patch)
}

func (s *MotorcycleService) Delete(ctx context.Context, id int) error {
	return s.Repo.Delete(ctx, id)
}

func (s *MotorcycleService) Advertisements(ctx context.Context) ([]model.AdvertisedMotorcycle, error) {
	return s.Repo.ListAdvertisements(ctx)
}

// UploadImage => decode base64, kompres ke WebP (max 1200x1200 q80),
// simpan ke disk, lalu arahkan kolom image motor ke path publiknya.
func (s *MotorcycleService) UploadImage(ctx context.Context, id int, req dto.UploadImageRequest) (*model.Motorcycle, string, error) {
	if err := helper.ValidateStruct(&req); err != nil {
		return nil, "", err
	}
	if _, err := s.Repo.FindByID(ctx, id); err != nil {
		return nil, "", err
	}

	raw, err := helper.DecodeBase64Payload(req.File)
	if err != nil {
		return nil, "", err
	}

	webpData, err := helper.CompressImageWebP(raw, req.Filename, 1200, 1200, 80)
	if err != nil {
		return nil, "", &helper.DecodeError{Msg: err.Error()}
	}

	name := fmt.Sprintf("motorcycle_%d_%d.webp", id, time.Now().UnixMilli())
	if err := s.Blobs.WriteFile(name, webpData); err != nil {
		return nil, "", &helper.StoreError{Err: err}
	}

	imagePath := "/uploads/" + name
	moto, err := s.Repo.Patch(ctx, id, map[string]any{"image": imagePath})
	if err != nil {
		return nil, "", err
	}
	return moto, imagePath, nil
}
