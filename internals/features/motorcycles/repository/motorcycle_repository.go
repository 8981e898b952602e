package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"dayamotor_backend/internals/features/motorcycles/model"
	helper "dayamotor_backend/internals/helpers"
)

type MotorcycleRepository struct {
	DB *gorm.DB
}

func NewMotorcycleRepository(db *gorm.DB) *MotorcycleRepository {
	return &MotorcycleRepository{DB: db}
}

// List => katalog lengkap, terbaru dulu. Filter opsional category & available.
func (r *MotorcycleRepository) List(ctx context.Context, category string, available *bool) ([]model.Motorcycle, error) {
	var motos []model.Motorcycle
	q := r.DB.WithContext(ctx).Order("created_at DESC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if available != nil {
		q = q.Where("available = ?", *available)
	}
	if err := q.Find(&motos).Error; err != nil {
		return nil, &helper.StoreError{Err: err}
	}
	return motos, nil
}

// ListSimple => proyeksi ringan untuk dropdown/picker, urut nama.
func (r *MotorcycleRepository) ListSimple(ctx context.Context) ([]model.Motorcycle, error) {
	var motos []model.Motorcycle
	err := r.DB.WithContext(ctx).
		Select("id, name, category, price, image, available").
		Order("name").
		Find(&motos).Error
	if err != nil {
		return nil, &helper.StoreError{Err: err}
	}
	return motos, nil
}

func (r *MotorcycleRepository) FindByID(ctx context.Context, id int) (*model.Motorcycle, error) {
	var moto model.Motorcycle
	if err := r.DB.WithContext(ctx).First(&moto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &helper.NotFoundError{Msg: "Motorcycle not found"}
		}
		return nil, &helper.StoreError{Err: err}
	}
	return &moto, nil
}

func (r *MotorcycleRepository) Create(ctx context.Context, moto *model.Motorcycle) error {
	if err := r.DB.WithContext(ctx).Create(moto).Error; err != nil {
		return &helper.StoreError{Err: err}
	}
	return nil
}

func (r *MotorcycleRepository) Patch(ctx context.Context, id int, patch map[string]any) (*model.Motorcycle, error) {
	patch["updated_at"] = time.Now()
	res := r.DB.WithContext(ctx).Model(&model.Motorcycle{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		return nil, &helper.StoreError{Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return nil, &helper.NotFoundError{Msg: "Motorcycle not found"}
	}
	return r.FindByID(ctx, id)
}

func (r *MotorcycleRepository) Delete(ctx context.Context, id int) error {
	res := r.DB.WithContext(ctx).Delete(&model.Motorcycle{}, "id = ?", id)
	if res.Error != nil {
		return &helper.StoreError{Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return &helper.NotFoundError{Msg: "Motorcycle not found"}
	}
	return nil
}

// ListAdvertisements => iklan homepage, terbaru dulu.
func (r *MotorcycleRepository) ListAdvertisements(ctx context.Context) ([]model.AdvertisedMotorcycle, error) {
	var ads []model.AdvertisedMotorcycle
	if err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&ads).Error; err != nil {
		return nil, &helper.StoreError{Err: err}
	}
	return ads, nil
}
