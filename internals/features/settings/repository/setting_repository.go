package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"dayamotor_backend/internals/features/settings/model"
	helper "dayamotor_backend/internals/helpers"
)

type SettingRepository struct {
	DB *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{DB: db}
}

// Get mengambil row tunggal settings. ErrRecordNotFound diteruskan
// sebagai NotFoundError supaya caller bisa jatuh ke default.
func (r *SettingRepository) Get(ctx context.Context) (*model.Setting, error) {
	var setting model.Setting
	if err := r.DB.WithContext(ctx).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &helper.NotFoundError{Msg: "Settings not found"}
		}
		return nil, &helper.StoreError{Err: err}
	}
	return &setting, nil
}

// Upsert: update row yang ada, atau insert kalau belum ada sama sekali.
func (r *SettingRepository) Upsert(ctx context.Context, patch map[string]any) (*model.Setting, error) {
	existing, err := r.Get(ctx)
	if err != nil {
		if _, notFound := err.(*helper.NotFoundError); !notFound {
			return nil, err
		}
		setting := &model.Setting{}
		if err := r.DB.WithContext(ctx).Model(setting).Create(patch).Error; err != nil {
			return nil, &helper.StoreError{Err: err}
		}
		return r.Get(ctx)
	}

	patch["updated_at"] = time.Now()
	err = r.DB.WithContext(ctx).Model(&model.Setting{}).
		Where("id = ?", existing.ID).
		Updates(patch).Error
	if err != nil {
		return nil, &helper.StoreError{Err: err}
	}
	return r.Get(ctx)
}
