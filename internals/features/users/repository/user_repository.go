package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"dayamotor_backend/internals/features/users/model"
	helper "dayamotor_backend/internals/helpers"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &helper.NotFoundError{Msg: "User not found"}
		}
		return nil, &helper.StoreError{Err: err}
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &helper.NotFoundError{Msg: "User not found"}
		}
		return nil, &helper.StoreError{Err: err}
	}
	return &user, nil
}

func (r *UserRepository) FindByResetToken(ctx context.Context, token string) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).Where("reset_token = ?", token).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &helper.NotFoundError{Msg: "User not found"}
		}
		return nil, &helper.StoreError{Err: err}
	}
	return &user, nil
}

// FindByIDs dipakai untuk enrichment review. Error dari sini non-fatal
// buat pemanggil.
func (r *UserRepository) FindByIDs(ctx context.Context, ids []string) ([]model.User, error) {
	var users []model.User
	err := r.DB.WithContext(ctx).
		Select("id, name, email").
		Where("id IN ?", ids).
		Find(&users).Error
	if err != nil {
		return nil, &helper.StoreError{Err: err}
	}
	return users, nil
}

func (r *UserRepository) List(ctx context.Context, role string, page, limit int) ([]model.User, int64, error) {
	var users []model.User
	var total int64

	q := r.DB.WithContext(ctx).Model(&model.User{})
	if role != "" {
		q = q.Where("role = ?", role)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, &helper.StoreError{Err: err}
	}
	err := q.Select("id, name, email, phone, role, created_at, last_login").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, &helper.StoreError{Err: err}
	}
	return users, total, nil
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.DB.WithContext(ctx).Create(user).Error; err != nil {
		return &helper.StoreError{Err: err}
	}
	return nil
}

func (r *UserRepository) Patch(ctx context.Context, id string, patch map[string]any) (*model.User, error) {
	patch["updated_at"] = time.Now()
	res := r.DB.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		return nil, &helper.StoreError{Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return nil, &helper.NotFoundError{Msg: "User not found"}
	}
	return r.FindByID(ctx, id)
}
