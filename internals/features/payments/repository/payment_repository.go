package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"dayamotor_backend/internals/features/payments/model"
	helper "dayamotor_backend/internals/helpers"
)

// PaymentRepository mengakses tabel dedicated manual_payments.
// Error apa pun dari sini dianggap non-fatal oleh engine (fallback).
type PaymentRepository struct {
	DB *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) Insert(ctx context.Context, mp *model.ManualPayment) error {
	if err := r.DB.WithContext(ctx).Create(mp).Error; err != nil {
		return &helper.StoreError{Err: err}
	}
	return nil
}

func (r *PaymentRepository) Patch(ctx context.Context, id int, patch map[string]any) (*model.ManualPayment, error) {
	patch["updated_at"] = time.Now()
	res := r.DB.WithContext(ctx).Model(&model.ManualPayment{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		return nil, &helper.StoreError{Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return nil, &helper.NotFoundError{Msg: "Payment not found"}
	}
	var mp model.ManualPayment
	if err := r.DB.WithContext(ctx).First(&mp, "id = ?", id).Error; err != nil {
		return nil, &helper.StoreError{Err: err}
	}
	return &mp, nil
}

func (r *PaymentRepository) FindByOrderID(ctx context.Context, orderID int) (*model.ManualPayment, error) {
	var mp model.ManualPayment
	err := r.DB.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		First(&mp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &helper.NotFoundError{Msg: "Payment not found"}
		}
		return nil, &helper.StoreError{Err: err}
	}
	return &mp, nil
}
