package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"dayamotor_backend/internals/features/orders/model"
	helper "dayamotor_backend/internals/helpers"
)

// StatRow adalah proyeksi baris untuk statistik. total_price di-cast ke text
// karena data lama bisa berisi nilai non-numerik (di-treat sebagai 0).
type StatRow struct {
	Status        string `gorm:"column:status"`
	PaymentStatus string `gorm:"column:payment_status"`
	TotalPrice    string `gorm:"column:total_price"`
}

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Create(ctx context.Context, o *model.Order) error {
	if err := r.DB.WithContext(ctx).Create(o).Error; err != nil {
		return &helper.StoreError{Err: err}
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id int) (*model.Order, error) {
	var o model.Order
	if err := r.DB.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NewNotFoundError("Order not found")
		}
		return nil, &helper.StoreError{Err: err}
	}
	return &o, nil
}

// Filter mengembalikan order terbaru lebih dulu, opsional difilter
// user_id (customer) dan/atau order_id.
func (r *OrderRepository) Filter(ctx context.Context, userID, orderID string) ([]model.Order, error) {
	q := r.DB.WithContext(ctx).Model(&model.Order{})
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	if orderID != "" {
		q = q.Where("id = ?", orderID)
	}
	var out []model.Order
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, &helper.StoreError{Err: err}
	}
	return out, nil
}

// Patch meng-update kolom yang diberikan dan selalu bump updated_at.
// 0 baris ter-update berarti order tidak ada.
func (r *OrderRepository) Patch(ctx context.Context, id int, patch map[string]any) (*model.Order, error) {
	patch["updated_at"] = time.Now()
	res := r.DB.WithContext(ctx).Model(&model.Order{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		return nil, &helper.StoreError{Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return nil, helper.NewNotFoundError("Order not found")
	}
	return r.FindByID(ctx, id)
}

func (r *OrderRepository) StatisticsRows(ctx context.Context) ([]StatRow, error) {
	var rows []StatRow
	err := r.DB.WithContext(ctx).
		Model(&model.Order{}).
		Select("status, payment_status, total_price::text AS total_price").
		Find(&rows).Error
	if err != nil {
		return nil, &helper.StoreError{Err: err}
	}
	return rows, nil
}
