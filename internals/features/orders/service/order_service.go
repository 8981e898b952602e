package service

import (
	"context"
	"strconv"
	"time"

	"dayamotor_backend/internals/features/orders/dto"
	"dayamotor_backend/internals/features/orders/model"
	"dayamotor_backend/internals/features/orders/repository"
	helper "dayamotor_backend/internals/helpers"
)

// Repository adalah port persistence yang dikonsumsi service ini.
type Repository interface {
	Create(ctx context.Context, o *model.Order) error
	FindByID(ctx context.Context, id int) (*model.Order, error)
	Filter(ctx context.Context, userID, orderID string) ([]model.Order, error)
	Patch(ctx context.Context, id int, patch map[string]any) (*model.Order, error)
	StatisticsRows(ctx context.Context) ([]repository.StatRow, error)
}

type OrderService struct {
	Repo Repository
}

func NewOrderService(repo Repository) *OrderService {
	return &OrderService{Repo: repo}
}

// Create memvalidasi semua field wajib sekaligus (pesan menyebut tiap field
// yang kosong), men-generate order_code, lalu insert satu baris.
func (s *OrderService) Create(ctx context.Context, req dto.CreateOrderRequest) (*model.Order, error) {
	if missing := req.MissingFields(); len(missing) > 0 {
		return nil, helper.MissingFieldsError(missing)
	}

	order := req.ToModel()
	order.OrderCode = helper.GenerateCode("ORD")
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	if err := s.Repo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) List(ctx context.Context, userID, orderID string) ([]model.Order, error) {
	return s.Repo.Filter(ctx, userID, orderID)
}

// Update menerapkan patch bebas dari PUT /orders. Kolom identitas dan
// timestamp pembuatan tidak boleh disentuh.
func (s *OrderService) Update(ctx context.Context, id int, patch map[string]any) (*model.Order, error) {
	delete(patch, "id")
	delete(patch, "order_id")
	delete(patch, "order_code")
	delete(patch, "created_at")
	if len(patch) == 0 {
		return s.Repo.FindByID(ctx, id)
	}
	return s.Repo.Patch(ctx, id, patch)
}

func (s *OrderService) UpdateStatus(ctx context.Context, id int, status string) (*model.Order, error) {
	return s.Repo.Patch(ctx, id, map[string]any{"status": status})
}

func (s *OrderService) UpdatePaymentStatus(ctx context.Context, id int, status string) (*model.Order, error) {
	return s.Repo.Patch(ctx, id, map[string]any{"payment_status": status})
}

/* ===================== Statistik ===================== */

type Statistics struct {
	TotalOrders     int            `json:"total_orders"`
	TotalRevenue    float64        `json:"total_revenue"`
	ByStatus        map[string]int `json:"by_status"`
	ByPaymentStatus map[string]int `json:"by_payment_status"`
}

// Statistics mereduksi seluruh order: hitung per status & per payment_status,
// jumlahkan revenue. Harga yang tidak bisa di-parse dihitung 0 (data quirk lama).
func (s *OrderService) Statistics(ctx context.Context) (*Statistics, error) {
	rows, err := s.Repo.StatisticsRows(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Statistics{
		TotalOrders:     len(rows),
		ByStatus:        map[string]int{},
		ByPaymentStatus: map[string]int{},
	}
	for _, row := range rows {
		stats.TotalRevenue += parsePrice(row.TotalPrice)
		stats.ByStatus[row.Status]++
		stats.ByPaymentStatus[row.PaymentStatus]++
	}
	return stats, nil
}

func parsePrice(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
