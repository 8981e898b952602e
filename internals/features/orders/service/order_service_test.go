package service

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"dayamotor_backend/internals/features/orders/dto"
	"dayamotor_backend/internals/features/orders/model"
	"dayamotor_backend/internals/features/orders/repository"
	helper "dayamotor_backend/internals/helpers"
)

type fakeOrderRepo struct {
	created   []*model.Order
	stats     []repository.StatRow
	lastPatch map[string]any
	patchID   int
}

func (f *fakeOrderRepo) Create(ctx context.Context, o *model.Order) error {
	o.ID = len(f.created) + 1
	f.created = append(f.created, o)
	return nil
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, id int) (*model.Order, error) {
	for _, o := range f.created {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, &helper.NotFoundError{Msg: "Order not found"}
}

func (f *fakeOrderRepo) Filter(ctx context.Context, userID, orderID string) ([]model.Order, error) {
	out := make([]model.Order, 0, len(f.created))
	for _, o := range f.created {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeOrderRepo) Patch(ctx context.Context, id int, patch map[string]any) (*model.Order, error) {
	f.patchID = id
	f.lastPatch = patch
	return f.FindByID(ctx, id)
}

func (f *fakeOrderRepo) StatisticsRows(ctx context.Context) ([]repository.StatRow, error) {
	return f.stats, nil
}

func validOrderReq() dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		CustomerName:   "Budi Santoso",
		NikKtp:         "3201234567890001",
		BirthPlace:     "Karawang",
		BirthDate:      "1990-04-12",
		Occupation:     "Wiraswasta",
		Address:        "Jl. Raya Cikampek No. 5",
		CustomerPhone:  "081234567890",
		StnkName:       "Budi Santoso",
		MotorcycleID:   3,
		MotorcycleName: "Vario 160",
		TotalPrice:     28500000,
	}
}

func TestCreateGeneratesOrderCode(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := NewOrderService(repo)

	order, err := svc.Create(context.Background(), validOrderReq())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !regexp.MustCompile(`^ORD\d+[A-Z0-9]{5}$`).MatchString(order.OrderCode) {
		t.Errorf("order code %q does not match expected shape", order.OrderCode)
	}
	if order.Status != "pending" || order.PaymentStatus != "pending" {
		t.Errorf("status = %s/%s, want pending/pending", order.Status, order.PaymentStatus)
	}
	if order.CreatedAt.IsZero() || order.UpdatedAt.IsZero() {
		t.Error("timestamps should be stamped on create")
	}
}

func TestCreateOrderCodesDistinct(t *testing.T) {
	svc := NewOrderService(&fakeOrderRepo{})

	a, err := svc.Create(context.Background(), validOrderReq())
	if err != nil {
		t.Fatal(err)
	}
	b, err := svc.Create(context.Background(), validOrderReq())
	if err != nil {
		t.Fatal(err)
	}
	if a.OrderCode == b.OrderCode {
		t.Errorf("two orders share code %q", a.OrderCode)
	}
}

func TestCreateEnumeratesAllMissingFields(t *testing.T) {
	svc := NewOrderService(&fakeOrderRepo{})

	req := validOrderReq()
	req.CustomerName = ""
	req.NikKtp = ""
	req.TotalPrice = 0

	_, err := svc.Create(context.Background(), req)
	var ve *helper.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	want := "customer_name is required, nik_ktp is required, total_price is required"
	if ve.Error() != want {
		t.Errorf("message = %q, want %q", ve.Error(), want)
	}
}

func TestUpdateStripsProtectedColumns(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := NewOrderService(repo)
	if _, err := svc.Create(context.Background(), validOrderReq()); err != nil {
		t.Fatal(err)
	}

	_, err := svc.Update(context.Background(), 1, map[string]any{
		"id":         99,
		"order_id":   99,
		"order_code": "HAX",
		"created_at": "2020-01-01",
		"status":     "confirmed",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	patch := repo.lastPatch
	for _, col := range []string{"id", "order_id", "order_code", "created_at"} {
		if _, ok := patch[col]; ok {
			t.Errorf("protected column %q leaked into patch", col)
		}
	}
	if patch["status"] != "confirmed" {
		t.Errorf("status = %v", patch["status"])
	}
}

func TestStatisticsTreatsUnparsablePriceAsZero(t *testing.T) {
	repo := &fakeOrderRepo{stats: []repository.StatRow{
		{Status: "pending", PaymentStatus: "pending", TotalPrice: "28500000"},
		{Status: "pending", PaymentStatus: "paid", TotalPrice: "not-a-number"},
		{Status: "confirmed", PaymentStatus: "paid", TotalPrice: "1500000.50"},
	}}
	svc := NewOrderService(repo)

	stats, err := svc.Statistics(context.Background())
	if err != nil {
		t.Fatalf("Statistics: %v", err)
	}
	if stats.TotalOrders != 3 {
		t.Errorf("total_orders = %d", stats.TotalOrders)
	}
	if stats.TotalRevenue != 28500000+1500000.50 {
		t.Errorf("total_revenue = %v", stats.TotalRevenue)
	}
	if stats.ByStatus["pending"] != 2 || stats.ByStatus["confirmed"] != 1 {
		t.Errorf("by_status = %v", stats.ByStatus)
	}
	if stats.ByPaymentStatus["paid"] != 2 {
		t.Errorf("by_payment_status = %v", stats.ByPaymentStatus)
	}
}
