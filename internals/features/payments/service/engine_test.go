package service

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	ordersModel "dayamotor_backend/internals/features/orders/model"
	"dayamotor_backend/internals/features/payments/dto"
	"dayamotor_backend/internals/features/payments/model"
	helper "dayamotor_backend/internals/helpers"
)

// Fake OrderStore yang merekam patch terakhir.
type fakeOrderStore struct {
	order     *ordersModel.Order
	findErr   error
	patchErr  error
	lastPatch map[string]any
	patched   int
}

func (f *fakeOrderStore) FindByID(ctx context.Context, id int) (*ordersModel.Order, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.order, nil
}

func (f *fakeOrderStore) Patch(ctx context.Context, id int, patch map[string]any) (*ordersModel.Order, error) {
	if f.patchErr != nil {
		return nil, f.patchErr
	}
	f.lastPatch = patch
	f.patched++
	return f.order, nil
}

type fakePaymentStore struct {
	insertErr error
	patchErr  error
	findErr   error
	inserted  *model.ManualPayment
	lastPatch map[string]any
	stored    *model.ManualPayment
}

func (f *fakePaymentStore) Insert(ctx context.Context, mp *model.ManualPayment) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = mp
	return nil
}

func (f *fakePaymentStore) Patch(ctx context.Context, id int, patch map[string]any) (*model.ManualPayment, error) {
	if f.patchErr != nil {
		return nil, f.patchErr
	}
	f.lastPatch = patch
	return f.stored, nil
}

func (f *fakePaymentStore) FindByOrderID(ctx context.Context, orderID int) (*model.ManualPayment, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.stored, nil
}

func testOrder() *ordersModel.Order {
	method := "credit"
	return &ordersModel.Order{ID: 7, OrderCode: "ORD123ABCDE", PaymentMethod: &method}
}

func TestRecordCreditUsesDedicatedStore(t *testing.T) {
	orders := &fakeOrderStore{order: testOrder()}
	payments := &fakePaymentStore{}
	engine := NewPaymentEngine(orders, payments)

	percent := 20.0
	term := 12
	installment := 950000.0
	before := time.Now()
	rec, err := engine.Record(context.Background(), dto.CreatePaymentRequest{
		OrderID:            7,
		Amount:             3000000,
		PaymentMethod:      model.PaymentMethodCredit,
		DownPaymentPercent: &percent,
		LoanTerm:           &term,
		MonthlyInstallment: &installment,
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	if rec.Path != PathDedicated {
		t.Fatalf("path = %s, want %s", rec.Path, PathDedicated)
	}
	mp := payments.inserted
	if mp == nil {
		t.Fatal("no manual payment inserted")
	}
	if !regexp.MustCompile(`^PAY\d+[A-Z0-9]{5}$`).MatchString(mp.PaymentCode) {
		t.Errorf("payment code %q does not match expected shape", mp.PaymentCode)
	}
	if mp.PaymentMethod != model.PaymentMethodBankTransfer {
		t.Errorf("payment method = %s, want bank_transfer", mp.PaymentMethod)
	}
	if mp.Status != model.PaymentStatusPending {
		t.Errorf("status = %s, want pending", mp.Status)
	}
	wantExpiry := before.Add(24 * time.Hour)
	if mp.ExpiredAt.Before(wantExpiry.Add(-time.Minute)) || mp.ExpiredAt.After(wantExpiry.Add(time.Minute)) {
		t.Errorf("expired_at = %v, want ~%v", mp.ExpiredAt, wantExpiry)
	}
	if mp.PaymentMeta["loan_term"] != term {
		t.Errorf("payment_meta loan_term = %v, want %d", mp.PaymentMeta["loan_term"], term)
	}
	if orders.patched != 0 {
		t.Error("order row should not be touched on dedicated path")
	}
	if rec.Data() != mp {
		t.Error("Data() should return the manual payment on dedicated path")
	}
}

func TestRecordCreditFallsBackToOrderRow(t *testing.T) {
	orders := &fakeOrderStore{order: testOrder()}
	payments := &fakePaymentStore{insertErr: errors.New(`relation "manual_payments" does not exist`)}
	engine := NewPaymentEngine(orders, payments)

	percent := 25.0
	rec, err := engine.Record(context.Background(), dto.CreatePaymentRequest{
		OrderID:            7,
		Amount:             5000000,
		PaymentMethod:      model.PaymentMethodCredit,
		DownPaymentPercent: &percent,
	})
	if err != nil {
		t.Fatalf("Record should fall back, got error: %v", err)
	}

	if rec.Path != PathInline {
		t.Fatalf("path = %s, want %s", rec.Path, PathInline)
	}
	patch := orders.lastPatch
	if patch["payment_status"] != model.PaymentStatusPending {
		t.Errorf("payment_status = %v, want pending", patch["payment_status"])
	}
	if patch["payment_method"] != model.PaymentMethodCredit {
		t.Errorf("payment_method = %v, want credit", patch["payment_method"])
	}
	if patch["down_payment"] != 5000000.0 {
		t.Errorf("down_payment = %v, want amount 5000000", patch["down_payment"])
	}
	if patch["down_payment_percent"] != 25.0 {
		t.Errorf("down_payment_percent = %v, want 25", patch["down_payment_percent"])
	}
	if _, ok := patch["loan_term"]; ok {
		t.Error("loan_term should be omitted when not provided")
	}
	if rec.Data() != orders.order {
		t.Error("Data() should return the order on inline path")
	}
}

func TestRecordCashNeverTouchesDedicatedStore(t *testing.T) {
	orders := &fakeOrderStore{order: testOrder()}
	payments := &fakePaymentStore{}
	engine := NewPaymentEngine(orders, payments)

	rec, err := engine.Record(context.Background(), dto.CreatePaymentRequest{
		OrderID:       7,
		Amount:        28000000,
		PaymentMethod: model.PaymentMethodCash,
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if rec.Path != PathInline {
		t.Fatalf("path = %s, want inline", rec.Path)
	}
	if payments.inserted != nil {
		t.Error("dedicated store must not be used for cash payments")
	}
	if orders.lastPatch["payment_method"] != model.PaymentMethodCash {
		t.Errorf("payment_method = %v, want cash", orders.lastPatch["payment_method"])
	}
	if _, ok := orders.lastPatch["down_payment"]; ok {
		t.Error("cash payments must not carry credit fields")
	}
}

func TestRecordDefaultsMethodToCash(t *testing.T) {
	orders := &fakeOrderStore{order: testOrder()}
	engine := NewPaymentEngine(orders, &fakePaymentStore{})

	if _, err := engine.Record(context.Background(), dto.CreatePaymentRequest{OrderID: 7, Amount: 100}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if orders.lastPatch["payment_method"] != model.PaymentMethodCash {
		t.Errorf("payment_method = %v, want cash default", orders.lastPatch["payment_method"])
	}
}

func TestRecordRequiresOrderIDAndAmount(t *testing.T) {
	engine := NewPaymentEngine(&fakeOrderStore{}, &fakePaymentStore{})

	for _, req := range []dto.CreatePaymentRequest{
		{Amount: 100},
		{OrderID: 7},
		{},
	} {
		_, err := engine.Record(context.Background(), req)
		var ve *helper.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("Record(%+v): err = %v, want ValidationError", req, err)
		}
		if ve.Error() != "Order ID and amount are required" {
			t.Errorf("message = %q", ve.Error())
		}
	}
}

func TestUpdateStatusManualPaymentPaid(t *testing.T) {
	payments := &fakePaymentStore{stored: &model.ManualPayment{ID: 3, Status: model.PaymentStatusPaid}}
	engine := NewPaymentEngine(&fakeOrderStore{order: testOrder()}, payments)

	manualID := 3
	rec, err := engine.UpdateStatus(context.Background(), dto.UpdatePaymentRequest{
		OrderID:         7,
		Status:          model.PaymentStatusPaid,
		PaymentProof:    "/uploads/payment_7_123.jpg",
		ManualPaymentID: &manualID,
	})
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if rec.Path != PathDedicated {
		t.Fatalf("path = %s, want dedicated", rec.Path)
	}
	if payments.lastPatch["status"] != model.PaymentStatusPaid {
		t.Errorf("status = %v", payments.lastPatch["status"])
	}
	if _, ok := payments.lastPatch["paid_at"]; !ok {
		t.Error("paid_at should be set when status is paid")
	}
	if payments.lastPatch["payment_proof_image"] != "/uploads/payment_7_123.jpg" {
		t.Errorf("payment_proof_image = %v", payments.lastPatch["payment_proof_image"])
	}
}

func TestUpdateStatusManualFailureFallsBackToOrder(t *testing.T) {
	orders := &fakeOrderStore{order: testOrder()}
	payments := &fakePaymentStore{patchErr: errors.New("manual_payments gone")}
	engine := NewPaymentEngine(orders, payments)

	manualID := 3
	rec, err := engine.UpdateStatus(context.Background(), dto.UpdatePaymentRequest{
		OrderID:         7,
		Status:          model.PaymentStatusPaid,
		PaymentProof:    "/uploads/p.jpg",
		ManualPaymentID: &manualID,
	})
	if err != nil {
		t.Fatalf("UpdateStatus should fall back, got: %v", err)
	}
	if rec.Path != PathInline {
		t.Fatalf("path = %s, want inline", rec.Path)
	}
	if orders.lastPatch["payment_status"] != model.PaymentStatusPaid {
		t.Errorf("payment_status = %v", orders.lastPatch["payment_status"])
	}
	if _, ok := orders.lastPatch["payment_date"]; !ok {
		t.Error("payment_date should be set on order row when paid")
	}
	if orders.lastPatch["payment_proof"] != "/uploads/p.jpg" {
		t.Errorf("payment_proof = %v", orders.lastPatch["payment_proof"])
	}
}

func TestUpdateStatusOrderPathNonPaid(t *testing.T) {
	orders := &fakeOrderStore{order: testOrder()}
	engine := NewPaymentEngine(orders, &fakePaymentStore{})

	_, err := engine.UpdateStatus(context.Background(), dto.UpdatePaymentRequest{
		OrderID: 7,
		Status:  model.PaymentStatusFailed,
	})
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if _, ok := orders.lastPatch["payment_date"]; ok {
		t.Error("payment_date must only be set for paid status")
	}
}

func TestUpdateStatusRequiresOrderIDAndStatus(t *testing.T) {
	engine := NewPaymentEngine(&fakeOrderStore{}, &fakePaymentStore{})

	_, err := engine.UpdateStatus(context.Background(), dto.UpdatePaymentRequest{OrderID: 7})
	var ve *helper.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if ve.Error() != "Order ID and status are required" {
		t.Errorf("message = %q", ve.Error())
	}
}

func TestGetMergesManualRecordForCredit(t *testing.T) {
	stored := &model.ManualPayment{ID: 9, OrderID: 7, PaymentCode: "PAY1X"}
	engine := NewPaymentEngine(
		&fakeOrderStore{order: testOrder()},
		&fakePaymentStore{stored: stored},
	)

	view, err := engine.Get(context.Background(), 7)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if view.Type() != "manual" {
		t.Errorf("type = %s, want manual", view.Type())
	}
	if view.Manual != stored {
		t.Error("manual payment not attached to view")
	}
}

func TestGetFallsBackToSimpleWhenLookupFails(t *testing.T) {
	engine := NewPaymentEngine(
		&fakeOrderStore{order: testOrder()},
		&fakePaymentStore{findErr: errors.New("table missing")},
	)

	view, err := engine.Get(context.Background(), 7)
	if err != nil {
		t.Fatalf("Get should tolerate lookup failure: %v", err)
	}
	if view.Type() != "simple" {
		t.Errorf("type = %s, want simple", view.Type())
	}
}

func TestGetSimpleForCashOrders(t *testing.T) {
	method := "cash"
	engine := NewPaymentEngine(
		&fakeOrderStore{order: &ordersModel.Order{ID: 7, PaymentMethod: &method}},
		&fakePaymentStore{stored: &model.ManualPayment{ID: 1}},
	)

	view, err := engine.Get(context.Background(), 7)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if view.Type() != "simple" {
		t.Errorf("type = %s, want simple for cash order", view.Type())
	}
}

func TestGetPropagatesOrderNotFound(t *testing.T) {
	engine := NewPaymentEngine(
		&fakeOrderStore{findErr: &helper.NotFoundError{Msg: "Order not found"}},
		&fakePaymentStore{},
	)

	_, err := engine.Get(context.Background(), 99)
	var nf *helper.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}
