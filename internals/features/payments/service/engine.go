// 📁 service/engine.go — dual-path payment recording engine
package service

import (
	"context"
	"log"
	"time"

	"gorm.io/datatypes"

	ordersModel "dayamotor_backend/internals/features/orders/model"
	"dayamotor_backend/internals/features/payments/dto"
	"dayamotor_backend/internals/features/payments/model"
	helper "dayamotor_backend/internals/helpers"
)

/* ===================== Ports ===================== */

// OrderStore adalah baris order sebagai target tulis "last resort".
// Dipenuhi oleh orders/repository.OrderRepository.
type OrderStore interface {
	FindByID(ctx context.Context, id int) (*ordersModel.Order, error)
	Patch(ctx context.Context, id int, patch map[string]any) (*ordersModel.Order, error)
}

// PaymentStore adalah store dedicated manual_payments. Insert yang gagal
// dengan alasan apa pun memicu fallback ke baris order.
type PaymentStore interface {
	Insert(ctx context.Context, mp *model.ManualPayment) error
	Patch(ctx context.Context, id int, patch map[string]any) (*model.ManualPayment, error)
	FindByOrderID(ctx context.Context, orderID int) (*model.ManualPayment, error)
}

/* ===================== Hasil tertag ===================== */

type RecordPath string

const (
	PathDedicated RecordPath = "dedicated" // tersimpan di manual_payments
	PathInline    RecordPath = "inline"    // tersimpan di baris order
)

// Recorded menyatakan secara eksplisit jalur mana yang dieksekusi,
// supaya caller dan test tidak perlu menebak dari bentuk row.
type Recorded struct {
	Path   RecordPath
	Manual *model.ManualPayment // terisi saat Path == PathDedicated
	Order  *ordersModel.Order   // terisi saat Path == PathInline
}

// Data mengembalikan row sesuai jalur, untuk response JSON.
func (r *Recorded) Data() any {
	if r.Path == PathDedicated {
		return r.Manual
	}
	return r.Order
}

/* ===================== Engine ===================== */

type PaymentEngine struct {
	Orders   OrderStore
	Payments PaymentStore
}

func NewPaymentEngine(orders OrderStore, payments PaymentStore) *PaymentEngine {
	return &PaymentEngine{Orders: orders, Payments: payments}
}

// Record membuat catatan pembayaran.
// Aturan addressing:
//  1. credit → coba insert ManualPayment (bank_transfer, pending, expired +24h).
//     Gagal dengan alasan apa pun → fallback transparan ke baris order.
//  2. selain credit (cash) → langsung ke baris order.
func (e *PaymentEngine) Record(ctx context.Context, req dto.CreatePaymentRequest) (*Recorded, error) {
	if req.OrderID == 0 || req.Amount == 0 {
		return nil, helper.NewValidationError("Order ID and amount are required")
	}

	if req.PaymentMethod == model.PaymentMethodCredit {
		now := time.Now()
		mp := &model.ManualPayment{
			OrderID:       req.OrderID,
			PaymentCode:   helper.GenerateCode("PAY"),
			PaymentMethod: model.PaymentMethodBankTransfer, // default untuk pembayaran kredit
			Amount:        req.Amount,
			Status:        model.PaymentStatusPending,
			PaymentMeta:   creditMeta(req),
			CreatedAt:     now,
			UpdatedAt:     now,
			ExpiredAt:     now.Add(24 * time.Hour),
		}
		if err := e.Payments.Insert(ctx, mp); err == nil {
			return &Recorded{Path: PathDedicated, Manual: mp}, nil
		} else {
			log.Printf("manual payments store not available, updating orders table instead: %v", err)
		}
	}

	order, err := e.recordInline(ctx, req)
	if err != nil {
		return nil, err
	}
	return &Recorded{Path: PathInline, Order: order}, nil
}

func (e *PaymentEngine) recordInline(ctx context.Context, req dto.CreatePaymentRequest) (*ordersModel.Order, error) {
	method := req.PaymentMethod
	if method == "" {
		method = model.PaymentMethodCash
	}
	patch := map[string]any{
		"payment_status": model.PaymentStatusPending,
		"payment_method": method,
	}
	if req.PaymentMethod == model.PaymentMethodCredit {
		patch["down_payment"] = req.Amount
		if req.DownPaymentPercent != nil {
			patch["down_payment_percent"] = *req.DownPaymentPercent
		}
		if req.LoanTerm != nil {
			patch["loan_term"] = *req.LoanTerm
		}
		if req.MonthlyInstallment != nil {
			patch["monthly_installment"] = *req.MonthlyInstallment
		}
	}
	return e.Orders.Patch(ctx, req.OrderID, patch)
}

// UpdateStatus menerapkan transisi status pembayaran.
// manual_payment_id terisi → coba update record-nya; gagal → fallback ke
// baris order (target terakhir selalu order).
func (e *PaymentEngine) UpdateStatus(ctx context.Context, req dto.UpdatePaymentRequest) (*Recorded, error) {
	if req.OrderID == 0 || req.Status == "" {
		return nil, helper.NewValidationError("Order ID and status are required")
	}

	if req.ManualPaymentID != nil {
		patch := map[string]any{"status": req.Status}
		if req.Status == model.PaymentStatusPaid {
			patch["paid_at"] = time.Now()
			if req.PaymentProof != "" {
				patch["payment_proof_image"] = req.PaymentProof
			}
		}
		if mp, err := e.Payments.Patch(ctx, *req.ManualPaymentID, patch); err == nil {
			return &Recorded{Path: PathDedicated, Manual: mp}, nil
		} else {
			log.Printf("manual payment update failed, updating order instead: %v", err)
		}
	}

	patch := map[string]any{"payment_status": req.Status}
	if req.Status == model.PaymentStatusPaid {
		patch["payment_date"] = time.Now()
	}
	if req.PaymentProof != "" {
		patch["payment_proof"] = req.PaymentProof
	}
	order, err := e.Orders.Patch(ctx, req.OrderID, patch)
	if err != nil {
		return nil, err
	}
	return &Recorded{Path: PathInline, Order: order}, nil
}

/* ===================== Read rule ===================== */

// PaymentView adalah merged view untuk GET payment. Order di-embed supaya
// field-nya rata di JSON, manual_payment menempel hanya kalau ada.
type PaymentView struct {
	*ordersModel.Order
	Manual *model.ManualPayment `json:"manual_payment,omitempty"`
}

// Type: "manual" kalau record dedicated ditemukan, selain itu "simple".
func (v *PaymentView) Type() string {
	if v.Manual != nil {
		return "manual"
	}
	return "simple"
}

// Get memuat order (wajib ada), lalu untuk metode kredit mencoba record
// dedicated berdasarkan order_id. Kegagalan lookup record tidak fatal.
func (e *PaymentEngine) Get(ctx context.Context, orderID int) (*PaymentView, error) {
	order, err := e.Orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	view := &PaymentView{Order: order}
	if order.PaymentMethod != nil && *order.PaymentMethod == model.PaymentMethodCredit {
		if mp, err := e.Payments.FindByOrderID(ctx, orderID); err == nil {
			view.Manual = mp
		} else {
			log.Printf("manual payments table not available, using order data: %v", err)
		}
	}
	return view, nil
}

func creditMeta(req dto.CreatePaymentRequest) datatypes.JSONMap {
	meta := datatypes.JSONMap{}
	if req.DownPaymentPercent != nil {
		meta["down_payment_percent"] = *req.DownPaymentPercent
	}
	if req.LoanTerm != nil {
		meta["loan_term"] = *req.LoanTerm
	}
	if req.MonthlyInstallment != nil {
		meta["monthly_installment"] = *req.MonthlyInstallment
	}
	if len(meta) == 0 {
		return nil
	}
	return meta
}
