package model

import (
	"time"

	"gorm.io/datatypes"
)

/* ===================== Enums (string) ===================== */

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
	PaymentStatusExpired = "expired"
)

const (
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodCash         = "cash"
	PaymentMethodCredit       = "credit"
)

/* ===================== Model: manual_payments ===================== */

// ManualPayment adalah detail satu attempt pembayaran. Dipakai preferensial
// untuk metode kredit; kalau store ini tidak tersedia, engine fallback ke
// baris order. Tidak pernah dihapus (soft history).
type ManualPayment struct {
	ID      int `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OrderID int `gorm:"column:order_id;not null;index" json:"order_id"` // soft reference, tanpa FK constraint

	PaymentCode   string  `gorm:"column:payment_code;not null" json:"payment_code"`
	PaymentMethod string  `gorm:"column:payment_method;not null;default:bank_transfer" json:"payment_method"`
	Amount        float64 `gorm:"column:amount;type:numeric;not null" json:"amount"`
	Status        string  `gorm:"column:status;not null;default:pending" json:"status"`

	PaymentProofImage *string           `gorm:"column:payment_proof_image" json:"payment_proof_image,omitempty"`
	PaymentMeta       datatypes.JSONMap `gorm:"column:payment_meta;type:jsonb" json:"payment_meta,omitempty"`

	CreatedAt time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at" json:"updated_at"`
	ExpiredAt time.Time  `gorm:"column:expired_at" json:"expired_at"` // informasional, tidak ada sweep
	PaidAt    *time.Time `gorm:"column:paid_at" json:"paid_at,omitempty"`
}

func (ManualPayment) TableName() string { return "manual_payments" }
