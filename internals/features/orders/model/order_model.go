package model

import (
	"time"

	"github.com/google/uuid"
)

/* ===================== Model: orders ===================== */

// Order adalah aggregate pembelian: sumber kebenaran untuk status bisnis
// dan status pembayaran. payment_status hanya dimutasi oleh payment engine.
type Order struct {
	ID        int        `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OrderCode string     `gorm:"column:order_code;uniqueIndex;not null" json:"order_code"`
	UserID    *uuid.UUID `gorm:"column:user_id;type:uuid" json:"user_id,omitempty"`

	// Data pelanggan / legal
	CustomerName  string `gorm:"column:customer_name;not null" json:"customer_name"`
	NikKtp        string `gorm:"column:nik_ktp;type:varchar(16);not null" json:"nik_ktp"`
	BirthPlace    string `gorm:"column:birth_place;not null" json:"birth_place"`
	BirthDate     string `gorm:"column:birth_date;not null" json:"birth_date"`
	Occupation    string `gorm:"column:occupation;not null" json:"occupation"`
	Address       string `gorm:"column:address;not null" json:"address"`
	CustomerPhone string `gorm:"column:customer_phone;not null" json:"customer_phone"`
	StnkName      string `gorm:"column:stnk_name;not null" json:"stnk_name"`

	// Data komersial
	MotorcycleID   int     `gorm:"column:motorcycle_id;not null" json:"motorcycle_id"`
	MotorcycleName string  `gorm:"column:motorcycle_name;not null" json:"motorcycle_name"`
	TotalPrice     float64 `gorm:"column:total_price;type:numeric;not null" json:"total_price"`
	Quantity       *int    `gorm:"column:quantity" json:"quantity,omitempty"`

	// Lifecycle
	Status        string     `gorm:"column:status;not null;default:pending" json:"status"`
	PaymentStatus string     `gorm:"column:payment_status;not null;default:pending" json:"payment_status"`
	PaymentMethod *string    `gorm:"column:payment_method" json:"payment_method,omitempty"`
	PaymentProof  *string    `gorm:"column:payment_proof" json:"payment_proof,omitempty"`
	PaymentDate   *time.Time `gorm:"column:payment_date" json:"payment_date,omitempty"`

	// Khusus pembayaran kredit
	DownPayment        *float64 `gorm:"column:down_payment" json:"down_payment,omitempty"`
	DownPaymentPercent *float64 `gorm:"column:down_payment_percent" json:"down_payment_percent,omitempty"`
	LoanTerm           *int     `gorm:"column:loan_term" json:"loan_term,omitempty"`
	MonthlyInstallment *float64 `gorm:"column:monthly_installment" json:"monthly_installment,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Order) TableName() string { return "orders" }
