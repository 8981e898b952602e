package dto

/* ===================== Request DTO ===================== */

type CreatePaymentRequest struct {
	OrderID       int     `json:"order_id"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`

	// Term kredit (opsional, hanya relevan saat payment_method == credit)
	DownPaymentPercent *float64 `json:"down_payment_percent"`
	LoanTerm           *int     `json:"loan_term"`
	MonthlyInstallment *float64 `json:"monthly_installment"`
}

type UpdatePaymentRequest struct {
	OrderID         int    `json:"order_id"`
	Status          string `json:"status"`
	PaymentProof    string `json:"payment_proof"`
	ManualPaymentID *int   `json:"manual_payment_id"`
}

// UploadProofRequest: order_id sengaja bertipe any — klien lama mengirim
// angka maupun string, dan nilai non-numerik harus gagal validasi.
type UploadProofRequest struct {
	File          string `json:"file"`
	Filename      string `json:"filename"`
	OrderID       any    `json:"order_id"`
	PaymentMethod string `json:"payment_method"`
}
