// 📁 service/proof.go — ingest bukti pembayaran (base64 → file webp/jpg di disk)
package service

import (
	"context"
	"fmt"
	"time"

	ordersModel "dayamotor_backend/internals/features/orders/model"
	"dayamotor_backend/internals/features/payments/dto"
	helper "dayamotor_backend/internals/helpers"
)

type FileInfo struct {
	Filename   string    `json:"filename"`
	FilePath   string    `json:"file_path"`
	FileSize   int       `json:"file_size"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type ProofResult struct {
	Order *ordersModel.Order `json:"order"`
	File  FileInfo           `json:"file_info"`
}

type ProofService struct {
	Orders OrderStore
	Blobs  helper.BlobStore
}

func NewProofService(orders OrderStore, blobs helper.BlobStore) *ProofService {
	return &ProofService{Orders: orders, Blobs: blobs}
}

// Upload memvalidasi payload, menulis berkas, lalu menandai order
// dengan path bukti. Urutan validasi dipertahankan: file → order_id →
// filename → order_id numerik positif → order ada → decode.
func (s *ProofService) Upload(ctx context.Context, req dto.UploadProofRequest) (*ProofResult, error) {
	if req.File == "" {
		return nil, helper.NewValidationError("Payment proof file is required")
	}
	if req.OrderID == nil {
		return nil, helper.NewValidationError("Order ID is required")
	}
	if req.Filename == "" {
		return nil, helper.NewValidationError("Filename is required")
	}
	orderID, ok := helper.ToInt(req.OrderID)
	if !ok || orderID <= 0 {
		return nil, helper.NewValidationError("Order ID must be a valid number")
	}

	if _, err := s.Orders.FindByID(ctx, orderID); err != nil {
		if _, notFound := err.(*helper.NotFoundError); notFound {
			return nil, &helper.NotFoundError{Msg: fmt.Sprintf("Order dengan ID %d tidak ditemukan", orderID)}
		}
		return nil, err
	}

	data, err := helper.DecodeBase64Payload(req.File)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("payment_%d_%d.%s", orderID, time.Now().UnixMilli(), helper.FileExtension(req.Filename))
	if err := s.Blobs.WriteFile(name, data); err != nil {
		return nil, &helper.StoreError{Err: err}
	}

	proofPath := "/uploads/" + name
	patch := map[string]any{
		"payment_proof":  proofPath,
		"payment_status": "pending",
	}
	if req.PaymentMethod != "" {
		patch["payment_method"] = req.PaymentMethod
	}
	order, err := s.Orders.Patch(ctx, orderID, patch)
	if err != nil {
		return nil, err
	}

	return &ProofResult{
		Order: order,
		File: FileInfo{
			Filename:   name,
			FilePath:   proofPath,
			FileSize:   len(data),
			UploadedAt: time.Now(),
		},
	}, nil
}
