package service

import (
	"context"
	"encoding/base64"
	"errors"
	"regexp"
	"testing"

	ordersModel "dayamotor_backend/internals/features/orders/model"
	"dayamotor_backend/internals/features/payments/dto"
	helper "dayamotor_backend/internals/helpers"
)

type fakeBlobStore struct {
	writeErr error
	name     string
	data     []byte
}

func (f *fakeBlobStore) WriteFile(name string, data []byte) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.name = name
	f.data = data
	return nil
}

func proofFixture() (ProofService, *fakeOrderStore, *fakeBlobStore) {
	orders := &fakeOrderStore{order: &ordersModel.Order{ID: 7, OrderCode: "ORD1A"}}
	blobs := &fakeBlobStore{}
	return ProofService{Orders: orders, Blobs: blobs}, orders, blobs
}

func b64png() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("imagebytes"))
}

func TestUploadValidationOrder(t *testing.T) {
	svc, _, _ := proofFixture()

	// file dicek duluan, sekalipun field lain juga kosong
	_, err := svc.Upload(context.Background(), dto.UploadProofRequest{})
	if err == nil || err.Error() != "Payment proof file is required" {
		t.Fatalf("err = %v, want file validation first", err)
	}

	_, err = svc.Upload(context.Background(), dto.UploadProofRequest{File: b64png()})
	if err == nil || err.Error() != "Order ID is required" {
		t.Fatalf("err = %v, want order_id validation", err)
	}

	_, err = svc.Upload(context.Background(), dto.UploadProofRequest{File: b64png(), OrderID: 7})
	if err == nil || err.Error() != "Filename is required" {
		t.Fatalf("err = %v, want filename validation", err)
	}
}

func TestUploadRejectsNonNumericOrderID(t *testing.T) {
	svc, orders, _ := proofFixture()

	_, err := svc.Upload(context.Background(), dto.UploadProofRequest{
		File:     b64png(),
		OrderID:  "abc",
		Filename: "bukti.png",
	})
	var ve *helper.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if ve.Error() != "Order ID must be a valid number" {
		t.Errorf("message = %q", ve.Error())
	}
	if orders.patched != 0 {
		t.Error("order must not be touched on invalid input")
	}
}

func TestUploadUnknownOrder(t *testing.T) {
	svc, orders, _ := proofFixture()
	orders.findErr = &helper.NotFoundError{Msg: "Order not found"}

	_, err := svc.Upload(context.Background(), dto.UploadProofRequest{
		File:     b64png(),
		OrderID:  42,
		Filename: "bukti.png",
	})
	var nf *helper.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
	if nf.Msg != "Order dengan ID 42 tidak ditemukan" {
		t.Errorf("message = %q", nf.Msg)
	}
}

func TestUploadEmptyPayloadLeavesOrderUnchanged(t *testing.T) {
	svc, orders, blobs := proofFixture()

	_, err := svc.Upload(context.Background(), dto.UploadProofRequest{
		File:     "data:image/png;base64,",
		OrderID:  7,
		Filename: "bukti.png",
	})
	var de *helper.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("err = %v, want DecodeError", err)
	}
	if blobs.name != "" {
		t.Error("no file should be written for empty payload")
	}
	if orders.patched != 0 {
		t.Error("order must stay unchanged when decode fails")
	}
}

func TestUploadHappyPath(t *testing.T) {
	svc, orders, blobs := proofFixture()

	result, err := svc.Upload(context.Background(), dto.UploadProofRequest{
		File:          b64png(),
		OrderID:       float64(7), // JSON number datang sebagai float64
		Filename:      "bukti.PNG",
		PaymentMethod: "credit",
	})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if !regexp.MustCompile(`^payment_7_\d+\.PNG$`).MatchString(blobs.name) {
		t.Errorf("filename = %q, want payment_7_<ts>.PNG", blobs.name)
	}
	if string(blobs.data) != "imagebytes" {
		t.Errorf("written data = %q", blobs.data)
	}

	patch := orders.lastPatch
	if patch["payment_proof"] != "/uploads/"+blobs.name {
		t.Errorf("payment_proof = %v", patch["payment_proof"])
	}
	if patch["payment_status"] != "pending" {
		t.Errorf("payment_status = %v, want pending", patch["payment_status"])
	}
	if patch["payment_method"] != "credit" {
		t.Errorf("payment_method = %v", patch["payment_method"])
	}

	if result.File.Filename != blobs.name {
		t.Errorf("file_info filename = %q", result.File.Filename)
	}
	if result.File.FileSize != len("imagebytes") {
		t.Errorf("file_size = %d", result.File.FileSize)
	}
	if result.Order != orders.order {
		t.Error("result should carry the updated order")
	}
}

func TestUploadOmitsPaymentMethodWhenAbsent(t *testing.T) {
	svc, orders, _ := proofFixture()

	_, err := svc.Upload(context.Background(), dto.UploadProofRequest{
		File:     b64png(),
		OrderID:  7,
		Filename: "bukti.jpg",
	})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if _, ok := orders.lastPatch["payment_method"]; ok {
		t.Error("payment_method should be left alone when not sent")
	}
}
