// file: internals/helpers/apperr.go
package helper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Taksonomi error aplikasi
=================================*/

// ValidationError: input hilang/tidak valid → 400, pesan menyebut semua field
type ValidationError struct {
	Fields []string // nama field yang hilang, urutan sesuai request
	Msg    string   // pesan bebas kalau bukan soal field hilang
}

func (e *ValidationError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f+" is required")
	}
	return strings.Join(parts, ", ")
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Msg: msg}
}

func MissingFieldsError(fields []string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// NotFoundError: order/record yang dirujuk tidak ada → 404
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

func NewNotFoundError(format string, args ...any) *NotFoundError {
	return &NotFoundError{Msg: fmt.Sprintf(format, args...)}
}

// DecodeError: payload bukti pembayaran rusak → 500
type DecodeError struct {
	Msg string
}

func (e *DecodeError) Error() string { return e.Msg }

// StoreError: kegagalan persistence → 500, pesan diteruskan apa adanya
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string { return e.Err.Error() }
func (e *StoreError) Unwrap() error { return e.Err }

/* ===============================
   Mapping error → HTTP envelope
=================================*/

func JsonFromError(c *fiber.Ctx, err error) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return JsonError(c, fiber.StatusBadRequest, ve.Error())
	}
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return JsonError(c, fiber.StatusNotFound, nf.Error())
	}
	var de *DecodeError
	if errors.As(err, &de) {
		return JsonError(c, fiber.StatusInternalServerError, "Upload failed: "+de.Error())
	}
	return JsonError(c, fiber.StatusInternalServerError, "Server error: "+err.Error())
}
