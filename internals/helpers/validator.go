package helper

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct menjalankan validasi tag `validate` pada DTO.
func ValidateStruct(s any) error {
	if err := validate.Struct(s); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok && len(ve) > 0 {
			fe := ve[0]
			return NewValidationError(fe.Field() + " is invalid (" + fe.Tag() + ")")
		}
		return NewValidationError("Invalid input")
	}
	return nil
}

var (
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	nikRe   = regexp.MustCompile(`^\d{16}$`)
)

// Validasi Email (regex simple)
func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// IsValidNIK: NIK harus 16 digit angka
func IsValidNIK(nik string) bool {
	return nikRe.MatchString(nik)
}
