package dto

import (
	"github.com/google/uuid"

	"dayamotor_backend/internals/features/orders/model"
)

/* ===================== Request DTO ===================== */

type CreateOrderRequest struct {
	UserID *uuid.UUID `json:"user_id"`

	CustomerName  string `json:"customer_name"`
	NikKtp        string `json:"nik_ktp"`
	BirthPlace    string `json:"birth_place"`
	BirthDate     string `json:"birth_date"`
	Occupation    string `json:"occupation"`
	Address       string `json:"address"`
	CustomerPhone string `json:"customer_phone"`
	StnkName      string `json:"stnk_name"`

	MotorcycleID   int     `json:"motorcycle_id"`
	MotorcycleName string  `json:"motorcycle_name"`
	TotalPrice     float64 `json:"total_price"`
	Quantity       *int    `json:"quantity"`
}

// MissingFields mengembalikan SEMUA field wajib yang kosong, urut sesuai
// kontrak lama. Angka 0 dianggap kosong (motorcycle_id / total_price wajib > 0).
func (r CreateOrderRequest) MissingFields() []string {
	var missing []string
	checks := []struct {
		name  string
		empty bool
	}{
		{"customer_name", r.CustomerName == ""},
		{"nik_ktp", r.NikKtp == ""},
		{"birth_place", r.BirthPlace == ""},
		{"birth_date", r.BirthDate == ""},
		{"occupation", r.Occupation == ""},
		{"address", r.Address == ""},
		{"customer_phone", r.CustomerPhone == ""},
		{"stnk_name", r.StnkName == ""},
		{"motorcycle_id", r.MotorcycleID == 0},
		{"motorcycle_name", r.MotorcycleName == ""},
		{"total_price", r.TotalPrice == 0},
	}
	for _, c := range checks {
		if c.empty {
			missing = append(missing, c.name)
		}
	}
	return missing
}

func (r CreateOrderRequest) ToModel() *model.Order {
	return &model.Order{
		UserID:         r.UserID,
		CustomerName:   r.CustomerName,
		NikKtp:         r.NikKtp,
		BirthPlace:     r.BirthPlace,
		BirthDate:      r.BirthDate,
		Occupation:     r.Occupation,
		Address:        r.Address,
		CustomerPhone:  r.CustomerPhone,
		StnkName:       r.StnkName,
		MotorcycleID:   r.MotorcycleID,
		MotorcycleName: r.MotorcycleName,
		TotalPrice:     r.TotalPrice,
		Quantity:       r.Quantity,
		Status:         "pending",
		PaymentStatus:  "pending",
	}
}
