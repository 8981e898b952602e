package model

import "time"

// Setting adalah row tunggal profil toko.
type Setting struct {
	ID            int       `gorm:"primaryKey;autoIncrement" json:"id"`
	StoreName     string    `gorm:"type:varchar(255)" json:"store_name"`
	StoreAddress  string    `gorm:"type:text" json:"store_address"`
	StorePhone    string    `gorm:"type:varchar(30)" json:"store_phone"`
	StoreEmail    string    `gorm:"type:varchar(255)" json:"store_email"`
	BusinessHours string    `gorm:"type:varchar(100)" json:"business_hours"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

// DefaultSetting dipakai saat tabel settings masih kosong.
func DefaultSetting() map[string]any {
	return map[string]any{
		"store_name":     "Honda Daya Motor",
		"store_address":  "Jl. Raya Cikampek No. 123",
		"store_phone":    "(021) 1234567",
		"store_email":    "info@dayamotor.com",
		"business_hours": "Senin - Minggu: 08:00 - 17:00",
	}
}
