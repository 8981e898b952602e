package model

import (
	"time"

	"github.com/lib/pq"
)

// Kategori yang diterima katalog.
var ValidCategories = []string{"sport", "scooter", "adventure", "naked", "cruiser"}

func IsValidCategory(c string) bool {
	for _, v := range ValidCategories {
		if v == c {
			return true
		}
	}
	return false
}

type Motorcycle struct {
	ID          int            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"type:varchar(255);not null" json:"name"`
	Category    string         `gorm:"type:varchar(50);not null;index" json:"category"`
	Price       float64        `gorm:"type:numeric;not null" json:"price"`
	Image       string         `gorm:"type:text" json:"image"`
	Specs       string         `gorm:"type:text" json:"specs"`
	Description string         `gorm:"type:text" json:"description"`
	Features    pq.StringArray `gorm:"type:text[]" json:"features"`
	Available   bool           `gorm:"default:true" json:"available"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Motorcycle) TableName() string {
	return "motorcycles"
}

// AdvertisedMotorcycle adalah unit iklan homepage, tabel terpisah dari katalog.
type AdvertisedMotorcycle struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Category    string    `gorm:"type:varchar(50)" json:"category"`
	Price       float64   `gorm:"type:numeric" json:"price"`
	Image       string    `gorm:"type:text" json:"image"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AdvertisedMotorcycle) TableName() string {
	return "advertised_motorcycles"
}
