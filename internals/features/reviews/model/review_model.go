package model

import "time"

type Review struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       string    `gorm:"type:uuid;not null;index" json:"user_id"`
	MotorcycleID *int      `gorm:"index" json:"motorcycle_id,omitempty"`
	Rating       int       `gorm:"not null" json:"rating"`
	Komentar     string    `gorm:"type:text;not null" json:"komentar"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Review) TableName() string {
	return "reviews"
}

// RatingRow adalah proyeksi ringan untuk kalkulasi rata-rata.
type RatingRow struct {
	Rating       int  `json:"rating"`
	MotorcycleID *int `json:"motorcycle_id"`
}
