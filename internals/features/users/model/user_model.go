package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

type User struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name           string     `gorm:"type:varchar(255);not null" json:"name"`
	Email          string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password       string     `gorm:"type:text;not null" json:"-"`
	Phone          string     `gorm:"type:varchar(30)" json:"phone"`
	Address        string     `gorm:"type:text" json:"address"`
	Avatar         string     `gorm:"type:text" json:"avatar"`
	IDNumber       string     `gorm:"type:varchar(32)" json:"id_number"`
	Role           string     `gorm:"type:varchar(20);default:customer" json:"role"`
	EmailVerified  bool       `gorm:"default:false" json:"email_verified"`
	OtpCode        *string    `gorm:"type:varchar(6)" json:"-"`
	OtpExpiresAt   *time.Time `json:"-"`
	ResetToken     *string    `gorm:"type:varchar(64);index" json:"-"`
	ResetExpiresAt *time.Time `json:"-"`
	LastLogin      *time.Time `json:"last_login"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// Payload adalah bentuk user yang aman dikirim ke klien (tanpa kredensial).
type Payload struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (u *User) ToPayload() Payload {
	return Payload{
		ID:      u.ID.String(),
		Email:   u.Email,
		Name:    u.Name,
		Role:    u.Role,
		Phone:   u.Phone,
		Address: u.Address,
	}
}
