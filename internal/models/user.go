package models

import "time"

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:50;not null" json:"name"`
	LastName string `gorm:"size:50;not null" json:"last_name"`
	Email    string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone    string `gorm:"size:20;not null" json:"phone"`

	PasswordHash string `gorm:"size:255;not null" json:"-"`

	// URL pública de la foto de perfil (servida desde /static o S3).
	ImageURL string `gorm:"size:300" json:"image_url"`

	Role   string `gorm:"size:20;default:'client'" json:"role"`
	Status string `gorm:"size:25;default:'active'" json:"status"`

	RegionID uint `json:"region_id"`
	CityID   uint `json:"city_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	RoleAdmin    = "admin"
	RoleProvider = "provider"
	RoleCourier  = "courier"
	RoleClient   = "client"

	UserActive   = "active"
	UserInactive = "inactive"
)

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
