package models

import "time"

// Service es ofrecido por una cuenta con rol provider.
type Service struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Type        string  `gorm:"size:75;not null" json:"type"`
	Status      string  `gorm:"size:25;default:'active'" json:"status"`
	Description string  `gorm:"size:255;not null" json:"description"`
	ImageURL    string  `gorm:"size:300" json:"image_url"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`

	OwnerID uint `gorm:"not null;index" json:"owner_id"`
	Owner   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
