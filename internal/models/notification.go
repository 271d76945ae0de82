package models

import "time"

type Notification struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"size:150;not null" json:"title"`
	Message string `gorm:"size:500;not null" json:"message"`
	Link    string `gorm:"size:300" json:"link"`
	Read    bool   `gorm:"default:false" json:"read"`

	RecipientID uint `gorm:"not null;index" json:"recipient_id"`
	Recipient   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	AppointmentID *uint `json:"appointment_id"`

	CreatedAt time.Time `json:"created_at"`
}
