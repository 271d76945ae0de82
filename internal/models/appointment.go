package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date time.Time `gorm:"type:date;not null" json:"date"`
	Time string    `gorm:"type:time;not null" json:"time"`

	// Snapshot del tipo de medio de pago elegido al reservar; la fila
	// referenciada puede cambiar o borrarse después sin afectar la cita.
	PaymentMethod string `gorm:"size:20;not null" json:"payment_method"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	RequesterID uint `gorm:"not null;index" json:"requester_id"`
	Requester   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	PetID uint `gorm:"not null" json:"pet_id"`
	Pet   Pet  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"pet"`

	ServiceID uint    `gorm:"not null;index" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
