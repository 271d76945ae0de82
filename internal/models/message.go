package models

import "time"

// Message pertenece a una cita; emisor y receptor son siempre las dos
// partes de esa cita (solicitante y dueño del servicio).
type Message struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Text string `gorm:"size:500;not null" json:"text"`

	AppointmentID uint        `gorm:"not null;index" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	SenderID   uint `gorm:"not null" json:"sender_id"`
	ReceiverID uint `gorm:"not null" json:"receiver_id"`

	Flagged bool `gorm:"default:false" json:"flagged"`

	CreatedAt time.Time `json:"created_at"`
}
