package models

import "time"

// Result es el resultado clínico emitido tras una cita.
type Result struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Diagnosis      string `gorm:"size:255;not null" json:"diagnosis"`
	Observations   string `gorm:"type:text" json:"observations"`
	NeedsTreatment bool   `gorm:"default:false;not null" json:"needs_treatment"`

	AppointmentID uint        `gorm:"not null;index" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
