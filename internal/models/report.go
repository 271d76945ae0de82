package models

import "time"

// Report nunca se borra; un administrador lo marca como resuelto.
type Report struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Reason      string `gorm:"size:150;not null" json:"reason"`
	Description string `gorm:"size:500" json:"description"`
	Resolved    bool   `gorm:"default:false" json:"resolved"`

	AppointmentID uint        `gorm:"not null;index" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ReporterID uint `gorm:"not null" json:"reporter_id"`
	Reporter   User `gorm:"foreignKey:ReporterID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	TargetID uint `gorm:"not null" json:"target_id"`
	Target   User `gorm:"foreignKey:TargetID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
