package models

import "time"

// Block suprime nuevos mensajes del provider hacia el cliente bloqueado.
// Se crea cuando un provider denuncia a un cliente.
type Block struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BlockerID uint `gorm:"not null;index" json:"blocker_id"`
	Blocker   User `gorm:"foreignKey:BlockerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	BlockedID uint `gorm:"not null;index" json:"blocked_id"`
	Blocked   User `gorm:"foreignKey:BlockedID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
