package models

import "time"

type Order struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	Status string  `gorm:"size:20;default:'pending';not null" json:"status"`
	Total  float64 `gorm:"type:decimal(10,2);not null" json:"total"`

	RequesterID uint `gorm:"not null;index" json:"requester_id"`
	Requester   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	PaymentMethodID uint          `gorm:"not null" json:"payment_method_id"`
	PaymentMethod   PaymentMethod `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	AddressID *uint    `json:"address_id"`
	Address   *Address `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	OrderPending   = "pending"
	OrderInProcess = "in_process"
	OrderCancelled = "cancelled"
	OrderPaid      = "paid"
)
