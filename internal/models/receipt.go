package models

import "time"

type Receipt struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	AmountPaid float64 `gorm:"type:decimal(10,2);not null" json:"amount_paid"`
	Status     string  `gorm:"size:20;default:'issued'" json:"status"`

	OrderID uint  `gorm:"not null;index" json:"order_id"`
	Order   Order `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

const (
	ReceiptIssued = "issued"
	ReceiptVoid   = "void"
	ReceiptPaid   = "paid"
)
