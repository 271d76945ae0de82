package models

type OrderItem struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Quantity int     `gorm:"not null" json:"quantity"`
	Subtotal float64 `gorm:"type:decimal(10,2);not null" json:"subtotal"`

	OrderID uint  `gorm:"not null;index" json:"order_id"`
	Order   Order `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ProductID uint    `gorm:"not null" json:"product_id"`
	Product   Product `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
