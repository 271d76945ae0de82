package models

type Product struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	ImageURL    string  `gorm:"size:300" json:"image_url"`
	Category    string  `gorm:"size:100;not null" json:"category"`
	Description string  `gorm:"type:text;not null" json:"description"`
	Status      string  `gorm:"size:20;default:'in_stock'" json:"status"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`

	SupplierID uint     `gorm:"not null;index" json:"supplier_id"`
	Supplier   Supplier `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

const (
	ProductInStock = "in_stock"
	ProductSoldOut = "sold_out"
	ProductRetired = "retired"
)
