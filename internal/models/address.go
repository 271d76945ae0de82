package models

type Address struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Alias       string `gorm:"size:100;default:'Principal'" json:"alias"`
	FullAddress string `gorm:"size:250;not null" json:"full_address"`
	PostalCode  string `gorm:"size:20" json:"postal_code"`
	IsPrimary   bool   `gorm:"default:false" json:"is_primary"`

	// Estado de entrega del domicilio.
	Status string `gorm:"size:20;default:'pending'" json:"status"`

	RegionID uint `gorm:"not null" json:"region_id"`
	CityID   uint `gorm:"not null" json:"city_id"`

	OwnerID uint `gorm:"not null;index" json:"owner_id"`
	Owner   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

const (
	AddressPending    = "pending"
	AddressInDelivery = "in_delivery"
	AddressDelivered  = "delivered"
	AddressCancelled  = "cancelled"
)
