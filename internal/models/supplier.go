package models

// Supplier distribuye productos; no es dueño de servicios ni de citas.
type Supplier struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	CompanyName    string `gorm:"size:150;not null" json:"company_name"`
	Phone          string `gorm:"size:20;not null" json:"phone"`
	Email          string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	ContactAddress string `gorm:"size:150;not null" json:"contact_address"`
	PasswordHash   string `gorm:"size:255" json:"-"`
	Status         string `gorm:"size:20;default:'active'" json:"status"`
}
