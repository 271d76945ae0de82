package models

import "time"

type PaymentMethod struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Type          string `gorm:"size:20;not null" json:"type"`
	AccountNumber string `gorm:"size:50" json:"account_number"`
	Holder        string `gorm:"size:100" json:"holder"`

	OwnerID uint `gorm:"not null;index" json:"owner_id"`
	Owner   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// Medios de pago soportados (tarjetas, efectivo y billeteras locales).
var PaymentMethodTypes = []string{
	"credit_card", "debit_card", "cash", "transfer", "nequi", "daviplata", "pse",
}

func IsValidPaymentMethodType(t string) bool {
	for _, v := range PaymentMethodTypes {
		if v == t {
			return true
		}
	}
	return false
}
