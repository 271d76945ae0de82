package models

import "time"

type Pet struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:25;not null" json:"name"`
	Species string `gorm:"size:20;not null" json:"species"`
	Breed   string `gorm:"size:70;not null" json:"breed"`
	WeightKg int   `json:"weight_kg"`
	AgeYears int   `json:"age_years"`
	HeightCm int   `json:"height_cm"`

	OwnerID uint `gorm:"not null;index" json:"owner_id"`
	Owner   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Especies aceptadas por el formulario de registro.
var PetSpecies = []string{"canine", "feline", "bovine", "porcine", "equine", "oviparous"}

func IsValidSpecies(s string) bool {
	for _, v := range PetSpecies {
		if v == s {
			return true
		}
	}
	return false
}
