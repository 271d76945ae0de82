package models

type Treatment struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Type        string `gorm:"size:150;not null" json:"type"`
	Description string `gorm:"type:text" json:"description"`
	StartDate   string `gorm:"size:100;not null" json:"start_date"`
	EndDate     string `gorm:"size:100;not null" json:"end_date"`
	Status      string `gorm:"size:50;not null" json:"status"`

	ResultID uint   `gorm:"not null;index" json:"result_id"`
	Result   Result `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
