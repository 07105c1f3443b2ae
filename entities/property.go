package entities

import "time"

// Property is a parcel of land owned by one Producer. Areas are in hectares and
// ArableArea+VegetationArea never exceeds TotalArea.
type Property struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	Name           string  `gorm:"not null" json:"name"`
	City           string  `gorm:"not null" json:"city"`
	State          string  `gorm:"not null;index" json:"state"` // UF code, e.g. GO
	TotalArea      float64 `gorm:"not null" json:"total_area"`
	ArableArea     float64 `gorm:"not null" json:"arable_area"`
	VegetationArea float64 `gorm:"not null" json:"vegetation_area"`
	ProducerID     uint    `gorm:"not null;index" json:"producer_id"`

	Producer *Producer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
