package entities

import "time"

// Association records that a Property grew a Crop during a Season.
// The (PropertyID, SeasonID, CropID) triple is unique.
type Association struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	PropertyID uint `gorm:"not null;uniqueIndex:idx_property_season_crop,priority:1" json:"property_id"`
	SeasonID   uint `gorm:"not null;uniqueIndex:idx_property_season_crop,priority:2;index" json:"season_id"`
	CropID     uint `gorm:"not null;uniqueIndex:idx_property_season_crop,priority:3;index" json:"crop_id"`

	Property *Property `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Season   *Season   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Crop     *Crop     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Association) TableName() string { return "property_season_crops" }

// AssociationDetail is the denormalized read view of an Association.
type AssociationDetail struct {
	ID           uint   `json:"id"`
	PropertyID   uint   `json:"property_id"`
	PropertyName string `json:"property_name"`
	SeasonID     uint   `json:"season_id"`
	SeasonYear   int    `json:"season_year"`
	CropID       uint   `json:"crop_id"`
	CropName     string `json:"crop_name"`
}
