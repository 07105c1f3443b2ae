package entities

import "time"

const (
	MinSeasonYear = 1900
	MaxSeasonYear = 2100
)

// Season is a harvest year; years are unique.
type Season struct {
	ID   uint `gorm:"primaryKey" json:"id"`
	Year int  `gorm:"not null;uniqueIndex" json:"year"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
