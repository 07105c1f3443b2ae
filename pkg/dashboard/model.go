package dashboard

const (
	LandUseArable     = "Arable Area"
	LandUseVegetation = "Vegetation Area"
)

type Stats struct {
	TotalFarms    int64   `json:"total_farms"`
	TotalHectares float64 `json:"total_hectares"`
}

type StateShare struct {
	State      string  `json:"state"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

type CropShare struct {
	Crop       string  `json:"crop"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

type LandUse struct {
	Type       string  `json:"type"`
	Area       float64 `json:"area"`
	Percentage float64 `json:"percentage"`
}

// Overview is every aggregate in one response.
type Overview struct {
	Stats   Stats        `json:"stats"`
	States  []StateShare `json:"states"`
	Crops   []CropShare  `json:"crops"`
	LandUse []LandUse    `json:"land_use"`
}

// Totals are the raw property sums the aggregates are derived from.
type Totals struct {
	Farms          int64
	TotalArea      float64
	ArableArea     float64
	VegetationArea float64
}

// GroupCount is one row of a GROUP BY count.
type GroupCount struct {
	Name string `gorm:"column:name"`
	N    int64  `gorm:"column:n"`
}
