package service

import (
	"context"

	"agro/entities"
)

type PropertyService interface {
	Create(ctx context.Context, in PropertyInput) (*entities.Property, error)
	Get(ctx context.Context, id uint) (*entities.Property, error)
	List(ctx context.Context) ([]entities.Property, error)
	Update(ctx context.Context, id uint, p PropertyPatch) (*entities.Property, error)
	Delete(ctx context.Context, id uint) error
}

type PropertyInput struct {
	Name           string  `json:"name"`
	City           string  `json:"city"`
	State          string  `json:"state"`
	TotalArea      float64 `json:"total_area"`
	ArableArea     float64 `json:"arable_area"`
	VegetationArea float64 `json:"vegetation_area"`
	ProducerID     uint    `json:"producer_id"`
}

// PropertyPatch carries a partial update. Nil fields are left unchanged.
type PropertyPatch struct {
	Name           *string  `json:"name"`
	City           *string  `json:"city"`
	State          *string  `json:"state"`
	TotalArea      *float64 `json:"total_area"`
	ArableArea     *float64 `json:"arable_area"`
	VegetationArea *float64 `json:"vegetation_area"`
	ProducerID     *uint    `json:"producer_id"`
}
