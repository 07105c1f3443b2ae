package service

import (
	"context"

	"agro/entities"
)

type CropService interface {
	Create(ctx context.Context, name string) (*entities.Crop, error)
	Get(ctx context.Context, id uint) (*entities.Crop, error)
	List(ctx context.Context) ([]entities.Crop, error)
	Update(ctx context.Context, id uint, p CropPatch) (*entities.Crop, error)
	Delete(ctx context.Context, id uint) error
}

type CropPatch struct {
	Name *string `json:"name"`
}
