package service

import (
	"context"

	"agro/entities"
)

type AssociationService interface {
	Create(ctx context.Context, in AssociationInput) (*entities.Association, error)
	Get(ctx context.Context, id uint) (*entities.AssociationDetail, error)
	List(ctx context.Context) ([]entities.AssociationDetail, error)
	Update(ctx context.Context, id uint, p AssociationPatch) (*entities.Association, error)
	Delete(ctx context.Context, id uint) error
}

type AssociationInput struct {
	PropertyID uint `json:"property_id"`
	SeasonID   uint `json:"season_id"`
	CropID     uint `json:"crop_id"`
}

// AssociationPatch carries a partial update. The merged triple is re-checked.
type AssociationPatch struct {
	PropertyID *uint `json:"property_id"`
	SeasonID   *uint `json:"season_id"`
	CropID     *uint `json:"crop_id"`
}
