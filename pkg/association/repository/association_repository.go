package repository

import (
	"context"

	"gorm.io/gorm"

	"agro/entities"
)

type AssociationRepository interface {
	Create(ctx context.Context, tx *gorm.DB, a *entities.Association) error
	Update(ctx context.Context, tx *gorm.DB, a *entities.Association) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	FindByID(ctx context.Context, tx *gorm.DB, id uint) (*entities.Association, error)
	// FindDetail and ListDetails join in the property name, season year and crop name.
	FindDetail(ctx context.Context, tx *gorm.DB, id uint) (*entities.AssociationDetail, error)
	ListDetails(ctx context.Context, tx *gorm.DB) ([]entities.AssociationDetail, error)
	TripleTaken(ctx context.Context, tx *gorm.DB, propertyID, seasonID, cropID, excludeID uint) (bool, error)
}
