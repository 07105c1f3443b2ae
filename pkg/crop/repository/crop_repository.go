package repository

import (
	"context"

	"gorm.io/gorm"

	"agro/entities"
)

type CropRepository interface {
	Create(ctx context.Context, tx *gorm.DB, c *entities.Crop) error
	Update(ctx context.Context, tx *gorm.DB, c *entities.Crop) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	FindByID(ctx context.Context, tx *gorm.DB, id uint) (*entities.Crop, error)
	// List is ordered by name.
	List(ctx context.Context, tx *gorm.DB) ([]entities.Crop, error)
	NameTaken(ctx context.Context, tx *gorm.DB, name string, excludeID uint) (bool, error)
	CountAssociations(ctx context.Context, tx *gorm.DB, id uint) (int64, error)
	Exists(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
}
