package repository

import (
	"context"

	"gorm.io/gorm"

	"agro/entities"
)

type PropertyRepository interface {
	Create(ctx context.Context, tx *gorm.DB, p *entities.Property) error
	Update(ctx context.Context, tx *gorm.DB, p *entities.Property) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	FindByID(ctx context.Context, tx *gorm.DB, id uint) (*entities.Property, error)
	List(ctx context.Context, tx *gorm.DB) ([]entities.Property, error)
	ProducerExists(ctx context.Context, tx *gorm.DB, producerID uint) (bool, error)
	CountAssociations(ctx context.Context, tx *gorm.DB, id uint) (int64, error)
	Exists(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
}
