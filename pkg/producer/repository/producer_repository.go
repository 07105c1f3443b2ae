package repository

import (
	"context"

	"gorm.io/gorm"

	"agro/entities"
)

// ProducerRepository methods run on tx when it is non-nil.
type ProducerRepository interface {
	Create(ctx context.Context, tx *gorm.DB, p *entities.Producer) error
	Update(ctx context.Context, tx *gorm.DB, p *entities.Producer) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	FindByID(ctx context.Context, tx *gorm.DB, id uint) (*entities.Producer, error)
	List(ctx context.Context, tx *gorm.DB) ([]entities.Producer, error)
	// TaxIDTaken ignores the producer excludeID so an update can keep its own tax id.
	TaxIDTaken(ctx context.Context, tx *gorm.DB, taxID string, excludeID uint) (bool, error)
	CountProperties(ctx context.Context, tx *gorm.DB, id uint) (int64, error)
}
