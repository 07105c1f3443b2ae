package repository

import (
	"context"

	"gorm.io/gorm"

	"agro/entities"
)

type SeasonRepository interface {
	Create(ctx context.Context, tx *gorm.DB, s *entities.Season) error
	Update(ctx context.Context, tx *gorm.DB, s *entities.Season) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	FindByID(ctx context.Context, tx *gorm.DB, id uint) (*entities.Season, error)
	// List returns the newest year first.
	List(ctx context.Context, tx *gorm.DB) ([]entities.Season, error)
	YearTaken(ctx context.Context, tx *gorm.DB, year int, excludeID uint) (bool, error)
	CountAssociations(ctx context.Context, tx *gorm.DB, id uint) (int64, error)
	Exists(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
}
