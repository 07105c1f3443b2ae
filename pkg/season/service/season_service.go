package service

import (
	"context"

	"agro/entities"
)

type SeasonService interface {
	Create(ctx context.Context, year int) (*entities.Season, error)
	Get(ctx context.Context, id uint) (*entities.Season, error)
	List(ctx context.Context) ([]entities.Season, error)
	Update(ctx context.Context, id uint, p SeasonPatch) (*entities.Season, error)
	Delete(ctx context.Context, id uint) error
}

type SeasonPatch struct {
	Year *int `json:"year"`
}
