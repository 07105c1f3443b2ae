package service

import (
	"context"

	"agro/entities"
)

type ProducerService interface {
	Create(ctx context.Context, name, taxID string) (*entities.Producer, error)
	Get(ctx context.Context, id uint) (*entities.Producer, error)
	List(ctx context.Context) ([]entities.Producer, error)
	Update(ctx context.Context, id uint, p ProducerPatch) (*entities.Producer, error)
	Delete(ctx context.Context, id uint) error
}

// ProducerPatch carries a partial update. Nil fields are left unchanged.
type ProducerPatch struct {
	Name  *string `json:"name"`
	TaxID *string `json:"tax_id"`
}
