package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"agro/entities"
	"agro/pkg/producer/repository"
)

type producerRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ProducerRepository { return &producerRepo{db} }

func (r *producerRepo) conn(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx)
}

func (r *producerRepo) Create(ctx context.Context, tx *gorm.DB, p *entities.Producer) error {
	return r.conn(ctx, tx).Create(p).Error
}

func (r *producerRepo) Update(ctx context.Context, tx *gorm.DB, p *entities.Producer) error {
	return r.conn(ctx, tx).Save(p).Error
}

func (r *producerRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	res := r.conn(ctx, tx).Delete(&entities.Producer{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *producerRepo) FindByID(ctx context.Context, tx *gorm.DB, id uint) (*entities.Producer, error) {
	var p entities.Producer
	if err := r.conn(ctx, tx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *producerRepo) List(ctx context.Context, tx *gorm.DB) ([]entities.Producer, error) {
	list := []entities.Producer{}
	return list, r.conn(ctx, tx).Order("id asc").Find(&list).Error
}

func (r *producerRepo) TaxIDTaken(ctx context.Context, tx *gorm.DB, taxID string, excludeID uint) (bool, error) {
	var n int64
	err := r.conn(ctx, tx).Model(&entities.Producer{}).
		Where("tax_id = ? AND id <> ?", taxID, excludeID).
		Count(&n).Error
	return n > 0, err
}

func (r *producerRepo) CountProperties(ctx context.Context, tx *gorm.DB, id uint) (int64, error) {
	var n int64
	err := r.conn(ctx, tx).Model(&entities.Property{}).Where("producer_id = ?", id).Count(&n).Error
	return n, err
}
