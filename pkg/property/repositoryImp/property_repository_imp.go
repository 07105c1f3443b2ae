package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"agro/entities"
	"agro/pkg/property/repository"
)

type propertyRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PropertyRepository { return &propertyRepo{db} }

func (r *propertyRepo) conn(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx)
}

func (r *propertyRepo) Create(ctx context.Context, tx *gorm.DB, p *entities.Property) error {
	return r.conn(ctx, tx).Omit("Producer").Create(p).Error
}

func (r *propertyRepo) Update(ctx context.Context, tx *gorm.DB, p *entities.Property) error {
	return r.conn(ctx, tx).Omit("Producer").Save(p).Error
}

func (r *propertyRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	res := r.conn(ctx, tx).Delete(&entities.Property{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *propertyRepo) FindByID(ctx context.Context, tx *gorm.DB, id uint) (*entities.Property, error) {
	var p entities.Property
	if err := r.conn(ctx, tx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *propertyRepo) List(ctx context.Context, tx *gorm.DB) ([]entities.Property, error) {
	list := []entities.Property{}
	return list, r.conn(ctx, tx).Order("id asc").Find(&list).Error
}

func (r *propertyRepo) ProducerExists(ctx context.Context, tx *gorm.DB, producerID uint) (bool, error) {
	var n int64
	err := r.conn(ctx, tx).Model(&entities.Producer{}).Where("id = ?", producerID).Count(&n).Error
	return n > 0, err
}

func (r *propertyRepo) CountAssociations(ctx context.Context, tx *gorm.DB, id uint) (int64, error) {
	var n int64
	err := r.conn(ctx, tx).Model(&entities.Association{}).Where("property_id = ?", id).Count(&n).Error
	return n, err
}

func (r *propertyRepo) Exists(ctx context.Context, tx *gorm.DB, id uint) (bool, error) {
	var n int64
	err := r.conn(ctx, tx).Model(&entities.Property{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}
