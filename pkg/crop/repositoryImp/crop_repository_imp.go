package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"agro/entities"
	"agro/pkg/crop/repository"
)

type cropRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropRepository { return &cropRepo{db} }

func (r *cropRepo) conn(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx)
}

func (r *cropRepo) Create(ctx context.Context, tx *gorm.DB, c *entities.Crop) error {
	return r.conn(ctx, tx).Create(c).Error
}

func (r *cropRepo) Update(ctx context.Context, tx *gorm.DB, c *entities.Crop) error {
	return r.conn(ctx, tx).Save(c).Error
}

func (r *cropRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	res := r.conn(ctx, tx).Delete(&entities.Crop{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *cropRepo) FindByID(ctx context.Context, tx *gorm.DB, id uint) (*entities.Crop, error) {
	var c entities.Crop
	if err := r.conn(ctx, tx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cropRepo) List(ctx context.Context, tx *gorm.DB) ([]entities.Crop, error) {
	list := []entities.Crop{}
	return list, r.conn(ctx, tx).Order("name asc").Find(&list).Error
}

func (r *cropRepo) NameTaken(ctx context.Context, tx *gorm.DB, name string, excludeID uint) (bool, error) {
	var n int64
	err := r.conn(ctx, tx).Model(&entities.Crop{}).
		Where("name = ? AND id <> ?", name, excludeID).
		Count(&n).Error
	return n > 0, err
}

func (r *cropRepo) CountAssociations(ctx context.Context, tx *gorm.DB, id uint) (int64, error) {
	var n int64
	err := r.conn(ctx, tx).Model(&entities.Association{}).Where("crop_id = ?", id).Count(&n).Error
	return n, err
}

func (r *cropRepo) Exists(ctx context.Context, tx *gorm.DB, id uint) (bool, error) {
	var n int64
	err := r.conn(ctx, tx).Model(&entities.Crop{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}
