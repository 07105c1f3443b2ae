package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"agro/entities"
	"agro/pkg/association/repository"
)

type associationRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.AssociationRepository { return &associationRepo{db} }

func (r *associationRepo) conn(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx)
}

func (r *associationRepo) Create(ctx context.Context, tx *gorm.DB, a *entities.Association) error {
	return r.conn(ctx, tx).Omit("Property", "Season", "Crop").Create(a).Error
}

func (r *associationRepo) Update(ctx context.Context, tx *gorm.DB, a *entities.Association) error {
	return r.conn(ctx, tx).Omit("Property", "Season", "Crop").Save(a).Error
}

func (r *associationRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	res := r.conn(ctx, tx).Delete(&entities.Association{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *associationRepo) FindByID(ctx context.Context, tx *gorm.DB, id uint) (*entities.Association, error) {
	var a entities.Association
	if err := r.conn(ctx, tx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *associationRepo) details(ctx context.Context, tx *gorm.DB) *gorm.DB {
	return r.conn(ctx, tx).
		Table("property_season_crops AS a").
		Select("a.id, a.property_id, p.name AS property_name, a.season_id, s.year AS season_year, a.crop_id, c.name AS crop_name").
		Joins("JOIN properties p ON p.id = a.property_id").
		Joins("JOIN seasons s ON s.id = a.season_id").
		Joins("JOIN crops c ON c.id = a.crop_id")
}

func (r *associationRepo) FindDetail(ctx context.Context, tx *gorm.DB, id uint) (*entities.AssociationDetail, error) {
	var list []entities.AssociationDetail
	if err := r.details(ctx, tx).Where("a.id = ?", id).Limit(1).Scan(&list).Error; err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &list[0], nil
}

func (r *associationRepo) ListDetails(ctx context.Context, tx *gorm.DB) ([]entities.AssociationDetail, error) {
	list := []entities.AssociationDetail{}
	return list, r.details(ctx, tx).Order("a.id asc").Scan(&list).Error
}

func (r *associationRepo) TripleTaken(ctx context.Context, tx *gorm.DB, propertyID, seasonID, cropID, excludeID uint) (bool, error) {
	var n int64
	err := r.conn(ctx, tx).Model(&entities.Association{}).
		Where("property_id = ? AND season_id = ? AND crop_id = ? AND id <> ?", propertyID, seasonID, cropID, excludeID).
		Count(&n).Error
	return n > 0, err
}
