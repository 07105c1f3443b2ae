package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"agro/entities"
	"agro/pkg/season/repository"
)

type seasonRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SeasonRepository { return &seasonRepo{db} }

func (r *seasonRepo) conn(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx)
}

func (r *seasonRepo) Create(ctx context.Context, tx *gorm.DB, s *entities.Season) error {
	return r.conn(ctx, tx).Create(s).Error
}

func (r *seasonRepo) Update(ctx context.Context, tx *gorm.DB, s *entities.Season) error {
	return r.conn(ctx, tx).Save(s).Error
}

func (r *seasonRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	res := r.conn(ctx, tx).Delete(&entities.Season{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *seasonRepo) FindByID(ctx context.Context, tx *gorm.DB, id uint) (*entities.Season, error) {
	var s entities.Season
	if err := r.conn(ctx, tx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *seasonRepo) List(ctx context.Context, tx *gorm.DB) ([]entities.Season, error) {
	list := []entities.Season{}
	return list, r.conn(ctx, tx).Order("year desc").Find(&list).Error
}

func (r *seasonRepo) YearTaken(ctx context.Context, tx *gorm.DB, year int, excludeID uint) (bool, error) {
	var n int64
	err := r.conn(ctx, tx).Model(&entities.Season{}).
		Where("year = ? AND id <> ?", year, excludeID).
		Count(&n).Error
	return n > 0, err
}

func (r *seasonRepo) CountAssociations(ctx context.Context, tx *gorm.DB, id uint) (int64, error) {
	var n int64
	err := r.conn(ctx, tx).Model(&entities.Association{}).Where("season_id = ?", id).Count(&n).Error
	return n, err
}

func (r *seasonRepo) Exists(ctx context.Context, tx *gorm.DB, id uint) (bool, error) {
	var n int64
	err := r.conn(ctx, tx).Model(&entities.Season{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}
