package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"agro/entities"
	"agro/pkg/dashboard"
	"agro/pkg/dashboard/repository"
)

type dashboardRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.DashboardRepository { return &dashboardRepo{db} }

func (r *dashboardRepo) Totals(ctx context.Context) (dashboard.Totals, error) {
	var t dashboard.Totals
	err := r.db.WithContext(ctx).Model(&entities.Property{}).
		Select("COUNT(*) AS farms, " +
			"COALESCE(SUM(total_area), 0) AS total_area, " +
			"COALESCE(SUM(arable_area), 0) AS arable_area, " +
			"COALESCE(SUM(vegetation_area), 0) AS vegetation_area").
		Scan(&t).Error
	return t, err
}

func (r *dashboardRepo) CountByState(ctx context.Context) ([]dashboard.GroupCount, error) {
	list := []dashboard.GroupCount{}
	err := r.db.WithContext(ctx).Model(&entities.Property{}).
		Select("state AS name, COUNT(*) AS n").
		Group("state").
		Order("n desc, name asc").
		Scan(&list).Error
	return list, err
}

func (r *dashboardRepo) CountByCrop(ctx context.Context) ([]dashboard.GroupCount, error) {
	list := []dashboard.GroupCount{}
	err := r.db.WithContext(ctx).
		Table("property_season_crops AS a").
		Select("c.name AS name, COUNT(*) AS n").
		Joins("JOIN crops c ON c.id = a.crop_id").
		Group("c.name").
		Order("n desc, name asc").
		Scan(&list).Error
	return list, err
}
