package repository

import (
	"context"

	"agro/pkg/dashboard"
)

// DashboardRepository is read-only.
type DashboardRepository interface {
	Totals(ctx context.Context) (dashboard.Totals, error)
	// CountByState and CountByCrop order by count desc, then name.
	CountByState(ctx context.Context) ([]dashboard.GroupCount, error)
	CountByCrop(ctx context.Context) ([]dashboard.GroupCount, error)
}
