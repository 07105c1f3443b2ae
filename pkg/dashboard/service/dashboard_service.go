package service

import (
	"context"
	"io"

	"agro/pkg/dashboard"
)

type DashboardService interface {
	Stats(ctx context.Context) (dashboard.Stats, error)
	States(ctx context.Context) ([]dashboard.StateShare, error)
	Crops(ctx context.Context) ([]dashboard.CropShare, error)
	LandUse(ctx context.Context) ([]dashboard.LandUse, error)
	Overview(ctx context.Context) (*dashboard.Overview, error)
	// Export writes the overview as an XLSX workbook, one sheet per aggregate.
	Export(ctx context.Context, w io.Writer) error
}
