package serviceImp

import (
	"context"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"agro/pkg/apperr"
	"agro/pkg/dashboard"
	repo "agro/pkg/dashboard/repository"
	"agro/pkg/dashboard/service"
	"agro/pkg/logger"
	"agro/pkg/metrics"
)

type dashboardSvc struct {
	r   repo.DashboardRepository
	log *logger.Logger
	m   *metrics.Metrics
}

func NewDashboardService(r repo.DashboardRepository, log *logger.Logger, m *metrics.Metrics) service.DashboardService {
	return &dashboardSvc{r: r, log: log.With("service", "dashboard"), m: m}
}

// round2 rounds to two decimals, half to even on the exact binary value.
func round2(x float64) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 2, 64), 64)
	if err != nil {
		return x
	}
	return v
}

func percent(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return round2(part / whole * 100)
}

func sum(rows []dashboard.GroupCount) int64 {
	var n int64
	for _, r := range rows {
		n += r.N
	}
	return n
}

func (s *dashboardSvc) fail(aggregate string, err error) error {
	s.log.Error("dashboard query failed", "aggregate", aggregate, "error", err)
	return apperr.Storage(err, "compute "+aggregate)
}

func (s *dashboardSvc) Stats(ctx context.Context) (dashboard.Stats, error) {
	defer s.m.ObserveDashboard("stats", time.Now())
	t, err := s.r.Totals(ctx)
	if err != nil {
		return dashboard.Stats{}, s.fail("stats", err)
	}
	return dashboard.Stats{TotalFarms: t.Farms, TotalHectares: round2(t.TotalArea)}, nil
}

func (s *dashboardSvc) States(ctx context.Context) ([]dashboard.StateShare, error) {
	defer s.m.ObserveDashboard("states", time.Now())
	rows, err := s.r.CountByState(ctx)
	if err != nil {
		return nil, s.fail("states", err)
	}
	total := float64(sum(rows))
	out := make([]dashboard.StateShare, 0, len(rows))
	for _, r := range rows {
		out = append(out, dashboard.StateShare{State: r.Name, Count: r.N, Percentage: percent(float64(r.N), total)})
	}
	return out, nil
}

func (s *dashboardSvc) Crops(ctx context.Context) ([]dashboard.CropShare, error) {
	defer s.m.ObserveDashboard("crops", time.Now())
	rows, err := s.r.CountByCrop(ctx)
	if err != nil {
		return nil, s.fail("crops", err)
	}
	total := float64(sum(rows))
	out := make([]dashboard.CropShare, 0, len(rows))
	for _, r := range rows {
		out = append(out, dashboard.CropShare{Crop: r.Name, Count: r.N, Percentage: percent(float64(r.N), total)})
	}
	return out, nil
}

func (s *dashboardSvc) LandUse(ctx context.Context) ([]dashboard.LandUse, error) {
	defer s.m.ObserveDashboard("land_use", time.Now())
	t, err := s.r.Totals(ctx)
	if err != nil {
		return nil, s.fail("land_use", err)
	}
	if t.TotalArea <= 0 {
		return []dashboard.LandUse{}, nil
	}
	return []dashboard.LandUse{
		{Type: dashboard.LandUseArable, Area: round2(t.ArableArea), Percentage: percent(t.ArableArea, t.TotalArea)},
		{Type: dashboard.LandUseVegetation, Area: round2(t.VegetationArea), Percentage: percent(t.VegetationArea, t.TotalArea)},
	}, nil
}

func (s *dashboardSvc) Overview(ctx context.Context) (*dashboard.Overview, error) {
	defer s.m.ObserveDashboard("overview", time.Now())

	var out dashboard.Overview
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Stats, err = s.Stats(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.States, err = s.States(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Crops, err = s.Crops(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.LandUse, err = s.LandUse(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
