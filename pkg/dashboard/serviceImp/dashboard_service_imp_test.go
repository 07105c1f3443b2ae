package serviceImp

import (
	"bytes"
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"agro/entities"
	"agro/pkg/dashboard"
	repoImp "agro/pkg/dashboard/repositoryImp"
	"agro/pkg/dashboard/service"
	"agro/pkg/metrics"
	"agro/pkg/testutil"
)

type fixture struct {
	db  *gorm.DB
	svc service.DashboardService
	m   *metrics.Metrics

	producer entities.Producer
}

func newFixture(t *testing.T) *fixture {
	db := testutil.DB(t)
	m := metrics.New(prometheus.NewRegistry())
	f := &fixture{db: db, m: m, svc: NewDashboardService(repoImp.New(db), testutil.Logger(t), m)}
	f.producer = entities.Producer{Name: "Maria Santos", TaxID: "98765432100"}
	require.NoError(t, db.Create(&f.producer).Error)
	return f
}

func (f *fixture) property(t *testing.T, state string, total, arable, veg float64) entities.Property {
	p := entities.Property{
		Name: "Fazenda " + state, City: "Cidade", State: state,
		TotalArea: total, ArableArea: arable, VegetationArea: veg,
		ProducerID: f.producer.ID,
	}
	require.NoError(t, f.db.Create(&p).Error)
	return p
}

func TestRound2(t *testing.T) {
	for _, tc := range []struct{ in, want float64 }{
		{33.333333, 33.33},
		{66.666666, 66.67},
		{0.125, 0.12},
		{0.375, 0.38},
		{2.675, 2.67},
		{500, 500},
	} {
		assert.Equal(t, tc.want, round2(tc.in), "%v", tc.in)
	}
}

func TestEmptyStore(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	svc := NewDashboardService(repoImp.New(db), testutil.Logger(t), nil)

	ov, err := svc.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, dashboard.Stats{}, ov.Stats)
	assert.Empty(t, ov.States)
	assert.Empty(t, ov.Crops)
	assert.NotNil(t, ov.LandUse)
	assert.Empty(t, ov.LandUse)
}

func TestStatsSingleFarm(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.property(t, "GO", 500, 400, 100)

	stats, err := f.svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, dashboard.Stats{TotalFarms: 1, TotalHectares: 500}, stats)
}

func TestStatesShare(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.property(t, "SP", 10, 5, 5)
	f.property(t, "MT", 10, 5, 5)
	f.property(t, "SP", 10, 5, 5)

	states, err := f.svc.States(ctx)
	require.NoError(t, err)
	assert.Equal(t, []dashboard.StateShare{
		{State: "SP", Count: 2, Percentage: 66.67},
		{State: "MT", Count: 1, Percentage: 33.33},
	}, states)
}

func TestCropsShareUsesAssociationRows(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	farms := []entities.Property{
		f.property(t, "PR", 10, 5, 5),
		f.property(t, "PR", 10, 5, 5),
		f.property(t, "RS", 10, 5, 5),
	}
	soja := entities.Crop{Name: "Soja"}
	milho := entities.Crop{Name: "Milho"}
	season := entities.Season{Year: 2024}
	for _, row := range []interface{}{&soja, &milho, &season} {
		require.NoError(t, f.db.Create(row).Error)
	}
	for _, p := range farms {
		require.NoError(t, f.db.Create(&entities.Association{PropertyID: p.ID, SeasonID: season.ID, CropID: soja.ID}).Error)
	}
	require.NoError(t, f.db.Create(&entities.Association{PropertyID: farms[0].ID, SeasonID: season.ID, CropID: milho.ID}).Error)

	crops, err := f.svc.Crops(ctx)
	require.NoError(t, err)
	assert.Equal(t, []dashboard.CropShare{
		{Crop: "Soja", Count: 3, Percentage: 75},
		{Crop: "Milho", Count: 1, Percentage: 25},
	}, crops)
	assert.Equal(t, 1, promtest.CollectAndCount(f.m.DashboardDuration, "agro_dashboard_query_duration_seconds"))
}

func TestLandUseSplit(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.property(t, "GO", 300, 200, 100)
	f.property(t, "MG", 33.3, 20.1, 13.2)

	land, err := f.svc.LandUse(ctx)
	require.NoError(t, err)
	require.Len(t, land, 2)
	assert.Equal(t, dashboard.LandUseArable, land[0].Type)
	assert.Equal(t, dashboard.LandUseVegetation, land[1].Type)
	assert.InDelta(t, 220.1, land[0].Area, 1e-9)
	assert.InDelta(t, 113.2, land[1].Area, 1e-9)
	assert.InDelta(t, 100.0, land[0].Percentage+land[1].Percentage, 0.01)
}

func TestOverviewMatchesParts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.property(t, "BA", 120, 80, 40)
	f.property(t, "PE", 80, 50, 30)

	ov, err := f.svc.Overview(ctx)
	require.NoError(t, err)

	stats, err := f.svc.Stats(ctx)
	require.NoError(t, err)
	states, err := f.svc.States(ctx)
	require.NoError(t, err)
	land, err := f.svc.LandUse(ctx)
	require.NoError(t, err)

	assert.Equal(t, stats, ov.Stats)
	assert.Equal(t, states, ov.States)
	assert.Equal(t, land, ov.LandUse)
	assert.Empty(t, ov.Crops)
}

func TestExportWorkbook(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.property(t, "GO", 500, 400, 100)

	var buf bytes.Buffer
	require.NoError(t, f.svc.Export(ctx, &buf))

	x, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer x.Close()

	assert.ElementsMatch(t, []string{"Stats", "States", "Crops", "Land Use"}, x.GetSheetList())

	v, err := x.GetCellValue("Stats", "B2")
	require.NoError(t, err)
	assert.Equal(t, "1", v)

	rows, err := x.GetRows("States")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"GO", "1", "100"}, rows[1])

	rows, err = x.GetRows("Crops")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
