package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"agro/entities"
	assocRepoImp "agro/pkg/association/repositoryImp"
	assocSvcImp "agro/pkg/association/serviceImp"
	cropRepoImp "agro/pkg/crop/repositoryImp"
	cropSvcImp "agro/pkg/crop/serviceImp"
	producerRepoImp "agro/pkg/producer/repositoryImp"
	producerSvcImp "agro/pkg/producer/serviceImp"
	propertyRepoImp "agro/pkg/property/repositoryImp"
	propertySvcImp "agro/pkg/property/serviceImp"
	seasonRepoImp "agro/pkg/season/repositoryImp"
	seasonSvcImp "agro/pkg/season/serviceImp"
	"agro/pkg/taxid"
	"agro/pkg/testutil"
)

func newServices(t *testing.T, db *gorm.DB) Services {
	log := testutil.Logger(t)
	pRepo := propertyRepoImp.New(db)
	sRepo := seasonRepoImp.New(db)
	cRepo := cropRepoImp.New(db)
	return Services{
		Producers:    producerSvcImp.NewProducerService(db, producerRepoImp.New(db), log, nil),
		Properties:   propertySvcImp.NewPropertyService(db, pRepo, log, nil),
		Seasons:      seasonSvcImp.NewSeasonService(db, sRepo, log, nil),
		Crops:        cropSvcImp.NewCropService(db, cRepo, log, nil),
		Associations: assocSvcImp.NewAssociationService(db, assocRepoImp.New(db), pRepo, sRepo, cRepo, log, nil),
	}
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestRunPopulatesConsistentData(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	opts := Options{Producers: 8, Properties: 12, Associations: 30, RandSeed: 42}

	rep, err := Run(ctx, db, newServices(t, db), opts, testutil.Logger(t))
	require.NoError(t, err)
	assert.Equal(t, Report{Producers: 8, Properties: 12, Seasons: 5, Crops: 20, Associations: 30}, rep)
	assert.EqualValues(t, 30, count(t, db, &entities.Association{}))

	var producers []entities.Producer
	require.NoError(t, db.Find(&producers).Error)
	seen := map[string]bool{}
	for _, p := range producers {
		assert.True(t, taxid.IsValid(p.TaxID), p.TaxID)
		assert.False(t, seen[p.TaxID], "duplicate %s", p.TaxID)
		seen[p.TaxID] = true
	}

	var props []entities.Property
	require.NoError(t, db.Find(&props).Error)
	for _, p := range props {
		assert.Contains(t, States, p.State)
		assert.Greater(t, p.VegetationArea, 0.0)
		assert.LessOrEqual(t, p.ArableArea+p.VegetationArea, p.TotalArea)
		assert.GreaterOrEqual(t, p.ArableArea, p.TotalArea*0.6-0.01)
		assert.LessOrEqual(t, p.ArableArea, p.TotalArea*0.9+0.01)
	}
}

func TestRunRefusesNonEmptyWithoutForce(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	svcs := newServices(t, db)
	opts := Options{Producers: 2, Properties: 2, Associations: 2, RandSeed: 7}

	_, err := Run(ctx, db, svcs, opts, testutil.Logger(t))
	require.NoError(t, err)

	_, err = Run(ctx, db, svcs, opts, testutil.Logger(t))
	assert.ErrorIs(t, err, ErrNotEmpty)

	opts.Force = true
	opts.Producers = 3
	rep, err := Run(ctx, db, svcs, opts, testutil.Logger(t))
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Producers)
	assert.EqualValues(t, 3, count(t, db, &entities.Producer{}))
}

func TestRunCapsAssociations(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	opts := Options{
		Producers: 1, Properties: 2, Associations: 50,
		Seasons: []int{2024, 2024}, Crops: []string{"Soja", "Milho"},
		RandSeed: 3,
	}

	rep, err := Run(ctx, db, newServices(t, db), opts, testutil.Logger(t))
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Seasons)
	assert.Equal(t, 4, rep.Associations)
}

func TestRunReusesCropsDespiteSpacing(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	svcs := newServices(t, db)
	existing, err := svcs.Crops.Create(ctx, "Soja")
	require.NoError(t, err)

	opts := Options{
		Producers: 1, Properties: 1, Associations: 1,
		Seasons: []int{2024}, Crops: []string{" Soja", "Soja ", "  "},
		RandSeed: 5,
	}
	rep, err := Run(ctx, db, svcs, opts, testutil.Logger(t))
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Crops)
	assert.EqualValues(t, 1, count(t, db, &entities.Crop{}))

	var a entities.Association
	require.NoError(t, db.First(&a).Error)
	assert.Equal(t, existing.ID, a.CropID)
}
