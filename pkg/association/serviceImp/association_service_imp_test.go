package serviceImp

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"agro/entities"
	"agro/pkg/apperr"
	repoImp "agro/pkg/association/repositoryImp"
	"agro/pkg/association/service"
	cropRepoImp "agro/pkg/crop/repositoryImp"
	"agro/pkg/metrics"
	propertyRepoImp "agro/pkg/property/repositoryImp"
	seasonRepoImp "agro/pkg/season/repositoryImp"
	"agro/pkg/testutil"
)

type AssociationServiceSuite struct {
	suite.Suite
	ctx context.Context
	db  *gorm.DB
	svc service.AssociationService

	farm, ranch  entities.Property
	y2023, y2024 entities.Season
	soja, milho  entities.Crop
}

func TestAssociationServiceSuite(t *testing.T) {
	suite.Run(t, new(AssociationServiceSuite))
}

func (s *AssociationServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = testutil.DB(s.T())
	s.svc = NewAssociationService(s.db, repoImp.New(s.db),
		propertyRepoImp.New(s.db), seasonRepoImp.New(s.db), cropRepoImp.New(s.db),
		testutil.Logger(s.T()), metrics.New(prometheus.NewRegistry()))

	producer := entities.Producer{Name: "Maria Santos", TaxID: "98765432100"}
	s.Require().NoError(s.db.Create(&producer).Error)
	s.farm = entities.Property{Name: "Fazenda A", City: "Sorriso", State: "MT", TotalArea: 100, ArableArea: 70, VegetationArea: 30, ProducerID: producer.ID}
	s.ranch = entities.Property{Name: "Fazenda B", City: "Dourados", State: "MS", TotalArea: 50, ArableArea: 30, VegetationArea: 20, ProducerID: producer.ID}
	s.y2023 = entities.Season{Year: 2023}
	s.y2024 = entities.Season{Year: 2024}
	s.soja = entities.Crop{Name: "Soja"}
	s.milho = entities.Crop{Name: "Milho"}
	for _, row := range []interface{}{&s.farm, &s.ranch, &s.y2023, &s.y2024, &s.soja, &s.milho} {
		s.Require().NoError(s.db.Create(row).Error)
	}
}

func (s *AssociationServiceSuite) count() int64 {
	var n int64
	s.Require().NoError(s.db.Model(&entities.Association{}).Count(&n).Error)
	return n
}

func (s *AssociationServiceSuite) missingEntity(err error) string {
	var ae *apperr.Error
	s.Require().True(errors.As(err, &ae), "unexpected error %v", err)
	s.Require().Equal(apperr.KindNotFound, ae.Kind)
	return ae.Entity
}

func (s *AssociationServiceSuite) TestCreateChecksEachReference() {
	_, err := s.svc.Create(s.ctx, service.AssociationInput{PropertyID: s.farm.ID, SeasonID: s.y2024.ID, CropID: 999})
	s.Equal("crop", s.missingEntity(err))

	_, err = s.svc.Create(s.ctx, service.AssociationInput{PropertyID: s.farm.ID, SeasonID: 999, CropID: s.soja.ID})
	s.Equal("season", s.missingEntity(err))

	_, err = s.svc.Create(s.ctx, service.AssociationInput{PropertyID: 999, SeasonID: s.y2024.ID, CropID: s.soja.ID})
	s.Equal("property", s.missingEntity(err))

	_, err = s.svc.Create(s.ctx, service.AssociationInput{PropertyID: s.farm.ID, SeasonID: s.y2024.ID})
	s.True(apperr.Is(err, apperr.KindValidation))

	s.Zero(s.count())
}

func (s *AssociationServiceSuite) TestDuplicateTriple() {
	in := service.AssociationInput{PropertyID: s.farm.ID, SeasonID: s.y2024.ID, CropID: s.soja.ID}
	_, err := s.svc.Create(s.ctx, in)
	s.Require().NoError(err)

	_, err = s.svc.Create(s.ctx, in)
	s.True(apperr.Is(err, apperr.KindConflict))

	in.CropID = s.milho.ID
	_, err = s.svc.Create(s.ctx, in)
	s.NoError(err)
	s.EqualValues(2, s.count())
}

func (s *AssociationServiceSuite) TestListAndGetAreEnriched() {
	a, err := s.svc.Create(s.ctx, service.AssociationInput{PropertyID: s.ranch.ID, SeasonID: s.y2023.ID, CropID: s.milho.ID})
	s.Require().NoError(err)

	list, err := s.svc.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal(entities.AssociationDetail{
		ID:           a.ID,
		PropertyID:   s.ranch.ID,
		PropertyName: "Fazenda B",
		SeasonID:     s.y2023.ID,
		SeasonYear:   2023,
		CropID:       s.milho.ID,
		CropName:     "Milho",
	}, list[0])

	got, err := s.svc.Get(s.ctx, a.ID)
	s.Require().NoError(err)
	s.Equal(list[0], *got)

	_, err = s.svc.Get(s.ctx, a.ID+100)
	s.True(apperr.Is(err, apperr.KindNotFound))
}

func (s *AssociationServiceSuite) TestUpdateChecksMergedTriple() {
	first, err := s.svc.Create(s.ctx, service.AssociationInput{PropertyID: s.farm.ID, SeasonID: s.y2024.ID, CropID: s.soja.ID})
	s.Require().NoError(err)
	second, err := s.svc.Create(s.ctx, service.AssociationInput{PropertyID: s.farm.ID, SeasonID: s.y2024.ID, CropID: s.milho.ID})
	s.Require().NoError(err)

	s.Run("single field change that collides", func() {
		_, err := s.svc.Update(s.ctx, second.ID, service.AssociationPatch{CropID: &s.soja.ID})
		s.True(apperr.Is(err, apperr.KindConflict))
	})

	s.Run("rewriting its own triple is allowed", func() {
		_, err := s.svc.Update(s.ctx, first.ID, service.AssociationPatch{
			PropertyID: &s.farm.ID, SeasonID: &s.y2024.ID, CropID: &s.soja.ID,
		})
		s.NoError(err)
	})

	s.Run("missing reference", func() {
		missing := uint(999)
		_, err := s.svc.Update(s.ctx, first.ID, service.AssociationPatch{SeasonID: &missing})
		s.Equal("season", s.missingEntity(err))
	})

	s.Run("moving season", func() {
		out, err := s.svc.Update(s.ctx, second.ID, service.AssociationPatch{SeasonID: &s.y2023.ID})
		s.Require().NoError(err)
		s.Equal(s.y2023.ID, out.SeasonID)
		s.Equal(s.milho.ID, out.CropID)
	})
}

func (s *AssociationServiceSuite) TestDelete() {
	a, err := s.svc.Create(s.ctx, service.AssociationInput{PropertyID: s.farm.ID, SeasonID: s.y2024.ID, CropID: s.soja.ID})
	s.Require().NoError(err)

	s.Require().NoError(s.svc.Delete(s.ctx, a.ID))
	s.Zero(s.count())
	s.True(apperr.Is(s.svc.Delete(s.ctx, a.ID), apperr.KindNotFound))
}
