package serviceImp

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"agro/entities"
	"agro/pkg/apperr"
	"agro/pkg/metrics"
	repoImp "agro/pkg/property/repositoryImp"
	"agro/pkg/property/service"
	"agro/pkg/testutil"
)

type PropertyServiceSuite struct {
	suite.Suite
	ctx      context.Context
	db       *gorm.DB
	svc      service.PropertyService
	producer entities.Producer
}

func TestPropertyServiceSuite(t *testing.T) {
	suite.Run(t, new(PropertyServiceSuite))
}

func (s *PropertyServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = testutil.DB(s.T())
	s.svc = NewPropertyService(s.db, repoImp.New(s.db), testutil.Logger(s.T()), metrics.New(prometheus.NewRegistry()))
	s.producer = entities.Producer{Name: "Maria Santos", TaxID: "98765432100"}
	s.Require().NoError(s.db.Create(&s.producer).Error)
}

func (s *PropertyServiceSuite) input() service.PropertyInput {
	return service.PropertyInput{
		Name: "Fazenda Boa Vista", City: "Sorriso", State: "mt",
		TotalArea: 500, ArableArea: 400, VegetationArea: 100,
		ProducerID: s.producer.ID,
	}
}

func f64(v float64) *float64 { return &v }

func (s *PropertyServiceSuite) TestCreate() {
	s.Run("valid property", func() {
		p, err := s.svc.Create(s.ctx, s.input())
		s.Require().NoError(err)
		s.NotZero(p.ID)
		s.Equal("MT", p.State)
	})

	s.Run("area sum above total", func() {
		in := s.input()
		in.TotalArea, in.ArableArea, in.VegetationArea = 1000, 800, 300
		_, err := s.svc.Create(s.ctx, in)
		s.True(apperr.Is(err, apperr.KindValidation))
	})

	s.Run("non-positive areas", func() {
		for _, mut := range []func(*service.PropertyInput){
			func(in *service.PropertyInput) { in.TotalArea = 0 },
			func(in *service.PropertyInput) { in.ArableArea = -1 },
			func(in *service.PropertyInput) { in.VegetationArea = 0 },
		} {
			in := s.input()
			mut(&in)
			_, err := s.svc.Create(s.ctx, in)
			s.True(apperr.Is(err, apperr.KindValidation))
		}
	})

	s.Run("unknown producer", func() {
		in := s.input()
		in.ProducerID = 999
		_, err := s.svc.Create(s.ctx, in)
		s.Require().Error(err)
		s.True(apperr.Is(err, apperr.KindNotFound))
		s.Contains(err.Error(), "producer")
	})

	list, err := s.svc.List(s.ctx)
	s.Require().NoError(err)
	s.Len(list, 1)
}

func (s *PropertyServiceSuite) TestUpdateUsesMergedValues() {
	p, err := s.svc.Create(s.ctx, s.input())
	s.Require().NoError(err)

	s.Run("raising arable past the stored total is rejected", func() {
		_, err := s.svc.Update(s.ctx, p.ID, service.PropertyPatch{ArableArea: f64(450)})
		s.True(apperr.Is(err, apperr.KindValidation))
		cur, err := s.svc.Get(s.ctx, p.ID)
		s.Require().NoError(err)
		s.Equal(400.0, cur.ArableArea)
	})

	s.Run("growing total makes room", func() {
		out, err := s.svc.Update(s.ctx, p.ID, service.PropertyPatch{TotalArea: f64(600), ArableArea: f64(450)})
		s.Require().NoError(err)
		s.Equal(600.0, out.TotalArea)
		s.Equal(450.0, out.ArableArea)
		s.Equal(100.0, out.VegetationArea)
		s.Equal("Fazenda Boa Vista", out.Name)
	})

	s.Run("moving to an unknown producer", func() {
		missing := uint(999)
		_, err := s.svc.Update(s.ctx, p.ID, service.PropertyPatch{ProducerID: &missing})
		s.True(apperr.Is(err, apperr.KindNotFound))
	})

	s.Run("unknown property", func() {
		_, err := s.svc.Update(s.ctx, 999, service.PropertyPatch{TotalArea: f64(1)})
		s.True(apperr.Is(err, apperr.KindNotFound))
	})
}

func (s *PropertyServiceSuite) TestDelete() {
	p, err := s.svc.Create(s.ctx, s.input())
	s.Require().NoError(err)
	linked, err := s.svc.Create(s.ctx, s.input())
	s.Require().NoError(err)

	season := entities.Season{Year: 2024}
	crop := entities.Crop{Name: "Soja"}
	s.Require().NoError(s.db.Create(&season).Error)
	s.Require().NoError(s.db.Create(&crop).Error)
	s.Require().NoError(s.db.Create(&entities.Association{PropertyID: linked.ID, SeasonID: season.ID, CropID: crop.ID}).Error)

	s.True(apperr.Is(s.svc.Delete(s.ctx, linked.ID), apperr.KindConflict))

	s.Require().NoError(s.svc.Delete(s.ctx, p.ID))
	_, err = s.svc.Get(s.ctx, p.ID)
	s.True(apperr.Is(err, apperr.KindNotFound))
	s.True(apperr.Is(s.svc.Delete(s.ctx, p.ID), apperr.KindNotFound))
}
