package serviceImp

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"agro/database"
	"agro/entities"
	"agro/pkg/apperr"
	"agro/pkg/logger"
	"agro/pkg/metrics"
	repo "agro/pkg/property/repository"
	"agro/pkg/property/service"
	"agro/pkg/svcutil"
)

const entity = "property"

type propertySvc struct {
	db  *gorm.DB
	r   repo.PropertyRepository
	log *logger.Logger
	m   *metrics.Metrics
}

func NewPropertyService(db *gorm.DB, r repo.PropertyRepository, log *logger.Logger, m *metrics.Metrics) service.PropertyService {
	return &propertySvc{db: db, r: r, log: log.With("service", entity), m: m}
}

// normalize trims text fields and upper-cases the state code.
func normalize(p *entities.Property) {
	p.Name = strings.TrimSpace(p.Name)
	p.City = strings.TrimSpace(p.City)
	p.State = strings.ToUpper(strings.TrimSpace(p.State))
}

func validate(p *entities.Property) error {
	switch {
	case p.Name == "":
		return apperr.Validation("property name is required")
	case p.City == "":
		return apperr.Validation("city is required")
	case p.State == "":
		return apperr.Validation("state is required")
	case p.ProducerID == 0:
		return apperr.Validation("producer_id is required")
	case p.TotalArea <= 0:
		return apperr.Validation("total area must be greater than zero")
	case p.ArableArea <= 0:
		return apperr.Validation("arable area must be greater than zero")
	case p.VegetationArea <= 0:
		return apperr.Validation("vegetation area must be greater than zero")
	}
	if p.ArableArea+p.VegetationArea > p.TotalArea {
		return apperr.Validation("arable area plus vegetation area (%.2f) exceeds total area (%.2f)",
			p.ArableArea+p.VegetationArea, p.TotalArea)
	}
	return nil
}

func (s *propertySvc) requireProducer(ctx context.Context, tx *gorm.DB, id uint) error {
	ok, err := s.r.ProducerExists(ctx, tx, id)
	if err != nil {
		return apperr.Storage(err, "check producer")
	}
	if !ok {
		return apperr.NotFound("producer")
	}
	return nil
}

func (s *propertySvc) Create(ctx context.Context, in service.PropertyInput) (out *entities.Property, err error) {
	defer func() { svcutil.Observe(s.log, s.m, entity, "create", err) }()

	p := &entities.Property{
		Name:           in.Name,
		City:           in.City,
		State:          in.State,
		TotalArea:      in.TotalArea,
		ArableArea:     in.ArableArea,
		VegetationArea: in.VegetationArea,
		ProducerID:     in.ProducerID,
	}
	normalize(p)
	if err = validate(p); err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.requireProducer(ctx, tx, p.ProducerID); err != nil {
			return err
		}
		return svcutil.Translate(s.r.Create(ctx, tx, p), "create property", nil, apperr.NotFound("producer"))
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *propertySvc) Get(ctx context.Context, id uint) (*entities.Property, error) {
	p, err := s.r.FindByID(ctx, nil, id)
	if err != nil {
		return nil, svcutil.Lookup(err, entity)
	}
	return p, nil
}

func (s *propertySvc) List(ctx context.Context) ([]entities.Property, error) {
	list, err := s.r.List(ctx, nil)
	if err != nil {
		return nil, apperr.Storage(err, "list properties")
	}
	return list, nil
}

func (s *propertySvc) Update(ctx context.Context, id uint, patch service.PropertyPatch) (out *entities.Property, err error) {
	defer func() { svcutil.Observe(s.log, s.m, entity, "update", err, "id", id) }()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cur, err := s.r.FindByID(ctx, tx, id)
		if err != nil {
			return svcutil.Lookup(err, entity)
		}
		producerChanged := patch.ProducerID != nil && *patch.ProducerID != cur.ProducerID
		apply(cur, patch)
		normalize(cur)
		if err := validate(cur); err != nil {
			return err
		}
		if producerChanged {
			if err := s.requireProducer(ctx, tx, cur.ProducerID); err != nil {
				return err
			}
		}
		if err := s.r.Update(ctx, tx, cur); err != nil {
			return svcutil.Translate(err, "update property", nil, apperr.NotFound("producer"))
		}
		out = cur
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func apply(cur *entities.Property, p service.PropertyPatch) {
	if p.Name != nil {
		cur.Name = *p.Name
	}
	if p.City != nil {
		cur.City = *p.City
	}
	if p.State != nil {
		cur.State = *p.State
	}
	if p.TotalArea != nil {
		cur.TotalArea = *p.TotalArea
	}
	if p.ArableArea != nil {
		cur.ArableArea = *p.ArableArea
	}
	if p.VegetationArea != nil {
		cur.VegetationArea = *p.VegetationArea
	}
	if p.ProducerID != nil {
		cur.ProducerID = *p.ProducerID
	}
}

func (s *propertySvc) Delete(ctx context.Context, id uint) (err error) {
	defer func() { svcutil.Observe(s.log, s.m, entity, "delete", err, "id", id) }()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := s.r.Exists(ctx, tx, id)
		if err != nil {
			return apperr.Storage(err, "load property")
		}
		if !ok {
			return apperr.NotFound(entity)
		}
		n, err := s.r.CountAssociations(ctx, tx, id)
		if err != nil {
			return apperr.Storage(err, "count property associations")
		}
		if n > 0 {
			return apperr.Conflict("property is linked to %d season/crop associations", n)
		}
		if err := s.r.Delete(ctx, tx, id); err != nil {
			if database.IsNotFound(err) {
				return apperr.NotFound(entity)
			}
			return svcutil.Translate(err, "delete property", nil, apperr.Conflict("property is still referenced by associations"))
		}
		return nil
	})
}
