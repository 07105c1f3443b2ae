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
	repo "agro/pkg/producer/repository"
	"agro/pkg/producer/service"
	"agro/pkg/svcutil"
	"agro/pkg/taxid"
)

const entity = "producer"

type producerSvc struct {
	db  *gorm.DB
	r   repo.ProducerRepository
	log *logger.Logger
	m   *metrics.Metrics
}

func NewProducerService(db *gorm.DB, r repo.ProducerRepository, log *logger.Logger, m *metrics.Metrics) service.ProducerService {
	return &producerSvc{db: db, r: r, log: log.With("service", entity), m: m}
}

func errTaxIDTaken() *apperr.Error {
	return apperr.Conflict("a producer with this tax id already exists")
}

func cleanName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", apperr.Validation("producer name is required")
	}
	return name, nil
}

// cleanTaxID keeps only the digits of a valid CPF or CNPJ.
func cleanTaxID(raw string) (string, error) {
	if !taxid.IsValid(raw) {
		return "", apperr.Validation("invalid CPF or CNPJ")
	}
	return taxid.Normalize(raw), nil
}

func (s *producerSvc) Create(ctx context.Context, name, taxID string) (out *entities.Producer, err error) {
	defer func() { svcutil.Observe(s.log, s.m, entity, "create", err) }()

	p := &entities.Producer{}
	if p.Name, err = cleanName(name); err != nil {
		return nil, err
	}
	if p.TaxID, err = cleanTaxID(taxID); err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := s.r.TaxIDTaken(ctx, tx, p.TaxID, 0)
		if err != nil {
			return apperr.Storage(err, "check tax id")
		}
		if taken {
			return errTaxIDTaken()
		}
		return svcutil.Translate(s.r.Create(ctx, tx, p), "create producer", errTaxIDTaken(), nil)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *producerSvc) Get(ctx context.Context, id uint) (*entities.Producer, error) {
	p, err := s.r.FindByID(ctx, nil, id)
	if err != nil {
		return nil, svcutil.Lookup(err, entity)
	}
	return p, nil
}

func (s *producerSvc) List(ctx context.Context) ([]entities.Producer, error) {
	list, err := s.r.List(ctx, nil)
	if err != nil {
		return nil, apperr.Storage(err, "list producers")
	}
	return list, nil
}

func (s *producerSvc) Update(ctx context.Context, id uint, patch service.ProducerPatch) (out *entities.Producer, err error) {
	defer func() { svcutil.Observe(s.log, s.m, entity, "update", err, "id", id) }()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cur, err := s.r.FindByID(ctx, tx, id)
		if err != nil {
			return svcutil.Lookup(err, entity)
		}
		if patch.Name != nil {
			if cur.Name, err = cleanName(*patch.Name); err != nil {
				return err
			}
		}
		if patch.TaxID != nil {
			if cur.TaxID, err = cleanTaxID(*patch.TaxID); err != nil {
				return err
			}
			taken, err := s.r.TaxIDTaken(ctx, tx, cur.TaxID, id)
			if err != nil {
				return apperr.Storage(err, "check tax id")
			}
			if taken {
				return errTaxIDTaken()
			}
		}
		if err := s.r.Update(ctx, tx, cur); err != nil {
			return svcutil.Translate(err, "update producer", errTaxIDTaken(), nil)
		}
		out = cur
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *producerSvc) Delete(ctx context.Context, id uint) (err error) {
	defer func() { svcutil.Observe(s.log, s.m, entity, "delete", err, "id", id) }()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.r.FindByID(ctx, tx, id); err != nil {
			return svcutil.Lookup(err, entity)
		}
		n, err := s.r.CountProperties(ctx, tx, id)
		if err != nil {
			return apperr.Storage(err, "count producer properties")
		}
		if n > 0 {
			return apperr.Conflict("producer still owns %d properties", n)
		}
		if err := s.r.Delete(ctx, tx, id); err != nil {
			if database.IsNotFound(err) {
				return apperr.NotFound(entity)
			}
			return svcutil.Translate(err, "delete producer", nil, apperr.Conflict("producer is still referenced by properties"))
		}
		return nil
	})
}
