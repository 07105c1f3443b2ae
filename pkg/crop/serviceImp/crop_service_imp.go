package serviceImp

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"agro/database"
	"agro/entities"
	"agro/pkg/apperr"
	repo "agro/pkg/crop/repository"
	"agro/pkg/crop/service"
	"agro/pkg/logger"
	"agro/pkg/metrics"
	"agro/pkg/svcutil"
)

const entity = "crop"

type cropSvc struct {
	db  *gorm.DB
	r   repo.CropRepository
	log *logger.Logger
	m   *metrics.Metrics
}

func NewCropService(db *gorm.DB, r repo.CropRepository, log *logger.Logger, m *metrics.Metrics) service.CropService {
	return &cropSvc{db: db, r: r, log: log.With("service", entity), m: m}
}

func cleanName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", apperr.Validation("crop name is required")
	}
	return name, nil
}

func errNameTaken(name string) *apperr.Error {
	return apperr.Conflict("crop %q already exists", name)
}

func (s *cropSvc) claimName(ctx context.Context, tx *gorm.DB, name string, self uint) error {
	taken, err := s.r.NameTaken(ctx, tx, name, self)
	if err != nil {
		return apperr.Storage(err, "check crop name")
	}
	if taken {
		return errNameTaken(name)
	}
	return nil
}

func (s *cropSvc) Create(ctx context.Context, name string) (out *entities.Crop, err error) {
	defer func() { svcutil.Observe(s.log, s.m, entity, "create", err) }()

	c := &entities.Crop{}
	if c.Name, err = cleanName(name); err != nil {
		return nil, err
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.claimName(ctx, tx, c.Name, 0); err != nil {
			return err
		}
		return svcutil.Translate(s.r.Create(ctx, tx, c), "create crop", errNameTaken(c.Name), nil)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *cropSvc) Get(ctx context.Context, id uint) (*entities.Crop, error) {
	c, err := s.r.FindByID(ctx, nil, id)
	if err != nil {
		return nil, svcutil.Lookup(err, entity)
	}
	return c, nil
}

func (s *cropSvc) List(ctx context.Context) ([]entities.Crop, error) {
	list, err := s.r.List(ctx, nil)
	if err != nil {
		return nil, apperr.Storage(err, "list crops")
	}
	return list, nil
}

func (s *cropSvc) Update(ctx context.Context, id uint, patch service.CropPatch) (out *entities.Crop, err error) {
	defer func() { svcutil.Observe(s.log, s.m, entity, "update", err, "id", id) }()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cur, err := s.r.FindByID(ctx, tx, id)
		if err != nil {
			return svcutil.Lookup(err, entity)
		}
		if patch.Name != nil {
			name, err := cleanName(*patch.Name)
			if err != nil {
				return err
			}
			if err := s.claimName(ctx, tx, name, id); err != nil {
				return err
			}
			cur.Name = name
		}
		if err := s.r.Update(ctx, tx, cur); err != nil {
			return svcutil.Translate(err, "update crop", errNameTaken(cur.Name), nil)
		}
		out = cur
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *cropSvc) Delete(ctx context.Context, id uint) (err error) {
	defer func() { svcutil.Observe(s.log, s.m, entity, "delete", err, "id", id) }()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := s.r.Exists(ctx, tx, id)
		if err != nil {
			return apperr.Storage(err, "load crop")
		}
		if !ok {
			return apperr.NotFound(entity)
		}
		n, err := s.r.CountAssociations(ctx, tx, id)
		if err != nil {
			return apperr.Storage(err, "count crop associations")
		}
		if n > 0 {
			return apperr.Conflict("crop is used by %d associations", n)
		}
		if err := s.r.Delete(ctx, tx, id); err != nil {
			if database.IsNotFound(err) {
				return apperr.NotFound(entity)
			}
			return svcutil.Translate(err, "delete crop", nil, apperr.Conflict("crop is still referenced by associations"))
		}
		return nil
	})
}
