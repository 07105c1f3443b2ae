package serviceImp

import (
	"context"

	"gorm.io/gorm"

	"agro/database"
	"agro/entities"
	"agro/pkg/apperr"
	"agro/pkg/logger"
	"agro/pkg/metrics"
	repo "agro/pkg/season/repository"
	"agro/pkg/season/service"
	"agro/pkg/svcutil"
)

const entity = "season"

type seasonSvc struct {
	db  *gorm.DB
	r   repo.SeasonRepository
	log *logger.Logger
	m   *metrics.Metrics
}

func NewSeasonService(db *gorm.DB, r repo.SeasonRepository, log *logger.Logger, m *metrics.Metrics) service.SeasonService {
	return &seasonSvc{db: db, r: r, log: log.With("service", entity), m: m}
}

func validYear(year int) error {
	if year < entities.MinSeasonYear || year > entities.MaxSeasonYear {
		return apperr.Validation("year must be between %d and %d", entities.MinSeasonYear, entities.MaxSeasonYear)
	}
	return nil
}

func errYearTaken(year int) *apperr.Error {
	return apperr.Conflict("season %d already exists", year)
}

func (s *seasonSvc) claimYear(ctx context.Context, tx *gorm.DB, year int, self uint) error {
	taken, err := s.r.YearTaken(ctx, tx, year, self)
	if err != nil {
		return apperr.Storage(err, "check season year")
	}
	if taken {
		return errYearTaken(year)
	}
	return nil
}

func (s *seasonSvc) Create(ctx context.Context, year int) (out *entities.Season, err error) {
	defer func() { svcutil.Observe(s.log, s.m, entity, "create", err, "year", year) }()

	if err = validYear(year); err != nil {
		return nil, err
	}
	season := &entities.Season{Year: year}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.claimYear(ctx, tx, year, 0); err != nil {
			return err
		}
		return svcutil.Translate(s.r.Create(ctx, tx, season), "create season", errYearTaken(year), nil)
	})
	if err != nil {
		return nil, err
	}
	return season, nil
}

func (s *seasonSvc) Get(ctx context.Context, id uint) (*entities.Season, error) {
	season, err := s.r.FindByID(ctx, nil, id)
	if err != nil {
		return nil, svcutil.Lookup(err, entity)
	}
	return season, nil
}

func (s *seasonSvc) List(ctx context.Context) ([]entities.Season, error) {
	list, err := s.r.List(ctx, nil)
	if err != nil {
		return nil, apperr.Storage(err, "list seasons")
	}
	return list, nil
}

func (s *seasonSvc) Update(ctx context.Context, id uint, patch service.SeasonPatch) (out *entities.Season, err error) {
	defer func() { svcutil.Observe(s.log, s.m, entity, "update", err, "id", id) }()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cur, err := s.r.FindByID(ctx, tx, id)
		if err != nil {
			return svcutil.Lookup(err, entity)
		}
		if patch.Year != nil {
			if err := validYear(*patch.Year); err != nil {
				return err
			}
			if err := s.claimYear(ctx, tx, *patch.Year, id); err != nil {
				return err
			}
			cur.Year = *patch.Year
		}
		if err := s.r.Update(ctx, tx, cur); err != nil {
			return svcutil.Translate(err, "update season", errYearTaken(cur.Year), nil)
		}
		out = cur
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *seasonSvc) Delete(ctx context.Context, id uint) (err error) {
	defer func() { svcutil.Observe(s.log, s.m, entity, "delete", err, "id", id) }()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := s.r.Exists(ctx, tx, id)
		if err != nil {
			return apperr.Storage(err, "load season")
		}
		if !ok {
			return apperr.NotFound(entity)
		}
		n, err := s.r.CountAssociations(ctx, tx, id)
		if err != nil {
			return apperr.Storage(err, "count season associations")
		}
		if n > 0 {
			return apperr.Conflict("season is used by %d associations", n)
		}
		if err := s.r.Delete(ctx, tx, id); err != nil {
			if database.IsNotFound(err) {
				return apperr.NotFound(entity)
			}
			return svcutil.Translate(err, "delete season", nil, apperr.Conflict("season is still referenced by associations"))
		}
		return nil
	})
}
