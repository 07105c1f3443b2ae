package serviceImp

import (
	"context"

	"gorm.io/gorm"

	"agro/database"
	"agro/entities"
	"agro/pkg/apperr"
	repo "agro/pkg/association/repository"
	"agro/pkg/association/service"
	cropRepo "agro/pkg/crop/repository"
	"agro/pkg/logger"
	"agro/pkg/metrics"
	propertyRepo "agro/pkg/property/repository"
	seasonRepo "agro/pkg/season/repository"
	"agro/pkg/svcutil"
)

const entity = "association"

type associationSvc struct {
	db         *gorm.DB
	r          repo.AssociationRepository
	properties propertyRepo.PropertyRepository
	seasons    seasonRepo.SeasonRepository
	crops      cropRepo.CropRepository
	log        *logger.Logger
	m          *metrics.Metrics
}

func NewAssociationService(
	db *gorm.DB,
	r repo.AssociationRepository,
	properties propertyRepo.PropertyRepository,
	seasons seasonRepo.SeasonRepository,
	crops cropRepo.CropRepository,
	log *logger.Logger,
	m *metrics.Metrics,
) service.AssociationService {
	return &associationSvc{
		db:         db,
		r:          r,
		properties: properties,
		seasons:    seasons,
		crops:      crops,
		log:        log.With("service", entity),
		m:          m,
	}
}

func errTripleTaken() *apperr.Error {
	return apperr.Conflict("this property already has that crop in that season")
}

func validate(a *entities.Association) error {
	switch {
	case a.PropertyID == 0:
		return apperr.Validation("property_id is required")
	case a.SeasonID == 0:
		return apperr.Validation("season_id is required")
	case a.CropID == 0:
		return apperr.Validation("crop_id is required")
	}
	return nil
}

// checkRefs verifies each reference on its own so the caller learns which one is missing,
// then rejects a triple already held by another row.
func (s *associationSvc) checkRefs(ctx context.Context, tx *gorm.DB, a *entities.Association) error {
	refs := []struct {
		name   string
		exists func(context.Context, *gorm.DB, uint) (bool, error)
		id     uint
	}{
		{"property", s.properties.Exists, a.PropertyID},
		{"season", s.seasons.Exists, a.SeasonID},
		{"crop", s.crops.Exists, a.CropID},
	}
	for _, ref := range refs {
		ok, err := ref.exists(ctx, tx, ref.id)
		if err != nil {
			return apperr.Storage(err, "check "+ref.name)
		}
		if !ok {
			return apperr.NotFound(ref.name)
		}
	}
	taken, err := s.r.TripleTaken(ctx, tx, a.PropertyID, a.SeasonID, a.CropID, a.ID)
	if err != nil {
		return apperr.Storage(err, "check association")
	}
	if taken {
		return errTripleTaken()
	}
	return nil
}

func (s *associationSvc) Create(ctx context.Context, in service.AssociationInput) (out *entities.Association, err error) {
	defer func() { svcutil.Observe(s.log, s.m, entity, "create", err) }()

	a := &entities.Association{PropertyID: in.PropertyID, SeasonID: in.SeasonID, CropID: in.CropID}
	if err = validate(a); err != nil {
		return nil, err
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.checkRefs(ctx, tx, a); err != nil {
			return err
		}
		return svcutil.Translate(s.r.Create(ctx, tx, a), "create association", errTripleTaken(), apperr.NotFound("reference"))
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *associationSvc) Get(ctx context.Context, id uint) (*entities.AssociationDetail, error) {
	d, err := s.r.FindDetail(ctx, nil, id)
	if err != nil {
		return nil, svcutil.Lookup(err, entity)
	}
	return d, nil
}

func (s *associationSvc) List(ctx context.Context) ([]entities.AssociationDetail, error) {
	list, err := s.r.ListDetails(ctx, nil)
	if err != nil {
		return nil, apperr.Storage(err, "list associations")
	}
	return list, nil
}

func (s *associationSvc) Update(ctx context.Context, id uint, patch service.AssociationPatch) (out *entities.Association, err error) {
	defer func() { svcutil.Observe(s.log, s.m, entity, "update", err, "id", id) }()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cur, err := s.r.FindByID(ctx, tx, id)
		if err != nil {
			return svcutil.Lookup(err, entity)
		}
		if patch.PropertyID != nil {
			cur.PropertyID = *patch.PropertyID
		}
		if patch.SeasonID != nil {
			cur.SeasonID = *patch.SeasonID
		}
		if patch.CropID != nil {
			cur.CropID = *patch.CropID
		}
		if err := validate(cur); err != nil {
			return err
		}
		if err := s.checkRefs(ctx, tx, cur); err != nil {
			return err
		}
		if err := s.r.Update(ctx, tx, cur); err != nil {
			return svcutil.Translate(err, "update association", errTripleTaken(), apperr.NotFound("reference"))
		}
		out = cur
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *associationSvc) Delete(ctx context.Context, id uint) (err error) {
	defer func() { svcutil.Observe(s.log, s.m, entity, "delete", err, "id", id) }()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.r.Delete(ctx, tx, id); err != nil {
			if database.IsNotFound(err) {
				return apperr.NotFound(entity)
			}
			return apperr.Storage(err, "delete association")
		}
		return nil
	})
}
