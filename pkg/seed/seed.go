// Package seed fills an empty registry with plausible data. Every row goes
// through the entity services, so the usual validation applies.
package seed

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"gorm.io/gorm"

	"agro/entities"
	"agro/pkg/apperr"
	assocSvc "agro/pkg/association/service"
	cropSvc "agro/pkg/crop/service"
	"agro/pkg/logger"
	producerSvc "agro/pkg/producer/service"
	propertySvc "agro/pkg/property/service"
	seasonSvc "agro/pkg/season/service"
	"agro/pkg/taxid"
)

var ErrNotEmpty = errors.New("database already has producers, use --force to reseed")

// States are the 27 Brazilian federative units.
var States = []string{
	"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO", "MA",
	"MT", "MS", "MG", "PA", "PB", "PR", "PE", "PI", "RJ", "RN",
	"RS", "RO", "RR", "SC", "SP", "SE", "TO",
}

var DefaultCrops = []string{
	"Soja", "Milho", "Café", "Cana-de-açúcar", "Arroz",
	"Feijão", "Trigo", "Algodão", "Laranja", "Uva",
	"Banana", "Manga", "Abacaxi", "Melancia", "Tomate",
	"Cebola", "Batata", "Cenoura", "Alface", "Couve",
}

var DefaultSeasons = []int{2020, 2021, 2022, 2023, 2024}

var (
	firstNames = []string{"Ana", "Bruno", "Carla", "Diego", "Elisa", "Fábio", "Gabriela", "Heitor", "Isabel", "João", "Larissa", "Marcos", "Natália", "Otávio", "Paula", "Rafael", "Sofia", "Tiago"}
	lastNames  = []string{"Almeida", "Barbosa", "Cardoso", "Costa", "Ferreira", "Gomes", "Lima", "Martins", "Oliveira", "Pereira", "Ribeiro", "Rocha", "Santos", "Silva", "Souza"}
	cities     = []string{"Sorriso", "Rio Verde", "Cascavel", "Uberaba", "Dourados", "Luís Eduardo Magalhães", "Passo Fundo", "Ribeirão Preto", "Balsas", "Chapecó", "Petrolina", "Paragominas"}
	farmWords  = []string{"Boa Vista", "Santa Rita", "São José", "Bela Vista", "Esperança", "Três Irmãos", "Água Limpa", "Recanto", "Primavera", "Santa Fé"}
)

type Options struct {
	Producers    int
	Properties   int
	Associations int
	Seasons      []int
	Crops        []string
	// Force wipes all five tables before seeding.
	Force bool
	// RandSeed fixes the generator; 0 picks one from the clock.
	RandSeed int64
}

type Services struct {
	Producers    producerSvc.ProducerService
	Properties   propertySvc.PropertyService
	Seasons      seasonSvc.SeasonService
	Crops        cropSvc.CropService
	Associations assocSvc.AssociationService
}

// Report counts the rows created.
type Report struct {
	Producers    int
	Properties   int
	Seasons      int
	Crops        int
	Associations int
}

type seeder struct {
	svcs Services
	r    *rand.Rand
	log  *logger.Logger
}

// Run seeds db through svcs.
func Run(ctx context.Context, db *gorm.DB, svcs Services, opts Options, log *logger.Logger) (Report, error) {
	var rep Report
	if opts.RandSeed == 0 {
		opts.RandSeed = rand.Int63()
	}
	if len(opts.Seasons) == 0 {
		opts.Seasons = DefaultSeasons
	}
	if len(opts.Crops) == 0 {
		opts.Crops = DefaultCrops
	}
	opts.Seasons = distinct(opts.Seasons)
	opts.Crops = distinct(cropNames(opts.Crops))
	log = log.With("component", "seed")

	if opts.Force {
		if err := Wipe(ctx, db); err != nil {
			return rep, err
		}
		log.Info("existing data removed")
	} else {
		var existing int64
		if err := db.WithContext(ctx).Model(&entities.Producer{}).Count(&existing).Error; err != nil {
			return rep, fmt.Errorf("count producers: %w", err)
		}
		if existing > 0 {
			return rep, ErrNotEmpty
		}
	}

	s := &seeder{svcs: svcs, r: rand.New(rand.NewSource(opts.RandSeed)), log: log}

	seasons, err := s.seasons(ctx, opts.Seasons)
	if err != nil {
		return rep, err
	}
	rep.Seasons = len(seasons)

	crops, err := s.crops(ctx, opts.Crops)
	if err != nil {
		return rep, err
	}
	rep.Crops = len(crops)

	producers, err := s.producers(ctx, opts.Producers)
	if err != nil {
		return rep, err
	}
	rep.Producers = len(producers)

	properties, err := s.properties(ctx, producers, opts.Properties)
	if err != nil {
		return rep, err
	}
	rep.Properties = len(properties)

	rep.Associations, err = s.associations(ctx, properties, seasons, crops, opts.Associations)
	if err != nil {
		return rep, err
	}

	log.Info("seed complete",
		"producers", rep.Producers, "properties", rep.Properties,
		"seasons", rep.Seasons, "crops", rep.Crops, "associations", rep.Associations,
		"rand_seed", opts.RandSeed)
	return rep, nil
}

func distinct[T comparable](in []T) []T {
	seen := make(map[T]struct{}, len(in))
	out := make([]T, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// cropNames trims names the way CropService does and drops blanks.
func cropNames(in []string) []string {
	out := make([]string, 0, len(in))
	for _, n := range in {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// Wipe deletes every row, children first.
func Wipe(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&entities.Association{},
			&entities.Property{},
			&entities.Producer{},
			&entities.Season{},
			&entities.Crop{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return fmt.Errorf("wipe %T: %w", model, err)
			}
		}
		return nil
	})
}

// seasons and crops reuse rows that already exist.
func (s *seeder) seasons(ctx context.Context, years []int) ([]uint, error) {
	existing, err := s.svcs.Seasons.List(ctx)
	if err != nil {
		return nil, err
	}
	byYear := make(map[int]uint, len(existing))
	for _, se := range existing {
		byYear[se.Year] = se.ID
	}
	ids := make([]uint, 0, len(years))
	for _, y := range years {
		if id, ok := byYear[y]; ok {
			ids = append(ids, id)
			continue
		}
		season, err := s.svcs.Seasons.Create(ctx, y)
		if err != nil {
			return nil, fmt.Errorf("season %d: %w", y, err)
		}
		byYear[y] = season.ID
		ids = append(ids, season.ID)
	}
	return ids, nil
}

func (s *seeder) crops(ctx context.Context, names []string) ([]uint, error) {
	existing, err := s.svcs.Crops.List(ctx)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]uint, len(existing))
	for _, c := range existing {
		byName[c.Name] = c.ID
	}
	ids := make([]uint, 0, len(names))
	for _, n := range names {
		if id, ok := byName[n]; ok {
			ids = append(ids, id)
			continue
		}
		crop, err := s.svcs.Crops.Create(ctx, n)
		if err != nil {
			return nil, fmt.Errorf("crop %q: %w", n, err)
		}
		byName[crop.Name] = crop.ID
		ids = append(ids, crop.ID)
	}
	return ids, nil
}

func (s *seeder) pick(list []string) string { return list[s.r.Intn(len(list))] }

func (s *seeder) producers(ctx context.Context, n int) ([]uint, error) {
	ids := make([]uint, 0, n)
	for attempts := 0; len(ids) < n; attempts++ {
		if attempts > n*10 {
			return ids, fmt.Errorf("gave up generating unique tax ids after %d attempts", attempts)
		}
		var name, doc string
		if s.r.Intn(5) == 0 {
			name = fmt.Sprintf("Agropecuária %s %s Ltda", s.pick(lastNames), s.pick(farmWords))
			doc = taxid.GenerateCNPJ(s.r)
		} else {
			name = s.pick(firstNames) + " " + s.pick(lastNames)
			doc = taxid.GenerateCPF(s.r)
		}
		p, err := s.svcs.Producers.Create(ctx, name, doc)
		if apperr.Is(err, apperr.KindConflict) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("producer: %w", err)
		}
		ids = append(ids, p.ID)
	}
	return ids, nil
}

// areas returns a total between 50 and 5000 ha with 60-90% of it arable and
// the rest vegetation, all in whole cents of a hectare.
func (s *seeder) areas() (total, arable, vegetation float64) {
	totalC := 5000 + s.r.Intn(495001)
	arableC := totalC * (60 + s.r.Intn(31)) / 100
	total = float64(totalC) / 100
	arable = float64(arableC) / 100
	vegetation = float64(totalC-arableC) / 100
	for arable+vegetation > total {
		vegetation -= 0.01
	}
	return total, arable, vegetation
}

func (s *seeder) properties(ctx context.Context, producers []uint, n int) ([]uint, error) {
	if len(producers) == 0 {
		return nil, nil
	}
	ids := make([]uint, 0, n)
	for i := 0; i < n; i++ {
		total, arable, veg := s.areas()
		p, err := s.svcs.Properties.Create(ctx, propertySvc.PropertyInput{
			Name:           "Fazenda " + s.pick(farmWords),
			City:           s.pick(cities),
			State:          s.pick(States),
			TotalArea:      total,
			ArableArea:     arable,
			VegetationArea: veg,
			ProducerID:     producers[s.r.Intn(len(producers))],
		})
		if err != nil {
			return nil, fmt.Errorf("property: %w", err)
		}
		ids = append(ids, p.ID)
	}
	return ids, nil
}

type triple [3]uint

// triples picks n distinct (property, season, crop) combinations, capped at
// the number that exist.
func (s *seeder) triples(properties, seasons, crops []uint, n int) []triple {
	limit := len(properties) * len(seasons) * len(crops)
	if n > limit {
		n = limit
	}
	if n <= 0 {
		return nil
	}
	// Dense requests enumerate and shuffle; sparse ones sample.
	if n*2 > limit {
		all := make([]triple, 0, limit)
		for _, p := range properties {
			for _, se := range seasons {
				for _, c := range crops {
					all = append(all, triple{p, se, c})
				}
			}
		}
		s.r.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
		return all[:n]
	}
	seen := make(map[triple]struct{}, n)
	out := make([]triple, 0, n)
	for len(out) < n {
		t := triple{
			properties[s.r.Intn(len(properties))],
			seasons[s.r.Intn(len(seasons))],
			crops[s.r.Intn(len(crops))],
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func (s *seeder) associations(ctx context.Context, properties, seasons, crops []uint, n int) (int, error) {
	created := 0
	for _, t := range s.triples(properties, seasons, crops, n) {
		_, err := s.svcs.Associations.Create(ctx, assocSvc.AssociationInput{PropertyID: t[0], SeasonID: t[1], CropID: t[2]})
		if err != nil {
			return created, fmt.Errorf("association %v: %w", t, err)
		}
		created++
	}
	if created < n {
		s.log.Warn("association count capped", "requested", n, "created", created)
	}
	return created, nil
}
