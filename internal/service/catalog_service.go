package service

import (
	"context"
	"sort"

	"github.com/rs/zerolog"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/model"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/repository"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// CatalogService serves the read-only catalog the public survey consumes:
// active programs and the specialties of a program.
type CatalogService struct {
	programRepo   repository.ProgramRepository
	specialtyRepo repository.SpecialtyRepository
	log           zerolog.Logger
}

func NewCatalogService(
	programRepo repository.ProgramRepository,
	specialtyRepo repository.SpecialtyRepository,
	log zerolog.Logger,
) *CatalogService {
	return &CatalogService{
		programRepo:   programRepo,
		specialtyRepo: specialtyRepo,
		log:           log.With().Str("component", "catalog_service").Logger(),
	}
}

// ListActivePrograms returns active programs ordered by display order with
// nulls last, ties broken by Spanish-collated name. Postgres does the
// first pass; the collator fixes accent ordering the C locale gets wrong.
func (s *CatalogService) ListActivePrograms(ctx context.Context) ([]model.Program, error) {
	programs, err := s.programRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	col := collate.New(language.Spanish)
	sort.SliceStable(programs, func(i, j int) bool {
		oi, oj := programs[i].DisplayOrder, programs[j].DisplayOrder
		switch {
		case oi != nil && oj != nil && *oi != *oj:
			return *oi < *oj
		case oi != nil && oj == nil:
			return true
		case oi == nil && oj != nil:
			return false
		}
		return col.CompareString(programs[i].Name, programs[j].Name) < 0
	})
	return programs, nil
}

// ListActiveSpecialties returns the active specialties of a program,
// Spanish-collated by name.
func (s *CatalogService) ListActiveSpecialties(ctx context.Context, programID int) ([]model.Specialty, error) {
	specialties, err := s.specialtyRepo.ListActiveByProgram(ctx, programID)
	if err != nil {
		return nil, err
	}

	col := collate.New(language.Spanish)
	sort.SliceStable(specialties, func(i, j int) bool {
		return col.CompareString(specialties[i].Name, specialties[j].Name) < 0
	})
	return specialties, nil
}
