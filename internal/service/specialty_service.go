package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/model"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/repository"
)

type SpecialtyService struct {
	specialtyRepo repository.SpecialtyRepository
	log           zerolog.Logger
}

func NewSpecialtyService(specialtyRepo repository.SpecialtyRepository, log zerolog.Logger) *SpecialtyService {
	return &SpecialtyService{
		specialtyRepo: specialtyRepo,
		log:           log.With().Str("component", "specialty_service").Logger(),
	}
}

func (s *SpecialtyService) GetAll(ctx context.Context) ([]model.Specialty, error) {
	return s.specialtyRepo.GetAll(ctx)
}

func (s *SpecialtyService) GetByID(ctx context.Context, id int) (*model.Specialty, error) {
	return s.specialtyRepo.GetByID(ctx, id)
}

func (s *SpecialtyService) Create(ctx context.Context, sp *model.Specialty) error {
	return s.specialtyRepo.Create(ctx, sp)
}

func (s *SpecialtyService) Update(ctx context.Context, sp *model.Specialty) error {
	return s.specialtyRepo.Update(ctx, sp)
}

func (s *SpecialtyService) Delete(ctx context.Context, id int) error {
	return s.specialtyRepo.Delete(ctx, id)
}
