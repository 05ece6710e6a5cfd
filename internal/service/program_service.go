package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/model"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/repository"
)

type ProgramService struct {
	programRepo repository.ProgramRepository
	log         zerolog.Logger
}

func NewProgramService(programRepo repository.ProgramRepository, log zerolog.Logger) *ProgramService {
	return &ProgramService{
		programRepo: programRepo,
		log:         log.With().Str("component", "program_service").Logger(),
	}
}

func (s *ProgramService) GetAll(ctx context.Context) ([]model.Program, error) {
	return s.programRepo.GetAll(ctx)
}

func (s *ProgramService) GetByID(ctx context.Context, id int) (*model.Program, error) {
	return s.programRepo.GetByID(ctx, id)
}

func (s *ProgramService) Create(ctx context.Context, p *model.Program) error {
	return s.programRepo.Create(ctx, p)
}

func (s *ProgramService) Update(ctx context.Context, p *model.Program) error {
	return s.programRepo.Update(ctx, p)
}

func (s *ProgramService) Delete(ctx context.Context, id int) error {
	return s.programRepo.Delete(ctx, id)
}
