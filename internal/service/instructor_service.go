package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/model"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/repository"
)

// ErrSpecialtyRequired is returned when a non-core subject is saved
// without a specialty. Without one, the instructor could never be offered
// in the specialty rating step.
var ErrSpecialtyRequired = errors.New("non-core subjects require a specialty")

type InstructorService struct {
	instructorRepo repository.InstructorRepository
	log            zerolog.Logger
}

func NewInstructorService(instructorRepo repository.InstructorRepository, log zerolog.Logger) *InstructorService {
	return &InstructorService{
		instructorRepo: instructorRepo,
		log:            log.With().Str("component", "instructor_service").Logger(),
	}
}

func (s *InstructorService) GetAll(ctx context.Context) ([]model.Instructor, error) {
	return s.instructorRepo.GetAll(ctx)
}

func (s *InstructorService) List(ctx context.Context, f model.InstructorFilter) ([]model.Instructor, error) {
	return s.instructorRepo.List(ctx, f)
}

func (s *InstructorService) GetByID(ctx context.Context, id int) (*model.Instructor, error) {
	return s.instructorRepo.GetByID(ctx, id)
}

func (s *InstructorService) Create(ctx context.Context, ins *model.Instructor) error {
	if err := validateInstructor(ins); err != nil {
		return err
	}
	return s.instructorRepo.Create(ctx, ins)
}

func (s *InstructorService) Update(ctx context.Context, ins *model.Instructor) error {
	if err := validateInstructor(ins); err != nil {
		return err
	}
	return s.instructorRepo.Update(ctx, ins)
}

func (s *InstructorService) Delete(ctx context.Context, id int) error {
	return s.instructorRepo.Delete(ctx, id)
}

func validateInstructor(ins *model.Instructor) error {
	if !ins.CoreSubject && ins.SpecialtyID == nil {
		return ErrSpecialtyRequired
	}
	return nil
}
