package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/model"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/repository"
)

type PeriodService struct {
	periodRepo repository.PeriodRepository
	log        zerolog.Logger
}

func NewPeriodService(periodRepo repository.PeriodRepository, log zerolog.Logger) *PeriodService {
	return &PeriodService{
		periodRepo: periodRepo,
		log:        log.With().Str("component", "period_service").Logger(),
	}
}

func (s *PeriodService) GetAll(ctx context.Context) ([]model.Period, error) {
	return s.periodRepo.GetAll(ctx)
}

func (s *PeriodService) GetByID(ctx context.Context, id int) (*model.Period, error) {
	return s.periodRepo.GetByID(ctx, id)
}

func (s *PeriodService) Create(ctx context.Context, p *model.Period) error {
	return s.periodRepo.Create(ctx, p)
}

func (s *PeriodService) Update(ctx context.Context, p *model.Period) error {
	return s.periodRepo.Update(ctx, p)
}

// SetActive toggles a period. The repository guarantees at most one
// period stays active.
func (s *PeriodService) SetActive(ctx context.Context, id int, active bool) error {
	if err := s.periodRepo.SetActive(ctx, id, active); err != nil {
		return err
	}
	s.log.Info().Int("period_id", id).Bool("active", active).Msg("period toggled")
	return nil
}

func (s *PeriodService) Delete(ctx context.Context, id int) error {
	return s.periodRepo.Delete(ctx, id)
}
