package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/repository"
)

type DashboardService struct {
	dashboardRepo repository.DashboardRepository
	log           zerolog.Logger
}

func NewDashboardService(dashboardRepo repository.DashboardRepository, log zerolog.Logger) *DashboardService {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
		log:           log.With().Str("component", "dashboard_service").Logger(),
	}
}

func (s *DashboardService) GetCounts(ctx context.Context) (*repository.DashboardCounts, error) {
	return s.dashboardRepo.GetCounts(ctx)
}
