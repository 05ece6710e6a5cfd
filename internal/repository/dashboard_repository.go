package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DashboardCounts aggregates the admin dashboard figures.
type DashboardCounts struct {
	ActivePrograms   int64   `json:"maestrias_activas"`
	Instructors      int64   `json:"profesores"`
	TotalEvaluations int64   `json:"evaluaciones"`
	ActivePeriodName *string `json:"periodo_activo"`
}

type DashboardRepository interface {
	GetCounts(ctx context.Context) (*DashboardCounts, error)
}

type dashboardRepository struct {
	db *pgxpool.Pool
}

func NewDashboardRepository(db *pgxpool.Pool) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) GetCounts(ctx context.Context) (*DashboardCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM maestrias WHERE activa = TRUE),
			(SELECT COUNT(*) FROM profesores WHERE activa IS DISTINCT FROM FALSE),
			(SELECT COUNT(*) FROM evaluaciones),
			(SELECT nombre FROM periodos WHERE activo = TRUE LIMIT 1)
	`
	c := &DashboardCounts{}
	err := r.db.QueryRow(ctx, query).Scan(&c.ActivePrograms, &c.Instructors, &c.TotalEvaluations, &c.ActivePeriodName)
	if err != nil {
		return nil, err
	}
	return c, nil
}
