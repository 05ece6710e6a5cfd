package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/model"
)

type ProgramRepository interface {
	GetAll(ctx context.Context) ([]model.Program, error)
	// ListActive returns active programs ordered by display order
	// (nulls last) then name. Final locale-aware tie-breaking happens in
	// the catalog service.
	ListActive(ctx context.Context) ([]model.Program, error)
	GetByID(ctx context.Context, id int) (*model.Program, error)
	Create(ctx context.Context, p *model.Program) error
	Update(ctx context.Context, p *model.Program) error
	Delete(ctx context.Context, id int) error
}

type programRepository struct {
	db *pgxpool.Pool
}

func NewProgramRepository(db *pgxpool.Pool) ProgramRepository {
	return &programRepository{db: db}
}

const programColumns = `id, nombre, periodo_id, activa, orden, created_at, updated_at`

func (r *programRepository) queryPrograms(ctx context.Context, query string, args ...any) ([]model.Program, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var programs []model.Program
	for rows.Next() {
		p := model.Program{}
		if err := rows.Scan(&p.ID, &p.Name, &p.PeriodID, &p.Active, &p.DisplayOrder, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		programs = append(programs, p)
	}
	return programs, rows.Err()
}

func (r *programRepository) GetAll(ctx context.Context) ([]model.Program, error) {
	query := `SELECT ` + programColumns + ` FROM maestrias ORDER BY orden ASC NULLS LAST, nombre ASC`
	return r.queryPrograms(ctx, query)
}

func (r *programRepository) ListActive(ctx context.Context) ([]model.Program, error) {
	query := `SELECT ` + programColumns + ` FROM maestrias WHERE activa = TRUE ORDER BY orden ASC NULLS LAST, nombre ASC`
	return r.queryPrograms(ctx, query)
}

func (r *programRepository) GetByID(ctx context.Context, id int) (*model.Program, error) {
	query := `SELECT ` + programColumns + ` FROM maestrias WHERE id = $1`
	p := &model.Program{}
	err := r.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.PeriodID, &p.Active, &p.DisplayOrder, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *programRepository) Create(ctx context.Context, p *model.Program) error {
	query := `
		INSERT INTO maestrias (nombre, periodo_id, activa, orden)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, p.Name, p.PeriodID, p.Active, p.DisplayOrder).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *programRepository) Update(ctx context.Context, p *model.Program) error {
	query := `
		UPDATE maestrias
		SET nombre = $1, periodo_id = $2, activa = $3, orden = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $5
		RETURNING updated_at
	`
	return r.db.QueryRow(ctx, query, p.Name, p.PeriodID, p.Active, p.DisplayOrder, p.ID).Scan(&p.UpdatedAt)
}

func (r *programRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM maestrias WHERE id = $1`, id)
	return err
}
