package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/model"
)

type PeriodRepository interface {
	GetAll(ctx context.Context) ([]model.Period, error)
	GetByID(ctx context.Context, id int) (*model.Period, error)
	// GetActive returns the single active period or pgx.ErrNoRows.
	GetActive(ctx context.Context) (*model.Period, error)
	Create(ctx context.Context, p *model.Period) error
	Update(ctx context.Context, p *model.Period) error
	// SetActive toggles a period. Activating one deactivates every other
	// period in the same transaction, preserving the at-most-one-active
	// invariant.
	SetActive(ctx context.Context, id int, active bool) error
	Delete(ctx context.Context, id int) error
}

type periodRepository struct {
	db *pgxpool.Pool
}

func NewPeriodRepository(db *pgxpool.Pool) PeriodRepository {
	return &periodRepository{db: db}
}

const periodColumns = `id, nombre, fecha_inicio, fecha_fin, activo, created_at, updated_at`

func scanPeriod(row pgx.Row) (*model.Period, error) {
	p := &model.Period{}
	err := row.Scan(&p.ID, &p.Name, &p.StartDate, &p.EndDate, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *periodRepository) GetAll(ctx context.Context) ([]model.Period, error) {
	query := `SELECT ` + periodColumns + ` FROM periodos ORDER BY fecha_inicio DESC NULLS LAST, nombre ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var periods []model.Period
	for rows.Next() {
		p := model.Period{}
		if err := rows.Scan(&p.ID, &p.Name, &p.StartDate, &p.EndDate, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}
	return periods, rows.Err()
}

func (r *periodRepository) GetByID(ctx context.Context, id int) (*model.Period, error) {
	query := `SELECT ` + periodColumns + ` FROM periodos WHERE id = $1`
	return scanPeriod(r.db.QueryRow(ctx, query, id))
}

func (r *periodRepository) GetActive(ctx context.Context) (*model.Period, error) {
	query := `SELECT ` + periodColumns + ` FROM periodos WHERE activo = TRUE`
	return scanPeriod(r.db.QueryRow(ctx, query))
}

func (r *periodRepository) Create(ctx context.Context, p *model.Period) error {
	query := `
		INSERT INTO periodos (nombre, fecha_inicio, fecha_fin, activo)
		VALUES ($1, $2, $3, FALSE)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, p.Name, p.StartDate, p.EndDate).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *periodRepository) Update(ctx context.Context, p *model.Period) error {
	query := `
		UPDATE periodos
		SET nombre = $1, fecha_inicio = $2, fecha_fin = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4
		RETURNING updated_at
	`
	return r.db.QueryRow(ctx, query, p.Name, p.StartDate, p.EndDate, p.ID).Scan(&p.UpdatedAt)
}

func (r *periodRepository) SetActive(ctx context.Context, id int, active bool) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if active {
		if _, err := tx.Exec(ctx, `UPDATE periodos SET activo = FALSE, updated_at = CURRENT_TIMESTAMP WHERE id <> $1 AND activo = TRUE`, id); err != nil {
			return err
		}
	}
	if _, err := tx.Exec(ctx, `UPDATE periodos SET activo = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`, active, id); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *periodRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM periodos WHERE id = $1`, id)
	return err
}
