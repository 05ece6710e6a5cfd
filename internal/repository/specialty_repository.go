package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/model"
)

type SpecialtyRepository interface {
	GetAll(ctx context.Context) ([]model.Specialty, error)
	ListActiveByProgram(ctx context.Context, programID int) ([]model.Specialty, error)
	GetByID(ctx context.Context, id int) (*model.Specialty, error)
	Create(ctx context.Context, sp *model.Specialty) error
	Update(ctx context.Context, sp *model.Specialty) error
	Delete(ctx context.Context, id int) error
}

type specialtyRepository struct {
	db *pgxpool.Pool
}

func NewSpecialtyRepository(db *pgxpool.Pool) SpecialtyRepository {
	return &specialtyRepository{db: db}
}

const specialtyColumns = `id, nombre, maestria_id, activa, created_at, updated_at`

func (r *specialtyRepository) querySpecialties(ctx context.Context, query string, args ...any) ([]model.Specialty, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var specialties []model.Specialty
	for rows.Next() {
		sp := model.Specialty{}
		if err := rows.Scan(&sp.ID, &sp.Name, &sp.ProgramID, &sp.Active, &sp.CreatedAt, &sp.UpdatedAt); err != nil {
			return nil, err
		}
		specialties = append(specialties, sp)
	}
	return specialties, rows.Err()
}

func (r *specialtyRepository) GetAll(ctx context.Context) ([]model.Specialty, error) {
	query := `SELECT ` + specialtyColumns + ` FROM especialidades ORDER BY nombre ASC`
	return r.querySpecialties(ctx, query)
}

func (r *specialtyRepository) ListActiveByProgram(ctx context.Context, programID int) ([]model.Specialty, error) {
	query := `SELECT ` + specialtyColumns + ` FROM especialidades WHERE maestria_id = $1 AND activa = TRUE ORDER BY nombre ASC`
	return r.querySpecialties(ctx, query, programID)
}

func (r *specialtyRepository) GetByID(ctx context.Context, id int) (*model.Specialty, error) {
	query := `SELECT ` + specialtyColumns + ` FROM especialidades WHERE id = $1`
	sp := &model.Specialty{}
	err := r.db.QueryRow(ctx, query, id).Scan(&sp.ID, &sp.Name, &sp.ProgramID, &sp.Active, &sp.CreatedAt, &sp.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return sp, nil
}

func (r *specialtyRepository) Create(ctx context.Context, sp *model.Specialty) error {
	query := `
		INSERT INTO especialidades (nombre, maestria_id, activa)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, sp.Name, sp.ProgramID, sp.Active).Scan(&sp.ID, &sp.CreatedAt, &sp.UpdatedAt)
}

func (r *specialtyRepository) Update(ctx context.Context, sp *model.Specialty) error {
	query := `
		UPDATE especialidades
		SET nombre = $1, maestria_id = $2, activa = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4
		RETURNING updated_at
	`
	return r.db.QueryRow(ctx, query, sp.Name, sp.ProgramID, sp.Active, sp.ID).Scan(&sp.UpdatedAt)
}

func (r *specialtyRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM especialidades WHERE id = $1`, id)
	return err
}
