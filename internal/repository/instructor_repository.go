package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/model"
)

type InstructorRepository interface {
	GetAll(ctx context.Context) ([]model.Instructor, error)
	// List applies the filter. ActiveOnly keeps rows whose activa is true
	// or null (default-open policy). Results are ordered by materia, the
	// order the wizard derives subject sets in.
	List(ctx context.Context, f model.InstructorFilter) ([]model.Instructor, error)
	GetByID(ctx context.Context, id int) (*model.Instructor, error)
	Create(ctx context.Context, ins *model.Instructor) error
	Update(ctx context.Context, ins *model.Instructor) error
	Delete(ctx context.Context, id int) error
}

type instructorRepository struct {
	db *pgxpool.Pool
}

func NewInstructorRepository(db *pgxpool.Pool) InstructorRepository {
	return &instructorRepository{db: db}
}

const instructorColumns = `id, nombre_completo, materia, maestria_id, especialidad_id, es_basica, es_compartida, periodo_id, activa, created_at, updated_at`

func (r *instructorRepository) queryInstructors(ctx context.Context, query string, args ...any) ([]model.Instructor, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var instructors []model.Instructor
	for rows.Next() {
		ins := model.Instructor{}
		if err := rows.Scan(
			&ins.ID, &ins.FullName, &ins.Subject, &ins.ProgramID, &ins.SpecialtyID,
			&ins.CoreSubject, &ins.SharedSubject, &ins.PeriodID, &ins.Active,
			&ins.CreatedAt, &ins.UpdatedAt,
		); err != nil {
			return nil, err
		}
		instructors = append(instructors, ins)
	}
	return instructors, rows.Err()
}

func (r *instructorRepository) GetAll(ctx context.Context) ([]model.Instructor, error) {
	query := `SELECT ` + instructorColumns + ` FROM profesores ORDER BY nombre_completo ASC`
	return r.queryInstructors(ctx, query)
}

func (r *instructorRepository) List(ctx context.Context, f model.InstructorFilter) ([]model.Instructor, error) {
	var conds []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.ProgramID != nil {
		conds = append(conds, "maestria_id = "+arg(*f.ProgramID))
	}
	if f.SpecialtyID != nil {
		conds = append(conds, "especialidad_id = "+arg(*f.SpecialtyID))
	}
	if f.CoreOnly {
		conds = append(conds, "es_basica = TRUE")
	}
	if f.SharedOnly {
		conds = append(conds, "es_compartida = TRUE")
	}
	if f.ActiveOnly {
		// Null activa counts as active.
		conds = append(conds, "activa IS DISTINCT FROM FALSE")
	}

	query := `SELECT ` + instructorColumns + ` FROM profesores`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY materia ASC, nombre_completo ASC`

	return r.queryInstructors(ctx, query, args...)
}

func (r *instructorRepository) GetByID(ctx context.Context, id int) (*model.Instructor, error) {
	query := `SELECT ` + instructorColumns + ` FROM profesores WHERE id = $1`
	ins := &model.Instructor{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&ins.ID, &ins.FullName, &ins.Subject, &ins.ProgramID, &ins.SpecialtyID,
		&ins.CoreSubject, &ins.SharedSubject, &ins.PeriodID, &ins.Active,
		&ins.CreatedAt, &ins.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return ins, nil
}

func (r *instructorRepository) Create(ctx context.Context, ins *model.Instructor) error {
	query := `
		INSERT INTO profesores (nombre_completo, materia, maestria_id, especialidad_id, es_basica, es_compartida, periodo_id, activa)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		ins.FullName, ins.Subject, ins.ProgramID, ins.SpecialtyID,
		ins.CoreSubject, ins.SharedSubject, ins.PeriodID, ins.Active,
	).Scan(&ins.ID, &ins.CreatedAt, &ins.UpdatedAt)
}

func (r *instructorRepository) Update(ctx context.Context, ins *model.Instructor) error {
	query := `
		UPDATE profesores
		SET nombre_completo = $1, materia = $2, maestria_id = $3, especialidad_id = $4,
		    es_basica = $5, es_compartida = $6, periodo_id = $7, activa = $8,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $9
		RETURNING updated_at
	`
	return r.db.QueryRow(ctx, query,
		ins.FullName, ins.Subject, ins.ProgramID, ins.SpecialtyID,
		ins.CoreSubject, ins.SharedSubject, ins.PeriodID, ins.Active, ins.ID,
	).Scan(&ins.UpdatedAt)
}

func (r *instructorRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM profesores WHERE id = $1`, id)
	return err
}
