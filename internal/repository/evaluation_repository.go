package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/model"
)

type EvaluationRepository interface {
	// InsertBatch writes every evaluation of one submission in a single
	// transaction: either all rows land or none do. Rows already present
	// for the same (submission_id, profesor_id) are skipped, which makes
	// a retried submission idempotent. Returns the number of rows
	// actually inserted.
	InsertBatch(ctx context.Context, evals []*model.Evaluation) (int, error)
	List(ctx context.Context, f model.EvaluationFilter, page, perPage int) ([]model.Evaluation, int64, error)
	GetByID(ctx context.Context, id int) (*model.Evaluation, error)
	// ListAll streams every evaluation matching the filter, for export.
	ListAll(ctx context.Context, f model.EvaluationFilter) ([]model.Evaluation, error)
}

type evaluationRepository struct {
	db *pgxpool.Pool
}

func NewEvaluationRepository(db *pgxpool.Pool) EvaluationRepository {
	return &evaluationRepository{db: db}
}

// ratingColumns expands to reactivo_1, ..., reactivo_17.
var ratingColumns = func() string {
	cols := make([]string, 17)
	for i := range cols {
		cols[i] = fmt.Sprintf("reactivo_%d", i+1)
	}
	return strings.Join(cols, ", ")
}()

func (r *evaluationRepository) InsertBatch(ctx context.Context, evals []*model.Evaluation) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO evaluaciones (
			periodo_id, maestria_id, especialidad_id, profesor_id,
			nombre_alumno, apellidos_alumno, email, consentimiento_aceptado,
			comentarios, submission_id, ` + ratingColumns + `
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)
		ON CONFLICT (submission_id, profesor_id) DO NOTHING
	`

	inserted := 0
	for _, ev := range evals {
		if len(ev.Ratings) != 17 {
			return 0, fmt.Errorf("evaluation for instructor %d has %d ratings, want 17", ev.InstructorID, len(ev.Ratings))
		}
		args := []any{
			ev.PeriodID, ev.ProgramID, ev.SpecialtyID, ev.InstructorID,
			ev.StudentFirstName, ev.StudentLastName, ev.StudentEmail, ev.ConsentAccepted,
			ev.Comment, ev.SubmissionID,
		}
		for _, v := range ev.Ratings {
			args = append(args, v)
		}
		tag, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return 0, fmt.Errorf("insert evaluation for instructor %d: %w", ev.InstructorID, err)
		}
		inserted += int(tag.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return inserted, nil
}

const evaluationSelect = `
	SELECT e.id, e.periodo_id, e.maestria_id, e.especialidad_id, e.profesor_id,
	       e.nombre_alumno, e.apellidos_alumno, e.email, e.consentimiento_aceptado,
	       e.comentarios, e.submission_id, e.created_at,
	       p.nombre_completo, m.nombre, pe.nombre,
	       ` + "%s" + `
	FROM evaluaciones e
	JOIN profesores p ON p.id = e.profesor_id
	JOIN maestrias m ON m.id = e.maestria_id
	JOIN periodos pe ON pe.id = e.periodo_id
`

func evaluationFilterSQL(f model.EvaluationFilter, args *[]any) string {
	var conds []string
	arg := func(v any) string {
		*args = append(*args, v)
		return fmt.Sprintf("$%d", len(*args))
	}
	if f.PeriodID != nil {
		conds = append(conds, "e.periodo_id = "+arg(*f.PeriodID))
	}
	if f.ProgramID != nil {
		conds = append(conds, "e.maestria_id = "+arg(*f.ProgramID))
	}
	if f.InstructorID != nil {
		conds = append(conds, "e.profesor_id = "+arg(*f.InstructorID))
	}
	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}

func prefixedRatingColumns(prefix string) string {
	cols := make([]string, 17)
	for i := range cols {
		cols[i] = fmt.Sprintf("%s.reactivo_%d", prefix, i+1)
	}
	return strings.Join(cols, ", ")
}

func (r *evaluationRepository) scanEvaluations(ctx context.Context, query string, args ...any) ([]model.Evaluation, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var evals []model.Evaluation
	for rows.Next() {
		ev := model.Evaluation{Ratings: make([]int, 17)}
		dest := []any{
			&ev.ID, &ev.PeriodID, &ev.ProgramID, &ev.SpecialtyID, &ev.InstructorID,
			&ev.StudentFirstName, &ev.StudentLastName, &ev.StudentEmail, &ev.ConsentAccepted,
			&ev.Comment, &ev.SubmissionID, &ev.CreatedAt,
			&ev.InstructorName, &ev.ProgramName, &ev.PeriodName,
		}
		for i := range ev.Ratings {
			dest = append(dest, &ev.Ratings[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		evals = append(evals, ev)
	}
	return evals, rows.Err()
}

func (r *evaluationRepository) List(ctx context.Context, f model.EvaluationFilter, page, perPage int) ([]model.Evaluation, int64, error) {
	var args []any
	where := evaluationFilterSQL(f, &args)

	var total int64
	countQuery := `SELECT COUNT(*) FROM evaluaciones e` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	query := fmt.Sprintf(evaluationSelect, prefixedRatingColumns("e")) + where +
		fmt.Sprintf(" ORDER BY e.created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, perPage, (page-1)*perPage)

	evals, err := r.scanEvaluations(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return evals, total, nil
}

func (r *evaluationRepository) ListAll(ctx context.Context, f model.EvaluationFilter) ([]model.Evaluation, error) {
	var args []any
	where := evaluationFilterSQL(f, &args)
	query := fmt.Sprintf(evaluationSelect, prefixedRatingColumns("e")) + where + " ORDER BY e.created_at DESC"
	return r.scanEvaluations(ctx, query, args...)
}

func (r *evaluationRepository) GetByID(ctx context.Context, id int) (*model.Evaluation, error) {
	query := fmt.Sprintf(evaluationSelect, prefixedRatingColumns("e")) + " WHERE e.id = $1"
	evals, err := r.scanEvaluations(ctx, query, id)
	if err != nil {
		return nil, err
	}
	if len(evals) == 0 {
		return nil, pgx.ErrNoRows
	}
	return &evals[0], nil
}
