package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/model"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/repository"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/wizard"
)

// EvaluationView is an evaluation row annotated with its derived average
// and qualitative band for admin listings.
type EvaluationView struct {
	model.Evaluation
	Average float64     `json:"promedio"`
	Band    wizard.Band `json:"valoracion"`
}

// EvaluationService serves the admin reporting surface over submitted
// evaluations.
type EvaluationService struct {
	evalRepo repository.EvaluationRepository
	log      zerolog.Logger
}

func NewEvaluationService(evalRepo repository.EvaluationRepository, log zerolog.Logger) *EvaluationService {
	return &EvaluationService{
		evalRepo: evalRepo,
		log:      log.With().Str("component", "evaluation_service").Logger(),
	}
}

// List returns a page of evaluations with derived averages and bands.
func (s *EvaluationService) List(ctx context.Context, f model.EvaluationFilter, page, perPage int) ([]EvaluationView, int64, error) {
	evals, total, err := s.evalRepo.List(ctx, f, page, perPage)
	if err != nil {
		return nil, 0, err
	}
	return annotate(evals), total, nil
}

// GetByID returns one evaluation with its derived average and band.
func (s *EvaluationService) GetByID(ctx context.Context, id int) (*EvaluationView, error) {
	ev, err := s.evalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := newView(*ev)
	return &view, nil
}

func annotate(evals []model.Evaluation) []EvaluationView {
	views := make([]EvaluationView, 0, len(evals))
	for _, ev := range evals {
		views = append(views, newView(ev))
	}
	return views
}

func newView(ev model.Evaluation) EvaluationView {
	avg := wizard.Average(ev.Ratings)
	return EvaluationView{Evaluation: ev, Average: avg, Band: wizard.BandFor(avg)}
}

// ExportCSV renders every evaluation matching the filter as a CSV
// spreadsheet. The UTF-8 BOM makes Excel decode the accents correctly.
func (s *EvaluationService) ExportCSV(ctx context.Context, f model.EvaluationFilter) ([]byte, string, error) {
	evals, err := s.evalRepo.ListAll(ctx, f)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	buf.WriteString("\uFEFF")

	w := csv.NewWriter(&buf)

	header := []string{"Fecha", "Período", "Maestría", "Profesor/a", "Alumno", "Email"}
	for q := 1; q <= wizard.NumQuestions; q++ {
		header = append(header, fmt.Sprintf("Reactivo %d", q))
	}
	header = append(header, "Promedio", "Valoración", "Comentarios")
	if err := w.Write(header); err != nil {
		return nil, "", err
	}

	for _, ev := range evals {
		avg := wizard.Average(ev.Ratings)

		record := []string{
			ev.CreatedAt.Format("2006-01-02 15:04"),
			ev.PeriodName,
			ev.ProgramName,
			ev.InstructorName,
			ev.StudentFirstName + " " + ev.StudentLastName,
			ev.StudentEmail,
		}
		for _, v := range ev.Ratings {
			record = append(record, strconv.Itoa(v))
		}
		record = append(record,
			strconv.FormatFloat(avg, 'f', 2, 64),
			string(wizard.BandFor(avg)),
			ev.Comment,
		)
		if err := w.Write(record); err != nil {
			return nil, "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("evaluaciones_%s.csv", time.Now().Format("2006-01-02"))
	s.log.Info().Int("rows", len(evals)).Str("filename", filename).Msg("evaluations exported")
	return buf.Bytes(), filename, nil
}
