package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/model"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/wizard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedEvaluations(repo *fakeEvaluationRepo) {
	high := make([]int, wizard.NumQuestions)
	low := make([]int, wizard.NumQuestions)
	for i := range high {
		high[i] = 10
		low[i] = 5
	}

	repo.inserted = []*model.Evaluation{
		{
			ID: 1, PeriodID: 7, ProgramID: 1, InstructorID: 1,
			StudentFirstName: "María", StudentLastName: "García",
			StudentEmail: "maria@example.com", ConsentAccepted: true,
			Ratings: high, SubmissionID: uuid.New(),
			InstructorName: "Dra. Rivas", ProgramName: "Psicoterapia",
			PeriodName: "2026-A", CreatedAt: time.Now(),
			Comment: "Excelente, muy clara",
		},
		{
			ID: 2, PeriodID: 7, ProgramID: 1, InstructorID: 2,
			StudentFirstName: "María", StudentLastName: "García",
			StudentEmail: "maria@example.com", ConsentAccepted: true,
			Ratings: low, SubmissionID: uuid.New(),
			InstructorName: "Dr. Ortega", ProgramName: "Psicoterapia",
			PeriodName: "2026-A", CreatedAt: time.Now(),
		},
	}
}

func TestEvaluationListAnnotatesBands(t *testing.T) {
	ctx := context.Background()
	repo := &fakeEvaluationRepo{}
	seedEvaluations(repo)
	svc := NewEvaluationService(repo, zerolog.Nop())

	views, total, err := svc.List(ctx, model.EvaluationFilter{}, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, views, 2)

	assert.InDelta(t, 10.0, views[0].Average, 0.001)
	assert.Equal(t, wizard.BandExcellent, views[0].Band)
	assert.InDelta(t, 5.0, views[1].Average, 0.001)
	assert.Equal(t, wizard.BandUnsatisfactory, views[1].Band)
}

func TestEvaluationListFilters(t *testing.T) {
	ctx := context.Background()
	repo := &fakeEvaluationRepo{}
	seedEvaluations(repo)
	svc := NewEvaluationService(repo, zerolog.Nop())

	views, total, err := svc.List(ctx, model.EvaluationFilter{InstructorID: intPtr(2)}, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, views, 1)
	assert.Equal(t, "Dr. Ortega", views[0].InstructorName)
}

func TestExportCSV(t *testing.T) {
	ctx := context.Background()
	repo := &fakeEvaluationRepo{}
	seedEvaluations(repo)
	svc := NewEvaluationService(repo, zerolog.Nop())

	data, filename, err := svc.ExportCSV(ctx, model.EvaluationFilter{})
	require.NoError(t, err)

	assert.Equal(t, "evaluaciones_"+time.Now().Format("2006-01-02")+".csv", filename)

	content := string(data)
	// Excel needs the BOM to decode accents.
	assert.True(t, strings.HasPrefix(content, "\uFEFF"))

	lines := strings.Split(strings.TrimSpace(content), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Reactivo 17")
	assert.Contains(t, lines[0], "Valoración")
	assert.Contains(t, lines[1], "Dra. Rivas")
	assert.Contains(t, lines[1], "excelente")
	assert.Contains(t, lines[2], "insatisfactorio")
}
