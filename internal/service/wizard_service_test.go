package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/config"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/model"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/wizard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func fullRatings(v int) map[int]int {
	ratings := make(map[int]int, wizard.NumQuestions)
	for q := 1; q <= wizard.NumQuestions; q++ {
		ratings[q] = v
	}
	return ratings
}

type wizardTestEnv struct {
	svc        *WizardService
	rdb        *redis.Client
	programs   *fakeProgramRepo
	specs      *fakeSpecialtyRepo
	instrs     *fakeInstructorRepo
}

func newWizardTestEnv(t *testing.T) *wizardTestEnv {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	cfg := &config.Config{WizardSessionTTL: time.Hour}
	log := zerolog.Nop()

	programs := &fakeProgramRepo{programs: []model.Program{
		{ID: 1, Name: "Maestría en Psicoterapia", Active: true},
		{ID: 2, Name: "Maestría en Neuropsicología", Active: false},
	}}
	specs := &fakeSpecialtyRepo{}
	instrs := &fakeInstructorRepo{}

	catalog := NewCatalogService(programs, specs, log)
	svc := NewWizardService(cfg, rdb, catalog, programs, specs, instrs, log)

	return &wizardTestEnv{svc: svc, rdb: rdb, programs: programs, specs: specs, instrs: instrs}
}

// advanceToProgram walks a fresh session through consent and registration.
func (env *wizardTestEnv) advanceToProgram(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	sess, err := env.svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = env.svc.AcceptConsent(ctx, sess.Token, true)
	require.NoError(t, err)

	_, err = env.svc.Register(ctx, sess.Token, "María", "García López", "maria@example.com")
	require.NoError(t, err)

	return sess.Token
}

func TestWizardFullFlow(t *testing.T) {
	ctx := context.Background()
	env := newWizardTestEnv(t)

	env.specs.specialties = []model.Specialty{
		{ID: 10, Name: "Psicoterapia Infantil", ProgramID: 1, Active: true},
	}
	env.instrs.instructors = []model.Instructor{
		{ID: 1, FullName: "Dra. Rivas", Subject: "Metodología", ProgramID: 1, CoreSubject: true},
		{ID: 2, FullName: "Dr. Ortega", Subject: "Psicopatología", ProgramID: 1, SpecialtyID: intPtr(10)},
		{ID: 3, FullName: "Mtra. Chávez", Subject: "Seminario Compartido", ProgramID: 1, SharedSubject: true},
	}

	token := env.advanceToProgram(t)

	// Program selection only admits active programs.
	_, err := env.svc.SelectProgram(ctx, token, 2)
	assert.ErrorIs(t, err, ErrProgramNotAvailable)

	_, err = env.svc.SelectProgram(ctx, token, 1)
	require.NoError(t, err)

	// Core rating phase: one subject, one instructor, both auto-selected.
	view, err := env.svc.PhaseData(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, wizard.PhaseCoreRating, view.Phase)
	assert.Equal(t, []string{"Metodología"}, view.Subjects)
	assert.Equal(t, "Metodología", view.Subject)
	require.NotNil(t, view.AutoInstructor)
	assert.Equal(t, "Dra. Rivas", view.AutoInstructor.FullName)
	assert.Len(t, view.Questions, wizard.NumQuestions)

	_, err = env.svc.CaptureRatings(ctx, token, nil, fullRatings(9), "Excelente curso")
	require.NoError(t, err)

	// Specialty selection phase.
	view, err = env.svc.PhaseData(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, wizard.PhaseSpecialty, view.Phase)
	require.Len(t, view.Specialties, 1)

	_, err = env.svc.SelectSpecialty(ctx, token, intPtr(10))
	require.NoError(t, err)

	// Specialty rating phase resolves the specialty tier.
	view, err = env.svc.PhaseData(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, wizard.PhaseSpecialtyRating, view.Phase)
	require.NotNil(t, view.AutoInstructor)
	assert.Equal(t, "Dr. Ortega", view.AutoInstructor.FullName)

	_, err = env.svc.CaptureRatings(ctx, token, nil, fullRatings(7), "")
	require.NoError(t, err)

	// Shared rating phase.
	view, err = env.svc.PhaseData(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, wizard.PhaseSharedRating, view.Phase)
	require.NotNil(t, view.AutoInstructor)
	assert.Equal(t, "Mtra. Chávez", view.AutoInstructor.FullName)

	_, err = env.svc.CaptureRatings(ctx, token, nil, fullRatings(10), "")
	require.NoError(t, err)

	// Confirmation phase summarizes everything captured.
	view, err = env.svc.PhaseData(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, wizard.PhaseConfirmation, view.Phase)
	require.NotNil(t, view.Summary)
	assert.Equal(t, "Maestría en Psicoterapia", view.Summary.ProgramName)
	assert.Equal(t, "Psicoterapia Infantil", view.Summary.SpecialtyName)
	require.Len(t, view.Summary.Evaluations, 3)
	assert.Equal(t, wizard.BandExcellent, view.Summary.Evaluations[0].Band)
	assert.Equal(t, wizard.BandRegular, view.Summary.Evaluations[1].Band)
	assert.Empty(t, view.Summary.SkippedPhases)
}

func TestWizardConsentDeclinedBlocks(t *testing.T) {
	ctx := context.Background()
	env := newWizardTestEnv(t)

	sess, err := env.svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = env.svc.AcceptConsent(ctx, sess.Token, false)
	assert.ErrorIs(t, err, ErrConsentRequired)

	// Session is still on the consent phase.
	got, err := env.svc.GetSession(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, wizard.PhaseConsent, got.Phase)
}

func TestWizardPhaseGuards(t *testing.T) {
	ctx := context.Background()
	env := newWizardTestEnv(t)

	sess, err := env.svc.StartSession(ctx)
	require.NoError(t, err)

	// Registration before consent is rejected.
	_, err = env.svc.Register(ctx, sess.Token, "Juan", "Pérez", "juan@example.com")
	assert.ErrorIs(t, err, ErrPhaseMismatch)

	// Program selection before registration is rejected.
	_, err = env.svc.SelectProgram(ctx, sess.Token, 1)
	assert.ErrorIs(t, err, ErrPhaseMismatch)

	// An unknown token is a missing session.
	_, err = env.svc.PhaseData(ctx, "no-such-token")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestWizardAutoAdvanceSkipsEmptyPhases(t *testing.T) {
	ctx := context.Background()
	env := newWizardTestEnv(t)

	// One core instructor, no specialties, no shared instructors: after
	// the core rating the wizard lands directly on confirmation.
	env.instrs.instructors = []model.Instructor{
		{ID: 1, FullName: "Dra. Rivas", Subject: "Metodología", ProgramID: 1, CoreSubject: true},
	}

	token := env.advanceToProgram(t)
	_, err := env.svc.SelectProgram(ctx, token, 1)
	require.NoError(t, err)

	_, err = env.svc.CaptureRatings(ctx, token, nil, fullRatings(8), "")
	require.NoError(t, err)

	view, err := env.svc.PhaseData(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, wizard.PhaseConfirmation, view.Phase)
	require.NotNil(t, view.Summary)
	assert.Len(t, view.Summary.Evaluations, 1)
	// Specialty and shared rating phases resolved to nothing.
	assert.Contains(t, view.Summary.SkippedPhases, wizard.PhaseSpecialtyRating)
	assert.Contains(t, view.Summary.SkippedPhases, wizard.PhaseSharedRating)
}

func TestWizardPhaseDataLoadsPoolOnce(t *testing.T) {
	ctx := context.Background()
	env := newWizardTestEnv(t)

	// Empty catalog: every rating phase resolves to nothing, yet the
	// candidate pool is queried a single time per PhaseData call.
	token := env.advanceToProgram(t)
	_, err := env.svc.SelectProgram(ctx, token, 1)
	require.NoError(t, err)

	env.instrs.listCalls = 0
	view, err := env.svc.PhaseData(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, wizard.PhaseConfirmation, view.Phase)
	assert.Equal(t, 1, env.instrs.listCalls)
}

func TestWizardInactiveInstructorsExcluded(t *testing.T) {
	ctx := context.Background()
	env := newWizardTestEnv(t)

	// Null activa counts as active; explicit false is excluded.
	env.instrs.instructors = []model.Instructor{
		{ID: 1, FullName: "Dra. Rivas", Subject: "Metodología", ProgramID: 1, CoreSubject: true, Active: nil},
		{ID: 2, FullName: "Dr. Baja", Subject: "Metodología", ProgramID: 1, CoreSubject: true, Active: boolPtr(false)},
	}

	token := env.advanceToProgram(t)
	_, err := env.svc.SelectProgram(ctx, token, 1)
	require.NoError(t, err)

	view, err := env.svc.PhaseData(ctx, token)
	require.NoError(t, err)
	require.Len(t, view.Instructors, 1)
	assert.Equal(t, "Dra. Rivas", view.Instructors[0].FullName)
}

func TestWizardSelectSubjectOutsideSet(t *testing.T) {
	ctx := context.Background()
	env := newWizardTestEnv(t)

	env.instrs.instructors = []model.Instructor{
		{ID: 1, FullName: "Dra. Rivas", Subject: "Metodología", ProgramID: 1, CoreSubject: true},
		{ID: 2, FullName: "Dr. Soto", Subject: "Estadística", ProgramID: 1, CoreSubject: true},
	}

	token := env.advanceToProgram(t)
	_, err := env.svc.SelectProgram(ctx, token, 1)
	require.NoError(t, err)

	_, err = env.svc.SelectSubject(ctx, token, "Alquimia")
	assert.ErrorIs(t, err, ErrSubjectNotAvailable)

	sess, err := env.svc.SelectSubject(ctx, token, "Estadística")
	require.NoError(t, err)
	assert.Equal(t, "Estadística", sess.Subject)
}

func TestWizardCaptureRequiresExplicitInstructor(t *testing.T) {
	ctx := context.Background()
	env := newWizardTestEnv(t)

	// Two instructors share the materia, so the pick must be explicit.
	env.instrs.instructors = []model.Instructor{
		{ID: 1, FullName: "Dra. Rivas", Subject: "Metodología", ProgramID: 1, CoreSubject: true},
		{ID: 2, FullName: "Dr. Soto", Subject: "Metodología", ProgramID: 1, CoreSubject: true},
	}

	token := env.advanceToProgram(t)
	_, err := env.svc.SelectProgram(ctx, token, 1)
	require.NoError(t, err)

	_, err = env.svc.CaptureRatings(ctx, token, nil, fullRatings(8), "")
	assert.ErrorIs(t, err, wizard.ErrInstructorNotSelected)

	_, err = env.svc.CaptureRatings(ctx, token, intPtr(2), fullRatings(8), "")
	require.NoError(t, err)
}

func TestWizardRetreat(t *testing.T) {
	ctx := context.Background()
	env := newWizardTestEnv(t)

	sess, err := env.svc.StartSession(ctx)
	require.NoError(t, err)

	// Consent is the first phase; there is nothing before it.
	_, err = env.svc.Retreat(ctx, sess.Token)
	assert.ErrorIs(t, err, ErrPhaseMismatch)

	_, err = env.svc.AcceptConsent(ctx, sess.Token, true)
	require.NoError(t, err)

	back, err := env.svc.Retreat(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, wizard.PhaseConsent, back.Phase)
}

func TestWizardCancelDiscardsSession(t *testing.T) {
	ctx := context.Background()
	env := newWizardTestEnv(t)

	sess, err := env.svc.StartSession(ctx)
	require.NoError(t, err)

	require.NoError(t, env.svc.Cancel(ctx, sess.Token))

	_, err = env.svc.GetSession(ctx, sess.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
