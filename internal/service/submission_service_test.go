package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/config"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/model"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/wizard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type submissionTestEnv struct {
	*wizardTestEnv
	svc     *SubmissionService
	periods *fakePeriodRepo
	evals   *fakeEvaluationRepo
}

func newSubmissionTestEnv(t *testing.T) *submissionTestEnv {
	t.Helper()

	wenv := newWizardTestEnv(t)
	periods := &fakePeriodRepo{}
	evals := &fakeEvaluationRepo{}
	svc := NewSubmissionService(wenv.rdb, wenv.svc, periods, evals, zerolog.Nop())

	return &submissionTestEnv{wizardTestEnv: wenv, svc: svc, periods: periods, evals: evals}
}

// completeWizard drives a session through a single core evaluation up to
// the confirmation phase and returns its token.
func (env *submissionTestEnv) completeWizard(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	env.instrs.instructors = []model.Instructor{
		{ID: 1, FullName: "Dra. Rivas", Subject: "Metodología", ProgramID: 1, CoreSubject: true},
	}

	token := env.advanceToProgram(t)
	_, err := env.wizardTestEnv.svc.SelectProgram(ctx, token, 1)
	require.NoError(t, err)

	_, err = env.wizardTestEnv.svc.CaptureRatings(ctx, token, nil, fullRatings(9), "Muy buen curso")
	require.NoError(t, err)

	// Empty specialty and shared phases auto-advance to confirmation.
	view, err := env.wizardTestEnv.svc.PhaseData(ctx, token)
	require.NoError(t, err)
	require.Equal(t, wizard.PhaseConfirmation, view.Phase)

	return token
}

func TestSubmitRequiresActivePeriod(t *testing.T) {
	ctx := context.Background()
	env := newSubmissionTestEnv(t)

	// A period exists but none is active.
	env.periods.periods = []model.Period{{ID: 1, Name: "2026-A", Active: false}}

	token := env.completeWizard(t)

	_, err := env.svc.Submit(ctx, token)
	assert.ErrorIs(t, err, ErrNoActivePeriod)
	assert.Empty(t, env.evals.inserted)

	// The session survives so the student can retry later.
	sess, err := env.wizardTestEnv.svc.GetSession(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, wizard.PhaseConfirmation, sess.Phase)
	assert.Len(t, sess.Evaluations, 1)
}

func TestSubmitPhaseGuard(t *testing.T) {
	ctx := context.Background()
	env := newSubmissionTestEnv(t)
	env.periods.periods = []model.Period{{ID: 1, Name: "2026-A", Active: true}}

	sess, err := env.wizardTestEnv.svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = env.svc.Submit(ctx, sess.Token)
	assert.ErrorIs(t, err, ErrPhaseMismatch)
}

func TestSubmitPersistsAndCleansUp(t *testing.T) {
	ctx := context.Background()
	env := newSubmissionTestEnv(t)
	env.periods.periods = []model.Period{{ID: 7, Name: "2026-A", Active: true}}

	token := env.completeWizard(t)

	result, err := env.svc.Submit(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", result.Email)
	assert.Equal(t, 1, result.Inserted)

	require.Len(t, env.evals.inserted, 1)
	row := env.evals.inserted[0]
	assert.Equal(t, 7, row.PeriodID)
	assert.Equal(t, 1, row.ProgramID)
	assert.Equal(t, 1, row.InstructorID)
	assert.Equal(t, "María", row.StudentFirstName)
	assert.True(t, row.ConsentAccepted)
	assert.NotEqual(t, uuid.Nil, row.SubmissionID)
	require.Len(t, row.Ratings, wizard.NumQuestions)
	for _, v := range row.Ratings {
		assert.Equal(t, 9, v)
	}

	// A confirmation email job was queued.
	n, err := env.rdb.LLen(ctx, config.CacheKey.ConfirmationQueueKey()).Result()
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	// The session is gone; submitting again is a missing session.
	_, err = env.svc.Submit(ctx, token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSubmitRetryIsIdempotent(t *testing.T) {
	ctx := context.Background()
	env := newSubmissionTestEnv(t)
	env.periods.periods = []model.Period{{ID: 7, Name: "2026-A", Active: true}}

	token := env.completeWizard(t)

	// Snapshot the session as a client that never saw the first response
	// would retry it.
	key := config.CacheKey.WizardSessionKey(token)
	snapshot, err := env.rdb.Get(ctx, key).Result()
	require.NoError(t, err)

	first, err := env.svc.Submit(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Inserted)

	require.NoError(t, env.rdb.Set(ctx, key, snapshot, time.Hour).Err())

	second, err := env.svc.Submit(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Inserted)
	assert.Len(t, env.evals.inserted, 1)
}
