package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/config"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/model"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/repository"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/wizard"
)

// ErrNoActivePeriod blocks submission when no evaluation period is open.
// This is the one hard gate of the finalizer: everything captured so far
// stays in the session so the student can retry once a period opens.
var ErrNoActivePeriod = errors.New("no active evaluation period")

// ConfirmationJob is the payload queued for the confirmation email worker.
type ConfirmationJob struct {
	Email       string    `json:"email"`
	FirstName   string    `json:"nombre"`
	ProgramName string    `json:"maestria"`
	PeriodName  string    `json:"periodo"`
	Count       int       `json:"evaluaciones"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// MonitorEvent is published on the submission channel for the live admin
// monitor.
type MonitorEvent struct {
	SubmissionID string    `json:"submission_id"`
	ProgramName  string    `json:"maestria"`
	PeriodName   string    `json:"periodo"`
	Count        int       `json:"evaluaciones"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

// SubmissionResult is returned to the student after a successful submit.
type SubmissionResult struct {
	Email    string `json:"email"`
	Inserted int    `json:"evaluaciones_registradas"`
}

// SubmissionService finalizes a completed wizard session into durable
// evaluation rows.
type SubmissionService struct {
	rdb        *redis.Client
	wizardSvc  *WizardService
	periodRepo repository.PeriodRepository
	evalRepo   repository.EvaluationRepository
	log        zerolog.Logger
}

func NewSubmissionService(
	rdb *redis.Client,
	wizardSvc *WizardService,
	periodRepo repository.PeriodRepository,
	evalRepo repository.EvaluationRepository,
	log zerolog.Logger,
) *SubmissionService {
	return &SubmissionService{
		rdb:        rdb,
		wizardSvc:  wizardSvc,
		periodRepo: periodRepo,
		evalRepo:   evalRepo,
		log:        log.With().Str("component", "submission_service").Logger(),
	}
}

// Submit turns the session's captured evaluations into database rows.
// The active period is resolved first; without one nothing is written.
// The insert is transactional and idempotent on (submission, instructor),
// so a client retry after a network failure cannot duplicate rows. The
// session is deleted only after a successful insert.
func (s *SubmissionService) Submit(ctx context.Context, token string) (*SubmissionResult, error) {
	sess, err := s.wizardSvc.load(ctx, token)
	if err != nil {
		return nil, err
	}
	if sess.Phase != wizard.PhaseConfirmation {
		return nil, ErrPhaseMismatch
	}

	period, err := s.periodRepo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoActivePeriod
		}
		return nil, fmt.Errorf("resolve active period: %w", err)
	}

	submissionID, err := uuid.Parse(sess.SubmissionID)
	if err != nil {
		return nil, fmt.Errorf("parse submission id: %w", err)
	}

	rows := make([]*model.Evaluation, 0, len(sess.Evaluations))
	for _, ev := range sess.Evaluations {
		ratings := make([]int, wizard.NumQuestions)
		for q := 1; q <= wizard.NumQuestions; q++ {
			ratings[q-1] = ev.Ratings[q]
		}

		row := &model.Evaluation{
			PeriodID:         period.ID,
			InstructorID:     ev.Instructor.ID,
			StudentFirstName: sess.Student.FirstName,
			StudentLastName:  sess.Student.LastName,
			StudentEmail:     sess.Student.Email,
			ConsentAccepted:  sess.Student.ConsentAccepted,
			Comment:          ev.Comment,
			Ratings:          ratings,
			SubmissionID:     submissionID,
		}
		if sess.Program != nil {
			row.ProgramID = sess.Program.ID
		}
		if sess.Specialty != nil {
			id := sess.Specialty.ID
			row.SpecialtyID = &id
		}
		rows = append(rows, row)
	}

	inserted := 0
	if len(rows) > 0 {
		inserted, err = s.evalRepo.InsertBatch(ctx, rows)
		if err != nil {
			return nil, fmt.Errorf("insert evaluations: %w", err)
		}
	}

	s.enqueueConfirmation(ctx, sess, period.Name, len(rows))
	s.publishMonitorEvent(ctx, sess, period.Name, len(rows))

	if err := s.rdb.Del(ctx, config.CacheKey.WizardSessionKey(token)).Err(); err != nil {
		// The rows are already durable and a retried submit is a no-op,
		// so a failed cleanup is only worth a warning.
		s.log.Warn().Err(err).Str("session", token).Msg("failed to delete session after submit")
	}

	s.log.Info().
		Str("submission_id", sess.SubmissionID).
		Int("captured", len(rows)).
		Int("inserted", inserted).
		Msg("submission finalized")

	return &SubmissionResult{Email: sess.Student.Email, Inserted: inserted}, nil
}

func (s *SubmissionService) enqueueConfirmation(ctx context.Context, sess *wizard.Session, periodName string, count int) {
	if sess.Student.Email == "" {
		return
	}

	job := ConfirmationJob{
		Email:       sess.Student.Email,
		FirstName:   sess.Student.FirstName,
		PeriodName:  periodName,
		Count:       count,
		SubmittedAt: time.Now().UTC(),
	}
	if sess.Program != nil {
		job.ProgramName = sess.Program.Name
	}

	data, err := json.Marshal(job)
	if err != nil {
		s.log.Error().Err(err).Msg("marshal confirmation job")
		return
	}
	if err := s.rdb.RPush(ctx, config.CacheKey.ConfirmationQueueKey(), data).Err(); err != nil {
		s.log.Error().Err(err).Msg("enqueue confirmation job")
	}
}

func (s *SubmissionService) publishMonitorEvent(ctx context.Context, sess *wizard.Session, periodName string, count int) {
	event := MonitorEvent{
		SubmissionID: sess.SubmissionID,
		PeriodName:   periodName,
		Count:        count,
		SubmittedAt:  time.Now().UTC(),
	}
	if sess.Program != nil {
		event.ProgramName = sess.Program.Name
	}

	data, err := json.Marshal(event)
	if err != nil {
		s.log.Error().Err(err).Msg("marshal monitor event")
		return
	}
	if err := s.rdb.Publish(ctx, config.CacheKey.SubmissionMonitorChannel(), data).Err(); err != nil {
		s.log.Error().Err(err).Msg("publish monitor event")
	}
}
