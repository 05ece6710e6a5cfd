package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/config"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/model"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/repository"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/wizard"
)

// Wizard flow errors.
var (
	ErrSessionNotFound     = errors.New("wizard session not found or expired")
	ErrPhaseMismatch       = errors.New("operation does not belong to the current phase")
	ErrConsentRequired     = errors.New("consent must be accepted to continue")
	ErrProgramNotAvailable = errors.New("program not available")
	ErrSubjectNotAvailable = errors.New("subject not available for this phase")
)

// PhaseView is the server-rendered state of the wizard's current phase.
// The client is intentionally dumb: it shows exactly what this struct
// carries and posts back the student's choice.
type PhaseView struct {
	Token      string       `json:"token"`
	Version    int          `json:"version"`
	Phase      wizard.Phase `json:"fase"`
	Step       int          `json:"paso"`
	TotalSteps int          `json:"pasos_totales"`

	// Consent phase.
	ConsentText string `json:"texto_consentimiento,omitempty"`

	// Program phase.
	Programs []model.Program `json:"maestrias,omitempty"`

	// Specialty phase.
	Specialties []model.Specialty `json:"especialidades,omitempty"`

	// Rating phases.
	Questions      []string           `json:"reactivos,omitempty"`
	Subjects       []string           `json:"materias,omitempty"`
	Subject        string             `json:"materia,omitempty"`
	Instructors    []model.Instructor `json:"profesores,omitempty"`
	AutoInstructor *model.Instructor  `json:"profesor_automatico,omitempty"`

	// Confirmation phase.
	Summary *SubmissionSummary `json:"resumen,omitempty"`
}

// SubmissionSummary is the confirmation-phase recap of everything the
// student captured.
type SubmissionSummary struct {
	Student       wizard.StudentDraft `json:"alumno"`
	ProgramName   string              `json:"maestria"`
	SpecialtyName string              `json:"especialidad,omitempty"`
	Evaluations   []EvaluationRecap   `json:"evaluaciones"`
	SkippedPhases []wizard.Phase      `json:"fases_omitidas,omitempty"`
}

// EvaluationRecap is one captured rating set with its derived average and
// qualitative band.
type EvaluationRecap struct {
	InstructorName string      `json:"profesor"`
	Subject        string      `json:"materia"`
	Average        float64     `json:"promedio"`
	Band           wizard.Band `json:"valoracion"`
}

// WizardService drives the multi-step survey. All state lives in Redis
// keyed by an opaque session token; the database is only read for
// catalogs and candidates until final submission.
type WizardService struct {
	cfg            *config.Config
	rdb            *redis.Client
	catalog        *CatalogService
	programRepo    repository.ProgramRepository
	specialtyRepo  repository.SpecialtyRepository
	instructorRepo repository.InstructorRepository
	log            zerolog.Logger
}

func NewWizardService(
	cfg *config.Config,
	rdb *redis.Client,
	catalog *CatalogService,
	programRepo repository.ProgramRepository,
	specialtyRepo repository.SpecialtyRepository,
	instructorRepo repository.InstructorRepository,
	log zerolog.Logger,
) *WizardService {
	return &WizardService{
		cfg:            cfg,
		rdb:            rdb,
		catalog:        catalog,
		programRepo:    programRepo,
		specialtyRepo:  specialtyRepo,
		instructorRepo: instructorRepo,
		log:            log.With().Str("component", "wizard_service").Logger(),
	}
}

// StartSession creates a fresh session at the consent phase and persists
// it. The token doubles as the resume handle after a page reload.
func (s *WizardService) StartSession(ctx context.Context) (*wizard.Session, error) {
	sess := wizard.NewSession(uuid.New().String(), uuid.New().String())
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	s.log.Info().Str("session", sess.Token).Msg("wizard session started")
	return sess, nil
}

// GetSession loads a session by token.
func (s *WizardService) GetSession(ctx context.Context, token string) (*wizard.Session, error) {
	return s.load(ctx, token)
}

// AcceptConsent records the consent decision and advances past the
// consent phase. Declining is an error, not a transition.
func (s *WizardService) AcceptConsent(ctx context.Context, token string, accepted bool) (*wizard.Session, error) {
	sess, err := s.load(ctx, token)
	if err != nil {
		return nil, err
	}
	if sess.Phase != wizard.PhaseConsent {
		return nil, ErrPhaseMismatch
	}
	if !accepted {
		return nil, ErrConsentRequired
	}

	sess.SetConsent(true)
	if err := sess.Advance(); err != nil {
		return nil, err
	}
	return sess, s.save(ctx, sess)
}

// Register stores the student's identification data and advances to
// program selection.
func (s *WizardService) Register(ctx context.Context, token, firstName, lastName, email string) (*wizard.Session, error) {
	sess, err := s.load(ctx, token)
	if err != nil {
		return nil, err
	}
	if sess.Phase != wizard.PhaseRegistration {
		return nil, ErrPhaseMismatch
	}

	sess.SetStudent(firstName, lastName, email)
	if err := sess.Advance(); err != nil {
		return nil, err
	}
	return sess, s.save(ctx, sess)
}

// SelectProgram records the chosen program and advances to the core
// rating phase. Only active programs may be chosen.
func (s *WizardService) SelectProgram(ctx context.Context, token string, programID int) (*wizard.Session, error) {
	sess, err := s.load(ctx, token)
	if err != nil {
		return nil, err
	}
	if sess.Phase != wizard.PhaseProgram {
		return nil, ErrPhaseMismatch
	}

	program, err := s.programRepo.GetByID(ctx, programID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProgramNotAvailable
		}
		return nil, err
	}
	if !program.Active {
		return nil, ErrProgramNotAvailable
	}

	sess.SetProgram(program)
	if err := sess.Advance(); err != nil {
		return nil, err
	}
	return sess, s.save(ctx, sess)
}

// SelectSpecialty records the specialty pick and advances. A nil id means
// the student skipped the choice; the specialty rating phase then falls
// back to the program pool.
func (s *WizardService) SelectSpecialty(ctx context.Context, token string, specialtyID *int) (*wizard.Session, error) {
	sess, err := s.load(ctx, token)
	if err != nil {
		return nil, err
	}
	if sess.Phase != wizard.PhaseSpecialty {
		return nil, ErrPhaseMismatch
	}

	if specialtyID == nil {
		sess.SetSpecialty(nil)
	} else {
		sp, err := s.specialtyRepo.GetByID(ctx, *specialtyID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrSubjectNotAvailable
			}
			return nil, err
		}
		sess.SetSpecialty(sp)
	}

	if err := sess.Advance(); err != nil {
		return nil, err
	}
	return sess, s.save(ctx, sess)
}

// SelectSubject records the materia pick for the current rating phase.
// Picks outside the derived subject set are rejected.
func (s *WizardService) SelectSubject(ctx context.Context, token, subject string) (*wizard.Session, error) {
	sess, err := s.load(ctx, token)
	if err != nil {
		return nil, err
	}
	if !sess.Phase.IsRating() {
		return nil, ErrPhaseMismatch
	}

	pool, err := s.instructorRepo.List(ctx, model.InstructorFilter{ActiveOnly: true})
	if err != nil {
		return nil, err
	}
	res := wizard.Resolve(sess.Phase, sess.Selections(), pool, subject)
	if res.Subject != subject {
		return nil, ErrSubjectNotAvailable
	}

	sess.SetSubject(subject)
	return sess, s.save(ctx, sess)
}

// CaptureRatings validates and stores one full rating set for the current
// phase, then advances.
func (s *WizardService) CaptureRatings(ctx context.Context, token string, instructorID *int, ratings map[int]int, comment string) (*wizard.Session, error) {
	sess, err := s.load(ctx, token)
	if err != nil {
		return nil, err
	}
	if !sess.Phase.IsRating() {
		return nil, ErrPhaseMismatch
	}

	pool, err := s.instructorRepo.List(ctx, model.InstructorFilter{ActiveOnly: true})
	if err != nil {
		return nil, err
	}
	res := wizard.Resolve(sess.Phase, sess.Selections(), pool, sess.Subject)
	if res.Subject == "" {
		return nil, ErrSubjectNotAvailable
	}

	ins, err := wizard.ValidateCapture(res.Instructors, instructorID, ratings)
	if err != nil {
		return nil, err
	}

	sess.AddEvaluation(*ins, ratings, comment)
	if err := sess.Advance(); err != nil {
		return nil, err
	}
	return sess, s.save(ctx, sess)
}

// Retreat steps one phase back.
func (s *WizardService) Retreat(ctx context.Context, token string) (*wizard.Session, error) {
	sess, err := s.load(ctx, token)
	if err != nil {
		return nil, err
	}
	if err := sess.Retreat(); err != nil {
		return nil, ErrPhaseMismatch
	}
	return sess, s.save(ctx, sess)
}

// Cancel discards the session entirely.
func (s *WizardService) Cancel(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, config.CacheKey.WizardSessionKey(token)).Err()
}

// PhaseData builds the view for the session's current phase. Phases with
// nothing to do (a specialty phase with no specialties, a rating phase
// that resolves empty) are skipped here, transparently to the client: the
// view returned always has something to show.
func (s *WizardService) PhaseData(ctx context.Context, token string) (*PhaseView, error) {
	sess, err := s.load(ctx, token)
	if err != nil {
		return nil, err
	}

	var (
		pool       []model.Instructor
		poolLoaded bool
	)
	loadPool := func() ([]model.Instructor, error) {
		if poolLoaded {
			return pool, nil
		}
		pool, err = s.instructorRepo.List(ctx, model.InstructorFilter{ActiveOnly: true})
		if err == nil {
			poolLoaded = true
		}
		return pool, err
	}

	// Auto-advance over empty phases. Bounded by the phase count, so a
	// fully empty catalog still terminates at the confirmation phase.
	mutated := false
	for i := 0; i < wizard.TotalPhases(); i++ {
		switch {
		case sess.Phase == wizard.PhaseSpecialty:
			specialties, err := s.catalog.ListActiveSpecialties(ctx, s.programID(sess))
			if err != nil {
				return nil, err
			}
			if len(specialties) > 0 {
				return s.buildView(ctx, sess, mutated, specialties, wizard.Resolution{})
			}
			sess.SetSpecialty(nil)
			if err := sess.Advance(); err != nil {
				return nil, err
			}
			mutated = true

		case sess.Phase.IsRating():
			p, err := loadPool()
			if err != nil {
				return nil, err
			}
			res := wizard.Resolve(sess.Phase, sess.Selections(), p, sess.Subject)
			if !res.Empty() {
				return s.buildView(ctx, sess, mutated, nil, res)
			}
			sess.MarkSkipped(sess.Phase)
			if err := sess.Advance(); err != nil {
				return nil, err
			}
			mutated = true

		default:
			return s.buildView(ctx, sess, mutated, nil, wizard.Resolution{})
		}
	}

	return nil, fmt.Errorf("phase auto-advance did not terminate")
}

func (s *WizardService) programID(sess *wizard.Session) int {
	if sess.Program != nil {
		return sess.Program.ID
	}
	return 0
}

func (s *WizardService) buildView(ctx context.Context, sess *wizard.Session, mutated bool, specialties []model.Specialty, res wizard.Resolution) (*PhaseView, error) {
	if mutated {
		if err := s.save(ctx, sess); err != nil {
			return nil, err
		}
	}

	view := &PhaseView{
		Token:      sess.Token,
		Version:    sess.Version,
		Phase:      sess.Phase,
		Step:       sess.Phase.Index() + 1,
		TotalSteps: wizard.TotalPhases(),
	}

	switch {
	case sess.Phase == wizard.PhaseConsent:
		view.ConsentText = wizard.ConsentText

	case sess.Phase == wizard.PhaseProgram:
		programs, err := s.catalog.ListActivePrograms(ctx)
		if err != nil {
			return nil, err
		}
		view.Programs = programs

	case sess.Phase == wizard.PhaseSpecialty:
		view.Specialties = specialties

	case sess.Phase.IsRating():
		view.Questions = wizard.Questions[:]
		view.Subjects = res.Subjects
		view.Subject = res.Subject
		view.Instructors = res.Instructors
		view.AutoInstructor = res.AutoInstructor

	case sess.Phase == wizard.PhaseConfirmation:
		view.Summary = buildSummary(sess)
	}

	return view, nil
}

func buildSummary(sess *wizard.Session) *SubmissionSummary {
	summary := &SubmissionSummary{
		Student:       sess.Student,
		SkippedPhases: sess.SkippedPhases,
	}
	if sess.Program != nil {
		summary.ProgramName = sess.Program.Name
	}
	if sess.Specialty != nil {
		summary.SpecialtyName = sess.Specialty.Name
	}
	for _, ev := range sess.Evaluations {
		ratings := make([]int, 0, len(ev.Ratings))
		for _, v := range ev.Ratings {
			ratings = append(ratings, v)
		}
		avg := wizard.Average(ratings)
		summary.Evaluations = append(summary.Evaluations, EvaluationRecap{
			InstructorName: ev.Instructor.FullName,
			Subject:        ev.Instructor.Subject,
			Average:        avg,
			Band:           wizard.BandFor(avg),
		})
	}
	return summary
}

func (s *WizardService) save(ctx context.Context, sess *wizard.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	key := config.CacheKey.WizardSessionKey(sess.Token)
	if err := s.rdb.Set(ctx, key, data, s.cfg.WizardSessionTTL).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (s *WizardService) load(ctx context.Context, token string) (*wizard.Session, error) {
	key := config.CacheKey.WizardSessionKey(token)
	data, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	sess := &wizard.Session{}
	if err := json.Unmarshal(data, sess); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return sess, nil
}
