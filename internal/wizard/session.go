package wizard

import (
	"time"

	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/model"
)

// StudentDraft holds the registration data collected on phase two.
type StudentDraft struct {
	FirstName       string `json:"nombre"`
	LastName        string `json:"apellidos"`
	Email           string `json:"email"`
	ConsentAccepted bool   `json:"consentimiento_aceptado"`
}

// CapturedEvaluation is one per-instructor rating set accumulated during
// the wizard, pending final submission.
type CapturedEvaluation struct {
	Instructor model.Instructor `json:"profesor"`
	// Ratings maps reactivo index (1..17) to its integer score.
	Ratings map[int]int `json:"calificaciones"`
	Comment string      `json:"comentarios"`
}

// Session is the full wizard state for one student, persisted in Redis
// so it survives page reloads. Version increments on every mutation; a
// phase-data response computed for an older version is stale and must be
// discarded by the caller.
type Session struct {
	Token   string `json:"token"`
	Version int    `json:"version"`
	Phase   Phase  `json:"phase"`

	Student   StudentDraft     `json:"alumno"`
	Program   *model.Program   `json:"maestria"`
	Specialty *model.Specialty `json:"especialidad"`

	// Subject is the phase-local materia pick for the current rating
	// phase. Cleared on every phase transition so a re-entered phase
	// starts with a clean slate.
	Subject string `json:"materia_seleccionada"`

	// SkippedPhases records rating phases that resolved to nothing and
	// were auto-advanced, for the confirmation summary.
	SkippedPhases []Phase `json:"fases_omitidas,omitempty"`

	Evaluations []CapturedEvaluation `json:"evaluaciones"`

	// SubmissionID is the idempotency token stamped on every inserted
	// evaluation row; a retried submission reuses it, so retries never
	// duplicate records.
	SubmissionID string `json:"submission_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSession creates a fresh session at the consent phase.
func NewSession(token, submissionID string) *Session {
	now := time.Now().UTC()
	return &Session{
		Token:        token,
		Version:      1,
		Phase:        PhaseConsent,
		SubmissionID: submissionID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (s *Session) touch() {
	s.Version++
	s.UpdatedAt = time.Now().UTC()
}

// Advance moves the session forward by exactly one phase. The phase-local
// subject pick is cleared so the next rating phase renders clean.
func (s *Session) Advance() error {
	next, err := s.Phase.Next()
	if err != nil {
		return err
	}
	s.Phase = next
	s.Subject = ""
	s.touch()
	return nil
}

// Retreat moves the session backward by exactly one phase.
func (s *Session) Retreat() error {
	prev, err := s.Phase.Prev()
	if err != nil {
		return err
	}
	s.Phase = prev
	s.Subject = ""
	s.touch()
	return nil
}

// SetConsent records the consent decision.
func (s *Session) SetConsent(accepted bool) {
	s.Student.ConsentAccepted = accepted
	s.touch()
}

// SetStudent records the registration data verbatim.
func (s *Session) SetStudent(firstName, lastName, email string) {
	s.Student.FirstName = firstName
	s.Student.LastName = lastName
	s.Student.Email = email
	s.touch()
}

// SetProgram records the selected program and clears any specialty pick
// from a previous pass through the wizard.
func (s *Session) SetProgram(p *model.Program) {
	s.Program = p
	s.Specialty = nil
	s.touch()
}

// SetSpecialty records the selected specialty (nil when the program has
// none).
func (s *Session) SetSpecialty(sp *model.Specialty) {
	s.Specialty = sp
	s.touch()
}

// SetSubject records the phase-local materia pick.
func (s *Session) SetSubject(subject string) {
	s.Subject = subject
	s.touch()
}

// MarkSkipped records that a rating phase resolved to nothing.
func (s *Session) MarkSkipped(p Phase) {
	for _, existing := range s.SkippedPhases {
		if existing == p {
			return
		}
	}
	s.SkippedPhases = append(s.SkippedPhases, p)
	s.touch()
}

// AddEvaluation appends a captured rating set and clears the phase-local
// subject pick.
func (s *Session) AddEvaluation(ins model.Instructor, ratings map[int]int, comment string) {
	s.Evaluations = append(s.Evaluations, CapturedEvaluation{
		Instructor: ins,
		Ratings:    ratings,
		Comment:    comment,
	})
	s.Subject = ""
	s.touch()
}

// Selections builds the resolution input from the current session state.
func (s *Session) Selections() Selections {
	sel := Selections{Subject: s.Subject}
	if s.Program != nil {
		sel.ProgramID = s.Program.ID
	}
	if s.Specialty != nil {
		id := s.Specialty.ID
		sel.SpecialtyID = &id
	}
	return sel
}
