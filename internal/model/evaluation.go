package model

import (
	"time"

	"github.com/google/uuid"
)

// Evaluation is one submitted teacher evaluation: one row per
// (submission, instructor). Rows are immutable once written; there is no
// update or delete path for students.
type Evaluation struct {
	ID               int       `json:"id"`
	PeriodID         int       `json:"periodo_id"`
	ProgramID        int       `json:"maestria_id"`
	SpecialtyID      *int      `json:"especialidad_id"`
	InstructorID     int       `json:"profesor_id"`
	StudentFirstName string    `json:"nombre_alumno"`
	StudentLastName  string    `json:"apellidos_alumno"`
	StudentEmail     string    `json:"email"`
	ConsentAccepted  bool      `json:"consentimiento_aceptado"`
	Comment          string    `json:"comentarios"`
	// Ratings holds the 17 reactivo scores in question order (index 0 is
	// reactivo 1). Each value is an integer in [0, 10].
	Ratings      []int     `json:"reactivos"`
	SubmissionID uuid.UUID `json:"submission_id"`
	CreatedAt    time.Time `json:"created_at"`

	// Denormalized names for admin listings (joined, not stored).
	InstructorName string `json:"profesor,omitempty"`
	ProgramName    string `json:"maestria,omitempty"`
	PeriodName     string `json:"periodo,omitempty"`
}

// EvaluationFilter narrows admin evaluation listings.
type EvaluationFilter struct {
	PeriodID     *int
	ProgramID    *int
	InstructorID *int
}
