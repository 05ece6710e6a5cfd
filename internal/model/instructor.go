package model

import "time"

// Instructor represents a professor together with the subject ("materia")
// they teach in a given program.
//
// Active is a nullable flag: a null value is treated as active everywhere
// (default-open policy inherited from the production data set).
type Instructor struct {
	ID            int       `json:"id"`
	FullName      string    `json:"nombre_completo"`
	Subject       string    `json:"materia"`
	ProgramID     int       `json:"maestria_id"`
	SpecialtyID   *int      `json:"especialidad_id"`
	CoreSubject   bool      `json:"es_basica"`
	SharedSubject bool      `json:"es_compartida"`
	PeriodID      *int      `json:"periodo_id"`
	Active        *bool     `json:"activa"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// IsActive applies the default-open policy: null counts as active.
func (i Instructor) IsActive() bool {
	return i.Active == nil || *i.Active
}

// InstructorFilter narrows instructor queries. Nil/false fields are not
// applied. ActiveOnly keeps rows whose activa is true or null.
type InstructorFilter struct {
	ProgramID   *int
	SpecialtyID *int
	CoreOnly    bool
	SharedOnly  bool
	ActiveOnly  bool
}

// CreateInstructorRequest is the payload for creating an instructor.
// Non-core subjects must carry a specialty; enforced in the service.
type CreateInstructorRequest struct {
	FullName      string `json:"nombre_completo" binding:"required,min=2,max=200"`
	Subject       string `json:"materia" binding:"required,min=2,max=200"`
	ProgramID     int    `json:"maestria_id" binding:"required,min=1"`
	SpecialtyID   *int   `json:"especialidad_id"`
	CoreSubject   bool   `json:"es_basica"`
	SharedSubject bool   `json:"es_compartida"`
	PeriodID      *int   `json:"periodo_id"`
	Active        *bool  `json:"activa"`
}

// UpdateInstructorRequest is the payload for updating an instructor.
type UpdateInstructorRequest struct {
	FullName      string `json:"nombre_completo" binding:"required,min=2,max=200"`
	Subject       string `json:"materia" binding:"required,min=2,max=200"`
	ProgramID     int    `json:"maestria_id" binding:"required,min=1"`
	SpecialtyID   *int   `json:"especialidad_id"`
	CoreSubject   bool   `json:"es_basica"`
	SharedSubject bool   `json:"es_compartida"`
	PeriodID      *int   `json:"periodo_id"`
	Active        *bool  `json:"activa"`
}
