package model

import "time"

// Specialty represents an optional sub-track ("especialidad") within a
// program. A program with zero specialties skips the specialty-selection
// phase of the survey entirely.
type Specialty struct {
	ID        int       `json:"id"`
	Name      string    `json:"nombre"`
	ProgramID int       `json:"maestria_id"`
	Active    bool      `json:"activa"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateSpecialtyRequest is the payload for creating a specialty.
type CreateSpecialtyRequest struct {
	Name      string `json:"nombre" binding:"required,min=2,max=200"`
	ProgramID int    `json:"maestria_id" binding:"required,min=1"`
	Active    *bool  `json:"activa"`
}

// UpdateSpecialtyRequest is the payload for updating a specialty.
type UpdateSpecialtyRequest struct {
	Name      string `json:"nombre" binding:"required,min=2,max=200"`
	ProgramID int    `json:"maestria_id" binding:"required,min=1"`
	Active    *bool  `json:"activa"`
}
