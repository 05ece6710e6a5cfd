package model

import "time"

// Program represents a graduate degree track ("maestría").
// DisplayOrder drives presentation sort; a null value sorts after all
// programs that have one, with ties broken by Spanish-collated name.
type Program struct {
	ID           int       `json:"id"`
	Name         string    `json:"nombre"`
	PeriodID     *int      `json:"periodo_id"`
	Active       bool      `json:"activa"`
	DisplayOrder *int      `json:"orden"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateProgramRequest is the payload for creating a program.
type CreateProgramRequest struct {
	Name         string `json:"nombre" binding:"required,min=2,max=200"`
	PeriodID     *int   `json:"periodo_id"`
	Active       *bool  `json:"activa"`
	DisplayOrder *int   `json:"orden" binding:"omitempty,min=1"`
}

// UpdateProgramRequest is the payload for updating a program.
type UpdateProgramRequest struct {
	Name         string `json:"nombre" binding:"required,min=2,max=200"`
	PeriodID     *int   `json:"periodo_id"`
	Active       *bool  `json:"activa"`
	DisplayOrder *int   `json:"orden" binding:"omitempty,min=1"`
}
