package model

import "time"

// Period represents an academic term ("periodo"). At most one period is
// active system-wide; new evaluations are always attached to the active one.
type Period struct {
	ID        int        `json:"id"`
	Name      string     `json:"nombre"`
	StartDate *time.Time `json:"fecha_inicio"`
	EndDate   *time.Time `json:"fecha_fin"`
	Active    bool       `json:"activo"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CreatePeriodRequest is the payload for creating a period.
type CreatePeriodRequest struct {
	Name      string `json:"nombre" binding:"required,min=2,max=120"`
	StartDate string `json:"fecha_inicio" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"fecha_fin" binding:"omitempty,datetime=2006-01-02"`
	Active    bool   `json:"activo"`
}

// UpdatePeriodRequest is the payload for updating a period.
type UpdatePeriodRequest struct {
	Name      string `json:"nombre" binding:"required,min=2,max=120"`
	StartDate string `json:"fecha_inicio" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"fecha_fin" binding:"omitempty,datetime=2006-01-02"`
}
