package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/model"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/response"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/service"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/validator"
)

type PeriodHandler struct {
	periodService *service.PeriodService
}

func NewPeriodHandler(periodService *service.PeriodService) *PeriodHandler {
	return &PeriodHandler{periodService: periodService}
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

// GetAll godoc
// GET /api/v1/admin/periods
func (h *PeriodHandler) GetAll(c *gin.Context) {
	periods, err := h.periodService.GetAll(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if periods == nil {
		periods = []model.Period{}
	}
	response.Success(c, http.StatusOK, gin.H{"periodos": periods})
}

// Create godoc
// POST /api/v1/admin/periods
func (h *PeriodHandler) Create(c *gin.Context) {
	var req model.CreatePeriodRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	p := &model.Period{
		Name:      req.Name,
		StartDate: parseDate(req.StartDate),
		EndDate:   parseDate(req.EndDate),
	}
	if err := h.periodService.Create(c.Request.Context(), p); err != nil {
		failDB(c, err)
		return
	}

	// Created inactive; an explicit activo=true in the payload activates
	// it (and deactivates every other period).
	if req.Active {
		if err := h.periodService.SetActive(c.Request.Context(), p.ID, true); err != nil {
			failDB(c, err)
			return
		}
		p.Active = true
	}

	response.Success(c, http.StatusCreated, gin.H{"periodo": p})
}

// Update godoc
// PUT /api/v1/admin/periods/:id
func (h *PeriodHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req model.UpdatePeriodRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	p := &model.Period{
		ID:        id,
		Name:      req.Name,
		StartDate: parseDate(req.StartDate),
		EndDate:   parseDate(req.EndDate),
	}
	if err := h.periodService.Update(c.Request.Context(), p); err != nil {
		failDB(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"periodo": p})
}

// SetActive godoc
// PATCH /api/v1/admin/periods/:id/active
func (h *PeriodHandler) SetActive(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req struct {
		Active *bool `json:"activo" binding:"required"`
	}
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.periodService.SetActive(c.Request.Context(), id, *req.Active); err != nil {
		failDB(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "período actualizado"})
}

// Delete godoc
// DELETE /api/v1/admin/periods/:id
func (h *PeriodHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.periodService.Delete(c.Request.Context(), id); err != nil {
		failDB(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "período eliminado"})
}
