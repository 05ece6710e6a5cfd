package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/model"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/response"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/service"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/validator"
)

type SpecialtyHandler struct {
	specialtyService *service.SpecialtyService
}

func NewSpecialtyHandler(specialtyService *service.SpecialtyService) *SpecialtyHandler {
	return &SpecialtyHandler{specialtyService: specialtyService}
}

// GetAll godoc
// GET /api/v1/admin/specialties
func (h *SpecialtyHandler) GetAll(c *gin.Context) {
	specialties, err := h.specialtyService.GetAll(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if specialties == nil {
		specialties = []model.Specialty{}
	}
	response.Success(c, http.StatusOK, gin.H{"especialidades": specialties})
}

// Create godoc
// POST /api/v1/admin/specialties
func (h *SpecialtyHandler) Create(c *gin.Context) {
	var req model.CreateSpecialtyRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	sp := &model.Specialty{
		Name:      req.Name,
		ProgramID: req.ProgramID,
		Active:    req.Active == nil || *req.Active,
	}
	if err := h.specialtyService.Create(c.Request.Context(), sp); err != nil {
		failDB(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"especialidad": sp})
}

// Update godoc
// PUT /api/v1/admin/specialties/:id
func (h *SpecialtyHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req model.UpdateSpecialtyRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	sp := &model.Specialty{
		ID:        id,
		Name:      req.Name,
		ProgramID: req.ProgramID,
		Active:    req.Active == nil || *req.Active,
	}
	if err := h.specialtyService.Update(c.Request.Context(), sp); err != nil {
		failDB(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"especialidad": sp})
}

// Delete godoc
// DELETE /api/v1/admin/specialties/:id
func (h *SpecialtyHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.specialtyService.Delete(c.Request.Context(), id); err != nil {
		failDB(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "especialidad eliminada"})
}
