package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/model"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/response"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/service"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/validator"
)

type InstructorHandler struct {
	instructorService *service.InstructorService
}

func NewInstructorHandler(instructorService *service.InstructorService) *InstructorHandler {
	return &InstructorHandler{instructorService: instructorService}
}

// List godoc
// GET /api/v1/admin/instructors?maestria_id=&especialidad_id=&activos=
func (h *InstructorHandler) List(c *gin.Context) {
	filter := model.InstructorFilter{
		ProgramID:   queryIntPtr(c, "maestria_id"),
		SpecialtyID: queryIntPtr(c, "especialidad_id"),
		ActiveOnly:  c.Query("activos") == "true",
	}

	instructors, err := h.instructorService.List(c.Request.Context(), filter)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if instructors == nil {
		instructors = []model.Instructor{}
	}
	response.Success(c, http.StatusOK, gin.H{"profesores": instructors})
}

// GetByID godoc
// GET /api/v1/admin/instructors/:id
func (h *InstructorHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ins, err := h.instructorService.GetByID(c.Request.Context(), id)
	if err != nil {
		failDB(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profesor": ins})
}

// Create godoc
// POST /api/v1/admin/instructors
func (h *InstructorHandler) Create(c *gin.Context) {
	var req model.CreateInstructorRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	ins := &model.Instructor{
		FullName:      req.FullName,
		Subject:       req.Subject,
		ProgramID:     req.ProgramID,
		SpecialtyID:   req.SpecialtyID,
		CoreSubject:   req.CoreSubject,
		SharedSubject: req.SharedSubject,
		PeriodID:      req.PeriodID,
		Active:        req.Active,
	}
	if err := h.instructorService.Create(c.Request.Context(), ins); err != nil {
		if errors.Is(err, service.ErrSpecialtyRequired) {
			response.Fail(c, http.StatusBadRequest, response.ErrSpecialtyRequired)
			return
		}
		failDB(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"profesor": ins})
}

// Update godoc
// PUT /api/v1/admin/instructors/:id
func (h *InstructorHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req model.UpdateInstructorRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	ins := &model.Instructor{
		ID:            id,
		FullName:      req.FullName,
		Subject:       req.Subject,
		ProgramID:     req.ProgramID,
		SpecialtyID:   req.SpecialtyID,
		CoreSubject:   req.CoreSubject,
		SharedSubject: req.SharedSubject,
		PeriodID:      req.PeriodID,
		Active:        req.Active,
	}
	if err := h.instructorService.Update(c.Request.Context(), ins); err != nil {
		if errors.Is(err, service.ErrSpecialtyRequired) {
			response.Fail(c, http.StatusBadRequest, response.ErrSpecialtyRequired)
			return
		}
		failDB(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profesor": ins})
}

// Delete godoc
// DELETE /api/v1/admin/instructors/:id
func (h *InstructorHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.instructorService.Delete(c.Request.Context(), id); err != nil {
		failDB(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "profesor/a eliminado"})
}
