package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/model"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/response"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/service"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/validator"
)

type ProgramHandler struct {
	programService *service.ProgramService
}

func NewProgramHandler(programService *service.ProgramService) *ProgramHandler {
	return &ProgramHandler{programService: programService}
}

// GetAll godoc
// GET /api/v1/admin/programs
func (h *ProgramHandler) GetAll(c *gin.Context) {
	programs, err := h.programService.GetAll(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if programs == nil {
		programs = []model.Program{}
	}
	response.Success(c, http.StatusOK, gin.H{"maestrias": programs})
}

// Create godoc
// POST /api/v1/admin/programs
func (h *ProgramHandler) Create(c *gin.Context) {
	var req model.CreateProgramRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	p := &model.Program{
		Name:         req.Name,
		PeriodID:     req.PeriodID,
		Active:       req.Active == nil || *req.Active,
		DisplayOrder: req.DisplayOrder,
	}
	if err := h.programService.Create(c.Request.Context(), p); err != nil {
		failDB(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"maestria": p})
}

// Update godoc
// PUT /api/v1/admin/programs/:id
func (h *ProgramHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req model.UpdateProgramRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	p := &model.Program{
		ID:           id,
		Name:         req.Name,
		PeriodID:     req.PeriodID,
		Active:       req.Active == nil || *req.Active,
		DisplayOrder: req.DisplayOrder,
	}
	if err := h.programService.Update(c.Request.Context(), p); err != nil {
		failDB(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"maestria": p})
}

// Delete godoc
// DELETE /api/v1/admin/programs/:id
func (h *ProgramHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.programService.Delete(c.Request.Context(), id); err != nil {
		failDB(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "maestría eliminada"})
}
