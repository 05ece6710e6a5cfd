package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/model"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/response"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/service"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

type EvaluationHandler struct {
	evaluationService *service.EvaluationService
}

func NewEvaluationHandler(evaluationService *service.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{evaluationService: evaluationService}
}

func evaluationFilter(c *gin.Context) model.EvaluationFilter {
	return model.EvaluationFilter{
		PeriodID:     queryIntPtr(c, "periodo_id"),
		ProgramID:    queryIntPtr(c, "maestria_id"),
		InstructorID: queryIntPtr(c, "profesor_id"),
	}
}

// List godoc
// GET /api/v1/admin/evaluations?periodo_id=&maestria_id=&profesor_id=&page=&per_page=
func (h *EvaluationHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(defaultPerPage)))
	if perPage < 1 || perPage > maxPerPage {
		perPage = defaultPerPage
	}

	views, total, err := h.evaluationService.List(c.Request.Context(), evaluationFilter(c), page, perPage)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if views == nil {
		views = []service.EvaluationView{}
	}

	totalPages := int(total) / perPage
	if int(total)%perPage != 0 {
		totalPages++
	}
	response.SuccessWithPagination(c, http.StatusOK, gin.H{"evaluaciones": views}, &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: int(total),
		TotalPages: totalPages,
	})
}

// GetByID godoc
// GET /api/v1/admin/evaluations/:id
func (h *EvaluationHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	view, err := h.evaluationService.GetByID(c.Request.Context(), id)
	if err != nil {
		failDB(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"evaluacion": view})
}

// Export godoc
// GET /api/v1/admin/evaluations/export?periodo_id=&maestria_id=&profesor_id=
func (h *EvaluationHandler) Export(c *gin.Context) {
	data, filename, err := h.evaluationService.ExportCSV(c.Request.Context(), evaluationFilter(c))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
