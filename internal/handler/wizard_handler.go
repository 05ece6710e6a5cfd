package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/response"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/service"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/validator"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/wizard"
)

// WizardHandler exposes the public survey flow. Every route except the
// session start takes the session token as a path parameter.
type WizardHandler struct {
	wizardService     *service.WizardService
	submissionService *service.SubmissionService
}

func NewWizardHandler(wizardService *service.WizardService, submissionService *service.SubmissionService) *WizardHandler {
	return &WizardHandler{wizardService: wizardService, submissionService: submissionService}
}

type consentRequest struct {
	Accepted *bool `json:"aceptado" binding:"required"`
}

type registerRequest struct {
	FirstName string `json:"nombre" binding:"required,min=2,max=120"`
	LastName  string `json:"apellidos" binding:"required,min=2,max=160"`
	Email     string `json:"email" binding:"required,email,max=254"`
}

type selectProgramRequest struct {
	ProgramID int `json:"maestria_id" binding:"required,min=1"`
}

type selectSpecialtyRequest struct {
	SpecialtyID *int `json:"especialidad_id" binding:"omitempty,min=1"`
}

type selectSubjectRequest struct {
	Subject string `json:"materia" binding:"required"`
}

type captureRequest struct {
	InstructorID *int        `json:"profesor_id" binding:"omitempty,min=1"`
	Ratings      map[int]int `json:"calificaciones" binding:"required"`
	Comment      string      `json:"comentarios" binding:"max=2000"`
}

// failWizard maps wizard flow errors onto the API error taxonomy.
func failWizard(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrSessionNotFound)
	case errors.Is(err, service.ErrPhaseMismatch):
		response.Fail(c, http.StatusConflict, response.ErrPhaseMismatch)
	case errors.Is(err, service.ErrConsentRequired):
		response.Fail(c, http.StatusBadRequest, response.ErrConsentRequired)
	case errors.Is(err, service.ErrProgramNotAvailable):
		response.Fail(c, http.StatusBadRequest, response.ErrProgramNotAvailable)
	case errors.Is(err, service.ErrSubjectNotAvailable):
		response.Fail(c, http.StatusBadRequest, response.ErrSubjectNotAvailable)
	case errors.Is(err, wizard.ErrInstructorNotSelected),
		errors.Is(err, wizard.ErrInstructorNotCandidate):
		response.Fail(c, http.StatusBadRequest, response.ErrInstructorNotSelected)
	case errors.Is(err, wizard.ErrIncompleteRatings):
		response.Fail(c, http.StatusBadRequest, response.ErrIncompleteRatings)
	case errors.Is(err, wizard.ErrRatingOutOfRange):
		response.Fail(c, http.StatusBadRequest, response.ErrRatingOutOfRange)
	case errors.Is(err, service.ErrNoActivePeriod):
		response.Fail(c, http.StatusConflict, response.ErrNoActivePeriod)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}

// respondPhase replies with the freshly computed phase view so the client
// never has to guess what comes next.
func (h *WizardHandler) respondPhase(c *gin.Context, token string) {
	view, err := h.wizardService.PhaseData(c.Request.Context(), token)
	if err != nil {
		failWizard(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"encuesta": view})
}

// Start godoc
// POST /api/v1/survey/sessions
func (h *WizardHandler) Start(c *gin.Context) {
	sess, err := h.wizardService.StartSession(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	view, err := h.wizardService.PhaseData(c.Request.Context(), sess.Token)
	if err != nil {
		failWizard(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"token": sess.Token, "encuesta": view})
}

// GetPhase godoc
// GET /api/v1/survey/sessions/:token
func (h *WizardHandler) GetPhase(c *gin.Context) {
	h.respondPhase(c, c.Param("token"))
}

// Consent godoc
// POST /api/v1/survey/sessions/:token/consent
func (h *WizardHandler) Consent(c *gin.Context) {
	var req consentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if _, err := h.wizardService.AcceptConsent(c.Request.Context(), c.Param("token"), *req.Accepted); err != nil {
		failWizard(c, err)
		return
	}
	h.respondPhase(c, c.Param("token"))
}

// Register godoc
// POST /api/v1/survey/sessions/:token/student
func (h *WizardHandler) Register(c *gin.Context) {
	var req registerRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if _, err := h.wizardService.Register(c.Request.Context(), c.Param("token"), req.FirstName, req.LastName, req.Email); err != nil {
		failWizard(c, err)
		return
	}
	h.respondPhase(c, c.Param("token"))
}

// SelectProgram godoc
// POST /api/v1/survey/sessions/:token/program
func (h *WizardHandler) SelectProgram(c *gin.Context) {
	var req selectProgramRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if _, err := h.wizardService.SelectProgram(c.Request.Context(), c.Param("token"), req.ProgramID); err != nil {
		failWizard(c, err)
		return
	}
	h.respondPhase(c, c.Param("token"))
}

// SelectSpecialty godoc
// POST /api/v1/survey/sessions/:token/specialty
func (h *WizardHandler) SelectSpecialty(c *gin.Context) {
	var req selectSpecialtyRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if _, err := h.wizardService.SelectSpecialty(c.Request.Context(), c.Param("token"), req.SpecialtyID); err != nil {
		failWizard(c, err)
		return
	}
	h.respondPhase(c, c.Param("token"))
}

// SelectSubject godoc
// POST /api/v1/survey/sessions/:token/subject
func (h *WizardHandler) SelectSubject(c *gin.Context) {
	var req selectSubjectRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if _, err := h.wizardService.SelectSubject(c.Request.Context(), c.Param("token"), req.Subject); err != nil {
		failWizard(c, err)
		return
	}
	h.respondPhase(c, c.Param("token"))
}

// Capture godoc
// POST /api/v1/survey/sessions/:token/ratings
func (h *WizardHandler) Capture(c *gin.Context) {
	var req captureRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if _, err := h.wizardService.CaptureRatings(c.Request.Context(), c.Param("token"), req.InstructorID, req.Ratings, req.Comment); err != nil {
		failWizard(c, err)
		return
	}
	h.respondPhase(c, c.Param("token"))
}

// Back godoc
// POST /api/v1/survey/sessions/:token/back
func (h *WizardHandler) Back(c *gin.Context) {
	if _, err := h.wizardService.Retreat(c.Request.Context(), c.Param("token")); err != nil {
		failWizard(c, err)
		return
	}
	h.respondPhase(c, c.Param("token"))
}

// Cancel godoc
// DELETE /api/v1/survey/sessions/:token
func (h *WizardHandler) Cancel(c *gin.Context) {
	if err := h.wizardService.Cancel(c.Request.Context(), c.Param("token")); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "sesión cancelada"})
}

// Submit godoc
// POST /api/v1/survey/sessions/:token/submit
func (h *WizardHandler) Submit(c *gin.Context) {
	result, err := h.submissionService.Submit(c.Request.Context(), c.Param("token"))
	if err != nil {
		failWizard(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"resultado": result})
}

// Questions godoc
// GET /api/v1/survey/questions
//
// The fixed question set, served separately so the frontend can render
// the rating grid before a session exists.
func (h *WizardHandler) Questions(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"reactivos":            wizard.Questions[:],
		"texto_consentimiento": wizard.ConsentText,
	})
}
