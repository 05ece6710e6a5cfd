package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/middleware"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/model"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/repository"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/response"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/service"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/validator"
)

type AuthHandler struct {
	authService *service.AuthService
	adminRepo   repository.AdminRepository
}

func NewAuthHandler(authService *service.AuthService, adminRepo repository.AdminRepository) *AuthHandler {
	return &AuthHandler{authService: authService, adminRepo: adminRepo}
}

// Login godoc
// POST /api/v1/auth/admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.AdminLoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	token, admin, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"token": token, "admin": admin})
}

// Logout godoc
// POST /api/v1/auth/admin/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
		return
	}

	if err := h.authService.Logout(c.Request.Context(), claims.UserID); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "sesión cerrada"})
}

// Me godoc
// GET /api/v1/auth/admin/me
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
		return
	}

	admin, err := h.adminRepo.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		failDB(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"admin": admin})
}
