package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/config"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/handler"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/middleware"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/response"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth       *handler.AuthHandler
	Wizard     *handler.WizardHandler
	Period     *handler.PeriodHandler
	Program    *handler.ProgramHandler
	Specialty  *handler.SpecialtyHandler
	Instructor *handler.InstructorHandler
	Evaluation *handler.EvaluationHandler
	Dashboard  *handler.DashboardHandler
	Monitor    *handler.MonitorHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for the public survey (60 requests per minute per IP,
	// generous enough for a full wizard run with retries).
	surveyLimiter := middleware.NewRateLimiter(60, time.Minute)

	// ─── 1. Public Survey Group (anonymous, rate limited) ──────────────
	survey := router.Group("/api/v1/survey")
	survey.Use(surveyLimiter.Middleware())
	{
		// The question set never changes within a deployment.
		survey.GET("/questions", middleware.CacheControl(3600), handlers.Wizard.Questions)

		survey.POST("/sessions", handlers.Wizard.Start)
		survey.GET("/sessions/:token", handlers.Wizard.GetPhase)
		survey.DELETE("/sessions/:token", handlers.Wizard.Cancel)
		survey.POST("/sessions/:token/consent", handlers.Wizard.Consent)
		survey.POST("/sessions/:token/student", handlers.Wizard.Register)
		survey.POST("/sessions/:token/program", handlers.Wizard.SelectProgram)
		survey.POST("/sessions/:token/specialty", handlers.Wizard.SelectSpecialty)
		survey.POST("/sessions/:token/subject", handlers.Wizard.SelectSubject)
		survey.POST("/sessions/:token/ratings", handlers.Wizard.Capture)
		survey.POST("/sessions/:token/back", handlers.Wizard.Back)
		survey.POST("/sessions/:token/submit", handlers.Wizard.Submit)
	}

	// ─── 2. Auth Group (public login, rate limited) ────────────────────
	authLimiter := middleware.NewRateLimiter(30, time.Minute)
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/admin/login", handlers.Auth.Login)
		auth.POST("/admin/logout", middleware.RequireAdminJWT(authService), handlers.Auth.Logout)
		auth.GET("/admin/me", middleware.RequireAdminJWT(authService), handlers.Auth.Me)
	}

	// ─── 3. Admin Group (JWT) ──────────────────────────────────────────
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(middleware.RequireAdminJWT(authService))
	{
		// Period management
		adminAPI.GET("/periods", handlers.Period.GetAll)
		adminAPI.POST("/periods", handlers.Period.Create)
		adminAPI.PUT("/periods/:id", handlers.Period.Update)
		adminAPI.PATCH("/periods/:id/active", handlers.Period.SetActive)
		adminAPI.DELETE("/periods/:id", handlers.Period.Delete)

		// Program management
		adminAPI.GET("/programs", handlers.Program.GetAll)
		adminAPI.POST("/programs", handlers.Program.Create)
		adminAPI.PUT("/programs/:id", handlers.Program.Update)
		adminAPI.DELETE("/programs/:id", handlers.Program.Delete)

		// Specialty management
		adminAPI.GET("/specialties", handlers.Specialty.GetAll)
		adminAPI.POST("/specialties", handlers.Specialty.Create)
		adminAPI.PUT("/specialties/:id", handlers.Specialty.Update)
		adminAPI.DELETE("/specialties/:id", handlers.Specialty.Delete)

		// Instructor management
		adminAPI.GET("/instructors", handlers.Instructor.List)
		adminAPI.GET("/instructors/:id", handlers.Instructor.GetByID)
		adminAPI.POST("/instructors", handlers.Instructor.Create)
		adminAPI.PUT("/instructors/:id", handlers.Instructor.Update)
		adminAPI.DELETE("/instructors/:id", handlers.Instructor.Delete)

		// Evaluation reporting
		adminAPI.GET("/evaluations", handlers.Evaluation.List)
		adminAPI.GET("/evaluations/export", handlers.Evaluation.Export)
		adminAPI.GET("/evaluations/:id", handlers.Evaluation.GetByID)

		// Dashboard and live monitor
		adminAPI.GET("/dashboard", handlers.Dashboard.GetCounts)
		adminAPI.GET("/monitor", handlers.Monitor.SubmissionsSSE)
	}

	return router
}
