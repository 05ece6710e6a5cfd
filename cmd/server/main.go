package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/config"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/database"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/handler"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/logger"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/repository"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/router"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/service"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/validator"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/worker"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Evaluación Docente API")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	periodRepo := repository.NewPeriodRepository(pool)
	programRepo := repository.NewProgramRepository(pool)
	specialtyRepo := repository.NewSpecialtyRepository(pool)
	instructorRepo := repository.NewInstructorRepository(pool)
	evaluationRepo := repository.NewEvaluationRepository(pool)
	adminRepo := repository.NewAdminRepository(pool)
	dashboardRepo := repository.NewDashboardRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, rdb, adminRepo)
	catalogService := service.NewCatalogService(programRepo, specialtyRepo, log)
	periodService := service.NewPeriodService(periodRepo, log)
	programService := service.NewProgramService(programRepo, log)
	specialtyService := service.NewSpecialtyService(specialtyRepo, log)
	instructorService := service.NewInstructorService(instructorRepo, log)
	wizardService := service.NewWizardService(cfg, rdb, catalogService, programRepo, specialtyRepo, instructorRepo, log)
	submissionService := service.NewSubmissionService(rdb, wizardService, periodRepo, evaluationRepo, log)
	evaluationService := service.NewEvaluationService(evaluationRepo, log)
	dashboardService := service.NewDashboardService(dashboardRepo, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:       handler.NewAuthHandler(authService, adminRepo),
		Wizard:     handler.NewWizardHandler(wizardService, submissionService),
		Period:     handler.NewPeriodHandler(periodService),
		Program:    handler.NewProgramHandler(programService),
		Specialty:  handler.NewSpecialtyHandler(specialtyService),
		Instructor: handler.NewInstructorHandler(instructorService),
		Evaluation: handler.NewEvaluationHandler(evaluationService),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
		Monitor:    handler.NewMonitorHandler(rdb, dashboardService, log),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	confirmationWorker := worker.NewConfirmationWorker(cfg, rdb, log)
	go confirmationWorker.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop the worker and wait for the email queue to drain.
	workerCancel()
	time.Sleep(2 * time.Second)

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
