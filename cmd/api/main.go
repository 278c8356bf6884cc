package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vetcarehq/vetclinic-api/internal/config"
	authhandler "github.com/vetcarehq/vetclinic-api/internal/handler/auth"
	consultationhandler "github.com/vetcarehq/vetclinic-api/internal/handler/consultation"
	dashboardhandler "github.com/vetcarehq/vetclinic-api/internal/handler/dashboard"
	healthplanhandler "github.com/vetcarehq/vetclinic-api/internal/handler/healthplan"
	specieshandler "github.com/vetcarehq/vetclinic-api/internal/handler/species"
	treatmenthandler "github.com/vetcarehq/vetclinic-api/internal/handler/treatment"
	"github.com/vetcarehq/vetclinic-api/internal/middleware"
	"github.com/vetcarehq/vetclinic-api/internal/repository/postgres"
	"github.com/vetcarehq/vetclinic-api/internal/router"
	authservice "github.com/vetcarehq/vetclinic-api/internal/service/auth"
	consultationservice "github.com/vetcarehq/vetclinic-api/internal/service/consultation"
	dashboardservice "github.com/vetcarehq/vetclinic-api/internal/service/dashboard"
	healthplanservice "github.com/vetcarehq/vetclinic-api/internal/service/healthplan"
	speciesservice "github.com/vetcarehq/vetclinic-api/internal/service/species"
	treatmentservice "github.com/vetcarehq/vetclinic-api/internal/service/treatment"
	"github.com/vetcarehq/vetclinic-api/internal/validation"
	"github.com/vetcarehq/vetclinic-api/pkg/auth"
	"github.com/vetcarehq/vetclinic-api/pkg/logger"
	"github.com/vetcarehq/vetclinic-api/pkg/security"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log := logger.NewLogger(nil)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err, "failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal(err, "failed to connect to database")
	}
	defer db.Close()

	speciesRepo := postgres.NewSpeciesRepository(db)
	treatmentRepo := postgres.NewTreatmentRepository(db)
	consultationRepo := postgres.NewConsultationRepository(db)
	healthPlanRepo := postgres.NewHealthPlanRepository(db)
	userRepo := postgres.NewUserRepository(db)
	dashboardRepo := postgres.NewDashboardRepository(db)

	validator := validation.New()
	jwtSvc := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience, cfg.JWT.Expiry())
	hasher := security.NewBcryptHasher(0)

	speciesSvc := speciesservice.NewService(speciesRepo, consultationRepo, validator)
	treatmentSvc := treatmentservice.NewService(treatmentRepo, consultationRepo, healthPlanRepo, validator)
	consultationSvc := consultationservice.NewService(consultationRepo, speciesRepo, treatmentRepo, validator)
	healthPlanSvc := healthplanservice.NewService(healthPlanRepo, treatmentRepo, validator)
	authSvc := authservice.NewService(userRepo, jwtSvc, hasher, validator)
	dashboardSvc := dashboardservice.NewService(dashboardRepo)

	authMiddleware := middleware.NewAuthMiddleware(jwtSvc)

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.CORS.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	}

	r := router.NewRouter(
		authMiddleware,
		authhandler.NewHandler(authSvc),
		[]router.Handler{
			specieshandler.NewHandler(speciesSvc),
			treatmenthandler.NewHandler(treatmentSvc),
			consultationhandler.NewHandler(consultationSvc),
			healthplanhandler.NewHandler(healthPlanSvc),
			dashboardhandler.NewHandler(dashboardSvc),
		},
		router.Config{
			RateLimit:  cfg.Server.RateLimit,
			RateBurst:  cfg.Server.RateBurst,
			CORSConfig: corsConfig,
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err, "server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err, "forced shutdown")
	}
	log.Info("server stopped")
}
