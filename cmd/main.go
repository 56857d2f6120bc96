package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/maxty9378/paneldoirp-sub002/config"
	_ "github.com/maxty9378/paneldoirp-sub002/docs" // Swagger docs - generated by swag init
	"github.com/maxty9378/paneldoirp-sub002/internal/cache"
	adminctrl "github.com/maxty9378/paneldoirp-sub002/internal/controller/admin"
	userctrl "github.com/maxty9378/paneldoirp-sub002/internal/controller/user"
	"github.com/maxty9378/paneldoirp-sub002/internal/database"
	"github.com/maxty9378/paneldoirp-sub002/internal/dto"
	"github.com/maxty9378/paneldoirp-sub002/internal/logger"
	"github.com/maxty9378/paneldoirp-sub002/internal/metrics"
	"github.com/maxty9378/paneldoirp-sub002/internal/middleware"
	"github.com/maxty9378/paneldoirp-sub002/internal/repository"
	"github.com/maxty9378/paneldoirp-sub002/internal/router"
	"github.com/maxty9378/paneldoirp-sub002/internal/scoring"
	"github.com/maxty9378/paneldoirp-sub002/internal/service"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Training Portal Testing API
// @version 1.0
// @description Test authoring, test taking, scoring and results for the training portal.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			router.NewGinEngine,
			metrics.New,
			service.SystemClock,
			middleware.NewAuthenticator,
			func(cfg *config.Config) scoring.Scorer {
				return scoring.NewScorer(scoring.MultipleChoiceMode(cfg.Scoring.MultipleChoiceMode))
			},
			func(cfg *config.Config) *cache.EventCache {
				return cache.NewEventCache(cfg.Cache.EventsTTL)
			},
		),

		// Repositories Layer
		fx.Provide(
			repository.NewTestRepository,
			repository.NewQuestionRepository,
			repository.NewAnswerRepository,
			repository.NewTestAttemptRepository,
			repository.NewAttemptAnswerRepository,
			repository.NewEventRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewTestBuilderService,
			service.NewAttemptService,
			service.NewEventService,
			service.NewAttemptReaper,
		),

		// API Controllers Layer
		fx.Provide(
			adminctrl.NewAdminTestController,
			userctrl.NewUserTestController,
			userctrl.NewEventController,
			router.NewControllers,
		),

		fx.Invoke(ApplyLogLevel),
		fx.Invoke(dto.RegisterValidations),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(StartReaper),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Application did not stop cleanly")
	}
}

func ApplyLogLevel(cfg *config.Config) {
	logger.SetLevel(cfg.LogLevel)
}

func AutoMigrateDB(db *gorm.DB) error {
	return database.AutoMigrate(db)
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	engine *gin.Engine,
	cfg *config.Config,
	auth *middleware.Authenticator,
	m *metrics.Metrics,
	controllers *router.Controllers,
) {
	router.RegisterRoutes(engine, auth, m, controllers)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Training portal API starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

// StartReaper runs the expired attempt sweep for the lifetime of the app.
func StartReaper(lc fx.Lifecycle, cfg *config.Config, reaper *service.AttemptReaper) {
	if !cfg.Reaper.Enabled {
		log.Info().Msg("Attempt reaper disabled")
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return reaper.Start()
		},
		OnStop: func(ctx context.Context) error {
			return reaper.Stop(ctx)
		},
	})
}
