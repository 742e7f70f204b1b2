package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"metrics-consolidation-backend/config"
	_ "metrics-consolidation-backend/docs"
	"metrics-consolidation-backend/internal/controller"
	"metrics-consolidation-backend/internal/elasticsearch"
	"metrics-consolidation-backend/internal/kafka"
	"metrics-consolidation-backend/internal/middleware"
	"metrics-consolidation-backend/internal/postgres"
	"metrics-consolidation-backend/internal/remote"
	"metrics-consolidation-backend/internal/scheduler"
	"metrics-consolidation-backend/internal/service"
	"metrics-consolidation-backend/internal/validation"
)

// @title           Metrics Consolidation API
// @version         1.0
// @description     Backend consolidating service metrics pulled from an upstream monitoring API, with grouped aggregation views and a users collection.

// @host      localhost:3000
// @BasePath  /
// @schemes   http https

// @tag.name         metrics
// @tag.description  Ingestion and consolidation views over the metrics collection

// @tag.name         users
// @tag.description  CRUD over the users collection

// @tag.name         health
// @tag.description  Service health check

func main() {
	app := fx.New(
		// Core Dependencies
		fx.Provide(
			config.NewConfig,
		),
		// Infrastructure Dependencies
		fx.Provide(
			NewGinEngine,
			elasticsearch.NewElasticClient,
			elasticsearch.NewElasticMetricRepository,
			postgres.NewPostgresPool,
			postgres.NewPostgresUserRepository,
			remote.NewMetricsFetcher,
			kafka.NewKafkaMetricProducer,
			validation.NewDateRangeValidator,
			service.NewMetricIngestService,
			service.NewMetricQueryService,
			service.NewUserService,
			controller.NewMetricController,
			controller.NewUserController,
			controller.NewHealthController,
		),
		fx.Invoke(
			RegisterAPIRoutes,
			RegisterScheduler,
		),
	)

	startCtx, cancelStart := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}
	<-app.Done()

	stopCtx, cancelStop := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStop()
	log.Info().Msg("Shutting down application...")
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Forced shutdown due to error or timeout")
	}
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-Key"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func RegisterAPIRoutes(
	lifecycle fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	metricController *controller.MetricController,
	userController *controller.UserController,
	healthController *controller.HealthController,
) {
	controller.RegisterMetricRoutes(router, metricController)

	// The users guard is explicit and opt-in; without a configured key the
	// group stays open and no middleware is attached.
	if cfg.APIKey != "" {
		log.Info().Msg("API key configured, guarding /users routes")
		controller.RegisterUserRoutes(router, userController, middleware.RequireAPIKey(cfg.APIKey))
	} else {
		controller.RegisterUserRoutes(router, userController)
	}

	controller.RegisterHealthRoutes(router, healthController)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Starting HTTP server on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error().Err(err).Msg("HTTP server ListenAndServe error")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Shutting down HTTP server...")
			return server.Shutdown(ctx)
		},
	})
}

func RegisterScheduler(lc fx.Lifecycle, cfg *config.Config, ingestService service.MetricIngestService) {
	scheduler.NewScheduler(lc, cfg, ingestService)
}
