package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/edustack/homework-help-api/api/swagger"
	"github.com/edustack/homework-help-api/internal/handler"
	"github.com/edustack/homework-help-api/internal/middleware"
	"github.com/edustack/homework-help-api/internal/repository"
	"github.com/edustack/homework-help-api/internal/service"
	"github.com/edustack/homework-help-api/pkg/config"
	"github.com/edustack/homework-help-api/pkg/database"
	"github.com/edustack/homework-help-api/pkg/logger"
	corsmiddleware "github.com/edustack/homework-help-api/pkg/middleware/cors"
	reqidmiddleware "github.com/edustack/homework-help-api/pkg/middleware/requestid"
)

// @title Homework Help API
// @version 0.1.0
// @description Backend for homework question submission, answers and AI generation records
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close() //nolint:errcheck

	if cfg.Database.ApplySchema {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := database.ApplySchema(ctx, db); err != nil {
			cancel()
			logr.Sugar().Fatalw("failed to apply schema", "error", err)
		}
		cancel()
	}

	requestRepo := repository.NewHomeworkRequestRepository(db)
	responseRepo := repository.NewHomeworkResponseRepository(db)
	jobRepo := repository.NewHomeworkJobRepository(db)

	tokenService := service.NewTokenService(service.TokenConfig{
		Secret:   cfg.JWT.Secret,
		Leeway:   cfg.JWT.Leeway,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
	})
	requestService := service.NewHomeworkRequestService(requestRepo, nil, logr)
	responseService := service.NewHomeworkResponseService(responseRepo, requestRepo, nil, logr)
	jobService := service.NewHomeworkJobService(jobRepo, requestRepo, nil, logr)

	var metricsService *service.MetricsService
	if cfg.Metrics.Enabled {
		metricsService = service.NewMetricsService()
	}

	requestHandler := handler.NewHomeworkRequestHandler(requestService)
	responseHandler := handler.NewHomeworkResponseHandler(responseService)
	jobHandler := handler.NewHomeworkJobHandler(jobService)
	metricsHandler := handler.NewMetricsHandler(metricsService)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if metricsService != nil {
		r.Use(middleware.Metrics(metricsService))
	}

	r.GET("/health", metricsHandler.Health)

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	if metricsService != nil {
		r.GET("/metrics", metricsHandler.Prometheus)
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.Use(middleware.JWT(tokenService))
	{
		api.POST("/homework/requests", requestHandler.Create)
		api.GET("/homework/requests", requestHandler.List)
		api.PUT("/homework/requests/:requestId", requestHandler.Update)

		api.POST("/homework/requests/:requestId/responses", responseHandler.Add)
		api.GET("/homework/requests/:requestId/responses", responseHandler.List)
		api.PUT("/homework/requests/:requestId/responses/:id", responseHandler.Update)

		api.POST("/homework/jobs", jobHandler.Create)
		api.GET("/homework/jobs", jobHandler.List)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
