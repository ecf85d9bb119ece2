package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"causalLab/app/echo-server/router"
	"causalLab/business/insight"
	"causalLab/business/psm"
	"causalLab/business/uplift"
	"causalLab/internal/middleware"
	"causalLab/internal/repository/gemini"
	"causalLab/internal/repository/memory"
	psqlRepo "causalLab/internal/repository/postgres"
	"causalLab/internal/rest"
	"causalLab/pkg/config"
	"causalLab/pkg/database"
	"causalLab/pkg/logger"
	"causalLab/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting "+cfg.App.Name, "version", cfg.App.Version)

	metrics.Init()

	// Init repo
	campaignRepo, err := newCampaignRepository(cfg)
	if err != nil {
		logger.Fatal("Failed to init campaign repository", "error", err)
	}

	var generator insight.Generator
	if cfg.Insight.GeminiAPIKey != "" {
		generator = gemini.NewGeminiRepository(gemini.GeminiConfig{
			BaseURL:  cfg.Insight.GeminiBaseURL,
			APIKey:   cfg.Insight.GeminiAPIKey,
			Model:    cfg.Insight.GeminiModel,
			Timeout:  cfg.Insight.Timeout,
			RetryMax: cfg.Insight.RetryMax,
		})
	} else {
		logger.Warn("API_KEY not set, insight endpoints will return fallback text")
	}

	// Init service
	sessionStore := psm.NewSessionStore(psm.Config{
		SampleCount:        cfg.PSM.SampleCount,
		SelectionHalfWidth: cfg.PSM.SelectionHalfWidth,
		BusyDelay:          cfg.PSM.BusyDelay,
	})
	psmService := psm.NewService(sessionStore)
	catalog := uplift.NewCatalog(campaignRepo)
	insightService := insight.NewService(generator)

	// Init handler
	psmHandler := rest.NewPSMHandler(psmService)
	dashboardHandler := rest.NewDashboardHandler(catalog)
	insightHandler := rest.NewInsightHandler(insightService, catalog, cfg.Insight.Timeout)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceID())
	e.Use(metrics.Middleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, echo.HeaderXRequestID},
	}))

	// Auth middleware
	var authRequired []echo.MiddlewareFunc
	if cfg.JWT.SecretKey != "" {
		authRequired = append(authRequired, middleware.AuthMiddleware(cfg.JWT.SecretKey))
	}

	// Setup routes
	router.SetupOpsRoutes(e)
	api := e.Group("/api/v1")
	router.SetupPSMRoutes(api, psmHandler, authRequired...)
	router.SetupDashboardRoutes(api, dashboardHandler, authRequired...)
	router.SetupInsightRoutes(api, insightHandler, authRequired...)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	// Pending estimations are discarded
	sessionStore.CloseAll()

	logger.Info("Server stopped")
}

func newCampaignRepository(cfg *config.Config) (uplift.CampaignRepository, error) {
	if !cfg.Database.Enabled() {
		logger.Info("DB_HOST not set, using static campaign history")
		return memory.NewCampaignRepository(uplift.DefaultCampaigns()), nil
	}

	db, err := database.InitPostgres(cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("Database connected successfully")

	repo := psqlRepo.NewCampaignRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := repo.Seed(ctx, uplift.DefaultCampaigns()); err != nil {
		return nil, fmt.Errorf("seed campaign history: %w", err)
	}

	return repo, nil
}
