// File: meetwise/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meetwise/config"
	"meetwise/database"
	requestsRepo "meetwise/database/repository/requests"
	"meetwise/handlers"
	"meetwise/middleware"
	"meetwise/models"
	"meetwise/routes"
	"meetwise/services/calendar"
	ai "meetwise/services/intelligence"
	"meetwise/services/scheduling"
	"meetwise/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// The scheduling zone every instant is normalized to.
	cfg := config.AppConfig
	offset := cfg.TZOffsetHours*3600 + cfg.TZOffsetMinutes*60
	loc := time.FixedZone("IST", offset)

	schedulingCfg := scheduling.Config{
		Hours: models.WorkingHours{
			StartMinute: cfg.WorkingHoursStart * 60,
			EndMinute:   cfg.WorkingHoursEnd * 60,
		},
		HorizonDays:            cfg.CalendarLookupDays,
		Location:               loc,
		IncludeWeekends:        cfg.IncludeWeekends,
		DefaultDurationMinutes: cfg.DefaultMeetingDuration,
	}

	// Calendar retrieval, with a Redis read-through cache in front.
	var calendarSource scheduling.CalendarSource
	googleSource := calendar.NewGoogleSource(cfg.KeysDirectory)
	calendarSource = calendar.NewCachedSource(
		googleSource,
		utils.GetCacheClient(),
		time.Duration(cfg.CalendarCacheTTL)*time.Second,
		logger,
	)

	// Intent extraction. Without an API key the service runs on its
	// deterministic fallbacks.
	var generator ai.Generator
	if cfg.GeminiAPIKey != "" {
		geminiClient, err := ai.NewGeminiClient(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize gemini client: %v", err)
		}
		generator = geminiClient
	} else {
		logger.Warn("No Gemini API key configured, running with deterministic intent defaults")
	}
	intentService := ai.NewDefaultIntentService(generator, logger)

	handlers.SchedulingSvc = &scheduling.DefaultSchedulingService{
		Calendar: calendarSource,
		Intent:   intentService,
		Cfg:      schedulingCfg,
		Logger:   logger,
	}
	handlers.RecordRepo = requestsRepo.NewMongoRequestRepo()

	routes.RegisterRoutes(router)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
