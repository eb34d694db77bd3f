// File: huddle/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"huddle/config"
	"huddle/cron"
	"huddle/database"
	calendarRepo "huddle/database/repository/calendar"
	"huddle/handlers"
	"huddle/middleware"
	"huddle/routes"
	"huddle/services/meeting"
	"huddle/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := utils.RegisterValidators(); err != nil {
		logger.Sugar().Fatalf("main: failed to register validators: %v", err)
	}

	database.InitDB()

	// repositories.
	calRepo := calendarRepo.NewMongoCalendarRepo()
	if err := calRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure calendar indexes: %v", err)
	}

	// services.
	var cache meeting.QueryCache = meeting.NoopQueryCache{}
	var redisClient *redis.Client
	if config.AppConfig.QueryCacheEnabled {
		redisClient = utils.GetCacheClient()
		ttl := time.Duration(config.AppConfig.QueryCacheTTLMinutes) * time.Minute
		cache = meeting.NewRedisQueryCache(redisClient, ttl)
	}
	meetingService := meeting.NewMeetingService(calRepo, cache)

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(monitorCtx, redisClient, database.MongoClient)

	retention, err := cron.InitRetentionWorker(meetingService)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimitMiddleware())

	meetingHandler := handlers.NewMeetingHandler(meetingService)
	routes.RegisterRoutes(router, handlers.NewHandlerBundle(meetingHandler))

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
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
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	retention.Shutdown()
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if err := database.CloseDB(ctx); err != nil {
		logger.Sugar().Errorf("main: failed to close MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
