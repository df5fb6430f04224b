// File: skyretail/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"skyretail/config"
	"skyretail/handlers"
	"skyretail/middleware"
	"skyretail/routes"
	"skyretail/services/normalizer"
	"skyretail/services/pricereq"
	"skyretail/services/seating"
	"skyretail/services/shopping"
	"skyretail/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionCache()
	utils.StartHealthMonitor(utils.GetSessionCacheClient())

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	sessionService := &shopping.DefaultShoppingSessionService{
		Normalizer:       normalizer.New(config.AppConfig.DefaultCurrency),
		Builder:          pricereq.NewBuilder(logger),
		Solver:           seating.NewSolver(config.AppConfig.SeatRowOffset, logger),
		Store:            shopping.NewRedisSessionStore(),
		JourneyRefPrefix: config.AppConfig.JourneyRefPrefix,
		SegmentRefPrefix: config.AppConfig.SegmentRefPrefix,
	}

	shoppingHandler := handlers.NewShoppingHandler(sessionService, logger)

	// Register routes.
	routes.RegisterRoutes(router, shoppingHandler)

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
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
