package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"iris-predictor-service/internal/adapters/primary/http/dto"
	"iris-predictor-service/internal/adapters/primary/http/handlers"
	"iris-predictor-service/internal/adapters/primary/http/middleware"
	"iris-predictor-service/internal/adapters/secondary/knn"
	"iris-predictor-service/internal/config"
	"iris-predictor-service/internal/core/services"
	"iris-predictor-service/internal/logging"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := log.NewEntry(logging.Init(cfg.Logger))

	// Model is loaded once; the process cannot serve without it.
	classifier, err := knn.Load(cfg.Model.Path, logger)
	if err != nil {
		log.Fatalf("load model: %v", err)
	}

	predictionSvc := services.NewPredictionService(classifier)
	h := handlers.New(predictionSvc, logger)

	// Setup router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), middleware.Recovery())

	h.RegisterRoutes(router, cfg.Server.PredictRoute)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponse{
			Status:  "ok",
			Model:   "knn",
			Samples: classifier.Samples(),
		})
	})

	// Start server
	addr := cfg.Server.Addr()
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s (POST %s)", addr, cfg.Server.PredictRoute)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}
