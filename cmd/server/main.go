package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitlog/workout-app/internal/api"
	"fitlog/workout-app/internal/config"
	"fitlog/workout-app/internal/repository/sqlite"
	"fitlog/workout-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.WithError(err).Fatal("could not load config")
	}
	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		logger.WithError(err).Warnf("invalid log level %q, using info", cfg.Logging.Level)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	logger.Info("configuration loaded")

	// --- Database ---
	db, err := sqlite.Connect(cfg.Database.Path)
	if err != nil {
		logger.WithError(err).Fatal("could not open database")
	}
	logger.WithField("path", cfg.Database.Path).Info("database opened")

	// --- Repositories ---
	setRepo := sqlite.NewSetRepository(db)
	exerciseRepo := sqlite.NewExerciseRepository(db)
	categoryRepo := sqlite.NewCategoryRepository(db)

	// --- Services ---
	setService := service.NewSetService(setRepo, exerciseRepo)
	catalogService := service.NewCatalogService(categoryRepo, exerciseRepo)
	historyService := service.NewHistoryService(setRepo)

	// --- HTTP ---
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), api.RequestIDMiddleware(), api.LoggingMiddleware(logger))

	api.SetupRoutes(router, logger, setService, catalogService, historyService)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.WithField("address", cfg.Server.Address).Info("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("listen and serve")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.WithError(err).Fatal("server forced to shutdown")
	}

	logger.Info("server exited")
}
