package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"fleetadmin/internal/config"
	"fleetadmin/internal/logger"
	"fleetadmin/internal/metrics"
	"fleetadmin/internal/repository"
	"fleetadmin/internal/routes"
	"fleetadmin/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	// Initialize structured logging to file
	log, accessLog := logger.Setup(cfg.Log)

	// Connect to the database
	db, err := config.OpenDatabase(cfg.Database, log)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	defer func() { _ = config.CloseDatabase(db) }()
	log.Info("database connected")

	if err := config.Migrate(db); err != nil {
		log.WithError(err).Fatal("schema migration failed")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.WithError(err).Fatal("failed to resolve sql handle")
	}

	identityRepo := repository.NewIdentityRepository(db)
	store := services.NewIdentityStore(identityRepo, cfg.BcryptCost, log)
	tokens := services.NewTokenService(cfg.JWT)
	registry := services.NewRegistry(
		repository.NewDriverRepository(db),
		repository.NewMerchantRepository(db),
		cfg.BcryptCost,
		log,
	)

	router := routes.SetupRouter(routes.Deps{
		Config:    cfg,
		Log:       log,
		AccessLog: accessLog,
		DB:        sqlDB,
		Gate:      services.NewAuthorizationGate(tokens, identityRepo),
		Sessions:  services.NewSessionService(store, tokens, log),
		Workflow:  services.NewRegistrationWorkflow(identityRepo, store, registry, log),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go collectDBMetrics(ctx, sqlDB)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.WithField("addr", cfg.HTTPAddr).Info("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server error")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}

func collectDBMetrics(ctx context.Context, db *sql.DB) {
	metrics.RecordDBPoolStats(db)

	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			metrics.RecordDBPoolStats(db)
		case <-ctx.Done():
			return
		}
	}
}
