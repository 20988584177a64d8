package main

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"fleetadmin/internal/config"
	"fleetadmin/internal/logger"
	"fleetadmin/internal/models"
	"fleetadmin/internal/repository"
	"fleetadmin/internal/services"
)

// superadmin-init creates the first super admin from SUPERADMIN_EMAIL,
// SUPERADMIN_NAME and SUPERADMIN_PASSWORD. Running it again is a no-op.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	log, _ := logger.Setup(cfg.Log)

	if cfg.Bootstrap.Email == "" || cfg.Bootstrap.Password == "" {
		log.Fatal("SUPERADMIN_EMAIL and SUPERADMIN_PASSWORD are required")
	}

	db, err := config.OpenDatabase(cfg.Database, log)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	defer func() { _ = config.CloseDatabase(db) }()

	if err := config.Migrate(db); err != nil {
		log.WithError(err).Fatal("schema migration failed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store := services.NewIdentityStore(repository.NewIdentityRepository(db), cfg.BcryptCost, log)
	identity, err := store.Create(ctx, models.RoleSuperAdmin, cfg.Bootstrap.Email, cfg.Bootstrap.Name, cfg.Bootstrap.Password)
	if errors.Is(err, services.ErrDuplicateEntity) {
		log.WithField("email", cfg.Bootstrap.Email).Info("super admin already exists")
		return
	}
	if err != nil {
		log.WithError(err).Fatal("failed to create super admin")
	}

	log.WithField("identity_id", identity.ID).Info("super admin init completed")
}
