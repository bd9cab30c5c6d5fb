package cron

import (
	"context"
	"time"

	cronlib "github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Migrator rewrites legacy declared slots in place.
type Migrator interface {
	MigrateLegacy(ctx context.Context) (int, error)
}

// StartMaintenance runs the legacy slot sweep on spec (a cron expression or
// descriptor such as "@daily"). Stop the returned scheduler on shutdown.
func StartMaintenance(spec string, migrator Migrator, logger *zap.Logger) (*cronlib.Cron, error) {
	c := cronlib.New()
	if _, err := c.AddFunc(spec, func() { runMigration(migrator, logger) }); err != nil {
		return nil, err
	}
	c.Start()
	logger.Info("Maintenance scheduler started", zap.String("migrationCron", spec))
	return c, nil
}

func runMigration(migrator Migrator, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	n, err := migrator.MigrateLegacy(ctx)
	if err != nil {
		logger.Error("Legacy slot migration failed", zap.Int("migrated", n), zap.Error(err))
		return
	}
	if n > 0 {
		logger.Info("Legacy slot migration done", zap.Int("migrated", n))
	}
}
