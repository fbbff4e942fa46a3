package initializer

import (
	"context"
	"fmt"

	"github.com/amirasaad/socialmedia/infra"
	infra_repository "github.com/amirasaad/socialmedia/infra/repository"
	"github.com/amirasaad/socialmedia/internal/migrations"
	"github.com/amirasaad/socialmedia/pkg/app"
	"github.com/amirasaad/socialmedia/pkg/config"
)

// InitializeDependencies sets up logging, opens the database, applies
// migrations when enabled and builds the unit of work.
func InitializeDependencies(cfg *config.App) (
	deps *app.Deps,
	err error,
) {
	deps = &app.Deps{}
	logger := setupLogger(cfg.Log)
	deps.Logger = logger

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	deps.Close = sqlDB.Close
	deps.HealthCheck = infra.PingFunc(db)

	if cfg.DB.AutoMigrate {
		dialect, err := infra.DialectOf(cfg.DB.Url)
		if err != nil {
			return nil, err
		}
		if err := migrations.Up(context.Background(), db, dialect, logger); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	deps.Uow = infra_repository.NewUoW(db)
	return deps, nil
}
