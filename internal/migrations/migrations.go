// Package migrations applies the embedded SQL schema migrations.
package migrations

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// Up applies all pending migrations for dialect ("postgres" or "sqlite").
// The underlying *sql.DB stays open.
func Up(ctx context.Context, db *gorm.DB, dialect string, logger *slog.Logger) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	source, err := iofs.New(files, dialect)
	if err != nil {
		return fmt.Errorf("migration source %q: %w", dialect, err)
	}

	var driver database.Driver
	switch dialect {
	case "postgres":
		// A dedicated connection keeps the pool open when the driver is released.
		conn, err := sqlDB.Conn(ctx)
		if err != nil {
			return err
		}
		defer conn.Close() //nolint:errcheck
		driver, err = migratepostgres.WithConnection(ctx, conn, &migratepostgres.Config{})
		if err != nil {
			return err
		}
	case "sqlite":
		driver, err = migratesqlite.WithInstance(sqlDB, &migratesqlite.Config{})
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported migration dialect: %q", dialect)
	}

	m, err := migrate.NewWithInstance("iofs", source, dialect, driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Debug("Schema up to date", "dialect", dialect)
		return nil
	}
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, _, _ := m.Version()
	logger.Info("Schema migrated", "dialect", dialect, "version", version)
	return nil
}
