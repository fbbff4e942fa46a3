package infra

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amirasaad/socialmedia/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Dialect names returned by DialectOf.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// DialectOf picks the SQL dialect from the database URL scheme.
func DialectOf(databaseUrl string) (string, error) {
	switch {
	case strings.HasPrefix(databaseUrl, "postgres://"),
		strings.HasPrefix(databaseUrl, "postgresql://"):
		return DialectPostgres, nil
	case strings.HasPrefix(databaseUrl, "sqlite://"),
		strings.HasPrefix(databaseUrl, "file:"):
		return DialectSQLite, nil
	default:
		return "", fmt.Errorf("unsupported DATABASE_URL scheme: %q", databaseUrl)
	}
}

// NewDBConnection opens the database named by cnf.Url. SQLite databases are
// limited to a single connection so that in-memory databases are shared.
func NewDBConnection(
	cnf *config.DB,
	appEnv string,
) (*gorm.DB, error) {
	databaseUrl := cnf.Url
	if databaseUrl == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}
	dialect, err := DialectOf(databaseUrl)
	if err != nil {
		return nil, err
	}

	var logMode logger.LogLevel
	if appEnv == "development" {
		logMode = logger.Info
	} else {
		logMode = logger.Silent
	}

	var dialector gorm.Dialector
	switch dialect {
	case DialectPostgres:
		dialector = postgres.Open(databaseUrl)
	case DialectSQLite:
		dialector = sqlite.Open(strings.TrimPrefix(databaseUrl, "sqlite://"))
	}

	connection, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	if dialect == DialectSQLite {
		sqlDB.SetMaxOpenConns(1)
		if err := connection.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, err
		}
		return connection, nil
	}
	sqlDB.SetMaxOpenConns(cnf.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cnf.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cnf.ConnMaxLifetime)

	return connection, nil
}

// PingFunc returns a health probe for the connection pool behind db.
func PingFunc(db *gorm.DB) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}
