package migrations

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(
		sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestUp_SQLite(t *testing.T) {
	t.Parallel()
	db := openSQLite(t)
	ctx := context.Background()

	require.NoError(t, Up(ctx, db, "sqlite", slog.Default()))
	assert.True(t, db.Migrator().HasTable("account"))
	assert.True(t, db.Migrator().HasTable("message"))

	// Running again is a no-op.
	require.NoError(t, Up(ctx, db, "sqlite", slog.Default()))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.PingContext(ctx))
}

func TestUp_UnknownDialect(t *testing.T) {
	t.Parallel()
	db := openSQLite(t)

	require.Error(t, Up(context.Background(), db, "mysql", slog.Default()))
}
