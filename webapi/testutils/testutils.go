// Package testutils builds a fully wired API on an in-memory SQLite database
// for HTTP tests.
package testutils

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/amirasaad/socialmedia/infra"
	infrarepo "github.com/amirasaad/socialmedia/infra/repository"
	"github.com/amirasaad/socialmedia/internal/migrations"
	"github.com/amirasaad/socialmedia/pkg/app"
	"github.com/amirasaad/socialmedia/pkg/config"
	"github.com/amirasaad/socialmedia/webapi"
	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TestingT is the subset of *testing.T the helpers need.
type TestingT interface {
	require.TestingT
	Helper()
	Cleanup(func())
}

// TestConfig returns a config pointing at a fresh, uniquely named in-memory
// SQLite database with a generous rate limit.
func TestConfig() *config.App {
	return &config.App{
		Env:    "test",
		Server: &config.Server{Scheme: "http", Host: "localhost", Port: 0},
		Log:    &config.Log{Format: "text"},
		DB: &config.DB{
			Url:         "file:" + uuid.NewString() + "?mode=memory&cache=shared",
			AutoMigrate: true,
		},
		RateLimit: &config.RateLimit{MaxRequests: 10000, Window: time.Minute},
	}
}

// NewApp opens cfg's database, migrates it and returns the HTTP app plus the
// service container. The database is closed on test cleanup.
func NewApp(t TestingT, cfg *config.App) (*fiber.App, *app.App, *gorm.DB) {
	t.Helper()
	logger := slog.New(log.New(io.Discard))

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	dialect, err := infra.DialectOf(cfg.DB.Url)
	require.NoError(t, err)
	require.NoError(t, migrations.Up(context.Background(), db, dialect, logger))

	a := app.New(&app.Deps{
		Uow:         infrarepo.NewUoW(db),
		Logger:      logger,
		HealthCheck: infra.PingFunc(db),
		Close:       sqlDB.Close,
	}, cfg)
	return webapi.SetupApp(a), a, db
}

// MakeRequest sends method path with an optional JSON body through app.Test.
func MakeRequest(t TestingT, fiberApp *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := fiberApp.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

// ReadBody returns the full response body.
func ReadBody(t TestingT, resp *http.Response) []byte {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return body
}

// DecodeJSON unmarshals the response body into a new T.
func DecodeJSON[T any](t TestingT, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(ReadBody(t, resp), &out))
	return out
}

// E2ETestSuite gives each test a fresh API on its own database.
type E2ETestSuite struct {
	suite.Suite
	App *fiber.App
	Svc *app.App
	DB  *gorm.DB
	Cfg *config.App
}

// SetupTest builds the app for the current test.
func (s *E2ETestSuite) SetupTest() {
	s.Cfg = TestConfig()
	s.App, s.Svc, s.DB = NewApp(s.T(), s.Cfg)
}

// Request sends a request to the suite's app.
func (s *E2ETestSuite) Request(method, path, body string) *http.Response {
	return MakeRequest(s.T(), s.App, method, path, body)
}
