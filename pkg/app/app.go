package app

import (
	"context"
	"log/slog"

	"github.com/amirasaad/socialmedia/pkg/config"
	"github.com/amirasaad/socialmedia/pkg/repository"
	"github.com/amirasaad/socialmedia/pkg/service/account"
	"github.com/amirasaad/socialmedia/pkg/service/message"
)

// Deps contains the infrastructure the services are built from.
type Deps struct {
	Uow    repository.UnitOfWork
	Logger *slog.Logger
	// HealthCheck probes the database. Nil means always healthy.
	HealthCheck func(ctx context.Context) error
	// Close releases the database connection. May be nil.
	Close func() error
}

type App struct {
	Deps           *Deps
	Config         *config.App
	AccountService *account.Service
	MessageService *message.Service
}

func New(deps *Deps, cfg *config.App) *App {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &App{
		Deps:           deps,
		Config:         cfg,
		AccountService: account.New(deps.Uow, deps.Logger),
		MessageService: message.New(deps.Uow, deps.Logger),
	}
}

// Healthy reports whether the backing store answers.
func (a *App) Healthy(ctx context.Context) error {
	if a.Deps.HealthCheck == nil {
		return nil
	}
	return a.Deps.HealthCheck(ctx)
}
