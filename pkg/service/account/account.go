// Package account provides registration and login for accounts.
package account

import (
	"context"
	"errors"
	"log/slog"

	"github.com/amirasaad/socialmedia/pkg/domain"
	"github.com/amirasaad/socialmedia/pkg/domain/account"
	"github.com/amirasaad/socialmedia/pkg/dto"
	"github.com/amirasaad/socialmedia/pkg/repository"
)

// Service enforces the registration and login rules for accounts.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a new Service with a UnitOfWork and logger.
func New(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:    uow,
		logger: logger,
	}
}

// Register validates the candidate, checks the username is free and inserts
// the account. Rejections return an error wrapping domain.ErrValidation or
// domain.ErrAlreadyExists; nothing is written in that case.
func (s *Service) Register(
	ctx context.Context,
	in dto.AccountCreate,
) (out *dto.AccountRead, err error) {
	logger := s.logger.With("op", "register", "username", in.Username)

	candidate, err := account.New(in.Username, in.Password)
	if err != nil {
		logger.Warn("Registration rejected", "error", err)
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		existing, err := repo.GetByUsername(ctx, candidate.Username)
		if err != nil {
			return err
		}
		if existing != nil {
			return account.ErrUsernameTaken
		}
		out, err = repo.Create(ctx, &dto.AccountCreate{
			Username: candidate.Username,
			Password: candidate.Password,
		})
		return err
	})
	// A concurrent registration can pass the lookup above; the unique index
	// then reports domain.ErrAlreadyExists.
	if errors.Is(err, domain.ErrAlreadyExists) && !errors.Is(err, account.ErrUsernameTaken) {
		err = account.ErrUsernameTaken
	}
	if err != nil {
		if errors.Is(err, account.ErrUsernameTaken) {
			logger.Warn("Registration rejected", "error", err)
		} else {
			logger.Error("Registration failed", "error", err)
		}
		return nil, err
	}

	logger.Info("Account registered", "account_id", out.ID)
	return out, nil
}

// Login returns the stored account when the username exists and the password
// matches exactly. Any mismatch returns account.ErrInvalidCredentials.
func (s *Service) Login(
	ctx context.Context,
	in dto.AccountCredentials,
) (out *dto.AccountRead, err error) {
	logger := s.logger.With("op", "login", "username", in.Username)

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		stored, err := repo.GetByUsername(ctx, in.Username)
		if err != nil {
			return err
		}
		if stored == nil {
			return account.ErrInvalidCredentials
		}
		acc := account.NewFromData(stored.ID, stored.Username, stored.Password)
		if !acc.Matches(in.Password) {
			return account.ErrInvalidCredentials
		}
		out = stored
		return nil
	})
	if err != nil {
		if errors.Is(err, account.ErrInvalidCredentials) {
			logger.Warn("Login rejected")
		} else {
			logger.Error("Login failed", "error", err)
		}
		return nil, err
	}

	logger.Debug("Login succeeded", "account_id", out.ID)
	return out, nil
}
