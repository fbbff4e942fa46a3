// Package message provides business logic for posting, reading, editing and
// deleting messages.
package message

import (
	"context"
	"errors"
	"log/slog"

	"github.com/amirasaad/socialmedia/pkg/domain"
	"github.com/amirasaad/socialmedia/pkg/domain/message"
	"github.com/amirasaad/socialmedia/pkg/dto"
	"github.com/amirasaad/socialmedia/pkg/repository"
)

// Service enforces message validation and the author existence check.
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

// Create validates the text, checks that posted_by references an existing
// account and inserts the message.
func (s *Service) Create(
	ctx context.Context,
	in dto.MessageCreate,
) (out *dto.MessageRead, err error) {
	logger := s.logger.With("op", "create_message", "posted_by", in.PostedBy)

	candidate, err := message.New(in.PostedBy, in.MessageText, in.TimePostedEpoch)
	if err != nil {
		logger.Warn("Message rejected", "error", err)
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		author, err := accounts.Get(ctx, candidate.PostedBy)
		if err != nil {
			return err
		}
		if author == nil {
			return message.ErrAuthorNotFound
		}
		messages, err := uow.MessageRepository()
		if err != nil {
			return err
		}
		out, err = messages.Create(ctx, &dto.MessageCreate{
			PostedBy:        candidate.PostedBy,
			MessageText:     candidate.Text,
			TimePostedEpoch: candidate.TimePostedEpoch,
		})
		return err
	})
	if err != nil {
		s.logOutcome(logger, "Message rejected", "Message creation failed", err)
		return nil, err
	}

	logger.Info("Message created", "message_id", out.ID)
	return out, nil
}

// ListAll returns every message. The result is never nil.
func (s *Service) ListAll(ctx context.Context) (out []*dto.MessageRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.MessageRepository()
		if err != nil {
			return err
		}
		out, err = repo.List(ctx)
		return err
	})
	if err != nil {
		s.logger.Error("Listing messages failed", "error", err)
		return nil, err
	}
	if out == nil {
		out = []*dto.MessageRead{}
	}
	return out, nil
}

// Get returns the message with the given ID, or (nil, nil) when absent.
func (s *Service) Get(ctx context.Context, id int) (out *dto.MessageRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.MessageRepository()
		if err != nil {
			return err
		}
		out, err = repo.Get(ctx, id)
		return err
	})
	if err != nil {
		s.logger.Error("Fetching message failed", "message_id", id, "error", err)
		return nil, err
	}
	return out, nil
}

// ListByAuthor returns the messages posted by accountID. The result is never nil.
func (s *Service) ListByAuthor(
	ctx context.Context,
	accountID int,
) (out []*dto.MessageRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.MessageRepository()
		if err != nil {
			return err
		}
		out, err = repo.ListByAuthor(ctx, accountID)
		return err
	})
	if err != nil {
		s.logger.Error("Listing messages by author failed", "account_id", accountID, "error", err)
		return nil, err
	}
	if out == nil {
		out = []*dto.MessageRead{}
	}
	return out, nil
}

// UpdateText replaces message_text only. posted_by and time_posted_epoch are
// left untouched and the full updated message is returned.
func (s *Service) UpdateText(
	ctx context.Context,
	id int,
	in dto.MessageUpdate,
) (out *dto.MessageRead, err error) {
	logger := s.logger.With("op", "update_message", "message_id", id)

	if err := message.ValidateText(in.MessageText); err != nil {
		logger.Warn("Message update rejected", "error", err)
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.MessageRepository()
		if err != nil {
			return err
		}
		existing, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return message.ErrMessageNotFound
		}
		if err := repo.UpdateText(ctx, id, in.MessageText); err != nil {
			return err
		}
		updated := *existing
		updated.MessageText = in.MessageText
		out = &updated
		return nil
	})
	if err != nil {
		s.logOutcome(logger, "Message update rejected", "Message update failed", err)
		return nil, err
	}

	logger.Info("Message updated")
	return out, nil
}

// Delete removes the message and returns its state before deletion, or
// (nil, nil) when it did not exist.
func (s *Service) Delete(ctx context.Context, id int) (out *dto.MessageRead, err error) {
	logger := s.logger.With("op", "delete_message", "message_id", id)

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.MessageRepository()
		if err != nil {
			return err
		}
		out, err = repo.Get(ctx, id)
		if err != nil || out == nil {
			return err
		}
		return repo.Delete(ctx, id)
	})
	if err != nil {
		logger.Error("Message deletion failed", "error", err)
		return nil, err
	}

	if out != nil {
		logger.Info("Message deleted")
	}
	return out, nil
}

// logOutcome logs business rejections at warn level and everything else,
// storage failures included, at error level.
func (s *Service) logOutcome(logger *slog.Logger, rejected, failed string, err error) {
	if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrNotFound) {
		logger.Warn(rejected, "error", err)
		return
	}
	logger.Error(failed, "error", err)
}
