package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"eventboard/internal/domain"

	"github.com/google/uuid"
)

type userService struct {
	userRepo       domain.UserRepository
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewUserService returns the user service. Users are mirrored from the
// authentication provider and never mutated here.
func NewUserService(userRepo domain.UserRepository, logger *slog.Logger, timeout time.Duration) domain.UserService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if timeout <= 0 {
		timeout = defaultContextTimeout
	}
	return &userService{userRepo: userRepo, logger: logger, contextTimeout: timeout}
}

// SyncUser is idempotent per external auth id: a principal that was already
// synced is returned unchanged with created=false.
func (s *userService) SyncUser(ctx context.Context, user *domain.User) (*domain.User, bool, error) {
	const op = "SyncUser"
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	user.ExternalAuthID = strings.TrimSpace(user.ExternalAuthID)
	user.Email = strings.TrimSpace(strings.ToLower(user.Email))
	user.Username = strings.TrimSpace(user.Username)
	user.FirstName = strings.TrimSpace(user.FirstName)
	user.LastName = strings.TrimSpace(user.LastName)
	switch {
	case user.ExternalAuthID == "":
		return nil, false, logFailure(ctx, s.logger, op, domain.ValidationError("external_auth_id", "external auth id is required"))
	case user.Email == "":
		return nil, false, logFailure(ctx, s.logger, op, domain.ValidationError("email", "email is required"), "external_auth_id", user.ExternalAuthID)
	case user.Username == "":
		return nil, false, logFailure(ctx, s.logger, op, domain.ValidationError("username", "username is required"), "external_auth_id", user.ExternalAuthID)
	}

	existing, err := s.userRepo.GetByExternalAuthID(ctx, user.ExternalAuthID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, logFailure(ctx, s.logger, op, err, "external_auth_id", user.ExternalAuthID)
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, false, logFailure(ctx, s.logger, op, err, "external_auth_id", user.ExternalAuthID)
	}
	return user, true, nil
}

func (s *userService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	const op = "GetUser"
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !validID(id) {
		return nil, logFailure(ctx, s.logger, op, domain.ValidationError("id", "invalid id"), "user_id", id)
	}
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, logFailure(ctx, s.logger, op, err, "user_id", id)
	}
	return user, nil
}
