package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/social-wave/backend/internal/domain"
	"github.com/social-wave/backend/internal/errs"
	"github.com/social-wave/backend/internal/repository"
	"github.com/social-wave/backend/internal/security"
)

type IdentityService struct {
	users      repository.UserRepository
	passPolicy security.PasswordConfig
	now        func() time.Time
}

func NewIdentityService(users repository.UserRepository, passPolicy security.PasswordConfig, now func() time.Time) *IdentityService {
	if now == nil {
		now = time.Now
	}

	return &IdentityService{
		users:      users,
		passPolicy: passPolicy,
		now:        now,
	}
}

// Register создает пользователя сразу в статусе онлайн.
func (s *IdentityService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	hash, err := security.HashPassword(password, &s.passPolicy)
	if err != nil {
		slog.Error("identity.register.hashPassword failed", slog.Any("err", err))
		return nil, err
	}

	u, err := domain.NewUser(username, email, hash, s.now())
	if err != nil {
		slog.Error("identity.register.newUser failed", slog.Any("err", err))
		return nil, err
	}

	id, err := s.users.Create(ctx, u)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, errs.ErrUserExists
		}
		slog.Error("identity.register.createUser failed", slog.Any("err", err))
		return nil, err
	}
	u.ID = id

	return u, nil
}

// Login аутентифицирует по email+пароль и помечает пользователя онлайн.
// Неизвестный email и неверный пароль дают один и тот же ответ.
func (s *IdentityService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		slog.Error("identity.login.getByEmail failed", slog.Any("err", err))
		return nil, err
	}

	if err := security.ComparePassword(u.PasswordHash, password); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	now := s.now()
	if err := s.users.SetOnline(ctx, u.ID, true, now); err != nil {
		slog.Error("identity.login.setOnline failed", slog.Any("err", err))
		return nil, err
	}
	u.IsOnline = true
	u.LastSeen = now

	return u, nil
}

// Logout снимает флаг онлайн; единственный путь, где is_online гаснет.
func (s *IdentityService) Logout(ctx context.Context, userID domain.UserID) error {
	err := s.users.SetOnline(ctx, userID, false, s.now())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errs.ErrUserNotFound
		}
		slog.Error("identity.logout.setOnline failed", slog.Any("err", err))
	}

	return err
}

func (s *IdentityService) UpdateProfile(ctx context.Context, userID domain.UserID, avatarURL *string) (*domain.User, error) {
	u, err := s.users.UpdateAvatar(ctx, userID, avatarURL)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errs.ErrUserNotFound
		}
		slog.Error("identity.updateProfile.updateAvatar failed", slog.Any("err", err))
		return nil, err
	}

	return u, nil
}

func (s *IdentityService) GetUser(ctx context.Context, userID domain.UserID) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errs.ErrUserNotFound
		}
		slog.Error("identity.getUser.getByID failed", slog.Any("err", err))
		return nil, err
	}

	return u, nil
}
