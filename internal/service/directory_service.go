package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/social-wave/backend/internal/domain"
	"github.com/social-wave/backend/internal/repository"
)

type DirectoryService struct {
	users repository.UserRepository
}

func NewDirectoryService(users repository.UserRepository) *DirectoryService {
	return &DirectoryService{users: users}
}

// List возвращает каталог пользователей; search фильтрует по подстроке
// в username/email без учета регистра.
func (s *DirectoryService) List(ctx context.Context, search string) ([]domain.User, error) {
	users, err := s.users.List(ctx, strings.TrimSpace(search))
	if err != nil {
		slog.Error("directory.list failed", slog.Any("err", err))
		return nil, err
	}

	return users, nil
}
