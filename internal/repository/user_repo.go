package repository

import (
	"context"
	"time"

	"github.com/social-wave/backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (domain.UserID, error)
	GetByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// List возвращает всех пользователей, либо отфильтрованных по подстроке
	// в username/email (без учета регистра). Онлайн — первыми, далее по имени.
	List(ctx context.Context, search string) ([]domain.User, error)
	SetOnline(ctx context.Context, id domain.UserID, online bool, now time.Time) error
	UpdateAvatar(ctx context.Context, id domain.UserID, avatarURL *string) (*domain.User, error)
}
