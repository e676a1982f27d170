package domain

import (
	"strings"
	"time"

	"github.com/social-wave/backend/internal/errs"
)

type UserID int64

type User struct {
	ID           UserID
	Username     string
	Email        string
	PasswordHash string
	AvatarURL    *string
	IsOnline     bool
	LastSeen     time.Time
}

// Создает нового пользователя
// Ожидает уже посчитанный хеш пароля
func NewUser(username, email, passwordHash string, now time.Time) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errs.ErrEmptyUsername
	}
	email = normalizeEmail(email)
	if email == "" {
		return nil, errs.ErrInvalidEmail
	}
	if strings.TrimSpace(passwordHash) == "" {
		return nil, errs.ErrEmptyPasswordHash
	}

	return &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		IsOnline:     true,
		LastSeen:     now,
	}, nil
}

func (u *User) SetAvatarURL(url *string) {
	u.AvatarURL = trimPtr(url)
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	t := strings.TrimSpace(*p)
	if t == "" {
		return nil
	}

	return &t
}
