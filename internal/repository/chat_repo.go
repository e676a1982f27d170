package repository

import (
	"context"

	"github.com/social-wave/backend/internal/domain"
)

type ChatRepository interface {
	// GetOrCreateDirect возвращает id существующего 1:1 чата между двумя
	// пользователями или создает новый вместе с обоими участниками.
	// created = true, если чат был создан этим вызовом.
	GetOrCreateDirect(ctx context.Context, a, b domain.UserID) (id domain.ChatID, created bool, err error)
	ListByUser(ctx context.Context, userID domain.UserID) ([]domain.ChatSummary, error)
}
