package repository

import (
	"context"

	"github.com/social-wave/backend/internal/domain"
)

type MessageRepository interface {
	// Save вставляет сообщение и заполняет серверные поля (id, created_at).
	Save(ctx context.Context, m *domain.Message) error
	// SaveWithAutoReply вставляет сообщение и, если replyFrom состоит в чате,
	// в той же транзакции добавляет ответ от его имени с текстом replyText.
	SaveWithAutoReply(ctx context.Context, m *domain.Message, replyFrom domain.UserID, replyText string) (replied bool, err error)
	ListByChat(ctx context.Context, chatID domain.ChatID) ([]domain.MessageDetailed, error)
}
