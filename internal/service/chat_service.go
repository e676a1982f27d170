package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/social-wave/backend/internal/domain"
	"github.com/social-wave/backend/internal/errs"
	"github.com/social-wave/backend/internal/repository"
)

// Ассистент не отвечает по существу: фиксированная заглушка вместо ответа.
const assistantReply = "Извините, я не могу отвечать на сообщения."

type ChatService struct {
	chats       repository.ChatRepository
	messages    repository.MessageRepository
	assistantID domain.UserID
	now         func() time.Time
}

func NewChatService(
	chats repository.ChatRepository,
	messages repository.MessageRepository,
	assistantID domain.UserID,
	now func() time.Time,
) *ChatService {
	if now == nil {
		now = time.Now
	}

	return &ChatService{
		chats:       chats,
		messages:    messages,
		assistantID: assistantID,
		now:         now,
	}
}

// CreateOrGetChat идемпотентен и не зависит от порядка аргументов:
// (A,B) и (B,A) дают один и тот же чат.
func (s *ChatService) CreateOrGetChat(ctx context.Context, user1, user2 domain.UserID) (domain.ChatID, error) {
	if user1 <= 0 || user2 <= 0 || user1 == user2 {
		return 0, errs.ErrInvalidInput
	}

	id, created, err := s.chats.GetOrCreateDirect(ctx, user1, user2)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// один из участников не существует
			return 0, errs.ErrUserNotFound
		}
		slog.Error("chat.createOrGet failed", slog.Any("err", err))
		return 0, err
	}
	if created {
		slog.Info("direct chat created", "chat_id", int64(id), "user1", int64(user1), "user2", int64(user2))
	}

	return id, nil
}

// SendMessage сохраняет сообщение; если ассистент состоит в чате и пишет не он
// сам, в той же транзакции добавляется его заглушка-ответ.
func (s *ChatService) SendMessage(ctx context.Context, chatID domain.ChatID, senderID domain.UserID, content, imageURL *string) (*domain.Message, error) {
	if chatID <= 0 || senderID <= 0 {
		return nil, errs.ErrInvalidInput
	}

	m := &domain.Message{
		ChatID:   chatID,
		SenderID: senderID,
		Content:  content,
		ImageURL: imageURL,
	}
	if m.Empty() {
		return nil, errs.ErrEmptyMessage
	}

	var err error
	if senderID == s.assistantID {
		err = s.messages.Save(ctx, m)
	} else {
		_, err = s.messages.SaveWithAutoReply(ctx, m, s.assistantID, assistantReply)
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errs.ErrChatNotFound
		}
		slog.Error("chat.sendMessage failed", slog.Any("err", err))
		return nil, err
	}

	return m, nil
}

func (s *ChatService) UserChats(ctx context.Context, userID domain.UserID) ([]domain.ChatSummary, error) {
	if userID <= 0 {
		return nil, errs.ErrInvalidInput
	}

	list, err := s.chats.ListByUser(ctx, userID)
	if err != nil {
		slog.Error("chat.userChats failed", slog.Any("err", err))
		return nil, err
	}

	return list, nil
}

func (s *ChatService) Messages(ctx context.Context, chatID domain.ChatID) ([]domain.MessageDetailed, error) {
	if chatID <= 0 {
		return nil, errs.ErrInvalidInput
	}

	list, err := s.messages.ListByChat(ctx, chatID)
	if err != nil {
		slog.Error("chat.messages failed", slog.Any("err", err))
		return nil, err
	}

	return list, nil
}
