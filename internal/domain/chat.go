package domain

import "time"

type ChatID int64

type Chat struct {
	ID        ChatID    `db:"id"`
	IsGroup   bool      `db:"is_group"`
	CreatedAt time.Time `db:"created_at"`
}

// ChatSummary — строка списка чатов пользователя: сам чат,
// публичный профиль собеседника и последнее сообщение.
type ChatSummary struct {
	ChatID        ChatID
	CreatedAt     time.Time
	OtherUserID   UserID
	OtherUsername string
	OtherAvatar   *string
	OtherIsOnline bool
	LastMessage   *string
	LastMessageAt *time.Time
}
