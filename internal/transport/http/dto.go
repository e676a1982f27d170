package http

import (
	"time"

	"github.com/social-wave/backend/internal/domain"
)

// authRequest — тело POST/PUT /auth; поля зависят от action.
type authRequest struct {
	Action    string  `json:"action"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	UserID    int64   `json:"user_id"`
	AvatarURL *string `json:"avatar_url"`
}

// chatRequest — тело POST /chats; поля зависят от action.
type chatRequest struct {
	Action   string  `json:"action"`
	User1ID  int64   `json:"user1_id"`
	User2ID  int64   `json:"user2_id"`
	ChatID   int64   `json:"chat_id"`
	SenderID int64   `json:"sender_id"`
	Content  *string `json:"content"`
	ImageURL *string `json:"image_url"`
}

// userItem — публичная проекция пользователя; хеш пароля наружу не уходит.
type userItem struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	AvatarURL *string    `json:"avatar_url"`
	IsOnline  bool       `json:"is_online"`
	LastSeen  *time.Time `json:"last_seen,omitempty"`
}

func toUserItem(u *domain.User, withLastSeen bool) userItem {
	item := userItem{
		ID:        int64(u.ID),
		Username:  u.Username,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
		IsOnline:  u.IsOnline,
	}
	if withLastSeen {
		ls := u.LastSeen
		item.LastSeen = &ls
	}
	return item
}

type chatItem struct {
	ID            int64      `json:"id"`
	CreatedAt     time.Time  `json:"created_at"`
	OtherUserID   int64      `json:"other_user_id"`
	OtherUsername string     `json:"other_username"`
	OtherAvatar   *string    `json:"other_avatar"`
	OtherIsOnline bool       `json:"other_is_online"`
	LastMessage   *string    `json:"last_message"`
	LastMessageAt *time.Time `json:"last_message_at,omitempty"`
}

func toChatItem(s domain.ChatSummary) chatItem {
	return chatItem{
		ID:            int64(s.ChatID),
		CreatedAt:     s.CreatedAt,
		OtherUserID:   int64(s.OtherUserID),
		OtherUsername: s.OtherUsername,
		OtherAvatar:   s.OtherAvatar,
		OtherIsOnline: s.OtherIsOnline,
		LastMessage:   s.LastMessage,
		LastMessageAt: s.LastMessageAt,
	}
}

type messageItem struct {
	ID        int64     `json:"id"`
	ChatID    int64     `json:"chat_id"`
	SenderID  int64     `json:"sender_id"`
	Content   *string   `json:"content"`
	ImageURL  *string   `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	Username  string    `json:"username,omitempty"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
}

func toMessageItem(m domain.Message) messageItem {
	return messageItem{
		ID:        int64(m.ID),
		ChatID:    int64(m.ChatID),
		SenderID:  int64(m.SenderID),
		Content:   m.Content,
		ImageURL:  m.ImageURL,
		CreatedAt: m.CreatedAt,
	}
}

func toMessageItemDetailed(m domain.MessageDetailed) messageItem {
	item := toMessageItem(m.Message)
	item.Username = m.SenderUsername
	item.AvatarURL = m.SenderAvatar
	return item
}
