package domain

import "time"

type MessageID int64

type Message struct {
	ID        MessageID `db:"id"`
	ChatID    ChatID    `db:"chat_id"`
	SenderID  UserID    `db:"sender_id"`
	Content   *string   `db:"content"`
	ImageURL  *string   `db:"image_url"`
	CreatedAt time.Time `db:"created_at"`
}

// MessageDetailed — сообщение вместе с публичными полями отправителя.
type MessageDetailed struct {
	Message
	SenderUsername string
	SenderAvatar   *string
}

func (m *Message) Empty() bool {
	return (m.Content == nil || *m.Content == "") && (m.ImageURL == nil || *m.ImageURL == "")
}
