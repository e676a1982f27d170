package postgres

import (
	"context"
	"time"

	"github.com/social-wave/backend/internal/domain"
	"github.com/social-wave/backend/internal/repository/queries"
)

type MessageRepo struct {
	db db
}

func NewMessageRepo(db db) *MessageRepo {
	return &MessageRepo{db: db}
}

func (r *MessageRepo) Save(ctx context.Context, m *domain.Message) error {
	err := r.db.QueryRow(
		ctx,
		queries.QueryCreateMessage,
		m.ChatID,
		m.SenderID,
		m.Content,
		m.ImageURL,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return mapPgError(err)
	}

	return nil
}

// SaveWithAutoReply — сообщение и ответ пишутся в одной транзакции: частичный
// сбой не оставит сообщение без обещанного ответа.
func (r *MessageRepo) SaveWithAutoReply(ctx context.Context, m *domain.Message, replyFrom domain.UserID, replyText string) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(
		ctx,
		queries.QueryCreateMessage,
		m.ChatID,
		m.SenderID,
		m.Content,
		m.ImageURL,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return false, mapPgError(err)
	}

	var present bool
	if err := tx.QueryRow(ctx, queries.QueryIsParticipant, m.ChatID, replyFrom).Scan(&present); err != nil {
		return false, mapPgError(err)
	}

	replied := false
	if present {
		var id int64
		var createdAt time.Time
		err := tx.QueryRow(
			ctx,
			queries.QueryCreateMessage,
			m.ChatID,
			replyFrom,
			replyText,
			nil,
		).Scan(&id, &createdAt)
		if err != nil {
			return false, mapPgError(err)
		}
		replied = true
	}

	if err := tx.Commit(ctx); err != nil {
		return false, err
	}

	return replied, nil
}

func (r *MessageRepo) ListByChat(ctx context.Context, chatID domain.ChatID) ([]domain.MessageDetailed, error) {
	rows, err := r.db.Query(ctx, queries.QueryListChatMessages, chatID)
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()

	var list []domain.MessageDetailed
	for rows.Next() {
		var m domain.MessageDetailed
		if err := rows.Scan(
			&m.ID,
			&m.ChatID,
			&m.SenderID,
			&m.Content,
			&m.ImageURL,
			&m.CreatedAt,
			&m.SenderUsername,
			&m.SenderAvatar,
		); err != nil {
			return nil, err
		}
		list = append(list, m)
	}

	return list, rows.Err()
}
