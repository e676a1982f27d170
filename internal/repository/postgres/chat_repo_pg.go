package postgres

import (
	"context"
	"errors"

	"github.com/social-wave/backend/internal/domain"
	"github.com/social-wave/backend/internal/repository/queries"

	"github.com/jackc/pgx/v5"
)

type ChatRepo struct {
	db db
}

func NewChatRepo(db db) *ChatRepo {
	return &ChatRepo{db: db}
}

// GetOrCreateDirect — защищён от гонок advisory-локом на нормализованную пару:
// две параллельные транзакции по одной и той же паре берут один и тот же лок,
// так что повторная первая отправка не создаст второй чат.
func (r *ChatRepo) GetOrCreateDirect(ctx context.Context, a, b domain.UserID) (domain.ChatID, bool, error) {
	if a > b {
		a, b = b, a
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, false, err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, queries.QueryLockDirectPair, int64(a), int64(b)); err != nil {
		return 0, false, mapPgError(err)
	}

	var id int64
	err = tx.QueryRow(ctx, queries.QueryFindDirectChat, a, b).Scan(&id)
	if err == nil {
		if err := tx.Commit(ctx); err != nil {
			return 0, false, err
		}
		return domain.ChatID(id), false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, false, mapPgError(err)
	}

	if err := tx.QueryRow(ctx, queries.QueryCreateChat).Scan(&id); err != nil {
		return 0, false, mapPgError(err)
	}
	if _, err := tx.Exec(ctx, queries.QueryAddParticipants, id, a, b); err != nil {
		return 0, false, mapPgError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, false, err
	}

	return domain.ChatID(id), true, nil
}

func (r *ChatRepo) ListByUser(ctx context.Context, userID domain.UserID) ([]domain.ChatSummary, error) {
	rows, err := r.db.Query(ctx, queries.QueryListUserChats, userID)
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()

	var list []domain.ChatSummary
	for rows.Next() {
		var s domain.ChatSummary
		if err := rows.Scan(
			&s.ChatID,
			&s.CreatedAt,
			&s.OtherUserID,
			&s.OtherUsername,
			&s.OtherAvatar,
			&s.OtherIsOnline,
			&s.LastMessage,
			&s.LastMessageAt,
		); err != nil {
			return nil, err
		}
		list = append(list, s)
	}

	return list, rows.Err()
}
