package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/social-wave/backend/internal/domain"
	"github.com/social-wave/backend/internal/repository"
	"github.com/social-wave/backend/internal/repository/queries"

	"github.com/jackc/pgx/v5"
)

type UserRepo struct {
	q querier
}

// NewUserRepoFromPool - конструктор от пула (*pgxpool.Pool)
func NewUserRepoFromPool(q querier) *UserRepo {
	return &UserRepo{q: q}
}

// NewUserRepoFromTx - конструктор от транзакции (pgx.Tx)
func NewUserRepoFromTx(tx pgx.Tx) *UserRepo {
	return &UserRepo{q: tx}
}

func (r *UserRepo) Create(ctx context.Context, u *domain.User) (domain.UserID, error) {
	var id int64
	err := r.q.QueryRow(
		ctx,
		queries.QueryCreateUser,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.LastSeen,
	).Scan(&id)
	if err != nil {
		return 0, mapPgError(err)
	}

	return domain.UserID(id), nil
}

func (r *UserRepo) GetByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return r.getOne(ctx, queries.QueryGetUserByID, id)
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, queries.QueryGetUserByEmail, email)
}

func (r *UserRepo) List(ctx context.Context, search string) ([]domain.User, error) {
	var rows pgx.Rows
	var err error
	if search == "" {
		rows, err = r.q.Query(ctx, queries.QueryListUsers)
	} else {
		rows, err = r.q.Query(ctx, queries.QuerySearchUsers, "%"+search+"%")
	}
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := scanUser(rows, &u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

func (r *UserRepo) SetOnline(ctx context.Context, id domain.UserID, online bool, now time.Time) error {
	tag, err := r.q.Exec(ctx, queries.QuerySetOnline, id, online, now)
	if err != nil {
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *UserRepo) UpdateAvatar(ctx context.Context, id domain.UserID, avatarURL *string) (*domain.User, error) {
	var u domain.User
	err := scanUser(r.q.QueryRow(ctx, queries.QueryUpdateAvatar, id, avatarURL), &u)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, mapPgError(err)
	}

	return &u, nil
}

func (r *UserRepo) getOne(ctx context.Context, sql string, arg any) (*domain.User, error) {
	var u domain.User
	err := scanUser(r.q.QueryRow(ctx, sql, arg), &u)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, mapPgError(err)
	}

	return &u, nil
}

func scanUser(row pgx.Row, u *domain.User) error {
	return row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.AvatarURL,
		&u.IsOnline,
		&u.LastSeen,
	)
}
