package postgres

import (
	"context"
	"errors"

	"github.com/social-wave/backend/internal/repository"

	"github.com/jackc/pgx/v5"
	pgconn "github.com/jackc/pgx/v5/pgconn"
)

/*
абстрактный слой над *pgxpool.Pool / pgx.Tx
чтобы запросы можно было делать атомарно а не по одному
*/
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// db — querier, умеющий открывать транзакции; ему удовлетворяют и пул, и pgx.Tx.
type db interface {
	querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		// 23505 - unique violation
		case "23505":
			return repository.ErrAlreadyExists
		// 23503 - foreign key violation: ссылка на несуществующую строку
		case "23503":
			return repository.ErrNotFound
		}
	}

	return err
}
