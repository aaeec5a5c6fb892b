package postgres

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
)

// DBExecutor реализуют и *sql.DB, и *sql.Tx
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type txCtxKey struct{}

func withTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txCtxKey{}, tx)
}

func txFromCtx(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txCtxKey{}).(*sql.Tx)
	return tx, ok
}

// executorFromCtx возвращает транзакцию из контекста, если она есть, иначе db
func executorFromCtx(ctx context.Context, db *sql.DB) DBExecutor {
	if tx, ok := txFromCtx(ctx); ok {
		return tx
	}
	return db
}

func affectedOrNotFound(result sql.Result, entity string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return mapError(sql.ErrNoRows, entity)
	}
	return nil
}
