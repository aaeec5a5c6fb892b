package postgres

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/bagdasarian/timetrack/internal/domain"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *userRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query, args, err := psql.Insert("users").
		Columns("username", "display_name", "password_hash", "created_at").
		Values(user.Username, user.DisplayName, user.PasswordHash, time.Now()).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return err
	}

	err = executorFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.CreatedAt)
	return mapError(err, "user")
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	query, args, err := psql.Update("users").
		Set("username", user.Username).
		Set("display_name", user.DisplayName).
		Set("password_hash", user.PasswordHash).
		Where(sq.Eq{"id": user.ID}).
		ToSql()
	if err != nil {
		return err
	}

	result, err := executorFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return mapError(err, "user")
	}
	return affectedOrNotFound(result, "user")
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, sq.Eq{"id": id})
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, sq.Eq{"username": username})
}

func (r *userRepository) getOne(ctx context.Context, where sq.Eq) (*domain.User, error) {
	query, args, err := psql.Select("id", "username", "display_name", "password_hash", "created_at").
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return nil, err
	}

	user := &domain.User{}
	err = executorFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Username,
		&user.DisplayName,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err, "user")
	}
	return user, nil
}
