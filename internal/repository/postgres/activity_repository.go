package postgres

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/bagdasarian/timetrack/internal/domain"
)

type activityRepository struct {
	db *sql.DB
}

func NewActivityRepository(db *sql.DB) *activityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	query, args, err := psql.Insert("activities").
		Columns("user_id", "name", "category", "start_time", "end_time", "hours").
		Values(activity.UserID, activity.Name, activity.Category, activity.StartTime, activity.EndTime, activity.Hours).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return err
	}

	err = executorFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(&activity.ID)
	return mapError(err, "activity")
}

func (r *activityRepository) GetByID(ctx context.Context, id int64) (*domain.Activity, error) {
	query, args, err := r.selectBuilder().Where(sq.Eq{"a.id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	activity, err := scanActivity(executorFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, mapError(err, "activity")
	}
	return activity, nil
}

func (r *activityRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete("activities").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	result, err := executorFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return mapError(err, "activity")
	}
	return affectedOrNotFound(result, "activity")
}

func (r *activityRepository) ListByUsername(ctx context.Context, username string) ([]*domain.Activity, error) {
	query, args, err := r.selectBuilder().
		Where(sq.Eq{"u.username": username}).
		OrderBy("a.start_time ASC", "a.id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := executorFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "activities")
	}
	defer rows.Close()

	activities := make([]*domain.Activity, 0)
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}
	return activities, rows.Err()
}

func (r *activityRepository) selectBuilder() sq.SelectBuilder {
	return psql.Select("a.id", "a.user_id", "u.username", "a.name", "a.category", "a.start_time", "a.end_time", "a.hours").
		From("activities a").
		Join("users u ON u.id = a.user_id")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanActivity(row rowScanner) (*domain.Activity, error) {
	activity := &domain.Activity{}
	err := row.Scan(
		&activity.ID,
		&activity.UserID,
		&activity.Username,
		&activity.Name,
		&activity.Category,
		&activity.StartTime,
		&activity.EndTime,
		&activity.Hours,
	)
	if err != nil {
		return nil, err
	}
	return activity, nil
}
