package postgres

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/bagdasarian/timetrack/internal/domain"
)

type workspaceActivityRepository struct {
	db *sql.DB
}

func NewWorkspaceActivityRepository(db *sql.DB) *workspaceActivityRepository {
	return &workspaceActivityRepository{db: db}
}

func (r *workspaceActivityRepository) Create(ctx context.Context, activity *domain.WorkspaceActivity) error {
	query, args, err := psql.Insert("workspace_activities").
		Columns("workspace_id", "user_id", "name", "category", "start_time", "end_time", "hours").
		Values(
			activity.WorkspaceID,
			activity.UserID,
			activity.Name,
			activity.Category,
			activity.StartTime,
			activity.EndTime,
			activity.Hours,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return err
	}

	err = executorFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(&activity.ID)
	return mapError(err, "workspace activity")
}

func (r *workspaceActivityRepository) GetByID(ctx context.Context, id int64) (*domain.WorkspaceActivity, error) {
	query, args, err := r.selectBuilder().Where(sq.Eq{"wa.id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	activity, err := scanWorkspaceActivity(executorFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, mapError(err, "workspace activity")
	}
	return activity, nil
}

func (r *workspaceActivityRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete("workspace_activities").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	result, err := executorFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return mapError(err, "workspace activity")
	}
	return affectedOrNotFound(result, "workspace activity")
}

func (r *workspaceActivityRepository) ListByUsername(ctx context.Context, username string) ([]*domain.WorkspaceActivity, error) {
	return r.list(ctx, sq.Eq{"u.username": username})
}

func (r *workspaceActivityRepository) ListByWorkspaceID(ctx context.Context, workspaceID int64) ([]*domain.WorkspaceActivity, error) {
	return r.list(ctx, sq.Eq{"wa.workspace_id": workspaceID})
}

func (r *workspaceActivityRepository) list(ctx context.Context, where sq.Eq) ([]*domain.WorkspaceActivity, error) {
	query, args, err := r.selectBuilder().
		Where(where).
		OrderBy("wa.start_time ASC", "wa.id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := executorFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "workspace activities")
	}
	defer rows.Close()

	activities := make([]*domain.WorkspaceActivity, 0)
	for rows.Next() {
		activity, err := scanWorkspaceActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}
	return activities, rows.Err()
}

func (r *workspaceActivityRepository) selectBuilder() sq.SelectBuilder {
	return psql.Select(
		"wa.id", "wa.workspace_id", "w.name", "wa.user_id", "u.username",
		"wa.name", "wa.category", "wa.start_time", "wa.end_time", "wa.hours",
	).
		From("workspace_activities wa").
		Join("workspaces w ON w.id = wa.workspace_id").
		Join("users u ON u.id = wa.user_id")
}

func scanWorkspaceActivity(row rowScanner) (*domain.WorkspaceActivity, error) {
	activity := &domain.WorkspaceActivity{}
	err := row.Scan(
		&activity.ID,
		&activity.WorkspaceID,
		&activity.WorkspaceName,
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
