package postgres

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/bagdasarian/timetrack/internal/domain"
)

type workspaceRepository struct {
	db *sql.DB
}

func NewWorkspaceRepository(db *sql.DB) *workspaceRepository {
	return &workspaceRepository{db: db}
}

func (r *workspaceRepository) Create(ctx context.Context, workspace *domain.Workspace) error {
	query, args, err := psql.Insert("workspaces").
		Columns("name", "owner_id", "created_at").
		Values(workspace.Name, workspace.OwnerID, workspace.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return err
	}

	err = executorFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(&workspace.ID)
	return mapError(err, "workspace")
}

func (r *workspaceRepository) GetByID(ctx context.Context, id int64) (*domain.Workspace, error) {
	query, args, err := psql.Select("id", "name", "owner_id", "created_at").
		From("workspaces").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	workspace := &domain.Workspace{}
	err = executorFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(
		&workspace.ID,
		&workspace.Name,
		&workspace.OwnerID,
		&workspace.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err, "workspace")
	}
	return workspace, nil
}

func (r *workspaceRepository) UpdateName(ctx context.Context, id int64, name string) error {
	query, args, err := psql.Update("workspaces").
		Set("name", name).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	result, err := executorFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return mapError(err, "workspace")
	}
	return affectedOrNotFound(result, "workspace")
}
