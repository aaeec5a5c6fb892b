package postgres

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/bagdasarian/timetrack/internal/domain"
)

type memberRepository struct {
	db *sql.DB
}

func NewMemberRepository(db *sql.DB) *memberRepository {
	return &memberRepository{db: db}
}

// Create полагается на UNIQUE (workspace_id, user_id): гонка двух приглашений дает ErrConflict
func (r *memberRepository) Create(ctx context.Context, member *domain.WorkspaceMember) error {
	query, args, err := psql.Insert("workspace_members").
		Columns("workspace_id", "user_id", "role", "joined_at").
		Values(member.WorkspaceID, member.UserID, string(member.Role), member.JoinedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return err
	}

	err = executorFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(&member.ID)
	return mapError(err, "workspace member")
}

func (r *memberRepository) GetByWorkspaceAndUsername(ctx context.Context, workspaceID int64, username string) (*domain.WorkspaceMember, error) {
	query, args, err := r.selectBuilder().
		Where(sq.Eq{"m.workspace_id": workspaceID, "u.username": username}).
		ToSql()
	if err != nil {
		return nil, err
	}

	member, err := scanMember(executorFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, mapError(err, "workspace member")
	}
	return member, nil
}

func (r *memberRepository) ExistsByWorkspaceAndUsername(ctx context.Context, workspaceID int64, username string) (bool, error) {
	query, args, err := psql.Select("COUNT(1)").
		From("workspace_members m").
		Join("users u ON u.id = m.user_id").
		Where(sq.Eq{"m.workspace_id": workspaceID, "u.username": username}).
		ToSql()
	if err != nil {
		return false, err
	}

	var count int
	if err := executorFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, mapError(err, "workspace member")
	}
	return count > 0, nil
}

func (r *memberRepository) ListByWorkspaceID(ctx context.Context, workspaceID int64) ([]*domain.WorkspaceMember, error) {
	query, args, err := r.selectBuilder().
		Where(sq.Eq{"m.workspace_id": workspaceID}).
		OrderBy("m.joined_at ASC", "m.id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := executorFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "workspace members")
	}
	defer rows.Close()

	members := make([]*domain.WorkspaceMember, 0)
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, rows.Err()
}

func (r *memberRepository) ListByUsername(ctx context.Context, username string) ([]*domain.WorkspaceSummary, error) {
	query, args, err := psql.Select(
		"w.id", "w.name", "w.owner_id", "w.created_at", "m.role", "m.joined_at", "o.username",
	).
		From("workspace_members m").
		Join("workspaces w ON w.id = m.workspace_id").
		Join("users u ON u.id = m.user_id").
		Join("users o ON o.id = w.owner_id").
		Where(sq.Eq{"u.username": username}).
		OrderBy("m.joined_at ASC", "w.id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := executorFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "workspaces")
	}
	defer rows.Close()

	summaries := make([]*domain.WorkspaceSummary, 0)
	for rows.Next() {
		summary := &domain.WorkspaceSummary{}
		var role string
		err := rows.Scan(
			&summary.Workspace.ID,
			&summary.Workspace.Name,
			&summary.Workspace.OwnerID,
			&summary.Workspace.CreatedAt,
			&role,
			&summary.JoinedAt,
			&summary.OwnerUsername,
		)
		if err != nil {
			return nil, err
		}
		summary.Role = domain.Role(role)
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}

func (r *memberRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete("workspace_members").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	result, err := executorFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return mapError(err, "workspace member")
	}
	return affectedOrNotFound(result, "workspace member")
}

func (r *memberRepository) selectBuilder() sq.SelectBuilder {
	return psql.Select(
		"m.id", "m.workspace_id", "m.user_id", "u.username", "u.display_name", "m.role", "m.joined_at",
	).
		From("workspace_members m").
		Join("users u ON u.id = m.user_id")
}

func scanMember(row rowScanner) (*domain.WorkspaceMember, error) {
	member := &domain.WorkspaceMember{}
	var role string
	err := row.Scan(
		&member.ID,
		&member.WorkspaceID,
		&member.UserID,
		&member.Username,
		&member.DisplayName,
		&role,
		&member.JoinedAt,
	)
	if err != nil {
		return nil, err
	}
	member.Role = domain.Role(role)
	return member, nil
}
