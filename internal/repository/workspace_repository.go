package repository

import (
	"context"

	"github.com/bagdasarian/timetrack/internal/domain"
)

type WorkspaceRepository interface {
	Create(ctx context.Context, workspace *domain.Workspace) error
	GetByID(ctx context.Context, id int64) (*domain.Workspace, error)
	UpdateName(ctx context.Context, id int64, name string) error
}

// MemberRepository опирается на уникальный индекс (workspace_id, user_id):
// Create возвращает domain.ErrConflict при повторном членстве.
type MemberRepository interface {
	Create(ctx context.Context, member *domain.WorkspaceMember) error
	GetByWorkspaceAndUsername(ctx context.Context, workspaceID int64, username string) (*domain.WorkspaceMember, error)
	ExistsByWorkspaceAndUsername(ctx context.Context, workspaceID int64, username string) (bool, error)
	ListByWorkspaceID(ctx context.Context, workspaceID int64) ([]*domain.WorkspaceMember, error)
	// ListByUsername возвращает workspace пользователя в порядке вступления
	ListByUsername(ctx context.Context, username string) ([]*domain.WorkspaceSummary, error)
	Delete(ctx context.Context, id int64) error
}
