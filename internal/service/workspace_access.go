package service

import (
	"context"

	"github.com/bagdasarian/timetrack/internal/domain"
)

// WorkspaceAccess - единая точка проверки членства и ролей в workspace
type WorkspaceAccess interface {
	// ResolveMembership возвращает domain.ErrWorkspaceNotAccessible и для чужого,
	// и для несуществующего workspace
	ResolveMembership(ctx context.Context, username string, workspaceID int64) (*domain.WorkspaceMember, error)
	// HasElevatedRole - право приглашать участников
	HasElevatedRole(ctx context.Context, username string, workspaceID int64) (bool, error)
	IsOwner(ctx context.Context, username string, workspaceID int64) (bool, error)
}
