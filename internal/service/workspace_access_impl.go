package service

import (
	"context"
	"errors"

	"github.com/bagdasarian/timetrack/internal/domain"
	"github.com/bagdasarian/timetrack/internal/repository"
)

type workspaceAccess struct {
	memberRepo repository.MemberRepository
}

func NewWorkspaceAccess(memberRepo repository.MemberRepository) WorkspaceAccess {
	return &workspaceAccess{memberRepo: memberRepo}
}

func (a *workspaceAccess) ResolveMembership(ctx context.Context, username string, workspaceID int64) (*domain.WorkspaceMember, error) {
	if username == "" {
		return nil, domain.ErrUnauthenticated
	}

	member, err := a.memberRepo.GetByWorkspaceAndUsername(ctx, workspaceID, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrWorkspaceNotAccessible
		}
		return nil, err
	}
	return member, nil
}

// HasElevatedRole: приглашать может только OWNER, роль ADMIN пока прав не добавляет
func (a *workspaceAccess) HasElevatedRole(ctx context.Context, username string, workspaceID int64) (bool, error) {
	return a.hasRole(ctx, username, workspaceID, domain.RoleOwner)
}

func (a *workspaceAccess) IsOwner(ctx context.Context, username string, workspaceID int64) (bool, error) {
	return a.hasRole(ctx, username, workspaceID, domain.RoleOwner)
}

func (a *workspaceAccess) hasRole(ctx context.Context, username string, workspaceID int64, roles ...domain.Role) (bool, error) {
	member, err := a.ResolveMembership(ctx, username, workspaceID)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return false, nil
		}
		return false, err
	}
	for _, role := range roles {
		if member.Role == role {
			return true, nil
		}
	}
	return false, nil
}
