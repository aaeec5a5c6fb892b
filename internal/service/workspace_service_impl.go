package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/bagdasarian/timetrack/internal/domain"
	"github.com/bagdasarian/timetrack/internal/repository"
)

type workspaceService struct {
	tx            repository.Transactor
	workspaceRepo repository.WorkspaceRepository
	memberRepo    repository.MemberRepository
	userRepo      repository.UserRepository
	access        WorkspaceAccess
	now           func() time.Time
}

func NewWorkspaceService(
	tx repository.Transactor,
	workspaceRepo repository.WorkspaceRepository,
	memberRepo repository.MemberRepository,
	userRepo repository.UserRepository,
	access WorkspaceAccess,
) WorkspaceService {
	return &workspaceService{
		tx:            tx,
		workspaceRepo: workspaceRepo,
		memberRepo:    memberRepo,
		userRepo:      userRepo,
		access:        access,
		now:           time.Now,
	}
}

func (s *workspaceService) Create(ctx context.Context, username, name string) (*domain.WorkspaceSummary, error) {
	if username == "" {
		return nil, domain.ErrUnauthenticated
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewInvalidInputError("Workspace name cannot be blank")
	}

	owner, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFoundError("User")
		}
		return nil, err
	}

	return s.createOwned(ctx, owner, name)
}

func (s *workspaceService) EnsureDefault(ctx context.Context, user *domain.User) (*domain.WorkspaceSummary, error) {
	existing, err := s.memberRepo.ListByUsername(ctx, user.Username)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing[0], nil
	}

	label := strings.TrimSpace(user.DisplayName)
	if label == "" {
		label = user.Username
	}
	return s.createOwned(ctx, user, label+" Workspace")
}

func (s *workspaceService) createOwned(ctx context.Context, owner *domain.User, name string) (*domain.WorkspaceSummary, error) {
	now := s.now().UTC()
	workspace := &domain.Workspace{
		Name:      name,
		OwnerID:   owner.ID,
		CreatedAt: now,
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.workspaceRepo.Create(ctx, workspace); err != nil {
			return err
		}
		return s.memberRepo.Create(ctx, &domain.WorkspaceMember{
			WorkspaceID: workspace.ID,
			UserID:      owner.ID,
			Username:    owner.Username,
			DisplayName: owner.DisplayName,
			Role:        domain.RoleOwner,
			JoinedAt:    now,
		})
	})
	if err != nil {
		return nil, err
	}

	return &domain.WorkspaceSummary{
		Workspace:     *workspace,
		Role:          domain.RoleOwner,
		OwnerUsername: owner.Username,
		JoinedAt:      now,
	}, nil
}

func (s *workspaceService) Invite(ctx context.Context, username string, workspaceID int64, invitee string, role string) (*domain.WorkspaceMember, error) {
	if _, err := s.access.ResolveMembership(ctx, username, workspaceID); err != nil {
		return nil, err
	}
	allowed, err := s.access.HasElevatedRole(ctx, username, workspaceID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domain.NewForbiddenError("Insufficient permissions to invite members")
	}

	invitee = strings.TrimSpace(invitee)
	if invitee == "" {
		return nil, domain.NewInvalidInputError("Username is required")
	}
	parsed, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}
	if parsed == domain.RoleOwner {
		return nil, domain.NewInvalidInputError("Invalid role")
	}

	user, err := s.userRepo.GetByUsername(ctx, invitee)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFoundError("Invited user")
		}
		return nil, err
	}

	exists, err := s.memberRepo.ExistsByWorkspaceAndUsername(ctx, workspaceID, user.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewConflictError("User already part of workspace")
	}

	member := &domain.WorkspaceMember{
		WorkspaceID: workspaceID,
		UserID:      user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Role:        parsed,
		JoinedAt:    s.now().UTC(),
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.NewConflictError("User already part of workspace")
		}
		return nil, err
	}
	return member, nil
}

func (s *workspaceService) Rename(ctx context.Context, username string, workspaceID int64, name string) (*domain.WorkspaceSummary, error) {
	member, err := s.access.ResolveMembership(ctx, username, workspaceID)
	if err != nil {
		return nil, err
	}
	if member.Role != domain.RoleOwner {
		return nil, domain.NewForbiddenError("Only the workspace owner can rename it")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewInvalidInputError("Workspace name cannot be blank")
	}

	if err := s.workspaceRepo.UpdateName(ctx, workspaceID, name); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrWorkspaceNotAccessible
		}
		return nil, err
	}

	workspace, err := s.workspaceRepo.GetByID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	return &domain.WorkspaceSummary{
		Workspace:     *workspace,
		Role:          member.Role,
		OwnerUsername: member.Username,
		JoinedAt:      member.JoinedAt,
	}, nil
}

func (s *workspaceService) Leave(ctx context.Context, username string, workspaceID int64) error {
	member, err := s.access.ResolveMembership(ctx, username, workspaceID)
	if err != nil {
		return err
	}
	if member.Role == domain.RoleOwner {
		return domain.NewInvalidInputError("Workspace owner cannot leave the workspace")
	}

	if err := s.memberRepo.Delete(ctx, member.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrWorkspaceNotAccessible
		}
		return err
	}
	return nil
}

func (s *workspaceService) ListForUser(ctx context.Context, username string) ([]*domain.WorkspaceSummary, error) {
	if username == "" {
		return nil, domain.ErrUnauthenticated
	}
	return s.memberRepo.ListByUsername(ctx, username)
}

func (s *workspaceService) ListMembers(ctx context.Context, username string, workspaceID int64) ([]*domain.WorkspaceMember, error) {
	if _, err := s.access.ResolveMembership(ctx, username, workspaceID); err != nil {
		return nil, err
	}

	members, err := s.memberRepo.ListByWorkspaceID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(members, func(i, j int) bool {
		a, b := members[i], members[j]
		if a.Role.Priority() != b.Role.Priority() {
			return a.Role.Priority() < b.Role.Priority()
		}
		an, bn := strings.ToLower(a.DisplayName), strings.ToLower(b.DisplayName)
		if an != bn {
			return an < bn
		}
		return strings.ToLower(a.Username) < strings.ToLower(b.Username)
	})
	return members, nil
}
