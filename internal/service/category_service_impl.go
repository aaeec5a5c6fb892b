package service

import (
	"context"
	"errors"

	"github.com/bagdasarian/timetrack/internal/domain"
	"github.com/bagdasarian/timetrack/internal/repository"
)

type categoryService struct {
	personal  CategoryRegistry
	workspace CategoryRegistry
	userRepo  repository.UserRepository
	access    WorkspaceAccess
}

func NewCategoryService(
	personal CategoryRegistry,
	workspace CategoryRegistry,
	userRepo repository.UserRepository,
	access WorkspaceAccess,
) CategoryService {
	return &categoryService{
		personal:  personal,
		workspace: workspace,
		userRepo:  userRepo,
		access:    access,
	}
}

func (s *categoryService) ListPersonal(ctx context.Context, username string) ([]string, error) {
	userID, err := s.personalScope(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.personal.List(ctx, userID)
}

func (s *categoryService) AddPersonal(ctx context.Context, username, name string) ([]string, error) {
	userID, err := s.personalScope(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.personal.Add(ctx, userID, name)
}

func (s *categoryService) RemovePersonal(ctx context.Context, username, name string) ([]string, error) {
	userID, err := s.personalScope(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.personal.Remove(ctx, userID, name)
}

func (s *categoryService) ListWorkspace(ctx context.Context, username string, workspaceID int64) ([]string, error) {
	if _, err := s.access.ResolveMembership(ctx, username, workspaceID); err != nil {
		return nil, err
	}
	return s.workspace.List(ctx, workspaceID)
}

func (s *categoryService) AddWorkspace(ctx context.Context, username string, workspaceID int64, name string) ([]string, error) {
	if _, err := s.access.ResolveMembership(ctx, username, workspaceID); err != nil {
		return nil, err
	}
	return s.workspace.Add(ctx, workspaceID, name)
}

func (s *categoryService) RemoveWorkspace(ctx context.Context, username string, workspaceID int64, name string) ([]string, error) {
	if _, err := s.access.ResolveMembership(ctx, username, workspaceID); err != nil {
		return nil, err
	}
	return s.workspace.Remove(ctx, workspaceID, name)
}

func (s *categoryService) personalScope(ctx context.Context, username string) (int64, error) {
	if username == "" {
		return 0, domain.ErrUnauthenticated
	}
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, domain.NewNotFoundError("User")
		}
		return 0, err
	}
	return user.ID, nil
}
