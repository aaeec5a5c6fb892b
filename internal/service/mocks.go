package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bagdasarian/timetrack/internal/domain"
	"github.com/bagdasarian/timetrack/internal/events"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockActivityRepository) GetByID(ctx context.Context, id int64) (*domain.Activity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Activity), args.Error(1)
}

func (m *MockActivityRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockActivityRepository) ListByUsername(ctx context.Context, username string) ([]*domain.Activity, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Activity), args.Error(1)
}

type MockWorkspaceActivityRepository struct {
	mock.Mock
}

func (m *MockWorkspaceActivityRepository) Create(ctx context.Context, activity *domain.WorkspaceActivity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockWorkspaceActivityRepository) GetByID(ctx context.Context, id int64) (*domain.WorkspaceActivity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkspaceActivity), args.Error(1)
}

func (m *MockWorkspaceActivityRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWorkspaceActivityRepository) ListByUsername(ctx context.Context, username string) ([]*domain.WorkspaceActivity, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.WorkspaceActivity), args.Error(1)
}

func (m *MockWorkspaceActivityRepository) ListByWorkspaceID(ctx context.Context, workspaceID int64) ([]*domain.WorkspaceActivity, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.WorkspaceActivity), args.Error(1)
}

type MockWorkspaceRepository struct {
	mock.Mock
}

func (m *MockWorkspaceRepository) Create(ctx context.Context, workspace *domain.Workspace) error {
	args := m.Called(ctx, workspace)
	return args.Error(0)
}

func (m *MockWorkspaceRepository) GetByID(ctx context.Context, id int64) (*domain.Workspace, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workspace), args.Error(1)
}

func (m *MockWorkspaceRepository) UpdateName(ctx context.Context, id int64, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) Create(ctx context.Context, member *domain.WorkspaceMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) GetByWorkspaceAndUsername(ctx context.Context, workspaceID int64, username string) (*domain.WorkspaceMember, error) {
	args := m.Called(ctx, workspaceID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkspaceMember), args.Error(1)
}

func (m *MockMemberRepository) ExistsByWorkspaceAndUsername(ctx context.Context, workspaceID int64, username string) (bool, error) {
	args := m.Called(ctx, workspaceID, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockMemberRepository) ListByWorkspaceID(ctx context.Context, workspaceID int64) ([]*domain.WorkspaceMember, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.WorkspaceMember), args.Error(1)
}

func (m *MockMemberRepository) ListByUsername(ctx context.Context, username string) ([]*domain.WorkspaceSummary, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.WorkspaceSummary), args.Error(1)
}

func (m *MockMemberRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) ListNames(ctx context.Context, scopeID int64) ([]string, error) {
	args := m.Called(ctx, scopeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCategoryRepository) ExistsByName(ctx context.Context, scopeID int64, name string) (bool, error) {
	args := m.Called(ctx, scopeID, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, scopeID int64, name string) error {
	args := m.Called(ctx, scopeID, name)
	return args.Error(0)
}

func (m *MockCategoryRepository) SeedDefaults(ctx context.Context, scopeID int64, names []string) error {
	args := m.Called(ctx, scopeID, names)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteByName(ctx context.Context, scopeID int64, name string) (int64, error) {
	args := m.Called(ctx, scopeID, name)
	return args.Get(0).(int64), args.Error(1)
}

type MockWorkspaceAccess struct {
	mock.Mock
}

func (m *MockWorkspaceAccess) ResolveMembership(ctx context.Context, username string, workspaceID int64) (*domain.WorkspaceMember, error) {
	args := m.Called(ctx, username, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkspaceMember), args.Error(1)
}

func (m *MockWorkspaceAccess) HasElevatedRole(ctx context.Context, username string, workspaceID int64) (bool, error) {
	args := m.Called(ctx, username, workspaceID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWorkspaceAccess) IsOwner(ctx context.Context, username string, workspaceID int64) (bool, error) {
	args := m.Called(ctx, username, workspaceID)
	return args.Bool(0), args.Error(1)
}

type MockWorkspaceService struct {
	mock.Mock
}

func (m *MockWorkspaceService) Create(ctx context.Context, username, name string) (*domain.WorkspaceSummary, error) {
	args := m.Called(ctx, username, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkspaceSummary), args.Error(1)
}

func (m *MockWorkspaceService) EnsureDefault(ctx context.Context, user *domain.User) (*domain.WorkspaceSummary, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkspaceSummary), args.Error(1)
}

func (m *MockWorkspaceService) Invite(ctx context.Context, username string, workspaceID int64, invitee string, role string) (*domain.WorkspaceMember, error) {
	args := m.Called(ctx, username, workspaceID, invitee, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkspaceMember), args.Error(1)
}

func (m *MockWorkspaceService) Rename(ctx context.Context, username string, workspaceID int64, name string) (*domain.WorkspaceSummary, error) {
	args := m.Called(ctx, username, workspaceID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkspaceSummary), args.Error(1)
}

func (m *MockWorkspaceService) Leave(ctx context.Context, username string, workspaceID int64) error {
	args := m.Called(ctx, username, workspaceID)
	return args.Error(0)
}

func (m *MockWorkspaceService) ListForUser(ctx context.Context, username string) ([]*domain.WorkspaceSummary, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.WorkspaceSummary), args.Error(1)
}

func (m *MockWorkspaceService) ListMembers(ctx context.Context, username string, workspaceID int64) ([]*domain.WorkspaceMember, error) {
	args := m.Called(ctx, username, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.WorkspaceMember), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, event events.ActivityEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Issue(username string) (string, error) {
	args := m.Called(username)
	return args.String(0), args.Error(1)
}

func (m *MockAuthenticator) Refresh(identity string) (string, error) {
	args := m.Called(identity)
	return args.String(0), args.Error(1)
}
