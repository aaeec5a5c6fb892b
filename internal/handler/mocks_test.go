package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bagdasarian/timetrack/internal/domain"
)

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Register(ctx context.Context, username, displayName, password string) (*domain.User, error) {
	args := m.Called(ctx, username, displayName, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAccountService) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, username string, update domain.AccountUpdate) (*domain.User, string, error) {
	args := m.Called(ctx, username, update)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}

func (m *MockAccountService) Session(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) ListForUser(ctx context.Context, username string) ([]*domain.UserActivityView, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.UserActivityView), args.Error(1)
}

func (m *MockActivityService) ListForWorkspace(ctx context.Context, username string, workspaceID int64) ([]*domain.UserActivityView, error) {
	args := m.Called(ctx, username, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.UserActivityView), args.Error(1)
}

func (m *MockActivityService) AddPersonal(ctx context.Context, username string, draft domain.ActivityDraft) ([]*domain.Activity, error) {
	args := m.Called(ctx, username, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Activity), args.Error(1)
}

func (m *MockActivityService) AddToWorkspace(ctx context.Context, username string, workspaceID int64, draft domain.ActivityDraft) ([]*domain.WorkspaceActivity, error) {
	args := m.Called(ctx, username, workspaceID, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.WorkspaceActivity), args.Error(1)
}

func (m *MockActivityService) DeletePersonal(ctx context.Context, username string, id int64) error {
	args := m.Called(ctx, username, id)
	return args.Error(0)
}

func (m *MockActivityService) DeleteFromWorkspace(ctx context.Context, username string, workspaceID int64, id int64) error {
	args := m.Called(ctx, username, workspaceID, id)
	return args.Error(0)
}

type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) names(args mock.Arguments) ([]string, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCategoryService) ListPersonal(ctx context.Context, username string) ([]string, error) {
	return m.names(m.Called(ctx, username))
}

func (m *MockCategoryService) AddPersonal(ctx context.Context, username, name string) ([]string, error) {
	return m.names(m.Called(ctx, username, name))
}

func (m *MockCategoryService) RemovePersonal(ctx context.Context, username, name string) ([]string, error) {
	return m.names(m.Called(ctx, username, name))
}

func (m *MockCategoryService) ListWorkspace(ctx context.Context, username string, workspaceID int64) ([]string, error) {
	return m.names(m.Called(ctx, username, workspaceID))
}

func (m *MockCategoryService) AddWorkspace(ctx context.Context, username string, workspaceID int64, name string) ([]string, error) {
	return m.names(m.Called(ctx, username, workspaceID, name))
}

func (m *MockCategoryService) RemoveWorkspace(ctx context.Context, username string, workspaceID int64, name string) ([]string, error) {
	return m.names(m.Called(ctx, username, workspaceID, name))
}
