package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/bagdasarian/timetrack/internal/domain"
)

func newAccountFixture() (*accountService, *MockUserRepository, *MockWorkspaceService, *MockAuthenticator) {
	userRepo := new(MockUserRepository)
	workspaces := new(MockWorkspaceService)
	authenticator := new(MockAuthenticator)
	svc := NewAccountService(&passthroughTx{}, userRepo, workspaces, authenticator, bcrypt.MinCost).(*accountService)
	return svc, userRepo, workspaces, authenticator
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAccountService_Register(t *testing.T) {
	t.Run("регистрация создает пользователя и workspace", func(t *testing.T) {
		svc, userRepo, workspaces, _ := newAccountFixture()

		userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.Username == "ana" && u.DisplayName == "Ana" &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")) == nil
		})).Return(nil).Once()
		workspaces.On("EnsureDefault", mock.Anything, mock.Anything).
			Return(&domain.WorkspaceSummary{Workspace: domain.Workspace{Name: "Ana Workspace"}}, nil).Once()

		user, err := svc.Register(context.Background(), " ana ", "Ana", "secret1")

		require.NoError(t, err)
		assert.Equal(t, "ana", user.Username)
		userRepo.AssertExpectations(t)
		workspaces.AssertExpectations(t)
	})

	t.Run("ошибка: короткий пароль", func(t *testing.T) {
		svc, userRepo, _, _ := newAccountFixture()

		_, err := svc.Register(context.Background(), "ana", "Ana", "123")

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("ошибка: логин занят", func(t *testing.T) {
		svc, userRepo, workspaces, _ := newAccountFixture()

		userRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrConflict).Once()

		_, err := svc.Register(context.Background(), "ana", "Ana", "secret1")

		assert.ErrorIs(t, err, domain.ErrConflict)
		workspaces.AssertNotCalled(t, "EnsureDefault", mock.Anything, mock.Anything)
	})
}

func TestAccountService_Login(t *testing.T) {
	t.Run("верный пароль дает токен", func(t *testing.T) {
		svc, userRepo, _, authenticator := newAccountFixture()

		userRepo.On("GetByUsername", mock.Anything, "ana").
			Return(&domain.User{ID: 1, Username: "ana", PasswordHash: hashed(t, "secret1")}, nil).Once()
		authenticator.On("Issue", "ana").Return("token-1", nil).Once()

		token, err := svc.Login(context.Background(), "ana", "secret1")

		require.NoError(t, err)
		assert.Equal(t, "token-1", token)
	})

	t.Run("неверный пароль и неизвестный логин неразличимы", func(t *testing.T) {
		svc, userRepo, _, authenticator := newAccountFixture()

		userRepo.On("GetByUsername", mock.Anything, "ana").
			Return(&domain.User{ID: 1, Username: "ana", PasswordHash: hashed(t, "secret1")}, nil).Once()
		userRepo.On("GetByUsername", mock.Anything, "ghost").Return(nil, domain.ErrNotFound).Once()

		_, errPassword := svc.Login(context.Background(), "ana", "wrong-pass")
		_, errUser := svc.Login(context.Background(), "ghost", "secret1")

		assert.Equal(t, domain.ErrUnauthenticated, errPassword)
		assert.Equal(t, errPassword, errUser)
		authenticator.AssertNotCalled(t, "Issue", mock.Anything)
	})
}

func TestAccountService_UpdateAccount(t *testing.T) {
	t.Run("смена логина перевыпускает токен", func(t *testing.T) {
		svc, userRepo, _, authenticator := newAccountFixture()
		newName := "ana2"

		userRepo.On("GetByUsername", mock.Anything, "ana").Return(&domain.User{ID: 1, Username: "ana", DisplayName: "Ana"}, nil).Once()
		userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.Username == "ana2"
		})).Return(nil).Once()
		authenticator.On("Refresh", "ana2").Return("token-2", nil).Once()

		user, token, err := svc.UpdateAccount(context.Background(), "ana", domain.AccountUpdate{Username: &newName})

		require.NoError(t, err)
		assert.Equal(t, "ana2", user.Username)
		assert.Equal(t, "token-2", token)
		authenticator.AssertExpectations(t)
	})

	t.Run("смена отображаемого имени без нового токена", func(t *testing.T) {
		svc, userRepo, _, authenticator := newAccountFixture()
		display := "Ana Pop"

		userRepo.On("GetByUsername", mock.Anything, "ana").Return(&domain.User{ID: 1, Username: "ana"}, nil).Once()
		userRepo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()

		user, token, err := svc.UpdateAccount(context.Background(), "ana", domain.AccountUpdate{DisplayName: &display})

		require.NoError(t, err)
		assert.Equal(t, "Ana Pop", user.DisplayName)
		assert.Empty(t, token)
		authenticator.AssertNotCalled(t, "Refresh", mock.Anything)
	})

	t.Run("ошибка: логин занят", func(t *testing.T) {
		svc, userRepo, _, _ := newAccountFixture()
		newName := "bob"

		userRepo.On("GetByUsername", mock.Anything, "ana").Return(&domain.User{ID: 1, Username: "ana"}, nil).Once()
		userRepo.On("Update", mock.Anything, mock.Anything).Return(domain.ErrConflict).Once()

		_, _, err := svc.UpdateAccount(context.Background(), "ana", domain.AccountUpdate{Username: &newName})

		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}
